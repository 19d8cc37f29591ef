package adapters

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

var (
	errNoXMLRoot    = errors.New("nenhum elemento XML encontrado")
	errTextOutside  = errors.New("texto fora do elemento raiz")
	errMultipleRoot = errors.New("mais de um elemento raiz")
)

// walkElements percorre o documento e chama fn para cada elemento com o
// nome local informado, em qualquer profundidade. fn deve consumir o
// elemento (DecodeElement). O documento precisa ter exatamente uma raiz e
// nenhum texto fora dela.
func walkElements(content []byte, name string, fn func(dec *xml.Decoder, start xml.StartElement) error) error {
	dec := xml.NewDecoder(bytes.NewReader(content))
	depth := 0
	sawRoot, rootClosed := false, false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("xml inválido: %w", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("xml inválido: %w", errTextOutside)
			}
		case xml.EndElement:
			depth--
			if depth == 0 {
				rootClosed = true
			}
		case xml.StartElement:
			if depth == 0 {
				if rootClosed {
					return fmt.Errorf("xml inválido: %w", errMultipleRoot)
				}
				sawRoot = true
			}
			if t.Name.Local != name {
				depth++
				continue
			}
			if err := fn(dec, t); err != nil {
				return fmt.Errorf("xml inválido em <%s>: %w", name, err)
			}
			// fn consumiu o elemento inteiro
			if depth == 0 {
				rootClosed = true
			}
		}
	}
	if !sawRoot && len(bytes.TrimSpace(content)) > 0 {
		return errNoXMLRoot
	}
	return nil
}
