package adapters

import (
	"encoding/xml"

	"github.com/Sena-ops/lintreport/internal/model"
)

// <results><errors><error id="" severity="" msg=""><location file="" line=""/></error></errors></results>
type cppcheckError struct {
	ID        string             `xml:"id,attr"`
	Severity  string             `xml:"severity,attr"`
	Msg       string             `xml:"msg,attr"`
	Locations []cppcheckLocation `xml:"location"`
}

type cppcheckLocation struct {
	File string `xml:"file,attr"`
	Line string `xml:"line,attr"`
}

// ParseCppcheckXML emite um registro por par (erro, localização).
// Erros sem <location> geram um registro com arquivo e linha vazios.
func ParseCppcheckXML(content []byte) (Extraction, error) {
	var out []model.Record
	err := walkElements(content, "error", func(dec *xml.Decoder, start xml.StartElement) error {
		var e cppcheckError
		if err := dec.DecodeElement(&e, &start); err != nil {
			return err
		}
		if len(e.Locations) == 0 {
			out = append(out, model.NewRecord("", "", e.Severity, e.Msg, e.ID))
			return nil
		}
		for _, loc := range e.Locations {
			out = append(out, model.NewRecord(loc.File, loc.Line, e.Severity, e.Msg, e.ID))
		}
		return nil
	})
	if err != nil {
		return Extraction{}, err
	}
	return Extraction{Records: out}, nil
}
