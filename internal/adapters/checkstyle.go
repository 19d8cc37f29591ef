package adapters

import (
	"encoding/xml"

	"github.com/Sena-ops/lintreport/internal/model"
)

// checkstyleFile representa <file name="fname"><error .../>...</file>.
// Mesmo formato do checkstyle (Java) e do golangci-lint --out-format checkstyle.
type checkstyleFile struct {
	Name   string            `xml:"name,attr"`
	Errors []checkstyleError `xml:"error"`
}

// checkstyleError representa <error line="1" column="10" severity="error" message="msg" source="src"/>
type checkstyleError struct {
	Line     string `xml:"line,attr"`
	Column   string `xml:"column,attr,omitempty"`
	Severity string `xml:"severity,attr,omitempty"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr,omitempty"`
}

// ParseCheckstyleXML emite um registro por <error>, com o nome do <file>
// que o contém.
func ParseCheckstyleXML(content []byte) (Extraction, error) {
	var out []model.Record
	err := walkElements(content, "file", func(dec *xml.Decoder, start xml.StartElement) error {
		var f checkstyleFile
		if err := dec.DecodeElement(&f, &start); err != nil {
			return err
		}
		for _, e := range f.Errors {
			out = append(out, model.NewRecord(f.Name, e.Line, e.Severity, e.Message, e.Source))
		}
		return nil
	})
	if err != nil {
		return Extraction{}, err
	}
	return Extraction{Records: out}, nil
}
