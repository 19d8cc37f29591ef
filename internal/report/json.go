package report

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/Sena-ops/lintreport/internal/model"
)

type jsonDocument struct {
	Title    string      `json:"title"`
	Findings int         `json:"findings"`
	Groups   []jsonGroup `json:"groups"`
}

type jsonGroup struct {
	Name     string        `json:"name"`
	Sections []jsonSection `json:"sections"`
}

type jsonSection struct {
	Tool        string     `json:"tool"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Source      string     `json:"source"`
	Status      string     `json:"status"`
	Error       string     `json:"error,omitempty"`
	Note        string     `json:"note,omitempty"`
	Fallback    bool       `json:"fallback,omitzero"`
	Columns     []string   `json:"columns"`
	Records     [][]string `json:"records"`
}

// RenderJSON exporta o documento com uma linha de registro por achado.
func RenderJSON(w io.Writer, doc *model.Document) error {
	out := jsonDocument{Title: doc.Title, Findings: doc.Findings(), Groups: []jsonGroup{}}
	for _, g := range doc.Groups {
		jg := jsonGroup{Name: g.Name, Sections: []jsonSection{}}
		for _, s := range g.Sections {
			js := jsonSection{
				Tool:        s.Tool,
				Title:       s.Title,
				Description: s.Description,
				Source:      s.Source,
				Status:      string(s.Status),
				Error:       s.Err,
				Note:        s.Note,
				Fallback:    s.Fallback,
				Columns:     s.Columns,
				Records:     make([][]string, 0, len(s.Records)),
			}
			for _, r := range s.Records {
				js.Records = append(js.Records, r.Fields)
			}
			jg.Sections = append(jg.Sections, js)
		}
		out.Groups = append(out.Groups, jg)
	}

	b, err := json.Marshal(out, jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}
