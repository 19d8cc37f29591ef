package sarif

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/Sena-ops/lintreport/internal/model"
)

const (
	Version = "2.1.0"
	Schema  = "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json"
)

type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name           string `json:"name"`
	InformationURI string `json:"informationUri,omitempty"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Message   Message    `json:"message"`
	Level     string     `json:"level"` // error, warning, note
	Locations []Location `json:"locations,omitempty"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

type Region struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitzero"`
}

// columns guarda a posição de cada coluna conhecida (-1 = ausente).
type columns struct {
	file, line, column, message, severity, rule int
}

func indexColumns(names []string) columns {
	c := columns{-1, -1, -1, -1, -1, -1}
	for i, n := range names {
		switch strings.ToLower(n) {
		case "file":
			c.file = i
		case "line":
			c.line = i
		case "column":
			c.column = i
		case "message", "output":
			c.message = i
		case "severity":
			c.severity = i
		case "id", "source", "rule":
			c.rule = i
		}
	}
	return c
}

func field(r model.Record, i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return strings.TrimSpace(r.Fields[i])
}

// FromDocument gera um run por seção processada com sucesso. Seções
// ausentes ou com falha não têm achados a exportar.
func FromDocument(doc *model.Document) *Log {
	log := &Log{Version: Version, Schema: Schema, Runs: []Run{}}
	for _, g := range doc.Groups {
		for _, s := range g.Sections {
			if s.Status != model.StatusOK {
				continue
			}
			log.Runs = append(log.Runs, Run{
				Tool:    Tool{Driver: Driver{Name: s.Tool}},
				Results: results(s),
			})
		}
	}
	return log
}

func results(s model.Section) []Result {
	cols := indexColumns(s.Columns)
	out := make([]Result, 0, len(s.Records))
	for _, r := range s.Records {
		msg := field(r, cols.message)
		if msg == "" {
			msg = strings.TrimSpace(strings.Join(r.Fields, " "))
		}
		rule := field(r, cols.rule)
		if rule == "" {
			rule = s.Tool
		}
		res := Result{
			RuleID:  rule,
			Level:   levelFor(field(r, cols.severity), msg),
			Message: Message{Text: msg},
		}
		if file := toURI(field(r, cols.file)); file != "" {
			start, _ := strconv.Atoi(field(r, cols.line))
			if start <= 0 {
				start = 1
			}
			col, _ := strconv.Atoi(field(r, cols.column))
			res.Locations = []Location{{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{URI: file},
					Region:           Region{StartLine: start, StartColumn: max(col, 0)},
				},
			}}
		}
		out = append(out, res)
	}
	return out
}

// Write serializa o documento como SARIF 2.1.0.
func Write(w io.Writer, doc *model.Document) error {
	data, err := json.Marshal(FromDocument(doc), jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("marshal sarif: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("escrever sarif: %w", err)
	}
	return nil
}

func toURI(p string) string {
	p = strings.TrimSpace(p)
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	return strings.TrimPrefix(p, "./")
}
