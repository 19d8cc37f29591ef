package adapters

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/go-json-experiment/json"

	"github.com/Sena-ops/lintreport/internal/model"
)

type semgrepJSON struct {
	Results []struct {
		CheckID string `json:"check_id"`
		Path    string `json:"path"`
		Start   struct {
			Line int `json:"line"`
		} `json:"start"`
		Extra struct {
			Message  string `json:"message"`
			Severity string `json:"severity"` // INFO|WARNING|ERROR
		} `json:"extra"`
	} `json:"results"`
}

// ParseSemgrepJSON lê `semgrep --json`: um registro por resultado.
func ParseSemgrepJSON(content []byte) (Extraction, error) {
	var doc semgrepJSON
	if err := unmarshalReport(content, &doc); err != nil {
		return Extraction{}, fmt.Errorf("erro ao fazer parse do JSON do Semgrep: %w", err)
	}

	out := make([]model.Record, 0, len(doc.Results))
	for _, r := range doc.Results {
		out = append(out, model.NewRecord(
			filepath.ToSlash(r.Path),
			lineText(r.Start.Line),
			r.Extra.Severity,
			r.Extra.Message,
			r.CheckID,
		))
	}
	return Extraction{Records: out}, nil
}

// unmarshalReport aceita chaves em qualquer caixa ("Queries" e "queries"
// aparecem em builds diferentes do KICS). Arquivo vazio não tem achados.
func unmarshalReport(content []byte, v any) error {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil
	}
	return json.Unmarshal(content, v, json.MatchCaseInsensitiveNames(true))
}
