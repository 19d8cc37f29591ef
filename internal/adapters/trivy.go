package adapters

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Sena-ops/lintreport/internal/model"
)

// Compatível com `trivy config -f json` (misconfigurations)
type trivyJSON struct {
	Results []struct {
		Target            string `json:"Target"`
		Misconfigurations []struct {
			ID            string `json:"ID"`
			Title         string `json:"Title"`
			Description   string `json:"Description"`
			Severity      string `json:"Severity"`
			CauseMetadata struct {
				StartLine int `json:"StartLine"`
			} `json:"CauseMetadata"`
		} `json:"Misconfigurations"`
	} `json:"Results"`
}

func ParseTrivyJSON(content []byte) (Extraction, error) {
	var doc trivyJSON
	if err := unmarshalReport(content, &doc); err != nil {
		return Extraction{}, fmt.Errorf("erro ao fazer parse do JSON do Trivy: %w", err)
	}

	var out []model.Record
	for _, r := range doc.Results {
		target := filepath.ToSlash(r.Target)
		for _, m := range r.Misconfigurations {
			out = append(out, model.NewRecord(
				target,
				lineText(m.CauseMetadata.StartLine),
				m.Severity,
				firstNonEmpty(m.Title, m.Description),
				m.ID,
			))
		}
	}
	return Extraction{Records: out}, nil
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
