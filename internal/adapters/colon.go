package adapters

import (
	"strings"

	"github.com/Sena-ops/lintreport/internal/model"
)

// ParseColonFields divide cada linha nos três primeiros ":" (flake8,
// checkstyle em texto). A mensagem pode conter ":" e fica inteira.
func ParseColonFields(content []byte) (Extraction, error) {
	var out []model.Record
	for _, line := range splitLines(content) {
		if !strings.Contains(line, ":") {
			continue
		}
		parts := strings.SplitN(line, ":", 4)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		out = append(out, model.NewRecord(parts...))
	}
	return Extraction{Records: out}, nil
}
