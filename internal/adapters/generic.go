package adapters

import "github.com/Sena-ops/lintreport/internal/model"

// ParseGeneric não assume estrutura: cada linha vira ("", linha).
func ParseGeneric(content []byte) (Extraction, error) {
	lines := splitLines(content)
	out := make([]model.Record, 0, len(lines))
	for _, l := range lines {
		out = append(out, model.NewRecord("", l))
	}
	return Extraction{Records: out}, nil
}
