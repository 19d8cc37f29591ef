package adapters

import (
	"github.com/Sena-ops/lintreport/internal/logging"
	"github.com/Sena-ops/lintreport/internal/model"
)

// ParseLinePairs lê a saída do checkmake: cada achado ocupa duas linhas,
// "regra descrição arquivo linha" seguida da mensagem. Uma linha final sem
// par é descartada.
func ParseLinePairs(content []byte) (Extraction, error) {
	lines := splitLines(content)

	out := make([]model.Record, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		cols := splitFields(lines[i], 4)
		fields := make([]string, 5)
		copy(fields, cols)
		fields[4] = lines[i+1]
		out = append(out, model.NewRecord(fields...))
	}
	if len(lines)%2 != 0 {
		logging.Logger.Debugw("linha final sem par descartada", "linha", lines[len(lines)-1])
	}
	return Extraction{Records: out}, nil
}
