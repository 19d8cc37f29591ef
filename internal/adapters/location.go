package adapters

import "github.com/Sena-ops/lintreport/internal/model"

// ParseLocations trata saídas no estilo de compilador
// ("arquivo:linha:coluna: mensagem"), como clang-tidy e staticcheck.
func ParseLocations(content []byte) (Extraction, error) {
	var structured, fallback []model.Record
	for _, line := range splitLines(content) {
		if rec, ok := matchLocation(line); ok {
			structured = append(structured, rec)
			continue
		}
		fallback = append(fallback, model.NewRecord(line))
	}
	return choose(structured, fallback), nil
}
