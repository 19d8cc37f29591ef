package adapters

import (
	"strings"

	"github.com/Sena-ops/lintreport/internal/model"
)

const ratingPhrase = "Your code has been rated at"

// ParseRated trata a saída do pylint. A linha de nota nunca é descartada:
// vira Note e, no modo fallback, um registro destacado.
func ParseRated(content []byte) (Extraction, error) {
	var structured, fallback []model.Record
	note := ""
	for _, line := range splitLines(content) {
		if rec, ok := matchLocation(line); ok {
			structured = append(structured, rec)
			continue
		}
		rec := model.NewRecord(line)
		if strings.Contains(line, ratingPhrase) {
			rec.Emphasis = true
			note = strings.TrimSpace(line)
		}
		fallback = append(fallback, rec)
	}
	ext := choose(structured, fallback)
	ext.Note = note
	return ext, nil
}
