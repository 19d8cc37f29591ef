package sarif

import (
	"regexp"
	"strings"
)

// códigos no início da mensagem: E302 (flake8), C0114: (pylint)
var codeRe = regexp.MustCompile(`^([A-Z])[A-Z]{0,2}\d{2,5}\b`)

// levelFor converte o vocabulário de cada ferramenta para o nível SARIF.
// Serve só à exportação; o relatório HTML mantém a severidade original.
func levelFor(severity, message string) string {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "error", "fatal", "critical", "high":
		return "error"
	case "warning", "style", "performance", "portability", "medium":
		return "warning"
	case "information", "info", "note", "low":
		return "note"
	}

	lower := strings.ToLower(message)
	switch {
	case strings.HasPrefix(lower, "error"), strings.HasPrefix(lower, "fatal"):
		return "error"
	case strings.HasPrefix(lower, "warning"):
		return "warning"
	case strings.HasPrefix(lower, "note"):
		return "note"
	}

	if m := codeRe.FindStringSubmatch(message); m != nil {
		switch m[1] {
		case "E", "F":
			return "error"
		case "I":
			return "note"
		}
	}
	return "warning"
}
