package adapters

import (
	"regexp"
	"strings"

	"github.com/Sena-ops/lintreport/internal/model"
)

// locationRe casa "caminho:linha:coluna: mensagem" com caminho não guloso.
var locationRe = regexp.MustCompile(`^(.+?):(\d+):(\d+): (.*)$`)

// Extraction é o resultado de um parse.
type Extraction struct {
	Records  []model.Record
	Fallback bool   // nenhuma linha casou com a gramática estruturada
	Note     string // linha de resumo preservada (ex: nota do pylint)
}

// ParseFunc converte o conteúdo bruto de um relatório em registros.
type ParseFunc func(content []byte) (Extraction, error)

// splitLines devolve as linhas não vazias, sem \r e espaços finais.
func splitLines(content []byte) []string {
	raw := strings.Split(string(content), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, " \t\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// matchLocation aplica o padrão posicional a uma linha.
func matchLocation(line string) (model.Record, bool) {
	m := locationRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return model.Record{}, false
	}
	return model.NewRecord(m[1], m[2], m[3], m[4]), true
}

// choose decide uma única vez por arquivo: estruturado se houver ao menos
// um casamento, senão as linhas de fallback viram registros de um campo.
func choose(structured, fallback []model.Record) Extraction {
	if len(structured) > 0 || len(fallback) == 0 {
		return Extraction{Records: structured}
	}
	return Extraction{Records: fallback, Fallback: true}
}

// splitFields separa s por espaços em no máximo n campos; o último absorve
// o restante do texto.
func splitFields(s string, n int) []string {
	var out []string
	rest := strings.TrimLeft(s, " \t")
	for len(out) < n-1 && rest != "" {
		i := strings.IndexAny(rest, " \t")
		if i < 0 {
			break
		}
		out = append(out, rest[:i])
		rest = strings.TrimLeft(rest[i:], " \t")
	}
	if rest != "" {
		out = append(out, rest)
	}
	return out
}
