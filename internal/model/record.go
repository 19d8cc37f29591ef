package model

import "strings"

// Record é um achado normalizado: tupla ordenada de campos texto.
// Linha e coluna chegam como texto, sem validação.
type Record struct {
	Fields   []string
	Emphasis bool // linha de fallback destacada (ex: nota do pylint)
}

func NewRecord(fields ...string) Record {
	return Record{Fields: fields}
}

// Normalize ajusta o registro para exatamente n campos: completa com vazios
// e junta o excedente na última coluna.
func (r Record) Normalize(n int) Record {
	if n <= 0 || len(r.Fields) == n {
		return r
	}
	out := make([]string, n)
	if len(r.Fields) < n {
		copy(out, r.Fields)
	} else {
		copy(out, r.Fields[:n-1])
		out[n-1] = strings.Join(r.Fields[n-1:], " ")
	}
	return Record{Fields: out, Emphasis: r.Emphasis}
}
