package adapters

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Sena-ops/lintreport/internal/model"
)

type kicsJSON struct {
	Queries []struct {
		QueryName   string `json:"query_name"`
		QueryID     string `json:"query_id"`
		Severity    string `json:"severity"`
		Description string `json:"description"`
		Files       []struct {
			FileName string `json:"file_name"`
			Line     int    `json:"line"`
		} `json:"files"`
	} `json:"queries"`
}

// ParseKICSJSON lê o results.json do KICS: um registro por arquivo afetado
// de cada query.
func ParseKICSJSON(content []byte) (Extraction, error) {
	var doc kicsJSON
	if err := unmarshalReport(content, &doc); err != nil {
		return Extraction{}, fmt.Errorf("erro ao fazer parse do JSON do KICS: %w", err)
	}

	var out []model.Record
	for _, q := range doc.Queries {
		msg := strings.TrimSpace(q.Description)
		if msg == "" {
			msg = q.QueryName
		}
		for _, f := range q.Files {
			out = append(out, model.NewRecord(kicsPath(f.FileName), lineText(f.Line), q.Severity, msg, q.QueryID))
		}
	}
	return Extraction{Records: out}, nil
}

// kicsPath remove os prefixos do volume do container (../../scan/..., ./, scan/).
func kicsPath(p string) string {
	fp := filepath.ToSlash(p)
	for strings.HasPrefix(fp, "../") {
		fp = strings.TrimPrefix(fp, "../")
	}
	fp = strings.TrimPrefix(fp, "./")
	fp = strings.TrimPrefix(fp, "/scan/")
	return strings.TrimPrefix(fp, "scan/")
}

func lineText(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
