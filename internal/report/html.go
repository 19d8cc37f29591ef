package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"

	"github.com/Sena-ops/lintreport/internal/model"
)

//go:embed templates/report.html.tmpl
var htmlTemplate string

// O html/template escapa todo valor de célula: a saída das ferramentas
// nunca vira marcação.
var reportTemplate = template.Must(
	template.New("report").Funcs(sprig.FuncMap()).Parse(htmlTemplate),
)

// RenderHTML gera um documento HTML autocontido (CSS inline, sem recursos
// externos). A saída é determinística para a mesma entrada.
func RenderHTML(w io.Writer, doc *model.Document) error {
	if err := reportTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("falha ao executar template: %w", err)
	}
	return nil
}
