package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Sena-ops/lintreport/internal/adapters"
	"github.com/Sena-ops/lintreport/internal/model"
)

type styles struct {
	title, ok, warn, fail, dim, cell lipgloss.Style
}

// newStyles usa o perfil de cor do próprio destino: sem TTY, sem ANSI.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true),
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("1")),
		dim:   r.NewStyle().Faint(true),
		cell:  r.NewStyle().PaddingRight(2),
	}
}

func printSummary(w io.Writer, doc *model.Document, output string) {
	st := newStyles(w)
	fmt.Fprintln(w, st.title.Render("Relatório gerado: "+output))
	for _, g := range doc.Groups {
		fmt.Fprintf(w, "- %s: %d achado(s)\n", g.Name, g.Findings())
		for _, s := range g.Sections {
			fmt.Fprintf(w, "    • %s: %s\n", s.Title, st.sectionStatus(s))
		}
	}
}

func (st styles) sectionStatus(s model.Section) string {
	switch {
	case s.Missing():
		return st.dim.Render("sem arquivo")
	case s.Failed():
		return st.fail.Render("falha no parse: " + s.Err)
	case s.Empty():
		return st.ok.Render("sem problemas")
	case s.Fallback:
		return st.warn.Render(fmt.Sprintf("%d linha(s) sem formato reconhecido", len(s.Records)))
	default:
		return st.warn.Render(fmt.Sprintf("%d achado(s)", len(s.Records)))
	}
}

// printTools lista as ferramentas registradas em colunas alinhadas.
func printTools(w io.Writer, specs []adapters.ToolSpec) {
	st := newStyles(w)
	widths := []int{len("ARQUIVO"), len("CATEGORIA"), len("FERRAMENTA")}
	for _, s := range specs {
		widths[0] = max(widths[0], len(s.File))
		widths[1] = max(widths[1], len(s.Group))
		widths[2] = max(widths[2], len(s.Tool))
	}
	row := func(cols ...string) string {
		var b strings.Builder
		for i, c := range cols[:3] {
			b.WriteString(st.cell.Width(widths[i] + 2).Render(c))
		}
		b.WriteString(cols[3])
		return b.String()
	}

	fmt.Fprintln(w, st.title.Render(row("ARQUIVO", "CATEGORIA", "FERRAMENTA", "COLUNAS")))
	for _, s := range specs {
		fmt.Fprintln(w, row(s.File, s.Group, s.Tool, strings.Join(s.Columns, ", ")))
	}
}
