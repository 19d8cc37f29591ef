package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Sena-ops/lintreport/internal/model"
)

var mdEscaper = strings.NewReplacer("|", `\|`, "\r", "", "\n", "<br>", "<", "&lt;", ">", "&gt;")

func RenderMarkdown(w io.Writer, doc *model.Document) error {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("# %s\n\n", doc.Title))
	for _, g := range doc.Groups {
		builder.WriteString(fmt.Sprintf("## %s (%d)\n\n", g.Name, g.Findings()))
		for _, s := range g.Sections {
			builder.WriteString(fmt.Sprintf("### %s\n\n", s.Title))
			switch {
			case s.Missing():
				builder.WriteString("_No report file found._\n\n")
				continue
			case s.Failed():
				builder.WriteString(fmt.Sprintf("**Failed to parse:** %s\n\n", mdEscaper.Replace(s.Err)))
				continue
			case len(s.Records) == 0:
				builder.WriteString("_No issues found._\n\n")
				continue
			}

			builder.WriteString("|")
			for _, c := range s.Columns {
				builder.WriteString(" " + mdEscaper.Replace(c) + " |")
			}
			builder.WriteString("\n|")
			for range s.Columns {
				builder.WriteString(" --- |")
			}
			builder.WriteString("\n")
			for _, r := range s.Records {
				builder.WriteString("|")
				for _, f := range r.Fields {
					cell := mdEscaper.Replace(f)
					if r.Emphasis && cell != "" {
						cell = "**" + cell + "**"
					}
					builder.WriteString(" " + cell + " |")
				}
				builder.WriteString("\n")
			}
			// no fallback a nota já aparece como linha destacada
			if s.Note != "" && !s.Fallback {
				builder.WriteString(fmt.Sprintf("\n**%s**\n", mdEscaper.Replace(s.Note)))
			}
			builder.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, builder.String())
	return err
}
