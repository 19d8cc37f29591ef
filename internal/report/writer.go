package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sena-ops/lintreport/internal/model"
	"github.com/Sena-ops/lintreport/internal/sarif"
)

type Format string

const (
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatSARIF    Format = "sarif"
)

var Formats = []Format{FormatHTML, FormatJSON, FormatMarkdown, FormatSARIF}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FormatHTML, nil
	case "md":
		return FormatMarkdown, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("formato '%s' não suportado (html, json, markdown, sarif)", s)
}

// Render escreve o documento no formato pedido.
func Render(w io.Writer, format Format, doc *model.Document) error {
	switch format {
	case FormatHTML:
		return RenderHTML(w, doc)
	case FormatJSON:
		return RenderJSON(w, doc)
	case FormatMarkdown:
		return RenderMarkdown(w, doc)
	case FormatSARIF:
		return sarif.Write(w, doc)
	default:
		return fmt.Errorf("formato '%s' não suportado", format)
	}
}

// WriteFile renderiza em memória e só então grava, criando o diretório.
// Não conseguir gravar é o único erro fatal da execução.
func WriteFile(path string, format Format, doc *model.Document) error {
	var buf bytes.Buffer
	if err := Render(&buf, format, doc); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("criar diretório de saída: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("escrever relatório: %w", err)
	}
	return nil
}
