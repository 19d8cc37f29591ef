package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sena-ops/lintreport/internal/model"
)

func renderString(t *testing.T, doc *model.Document) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, doc))
	return buf.String()
}

func TestRenderHTMLEscapesCells(t *testing.T) {
	doc := &model.Document{Title: "R", Groups: []model.Group{{Name: "Python", Sections: []model.Section{{
		Title:   "Python (flake8)",
		Status:  model.StatusOK,
		Columns: []string{"File", "Message"},
		Records: []model.Record{model.NewRecord("a.py", `<script>alert("x")</script>`)},
	}}}}}

	out := renderString(t, doc)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "<th>File</th><th>Message</th>")
}

func TestRenderHTMLSectionStates(t *testing.T) {
	doc := &model.Document{Title: "Static Analysis Report", Groups: []model.Group{
		{Name: "C/C++", Sections: []model.Section{
			{Title: "C/C++ (clang-tidy)", Status: model.StatusMissing},
			{Title: "C/C++ (cppcheck)", Status: model.StatusFailed, Source: "reports/cppcheck.xml", Err: "xml inválido: <unexpected EOF>"},
		}},
		{Name: "Go", Sections: []model.Section{
			{Title: "Go (staticcheck)", Status: model.StatusOK, Records: []model.Record{}},
		}},
		{Name: "Python", Sections: []model.Section{{
			Title:    "Python (pylint)",
			Status:   model.StatusOK,
			Fallback: true,
			Columns:  []string{"Output"},
			Records:  []model.Record{{Fields: []string{"Your code has been rated at 9.00/10"}, Emphasis: true}},
			Note:     "Your code has been rated at 9.00/10",
		}, {
			Title:   "Python (pylint)",
			Status:  model.StatusOK,
			Columns: []string{"File", "Line", "Column", "Message"},
			Records: []model.Record{model.NewRecord("a.py", "1", "0", "C0114: Missing module docstring")},
			Note:    "Your code has been rated at 8.50/10",
		}}},
	}}

	out := renderString(t, doc)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<style>")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "<link")
	// html/template escapa "+" em texto
	assert.Contains(t, out, "<h2>C/C&#43;&#43;")
	assert.Contains(t, out, "No report file found.")
	assert.Contains(t, out, `<table class="failed"><tr><td>Failed to parse cppcheck.xml: xml inválido: &lt;unexpected EOF&gt;</td></tr></table>`)
	assert.Contains(t, out, "No issues found.")
	assert.Contains(t, out, `<tr class="emphasis">`)
	// no fallback a nota não se repete abaixo da tabela
	assert.Equal(t, 1, strings.Count(out, "rated at 9.00/10"))
	assert.NotContains(t, out, "<strong>Your code has been rated at 9.00/10</strong>")
	assert.Contains(t, out, "<strong>Your code has been rated at 8.50/10</strong>")
	assert.Contains(t, out, "2 findings in 3 groups.")
}

func TestRenderHTMLIsDeterministic(t *testing.T) {
	dir := writeReports(t, map[string]string{
		"flake8.txt":   "a.py:1:1: E1 x\nb.py:2:2: W2 y\n",
		"cppcheck.xml": `<results><errors><error id="i" severity="s" msg="m"><location file="a" line="1"/><location file="b" line="2"/></error></errors></results>`,
		"random.txt":   "free text\n",
	})
	build := func() string {
		return renderString(t, NewBuilder(DefaultLayout(), Options{Dir: dir, IncludeUnregistered: true}).Build())
	}

	first := build()
	assert.Equal(t, first, build())
	assert.Less(t, strings.Index(first, "<h2>C/C&#43;&#43;"), strings.Index(first, "<h2>Python"))
	assert.Less(t, strings.Index(first, "<h2>Python"), strings.Index(first, "<h2>Other"))
}

func TestRenderHTMLMalformedXML(t *testing.T) {
	dir := writeReports(t, map[string]string{"cppcheck.xml": "<results><errors><error"})
	layout := Layout{Groups: []LayoutGroup{{Name: "C/C++", Tools: []string{"cppcheck.xml"}}}}

	var out string
	require.NotPanics(t, func() {
		out = renderString(t, NewBuilder(layout, Options{Dir: dir}).Build())
	})
	assert.Equal(t, 1, strings.Count(out, "Failed to parse"))
	assert.Equal(t, 1, strings.Count(out, "<table"))
}
