package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sena-ops/lintreport/internal/adapters"
	"github.com/Sena-ops/lintreport/internal/model"
)

func writeReports(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func findSection(t *testing.T, doc *model.Document, group, title string) model.Section {
	t.Helper()
	for _, g := range doc.Groups {
		if g.Name != group {
			continue
		}
		for _, s := range g.Sections {
			if s.Title == title {
				return s
			}
		}
	}
	t.Fatalf("seção %s/%s não encontrada", group, title)
	return model.Section{}
}

func TestBuildDefaultLayout(t *testing.T) {
	dir := writeReports(t, map[string]string{
		"flake8.txt":      "app.py:1:1: F401 'os' imported but unused\n",
		"pylint.txt":      "Your code has been rated at 10.00/10\n",
		"cppcheck.xml":    `<results><errors><error id="x" severity="style" msg="m"><location file="a.c" line="1"/></error></errors></results>`,
		"checkstyle.xml":  `<checkstyle><file name="A.java"><error line="2"`,
		"checkmake.txt":   "R D F 7\nmsg1\n",
		"staticcheck.txt": "",
	})

	doc := NewBuilder(DefaultLayout(), Options{Dir: dir}).Build()
	assert.Equal(t, DefaultTitle, doc.Title)

	var names []string
	for _, g := range doc.Groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"C/C++", "Python", "Java", "Go", "Makefile", "Templates", "Security"}, names)

	flake := findSection(t, doc, "Python", "Python (flake8)")
	assert.Equal(t, model.StatusOK, flake.Status)
	assert.Equal(t, []string{"app.py", "1", "1", "F401 'os' imported but unused"}, flake.Records[0].Fields)

	pylint := findSection(t, doc, "Python", "Python (pylint)")
	assert.True(t, pylint.Fallback)
	assert.Equal(t, adapters.FallbackColumns, pylint.Columns)
	assert.True(t, pylint.Records[0].Emphasis)
	assert.Equal(t, "Your code has been rated at 10.00/10", pylint.Note)

	cpp := doc.Groups[0].Sections[0]
	assert.Equal(t, "C/C++ (cppcheck)", cpp.Title)
	assert.Equal(t, []string{"a.c", "1", "style", "m", "x"}, cpp.Records[0].Fields)

	clang := findSection(t, doc, "C/C++", "C/C++ (clang-tidy)")
	assert.Equal(t, model.StatusMissing, clang.Status)

	for _, s := range doc.Groups[2].Sections {
		if s.Source == filepath.Join(dir, "checkstyle.xml") {
			assert.Equal(t, model.StatusFailed, s.Status)
			assert.NotEmpty(t, s.Err)
		}
	}

	static := findSection(t, doc, "Go", "Go (staticcheck)")
	assert.True(t, static.Empty())
}

func TestBuildSkipMissing(t *testing.T) {
	dir := writeReports(t, map[string]string{"flake8.txt": "a.py:1:1: E1 x\n"})

	doc := NewBuilder(DefaultLayout(), Options{Dir: dir, SkipMissing: true}).Build()
	require.Len(t, doc.Groups, 1)
	assert.Equal(t, "Python", doc.Groups[0].Name)
	require.Len(t, doc.Groups[0].Sections, 1)
	assert.Equal(t, "flake8", doc.Groups[0].Sections[0].Tool)
}

func TestBuildMissingDirectory(t *testing.T) {
	doc := NewBuilder(DefaultLayout(), Options{Dir: filepath.Join(t.TempDir(), "nada"), IncludeUnregistered: true}).Build()
	assert.Equal(t, len(adapters.Specs()), doc.Count(model.StatusMissing))
	assert.Zero(t, doc.Findings())
}

func TestBuildUnregisteredFiles(t *testing.T) {
	dir := writeReports(t, map[string]string{
		"zeta.log":           "line z\n",
		"alpha.txt":          "line a\n\nline b\n",
		"summary.xml":        "<not-parsed>\n",
		"clang-tidy.txt":     "a.c:1:1: warning: x\n",
		"static_report.json": "{}",
	})
	layout := Layout{Groups: []LayoutGroup{{Name: "C/C++", Tools: []string{"cppcheck.txt"}}}}

	doc := NewBuilder(layout, Options{Dir: dir, IncludeUnregistered: true, SkipMissing: true}).Build()
	require.Len(t, doc.Groups, 1)
	other := doc.Groups[0]
	assert.Equal(t, adapters.OtherGroup, other.Name)

	var titles []string
	for _, s := range other.Sections {
		titles = append(titles, s.Title)
		assert.Equal(t, []string{"", "Message"}, s.Columns)
	}
	// clang-tidy.txt é registrada: fica fora de "Other" mesmo sem estar no layout
	assert.Equal(t, []string{"alpha.txt", "summary.xml", "zeta.log"}, titles)
	assert.Equal(t, []string{"", "line b"}, other.Sections[0].Records[1].Fields)
}

func TestBuildPerFileClangTidyReports(t *testing.T) {
	dir := writeReports(t, map[string]string{
		"clang_tidy_util.txt": "src/util.c:9:1: note: x\n",
		"clang_tidy_main.txt": "src/a.c:4:10: warning: unused variable 'x'\n",
	})

	doc := NewBuilder(DefaultLayout(), Options{Dir: dir, IncludeUnregistered: true, SkipMissing: true}).Build()
	require.Len(t, doc.Groups, 1)
	group := doc.Groups[0]
	assert.Equal(t, "C/C++", group.Name)

	require.Len(t, group.Sections, 2)
	first, second := group.Sections[0], group.Sections[1]
	assert.Equal(t, "C/C++ (clang-tidy): clang_tidy_main.txt", first.Title)
	assert.Equal(t, "C/C++ (clang-tidy): clang_tidy_util.txt", second.Title)
	assert.Equal(t, "clang-tidy", first.Tool)
	assert.Equal(t, filepath.Join(dir, "clang_tidy_main.txt"), first.Source)
	assert.Equal(t, []string{"File", "Line", "Column", "Message"}, first.Columns)
	assert.False(t, first.Fallback)
	assert.Equal(t, []string{"src/a.c", "4", "10", "warning: unused variable 'x'"}, first.Records[0].Fields)
}

func TestBuildPatternWithoutFiles(t *testing.T) {
	layout := Layout{Groups: []LayoutGroup{{Name: "C/C++", Tools: []string{"clang_tidy_*.txt"}}}}
	doc := NewBuilder(layout, Options{Dir: t.TempDir()}).Build()
	require.Len(t, doc.Groups, 1)
	require.Len(t, doc.Groups[0].Sections, 1)
	sec := doc.Groups[0].Sections[0]
	assert.Equal(t, model.StatusMissing, sec.Status)
	assert.Equal(t, "C/C++ (clang-tidy): clang_tidy_*.txt", sec.Title)
}

func TestBuildExclude(t *testing.T) {
	dir := writeReports(t, map[string]string{"out.txt": "previous run\n"})
	doc := NewBuilder(Layout{}, Options{
		Dir:                 dir,
		IncludeUnregistered: true,
		Exclude:             []string{filepath.Join(dir, "out.txt")},
	}).Build()
	assert.Empty(t, doc.Groups)
}

func TestBuildIsolatesPanics(t *testing.T) {
	dir := writeReports(t, map[string]string{
		"boom.txt": "x\n",
		"ok.txt":   "a:1:2: fine\n",
	})
	lookup := func(file string) (adapters.ToolSpec, bool) {
		switch file {
		case "boom.txt":
			return adapters.ToolSpec{File: file, Tool: "boom", Title: "Boom", Columns: []string{"Message"},
				Parse: func([]byte) (adapters.Extraction, error) {
					var recs []model.Record
					_ = recs[3]
					return adapters.Extraction{}, nil
				}}, true
		case "ok.txt":
			return adapters.ToolSpec{File: file, Tool: "ok", Title: "Ok", Columns: []string{"File", "Line", "Column", "Message"},
				Parse: adapters.ParseLocations}, true
		}
		return adapters.ToolSpec{}, false
	}
	layout := Layout{Groups: []LayoutGroup{{Name: "Misc", Tools: []string{"boom.txt", "ok.txt"}}}}

	doc := NewBuilder(layout, Options{Dir: dir, Lookup: lookup}).Build()
	require.Len(t, doc.Groups[0].Sections, 2)
	assert.Equal(t, model.StatusFailed, doc.Groups[0].Sections[0].Status)
	assert.Contains(t, doc.Groups[0].Sections[0].Err, "boom")
	assert.Equal(t, model.StatusOK, doc.Groups[0].Sections[1].Status)
	assert.Len(t, doc.Groups[0].Sections[1].Records, 1)
}

func TestBuildPadsShortRecords(t *testing.T) {
	dir := writeReports(t, map[string]string{"flake8.txt": "a.py:12\n"})
	layout := Layout{Groups: []LayoutGroup{{Name: "Python", Tools: []string{"flake8.txt"}}}}

	doc := NewBuilder(layout, Options{Dir: dir}).Build()
	assert.Equal(t, []string{"a.py", "12", "", ""}, doc.Groups[0].Sections[0].Records[0].Fields)
}

func TestBuildUnknownToolInLayout(t *testing.T) {
	dir := writeReports(t, map[string]string{"eslint.txt": "src/a.js: bad\n"})
	layout := Layout{Title: "JS", Groups: []LayoutGroup{{Name: "JavaScript", Tools: []string{"eslint.txt"}}}}

	doc := NewBuilder(layout, Options{Dir: dir}).Build()
	assert.Equal(t, "JS", doc.Title)
	sec := doc.Groups[0].Sections[0]
	assert.Equal(t, "eslint.txt", sec.Title)
	assert.Equal(t, []string{"", "src/a.js: bad"}, sec.Records[0].Fields)
}
