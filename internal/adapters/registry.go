package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OtherGroup agrupa relatórios encontrados no diretório sem registro.
const OtherGroup = "Other"

var (
	locationColumns = []string{"File", "Line", "Column", "Message"}
	xmlColumns      = []string{"File", "Line", "Severity", "Message", "Id"}
	styleColumns    = []string{"File", "Line", "Severity", "Message", "Source"}
	sastColumns     = []string{"File", "Line", "Severity", "Message", "Rule"}
	genericColumns  = []string{"", "Message"}

	// FallbackColumns substitui o cabeçalho quando o parse degrada para
	// linhas brutas.
	FallbackColumns = []string{"Output"}
)

// ToolSpec registra como ler o relatório de uma ferramenta.
type ToolSpec struct {
	File        string // nome do arquivo de relatório ou glob (filepath.Match)
	Tool        string
	Title       string
	Description string
	Group       string
	Columns     []string
	Parse       ParseFunc
}

// A ordem de declaração define a ordem das categorias e seções no relatório.
var builtin = []ToolSpec{
	{File: "cppcheck.xml", Tool: "cppcheck", Title: "C/C++ (cppcheck)", Group: "C/C++",
		Description: "Static analysis of C/C++ code, XML output.", Columns: xmlColumns, Parse: ParseCppcheckXML},
	{File: "cppcheck.txt", Tool: "cppcheck", Title: "C/C++ (cppcheck)", Group: "C/C++",
		Description: "Static analysis of C/C++ code, text output.", Columns: locationColumns, Parse: ParseLocations},
	{File: "clang-tidy.txt", Tool: "clang-tidy", Title: "C/C++ (clang-tidy)", Group: "C/C++",
		Description: "Clang based C/C++ linter.", Columns: locationColumns, Parse: ParseLocations},
	{File: "clang_tidy_*.txt", Tool: "clang-tidy", Title: "C/C++ (clang-tidy)", Group: "C/C++",
		Description: "Clang based C/C++ linter, one report per source file.", Columns: locationColumns, Parse: ParseLocations},
	{File: "flake8.txt", Tool: "flake8", Title: "Python (flake8)", Group: "Python",
		Description: "Style guide enforcement for Python.", Columns: locationColumns, Parse: ParseColonFields},
	{File: "pylint.txt", Tool: "pylint", Title: "Python (pylint)", Group: "Python",
		Description: "Python code analysis and rating.", Columns: locationColumns, Parse: ParseRated},
	{File: "checkstyle.xml", Tool: "checkstyle", Title: "Java (checkstyle)", Group: "Java",
		Description: "Java coding standard checker, XML output.", Columns: styleColumns, Parse: ParseCheckstyleXML},
	{File: "checkstyle.txt", Tool: "checkstyle", Title: "Java (checkstyle)", Group: "Java",
		Description: "Java coding standard checker, text output.", Columns: locationColumns, Parse: ParseColonFields},
	{File: "staticcheck.txt", Tool: "staticcheck", Title: "Go (staticcheck)", Group: "Go",
		Description: "Advanced Go linter.", Columns: locationColumns, Parse: ParseLocations},
	{File: "golint.xml", Tool: "golangci-lint", Title: "Go (golangci-lint)", Group: "Go",
		Description: "Go linters aggregator, checkstyle output.", Columns: styleColumns, Parse: ParseCheckstyleXML},
	{File: "checkmake.txt", Tool: "checkmake", Title: "Makefile (checkmake)", Group: "Makefile",
		Description: "Linter for Makefiles.", Columns: []string{"Rule", "Description", "File", "Line", "Message"}, Parse: ParseLinePairs},
	{File: "mustache.txt", Tool: "mustache", Title: "Mustache", Group: "Templates",
		Description: "Mustache template lint output.", Columns: genericColumns, Parse: ParseGeneric},
	{File: "semgrep.json", Tool: "semgrep", Title: "Security (semgrep)", Group: "Security",
		Description: "Semantic code scanner, JSON output.", Columns: sastColumns, Parse: ParseSemgrepJSON},
	{File: "trivy.json", Tool: "trivy", Title: "Security (trivy)", Group: "Security",
		Description: "Misconfiguration scan of IaC files, JSON output.", Columns: xmlColumns, Parse: ParseTrivyJSON},
	{File: "kics.json", Tool: "kics", Title: "Security (kics)", Group: "Security",
		Description: "Infrastructure as code scanner, JSON output.", Columns: xmlColumns, Parse: ParseKICSJSON},
}

var registry = func() map[string]ToolSpec {
	m := make(map[string]ToolSpec, len(builtin))
	for _, s := range builtin {
		m[s.File] = s
	}
	return m
}()

// Lookup devolve o registro da ferramenta dona do arquivo. Nomes exatos
// têm precedência; depois vale o primeiro glob declarado que casar.
func Lookup(file string) (ToolSpec, bool) {
	if spec, ok := registry[file]; ok {
		return spec, true
	}
	for _, spec := range builtin {
		if !spec.IsPattern() {
			continue
		}
		if ok, _ := filepath.Match(spec.File, file); ok {
			return spec, true
		}
	}
	return ToolSpec{}, false
}

// IsPattern informa se File é um glob em vez de um nome fixo.
func (s ToolSpec) IsPattern() bool {
	return IsPattern(s.File)
}

func IsPattern(file string) bool {
	return strings.ContainsAny(file, "*?[")
}

// ForFile especializa um registro de glob para um arquivo concreto.
func (s ToolSpec) ForFile(name string) ToolSpec {
	if !s.IsPattern() {
		return s
	}
	s.File = name
	s.Title = fmt.Sprintf("%s: %s", s.Title, name)
	return s
}

// Register adiciona ou substitui uma ferramenta em tempo de execução.
// Ferramentas novas vão para o fim da ordem de declaração.
func Register(spec ToolSpec) {
	if _, ok := registry[spec.File]; !ok {
		builtin = append(builtin, spec)
	} else {
		for i := range builtin {
			if builtin[i].File == spec.File {
				builtin[i] = spec
			}
		}
	}
	registry[spec.File] = spec
}

// Specs devolve as ferramentas na ordem de declaração.
func Specs() []ToolSpec {
	out := make([]ToolSpec, len(builtin))
	copy(out, builtin)
	return out
}

// Generic monta o registro usado para arquivos sem ferramenta conhecida.
func Generic(file string) ToolSpec {
	return ToolSpec{
		File:    file,
		Tool:    file,
		Title:   file,
		Group:   OtherGroup,
		Columns: genericColumns,
		Parse:   ParseGeneric,
	}
}

// Groups devolve os nomes de categoria na ordem em que aparecem.
func Groups() []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range builtin {
		if !seen[s.Group] {
			seen[s.Group] = true
			out = append(out, s.Group)
		}
	}
	return out
}

// ParseFile lê o relatório inteiro e aplica o parser da ferramenta.
// Um panic no parser vira erro, isolando a falha nesta ferramenta.
func ParseFile(spec ToolSpec, path string) (ext Extraction, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Extraction{}, err
	}
	if spec.Parse == nil {
		return Extraction{}, fmt.Errorf("ferramenta '%s' sem parser", spec.Tool)
	}
	defer func() {
		if r := recover(); r != nil {
			ext, err = Extraction{}, fmt.Errorf("panic no parser de %s: %v", spec.Tool, r)
		}
	}()
	return spec.Parse(b)
}
