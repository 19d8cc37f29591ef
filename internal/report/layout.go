package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Sena-ops/lintreport/internal/adapters"
)

// Layout define a ordem das categorias e das ferramentas no relatório.
//
//	title: Static Analysis Report
//	groups:
//	  - name: Python
//	    tools: [flake8.txt, pylint.txt]
type Layout struct {
	Title  string        `yaml:"title"`
	Groups []LayoutGroup `yaml:"groups"`
}

type LayoutGroup struct {
	Name  string   `yaml:"name"`
	Tools []string `yaml:"tools"`
}

// DefaultLayout segue a ordem de declaração do registro de ferramentas.
func DefaultLayout() Layout {
	var layout Layout
	index := map[string]int{}
	for _, spec := range adapters.Specs() {
		i, ok := index[spec.Group]
		if !ok {
			i = len(layout.Groups)
			index[spec.Group] = i
			layout.Groups = append(layout.Groups, LayoutGroup{Name: spec.Group})
		}
		layout.Groups[i].Tools = append(layout.Groups[i].Tools, spec.File)
	}
	return layout
}

// LoadLayout lê um layout YAML.
func LoadLayout(path string) (Layout, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("ler layout: %w", err)
	}
	var layout Layout
	if err := yaml.Unmarshal(b, &layout); err != nil {
		return Layout{}, fmt.Errorf("parse do layout %s: %w", path, err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return layout, nil
}

func (l Layout) Validate() error {
	if len(l.Groups) == 0 {
		return fmt.Errorf("nenhuma categoria definida")
	}
	seen := map[string]string{}
	for _, g := range l.Groups {
		if g.Name == "" {
			return fmt.Errorf("categoria sem nome")
		}
		for _, t := range g.Tools {
			if prev, ok := seen[t]; ok {
				return fmt.Errorf("ferramenta '%s' repetida em '%s' e '%s'", t, prev, g.Name)
			}
			seen[t] = g.Name
		}
	}
	return nil
}

// contains informa se o arquivo já é citado pelo layout.
func (l Layout) contains(file string) bool {
	for _, g := range l.Groups {
		for _, t := range g.Tools {
			if t == file {
				return true
			}
		}
	}
	return false
}
