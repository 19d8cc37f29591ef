package report

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Sena-ops/lintreport/internal/adapters"
	"github.com/Sena-ops/lintreport/internal/discovery"
	"github.com/Sena-ops/lintreport/internal/logging"
	"github.com/Sena-ops/lintreport/internal/model"
)

const DefaultTitle = "Static Analysis Report"

// Options controla a montagem do documento.
type Options struct {
	Dir                 string // diretório com os relatórios das ferramentas
	Title               string
	SkipMissing         bool // omite seções sem arquivo em vez de mostrar aviso
	IncludeUnregistered bool // acrescenta arquivos sem ferramenta registrada em "Other"
	Exclude             []string

	// Lookup resolve a ferramenta pelo nome do arquivo; padrão adapters.Lookup.
	Lookup func(file string) (adapters.ToolSpec, bool)
}

type Builder struct {
	layout Layout
	opts   Options
	log    *zap.SugaredLogger
}

func NewBuilder(layout Layout, opts Options) *Builder {
	if opts.Lookup == nil {
		opts.Lookup = adapters.Lookup
	}
	if opts.Title == "" {
		opts.Title = layout.Title
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	return &Builder{layout: layout, opts: opts, log: logging.Logger}
}

// Build percorre o layout na ordem declarada. Falhas de uma ferramenta
// ficam na própria seção e nunca interrompem o documento.
func (b *Builder) Build() *model.Document {
	doc := &model.Document{Title: b.opts.Title}

	for _, lg := range b.layout.Groups {
		group := model.Group{Name: lg.Name}
		for _, file := range lg.Tools {
			spec, ok := b.opts.Lookup(file)
			if !ok {
				spec = adapters.Generic(file)
			}
			if adapters.IsPattern(file) {
				group.Sections = append(group.Sections, b.expand(spec, file)...)
				continue
			}
			sec, keep := b.section(spec, filepath.Join(b.opts.Dir, file))
			if keep {
				group.Sections = append(group.Sections, sec)
			}
		}
		if len(group.Sections) > 0 {
			doc.Groups = append(doc.Groups, group)
		}
	}

	if b.opts.IncludeUnregistered {
		if other := b.unregistered(); len(other.Sections) > 0 {
			doc.Groups = append(doc.Groups, other)
		}
	}
	return doc
}

// expand gera uma seção por arquivo que casa com o glob, em ordem de nome.
// Sem nenhum arquivo, o glob se comporta como um relatório ausente.
func (b *Builder) expand(spec adapters.ToolSpec, pattern string) []model.Section {
	files, err := discovery.MatchReportFiles(b.opts.Dir, pattern)
	if err != nil {
		b.log.Warnw("Erro ao listar relatórios", "dir", b.opts.Dir, "padrao", pattern, "erro", err)
		return []model.Section{{
			Tool:   spec.Tool,
			Title:  spec.Title,
			Source: filepath.Join(b.opts.Dir, pattern),
			Status: model.StatusFailed,
			Err:    err.Error(),
		}}
	}
	if len(files) == 0 {
		if sec, keep := b.section(spec.ForFile(pattern), filepath.Join(b.opts.Dir, pattern)); keep {
			return []model.Section{sec}
		}
		return nil
	}

	var out []model.Section
	for _, f := range files {
		if sec, keep := b.section(spec.ForFile(f.Name), f.Path); keep {
			out = append(out, sec)
		}
	}
	return out
}

func (b *Builder) unregistered() model.Group {
	group := model.Group{Name: adapters.OtherGroup}
	files, err := discovery.DetectReportFiles(b.opts.Dir)
	if err != nil {
		b.log.Warnw("Erro ao listar relatórios", "dir", b.opts.Dir, "erro", err)
		return group
	}
	excluded := map[string]bool{}
	for _, e := range b.opts.Exclude {
		excluded[filepath.Clean(e)] = true
	}
	for _, f := range files {
		if b.layout.contains(f.Name) || excluded[filepath.Clean(f.Path)] {
			continue
		}
		if _, ok := b.opts.Lookup(f.Name); ok {
			// registrada mas fora do layout escolhido
			continue
		}
		b.log.Debugw("Relatório sem ferramenta registrada", "arquivo", f.Path, "tipo", f.Kind)
		if sec, keep := b.section(adapters.Generic(f.Name), f.Path); keep {
			group.Sections = append(group.Sections, sec)
		}
	}
	return group
}

func (b *Builder) section(spec adapters.ToolSpec, path string) (model.Section, bool) {
	sec := model.Section{
		Tool:        spec.Tool,
		Title:       spec.Title,
		Description: spec.Description,
		Source:      path,
		Columns:     spec.Columns,
	}
	if sec.Title == "" {
		sec.Title = spec.File
	}

	exists, err := discovery.Exists(path)
	if err != nil {
		b.log.Warnw("Erro ao verificar relatório", "arquivo", path, "erro", err)
		sec.Status = model.StatusFailed
		sec.Err = err.Error()
		return sec, true
	}
	if !exists {
		if b.opts.SkipMissing {
			b.log.Debugw("Relatório ausente ignorado", "arquivo", path)
			return sec, false
		}
		sec.Status = model.StatusMissing
		return sec, true
	}

	ext, err := adapters.ParseFile(spec, path)
	if err != nil {
		b.log.Warnw("Falha no parse do relatório", "ferramenta", spec.Tool, "arquivo", path, "erro", err)
		sec.Status = model.StatusFailed
		sec.Err = err.Error()
		return sec, true
	}

	sec.Status = model.StatusOK
	sec.Fallback = ext.Fallback
	sec.Note = ext.Note
	if ext.Fallback {
		sec.Columns = adapters.FallbackColumns
	}
	sec.Records = make([]model.Record, 0, len(ext.Records))
	for _, r := range ext.Records {
		sec.Records = append(sec.Records, r.Normalize(len(sec.Columns)))
	}
	b.log.Debugw("Relatório processado", "ferramenta", spec.Tool, "registros", len(sec.Records), "fallback", ext.Fallback)
	return sec, true
}
