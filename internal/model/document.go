package model

type Status string

const (
	StatusOK      Status = "ok"
	StatusMissing Status = "missing"
	StatusFailed  Status = "failed"
)

// Section é a tabela de uma ferramenta dentro do relatório.
type Section struct {
	Tool        string
	Title       string
	Description string
	Source      string // caminho do arquivo de relatório
	Columns     []string
	Records     []Record
	Status      Status
	Err         string
	Note        string
	Fallback    bool
}

func (s Section) Empty() bool {
	return s.Status == StatusOK && len(s.Records) == 0
}

type Group struct {
	Name     string
	Sections []Section
}

// Findings soma os registros de todas as seções da categoria.
func (g Group) Findings() int {
	n := 0
	for _, s := range g.Sections {
		n += len(s.Records)
	}
	return n
}

type Document struct {
	Title  string
	Groups []Group
}

func (d *Document) Findings() int {
	n := 0
	for _, g := range d.Groups {
		n += g.Findings()
	}
	return n
}

// Count retorna quantas seções estão no status informado.
func (d *Document) Count(status Status) int {
	n := 0
	for _, g := range d.Groups {
		for _, s := range g.Sections {
			if s.Status == status {
				n++
			}
		}
	}
	return n
}

func (s Section) Missing() bool { return s.Status == StatusMissing }

func (s Section) Failed() bool { return s.Status == StatusFailed }
