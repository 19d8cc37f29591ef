package discovery

type ReportKind string

const (
	Text ReportKind = "text"
	XML  ReportKind = "xml"
)

type ReportFile struct {
	Kind ReportKind
	Name string // nome base, usado para achar a ferramenta
	Path string
}
