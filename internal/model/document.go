package model

// DocumentType identifies the kind of legislative text being indexed.
// The type feeds the summarization style prompt, nothing else.
type DocumentType string

const (
	TypeProposicao   DocumentType = "proposicao"
	TypeRequerimento DocumentType = "requerimento"
)

// ParseDocumentType normalizes a user-supplied type string.
// Unknown values fall back to proposicao, the most common input.
func ParseDocumentType(s string) DocumentType {
	switch s {
	case string(TypeRequerimento), "req":
		return TypeRequerimento
	default:
		return TypeProposicao
	}
}

// Label returns the Portuguese display name used in prompts and reports.
func (t DocumentType) Label() string {
	if t == TypeRequerimento {
		return "requerimento"
	}
	return "proposição"
}

// Document is a single legislative text submitted for indexing.
type Document struct {
	// Name identifies the document in reports (file name, or "stdin")
	Name string `json:"name"`

	// Type selects the summary style (proposicao, requerimento)
	Type DocumentType `json:"type"`

	// Text is the plain text of the ementa or full proposition
	Text string `json:"text"`
}
