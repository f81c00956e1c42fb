package model

import "time"

// IndexResult is the complete output for one document: the filtered
// controlled-vocabulary terms plus the generated summary. The two halves
// are produced independently and never influence each other.
type IndexResult struct {
	Document  string       `json:"document"`             // Document name
	Type      DocumentType `json:"type"`                 // Document type
	IndexedAt time.Time    `json:"indexed_at"`           // When indexing ran

	// Terms is the final term list: validated against the vocabulary,
	// ancestor terms pruned. Empty means no in-vocabulary suggestion
	// survived (or the dictionary failed to load).
	Terms []string `json:"terms"`

	// RawSuggestions preserves the oracle output before validation,
	// for auditing what was dropped.
	RawSuggestions []string `json:"raw_suggestions,omitempty"`

	// Summary is the prose summary, empty when summarization failed
	// or was disabled.
	Summary string `json:"summary,omitempty"`

	// Prefilter names the pre-filter rule that short-circuited the
	// suggestion oracle, if any.
	Prefilter string `json:"prefilter,omitempty"`

	// Provider/Model record which oracle produced the suggestions.
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`

	// TokensUsed tracks combined token consumption of both oracle calls.
	TokensUsed int `json:"tokens_used,omitempty"`

	// Warnings collects non-fatal problems (oracle failure, hierarchy
	// cycle, dictionary unavailable). Descriptive, non-technical.
	Warnings []string `json:"warnings,omitempty"`
}
