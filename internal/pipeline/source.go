package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tiagobortoncello/assistente-rt/internal/model"
)

// defaultMaxBytes caps how much document text is read; a pasted ementa
// is a few KB, anything beyond this is a paste accident.
const defaultMaxBytes int64 = 2_000_000

// Source reads document text from files or stdin.
type Source struct {
	maxBytes int64
}

// NewSource creates a document source with the given size cap.
func NewSource(maxBytes int64) *Source {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &Source{maxBytes: maxBytes}
}

// Read loads one document. Path "-" reads from stdin.
func (s *Source) Read(path string, docType model.DocumentType) (model.Document, error) {
	var (
		r    io.Reader
		name string
	)

	if path == "-" {
		r = os.Stdin
		name = "stdin"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return model.Document{}, fmt.Errorf("abrir documento: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
		name = filepath.Base(path)
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes))
	if err != nil {
		return model.Document{}, fmt.Errorf("ler documento: %w", err)
	}

	return model.Document{
		Name: name,
		Type: docType,
		Text: string(data),
	}, nil
}
