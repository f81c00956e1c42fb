package thesaurus

import (
	"strings"
	"testing"
)

func TestLoad_GenericFirst(t *testing.T) {
	src := `# vocabulário de teste
Serviço Público > Serviço Público de Transporte > Transporte Ferroviário

Utilidade Pública
`
	dict, err := Load(strings.NewReader(src), LoaderOptions{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if dict.Len() != 4 {
		t.Errorf("Expected 4 terms, got %d: %v", dict.Len(), dict.Terms())
	}
	if dict.EdgeCount() != 2 {
		t.Errorf("Expected 2 edges, got %d", dict.EdgeCount())
	}
	if p := dict.ParentOf("Transporte Ferroviário"); p != "Serviço Público de Transporte" {
		t.Errorf("Unexpected parent: %q", p)
	}
	if p := dict.ParentOf("Serviço Público de Transporte"); p != "Serviço Público" {
		t.Errorf("Unexpected parent: %q", p)
	}
	if p := dict.ParentOf("Serviço Público"); p != "" {
		t.Errorf("Root should have no parent, got %q", p)
	}
	if p := dict.ParentOf("Utilidade Pública"); p != "" {
		t.Errorf("Isolated term should have no parent, got %q", p)
	}

	children := dict.ChildrenOf("Serviço Público")
	if len(children) != 1 || children[0] != "Serviço Público de Transporte" {
		t.Errorf("Unexpected children: %v", children)
	}
}

func TestLoad_SpecificFirst(t *testing.T) {
	src := "Transporte Ferroviário > Transporte > Serviço Público"
	dict, err := Load(strings.NewReader(src), LoaderOptions{Orientation: SpecificFirst})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if p := dict.ParentOf("Transporte Ferroviário"); p != "Transporte" {
		t.Errorf("Expected parent Transporte, got %q", p)
	}
	if p := dict.ParentOf("Transporte"); p != "Serviço Público" {
		t.Errorf("Expected parent Serviço Público, got %q", p)
	}
}

func TestLoad_LevelCleaning(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		terms int
		edges int
	}{
		{"tabs stripped inside levels", "Trans\tporte > \tFerroviário\t", 2, 1},
		{"blank levels dropped", "Transporte > > Ferroviário", 2, 1},
		{"only delimiters", "> > >", 0, 0},
		{"single term", "   Utilidade Pública   ", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict, err := Load(strings.NewReader(tt.line), LoaderOptions{})
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if dict.Len() != tt.terms {
				t.Errorf("Expected %d terms, got %d: %v", tt.terms, dict.Len(), dict.Terms())
			}
			if dict.EdgeCount() != tt.edges {
				t.Errorf("Expected %d edges, got %d", tt.edges, dict.EdgeCount())
			}
		})
	}
}

func TestLoad_CustomDelimiter(t *testing.T) {
	dict, err := Load(strings.NewReader("Transporte | Transporte Ferroviário"), LoaderOptions{Delimiter: "|"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p := dict.ParentOf("Transporte Ferroviário"); p != "Transporte" {
		t.Errorf("Unexpected parent: %q", p)
	}
}

func TestLoad_DuplicateLines(t *testing.T) {
	src := "Transporte > Transporte Ferroviário\nTransporte > Transporte Ferroviário\n"
	dict, err := Load(strings.NewReader(src), LoaderOptions{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if dict.Len() != 2 {
		t.Errorf("Expected 2 terms, got %d", dict.Len())
	}
	if got := dict.ChildrenOf("Transporte"); len(got) != 1 {
		t.Errorf("Children should not duplicate, got %v", got)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	dict, err := LoadFile("/nonexistent/dicionario.txt", LoaderOptions{})
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "indisponível") {
		t.Errorf("Expected SourceUnavailable condition, got: %v", err)
	}
	// The dictionary must still be usable: empty, not nil
	if dict == nil {
		t.Fatal("Expected empty dictionary, got nil")
	}
	if dict.Len() != 0 {
		t.Errorf("Expected empty dictionary, got %d terms", dict.Len())
	}
	if got := dict.Validate([]string{"Transporte"}); len(got) != 0 {
		t.Errorf("Empty dictionary should validate nothing, got %v", got)
	}
}

func TestParseOrientation(t *testing.T) {
	if ParseOrientation("specific-first") != SpecificFirst {
		t.Error("Expected SpecificFirst")
	}
	if ParseOrientation("generic-first") != GenericFirst {
		t.Error("Expected GenericFirst")
	}
	if ParseOrientation("") != GenericFirst {
		t.Error("Unknown orientation should default to GenericFirst")
	}
}
