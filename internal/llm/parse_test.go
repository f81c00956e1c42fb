package llm

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestParseTermList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "well-formed JSON array",
			raw:  `["Transporte Ferroviário", "Utilidade Pública"]`,
			want: []string{"Transporte Ferroviário", "Utilidade Pública"},
		},
		{
			name: "JSON array inside code fence",
			raw:  "```json\n[\"Meio Ambiente\"]\n```",
			want: []string{"Meio Ambiente"},
		},
		{
			name: "JSON array with surrounding prose",
			raw:  `Aqui estão os termos: ["Educação", "Escola Pública"] conforme solicitado.`,
			want: []string{"Educação", "Escola Pública"},
		},
		{
			name: "bulleted list fallback",
			raw:  "- Transporte\n- Utilidade Pública\n- Meio Ambiente",
			want: []string{"Transporte", "Utilidade Pública", "Meio Ambiente"},
		},
		{
			name: "numbered list fallback",
			raw:  "1. Transporte\n2) Meio Ambiente",
			want: []string{"Transporte", "Meio Ambiente"},
		},
		{
			name: "comma-delimited fallback",
			raw:  "Transporte, Meio Ambiente, Educação",
			want: []string{"Transporte", "Meio Ambiente", "Educação"},
		},
		{
			name: "duplicates collapse",
			raw:  `["Transporte", "transporte", "Transporte"]`,
			want: []string{"Transporte"},
		},
		{
			name: "empty response",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			raw:  "   \n\t  ",
			want: nil,
		},
		{
			name: "quoted entries in fallback",
			raw:  "\"Transporte\"\n'Educação'",
			want: []string{"Transporte", "Educação"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTermList(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTermList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseTermList_Bounded(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, fmt.Sprintf("Termo %d", i))
	}
	got := ParseTermList(strings.Join(lines, "\n"))
	if len(got) != maxParsedTerms {
		t.Errorf("Expected exactly %d terms, got %d", maxParsedTerms, len(got))
	}
}

func TestParseTermList_OversizedEntriesDropped(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := ParseTermList(`["` + long + `", "Transporte"]`)
	if !reflect.DeepEqual(got, []string{"Transporte"}) {
		t.Errorf("Expected oversized entry dropped, got %v", got)
	}
}

func TestBuildTermPrompt(t *testing.T) {
	prompt := BuildTermPrompt("texto do projeto", []string{"Transporte", "Educação"}, 5)

	for _, want := range []string{"5 termos", "- Transporte", "- Educação", "texto do projeto", "array JSON"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildTermPrompt_VocabularyCapped(t *testing.T) {
	vocab := make([]string, vocabularyPromptLimit+50)
	for i := range vocab {
		vocab[i] = "Termo"
	}
	prompt := BuildTermPrompt("texto", vocab, 8)
	if !strings.Contains(prompt, "e mais 50 termos") {
		t.Error("Expected vocabulary overflow marker")
	}
}

func TestBuildSummaryPrompt(t *testing.T) {
	prompt := BuildSummaryPrompt("texto da ementa", "requerimento", "")
	if !strings.Contains(prompt, "Resuma o seguinte requerimento") {
		t.Errorf("Unexpected prompt: %s", prompt)
	}
	if !strings.Contains(prompt, "estilo legislativo") {
		t.Error("Default style rules missing")
	}

	custom := BuildSummaryPrompt("texto", "proposição", "em uma única frase")
	if !strings.Contains(custom, "em uma única frase") {
		t.Error("Custom style rules not applied")
	}
}
