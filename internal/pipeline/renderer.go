package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tiagobortoncello/assistente-rt/internal/model"
)

// Renderer writes index results to the terminal and to report files.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderSummary prints the human-readable result to stdout.
func (r *Renderer) RenderSummary(result *model.IndexResult) {
	r.renderSummaryTo(os.Stdout, result)
}

func (r *Renderer) renderSummaryTo(w io.Writer, result *model.IndexResult) {
	fmt.Fprintf(w, "Documento: %s (%s)\n\n", result.Document, result.Type.Label())

	fmt.Fprintln(w, "Termos sugeridos:")
	if len(result.Terms) == 0 {
		fmt.Fprintln(w, "  Nenhum termo sugerido.")
	} else {
		fmt.Fprintf(w, "  %s\n", strings.Join(result.Terms, ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resumo gerado:")
	if result.Summary == "" {
		fmt.Fprintln(w, "  (sem resumo)")
	} else {
		fmt.Fprintf(w, "  %s\n", result.Summary)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(w)
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "Aviso: %s\n", warning)
		}
	}
}

// RenderJSON writes the result as JSON to the given path.
func (r *Renderer) RenderJSON(result *model.IndexResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes the result as a Markdown report to the given path.
func (r *Renderer) RenderMarkdown(result *model.IndexResult, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", result.Document)
	fmt.Fprintf(&b, "- Tipo: %s\n", result.Type.Label())
	fmt.Fprintf(&b, "- Indexado em: %s\n", result.IndexedAt.Format("2006-01-02 15:04:05 MST"))
	if result.Provider != "" {
		fmt.Fprintf(&b, "- Provedor: %s\n", result.Provider)
	}
	if result.Prefilter != "" {
		fmt.Fprintf(&b, "- Pré-filtro aplicado: %s\n", result.Prefilter)
	}

	b.WriteString("\n## Termos sugeridos\n\n")
	if len(result.Terms) == 0 {
		b.WriteString("Nenhum termo sugerido.\n")
	} else {
		for _, term := range result.Terms {
			fmt.Fprintf(&b, "- %s\n", term)
		}
	}

	b.WriteString("\n## Resumo\n\n")
	if result.Summary == "" {
		b.WriteString("(sem resumo)\n")
	} else {
		b.WriteString(result.Summary + "\n")
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n## Avisos\n\n")
		for _, warning := range result.Warnings {
			fmt.Fprintf(&b, "- %s\n", warning)
		}
	}

	if r.includeFooter {
		b.WriteString("\n---\nGerado pelo assistente de indexação e resumos — GIL/GDI\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
