package extract

import (
	"strings"
	"testing"
)

func TestPlainText_Passthrough(t *testing.T) {
	got := PlainText("  Declara de utilidade pública   a entidade X.  ")
	want := "Declara de utilidade pública a entidade X."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestPlainText_HTML(t *testing.T) {
	raw := `<html><head><style>p{color:red}</style><script>alert(1)</script></head>
<body><h1>PL 123/2026</h1><p>Declara de utilidade pública a entidade X.</p></body></html>`

	got := PlainText(raw)
	if strings.Contains(got, "alert") || strings.Contains(got, "color:red") {
		t.Errorf("Script/style content leaked: %q", got)
	}
	if !strings.Contains(got, "PL 123/2026") {
		t.Errorf("Heading text missing: %q", got)
	}
	if !strings.Contains(got, "Declara de utilidade pública a entidade X.") {
		t.Errorf("Body text missing: %q", got)
	}
}

func TestPlainText_AngleBracketsNotHTML(t *testing.T) {
	// A dictionary-style line with ">" must not be treated as markup
	raw := "Serviço Público > Transporte Ferroviário"
	if got := PlainText(raw); got != raw {
		t.Errorf("Expected %q unchanged, got %q", raw, got)
	}
}

func TestPlainText_Empty(t *testing.T) {
	if got := PlainText("   \n  "); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestPlainText_BlankLineCollapse(t *testing.T) {
	got := PlainText("linha um\n\n\n\n\nlinha dois")
	want := "linha um\n\nlinha dois"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
