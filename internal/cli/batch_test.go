package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadPathList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "documentos.txt")
	content := `# proposições do dia
docs/pl-1.txt

docs/pl-2.txt
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write list: %v", err)
	}

	paths, err := readPathList(path)
	if err != nil {
		t.Fatalf("readPathList failed: %v", err)
	}

	want := []string{"docs/pl-1.txt", "docs/pl-2.txt"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("Expected %v, got %v", want, paths)
	}
}

func TestReadPathList_Missing(t *testing.T) {
	if _, err := readPathList("/nonexistent/lista.txt"); err == nil {
		t.Fatal("Expected error for missing list")
	}
}

func TestReportName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"docs/pl-123.txt", "pl-123.json"},
		{"pl-9.html", "pl-9.json"},
		{"semextensao", "semextensao.json"},
	}

	for _, tt := range tests {
		if got := reportName(tt.in); got != tt.want {
			t.Errorf("reportName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
