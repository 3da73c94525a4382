package render

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const savedPage = `<html><body><div class="myb-SettledBetItem">Santos</div></body></html>`

func writePage(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "apostas.html")
	if err := os.WriteFile(path, []byte(savedPage), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	got, err := ReadFile(writePage(t))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != savedPage {
		t.Errorf("ReadFile() = %q", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Error("ReadFile() of a missing file returned no error")
	}
}

func TestLoad_WithoutRender(t *testing.T) {
	got, err := NewRenderer().Load(writePage(t), false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != savedPage {
		t.Errorf("Load() = %q", got)
	}
}

func TestRenderFile_Missing(t *testing.T) {
	if _, err := NewRenderer().RenderFile(filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Error("RenderFile() of a missing file returned no error")
	}
}

func TestRenderFile(t *testing.T) {
	found := false
	for _, bin := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if _, err := exec.LookPath(bin); err == nil {
			found = true
			break
		}
	}
	if !found {
		t.Skip("no Chrome binary available")
	}

	got, err := NewRenderer().RenderFile(writePage(t))
	if err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}
	if !strings.Contains(got, "myb-SettledBetItem") {
		t.Errorf("rendered page lost the bet item: %q", got)
	}
}
