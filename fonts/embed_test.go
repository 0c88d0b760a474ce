package fonts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBuiltin(t *testing.T) {
	for _, name := range []string{"go:regular", "go:Bold", "go:monobolditalic"} {
		data, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("Load(%q) returned empty data", name)
		}
	}
	if _, err := Load("go:comic"); err == nil {
		t.Fatalf("expected error for unknown built-in font")
	}
}

func TestLoadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glyphs.ttf")
	if err := os.WriteFile(path, []byte("fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := Load(path)
	if err != nil || string(data) != "fake" {
		t.Fatalf("Load(path) = %q, %v", data, err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestStyles(t *testing.T) {
	if !bytes.Equal(Body(Regular), builtin["regular"]) || !bytes.Equal(Mono(Regular), builtin["mono"]) {
		t.Fatalf("regular styles resolved to the wrong font")
	}
	if !bytes.Equal(Body(BoldItalic), builtin["bolditalic"]) || !bytes.Equal(Mono(Bold), builtin["monobold"]) {
		t.Fatalf("styled fonts resolved to the wrong font")
	}
}
