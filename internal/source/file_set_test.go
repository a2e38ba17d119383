package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	// "a\nb\n" должен дать LineIdx = [1,3]
	id := fs.AddVirtual("cat.md", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}

	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestAddVirtualNormalizesCRLF(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("cat.md", []byte("# A\r\ntext\r\n"))
	file := fs.Get(id)

	if string(file.Content) != "# A\ntext\n" {
		t.Errorf("Expected CRLF to be normalized, got %q", string(file.Content))
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("Expected FileNormalizedCRLF flag to be set")
	}
}

func TestLoadRemovesBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cat.md")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBF# Heading\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "# Heading\n" {
		t.Errorf("Expected BOM to be stripped, got %q", string(file.Content))
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("Expected FileHadBOM flag to be set")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	// строки: "abc\n" (0-3), "de\n" (4-6), "f" (7)
	id := fs.AddVirtual("cat.md", []byte("abc\nde\nf"))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 1, 4}, // '\n' belongs to line 1
		{4, 2, 1},
		{6, 2, 3},
		{7, 3, 1},
	}
	for _, c := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: c.off, End: c.off})
		if start.Line != c.line || start.Col != c.col {
			t.Errorf("Resolve(%d): expected %d:%d, got %d:%d", c.off, c.line, c.col, start.Line, start.Col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("cat.md", []byte("first\nsecond\nthird"))
	file := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, c := range cases {
		if got := file.GetLine(c.line); got != c.want {
			t.Errorf("GetLine(%d): expected %q, got %q", c.line, c.want, got)
		}
	}
}

func TestLookup(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("docs/cat.md", nil)

	got, ok := fs.Lookup("docs/cat.md")
	if !ok || got != id {
		t.Errorf("Expected Lookup to return %d, got %d (ok=%v)", id, got, ok)
	}
	if _, ok = fs.Lookup("missing.md"); ok {
		t.Error("Expected Lookup to miss for unknown path")
	}
}
