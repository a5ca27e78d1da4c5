package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("input.xml", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	// Тот же путь с новым содержимым даёт новый ID
	id2 := fs.Add("./input.xml", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("input.xml")
	if !exists || latestID != id2 {
		t.Errorf("Expected latest ID %d, got %d (exists=%v)", id2, latestID, exists)
	}

	if string(fs.Get(id1).Content) != "hello world" {
		t.Errorf("old version lost: %q", fs.Get(id1).Content)
	}
	if string(fs.Get(id2).Content) != "hello universe" {
		t.Errorf("new version = %q", fs.Get(id2).Content)
	}
}

// TestAddVirtualLineIdx проверяет правильность построения LineIdx для AddVirtual
func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.txt", []byte("a\nb\n"))
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

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "a\nb\n" {
		t.Errorf("Expected normalized content, got %q", file.Content)
	}
	if file.Flags&FileHadBOM == 0 || file.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("Expected BOM and CRLF flags, got %b", file.Flags)
	}
	if file.Flags&FileVirtual != 0 {
		t.Error("disk file must not be virtual")
	}

	if _, err := fs.Load(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadReader(t *testing.T) {
	fs := NewFileSet()
	id, err := fs.LoadReader(StdinPath, strings.NewReader("x\r\ny"))
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	file := fs.Get(id)
	if file.Path != StdinPath || string(file.Content) != "x\ny" {
		t.Errorf("unexpected file %q %q", file.Path, file.Content)
	}
}

func TestCRLFNormalization(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{"a\r\nb\r\n", "a\nb\n", true},
		{"a\rb", "a\rb", false},
		{"plain", "plain", false},
		{"\r\n\r", "\n\r", true},
	}
	for _, tt := range tests {
		got, changed := normalizeCRLF([]byte(tt.in))
		if string(got) != tt.want || changed != tt.changed {
			t.Errorf("normalizeCRLF(%q) = %q %v, want %q %v", tt.in, got, changed, tt.want, tt.changed)
		}
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.txt", []byte("ab\ncd\n\nα"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам '\n' принадлежит первой строке
		{3, LineCol{2, 1}},
		{4, LineCol{2, 2}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{9, LineCol{4, 3}}, // байтовые колонки
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestInterner(t *testing.T) {
	interner := NewInterner()

	if s, ok := interner.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("NoStringID must map to the empty string, got %q %v", s, ok)
	}

	id1 := interner.Intern("hello")
	id2 := interner.Intern("hello")
	id3 := interner.Intern("world")
	if id1 != id2 || id1 == id3 || id1 == NoStringID {
		t.Errorf("unexpected ids %d %d %d", id1, id2, id3)
	}
	if interner.Count(id1) != 2 || interner.Count(id3) != 1 {
		t.Errorf("unexpected counts %d %d", interner.Count(id1), interner.Count(id3))
	}
	if interner.Len() != 3 {
		t.Errorf("Len должен быть 3, получили: %d", interner.Len())
	}
	if _, ok := interner.Lookup(StringID(99)); ok || interner.Count(StringID(99)) != 0 {
		t.Error("unknown id must miss")
	}
}
