package dictionary

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestTextSourceBuffersSmallFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	content := "the 100\nquick 90\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, err := NewTextSource(path, DefaultMmapThreshold)
	if err != nil {
		t.Fatalf("NewTextSource: %v", err)
	}
	defer src.Close()

	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != content {
		t.Errorf("got %q, want %q", got, content)
	}
}

func TestTextSourceMmapsLargeFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	content := "the 100\nquick 90\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, err := NewTextSource(path, 1)
	if err != nil {
		t.Fatalf("NewTextSource: %v", err)
	}
	defer src.Close()
	if src.region == nil {
		t.Fatalf("expected a low mmapThreshold to trigger memory-mapping")
	}

	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != content {
		t.Errorf("got %q, want %q", got, content)
	}
}
