package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTextFile_UTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "utf8.txt")
	if err := WriteTextFile(path, "café content"); err != nil {
		t.Fatalf("WriteTextFile: %v", err)
	}
	got, err := ReadTextFile(path)
	if err != nil {
		t.Fatalf("ReadTextFile: %v", err)
	}
	if got != "café content" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestReadTextFile_Latin1Fallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legacy.txt")
	// "café" in ISO-8859-1: 0xE9 is not valid UTF-8 on its own.
	if err := os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadTextFile(path)
	if err != nil {
		t.Fatalf("ReadTextFile: %v", err)
	}
	if got != "café" {
		t.Fatalf("expected latin-1 decode to 'café', got %q", got)
	}
}

func TestReadTextFile_Missing(t *testing.T) {
	if _, err := ReadTextFile(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteTextFile_CreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "note.txt")
	if err := WriteTextFile(path, strings.Repeat("ad copy\n", 3)); err != nil {
		t.Fatalf("WriteTextFile: %v", err)
	}
	size, err := FileSize(path)
	if err != nil || size == 0 {
		t.Fatalf("expected non-empty file, size=%d err=%v", size, err)
	}
}
