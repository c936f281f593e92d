package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReadBinaryFileMissing(t *testing.T) {
	if got := readBinaryFile(filepath.Join(t.TempDir(), "nope.spv"), true); got != nil {
		t.Errorf("readBinaryFile on missing file = %v, want nil", got)
	}
}

func TestReadBinaryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.spv")
	want := []byte{0x03, 0x02, 0x23, 0x07}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}
	got := readBinaryFile(path, false)
	if string(got) != string(want) {
		t.Errorf("readBinaryFile = %v, want %v", got, want)
	}
}

func TestWriteFileIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.hpp")
	content := []byte("#include <cstdint>\n")

	if err := writeFileIfChanged(path, content); err != nil {
		t.Fatal(err)
	}

	// Backdate the file; an unchanged write must not touch it.
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatal(err)
	}
	if err := writeFileIfChanged(path, content); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(past) {
		t.Errorf("identical content rewrote the file (mtime %v)", info.ModTime())
	}

	// Changed content must be written.
	if err := writeFileIfChanged(path, []byte("#include <cstdint>\n\n")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "#include <cstdint>\n\n" {
		t.Errorf("changed content not written, got %q", data)
	}
}
