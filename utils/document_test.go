package utils

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(plain, []byte(catText), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(plain, nil)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != catText {
		t.Fatalf("ReadFile = %q; want %q", got, catText)
	}

	var progress bytes.Buffer
	got, err = ReadFile(plain, &progress)
	if err != nil {
		t.Fatalf("ReadFile with progress: %v", err)
	}
	if got != catText {
		t.Fatalf("ReadFile with progress = %q; want %q", got, catText)
	}
}

func TestReadFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt.gz")
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(catText)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path, nil)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != catText {
		t.Fatalf("ReadFile = %q; want %q", got, catText)
	}
}

func TestReadFileErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	_, err := ReadFile(missing, nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("ReadFile(missing) err = %v; want fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Fatalf("error %q does not name the path", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.gz")
	if err := os.WriteFile(bad, []byte("not gzip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(bad, nil); err == nil {
		t.Fatal("ReadFile(bad.gz) err = nil")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadInput(t *testing.T) {
	got, err := ReadInput(strings.NewReader("hello\nworld"))
	if err != nil || got != "hello\nworld" {
		t.Fatalf("ReadInput = %q, %v", got, err)
	}
	if _, err := ReadInput(failingReader{}); err == nil {
		t.Fatal("ReadInput(failing) err = nil")
	}
}
