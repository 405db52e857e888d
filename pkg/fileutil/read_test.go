package fileutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/opencode-kit/ocbundle/internal/errors"
)

func TestReadFileWithLimit(t *testing.T) {
	tmp := t.TempDir()

	t.Run("reads small file", func(t *testing.T) {
		path := filepath.Join(tmp, "small.md")
		if err := os.WriteFile(path, []byte("agent content"), 0o644); err != nil {
			t.Fatal(err)
		}

		data, err := ReadFileWithLimit(path)
		if err != nil {
			t.Fatalf("ReadFileWithLimit() error = %v", err)
		}
		if string(data) != "agent content" {
			t.Errorf("content = %q", data)
		}
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		path := filepath.Join(tmp, "big.md")
		big := bytes.Repeat([]byte("x"), MaxFileSize+1)
		if err := os.WriteFile(path, big, 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := ReadFileWithLimit(path)
		if !errors.Is(err, ErrFileTooLarge) {
			t.Errorf("error = %v, want ErrFileTooLarge", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFileWithLimit(filepath.Join(tmp, "missing.md"))
		if err == nil {
			t.Error("expected error for missing file")
		}
	})
}
