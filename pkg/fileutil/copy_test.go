package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates files (path -> content) under root, creating parents.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// assertTree verifies files exist under root with the given contents.
func assertTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, want := range files {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			t.Errorf("missing file %s: %v", name, err)
			continue
		}
		if string(data) != want {
			t.Errorf("%s content = %q, want %q", name, data, want)
		}
	}
}

func TestCopyDir(t *testing.T) {
	src := t.TempDir()
	files := map[string]string{
		"SKILL.md":             "---\nname: pest\n---\nRun tests with Pest.\n",
		"references/cheat.md":  "cheat sheet\n",
		"scripts/run.sh":       "#!/bin/sh\npest\n",
		"scripts/deep/note.md": "nested\n",
	}
	writeTree(t, src, files)

	dst := filepath.Join(t.TempDir(), "skills", "pest")
	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir() error = %v", err)
	}

	assertTree(t, dst, files)
}

func TestCopyDir_OverwritesExisting(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"file.md": "fresh\n"})

	dst := t.TempDir()
	writeTree(t, dst, map[string]string{"file.md": "stale\n", "extra.md": "kept\n"})

	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir() error = %v", err)
	}

	assertTree(t, dst, map[string]string{
		"file.md":  "fresh\n",
		"extra.md": "kept\n",
	})
}

func TestCopyDir_MissingSource(t *testing.T) {
	dst := t.TempDir()
	if err := CopyDir(filepath.Join(dst, "nope"), filepath.Join(dst, "out")); err == nil {
		t.Error("expected error for missing source directory")
	}
}

func TestCopyFile_PreservesMode(t *testing.T) {
	src := t.TempDir()
	srcPath := filepath.Join(src, "run.sh")
	if err := os.WriteFile(srcPath, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	dstPath := filepath.Join(t.TempDir(), "run.sh")
	if err := CopyFile(srcPath, dstPath); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	info, err := os.Stat(dstPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o755 {
		t.Errorf("perm = %o, want 755", got)
	}
}
