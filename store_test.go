package bank

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	s := FileStore(filepath.Join(dir, "nested", "ledger.json"))

	if _, err := s.Load(); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load() on a missing file error = %v, want fs.ErrNotExist", err)
	}
	for _, content := range []string{"first", "second, longer content", "3"} {
		if err := s.Save([]byte(content)); err != nil {
			t.Fatalf("Save(%q) failed: %v", content, err)
		}
		got, err := s.Load()
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != content {
			t.Errorf("Load() = %q, want %q", got, content)
		}
	}

	// No temporary file is left behind.
	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory holds %v, want only ledger.json", names)
	}
	if s.String() != filepath.Join(dir, "nested", "ledger.json") {
		t.Errorf("String() = %q", s.String())
	}
}

func TestFileStore_SaveFailureKeepsPreviousContent(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	s := FileStore(filepath.Join(dir, "ledger.json"))
	if err := s.Save([]byte("good")); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(dir, 0o500); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(dir, 0o700)

	if err := s.Save([]byte("bad")); err == nil {
		t.Fatalf("Save() into a read-only directory succeeded")
	}
	got, _ := s.Load()
	if string(got) != "good" {
		t.Errorf("Load() = %q after a failed save, want %q", got, "good")
	}
}
