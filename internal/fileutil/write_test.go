package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRewriteReplacesContentAndKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.go")
	if err := os.WriteFile(path, []byte("old\n"), 0600); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	changed, err := Rewrite(path, []byte("new\n"))
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if !changed {
		t.Fatalf("expected Rewrite to report a change")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(data) != "new\n" {
		t.Fatalf("unexpected content: %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Fatalf("expected mode 0600 preserved, got %v", info.Mode().Perm())
	}
}

func TestRewriteSkipsIdenticalContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.go")
	if err := os.WriteFile(path, []byte("same\n"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}
	changed, err := Rewrite(path, []byte("same\n"))
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if changed {
		t.Fatalf("expected no change for identical content")
	}
}

func TestRewriteMissingFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.go")
	if _, err := Rewrite(path, []byte("data")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
