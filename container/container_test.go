package container

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewScratchDirCreatesUniqueDirs(t *testing.T) {
	base := t.TempDir()
	a, err := NewScratchDir(base)
	if err != nil {
		t.Fatalf("NewScratchDir: %v", err)
	}
	b, err := NewScratchDir(base)
	if err != nil {
		t.Fatalf("NewScratchDir: %v", err)
	}
	if a == b {
		t.Fatalf("NewScratchDir returned the same path twice: %s", a)
	}
	for _, dir := range []string{a, b} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected %s to exist as a directory, err=%v", dir, err)
		}
		if filepath.Dir(dir) != base {
			t.Fatalf("expected %s to be nested under %s", dir, base)
		}
	}
}

func TestExtractRejectsMissingFile(t *testing.T) {
	var e MSCFBExtractor
	if _, err := e.Extract(filepath.Join(t.TempDir(), "does-not-exist.olb"), t.TempDir()); err == nil {
		t.Fatal("Extract of a missing file returned nil error")
	}
}

func TestExtractRejectsNonCompoundFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "not-a-container.olb")
	if err := os.WriteFile(bad, []byte("this is not an OLE2 compound document"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	var e MSCFBExtractor
	if _, err := e.Extract(bad, t.TempDir()); err == nil {
		t.Fatal("Extract of a non-compound file returned nil error")
	}
}

func TestPrintTreeRejectsMissingFile(t *testing.T) {
	var e MSCFBExtractor
	if err := e.PrintTree(filepath.Join(t.TempDir(), "missing.olb"), os.Stdout); err == nil {
		t.Fatal("PrintTree of a missing file returned nil error")
	}
}
