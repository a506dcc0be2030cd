// Package container implements the compound-container extractor
// collaborator (spec.md §6 "Container extractor"): given a
// container file path, it yields a directory tree of raw streams on
// disk under a nonce-named scratch directory, exactly mirroring the
// storage/stream structure of the underlying OLE2 compound document.
package container

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/richardlehane/mscfb"

	"github.com/orcadtools/schemparse/parseerr"
)

// Entry is one extracted stream or directory, named by its full path
// relative to the container root (spec.md §3, "container tree").
type Entry struct {
	Path  string
	IsDir bool
	Size  int64
}

// Root is the extracted container tree: a base directory on disk plus
// every entry discovered while walking it.
type Root struct {
	Dir     string
	Entries []Entry
}

// Extractor is the abstract contract spec.md names as an external
// collaborator (spec.md §6): open the outer archive and yield a
// directory tree of raw streams. Embedding callers may supply their
// own implementation; MSCFBExtractor is the default, grounded on
// github.com/richardlehane/mscfb (SPEC_FULL.md §3).
type Extractor interface {
	Extract(containerPath, outDir string) (*Root, error)
	PrintTree(containerPath string, w io.Writer) error
}

// MSCFBExtractor implements Extractor over an OLE2 compound document,
// the on-disk format every .OLB/.OBK/.DSN/.DBK container uses
// (grounded on coffeeforyou-vbasig/vbaproject/parser.go's mscfb.New +
// doc.Next() walk).
type MSCFBExtractor struct{}

// NewScratchDir creates a nonce-named scratch directory under base
// (spec.md §5, "strong-randomness nonce"; §9, "scoped acquisition with
// guaranteed release on every exit path"). Callers must remove it once
// parsing completes, on every exit path including panics.
func NewScratchDir(base string) (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	dir := filepath.Join(base, "schemparse-"+hex.EncodeToString(buf[:]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Extract opens containerPath as an OLE2 compound document and writes
// every stream it contains to outDir, preserving the storage tree as
// nested directories (spec.md §3 "container tree").
func (MSCFBExtractor) Extract(containerPath, outDir string) (*Root, error) {
	f, err := os.Open(containerPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := mscfb.New(f)
	if err != nil {
		return nil, err
	}

	root := &Root{Dir: outDir}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		relPath := filepath.Join(entry.Path...)
		relPath = filepath.Join(relPath, entry.Name)
		fullPath := filepath.Join(outDir, relPath)

		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			return nil, err
		}

		if entry.Size == 0 && len(entry.Path) == 0 {
			// The root storage entry itself; nothing to write.
			continue
		}

		raw, readErr := io.ReadAll(entry)
		if readErr != nil {
			return nil, readErr
		}
		if writeErr := os.WriteFile(fullPath, raw, 0o644); writeErr != nil {
			return nil, writeErr
		}
		root.Entries = append(root.Entries, Entry{Path: filepath.ToSlash(relPath), Size: int64(len(raw))})
	}
	if len(root.Entries) == 0 {
		return nil, &parseerr.FilesystemMissing{Path: containerPath}
	}
	return root, nil
}

// PrintTree opens containerPath and writes a human-readable listing of
// its stream tree to w, without extracting anything to disk (spec.md
// §6, "printTree(container_path) writes a human-readable listing").
func (MSCFBExtractor) PrintTree(containerPath string, w io.Writer) error {
	f, err := os.Open(containerPath)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := mscfb.New(f)
	if err != nil {
		return err
	}

	var names []string
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		full := strings.Join(entry.Path, "/")
		if full != "" {
			full += "/"
		}
		full += entry.Name
		names = append(names, fmt.Sprintf("%s (%d bytes)", full, entry.Size))
	}
	sort.Strings(names)
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}
