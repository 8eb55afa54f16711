// Package fs provides file-based storage for extracted corpora.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagecorpus"
)

// DefaultPath is the file the corpus is written to when none is given.
const DefaultPath = "home.txt"

// Ensure Writer implements pagecorpus.CorpusWriter at compile time.
var _ pagecorpus.CorpusWriter = (*Writer)(nil)

// Writer writes a corpus to a single UTF-8 text file, replacing any
// previous content.
//
// The corpus is written to a temporary file next to the target and then
// renamed over it, so the target is either fully replaced or untouched.
// An existing file keeps its permissions, and a symlinked path is written
// through to the file it points at.
type Writer struct {
	path string
}

// NewWriter creates a new Writer for path. An empty path uses DefaultPath.
func NewWriter(path string) *Writer {
	if path == "" {
		path = DefaultPath
	}
	return &Writer{path: path}
}

// Path returns the target file path.
func (w *Writer) Path() string {
	return w.path
}

// WriteCorpus replaces the target file with corpus.
func (w *Writer) WriteCorpus(ctx context.Context, corpus string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Write through a symlink to its target and keep the mode of an
	// existing file.
	target := w.path
	if resolved, err := filepath.EvalSymlinks(w.path); err == nil {
		target = resolved
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(corpus); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}
