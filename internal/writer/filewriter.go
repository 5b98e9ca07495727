// Package writer exposes sinks for emitted documents.
package writer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const defaultPerm os.FileMode = 0o644

// FileWriter replaces the file at Path atomically: content goes to a sibling
// temp file that is synced and renamed over Path. Readers of the old file,
// including existing memory mappings, keep seeing the old bytes.
type FileWriter struct {
	Path string
	// Perm is applied to the final file. Zero means 0o644.
	Perm os.FileMode
}

// WriteDocument writes buf to Path.
func (w *FileWriter) WriteDocument(buf []byte) error {
	return w.WriteFrom(bytes.NewReader(buf))
}

// WriteFrom streams src into Path. On any error Path is left unchanged.
func (w *FileWriter) WriteFrom(src io.WriterTo) error {
	f, err := os.CreateTemp(filepath.Dir(w.Path), ".zdoc-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if err := w.fill(f, src); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(f.Name(), w.Path); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (w *FileWriter) fill(f *os.File, src io.WriterTo) error {
	if _, err := src.WriteTo(f); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	perm := w.Perm
	if perm == 0 {
		perm = defaultPerm
	}
	if err := f.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	return nil
}
