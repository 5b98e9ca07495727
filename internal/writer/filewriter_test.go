package writer

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileWriterReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.zdoc")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	w := &FileWriter{Path: path}
	require.NoError(t, w.WriteDocument([]byte("new contents")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new contents", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must not be left behind")
}

func TestFileWriterMissingDirectory(t *testing.T) {
	w := &FileWriter{Path: filepath.Join(t.TempDir(), "nope", "out.zdoc")}
	require.Error(t, w.WriteDocument([]byte("x")))
}

func TestMemWriterCopies(t *testing.T) {
	src := []byte("abc")
	var w MemWriter
	require.NoError(t, w.WriteDocument(src))
	src[0] = 'x'
	require.Equal(t, "abc", string(w.Buf))

	got := w.Detach()
	require.Equal(t, "abc", string(got))
	require.Nil(t, w.Buf)

	require.NoError(t, w.WriteDocument([]byte("de")))
	require.Equal(t, "abc", string(got), "detached buffer must not be reused")
}

type failingSource struct{}

func (failingSource) WriteTo(w io.Writer) (int64, error) {
	n, _ := w.Write([]byte("partial"))
	return int64(n), errors.New("source failed")
}

func TestFileWriterKeepsOldContentOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.zdoc")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	w := &FileWriter{Path: path}
	err := w.WriteFrom(failingSource{})
	require.ErrorContains(t, err, "source failed")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "old", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFileWriterPerm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zdoc")
	w := &FileWriter{Path: path, Perm: 0o600}
	require.NoError(t, w.WriteDocument([]byte("x")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
