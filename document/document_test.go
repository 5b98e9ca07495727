package document_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/zdoc/document"
	"github.com/joshuapare/zdoc/document/builder"
	"github.com/joshuapare/zdoc/internal/format"
	"github.com/joshuapare/zdoc/internal/testutil"
	"github.com/joshuapare/zdoc/pkg/types"
)

func build(t testing.TB, f func(*builder.Node)) *document.Document {
	t.Helper()
	b := builder.New()
	f(b.Root())
	doc, err := b.Build()
	require.NoError(t, err)
	return doc
}

func clone(doc *document.Document) []byte { return bytes.Clone(doc.Bytes()) }

func TestEmptyDocuments(t *testing.T) {
	for _, b := range [][]byte{nil, {}} {
		doc, err := document.FromBytes(b)
		require.NoError(t, err)
		require.True(t, doc.IsEmpty())
		require.Zero(t, doc.NumNodes())
		require.True(t, doc.Root().IsEmpty())
		require.Equal(t, "", doc.Root().Name())
	}

	doc := document.Empty()
	require.True(t, doc.IsEmpty())
	require.Equal(t, format.Magic, doc.Header().Magic)
	require.Equal(t, "()", doc.Root().String())
}

func TestHeaderOnlyDocumentHasEmptyRoot(t *testing.T) {
	buf := make([]byte, format.HeaderBytes)
	format.DefaultHeader.Put(buf)

	doc, err := document.FromBytes(buf)
	require.NoError(t, err)
	require.False(t, doc.IsEmpty())
	require.Zero(t, doc.NumNodes())
	root := doc.Root()
	require.True(t, root.IsEmpty())
	require.Zero(t, root.Children().Len())
	require.Zero(t, root.Args().Len())
}

func TestReservedFieldCorruption(t *testing.T) {
	doc := build(t, func(n *builder.Node) { n.SetName("root") })
	buf := clone(doc)
	binary.LittleEndian.PutUint32(buf[52:], 1)

	_, err := document.FromBytes(buf)
	require.ErrorIs(t, err, types.HeaderReservedFieldsMustBeZero.At(0))

	var verr *types.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, uint32(52), verr.Offset)
}

func TestCorruptStringBlob(t *testing.T) {
	doc := build(t, func(n *builder.Node) { n.SetName("root") })
	buf := clone(doc)
	off := doc.Header().StringsOffset
	buf[off+1] = 0xff

	_, err := document.FromBytes(buf)
	var verr *types.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, types.InvalidUTF8, verr.Kind)
	require.Equal(t, off, verr.Offset)
}

func TestSizeMismatch(t *testing.T) {
	buf := append(clone(build(t, func(n *builder.Node) { n.SetName("x") })), 0)
	_, err := document.FromBytes(buf)
	require.ErrorIs(t, err, types.HeaderSize.At(0))
}

func TestNodeAccessors(t *testing.T) {
	doc := build(t, func(n *builder.Node) {
		n.SetName("cfg").SetType("Config").
			PushNamedArg("k", types.Int(1)).
			PushNamedArg("k", types.Int(2)).
			PushUnnamedArg(types.Binary([]byte{9, 8})).
			PushNamed("child", types.String("first")).
			PushNamed("child", types.String("second")).
			PushNamed("k", types.String("shadowed"))
	})
	root := doc.Root()
	require.Equal(t, 0, root.Index())
	require.Equal(t, "cfg", root.Name())
	require.Equal(t, "Config", root.Type())
	require.True(t, root.HasName())
	require.True(t, root.HasType())
	require.Equal(t, types.MixedVariant, root.Classify())
	require.False(t, root.IsMixed())
	require.True(t, root.IsListLike())
	require.True(t, root.IsDictionaryLike())

	e, ok := root.Get("k")
	require.True(t, ok)
	require.True(t, e.IsArg, "arguments are searched before children")
	v, _ := e.Value()
	require.True(t, v.Equal(types.Int(2)), "last match wins")

	c, ok := root.Children().ByName("child")
	require.True(t, ok)
	v, _ = c.Value()
	require.True(t, v.Equal(types.String("second")))
	require.Equal(t, types.ValueNode, c.Classify())

	_, ok = root.Get("missing")
	require.False(t, ok)
	_, ok = root.Args().ByName("missing")
	require.False(t, ok)

	v, ok = root.Value()
	require.True(t, ok)
	require.True(t, v.Equal(types.Int(1)))

	b, ok := root.Args().At(2).Value.AsBinary()
	require.True(t, ok)
	require.Equal(t, []byte{9, 8}, b)
	require.Equal(t, 2, cap(b), "binary slices must not expose the rest of the section")

	entries := root.Entries()
	require.Equal(t, 6, entries.Len())
	require.True(t, entries.At(2).IsArg)
	require.False(t, entries.At(3).IsArg)
	require.Equal(t, "child", entries.At(3).Name())
	require.Equal(t, types.NamingMixed, entries.Naming())

	require.Panics(t, func() { root.Children().At(3) })
	require.Panics(t, func() { root.Args().At(-1) })
	require.Panics(t, func() { doc.Node(doc.NumNodes()) })
}

func TestEqualAcrossImplementations(t *testing.T) {
	tree := builder.NewNode().SetName("r").
		PushNamedArg("a", types.Float(1.5)).
		PushChild(builder.FromValues(types.Bool(true), types.Null()))
	b := builder.New()
	b.SetRoot(tree)
	doc, err := b.Build()
	require.NoError(t, err)

	require.True(t, document.Equal(doc.Root(), tree))
	require.True(t, doc.Root().Equal(tree))

	tree.PushUnnamedArg(types.Int(0))
	require.False(t, document.Equal(doc.Root(), tree))
}

func TestGetStringChecked(t *testing.T) {
	doc := build(t, func(n *builder.Node) { n.SetName("é") })
	h := doc.Header()
	require.Equal(t, uint32(2), h.StringsLen)

	s, err := doc.GetString(types.StringRange{Start: 0, Len: 2})
	require.NoError(t, err)
	require.Equal(t, "é", s)

	_, err = doc.GetString(types.StringRange{Start: 1, Len: 1})
	require.ErrorIs(t, err, types.InvalidUTF8.At(0))

	_, err = doc.GetString(types.StringRange{Start: 0, Len: 3})
	require.ErrorIs(t, err, types.StringOutOfBounds.At(0))

	_, err = doc.GetString(types.StringRange{Start: 1, Len: 0xffffffff})
	require.ErrorIs(t, err, types.LengthOverflow.At(0))

	_, err = doc.GetBinary(types.BinaryRange{Start: 0, Len: 1})
	require.ErrorIs(t, err, types.BinaryOutOfBounds.At(0))

	bin, err := doc.GetBinary(types.BinaryRange{})
	require.NoError(t, err)
	require.Empty(t, bin)
}

func TestSaveOpenRoundTrip(t *testing.T) {
	doc := build(t, func(n *builder.Node) {
		n.SetName("root").PushNamed("port", types.Uint(8080))
	})
	path := filepath.Join(t.TempDir(), "doc.zdoc")
	require.NoError(t, doc.Save(path))

	opened, err := document.Open(path)
	require.NoError(t, err)
	require.Equal(t, doc.Bytes(), opened.Bytes())
	require.True(t, document.Equal(doc.Root(), opened.Root()))

	var out bytes.Buffer
	n, err := opened.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(len(doc.Bytes())), n)

	require.NoError(t, opened.Close())
	require.NoError(t, opened.Close())
	require.True(t, opened.IsEmpty())
	require.ErrorIs(t, opened.Save(path), types.ErrClosed)
	_, err = opened.GetString(types.StringRange{})
	require.ErrorIs(t, err, types.ErrClosed)
}

func TestOpenErrors(t *testing.T) {
	_, err := document.Open(filepath.Join(t.TempDir(), "missing.zdoc"))
	require.ErrorIs(t, err, types.ErrIO)

	path := filepath.Join(t.TempDir(), "bad.zdoc")
	require.NoError(t, os.WriteFile(path, []byte("not a document"), 0o600))
	_, err = document.Open(path)
	require.ErrorIs(t, err, types.ErrCorrupt)
	require.ErrorIs(t, err, types.HeaderSize.At(0))
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.zdoc")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	doc, err := document.Open(path)
	require.NoError(t, err)
	require.True(t, doc.IsEmpty())
	require.NoError(t, doc.Close())
}

func TestStringSharedChildren(t *testing.T) {
	doc := testutil.Ladder(t, 60)
	root := doc.Root()
	require.Equal(t, 2, root.Children().Len())

	out := root.String()
	require.True(t, strings.HasPrefix(out, `n0 = {"n1": {"n2": `), out[:min(len(out), 40)])
	require.Contains(t, out, "...")
}
