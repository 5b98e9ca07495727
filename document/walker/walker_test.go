package walker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/zdoc/document"
	"github.com/joshuapare/zdoc/document/builder"
	"github.com/joshuapare/zdoc/document/walker"
	"github.com/joshuapare/zdoc/internal/testutil"
	"github.com/joshuapare/zdoc/pkg/types"
)

// buildTree builds:
//
//	root
//	  a
//	    a1
//	    a2
//	  b
//	    b1
func buildTree(t *testing.T) *document.Document {
	t.Helper()
	b := builder.New()
	b.Root().SetName("root").
		PushNamedWith("a", func(n *builder.Node) {
			n.PushChild(builder.NewNode().SetName("a1").PushUnnamedArg(types.Int(1))).
				PushChild(builder.NewNode().SetName("a2").SetType("Unit"))
		}).
		PushNamedWith("b", func(n *builder.Node) {
			n.PushNamedArg("k", types.String("v")).
				PushChild(builder.NewNode().SetName("b1"))
		})
	doc, err := b.Build()
	require.NoError(t, err)
	return doc
}

type visit struct {
	name  string
	depth int
}

func collect(t *testing.T, doc *document.Document, fn func(document.Node) error) []visit {
	t.Helper()
	var got []visit
	err := walker.Walk(doc, func(n document.Node, depth int) error {
		got = append(got, visit{n.Name(), depth})
		if fn != nil {
			return fn(n)
		}
		return nil
	})
	require.NoError(t, err)
	return got
}

func TestBitmap(t *testing.T) {
	bm := walker.NewBitmap(130)
	for _, i := range []int{0, 63, 64, 129} {
		require.False(t, bm.IsSet(i))
		bm.Set(i)
		require.True(t, bm.IsSet(i))
	}
	require.False(t, bm.IsSet(1))
	bm.Set(10_000)
	require.False(t, bm.IsSet(10_000))
	require.False(t, bm.IsSet(-1))
}

func TestWalkPreOrder(t *testing.T) {
	got := collect(t, buildTree(t), nil)
	require.Equal(t, []visit{
		{"root", 0},
		{"a", 1},
		{"a1", 2},
		{"a2", 2},
		{"b", 1},
		{"b1", 2},
	}, got)
}

func TestWalkSkipChildren(t *testing.T) {
	got := collect(t, buildTree(t), func(n document.Node) error {
		if n.Name() == "a" {
			return walker.SkipChildren
		}
		return nil
	})
	require.Equal(t, []visit{{"root", 0}, {"a", 1}, {"b", 1}, {"b1", 2}}, got)
}

func TestWalkStop(t *testing.T) {
	got := collect(t, buildTree(t), func(n document.Node) error {
		if n.Name() == "a1" {
			return walker.Stop
		}
		return nil
	})
	require.Equal(t, []visit{{"root", 0}, {"a", 1}, {"a1", 2}}, got)
}

func TestWalkPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := walker.Walk(buildTree(t), func(n document.Node, _ int) error {
		if n.Name() == "b" {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestWalkEmptyDocument(t *testing.T) {
	calls := 0
	require.NoError(t, walker.Walk(document.Empty(), func(document.Node, int) error {
		calls++
		return nil
	}))
	require.Zero(t, calls)
}

func TestWalkContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := walker.WalkContext(ctx, buildTree(t), func(document.Node, int) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestWalkFrom(t *testing.T) {
	doc := buildTree(t)
	b, ok := doc.Root().Children().ByName("b")
	require.True(t, ok)

	var names []string
	err := walker.New(doc, walker.Options{}).WalkFrom(context.Background(), b, func(n document.Node, _ int) error {
		names = append(names, n.Name())
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "b1"}, names)
}

// sharedLeaf builds a root whose two children both reference the same leaf.
type sharedLeaf struct{}

func (sharedLeaf) BuildRaw(rb *builder.RawBuilder, index uint32) error {
	r, err := rb.ReserveNodes(3)
	if err != nil {
		return err
	}
	leaf := types.NodeRange{Start: r.Start + 2, Len: 1}
	if err := rb.SetNode(r.Start+2, types.ArgRange{}, types.NodeRange{}, "c", ""); err != nil {
		return err
	}
	if err := rb.SetNode(r.Start, types.ArgRange{}, leaf, "a", ""); err != nil {
		return err
	}
	if err := rb.SetNode(r.Start+1, types.ArgRange{}, leaf, "b", ""); err != nil {
		return err
	}
	return rb.SetNode(index, types.ArgRange{}, types.NodeRange{Start: r.Start, Len: 2}, "root", "")
}

func sharedDoc(t *testing.T) *document.Document {
	t.Helper()
	rb := builder.NewRawBuilder(builder.DefaultOptions())
	require.NoError(t, rb.SetRoot(sharedLeaf{}))
	buf, err := rb.Bytes()
	require.NoError(t, err)
	doc, err := document.FromBytes(buf)
	require.NoError(t, err)
	return doc
}

func TestWalkUnique(t *testing.T) {
	doc := sharedDoc(t)
	names := func(opts walker.Options) []string {
		var out []string
		err := walker.New(doc, opts).Walk(context.Background(), func(n document.Node, _ int) error {
			out = append(out, n.Name())
			return nil
		})
		require.NoError(t, err)
		return out
	}
	require.Equal(t, []string{"root", "a", "c", "b", "c"}, names(walker.Options{}))
	require.Equal(t, []string{"root", "a", "c", "b"}, names(walker.Options{Unique: true}))
}

func TestCount(t *testing.T) {
	stats, err := walker.Count(context.Background(), buildTree(t))
	require.NoError(t, err)
	require.Equal(t, uint64(6), stats.Nodes)
	require.Equal(t, uint64(6), stats.References)
	require.Equal(t, uint64(2), stats.Args)
	require.Equal(t, uint64(1), stats.NamedArgs)
	require.Equal(t, uint64(3), stats.Leaves)
	require.Equal(t, uint64(1), stats.Typed)
	require.Equal(t, 2, stats.MaxDepth)
	require.Equal(t, uint64(1), stats.ArgsByKind[types.KindInt])
	require.Equal(t, uint64(1), stats.ArgsByKind[types.KindString])
	require.Equal(t, uint64(1), stats.ByClass[types.UnitVariant])
	require.Equal(t, uint64(1), stats.ByClass[types.ValueNode])

	stats, err = walker.Count(context.Background(), sharedDoc(t))
	require.NoError(t, err)
	require.Equal(t, uint64(4), stats.Nodes)
	require.Equal(t, uint64(5), stats.References)
	require.Equal(t, uint64(1), stats.Leaves)
	require.Equal(t, 2, stats.MaxDepth)
}

func TestCountSharedChildren(t *testing.T) {
	// 60 nodes reach about 1.5e12 root-to-leaf paths; counting must not
	// follow them.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := walker.Count(ctx, testutil.Ladder(t, 60))
	require.NoError(t, err)
	require.Equal(t, uint64(60), stats.Nodes)
	require.Equal(t, uint64(1+58*2+1), stats.References)
	require.Equal(t, uint64(1), stats.Leaves)
	require.Equal(t, 59, stats.MaxDepth)
}

func TestCountCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := walker.Count(ctx, testutil.Ladder(t, 4))
	require.ErrorIs(t, err, context.Canceled)
}

func TestWalkUniqueSharedChildren(t *testing.T) {
	doc := testutil.Ladder(t, 60)
	visits := 0
	err := walker.New(doc, walker.Options{Unique: true}).Walk(context.Background(), func(document.Node, int) error {
		visits++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 60, visits)
}
