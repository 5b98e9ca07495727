// Package testutil holds document fixtures shared by package tests.
package testutil

import (
	"strconv"
	"testing"

	"github.com/joshuapare/zdoc/document"
	"github.com/joshuapare/zdoc/document/builder"
	"github.com/joshuapare/zdoc/pkg/types"
)

// ladder lays out n nodes where node i lists nodes i+1 and i+2 as children.
// Children ranges of neighbours overlap, so the number of root-to-leaf paths
// grows like the Fibonacci sequence while the document stays linear in n.
type ladder struct{ n uint32 }

func (l ladder) BuildRaw(rb *builder.RawBuilder, index uint32) error {
	if l.n > 1 {
		if _, err := rb.ReserveNodes(int(l.n - 1)); err != nil {
			return err
		}
	}
	for i := index; i < index+l.n; i++ {
		var children types.NodeRange
		if next := i + 1; next < index+l.n {
			children = types.NodeRange{Start: next, Len: min(2, index+l.n-next)}
		}
		if err := rb.SetNode(i, types.ArgRange{}, children, "n"+strconv.Itoa(int(i)), ""); err != nil {
			return err
		}
	}
	return nil
}

// Ladder returns a valid n-node document whose nodes share children.
//
// Example:
//
//	doc := testutil.Ladder(t, 60)
//	stats, err := walker.Count(ctx, doc)
func Ladder(t testing.TB, n int) *document.Document {
	t.Helper()
	rb := builder.NewRawBuilder(builder.DefaultOptions())
	if err := rb.SetRoot(ladder{n: uint32(n)}); err != nil {
		t.Fatalf("build ladder: %v", err)
	}
	buf, err := rb.Bytes()
	if err != nil {
		t.Fatalf("encode ladder: %v", err)
	}
	doc, err := document.FromBytes(buf)
	if err != nil {
		t.Fatalf("load ladder: %v", err)
	}
	return doc
}
