package walker

import (
	"context"
	"errors"

	"github.com/joshuapare/zdoc/document"
)

const (
	// initialStackCapacity is the pre-allocated capacity for the traversal
	// stack. Documents are usually shallow but wide, so this covers most
	// sibling lists without reallocating.
	initialStackCapacity = 256

	// bitsPerUint64 is the number of bits in a uint64.
	bitsPerUint64 = 64

	// ctxCheckInterval is how many nodes are visited between context checks.
	ctxCheckInterval = 1024
)

var (
	// SkipChildren returned from a VisitFunc skips the current node's children.
	SkipChildren = errors.New("skip children")
	// Stop returned from a VisitFunc ends the walk without error.
	Stop = errors.New("stop walk")
)

// VisitFunc is called for every visited node with its depth (root is 0).
type VisitFunc func(n document.Node, depth int) error

// Options controls a walk.
type Options struct {
	// Unique visits every node index at most once even when children ranges
	// of different parents overlap.
	Unique bool
}

// Bitmap tracks visited node indexes, one bit per node.
type Bitmap struct {
	bits []uint64
}

// NewBitmap returns a bitmap able to hold n node indexes.
func NewBitmap(n int) *Bitmap {
	return &Bitmap{bits: make([]uint64, (n+bitsPerUint64-1)/bitsPerUint64)}
}

// Set marks index i. Out-of-range indexes are ignored.
func (b *Bitmap) Set(i int) {
	w := i / bitsPerUint64
	if i < 0 || w >= len(b.bits) {
		return
	}
	b.bits[w] |= 1 << (uint(i) % bitsPerUint64)
}

// IsSet reports whether index i is marked. Out-of-range indexes report false.
func (b *Bitmap) IsSet(i int) bool {
	w := i / bitsPerUint64
	if i < 0 || w >= len(b.bits) {
		return false
	}
	return b.bits[w]&(1<<(uint(i)%bitsPerUint64)) != 0
}

// stackEntry is a node waiting to be visited.
type stackEntry struct {
	index int
	depth int
}

// Walker holds reusable traversal state for one document.
type Walker struct {
	doc     *document.Document
	opts    Options
	visited *Bitmap
	stack   []stackEntry
}

// New returns a Walker over doc.
func New(doc *document.Document, opts Options) *Walker {
	w := &Walker{
		doc:   doc,
		opts:  opts,
		stack: make([]stackEntry, 0, initialStackCapacity),
	}
	if opts.Unique {
		w.visited = NewBitmap(doc.NumNodes())
	}
	return w
}

// Walk visits the whole document starting at the root. The empty document
// has no nodes and fn is never called.
func (w *Walker) Walk(ctx context.Context, fn VisitFunc) error {
	if w.doc.IsEmpty() || w.doc.NumNodes() == 0 {
		return nil
	}
	return w.WalkFrom(ctx, w.doc.Root(), fn)
}

// WalkFrom visits the subtree rooted at start.
func (w *Walker) WalkFrom(ctx context.Context, start document.Node, fn VisitFunc) error {
	if w.visited != nil {
		clear(w.visited.bits)
	}
	w.stack = append(w.stack[:0], stackEntry{index: start.Index()})

	visited := 0
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if w.visited != nil {
			if w.visited.IsSet(top.index) {
				continue
			}
			w.visited.Set(top.index)
		}

		if visited%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		visited++

		n := w.doc.Node(top.index)
		err := fn(n, top.depth)
		switch {
		case err == nil:
		case errors.Is(err, SkipChildren):
			continue
		case errors.Is(err, Stop):
			return nil
		default:
			return err
		}

		// Push in reverse so the first child is popped first.
		children := n.Children()
		for i := children.Len() - 1; i >= 0; i-- {
			w.stack = append(w.stack, stackEntry{index: children.At(i).Index(), depth: top.depth + 1})
		}
	}
	return nil
}

// Walk visits every node of doc in pre-order.
func Walk(doc *document.Document, fn VisitFunc) error {
	return New(doc, Options{}).Walk(context.Background(), fn)
}

// WalkContext is Walk with cancellation. The context is checked periodically,
// not before every node.
func WalkContext(ctx context.Context, doc *document.Document, fn VisitFunc) error {
	return New(doc, Options{}).Walk(ctx, fn)
}
