package walker

import (
	"context"

	"github.com/joshuapare/zdoc/document"
	"github.com/joshuapare/zdoc/pkg/types"
)

// unreached marks a node index no reachable parent references.
const unreached = -1

// Stats summarizes the reachable part of a document.
type Stats struct {
	// Nodes counts distinct node indexes reachable from the root.
	Nodes uint64
	// References counts the root plus every child reference of a reachable
	// node. It exceeds Nodes when children ranges are shared.
	References uint64
	Args       uint64
	NamedArgs  uint64
	Leaves     uint64
	Typed      uint64
	// MaxDepth is the length of the longest root-to-node path.
	MaxDepth int

	// ArgsByKind counts arguments per value kind, indexed by types.ValueKind.
	ArgsByKind [types.KindBinary + 1]uint64
	// ByClass counts nodes per classification, indexed by types.Classify.
	ByClass [types.MixedVariant + 1]uint64
}

// Count returns statistics about every node reachable from the root.
//
// Each node is examined once no matter how many parents reference it, so the
// cost is bounded by the document's records rather than by its number of
// paths. A child always has a higher index than its parent, so visiting
// indexes in ascending order settles every depth before it is read.
//
// Example:
//
//	stats, err := walker.Count(ctx, doc)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("nodes: %d, depth: %d\n", stats.Nodes, stats.MaxDepth)
func Count(ctx context.Context, doc *document.Document) (*Stats, error) {
	var s Stats
	total := doc.NumNodes()
	if doc.IsEmpty() || total == 0 {
		return &s, nil
	}

	root := int(doc.Header().RootNodeIndex)
	depth := make([]int32, total)
	for i := range depth {
		depth[i] = unreached
	}
	depth[root] = 0
	s.References = 1

	for i := root; i < total; i++ {
		if (i-root)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		d := depth[i]
		if d == unreached {
			continue
		}

		n := doc.Node(i)
		s.Nodes++
		s.MaxDepth = max(s.MaxDepth, int(d))
		if n.HasType() {
			s.Typed++
		}
		s.ByClass[n.Classify()]++

		args := n.Args()
		for j, nargs := 0, args.Len(); j < nargs; j++ {
			a := args.At(j)
			s.Args++
			if a.IsNamed() {
				s.NamedArgs++
			}
			s.ArgsByKind[a.Value.Kind()]++
		}

		children := n.Record().Children
		if children.Len == 0 {
			s.Leaves++
			continue
		}
		s.References += uint64(children.Len)
		for c := children.Start; c < children.Start+children.Len; c++ {
			depth[c] = max(depth[c], d+1)
		}
	}
	return &s, nil
}
