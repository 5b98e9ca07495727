// Package inspect analyzes documents: section sizes, tree shape, and how
// well the producer deduplicated strings.
package inspect

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/joshuapare/zdoc/document"
	"github.com/joshuapare/zdoc/document/walker"
	"github.com/joshuapare/zdoc/internal/format"
	"github.com/joshuapare/zdoc/pkg/types"
)

// Options controls analysis.
type Options struct {
	// InternLimit is the longest string considered for the duplicate report.
	// Default: 128
	InternLimit int
}

// DefaultOptions returns the default analysis options.
func DefaultOptions() Options {
	return Options{InternLimit: format.DefaultAutoInternLimit}
}

// Duplicate is a short string stored more than once.
type Duplicate struct {
	Value string
	// Ranges lists the distinct stored copies, in section order.
	Ranges []types.StringRange
	// References counts every record field pointing at any copy.
	References int
}

// Wasted returns the bytes that deduplication would have saved.
func (d Duplicate) Wasted() int { return (len(d.Ranges) - 1) * len(d.Value) }

// Report is the result of Analyze.
type Report struct {
	Version       uint32
	Size          uint32
	RootIndex     uint32
	Nodes         int
	Args          int
	StringBytes   uint32
	BinaryBytes   uint32
	HeaderBytes   int
	NodeBytes     int
	ArgBytes      int
	StringRefs    int
	BinaryRefs    int
	Tree          walker.Stats
	Duplicates    []Duplicate
	WastedBytes   int
	Unreferenced  uint32
	InternLimit   int
}

// Analyze inspects doc. String ranges are re-read through the checked
// GetString so the report can be produced for any document that loaded.
func Analyze(ctx context.Context, doc *document.Document, opts Options) (*Report, error) {
	h := doc.Header()
	r := &Report{
		Version:     h.Version,
		Size:        h.Size,
		RootIndex:   h.RootNodeIndex,
		Nodes:       doc.NumNodes(),
		Args:        doc.NumArgs(),
		StringBytes: h.StringsLen,
		BinaryBytes: h.BinaryLen,
		NodeBytes:   doc.NumNodes() * format.NodeBytes,
		ArgBytes:    doc.NumArgs() * format.ArgBytes,
		InternLimit: opts.InternLimit,
	}
	if doc.IsEmpty() {
		return r, nil
	}
	r.HeaderBytes = format.HeaderBytes

	stats, err := walker.Count(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}
	r.Tree = *stats

	refs, err := collectStrings(doc)
	if err != nil {
		return nil, err
	}
	r.StringRefs = len(refs)
	for _, a := range doc.Args() {
		if a.Value.Tag == format.TagBinary {
			r.BinaryRefs++
		}
	}

	r.Unreferenced = unreferenced(h.StringsLen, refs)
	r.Duplicates = duplicates(doc, refs, opts.InternLimit)
	for _, d := range r.Duplicates {
		r.WastedBytes += d.Wasted()
	}
	return r, nil
}

// collectStrings returns every non-empty string range referenced by a node
// or argument record.
func collectStrings(doc *document.Document) ([]types.StringRange, error) {
	var refs []types.StringRange
	add := func(sr types.StringRange) error {
		if sr.IsEmpty() {
			return nil
		}
		if _, err := doc.GetString(sr); err != nil {
			return fmt.Errorf("string range %d+%d: %w", sr.Start, sr.Len, err)
		}
		refs = append(refs, sr)
		return nil
	}
	for _, n := range doc.Nodes() {
		if err := add(n.Name); err != nil {
			return nil, err
		}
		if err := add(n.Type); err != nil {
			return nil, err
		}
	}
	for _, a := range doc.Args() {
		if err := add(a.Name); err != nil {
			return nil, err
		}
		if a.Value.Tag == format.TagString {
			if err := add(a.Value.StringRange()); err != nil {
				return nil, err
			}
		}
	}
	return refs, nil
}

// unreferenced counts string section bytes covered by no range.
func unreferenced(total uint32, refs []types.StringRange) uint32 {
	sorted := slices.Clone(refs)
	slices.SortFunc(sorted, func(a, b types.StringRange) int { return cmp.Compare(a.Start, b.Start) })
	var covered, end uint32
	for _, sr := range sorted {
		stop := sr.Start + sr.Len
		if stop <= end {
			continue
		}
		covered += stop - max(sr.Start, end)
		end = stop
	}
	return total - covered
}

func duplicates(doc *document.Document, refs []types.StringRange, limit int) []Duplicate {
	byValue := make(map[string]*Duplicate)
	for _, sr := range refs {
		if int(sr.Len) > limit {
			continue
		}
		s, _ := doc.GetString(sr)
		d := byValue[s]
		if d == nil {
			d = &Duplicate{Value: s}
			byValue[s] = d
		}
		d.References++
		if !slices.Contains(d.Ranges, sr) {
			d.Ranges = append(d.Ranges, sr)
		}
	}

	var out []Duplicate
	for _, d := range byValue {
		if len(d.Ranges) < 2 {
			continue
		}
		slices.SortFunc(d.Ranges, func(a, b types.StringRange) int { return cmp.Compare(a.Start, b.Start) })
		out = append(out, *d)
	}
	slices.SortFunc(out, func(a, b Duplicate) int {
		if c := cmp.Compare(b.Wasted(), a.Wasted()); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}

// WriteTo writes a human-readable summary of r.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	fmt.Fprintf(cw, "version:       %d\n", r.Version)
	fmt.Fprintf(cw, "size:          %d bytes\n", r.Size)
	fmt.Fprintf(cw, "root index:    %d\n", r.RootIndex)
	fmt.Fprintf(cw, "nodes:         %d (%d bytes)\n", r.Nodes, r.NodeBytes)
	fmt.Fprintf(cw, "args:          %d (%d bytes)\n", r.Args, r.ArgBytes)
	fmt.Fprintf(cw, "strings:       %d bytes, %d refs, %d unreferenced\n", r.StringBytes, r.StringRefs, r.Unreferenced)
	fmt.Fprintf(cw, "binary:        %d bytes, %d refs\n", r.BinaryBytes, r.BinaryRefs)
	fmt.Fprintf(cw, "reachable:     %d nodes, %d refs\n", r.Tree.Nodes, r.Tree.References)
	fmt.Fprintf(cw, "max depth:     %d\n", r.Tree.MaxDepth)
	fmt.Fprintf(cw, "duplicates:    %d (%d bytes wasted, limit %d)\n", len(r.Duplicates), r.WastedBytes, r.InternLimit)
	for _, d := range r.Duplicates {
		fmt.Fprintf(cw, "  %q x%d (%d refs)\n", d.Value, len(d.Ranges), d.References)
	}
	return cw.n, cw.err
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
