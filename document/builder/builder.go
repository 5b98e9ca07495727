package builder

import (
	"fmt"

	"github.com/joshuapare/zdoc/document"
	"github.com/joshuapare/zdoc/internal/logger"
	"github.com/joshuapare/zdoc/internal/writer"
	"github.com/joshuapare/zdoc/pkg/types"
)

// Builder owns a mutable tree and serializes it into documents.
type Builder struct {
	root *Node
	opts Options
}

// New returns a Builder with an empty root and default options.
func New() *Builder { return NewWithOptions(DefaultOptions()) }

// NewWithOptions returns a Builder with an empty root.
func NewWithOptions(opts Options) *Builder {
	return &Builder{root: NewNode(), opts: opts}
}

// FromDocument returns a Builder whose root is a copy of doc's root. The copy
// references doc's strings, so doc must stay open while the builder is used.
func FromDocument(doc *document.Document) *Builder {
	b := New()
	if !doc.IsEmpty() {
		b.root = FromDocumentNode(doc.Root())
	}
	return b
}

// Clear resets the root to an empty node.
func (b *Builder) Clear() { b.root = NewNode() }

// Options returns the build options.
func (b *Builder) Options() Options { return b.opts }

// AutoInternLimit returns the longest string value that is deduplicated.
func (b *Builder) AutoInternLimit() int { return b.opts.AutoInternLimit }

// SetAutoInternLimit sets the longest string value that is deduplicated.
func (b *Builder) SetAutoInternLimit(limit int) *Builder {
	b.opts.AutoInternLimit = limit
	return b
}

// SetRoot replaces the root. A nil node is treated as empty.
func (b *Builder) SetRoot(n *Node) {
	if n == nil {
		n = NewNode()
	}
	b.root = n
}

// Root returns the root for in-place editing.
func (b *Builder) Root() *Node { return b.root }

// WithRoot calls f with the root.
func (b *Builder) WithRoot(f func(*Node)) *Builder {
	f(b.root)
	return b
}

// Build serializes the tree into a new validated document.
func (b *Builder) Build() (*document.Document, error) {
	var cache BuildCache
	return b.BuildWithCache(&cache)
}

// BuildBytes serializes the tree and returns the encoded buffer.
func (b *Builder) BuildBytes() ([]byte, error) {
	var cache BuildCache
	return b.BuildBytesWithCache(&cache)
}

// BuildWithCache is Build using the staging buffers in cache.
func (b *Builder) BuildWithCache(cache *BuildCache) (*document.Document, error) {
	buf, err := b.BuildBytesWithCache(cache)
	if err != nil {
		return nil, err
	}
	doc, err := document.FromBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("built document failed validation: %w", err)
	}
	return doc, nil
}

// BuildBytesWithCache is BuildBytes using the staging buffers in cache. The
// returned buffer does not alias the cache.
func (b *Builder) BuildBytesWithCache(cache *BuildCache) ([]byte, error) {
	if b.root.IsEmpty() {
		return nil, nil
	}
	raw := &cache.raw
	raw.configure(b.opts)
	if err := raw.SetRoot(b.root); err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	out, err := raw.Bytes()
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	logger.Or(b.opts.Logger).Debug("built document",
		"nodes", raw.NumNodes(),
		"args", raw.NumArgs(),
		"string_bytes", raw.StringBytes(),
		"binary_bytes", raw.BinaryBytes(),
		"size", len(out))

	var mw writer.MemWriter
	if err := mw.WriteDocument(out); err != nil {
		return nil, fmt.Errorf("build: %w", types.Wrap(types.ErrIO, err))
	}
	return mw.Detach(), nil
}

// BuildCache amortizes staging allocations across builds. It must not be
// shared between goroutines.
type BuildCache struct {
	raw RawBuilder
}

// Reset clears cached content and keeps the allocated buffers.
func (c *BuildCache) Reset() { c.raw.Reset() }

// Deallocate clears the cache and releases its buffers.
func (c *BuildCache) Deallocate() { c.raw.release() }
