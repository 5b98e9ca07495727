// Package printer renders zdoc trees as text. It works on any types.NodeRef,
// so document nodes and builder nodes print identically.
package printer

import (
	"bufio"
	"io"
	"strings"

	"github.com/joshuapare/zdoc/pkg/types"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxDepth      = 0
	DefaultMaxValueBytes = 16
	DefaultMaxNodes      = 1 << 16
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatDebug outputs the compact single-line notation, shaped by each
	// node's classification: {"k": v}, [a, b], Type(v), ().
	FormatDebug Format = "debug"

	// FormatTree outputs one node per line, indented by depth.
	FormatTree Format = "tree"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (debug, tree).
	// Default: FormatTree
	Format Format

	// IndentSize is the number of spaces per indent level in tree output.
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited). Deeper children are
	// summarized.
	// Default: 0 (unlimited)
	MaxDepth int

	// MaxValueBytes limits how many bytes of binary values are shown as hex
	// in tree format. Set to 0 to show only the length.
	// Default: 16
	MaxValueBytes int

	// Color selects ANSI colouring.
	// Default: ColorAuto
	Color ColorMode

	// MaxNodes caps how many nodes one Print call renders; the rest are
	// elided as "...". Shared children are rendered once per reference, so
	// without a cap a small document can expand exponentially.
	// 0 means DefaultMaxNodes, negative means unlimited.
	// Default: DefaultMaxNodes
	MaxNodes int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatTree,
		IndentSize:    DefaultIndentSize,
		MaxDepth:      DefaultMaxDepth,
		MaxValueBytes: DefaultMaxValueBytes,
		Color:         ColorAuto,
		MaxNodes:      DefaultMaxNodes,
	}
}

// Printer handles formatted output of zdoc trees.
type Printer struct {
	opts    Options
	writer  io.Writer
	palette palette

	// remaining is the node budget of the current Print; negative is unlimited.
	remaining int
	elided    bool
}

// New creates a new Printer writing to w.
//
// Example:
//
//	doc, _ := document.Open("config.zdoc")
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(doc.Root())
func New(w io.Writer, opts Options) *Printer {
	return &Printer{
		opts:    opts,
		writer:  w,
		palette: newPalette(opts.Color.enabled(w)),
	}
}

// Print writes n and its subtree.
func (p *Printer) Print(n types.NodeRef) error {
	bw := bufio.NewWriter(p.writer)
	p.resetBudget()
	switch p.opts.Format {
	case FormatDebug:
		p.debugEntry(bw, types.Entry{Child: n}, true, 0)
		bw.WriteByte('\n')
	default:
		p.treeNode(bw, n, 0)
	}
	return bw.Flush()
}

// Sprint renders n in the uncoloured debug notation.
func Sprint(n types.NodeRef) string {
	var sb strings.Builder
	p := &Printer{opts: Options{Format: FormatDebug}, palette: newPalette(false)}
	p.resetBudget()
	p.debugEntry(&sb, types.Entry{Child: n}, true, 0)
	return sb.String()
}

func (p *Printer) resetBudget() {
	switch {
	case p.opts.MaxNodes < 0:
		p.remaining = -1
	case p.opts.MaxNodes == 0:
		p.remaining = DefaultMaxNodes
	default:
		p.remaining = p.opts.MaxNodes
	}
	p.elided = false
}

// take reserves one node from the budget.
func (p *Printer) take() bool {
	switch {
	case p.remaining < 0:
		return true
	case p.remaining == 0:
		p.elided = true
		return false
	}
	p.remaining--
	return true
}
