package document

import (
	"fmt"
	"io"
	"log/slog"
	"unsafe"

	"github.com/joshuapare/zdoc/document/verify"
	"github.com/joshuapare/zdoc/internal/format"
	"github.com/joshuapare/zdoc/internal/logger"
	"github.com/joshuapare/zdoc/internal/mmfile"
	"github.com/joshuapare/zdoc/internal/writer"
	"github.com/joshuapare/zdoc/pkg/types"
)

// Document is a validated, immutable zdoc buffer.
type Document struct {
	buf     []byte
	hdr     format.Header
	strings []byte
	binary  []byte
	cleanup func() error
	closed  bool
}

// SetLogger installs the logger used by Open and the builder. A nil logger
// discards output.
func SetLogger(l *slog.Logger) { logger.Set(l) }

// Empty returns the empty document.
func Empty() *Document {
	return &Document{hdr: format.EmptyHeader}
}

// FromBytes validates b and wraps it without copying. On failure the error is
// a *types.ValidationError.
func FromBytes(b []byte) (*Document, error) {
	h, err := verify.CheckHeader(b)
	if err != nil {
		return nil, err
	}
	if err := verify.CheckNodes(b, h); err != nil {
		return nil, err
	}
	if err := verify.CheckArgs(b, h); err != nil {
		return nil, err
	}
	if err := verify.CheckStrings(b, h); err != nil {
		return nil, err
	}
	return newDocument(b, h), nil
}

func newDocument(b []byte, h format.Header) *Document {
	d := &Document{buf: b, hdr: h}
	if h.StringsLen > 0 {
		d.strings = b[h.StringsOffset : h.StringsOffset+h.StringsLen]
	}
	if h.BinaryLen > 0 {
		d.binary = b[h.BinaryOffset : h.BinaryOffset+h.BinaryLen]
	}
	return d
}

// Open maps the file at path and validates it. Call Close to release the
// mapping.
func Open(path string) (*Document, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, types.Wrap(types.ErrIO, fmt.Errorf("open %s: %w", path, err))
	}
	logger.Debug("mapped document", "path", path, "size", len(data))

	d, err := FromBytes(data)
	if err != nil {
		_ = cleanup()
		logger.Warn("document failed validation", "path", path, "error", err)
		return nil, types.Wrap(types.ErrCorrupt, fmt.Errorf("%s: %w", path, err))
	}
	d.cleanup = cleanup
	return d, nil
}

// Close releases the mapping behind a Document returned by Open. It is a
// no-op for other documents and safe to call more than once. A closed
// document reads as empty; Save, WriteTo and the checked getters return
// types.ErrClosed.
func (d *Document) Close() error {
	if d.cleanup == nil {
		return nil
	}
	err := d.cleanup()
	d.cleanup = nil
	d.closed = true
	d.buf, d.strings, d.binary = nil, nil, nil
	d.hdr = format.EmptyHeader
	return err
}

// Save writes the document to path atomically.
func (d *Document) Save(path string) error {
	if d.closed {
		return types.ErrClosed
	}
	w := &writer.FileWriter{Path: path}
	if err := w.WriteFrom(d); err != nil {
		return types.Wrap(types.ErrIO, err)
	}
	return nil
}

// WriteTo writes the encoded document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if d.closed {
		return 0, types.ErrClosed
	}
	n, err := w.Write(d.buf)
	return int64(n), err
}

// Bytes returns the encoded document. The slice must not be modified.
func (d *Document) Bytes() []byte { return d.buf }

// IsEmpty reports whether d is the zero-length document.
func (d *Document) IsEmpty() bool { return len(d.buf) == 0 }

// Header returns the decoded header. The empty document reports
// format.EmptyHeader.
func (d *Document) Header() types.Header { return d.hdr }

// NumNodes returns the number of records in the nodes section.
func (d *Document) NumNodes() int { return int(d.hdr.NodesLen) }

// NumArgs returns the number of records in the args section.
func (d *Document) NumArgs() int { return int(d.hdr.ArgsLen) }

// RawNode returns the encoded node at index i. It panics if i is out of range.
func (d *Document) RawNode(i int) types.RawNode {
	return format.DecodeNode(d.nodeBytes(uint32(i)))
}

// RawArg returns the encoded argument at index i. It panics if i is out of range.
func (d *Document) RawArg(i int) types.RawArg {
	return format.DecodeArg(d.argBytes(uint32(i)))
}

// Nodes decodes every node record.
func (d *Document) Nodes() []types.RawNode {
	out := make([]types.RawNode, d.hdr.NodesLen)
	for i := range out {
		out[i] = d.RawNode(i)
	}
	return out
}

// Args decodes every argument record.
func (d *Document) Args() []types.RawArg {
	out := make([]types.RawArg, d.hdr.ArgsLen)
	for i := range out {
		out[i] = d.RawArg(i)
	}
	return out
}

// Root returns the root node. Documents without nodes have an empty root.
func (d *Document) Root() Node {
	return Node{doc: d, index: d.hdr.RootNodeIndex}
}

// Node returns the node at index i. It panics if i is out of range.
func (d *Document) Node(i int) Node {
	if i < 0 || i >= int(d.hdr.NodesLen) {
		panic(fmt.Sprintf("document: node index %d out of range [0,%d)", i, d.hdr.NodesLen))
	}
	return Node{doc: d, index: uint32(i)}
}

// GetString resolves a string range that did not come from this document's
// own records, checking it against the string section first.
func (d *Document) GetString(r types.StringRange) (string, error) {
	if d.closed {
		return "", types.ErrClosed
	}
	if err := verify.CheckStringRange(d.buf, d.hdr, r, d.hdr.StringsOffset+r.Start); err != nil {
		return "", err
	}
	return d.str(r), nil
}

// GetBinary resolves a binary range, checking it against the binary section.
func (d *Document) GetBinary(r types.BinaryRange) ([]byte, error) {
	if d.closed {
		return nil, types.ErrClosed
	}
	if err := verify.CheckBinaryRange(d.hdr, r, d.hdr.BinaryOffset+r.Start); err != nil {
		return nil, err
	}
	return d.bin(r), nil
}

// StringSection returns the raw string section.
func (d *Document) StringSection() []byte { return d.strings }

// BinarySection returns the raw binary section.
func (d *Document) BinarySection() []byte { return d.binary }

func (d *Document) nodeBytes(i uint32) []byte {
	off := d.hdr.NodesOffset + i*format.NodeBytes
	return d.buf[off : off+format.NodeBytes]
}

func (d *Document) argBytes(i uint32) []byte {
	off := d.hdr.ArgsOffset + i*format.ArgBytes
	return d.buf[off : off+format.ArgBytes]
}

func (d *Document) record(i uint32) format.Node {
	if d.hdr.NodesLen == 0 {
		return format.EmptyNode
	}
	return format.DecodeNode(d.nodeBytes(i))
}

// str returns the string at r without copying. r was proven in bounds and on
// character boundaries by validation.
func (d *Document) str(r format.StringRange) string {
	if r.Len == 0 {
		return ""
	}
	return unsafe.String(&d.strings[r.Start], int(r.Len))
}

func (d *Document) bin(r format.BinaryRange) []byte {
	if r.Len == 0 {
		return []byte{}
	}
	end := r.Start + r.Len
	return d.binary[r.Start:end:end]
}

func (d *Document) value(v format.Value) types.Value {
	switch v.Tag {
	case format.TagBool:
		return types.Bool(v.Bool())
	case format.TagInt:
		return types.Int(v.Int())
	case format.TagUint:
		return types.Uint(v.Uint())
	case format.TagFloat:
		return types.Float(v.Float())
	case format.TagString:
		return types.String(d.str(v.StringRange()))
	case format.TagBinary:
		return types.Binary(d.bin(v.BinaryRange()))
	default:
		return types.Null()
	}
}

func (d *Document) arg(i uint32) types.Arg {
	a := format.DecodeArg(d.argBytes(i))
	return types.Arg{Name: d.str(a.Name), Value: d.value(a.Value)}
}
