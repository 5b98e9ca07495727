package builder

import (
	"fmt"
	"math"

	"github.com/joshuapare/zdoc/internal/format"
	"github.com/joshuapare/zdoc/pkg/types"
)

// BuildRawNode is a node that can serialize itself into a reserved slot.
// Implementations reserve and fill their argument block first, then reserve
// their children block and build each child into it, and finally call
// SetNode for their own slot.
type BuildRawNode interface {
	BuildRaw(rb *RawBuilder, index uint32) error
}

// RawNode is a BuildRawNode whose arguments and children are known up front,
// as when converting from another format.
type RawNode struct {
	Type     string
	Name     string
	Args     []types.Arg
	Children []BuildRawNode
}

// BuildRaw implements BuildRawNode.
func (n RawNode) BuildRaw(rb *RawBuilder, index uint32) error {
	args, err := rb.BuildArgs(n.Args)
	if err != nil {
		return err
	}
	children, err := rb.ReserveNodes(len(n.Children))
	if err != nil {
		return err
	}
	for i, c := range n.Children {
		if err := c.BuildRaw(rb, children.Start+uint32(i)); err != nil {
			return err
		}
	}
	return rb.SetNode(index, args, children, n.Name, n.Type)
}

// Ref adapts any readable node, such as a document.Node, for RawBuilder.
func Ref(n types.NodeRef) BuildRawNode { return refNode{n} }

type refNode struct{ n types.NodeRef }

func (r refNode) BuildRaw(rb *RawBuilder, index uint32) error {
	na := r.n.NumArgs()
	args, err := rb.ReserveArgs(na)
	if err != nil {
		return err
	}
	for i := 0; i < na; i++ {
		if err := rb.PutArg(args.Start+uint32(i), r.n.ArgAt(i)); err != nil {
			return err
		}
	}
	nc := r.n.NumChildren()
	children, err := rb.ReserveNodes(nc)
	if err != nil {
		return err
	}
	for i := 0; i < nc; i++ {
		if err := (refNode{r.n.ChildAt(i)}).BuildRaw(rb, children.Start+uint32(i)); err != nil {
			return err
		}
	}
	return rb.SetNode(index, args, children, r.n.Name(), r.n.Type())
}

// limits caps section sizes. Zero fields mean math.MaxUint32.
type limits struct {
	nodes   uint64
	args    uint64
	strings uint64
	binary  uint64
	size    uint64
}

func capOr(v uint64) uint64 {
	if v == 0 {
		return math.MaxUint32
	}
	return v
}

// RawBuilder stages the sections of one document. It allocates far less than
// building through Node and its buffers are reused across Reset calls.
//
// The zero value is usable and interns nothing beyond names and types; use
// NewRawBuilder for the default options.
type RawBuilder struct {
	nodes  []format.Node
	args   []format.Arg
	strs   stringTable
	binary []byte
	out    []byte
	limits limits
}

// NewRawBuilder returns a RawBuilder configured from opts.
func NewRawBuilder(opts Options) *RawBuilder {
	rb := &RawBuilder{}
	rb.configure(opts)
	return rb
}

func (rb *RawBuilder) configure(opts Options) {
	rb.strs.limit = max(opts.AutoInternLimit, 0)
	rb.strs.policy = opts.InvalidUTF8
	rb.strs.max = rb.limits.strings
}

// Reset clears staged content and keeps the allocated buffers.
func (rb *RawBuilder) Reset() {
	rb.nodes = rb.nodes[:0]
	rb.args = rb.args[:0]
	rb.strs.reset()
	rb.binary = rb.binary[:0]
	rb.out = rb.out[:0]
}

func (rb *RawBuilder) release() {
	rb.nodes = nil
	rb.args = nil
	rb.strs.release()
	rb.binary = nil
	rb.out = nil
}

// SetRoot clears the builder and serializes root into slot 0.
func (rb *RawBuilder) SetRoot(root BuildRawNode) error {
	rb.Reset()
	rb.nodes = append(rb.nodes, format.EmptyNode)
	return root.BuildRaw(rb, 0)
}

// NumNodes returns the number of staged node slots.
func (rb *RawBuilder) NumNodes() int { return len(rb.nodes) }

// NumArgs returns the number of staged arguments.
func (rb *RawBuilder) NumArgs() int { return len(rb.args) }

// StringBytes returns the staged size of the strings section.
func (rb *RawBuilder) StringBytes() int { return len(rb.strs.buf) }

// BinaryBytes returns the staged size of the binary section.
func (rb *RawBuilder) BinaryBytes() int { return len(rb.binary) }

// empty reports whether only an EMPTY root is staged.
func (rb *RawBuilder) empty() bool {
	return len(rb.nodes) == 0 || (len(rb.nodes) == 1 && rb.nodes[0].IsEmpty())
}

// FileSize returns the size Bytes would produce, before the empty-document
// shortcut: an EMPTY root alone still counts the header.
func (rb *RawBuilder) FileSize() uint64 {
	var nodes uint64
	if !rb.empty() {
		nodes = uint64(len(rb.nodes)) * format.NodeBytes
	}
	return format.HeaderBytes +
		nodes +
		uint64(len(rb.args))*format.ArgBytes +
		uint64(len(rb.strs.buf)) +
		uint64(len(rb.binary))
}

// ReserveNodes appends n EMPTY slots and returns their range.
func (rb *RawBuilder) ReserveNodes(n int) (types.NodeRange, error) {
	if n == 0 {
		return types.NodeRange{}, nil
	}
	start := uint64(len(rb.nodes))
	if start+uint64(n) > capOr(rb.limits.nodes) {
		return types.NodeRange{}, fmt.Errorf("%d + %d nodes: %w", start, n, types.ErrTooManyNodes)
	}
	rb.nodes = append(rb.nodes, make([]format.Node, n)...)
	return types.NodeRange{Start: uint32(start), Len: uint32(n)}, nil
}

// ReserveArgs appends n EMPTY arguments and returns their range.
func (rb *RawBuilder) ReserveArgs(n int) (types.ArgRange, error) {
	if n == 0 {
		return types.ArgRange{}, nil
	}
	start := uint64(len(rb.args))
	if start+uint64(n) > capOr(rb.limits.args) {
		return types.ArgRange{}, fmt.Errorf("%d + %d args: %w", start, n, types.ErrTooManyArgs)
	}
	rb.args = append(rb.args, make([]format.Arg, n)...)
	return types.ArgRange{Start: uint32(start), Len: uint32(n)}, nil
}

// BuildArgs reserves a block for args and fills it in order.
func (rb *RawBuilder) BuildArgs(args []types.Arg) (types.ArgRange, error) {
	r, err := rb.ReserveArgs(len(args))
	if err != nil {
		return r, err
	}
	for i, a := range args {
		if err := rb.PutArg(r.Start+uint32(i), a); err != nil {
			return r, err
		}
	}
	return r, nil
}

// PutArg writes a into the reserved argument slot index. The name is always
// interned; string values follow the auto-intern limit.
func (rb *RawBuilder) PutArg(index uint32, a types.Arg) error {
	name, err := rb.strs.intern(a.Name)
	if err != nil {
		return err
	}
	v, err := rb.value(a.Value)
	if err != nil {
		return err
	}
	rb.args[index] = format.Arg{Name: name, Value: v}
	return nil
}

// SetNode fills the reserved node slot index. Type is interned before name.
func (rb *RawBuilder) SetNode(index uint32, args types.ArgRange, children types.NodeRange, name, ty string) error {
	tr, err := rb.strs.intern(ty)
	if err != nil {
		return err
	}
	nr, err := rb.strs.intern(name)
	if err != nil {
		return err
	}
	rb.nodes[index] = format.Node{Args: args, Children: children, Name: nr, Type: tr}
	return nil
}

// AddString stores s in the strings section, deduplicating short strings.
func (rb *RawBuilder) AddString(s string) (types.StringRange, error) { return rb.strs.add(s) }

// AddBinary appends data to the binary section.
func (rb *RawBuilder) AddBinary(data []byte) (types.BinaryRange, error) {
	start := uint64(len(rb.binary))
	if start+uint64(len(data)) > capOr(rb.limits.binary) {
		return types.BinaryRange{}, fmt.Errorf("%d + %d bytes: %w", start, len(data), types.ErrBinaryTooLarge)
	}
	rb.binary = append(rb.binary, data...)
	return types.BinaryRange{Start: uint32(start), Len: uint32(len(data))}, nil
}

func (rb *RawBuilder) value(v types.Value) (format.Value, error) {
	switch v.Kind() {
	case types.KindBool:
		b, _ := v.AsBool()
		return format.BoolValue(b), nil
	case types.KindInt:
		i, _ := v.AsInt()
		return format.IntValue(i), nil
	case types.KindUint:
		u, _ := v.AsUint()
		return format.UintValue(u), nil
	case types.KindFloat:
		f, _ := v.AsFloat()
		return format.FloatValue(f), nil
	case types.KindString:
		s, _ := v.AsString()
		r, err := rb.strs.add(s)
		if err != nil {
			return format.Value{}, err
		}
		return format.StringValue(r), nil
	case types.KindBinary:
		b, _ := v.AsBinary()
		r, err := rb.AddBinary(b)
		if err != nil {
			return format.Value{}, err
		}
		return format.BinaryValue(r), nil
	default:
		return format.NullValue(), nil
	}
}

// Bytes concatenates the header and the staged sections. A builder holding
// only an EMPTY root produces nil, the empty document. The returned slice is
// owned by the builder and is overwritten by the next Reset or SetRoot.
func (rb *RawBuilder) Bytes() ([]byte, error) {
	if rb.empty() {
		return nil, nil
	}
	size := rb.FileSize()
	if size > capOr(rb.limits.size) {
		return nil, fmt.Errorf("%d bytes: %w", size, types.ErrDocumentTooLarge)
	}

	nodesLen := uint32(len(rb.nodes))
	argsOffset := format.HeaderBytes + nodesLen*format.NodeBytes
	argsLen := uint32(len(rb.args))
	stringsOffset := argsOffset + argsLen*format.ArgBytes
	stringsLen := uint32(len(rb.strs.buf))
	binaryOffset := stringsOffset + stringsLen

	h := format.DefaultHeader
	h.Size = uint32(size)
	h.NodesOffset = format.HeaderBytes
	h.NodesLen = nodesLen
	h.ArgsOffset = argsOffset
	h.ArgsLen = argsLen
	h.StringsOffset = stringsOffset
	h.StringsLen = stringsLen
	h.BinaryOffset = binaryOffset
	h.BinaryLen = uint32(len(rb.binary))

	if cap(rb.out) < int(size) {
		rb.out = make([]byte, size)
	}
	out := rb.out[:size]
	h.Put(out[:format.HeaderBytes])
	off := format.HeaderBytes
	for _, n := range rb.nodes {
		n.Put(out[off : off+format.NodeBytes])
		off += format.NodeBytes
	}
	for _, a := range rb.args {
		a.Put(out[off : off+format.ArgBytes])
		off += format.ArgBytes
	}
	off += copy(out[off:], rb.strs.buf)
	copy(out[off:], rb.binary)
	rb.out = out
	return out, nil
}
