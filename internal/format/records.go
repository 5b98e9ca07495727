package format

// Range is a (start, len) pair indexing into one section of a document.
// Start is relative to the beginning of that section, never an absolute
// buffer offset. The type parameter only distinguishes sections at compile
// time; all ranges share the same 8-byte encoding.
//
//	Offset  Size  Description
//	------  ----  -----------------------------
//	 0x00    4    start (records or bytes)
//	 0x04    4    len (records or bytes)
type Range[S section] struct {
	Start uint32
	Len   uint32
}

type section interface {
	nodeSection | argSection | stringSection | binarySection
}

type (
	nodeSection   struct{}
	argSection    struct{}
	stringSection struct{}
	binarySection struct{}
)

// NodeRange indexes records in the nodes section.
type NodeRange = Range[nodeSection]

// ArgRange indexes records in the args section.
type ArgRange = Range[argSection]

// StringRange indexes bytes in the strings section.
type StringRange = Range[stringSection]

// BinaryRange indexes bytes in the binary section.
type BinaryRange = Range[binarySection]

// IsEmpty reports whether the range has zero length.
func (r Range[S]) IsEmpty() bool { return r.Len == 0 }

// End returns Start+Len, with ok = false when the sum overflows uint32.
func (r Range[S]) End() (end uint32, ok bool) {
	end = r.Start + r.Len
	return end, end >= r.Start
}

// ReadRange decodes a range stored at b[off:off+8].
func ReadRange[S section](b []byte, off int) Range[S] {
	return Range[S]{
		Start: ReadU32(b, off+RangeStartField),
		Len:   ReadU32(b, off+RangeLenField),
	}
}

// PutRange encodes r at b[off:off+8].
func PutRange[S section](b []byte, off int, r Range[S]) {
	PutU32(b, off+RangeStartField, r.Start)
	PutU32(b, off+RangeLenField, r.Len)
}

// Node is the decoded form of a 32-byte node record.
//
//	Offset  Size  Description
//	------  ----  -----------------------------
//	 0x00    8    args      (ArgRange)
//	 0x08    8    children  (NodeRange)
//	 0x10    8    name      (StringRange, empty = unnamed)
//	 0x18    8    type tag  (StringRange, empty = untyped)
type Node struct {
	Args     ArgRange
	Children NodeRange
	Name     StringRange
	Type     StringRange
}

// EmptyNode has no name, type, args or children.
var EmptyNode = Node{}

// IsEmpty reports whether n is the canonical empty node.
func (n Node) IsEmpty() bool { return n == EmptyNode }

// DecodeNode decodes the node record at b[0:NodeBytes].
func DecodeNode(b []byte) Node {
	_ = b[NodeBytes-1]
	return Node{
		Args:     ReadRange[argSection](b, NodeArgsField),
		Children: ReadRange[nodeSection](b, NodeChildrenField),
		Name:     ReadRange[stringSection](b, NodeNameField),
		Type:     ReadRange[stringSection](b, NodeTypeField),
	}
}

// Put encodes n into b[0:NodeBytes].
func (n Node) Put(b []byte) {
	_ = b[NodeBytes-1]
	PutRange(b, NodeArgsField, n.Args)
	PutRange(b, NodeChildrenField, n.Children)
	PutRange(b, NodeNameField, n.Name)
	PutRange(b, NodeTypeField, n.Type)
}

// Arg is the decoded form of a 20-byte argument record.
//
//	Offset  Size  Description
//	------  ----  -----------------------------
//	 0x00    8    name   (StringRange, empty = unnamed)
//	 0x08   12    value  (Value)
type Arg struct {
	Name  StringRange
	Value Value
}

// EmptyArg is an unnamed null argument.
var EmptyArg = Arg{}

// DecodeArg decodes the argument record at b[0:ArgBytes].
func DecodeArg(b []byte) Arg {
	_ = b[ArgBytes-1]
	return Arg{
		Name:  ReadRange[stringSection](b, ArgNameField),
		Value: DecodeValue(b[ArgValueField:]),
	}
}

// Put encodes a into b[0:ArgBytes].
func (a Arg) Put(b []byte) {
	_ = b[ArgBytes-1]
	PutRange(b, ArgNameField, a.Name)
	a.Value.Put(b[ArgValueField:])
}
