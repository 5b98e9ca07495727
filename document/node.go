package document

import (
	"github.com/joshuapare/zdoc/document/printer"
	"github.com/joshuapare/zdoc/internal/format"
	"github.com/joshuapare/zdoc/pkg/types"
)

// Node is a lightweight handle to one node of a Document. Every accessor is
// infallible because the document was validated when it was loaded.
type Node struct {
	doc   *Document
	index uint32
}

var _ types.NodeRef = Node{}

// Document returns the document n belongs to.
func (n Node) Document() *Document { return n.doc }

// Index returns n's position in the nodes section. The root is usually 0.
func (n Node) Index() int { return int(n.index) }

// Record returns n's encoded record.
func (n Node) Record() types.RawNode { return n.doc.record(n.index) }

// Name returns the node name, or "" when the node is unnamed.
//
// Nodes with unnamed children may be viewed as lists and nodes with named
// children as maps. Duplicate names and mixing named and unnamed children are
// allowed.
func (n Node) Name() string { return n.doc.str(n.Record().Name) }

// Type returns the node's type tag, or "" when it has none. Type tags are
// arbitrary strings.
func (n Node) Type() string { return n.doc.str(n.Record().Type) }

// HasName reports whether the node is named.
func (n Node) HasName() bool { return n.Record().Name.Len != 0 }

// HasType reports whether the node carries a type tag.
func (n Node) HasType() bool { return n.Record().Type.Len != 0 }

// Children returns the node's children.
func (n Node) Children() Children {
	return Children{doc: n.doc, r: n.Record().Children}
}

// Args returns the node's arguments.
func (n Node) Args() Args {
	return Args{doc: n.doc, r: n.Record().Args}
}

// Entries returns the node's arguments followed by its children.
func (n Node) Entries() Entries {
	rec := n.Record()
	return Entries{
		args:     Args{doc: n.doc, r: rec.Args},
		children: Children{doc: n.doc, r: rec.Children},
	}
}

// NumArgs implements types.NodeRef.
func (n Node) NumArgs() int { return int(n.Record().Args.Len) }

// ArgAt implements types.NodeRef.
func (n Node) ArgAt(i int) types.Arg { return n.Args().At(i) }

// NumChildren implements types.NodeRef.
func (n Node) NumChildren() int { return int(n.Record().Children.Len) }

// ChildAt implements types.NodeRef.
func (n Node) ChildAt(i int) types.NodeRef { return n.Children().At(i) }

// IsEmpty reports whether the node has no arguments and no children.
func (n Node) IsEmpty() bool {
	rec := n.Record()
	return rec.Args.Len == 0 && rec.Children.Len == 0
}

// Get looks up key among the arguments, then among the children. Within each
// list the last match wins.
func (n Node) Get(key string) (Entry, bool) {
	if a, ok := n.Args().ByName(key); ok {
		return Entry{Arg: a, IsArg: true}, true
	}
	if c, ok := n.Children().ByName(key); ok {
		return Entry{Child: c}, true
	}
	return Entry{}, false
}

// Value returns the value of the first argument. Key-value nodes in a
// dictionary carry their value this way.
func (n Node) Value() (types.Value, bool) {
	if n.NumArgs() == 0 {
		return types.Value{}, false
	}
	return n.Args().At(0).Value, true
}

// Classify infers how n behaves for generic consumers.
func (n Node) Classify() types.Classify { return types.ClassifyNode(n) }

// IsDictionaryLike reports whether n can be viewed as a map.
func (n Node) IsDictionaryLike() bool { return n.Classify().IsDictionaryLike() }

// IsListLike reports whether n can be viewed as a list.
func (n Node) IsListLike() bool { return n.Classify().IsListLike() }

// IsMixed reports whether n mixes named and unnamed entries without a type.
func (n Node) IsMixed() bool { return n.Classify() == types.Mixed }

// Equal reports whether n and o describe the same tree.
func (n Node) Equal(o types.NodeRef) bool { return types.Equal(n, o) }

// String renders n in the compact debug notation.
func (n Node) String() string { return printer.Sprint(n) }

// Entry is one argument or child of a Node.
type Entry struct {
	Arg   types.Arg
	Child Node
	IsArg bool
}

// Name returns the entry's name.
func (e Entry) Name() string {
	if e.IsArg {
		return e.Arg.Name
	}
	return e.Child.Name()
}

// Value returns the argument value, or the first argument of the child.
func (e Entry) Value() (types.Value, bool) {
	if e.IsArg {
		return e.Arg.Value, true
	}
	return e.Child.Value()
}

// Children is a slice-like view of a node's children.
type Children struct {
	doc *Document
	r   format.NodeRange
}

// Len returns the number of children.
func (c Children) Len() int { return int(c.r.Len) }

// At returns the i-th child. It panics if i is out of range.
func (c Children) At(i int) Node {
	if i < 0 || i >= int(c.r.Len) {
		panic("document: child index out of range")
	}
	return Node{doc: c.doc, index: c.r.Start + uint32(i)}
}

// ByName returns the last child named name.
func (c Children) ByName(name string) (Node, bool) {
	for i := int(c.r.Len) - 1; i >= 0; i-- {
		child := Node{doc: c.doc, index: c.r.Start + uint32(i)}
		if child.Name() == name {
			return child, true
		}
	}
	return Node{}, false
}

// Args is a slice-like view of a node's arguments.
type Args struct {
	doc *Document
	r   format.ArgRange
}

// Len returns the number of arguments.
func (a Args) Len() int { return int(a.r.Len) }

// At returns the i-th argument. It panics if i is out of range.
func (a Args) At(i int) types.Arg {
	if i < 0 || i >= int(a.r.Len) {
		panic("document: argument index out of range")
	}
	return a.doc.arg(a.r.Start + uint32(i))
}

// ByName returns the last argument named name. Only the name is decoded for
// arguments that do not match.
func (a Args) ByName(name string) (types.Arg, bool) {
	for i := int(a.r.Len) - 1; i >= 0; i-- {
		idx := a.r.Start + uint32(i)
		rec := format.DecodeArg(a.doc.argBytes(idx))
		if a.doc.str(rec.Name) == name {
			return types.Arg{Name: name, Value: a.doc.value(rec.Value)}, true
		}
	}
	return types.Arg{}, false
}

// Entries is the concatenation of a node's arguments and children.
type Entries struct {
	args     Args
	children Children
}

// Len returns the number of entries.
func (e Entries) Len() int { return e.args.Len() + e.children.Len() }

// At returns the i-th entry, counting arguments before children.
func (e Entries) At(i int) Entry {
	if na := e.args.Len(); i >= na {
		return Entry{Child: e.children.At(i - na)}
	}
	return Entry{Arg: e.args.At(i), IsArg: true}
}

// Naming summarizes the entry names.
func (e Entries) Naming() types.Naming {
	named, unnamed := 0, 0
	for i := 0; i < e.Len(); i++ {
		if e.At(i).Name() == "" {
			unnamed++
		} else {
			named++
		}
	}
	return types.NamingOf(named, unnamed)
}

// Equal reports whether a and b describe the same tree. Either side may be a
// document node or an owned builder node.
func Equal(a, b types.NodeRef) bool { return types.Equal(a, b) }
