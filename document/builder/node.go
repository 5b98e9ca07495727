package builder

import (
	"slices"

	"github.com/joshuapare/zdoc/document"
	"github.com/joshuapare/zdoc/document/printer"
	"github.com/joshuapare/zdoc/pkg/types"
)

// Node is an owned, mutable tree node. Unlike document.Node it may gain or
// lose arguments and children at any time. An empty name or type means
// absent. Mutators return the receiver so calls can be chained.
type Node struct {
	name     string
	ty       string
	args     []Arg
	children []*Node
}

var (
	_ types.NodeRef = (*Node)(nil)
	_ BuildRawNode  = (*Node)(nil)
)

// NewNode returns an empty node.
func NewNode() *Node { return &Node{} }

// FromValues returns a node with one unnamed argument per value.
func FromValues(values ...types.Value) *Node {
	n := &Node{args: make([]Arg, len(values))}
	for i, v := range values {
		n.args[i] = Arg{Value: v}
	}
	return n
}

// FromArgs returns a node with the given arguments.
func FromArgs(args ...Arg) *Node { return &Node{args: slices.Clone(args)} }

// FromChildren returns a node with the given children. A nil child is stored
// as an empty node.
func FromChildren(children ...*Node) *Node { return &Node{children: ownChildren(children)} }

// FromEntries returns a node with each entry pushed by Push.
func FromEntries(entries ...Entry) *Node {
	n := NewNode()
	for _, e := range entries {
		n.Push(e)
	}
	return n
}

// FromDocumentNode copies the subtree at n. String and binary values still
// reference the document's buffer, so a mapped document must stay open while
// the copy is in use.
func FromDocumentNode(n document.Node) *Node {
	out := &Node{name: n.Name(), ty: n.Type()}
	args := n.Args()
	if l := args.Len(); l > 0 {
		out.args = make([]Arg, l)
		for i := 0; i < l; i++ {
			a := args.At(i)
			out.args[i] = Arg{Name: a.Name, Value: a.Value}
		}
	}
	children := n.Children()
	if l := children.Len(); l > 0 {
		out.children = make([]*Node, l)
		for i := 0; i < l; i++ {
			out.children[i] = FromDocumentNode(children.At(i))
		}
	}
	return out
}

// KeyValue returns a node named key holding v as its single unnamed
// argument. Dictionary-like nodes are made of these.
func KeyValue(key string, v types.Value) *Node { return NewArg(key, v).IntoKeyValueNode() }

// KeyValueWith returns a node named key with a single child built by f.
func KeyValueWith(key string, f func(*Node)) *Node {
	return NewNode().SetName(key).AddChildWith(f)
}

// Name returns the node name, or "".
func (n *Node) Name() string { return n.name }

// Type returns the type tag, or "".
func (n *Node) Type() string { return n.ty }

// SetName sets the node name.
func (n *Node) SetName(name string) *Node {
	n.name = name
	return n
}

// SetType sets the type tag.
func (n *Node) SetType(ty string) *Node {
	n.ty = ty
	return n
}

// Args returns the arguments. The slice is owned by n.
func (n *Node) Args() []Arg { return n.args }

// Children returns the children. The slice is owned by n.
func (n *Node) Children() []*Node { return n.children }

// SetArgs replaces the arguments.
func (n *Node) SetArgs(args ...Arg) *Node {
	n.args = args
	return n
}

// SetChildren replaces the children with a copy of children. A nil child is
// stored as an empty node.
func (n *Node) SetChildren(children ...*Node) *Node {
	n.children = ownChildren(children)
	return n
}

func ownChildren(children []*Node) []*Node {
	out := slices.Clone(children)
	for i, c := range out {
		if c == nil {
			out[i] = NewNode()
		}
	}
	return out
}

// PushArg appends an argument.
func (n *Node) PushArg(a Arg) *Node {
	n.args = append(n.args, a)
	return n
}

// PushUnnamedArg appends an unnamed argument.
func (n *Node) PushUnnamedArg(v types.Value) *Node { return n.PushArg(Arg{Value: v}) }

// PushNamedArg appends a named argument.
func (n *Node) PushNamedArg(name string, v types.Value) *Node {
	return n.PushArg(Arg{Name: name, Value: v})
}

// PushChild appends a child. A nil child is stored as an empty node.
func (n *Node) PushChild(c *Node) *Node {
	if c == nil {
		c = NewNode()
	}
	n.children = append(n.children, c)
	return n
}

// AddChildWith appends a child built by f.
func (n *Node) AddChildWith(f func(*Node)) *Node {
	c := NewNode()
	f(c)
	return n.PushChild(c)
}

// InsertChildWith inserts a child built by f at index. It panics if index is
// greater than the number of children.
func (n *Node) InsertChildWith(index int, f func(*Node)) *Node {
	c := NewNode()
	f(c)
	n.children = slices.Insert(n.children, index, c)
	return n
}

// PushNamed appends a key-value child.
func (n *Node) PushNamed(name string, v types.Value) *Node {
	return n.PushChild(KeyValue(name, v))
}

// PushNamedWith appends a child named name and built by f.
func (n *Node) PushNamedWith(name string, f func(*Node)) *Node {
	c := NewNode().SetName(name)
	f(c)
	return n.PushChild(c)
}

// Push appends e as an argument or child. Relative order between arguments
// and children is not kept; use PushOrdered for that.
func (n *Node) Push(e Entry) *Node {
	if e.child != nil {
		return n.PushChild(e.child)
	}
	return n.PushArg(e.arg)
}

// PushOrdered appends e so that reading entries back preserves push order.
// Once n has a child, arguments are stored as key-value children; pushing a
// child first converts all existing arguments to key-value children.
func (n *Node) PushOrdered(e Entry) *Node {
	if e.child == nil && len(n.children) == 0 {
		return n.PushArg(e.arg)
	}
	n.argsToChildren()
	return n.PushChild(e.IntoNode())
}

func (n *Node) argsToChildren() {
	for _, a := range n.args {
		n.children = append(n.children, a.IntoKeyValueNode())
	}
	n.args = nil
}

// ContainsNamedArg reports whether n has an argument called name. The search
// is linear.
func (n *Node) ContainsNamedArg(name string) bool {
	return slices.ContainsFunc(n.args, func(a Arg) bool { return a.Name == name })
}

// IsEmpty reports whether n has no name, type, arguments or children. Such a
// root builds to the empty document.
func (n *Node) IsEmpty() bool {
	return n.name == "" && n.ty == "" && len(n.args) == 0 && len(n.children) == 0
}

// NumArgs implements types.NodeRef.
func (n *Node) NumArgs() int { return len(n.args) }

// ArgAt implements types.NodeRef.
func (n *Node) ArgAt(i int) types.Arg { return n.args[i].ref() }

// NumChildren implements types.NodeRef.
func (n *Node) NumChildren() int { return len(n.children) }

// ChildAt implements types.NodeRef.
func (n *Node) ChildAt(i int) types.NodeRef { return n.children[i] }

// Entry returns the i-th entry, arguments first.
func (n *Node) Entry(i int) Entry {
	if i < len(n.args) {
		return Entry{arg: n.args[i]}
	}
	return Entry{child: n.children[i-len(n.args)]}
}

// Value returns the first argument's value.
func (n *Node) Value() (types.Value, bool) { return types.FirstValue(n) }

// Classify returns the node classification.
func (n *Node) Classify() types.Classify { return types.ClassifyNode(n) }

// Equal reports structural equality with any readable node.
func (n *Node) Equal(o types.NodeRef) bool { return types.Equal(n, o) }

// String renders n in the debug notation.
func (n *Node) String() string { return printer.Sprint(n) }

// BuildRaw implements BuildRawNode.
func (n *Node) BuildRaw(rb *RawBuilder, index uint32) error {
	args, err := rb.ReserveArgs(len(n.args))
	if err != nil {
		return err
	}
	for i, a := range n.args {
		if err := rb.PutArg(args.Start+uint32(i), a.ref()); err != nil {
			return err
		}
	}
	children, err := rb.ReserveNodes(len(n.children))
	if err != nil {
		return err
	}
	for i, c := range n.children {
		if c == nil {
			continue
		}
		if err := c.BuildRaw(rb, children.Start+uint32(i)); err != nil {
			return err
		}
	}
	return rb.SetNode(index, args, children, n.name, n.ty)
}
