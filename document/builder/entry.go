package builder

import "github.com/joshuapare/zdoc/pkg/types"

// Arg is an owned argument. An empty Name means the argument is unnamed.
type Arg struct {
	Name  string
	Value types.Value
}

// NewArg returns a named argument.
func NewArg(name string, v types.Value) Arg { return Arg{Name: name, Value: v} }

// UnnamedArg returns an unnamed argument.
func UnnamedArg(v types.Value) Arg { return Arg{Value: v} }

// IntoKeyValueNode converts a into a node named after a carrying the value as
// its single unnamed argument.
func (a Arg) IntoKeyValueNode() *Node {
	return &Node{name: a.Name, args: []Arg{{Value: a.Value}}}
}

func (a Arg) ref() types.Arg { return types.Arg{Name: a.Name, Value: a.Value} }

// Entry is either an argument or a child node.
type Entry struct {
	arg   Arg
	child *Node
}

// ArgEntry wraps an argument.
func ArgEntry(a Arg) Entry { return Entry{arg: a} }

// ValueEntry wraps an unnamed argument.
func ValueEntry(v types.Value) Entry { return Entry{arg: Arg{Value: v}} }

// NamedEntry wraps a named argument.
func NamedEntry(name string, v types.Value) Entry { return Entry{arg: Arg{Name: name, Value: v}} }

// ChildEntry wraps a child node. A nil child is treated as an empty node.
func ChildEntry(n *Node) Entry {
	if n == nil {
		n = NewNode()
	}
	return Entry{child: n}
}

// NodeEntry builds a child with f and wraps it.
func NodeEntry(f func(*Node)) Entry {
	n := NewNode()
	f(n)
	return Entry{child: n}
}

// ListEntry builds a child named name whose entries are pushed in order.
func ListEntry(name string, entries ...Entry) Entry {
	n := FromEntries(entries...)
	n.name = name
	return Entry{child: n}
}

// NullEntry is an unnamed null argument.
func NullEntry() Entry { return ValueEntry(types.Null()) }

// IsArg reports whether e holds an argument.
func (e Entry) IsArg() bool { return e.child == nil }

// Arg returns the argument; ok is false for child entries.
func (e Entry) Arg() (Arg, bool) { return e.arg, e.child == nil }

// Child returns the child node, or nil for argument entries.
func (e Entry) Child() *Node { return e.child }

// Name returns the argument or child name.
func (e Entry) Name() string {
	if e.child != nil {
		return e.child.name
	}
	return e.arg.Name
}

// SetName renames the entry in place.
func (e *Entry) SetName(name string) {
	if e.child != nil {
		e.child.name = name
		return
	}
	e.arg.Name = name
}

// IntoNode returns the child, or the argument as a key-value node.
func (e Entry) IntoNode() *Node {
	if e.child != nil {
		return e.child
	}
	return e.arg.IntoKeyValueNode()
}
