package types

// NodeRef is the read capability shared by document nodes and owned builder
// nodes. Name and Type return "" when absent. Implementations must be cheap to
// index; ArgAt and ChildAt are called in loops.
type NodeRef interface {
	Name() string
	Type() string
	NumArgs() int
	ArgAt(i int) Arg
	NumChildren() int
	ChildAt(i int) NodeRef
}

// Entry is one argument or child of a node, in entry order: all arguments
// first, then all children.
type Entry struct {
	// Arg is set when IsArg is true.
	Arg Arg
	// Child is set when IsArg is false.
	Child NodeRef
	IsArg bool
}

// Name returns the argument or child name.
func (e Entry) Name() string {
	if e.IsArg {
		return e.Arg.Name
	}
	return e.Child.Name()
}

// Value returns the argument value, or the first argument of the child.
func (e Entry) Value() (Value, bool) {
	if e.IsArg {
		return e.Arg.Value, true
	}
	return FirstValue(e.Child)
}

// NumEntries returns NumArgs()+NumChildren().
func NumEntries(n NodeRef) int { return n.NumArgs() + n.NumChildren() }

// EntryAt returns the i-th entry of n, counting arguments before children.
func EntryAt(n NodeRef, i int) Entry {
	na := n.NumArgs()
	if i < na {
		return Entry{Arg: n.ArgAt(i), IsArg: true}
	}
	return Entry{Child: n.ChildAt(i - na)}
}

// FirstValue returns the value of n's first argument. Key-value nodes carry
// their value this way.
func FirstValue(n NodeRef) (Value, bool) {
	if n.NumArgs() == 0 {
		return Value{}, false
	}
	return n.ArgAt(0).Value, true
}

// Equal reports whether a and b describe the same tree: names, types,
// arguments in order and children in order, recursively.
func Equal(a, b NodeRef) bool {
	if a.Name() != b.Name() || a.Type() != b.Type() {
		return false
	}
	na, nc := a.NumArgs(), a.NumChildren()
	if na != b.NumArgs() || nc != b.NumChildren() {
		return false
	}
	for i := 0; i < na; i++ {
		x, y := a.ArgAt(i), b.ArgAt(i)
		if x.Name != y.Name || !x.Value.Equal(y.Value) {
			return false
		}
	}
	for i := 0; i < nc; i++ {
		if !Equal(a.ChildAt(i), b.ChildAt(i)) {
			return false
		}
	}
	return true
}
