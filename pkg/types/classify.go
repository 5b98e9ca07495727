package types

// Classify describes how a node behaves for generic consumers, inferred from
// the naming pattern of its entries and whether it carries a type tag.
type Classify uint8

const (
	// Struct: every entry is named, no type.
	Struct Classify = iota
	// StructVariant: every entry is named, with a type.
	StructVariant
	// Seq: two or more entries, all unnamed, no type.
	Seq
	// SeqVariant: two or more entries, all unnamed, with a type.
	SeqVariant
	// ValueNode: exactly one unnamed entry, no type.
	ValueNode
	// ValueVariant: exactly one unnamed entry, with a type (newtype variants).
	ValueVariant
	// Unit: no entries, no type.
	Unit
	// UnitVariant: no entries, with a type.
	UnitVariant
	// Mixed: named and unnamed entries, no type.
	Mixed
	// MixedVariant: named and unnamed entries, with a type.
	MixedVariant
)

var classifyNames = [...]string{
	Struct:        "struct",
	StructVariant: "struct-variant",
	Seq:           "seq",
	SeqVariant:    "seq-variant",
	ValueNode:     "value",
	ValueVariant:  "value-variant",
	Unit:          "unit",
	UnitVariant:   "unit-variant",
	Mixed:         "mixed",
	MixedVariant:  "mixed-variant",
}

func (c Classify) String() string {
	if int(c) < len(classifyNames) {
		return classifyNames[c]
	}
	return "invalid"
}

// IsListLike reports whether the node can be viewed as a list of unnamed
// items. Empty and single-value nodes qualify.
func (c Classify) IsListLike() bool {
	switch c {
	case Seq, SeqVariant, ValueNode, ValueVariant, Unit, UnitVariant, Mixed, MixedVariant:
		return true
	}
	return false
}

// IsDictionaryLike reports whether the node can be viewed as a map of named
// items. Empty nodes qualify.
func (c Classify) IsDictionaryLike() bool {
	switch c {
	case Struct, StructVariant, Unit, UnitVariant, Mixed, MixedVariant:
		return true
	}
	return false
}

// HasType reports whether c is one of the variant classes.
func (c Classify) HasType() bool {
	switch c {
	case StructVariant, SeqVariant, ValueVariant, UnitVariant, MixedVariant:
		return true
	}
	return false
}

// Naming summarizes the names of a list of entries.
type Naming uint8

const (
	NamingEmpty Naming = iota
	NamingAllNamed
	NamingAllUnnamed
	NamingMixed
)

// NamingOf counts named and unnamed names.
func NamingOf(named, unnamed int) Naming {
	switch {
	case named == 0 && unnamed == 0:
		return NamingEmpty
	case named == 0:
		return NamingAllUnnamed
	case unnamed == 0:
		return NamingAllNamed
	default:
		return NamingMixed
	}
}

// Classify maps a naming summary to the untyped class used for bare argument
// or child lists.
func (n Naming) Classify() Classify {
	switch n {
	case NamingAllNamed:
		return Struct
	case NamingAllUnnamed:
		return Seq
	case NamingMixed:
		return Mixed
	default:
		return Unit
	}
}

// EntryNaming summarizes the names of all of n's entries.
func EntryNaming(n NodeRef) Naming {
	named, unnamed := 0, 0
	for i, na := 0, n.NumArgs(); i < na; i++ {
		if n.ArgAt(i).Name == "" {
			unnamed++
		} else {
			named++
		}
	}
	for i, nc := 0, n.NumChildren(); i < nc; i++ {
		if n.ChildAt(i).Name() == "" {
			unnamed++
		} else {
			named++
		}
	}
	return NamingOf(named, unnamed)
}

// ClassifyNode classifies n.
func ClassifyNode(n NodeRef) Classify {
	typed := n.Type() != ""
	pick := func(untyped, variant Classify) Classify {
		if typed {
			return variant
		}
		return untyped
	}
	switch EntryNaming(n) {
	case NamingEmpty:
		return pick(Unit, UnitVariant)
	case NamingAllNamed:
		return pick(Struct, StructVariant)
	case NamingAllUnnamed:
		if NumEntries(n) == 1 {
			return pick(ValueNode, ValueVariant)
		}
		return pick(Seq, SeqVariant)
	default:
		return pick(Mixed, MixedVariant)
	}
}
