// Package types defines the public vocabulary shared by the zdoc reader and
// builder: the primitive Value union, arguments, the NodeRef capability that
// both document nodes and owned builder nodes implement, node classification,
// and typed errors.
//
// A zdoc document is a tree. Every node has an optional name, an optional type
// tag, an ordered list of arguments (optionally named primitive values) and an
// ordered list of children. Duplicate names are legal; lookups by name return
// the last match.
//
// # Values
//
// A Value is one of null, bool, int64, uint64, float64, a UTF-8 string or an
// opaque byte string. Values obtained from a document borrow its buffer.
//
// # Errors
//
// Structural defects in a document are reported as *ValidationError carrying
// the absolute byte offset of the offending field. Everything else uses
// *Error with a stable ErrKind:
//
//	doc, err := document.FromBytes(b)
//	var verr *types.ValidationError
//	if errors.As(err, &verr) {
//	    log.Printf("corrupt at %d: %s", verr.Offset, verr.Kind)
//	}
//
// This package has no dependencies beyond the standard library and the
// internal layout package.
package types
