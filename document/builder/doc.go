// Package builder assembles zdoc documents.
//
// Two layers are provided:
//
//   - RawBuilder serializes any tree whose shape is known up front (a
//     BuildRawNode, or any types.NodeRef through Ref) directly into the node,
//     argument, string and binary sections. It never rewrites a node once its
//     slot is filled.
//   - Node is an owned, mutable tree. Builder wraps a root Node and turns it
//     into a validated *document.Document.
//
// # Layout guarantees
//
// Slot 0 is always the root. A node's argument block is written before its
// children block is reserved, and each child is built after its parent's slot
// exists, so every children range starts strictly after its parent. Names,
// types and argument names are always interned; argument string values are
// interned only when no longer than the auto-intern limit. Binary values are
// appended as-is.
//
// A tree with no name, type, arguments or children serializes to the
// zero-length buffer.
//
// # Reuse
//
// A BuildCache keeps the staging slices between builds. Builders and caches
// are not safe for concurrent use; give each goroutine its own.
//
// Example:
//
//	b := builder.New()
//	b.Root().
//		SetName("server").
//		PushNamed("port", types.Int(8080)).
//		PushNamedWith("tls", func(n *builder.Node) {
//			n.PushNamedArg("enabled", types.Bool(true))
//		})
//	doc, err := b.Build()
package builder
