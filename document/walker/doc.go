// Package walker traverses validated documents without recursion.
//
// Walk visits nodes in pre-order (a node before its children, children in
// order) using an explicit stack, so arbitrarily deep documents cannot
// exhaust the goroutine stack. The visit callback controls the walk through
// two sentinel errors:
//   - SkipChildren: do not descend into the current node
//   - Stop: end the walk; Walk returns nil
//
// Any other error ends the walk and is returned unchanged.
//
// Validation only guarantees that a children range starts after its parent;
// two parents may still reference overlapping children. The default walk
// visits such shared nodes once per reference. Options.Unique visits each node
// index at most once, tracked by a Bitmap.
package walker
