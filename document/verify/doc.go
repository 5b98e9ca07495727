// Package verify proves that an untrusted byte buffer is a well-formed zdoc
// document.
//
// Check runs four passes in order and stops at the first defect:
//
//  1. CheckHeader: magic, version, exact size, section offsets, lengths and
//     alignment, section overlap, root index and reserved fields.
//  2. CheckNodes: name and type ranges, argument range, and the rule that a
//     node's children all come after the node itself (so the tree is acyclic
//     and a pre-order scan only moves forward).
//  3. CheckArgs: name ranges, value tags and string/binary payload ranges.
//  4. CheckStrings: the whole string section is valid UTF-8.
//
// Every failure is a *format.ValidationError carrying the absolute byte offset
// of the offending field. Nothing here panics on malformed input; all range
// arithmetic is overflow-checked. Once Check returns nil, the document package
// reads the buffer without further bounds checks.
package verify
