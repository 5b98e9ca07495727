// Package buf contains overflow-checked range arithmetic and endian-safe
// decoding helpers shared by the validator and the reader.
package buf

import "encoding/binary"

// WordSize is the width of every integer field in a document.
const WordSize = 4

// Words decodes consecutive little-endian uint32 words starting at off into
// dst, in order, and returns how many were read. Decoding stops at the first
// word that does not fit in b; the remaining targets are left untouched.
func Words(b []byte, off int, dst ...*uint32) int {
	if off < 0 {
		return 0
	}
	for i, p := range dst {
		end := off + (i+1)*WordSize
		if end > len(b) {
			return i
		}
		*p = binary.LittleEndian.Uint32(b[end-WordSize : end])
	}
	return len(dst)
}
