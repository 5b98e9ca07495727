// Package mmfile provides platform-specific helpers for memory-mapping
// document files read-only.
package mmfile

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooLarge is returned for files that cannot hold a valid document.
var ErrTooLarge = errors.New("file too large to map")

// MaxSize is the largest file Map accepts. Documents address their contents
// with 32-bit offsets, so nothing larger can be valid.
const MaxSize = math.MaxUint32

// maxInt is the largest slice length on this platform. It is below MaxSize
// on 32-bit targets.
const maxInt = int64(^uint(0) >> 1)

// checkSize rejects sizes above MaxSize or above intMax.
func checkSize(size, intMax int64) error {
	if size > MaxSize || size > intMax {
		return fmt.Errorf("mmfile: %w (%d bytes)", ErrTooLarge, size)
	}
	return nil
}
