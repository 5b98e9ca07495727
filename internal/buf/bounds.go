package buf

import (
	"math"
)

// AddU32 adds a and b, returning ok = false when the result would overflow uint32.
func AddU32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

// SpanEnd returns the end offset of count records of elemSize bytes starting at
// offset. The result is computed in 64 bits so it never wraps for u32 inputs.
func SpanEnd(offset, count, elemSize uint32) uint64 {
	return uint64(offset) + uint64(count)*uint64(elemSize)
}

// RangeCheck is the result of checking a (start, len) range against a limit.
type RangeCheck uint8

const (
	// RangeOK means start+len fits in uint32 and lies within the limit.
	RangeOK RangeCheck = iota
	// RangeOverflow means start+len does not fit in uint32.
	RangeOverflow
	// RangeOutOfBounds means the range extends past the limit.
	RangeOutOfBounds
)

// CheckRange validates that [start, start+n) lies within [0, limit).
//
// The overflow check always runs first, so a wrapping range is reported as
// RangeOverflow even when it would also be out of bounds.
//
//	switch buf.CheckRange(r.Start, r.Len, nodesLen) {
//	case buf.RangeOverflow:
//	    // report LengthOverflow
//	case buf.RangeOutOfBounds:
//	    // report the section-specific error
//	}
func CheckRange(start, n, limit uint32) RangeCheck {
	end, ok := AddU32(start, n)
	if !ok {
		return RangeOverflow
	}
	if start > limit || end > limit {
		return RangeOutOfBounds
	}
	return RangeOK
}
