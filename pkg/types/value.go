package types

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/joshuapare/zdoc/internal/format"
)

// ValueKind identifies the member of the Value union.
type ValueKind = format.ValueTag

// Value kinds.
const (
	KindNull   = format.TagNull
	KindBool   = format.TagBool
	KindInt    = format.TagInt
	KindUint   = format.TagUint
	KindFloat  = format.TagFloat
	KindString = format.TagString
	KindBinary = format.TagBinary
)

// Value is a primitive: null, bool, int64, uint64, float64, string or bytes.
// The zero Value is null. Values read from a document share its buffer.
type Value struct {
	kind ValueKind
	num  uint64
	str  string
	bin  []byte
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a bool value.
func Bool(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// Int returns a signed integer value.
func Int(v int64) Value { return Value{kind: KindInt, num: uint64(v)} }

// Uint returns an unsigned integer value.
func Uint(v uint64) Value { return Value{kind: KindUint, num: v} }

// Float returns a float value.
func Float(v float64) Value { return Value{kind: KindFloat, num: math.Float64bits(v)} }

// String returns a string value.
func String(v string) Value { return Value{kind: KindString, str: v} }

// Binary returns a byte-string value. The slice is not copied.
func Binary(v []byte) Value { return Value{kind: KindBinary, bin: v} }

// Kind reports which member of the union v holds.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the bool held by v.
func (v Value) AsBool() (bool, bool) { return v.num != 0, v.kind == KindBool }

// AsInt returns the int64 held by v.
func (v Value) AsInt() (int64, bool) { return int64(v.num), v.kind == KindInt }

// AsUint returns the uint64 held by v.
func (v Value) AsUint() (uint64, bool) { return v.num, v.kind == KindUint }

// AsFloat returns the float64 held by v.
func (v Value) AsFloat() (float64, bool) { return math.Float64frombits(v.num), v.kind == KindFloat }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsBinary returns the bytes held by v.
func (v Value) AsBinary() ([]byte, bool) { return v.bin, v.kind == KindBinary }

// Equal reports whether v and o hold the same kind and payload. Floats compare
// by bit pattern, so NaN equals an identical NaN.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == o.str
	case KindBinary:
		return bytes.Equal(v.bin, o.bin)
	default:
		return v.num == o.num
	}
}

// String renders v for debugging: null, true, 42, 1.5, "text", (3 bytes).
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.num != 0)
	case KindInt:
		return strconv.FormatInt(int64(v.num), 10)
	case KindUint:
		return strconv.FormatUint(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(math.Float64frombits(v.num), 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	case KindBinary:
		return fmt.Sprintf("(%d bytes)", len(v.bin))
	default:
		return v.kind.String()
	}
}

// AnyValue converts a Go primitive to a Value. It accepts nil, bool, every
// integer and float type, string, []byte and Value; ok is false otherwise.
func AnyValue(x any) (v Value, ok bool) {
	switch x := x.(type) {
	case nil:
		return Null(), true
	case Value:
		return x, true
	case bool:
		return Bool(x), true
	case int:
		return Int(int64(x)), true
	case int8:
		return Int(int64(x)), true
	case int16:
		return Int(int64(x)), true
	case int32:
		return Int(int64(x)), true
	case int64:
		return Int(x), true
	case uint:
		return Uint(uint64(x)), true
	case uint8:
		return Uint(uint64(x)), true
	case uint16:
		return Uint(uint64(x)), true
	case uint32:
		return Uint(uint64(x)), true
	case uint64:
		return Uint(x), true
	case float32:
		return Float(float64(x)), true
	case float64:
		return Float(x), true
	case string:
		return String(x), true
	case []byte:
		return Binary(x), true
	default:
		return Value{}, false
	}
}

// Arg is an optionally named value attached to a node. An empty Name means
// the argument is unnamed.
type Arg struct {
	Name  string
	Value Value
}

// IsNamed reports whether a has a name.
func (a Arg) IsNamed() bool { return a.Name != "" }
