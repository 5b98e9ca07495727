package format

import (
	"fmt"
	"math"
)

// ValueTag identifies which member of the value union is stored in a payload.
type ValueTag uint32

const (
	TagNull   ValueTag = 0
	TagBool   ValueTag = 1
	TagInt    ValueTag = 2
	TagUint   ValueTag = 3
	TagFloat  ValueTag = 4
	TagString ValueTag = 5
	TagBinary ValueTag = 6
)

// Valid reports whether t is one of the known tags.
func (t ValueTag) Valid() bool { return t <= TagBinary }

func (t ValueTag) String() string {
	switch t {
	case TagNull:
		return "null"
	case TagBool:
		return "bool"
	case TagInt:
		return "int"
	case TagUint:
		return "uint"
	case TagFloat:
		return "float"
	case TagString:
		return "string"
	case TagBinary:
		return "binary"
	default:
		return fmt.Sprintf("tag(%d)", uint32(t))
	}
}

// Value is the encoded 12-byte value union.
//
//	Offset  Size  Description
//	------  ----  -----------------------------
//	 0x00    4    tag (ValueTag)
//	 0x04    8    payload, interpreted per tag:
//	                null    zero
//	                bool    all 0x01 (true) or all 0x00 (false)
//	                int     i64
//	                uint    u64
//	                float   f64 bits
//	                string  StringRange
//	                binary  BinaryRange
//
// Accessors do not check the tag; callers switch on Tag first.
type Value struct {
	Tag     ValueTag
	Payload [8]byte
}

// NullValue returns the encoded null.
func NullValue() Value { return Value{Tag: TagNull} }

// BoolValue encodes a bool.
func BoolValue(v bool) Value {
	out := Value{Tag: TagBool}
	if v {
		out.Payload = [8]byte{1, 1, 1, 1, 1, 1, 1, 1}
	}
	return out
}

// IntValue encodes a signed integer.
func IntValue(v int64) Value { return u64Value(TagInt, uint64(v)) }

// UintValue encodes an unsigned integer.
func UintValue(v uint64) Value { return u64Value(TagUint, v) }

// FloatValue encodes a float.
func FloatValue(v float64) Value { return u64Value(TagFloat, math.Float64bits(v)) }

// StringValue encodes a reference into the strings section.
func StringValue(r StringRange) Value {
	out := Value{Tag: TagString}
	PutRange(out.Payload[:], 0, r)
	return out
}

// BinaryValue encodes a reference into the binary section.
func BinaryValue(r BinaryRange) Value {
	out := Value{Tag: TagBinary}
	PutRange(out.Payload[:], 0, r)
	return out
}

func u64Value(tag ValueTag, v uint64) Value {
	out := Value{Tag: tag}
	PutU64(out.Payload[:], 0, v)
	return out
}

// Bool decodes a bool payload. Any non-zero first byte is true.
func (v Value) Bool() bool { return v.Payload[0] != 0 }

// Int decodes an int payload.
func (v Value) Int() int64 { return int64(ReadU64(v.Payload[:], 0)) }

// Uint decodes a uint payload.
func (v Value) Uint() uint64 { return ReadU64(v.Payload[:], 0) }

// Float decodes a float payload.
func (v Value) Float() float64 { return math.Float64frombits(ReadU64(v.Payload[:], 0)) }

// StringRange decodes a string payload.
func (v Value) StringRange() StringRange { return ReadRange[stringSection](v.Payload[:], 0) }

// BinaryRange decodes a binary payload.
func (v Value) BinaryRange() BinaryRange { return ReadRange[binarySection](v.Payload[:], 0) }

// DecodeValue decodes the value at b[0:ValueBytes]. The tag is not checked.
func DecodeValue(b []byte) Value {
	_ = b[ValueBytes-1]
	out := Value{Tag: ValueTag(ReadU32(b, ValueTagField))}
	copy(out.Payload[:], b[ValuePayloadField:ValuePayloadField+8])
	return out
}

// Put encodes v into b[0:ValueBytes].
func (v Value) Put(b []byte) {
	_ = b[ValueBytes-1]
	PutU32(b, ValueTagField, uint32(v.Tag))
	copy(b[ValuePayloadField:ValuePayloadField+8], v.Payload[:])
}
