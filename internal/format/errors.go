package format

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
)

// ValidationErrorKind classifies a structural defect found by the validator.
type ValidationErrorKind uint8

const (
	HeaderMagic ValidationErrorKind = iota
	HeaderVersion
	HeaderSize
	HeaderNodesOffset
	HeaderNodesLen
	HeaderArgsOffset
	HeaderArgsLen
	HeaderStringsOffset
	HeaderStringsLen
	HeaderBinaryOffset
	HeaderBinaryLen
	HeaderRootNodeOutOfBounds
	HeaderReservedFieldsMustBeZero
	HeaderSectionsOverlap

	LengthOverflow
	ChildrenOutOfBounds
	ArgumentsOutOfBounds
	StringOutOfBounds
	BinaryOutOfBounds
	InvalidUTF8
	InvalidArgumentType
	ChildrenBeforeParent
)

var kindMessages = [...]string{
	HeaderMagic:                    "header magic bytes are invalid",
	HeaderVersion:                  "header version field indicates an unsupported version",
	HeaderSize:                     "header size field does not match the actual size of the document",
	HeaderNodesOffset:              "header nodes offset field is invalid",
	HeaderNodesLen:                 "header nodes length field is invalid",
	HeaderArgsOffset:               "header args offset field is invalid",
	HeaderArgsLen:                  "header args length field is invalid",
	HeaderStringsOffset:            "header strings offset field is invalid",
	HeaderStringsLen:               "header strings length field is invalid",
	HeaderBinaryOffset:             "header binary offset field is invalid",
	HeaderBinaryLen:                "header binary length field is invalid",
	HeaderRootNodeOutOfBounds:      "header root node index is out of bounds",
	HeaderReservedFieldsMustBeZero: "header reserved fields must be zero",
	HeaderSectionsOverlap:          "header sections overlap",
	LengthOverflow:                 "range length overflow",
	ChildrenOutOfBounds:            "children node range out of bounds",
	ArgumentsOutOfBounds:           "node argument range out of bounds",
	StringOutOfBounds:              "string out of bounds",
	BinaryOutOfBounds:              "binary out of bounds",
	InvalidUTF8:                    "string blob contains invalid UTF-8",
	InvalidArgumentType:            "invalid argument type",
	ChildrenBeforeParent:           "children of node come before the node; all children of a node must come after the node itself",
}

func (k ValidationErrorKind) String() string {
	if int(k) < len(kindMessages) {
		return kindMessages[k]
	}
	return fmt.Sprintf("validation error %d", uint8(k))
}

// ValidationError reports the first structural defect in a document and the
// absolute byte offset of the field that caused it.
type ValidationError struct {
	Offset uint32
	Kind   ValidationErrorKind
	// Version holds the rejected version number for HeaderVersion.
	Version uint32
}

// At builds a ValidationError of kind k at offset off.
func (k ValidationErrorKind) At(off uint32) *ValidationError {
	return &ValidationError{Offset: off, Kind: k}
}

func (e *ValidationError) Error() string {
	if e.Kind == HeaderVersion {
		return fmt.Sprintf("%s: %d, offset %d", e.Kind, e.Version, e.Offset)
	}
	return fmt.Sprintf("%s, offset %d", e.Kind, e.Offset)
}

// Is matches any *ValidationError of the same kind, so
// errors.Is(err, format.HeaderSize.At(0)) ignores the offset. Use errors.As
// to inspect the offset.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}
