package types

import "github.com/joshuapare/zdoc/internal/format"

// Encoded records, re-exported for tools that inspect documents at the byte
// level. Ranges are relative to their section.
type (
	Header      = format.Header
	RawNode     = format.Node
	RawArg      = format.Arg
	RawValue    = format.Value
	NodeRange   = format.NodeRange
	ArgRange    = format.ArgRange
	StringRange = format.StringRange
	BinaryRange = format.BinaryRange
)

// ValidationError reports the first structural defect in a document.
type ValidationError = format.ValidationError

// ValidationErrorKind classifies a ValidationError.
type ValidationErrorKind = format.ValidationErrorKind

// Validation error kinds.
const (
	HeaderMagic                    = format.HeaderMagic
	HeaderVersion                  = format.HeaderVersion
	HeaderSize                     = format.HeaderSize
	HeaderNodesOffset              = format.HeaderNodesOffset
	HeaderNodesLen                 = format.HeaderNodesLen
	HeaderArgsOffset               = format.HeaderArgsOffset
	HeaderArgsLen                  = format.HeaderArgsLen
	HeaderStringsOffset            = format.HeaderStringsOffset
	HeaderStringsLen               = format.HeaderStringsLen
	HeaderBinaryOffset             = format.HeaderBinaryOffset
	HeaderBinaryLen                = format.HeaderBinaryLen
	HeaderRootNodeOutOfBounds      = format.HeaderRootNodeOutOfBounds
	HeaderReservedFieldsMustBeZero = format.HeaderReservedFieldsMustBeZero
	HeaderSectionsOverlap          = format.HeaderSectionsOverlap
	LengthOverflow                 = format.LengthOverflow
	ChildrenOutOfBounds            = format.ChildrenOutOfBounds
	ArgumentsOutOfBounds           = format.ArgumentsOutOfBounds
	StringOutOfBounds              = format.StringOutOfBounds
	BinaryOutOfBounds              = format.BinaryOutOfBounds
	InvalidUTF8                    = format.InvalidUTF8
	InvalidArgumentType            = format.InvalidArgumentType
	ChildrenBeforeParent           = format.ChildrenBeforeParent
)

// Layout constants.
const (
	HeaderBytes            = format.HeaderBytes
	NodeBytes              = format.NodeBytes
	ArgBytes               = format.ArgBytes
	DefaultAutoInternLimit = format.DefaultAutoInternLimit
)
