// Package format describes the byte layout of a zdoc document: the 64-byte
// header, fixed-size node and argument records, the tagged value union and the
// (start, len) ranges that tie them together. It holds no behavior beyond
// decoding and encoding those records, so the validator, the reader and the
// builder all agree on a single definition of every offset.
package format

// Magic is the eight-byte signature at the start of every non-empty document.
//
//	0x00  'z' 'd' 'o' 'c' 0x00 0x00 0x00 0x00
var Magic = [8]byte{'z', 'd', 'o', 'c', 0, 0, 0, 0}

const (
	// Version is the only supported value of the header version field.
	Version = 1

	// HeaderBytes is the size of the document header in bytes.
	HeaderBytes = 64

	// NodeBytes is the size of one record in the nodes section.
	NodeBytes = 32

	// ArgBytes is the size of one record in the args section.
	ArgBytes = 20

	// ValueBytes is the size of an encoded value (tag + payload).
	ValueBytes = 12

	// RangeBytes is the size of an encoded (start, len) range.
	RangeBytes = 8

	// SectionAlignment is the required alignment of the nodes and args sections.
	// Strings and binary data are byte-aligned.
	SectionAlignment = 4

	// SectionAlignmentMask is the bitmask used for aligning to 4-byte boundaries.
	SectionAlignmentMask = SectionAlignment - 1

	// DefaultAutoInternLimit is the longest string, in bytes, that builders
	// deduplicate by default.
	DefaultAutoInternLimit = 128
)

// Header field offsets.
const (
	HdrMagicOffset     = 0x00 // 8
	HdrVersionOffset   = 0x08
	HdrRootIndexOffset = 0x0C
	HdrSizeOffset      = 0x10
	HdrNodesOffset     = 0x14
	HdrNodesLen        = 0x18
	HdrArgsOffset      = 0x1C
	HdrArgsLen         = 0x20
	HdrStringsOffset   = 0x24
	HdrStringsLen      = 0x28
	HdrBinaryOffset    = 0x2C
	HdrBinaryLen       = 0x30
	HdrReserved1       = 0x34
	HdrReserved2       = 0x38
	HdrReserved3       = 0x3C
)

// Node field offsets.
const (
	NodeArgsField     = 0x00 // ArgRange
	NodeChildrenField = 0x08 // NodeRange
	NodeNameField     = 0x10 // StringRange
	NodeTypeField     = 0x18 // StringRange
)

// Arg field offsets.
const (
	ArgNameField  = 0x00 // StringRange
	ArgValueField = 0x08 // Value
)

// Value and range field offsets.
const (
	ValueTagField     = 0x00
	ValuePayloadField = 0x04
	RangeStartField   = 0x00
	RangeLenField     = 0x04
)

// Layout checks. An array literal of the wrong length does not assign to the
// declared type, so a field table that stops tiling its record fails to build.
var (
	_ [HeaderBytes]struct{}       = [HdrReserved3 + 4]struct{}{}
	_ [NodeChildrenField]struct{} = [NodeArgsField + RangeBytes]struct{}{}
	_ [NodeNameField]struct{}     = [NodeChildrenField + RangeBytes]struct{}{}
	_ [NodeTypeField]struct{}     = [NodeNameField + RangeBytes]struct{}{}
	_ [NodeBytes]struct{}         = [NodeTypeField + RangeBytes]struct{}{}
	_ [ArgValueField]struct{}     = [ArgNameField + RangeBytes]struct{}{}
	_ [ArgBytes]struct{}          = [ArgValueField + ValueBytes]struct{}{}
	_ [ValueBytes]struct{}        = [ValuePayloadField + 8]struct{}{}
	_ [RangeBytes]struct{}        = [RangeLenField + 4]struct{}{}
	_ [0]struct{}                 = [HeaderBytes % SectionAlignment]struct{}{}
	_ [0]struct{}                 = [NodeBytes % SectionAlignment]struct{}{}
	_ [0]struct{}                 = [ArgBytes % SectionAlignment]struct{}{}
)
