package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/zdoc/internal/buf"
)

// Header is the decoded 64-byte document header.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    8    'z' 'd' 'o' 'c' 0 0 0 0
//	 0x08    4    Version (must be 1)
//	 0x0C    4    Root node index (into the nodes section)
//	 0x10    4    Total document size, header included
//	 0x14    4    Nodes section offset
//	 0x18    4    Nodes section length (records)
//	 0x1C    4    Args section offset
//	 0x20    4    Args section length (records)
//	 0x24    4    Strings section offset
//	 0x28    4    Strings section length (bytes)
//	 0x2C    4    Binary section offset
//	 0x30    4    Binary section length (bytes)
//	 0x34   12    Reserved, must be zero
//
// Section offsets are absolute buffer offsets. An empty section may be encoded
// as offset 0, length 0.
type Header struct {
	Magic         [8]byte
	Version       uint32
	RootNodeIndex uint32
	Size          uint32
	NodesOffset   uint32
	NodesLen      uint32
	ArgsOffset    uint32
	ArgsLen       uint32
	StringsOffset uint32
	StringsLen    uint32
	BinaryOffset  uint32
	BinaryLen     uint32
	Reserved1     uint32
	Reserved2     uint32
	Reserved3     uint32
}

// DefaultHeader is a valid header-only document: no sections, root index 0.
var DefaultHeader = Header{Magic: Magic, Version: Version, Size: HeaderBytes}

// EmptyHeader describes the zero-length document: no sections and no root.
var EmptyHeader = Header{Magic: Magic, Version: Version}

// DecodeHeader decodes the header at the start of b without validating it.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderBytes {
		return Header{}, fmt.Errorf("zdoc header: %w", ErrTruncated)
	}
	var h Header
	copy(h.Magic[:], b[HdrMagicOffset:HdrMagicOffset+8])
	// Every field after the magic is a consecutive u32 word.
	buf.Words(b, HdrVersionOffset,
		&h.Version, &h.RootNodeIndex, &h.Size,
		&h.NodesOffset, &h.NodesLen,
		&h.ArgsOffset, &h.ArgsLen,
		&h.StringsOffset, &h.StringsLen,
		&h.BinaryOffset, &h.BinaryLen,
		&h.Reserved1, &h.Reserved2, &h.Reserved3,
	)
	return h, nil
}

// Put encodes h into b[0:HeaderBytes].
func (h Header) Put(b []byte) {
	_ = b[HeaderBytes-1]
	copy(b[HdrMagicOffset:], h.Magic[:])
	PutU32(b, HdrVersionOffset, h.Version)
	PutU32(b, HdrRootIndexOffset, h.RootNodeIndex)
	PutU32(b, HdrSizeOffset, h.Size)
	PutU32(b, HdrNodesOffset, h.NodesOffset)
	PutU32(b, HdrNodesLen, h.NodesLen)
	PutU32(b, HdrArgsOffset, h.ArgsOffset)
	PutU32(b, HdrArgsLen, h.ArgsLen)
	PutU32(b, HdrStringsOffset, h.StringsOffset)
	PutU32(b, HdrStringsLen, h.StringsLen)
	PutU32(b, HdrBinaryOffset, h.BinaryOffset)
	PutU32(b, HdrBinaryLen, h.BinaryLen)
	PutU32(b, HdrReserved1, h.Reserved1)
	PutU32(b, HdrReserved2, h.Reserved2)
	PutU32(b, HdrReserved3, h.Reserved3)
}

// HasMagic reports whether b starts with the document signature.
func HasMagic(b []byte) bool {
	return len(b) >= len(Magic) && bytes.Equal(b[:len(Magic)], Magic[:])
}
