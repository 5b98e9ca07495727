package verify

import (
	"unicode/utf8"

	"github.com/joshuapare/zdoc/internal/buf"
	"github.com/joshuapare/zdoc/internal/format"
)

// Check validates b completely. The zero-length buffer is the valid empty
// document.
func Check(b []byte) error {
	h, err := CheckHeader(b)
	if err != nil {
		return err
	}
	if err := CheckNodes(b, h); err != nil {
		return err
	}
	if err := CheckArgs(b, h); err != nil {
		return err
	}
	return CheckStrings(b, h)
}

// sectionSpec describes one header section for offset/length checks.
type sectionSpec struct {
	offset, length uint32
	elemSize       uint32
	aligned        bool
	offsetField    uint32
	lenField       uint32
	offsetKind     format.ValidationErrorKind
	lenKind        format.ValidationErrorKind
}

func sections(h format.Header) [4]sectionSpec {
	return [4]sectionSpec{
		{h.NodesOffset, h.NodesLen, format.NodeBytes, true, format.HdrNodesOffset, format.HdrNodesLen, format.HeaderNodesOffset, format.HeaderNodesLen},
		{h.ArgsOffset, h.ArgsLen, format.ArgBytes, true, format.HdrArgsOffset, format.HdrArgsLen, format.HeaderArgsOffset, format.HeaderArgsLen},
		{h.StringsOffset, h.StringsLen, 1, false, format.HdrStringsOffset, format.HdrStringsLen, format.HeaderStringsOffset, format.HeaderStringsLen},
		{h.BinaryOffset, h.BinaryLen, 1, false, format.HdrBinaryOffset, format.HdrBinaryLen, format.HeaderBinaryOffset, format.HeaderBinaryLen},
	}
}

func (s sectionSpec) end() uint64 { return buf.SpanEnd(s.offset, s.length, s.elemSize) }

// CheckHeader validates the header and returns it decoded. For the empty
// document it returns format.EmptyHeader.
func CheckHeader(b []byte) (format.Header, error) {
	if len(b) == 0 {
		return format.EmptyHeader, nil
	}
	if len(b) < format.HeaderBytes {
		return format.Header{}, format.HeaderSize.At(0)
	}
	h, err := format.DecodeHeader(b)
	if err != nil {
		return format.Header{}, format.HeaderSize.At(0)
	}

	if h.Magic != format.Magic {
		return h, format.HeaderMagic.At(format.HdrMagicOffset)
	}
	if h.Version != format.Version {
		return h, &format.ValidationError{
			Offset:  format.HdrVersionOffset,
			Kind:    format.HeaderVersion,
			Version: h.Version,
		}
	}
	if uint64(h.Size) != uint64(len(b)) {
		return h, format.HeaderSize.At(format.HdrSizeOffset)
	}

	secs := sections(h)
	for _, s := range secs {
		if s.offset == 0 && s.length == 0 {
			continue
		}
		if s.offset < format.HeaderBytes || s.offset > h.Size || (s.aligned && !format.IsAligned4(s.offset)) {
			return h, s.offsetKind.At(s.offsetField)
		}
		if s.end() > uint64(h.Size) {
			return h, s.lenKind.At(s.lenField)
		}
	}

	for i := range secs {
		if secs[i].length == 0 {
			continue
		}
		for j := i + 1; j < len(secs); j++ {
			if secs[j].length == 0 {
				continue
			}
			if uint64(secs[i].offset) < secs[j].end() && uint64(secs[j].offset) < secs[i].end() {
				return h, format.HeaderSectionsOverlap.At(secs[j].offsetField)
			}
		}
	}

	if h.RootNodeIndex != 0 && h.RootNodeIndex >= h.NodesLen {
		return h, format.HeaderRootNodeOutOfBounds.At(format.HdrRootIndexOffset)
	}

	switch {
	case h.Reserved1 != 0:
		return h, format.HeaderReservedFieldsMustBeZero.At(format.HdrReserved1)
	case h.Reserved2 != 0:
		return h, format.HeaderReservedFieldsMustBeZero.At(format.HdrReserved2)
	case h.Reserved3 != 0:
		return h, format.HeaderReservedFieldsMustBeZero.At(format.HdrReserved3)
	}
	return h, nil
}

// CheckNodes validates every node record. h must have passed CheckHeader.
func CheckNodes(b []byte, h format.Header) error {
	for i := uint32(0); i < h.NodesLen; i++ {
		base := h.NodesOffset + i*format.NodeBytes
		n := format.DecodeNode(b[base : base+format.NodeBytes])

		if err := CheckStringRange(b, h, n.Name, base+format.NodeNameField); err != nil {
			return err
		}
		if err := CheckStringRange(b, h, n.Type, base+format.NodeTypeField); err != nil {
			return err
		}
		if err := checkRange(n.Args.Start, n.Args.Len, h.ArgsLen, base+format.NodeArgsField, format.ArgumentsOutOfBounds); err != nil {
			return err
		}

		childrenField := base + format.NodeChildrenField
		if n.Children.Len != 0 && n.Children.Start <= i {
			return format.ChildrenBeforeParent.At(childrenField)
		}
		if err := checkRange(n.Children.Start, n.Children.Len, h.NodesLen, childrenField, format.ChildrenOutOfBounds); err != nil {
			return err
		}
	}
	return nil
}

// CheckArgs validates every argument record. h must have passed CheckHeader.
func CheckArgs(b []byte, h format.Header) error {
	for i := uint32(0); i < h.ArgsLen; i++ {
		base := h.ArgsOffset + i*format.ArgBytes
		a := format.DecodeArg(b[base : base+format.ArgBytes])

		if err := CheckStringRange(b, h, a.Name, base+format.ArgNameField); err != nil {
			return err
		}
		valueField := base + format.ArgValueField
		payloadField := valueField + format.ValuePayloadField
		switch a.Value.Tag {
		case format.TagNull, format.TagBool, format.TagInt, format.TagUint, format.TagFloat:
		case format.TagString:
			if err := CheckStringRange(b, h, a.Value.StringRange(), payloadField); err != nil {
				return err
			}
		case format.TagBinary:
			if err := CheckBinaryRange(h, a.Value.BinaryRange(), payloadField); err != nil {
				return err
			}
		default:
			return format.InvalidArgumentType.At(valueField + format.ValueTagField)
		}
	}
	return nil
}

// CheckStrings validates the whole string section as UTF-8 in one pass.
func CheckStrings(b []byte, h format.Header) error {
	if h.StringsLen == 0 {
		return nil
	}
	if !utf8.Valid(b[h.StringsOffset : h.StringsOffset+h.StringsLen]) {
		return format.InvalidUTF8.At(h.StringsOffset)
	}
	return nil
}

// CheckStringRange validates r against the string section. field is the
// absolute offset reported on failure. A non-empty range must also begin and
// end on a character boundary, so that any range into a valid UTF-8 section is
// itself valid UTF-8.
func CheckStringRange(b []byte, h format.Header, r format.StringRange, field uint32) error {
	if err := checkRange(r.Start, r.Len, h.StringsLen, field, format.StringOutOfBounds); err != nil {
		return err
	}
	if r.Len == 0 {
		return nil
	}
	strs := b[h.StringsOffset : h.StringsOffset+h.StringsLen]
	end := r.Start + r.Len
	if !utf8.RuneStart(strs[r.Start]) || (end < h.StringsLen && !utf8.RuneStart(strs[end])) {
		return format.InvalidUTF8.At(field)
	}
	return nil
}

// CheckBinaryRange validates r against the binary section.
func CheckBinaryRange(h format.Header, r format.BinaryRange, field uint32) error {
	return checkRange(r.Start, r.Len, h.BinaryLen, field, format.BinaryOutOfBounds)
}

func checkRange(start, n, limit, field uint32, oob format.ValidationErrorKind) error {
	switch buf.CheckRange(start, n, limit) {
	case buf.RangeOverflow:
		return format.LengthOverflow.At(field)
	case buf.RangeOutOfBounds:
		return oob.At(field)
	}
	return nil
}
