package printer

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/joshuapare/zdoc/pkg/types"
)

type tokenClass int

const (
	tokNull tokenClass = iota
	tokNumber
	tokString
	tokBinary
)

type valueToken struct {
	class tokenClass
	text  string
}

// token renders v. maxBinary < 0 renders binary values as their length only;
// otherwise up to maxBinary bytes are shown as hex.
func token(v types.Value, maxBinary int) valueToken {
	switch v.Kind() {
	case types.KindNull:
		return valueToken{tokNull, "null"}
	case types.KindString:
		s, _ := v.AsString()
		return valueToken{tokString, strconv.Quote(s)}
	case types.KindBinary:
		b, _ := v.AsBinary()
		if maxBinary <= 0 || len(b) == 0 {
			return valueToken{tokBinary, fmt.Sprintf("(%d bytes)", len(b))}
		}
		if len(b) <= maxBinary {
			return valueToken{tokBinary, "0x" + hex.EncodeToString(b)}
		}
		return valueToken{tokBinary, fmt.Sprintf("0x%s... (%d bytes)", hex.EncodeToString(b[:maxBinary]), len(b))}
	default:
		return valueToken{tokNumber, v.String()}
	}
}
