package builder

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/zdoc/pkg/types"
)

// stringTable accumulates the strings section. Strings no longer than limit
// are deduplicated through interned.
type stringTable struct {
	buf      []byte
	interned map[string]types.StringRange
	limit    int
	policy   UTF8Policy
	max      uint64
}

func (t *stringTable) reset() {
	t.buf = t.buf[:0]
	clear(t.interned)
}

func (t *stringTable) release() {
	t.buf = nil
	t.interned = nil
}

// add stores s, deduplicating it when it is short enough.
func (t *stringTable) add(s string) (types.StringRange, error) {
	if s == "" {
		return types.StringRange{}, nil
	}
	if len(s) <= t.limit {
		return t.intern(s)
	}
	s, err := t.sanitize(s)
	if err != nil {
		return types.StringRange{}, err
	}
	return t.append(s)
}

// intern stores s once regardless of its length.
func (t *stringTable) intern(s string) (types.StringRange, error) {
	if s == "" {
		return types.StringRange{}, nil
	}
	if r, ok := t.interned[s]; ok {
		return r, nil
	}
	clean, err := t.sanitize(s)
	if err != nil {
		return types.StringRange{}, err
	}
	r, err := t.append(clean)
	if err != nil {
		return types.StringRange{}, err
	}
	if t.interned == nil {
		t.interned = make(map[string]types.StringRange)
	}
	// s may alias a mapped document; the key must not.
	t.interned[strings.Clone(s)] = r
	return r, nil
}

func (t *stringTable) append(s string) (types.StringRange, error) {
	start := uint64(len(t.buf))
	if start+uint64(len(s)) > capOr(t.max) {
		return types.StringRange{}, fmt.Errorf("%d + %d bytes: %w", start, len(s), types.ErrStringsTooLarge)
	}
	t.buf = append(t.buf, s...)
	return types.StringRange{Start: uint32(start), Len: uint32(len(s))}, nil
}

func (t *stringTable) sanitize(s string) (string, error) {
	if utf8.ValidString(s) {
		return s, nil
	}
	switch t.policy {
	case UTF8Replace:
		return strings.ToValidUTF8(s, string(utf8.RuneError)), nil
	case UTF8Windows1252:
		out, err := charmap.Windows1252.NewDecoder().String(s)
		if err != nil {
			return "", fmt.Errorf("transcode windows-1252: %w", err)
		}
		return out, nil
	default:
		return "", fmt.Errorf("%q: %w", s, types.ErrInvalidUTF8Input)
	}
}
