package builder

import (
	"log/slog"

	"github.com/joshuapare/zdoc/internal/format"
)

// UTF8Policy decides what happens to input strings that are not valid UTF-8.
// The strings section must be valid UTF-8, so such input is never written
// verbatim.
type UTF8Policy int

const (
	// UTF8Strict rejects invalid input with types.ErrInvalidUTF8Input.
	UTF8Strict UTF8Policy = iota
	// UTF8Replace replaces each invalid sequence with U+FFFD.
	UTF8Replace
	// UTF8Windows1252 reinterprets the whole string as Windows-1252 and
	// transcodes it to UTF-8.
	UTF8Windows1252
)

func (p UTF8Policy) String() string {
	switch p {
	case UTF8Strict:
		return "strict"
	case UTF8Replace:
		return "replace"
	case UTF8Windows1252:
		return "windows-1252"
	default:
		return "unknown"
	}
}

// Options configures a Builder or RawBuilder.
type Options struct {
	// AutoInternLimit is the longest argument string value, in bytes, that is
	// deduplicated. Names and types are always deduplicated.
	// Default: 128
	AutoInternLimit int

	// InvalidUTF8 selects how non-UTF-8 input strings are handled.
	// Default: UTF8Strict
	InvalidUTF8 UTF8Policy

	// Logger receives one debug record per build. Nil uses the package
	// logger, which discards by default.
	Logger *slog.Logger
}

// DefaultOptions returns the default build options.
func DefaultOptions() Options {
	return Options{
		AutoInternLimit: format.DefaultAutoInternLimit,
		InvalidUTF8:     UTF8Strict,
	}
}
