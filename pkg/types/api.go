package types

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindCorrupt  ErrKind = iota // document failed structural validation
	ErrKindLimit                   // a build exceeded a 32-bit size or count
	ErrKindEncoding                // builder input was not valid UTF-8
	ErrKindIO                      // opening or saving a document failed
	ErrKindState                   // invalid operation for current state (e.g., closed)
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindCorrupt:
		return "corrupt"
	case ErrKindLimit:
		return "limit"
	case ErrKindEncoding:
		return "encoding"
	case ErrKindIO:
		return "io"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinels by kind and message, so a wrapped copy carrying a
// cause still satisfies errors.Is(err, ErrTooManyNodes).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Sentinels commonly returned by implementations.
var (
	// ErrCorrupt wraps a *ValidationError when a document fails to load.
	ErrCorrupt = &Error{Kind: ErrKindCorrupt, Msg: "corrupt document"}
	// ErrTooManyNodes indicates a tree with more than 2^32-1 nodes.
	ErrTooManyNodes = &Error{Kind: ErrKindLimit, Msg: "too many nodes"}
	// ErrTooManyArgs indicates a tree with more than 2^32-1 arguments.
	ErrTooManyArgs = &Error{Kind: ErrKindLimit, Msg: "too many args"}
	// ErrStringsTooLarge indicates the string blob would exceed 4 GiB.
	ErrStringsTooLarge = &Error{Kind: ErrKindLimit, Msg: "too much string data"}
	// ErrBinaryTooLarge indicates the binary blob would exceed 4 GiB.
	ErrBinaryTooLarge = &Error{Kind: ErrKindLimit, Msg: "too much binary data"}
	// ErrDocumentTooLarge indicates the encoded document would exceed 4 GiB.
	ErrDocumentTooLarge = &Error{Kind: ErrKindLimit, Msg: "document would be too large (> 4 GiB)"}
	// ErrInvalidUTF8Input indicates a name, type or string value that is not UTF-8.
	ErrInvalidUTF8Input = &Error{Kind: ErrKindEncoding, Msg: "string is not valid UTF-8"}
	// ErrIO indicates a document could not be read or written.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "document I/O failed"}
	// ErrClosed indicates use of a document after Close.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "document is closed"}
)

// Wrap returns a copy of sentinel with err as its cause.
func Wrap(sentinel *Error, err error) *Error {
	return &Error{Kind: sentinel.Kind, Msg: sentinel.Msg, Err: err}
}
