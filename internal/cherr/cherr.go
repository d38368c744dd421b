// Package cherr defines the shared error taxonomy used across the engine's
// non-leaf packages (dictionary, conversion, editor): a small typed error
// with a wrapped source, classified by Kind and compatible with
// errors.Is/errors.As.
package cherr

import "fmt"

// Kind classifies an Error for callers that want to branch on it with
// errors.Is, without depending on a specific message string.
type Kind int

const (
	KindInvalidGlyph Kind = iota
	KindInvalidEncoding
	KindIoError
	KindFormatError
	KindVersionUnsupported
	KindNotFound
	KindBusy
	KindMigration
)

func (k Kind) String() string {
	switch k {
	case KindInvalidGlyph:
		return "invalid glyph"
	case KindInvalidEncoding:
		return "invalid encoding"
	case KindIoError:
		return "io error"
	case KindFormatError:
		return "format error"
	case KindVersionUnsupported:
		return "unsupported version"
	case KindNotFound:
		return "not found"
	case KindBusy:
		return "busy"
	case KindMigration:
		return "migration error"
	default:
		return "unknown error"
	}
}

// Error is a typed, chainable error: Op names the failing operation (e.g.
// "dictionary.Open"), Kind classifies the failure, and Err is the
// (optional) underlying cause.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so
// errors.Is(err, cherr.Kind(...)) style checks aren't needed: callers do
// errors.Is(err, &cherr.Error{Kind: cherr.KindNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an Error for op/kind wrapping err (which may be nil).
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// NotFound is a convenience sentinel-like value for errors.Is(err,
// cherr.NotFound) checks against the NotFound kind regardless of Op/Err.
var NotFound = &Error{Kind: KindNotFound}
