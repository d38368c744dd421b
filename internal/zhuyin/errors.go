package zhuyin

import "errors"

// ErrInvalidGlyph is returned when parsing a string fails because it
// contains a rune that is not a known Bopomofo glyph.
var ErrInvalidGlyph = errors.New("invalid bopomofo glyph")

// ErrInvalidEncoding is returned by FromUint16 when a sub-field of the
// packed value does not correspond to a known Bopomofo value of the
// expected kind.
var ErrInvalidEncoding = errors.New("invalid syllable encoding")

// ErrDuplicateKind is returned by SyllableBuilder.Insert when a phoneme of
// the same kind has already been inserted.
var ErrDuplicateKind = errors.New("duplicate phoneme kind")
