package zhuyin

import "strings"

// Bit layout of the packed uint16 encoding: from the most to the least
// significant bit, initial (5 bits), medial (2 bits), rime (4 bits), tone
// (3 bits), and 2 reserved bits pinned to zero.
const (
	toneShift    = 2
	rimeShift    = toneShift + 3
	medialShift  = rimeShift + 4
	initialShift = medialShift + 2

	toneMask    = 0x7
	rimeMask    = 0xF
	medialMask  = 0x3
	initialMask = 0x1F
)

// Syllable is an ordered, optional quadruple (initial, medial, rime, tone).
// The zero Syllable is "empty" and is also the all-zero uint16 encoding.
type Syllable struct {
	initial Bopomofo
	medial  Bopomofo
	rime    Bopomofo
	tone    Bopomofo
}

// Initial, Medial, Rime and Tone return the phoneme of that kind, or 0 if
// unset.
func (s Syllable) Initial() Bopomofo { return s.initial }
func (s Syllable) Medial() Bopomofo  { return s.medial }
func (s Syllable) Rime() Bopomofo    { return s.rime }
func (s Syllable) Tone() Bopomofo    { return s.tone }

func (s Syllable) HasInitial() bool { return s.initial != 0 }
func (s Syllable) HasMedial() bool  { return s.medial != 0 }
func (s Syllable) HasRime() bool    { return s.rime != 0 }
func (s Syllable) HasTone() bool    { return s.tone != 0 }

// IsEmpty reports whether no phoneme at all has been set.
func (s Syllable) IsEmpty() bool {
	return s == Syllable{}
}

// IsComplete reports whether at least one of (initial, medial, rime) is
// set; a lone tone does not make a syllable complete.
func (s Syllable) IsComplete() bool {
	return s.initial != 0 || s.medial != 0 || s.rime != 0
}

// Insert adds b to the syllable, replacing any existing phoneme of the same
// kind.
func (s Syllable) Insert(b Bopomofo) Syllable {
	switch b.Kind() {
	case KindInitial:
		s.initial = b
	case KindMedial:
		s.medial = b
	case KindRime:
		s.rime = b
	case KindTone:
		s.tone = b
	}
	return s
}

// Update is an alias of Insert: replace the phoneme of b's kind.
func (s Syllable) Update(b Bopomofo) Syllable {
	return s.Insert(b)
}

// Remove clears the phoneme of the given kind.
func (s Syllable) Remove(kind BopomofoKind) Syllable {
	switch kind {
	case KindInitial:
		s.initial = 0
	case KindMedial:
		s.medial = 0
	case KindRime:
		s.rime = 0
	case KindTone:
		s.tone = 0
	}
	return s
}

func (s Syllable) RemoveInitial() Syllable { return s.Remove(KindInitial) }
func (s Syllable) RemoveMedial() Syllable  { return s.Remove(KindMedial) }
func (s Syllable) RemoveRime() Syllable    { return s.Remove(KindRime) }
func (s Syllable) RemoveTone() Syllable    { return s.Remove(KindTone) }

// Pop removes the most-recently-added phoneme. Zhuyin syllables are always
// typed in kind order (initial, then medial, then rime, then tone), so the
// most-recently-added phoneme is the last one present in that fixed order;
// Syllable does not need to carry a separate insertion-order stack to
// implement this (see DESIGN.md).
func (s Syllable) Pop() Syllable {
	switch {
	case s.tone != 0:
		return s.RemoveTone()
	case s.rime != 0:
		return s.RemoveRime()
	case s.medial != 0:
		return s.RemoveMedial()
	case s.initial != 0:
		return s.RemoveInitial()
	default:
		return s
	}
}

// Clear resets the syllable to empty.
func (s Syllable) Clear() Syllable {
	return Syllable{}
}

// ToUint16 packs the syllable into its 16-bit on-disk/in-memory encoding.
func (s Syllable) ToUint16() uint16 {
	var v uint16
	if s.initial != 0 {
		v |= uint16(s.initial-B+1) << initialShift
	}
	if s.medial != 0 {
		v |= uint16(s.medial-I+1) << medialShift
	}
	if s.rime != 0 {
		v |= uint16(s.rime-A+1) << rimeShift
	}
	if s.tone != 0 {
		v |= uint16(s.tone-TONE1+1) << toneShift
	}
	return v
}

// FromUint16 decodes a packed syllable encoding. It fails with
// ErrInvalidEncoding if any non-zero sub-field falls outside its kind's
// valid range.
func FromUint16(v uint16) (Syllable, error) {
	var s Syllable

	initialCode := (v >> initialShift) & initialMask
	if initialCode != 0 {
		if initialCode > uint16(S-B+1) {
			return Syllable{}, ErrInvalidEncoding
		}
		s.initial = B + Bopomofo(initialCode-1)
	}

	medialCode := (v >> medialShift) & medialMask
	if medialCode != 0 {
		if medialCode > uint16(IU-I+1) {
			return Syllable{}, ErrInvalidEncoding
		}
		s.medial = I + Bopomofo(medialCode-1)
	}

	rimeCode := (v >> rimeShift) & rimeMask
	if rimeCode != 0 {
		if rimeCode > uint16(ER-A+1) {
			return Syllable{}, ErrInvalidEncoding
		}
		s.rime = A + Bopomofo(rimeCode-1)
	}

	toneCode := (v >> toneShift) & toneMask
	if toneCode != 0 {
		if toneCode > uint16(TONE5-TONE1+1) {
			return Syllable{}, ErrInvalidEncoding
		}
		s.tone = TONE1 + Bopomofo(toneCode-1)
	}

	return s, nil
}

// String renders the syllable as its glyph sequence, in initial-medial-
// rime-tone order.
func (s Syllable) String() string {
	var b strings.Builder
	for _, p := range []Bopomofo{s.initial, s.medial, s.rime, s.tone} {
		if p != 0 {
			b.WriteString(p.Glyph())
		}
	}
	return b.String()
}

// Parse decodes a canonical glyph string (as produced by String) back into
// a Syllable. Unknown glyphs fail with ErrInvalidGlyph; glyphs of a kind
// already present fail with ErrDuplicateKind.
func Parse(s string) (Syllable, error) {
	var syl Syllable
	for _, r := range s {
		b, err := ParseBopomofoGlyph(r)
		if err != nil {
			return Syllable{}, err
		}
		if hasKind(syl, b.Kind()) {
			return Syllable{}, ErrDuplicateKind
		}
		syl = syl.Insert(b)
	}
	return syl, nil
}

func hasKind(s Syllable, k BopomofoKind) bool {
	switch k {
	case KindInitial:
		return s.initial != 0
	case KindMedial:
		return s.medial != 0
	case KindRime:
		return s.rime != 0
	case KindTone:
		return s.tone != 0
	default:
		return false
	}
}

// SyllableBuilder accumulates phonemes with duplicate-kind validation.
type SyllableBuilder struct {
	syl Syllable
	err error
}

// NewSyllableBuilder returns an empty builder.
func NewSyllableBuilder() *SyllableBuilder {
	return &SyllableBuilder{}
}

// Insert adds b to the builder. It records ErrDuplicateKind (surfaced by
// Build) if a phoneme of the same kind was already inserted.
func (b *SyllableBuilder) Insert(p Bopomofo) *SyllableBuilder {
	if b.err != nil {
		return b
	}
	if hasKind(b.syl, p.Kind()) {
		b.err = ErrDuplicateKind
		return b
	}
	b.syl = b.syl.Insert(p)
	return b
}

// Build returns the accumulated Syllable, or the first error recorded by
// Insert.
func (b *SyllableBuilder) Build() (Syllable, error) {
	if b.err != nil {
		return Syllable{}, b.err
	}
	return b.syl, nil
}
