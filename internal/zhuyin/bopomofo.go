// Package zhuyin implements the Bopomofo phoneme and syllable codec: the
// compact 16-bit encoding shared by every keyboard layout and dictionary
// lookup in the engine.
package zhuyin

import "fmt"

// BopomofoKind classifies a Bopomofo value into one of the four disjoint
// phoneme slots a Syllable can hold.
type BopomofoKind uint8

const (
	KindInitial BopomofoKind = iota
	KindMedial
	KindRime
	KindTone
)

func (k BopomofoKind) String() string {
	switch k {
	case KindInitial:
		return "initial"
	case KindMedial:
		return "medial"
	case KindRime:
		return "rime"
	case KindTone:
		return "tone"
	default:
		return "unknown"
	}
}

// Bopomofo is a single phonetic symbol: one of 21 initials, 3 medials, 13
// rimes, or 5 tones. The zero value is not a valid Bopomofo; use Zero-value
// checks on Syllable fields instead (see Syllable).
type Bopomofo uint8

// Initials: the 21 Bopomofo initial consonants, in canonical order.
const (
	B Bopomofo = iota + 1
	P
	M
	F
	D
	T
	N
	L
	G
	K
	H
	J
	Q
	X
	ZH
	CH
	SH
	R
	Z
	C
	S
)

// Medials, the 3 Bopomofo glides.
const (
	I Bopomofo = iota + 32
	U
	IU
)

// Rimes, the 13 Bopomofo finals.
const (
	A Bopomofo = iota + 48
	O
	E
	EH
	AI
	EI
	AU
	OU
	AN
	EN
	ANG
	ENG
	ER
)

// Tones. TONE1 is the default/unmarked tone and has no glyph. A Syllable
// that holds TONE1 still encodes it as its own tone code, distinct from
// having no tone.
const (
	TONE1 Bopomofo = iota + 72
	TONE2
	TONE3
	TONE4
	TONE5
)

// Kind reports which of the four phoneme slots b belongs in. Kind panics if
// b is not one of the named Bopomofo constants.
func (b Bopomofo) Kind() BopomofoKind {
	switch {
	case b >= B && b <= S:
		return KindInitial
	case b >= I && b <= IU:
		return KindMedial
	case b >= A && b <= ER:
		return KindRime
	case b >= TONE1 && b <= TONE5:
		return KindTone
	default:
		panic(fmt.Sprintf("zhuyin: invalid Bopomofo value %d", uint8(b)))
	}
}

// glyphs maps each Bopomofo to its canonical Unicode rendering. Initials,
// medials and rimes use the Bopomofo block (U+3105-U+3129); tones use the
// spacing modifier letters conventionally used for zhuyin tone marks.
// TONE1 has no glyph of its own, tone 1 being the default/unmarked tone.
var glyphs = map[Bopomofo]string{
	B: "ㄅ", P: "ㄆ", M: "ㄇ", F: "ㄈ", D: "ㄉ", T: "ㄊ", N: "ㄋ", L: "ㄌ",
	G: "ㄍ", K: "ㄎ", H: "ㄏ", J: "ㄐ", Q: "ㄑ", X: "ㄒ",
	ZH: "ㄓ", CH: "ㄔ", SH: "ㄕ", R: "ㄖ", Z: "ㄗ", C: "ㄘ", S: "ㄙ",
	I: "ㄧ", U: "ㄨ", IU: "ㄩ",
	A: "ㄚ", O: "ㄛ", E: "ㄜ", EH: "ㄝ", AI: "ㄞ", EI: "ㄟ", AU: "ㄠ", OU: "ㄡ",
	AN: "ㄢ", EN: "ㄣ", ANG: "ㄤ", ENG: "ㄥ", ER: "ㄦ",
	TONE1: "", TONE2: "ˊ", TONE3: "ˇ", TONE4: "ˋ", TONE5: "˙",
}

var glyphToBopomofo map[rune]Bopomofo

func init() {
	glyphToBopomofo = make(map[rune]Bopomofo, len(glyphs))
	for b, g := range glyphs {
		if g == "" {
			continue
		}
		for _, r := range g {
			glyphToBopomofo[r] = b
		}
	}
}

// Glyph returns the canonical glyph for b, or "" for TONE1.
func (b Bopomofo) Glyph() string {
	return glyphs[b]
}

func (b Bopomofo) String() string {
	if g := glyphs[b]; g != "" {
		return g
	}
	if b == TONE1 {
		return "TONE1"
	}
	return fmt.Sprintf("Bopomofo(%d)", uint8(b))
}

// ParseBopomofoGlyph resolves a single glyph rune to its Bopomofo value.
// Unknown glyphs return ErrInvalidGlyph.
func ParseBopomofoGlyph(r rune) (Bopomofo, error) {
	if b, ok := glyphToBopomofo[r]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("zhuyin: %w: %q", ErrInvalidGlyph, r)
}
