package keyboard

import (
	"sort"
	"strings"

	"github.com/chewing/gochewing/internal/zhuyin"
)

// final is a Bopomofo medial+rime pair a pinyin "final" spelling decodes to.
// Either field may be zero.
type final struct {
	medial zhuyin.Bopomofo
	rime   zhuyin.Bopomofo
}

// pinyinScheme is the spelling table for one member of the pinyin family.
// Unlike the zhuyin-native layouts, pinyin schemes spell a syllable as a
// run of ASCII letters (initial consonant spelling followed by a final
// spelling) rather than one key per phoneme, so PinyinLayout accumulates a
// buffer and re-resolves it on every keystroke.
type pinyinScheme struct {
	initials map[string]zhuyin.Bopomofo
	finals   map[string]final
}

// hanyuInitials covers the 21 Bopomofo initials using Hanyu Pinyin spelling.
// This table, and its THL/MPS2 counterparts below, is a deliberately
// simplified rendering of the full scheme (the upstream pinyin spelling
// tables were not part of the retrieved reference material); it covers the
// common syllable shapes rather than every irregular spelling.
var hanyuInitials = map[string]zhuyin.Bopomofo{
	"b": zhuyin.B, "p": zhuyin.P, "m": zhuyin.M, "f": zhuyin.F,
	"d": zhuyin.D, "t": zhuyin.T, "n": zhuyin.N, "l": zhuyin.L,
	"g": zhuyin.G, "k": zhuyin.K, "h": zhuyin.H,
	"j": zhuyin.J, "q": zhuyin.Q, "x": zhuyin.X,
	"zh": zhuyin.ZH, "ch": zhuyin.CH, "sh": zhuyin.SH, "r": zhuyin.R,
	"z": zhuyin.Z, "c": zhuyin.C, "s": zhuyin.S,
}

var hanyuFinals = map[string]final{
	"a": {0, zhuyin.A}, "o": {0, zhuyin.O}, "e": {0, zhuyin.E},
	"ai": {0, zhuyin.AI}, "ei": {0, zhuyin.EI}, "ao": {0, zhuyin.AU}, "ou": {0, zhuyin.OU},
	"an": {0, zhuyin.AN}, "en": {0, zhuyin.EN}, "ang": {0, zhuyin.ANG}, "eng": {0, zhuyin.ENG},
	"er": {0, zhuyin.ER},
	"i":  {zhuyin.I, 0}, "ia": {zhuyin.I, zhuyin.A}, "ie": {zhuyin.I, zhuyin.EH},
	"iao": {zhuyin.I, zhuyin.AU}, "iu": {zhuyin.I, zhuyin.OU}, "ian": {zhuyin.I, zhuyin.AN},
	"in": {zhuyin.I, zhuyin.EN}, "iang": {zhuyin.I, zhuyin.ANG}, "ing": {zhuyin.I, zhuyin.ENG},
	"iong": {zhuyin.IU, zhuyin.ENG},
	"u":    {zhuyin.U, 0}, "ua": {zhuyin.U, zhuyin.A}, "uo": {zhuyin.U, zhuyin.O},
	"uai": {zhuyin.U, zhuyin.AI}, "ui": {zhuyin.U, zhuyin.EI}, "uan": {zhuyin.U, zhuyin.AN},
	"un": {zhuyin.U, zhuyin.EN}, "uang": {zhuyin.U, zhuyin.ANG}, "ong": {zhuyin.U, zhuyin.ENG},
	"v": {zhuyin.IU, 0}, "ve": {zhuyin.IU, zhuyin.EH}, "van": {zhuyin.IU, zhuyin.AN}, "vn": {zhuyin.IU, zhuyin.EN},
}

var hanyuScheme = pinyinScheme{initials: hanyuInitials, finals: hanyuFinals}

// thlInitials is the Tongyong/THL (Taiwan Huayu Luomazi) spelling table: it
// differs from Hanyu Pinyin mainly in the retroflex and alveolar series.
var thlInitials = map[string]zhuyin.Bopomofo{
	"b": zhuyin.B, "p": zhuyin.P, "m": zhuyin.M, "f": zhuyin.F,
	"d": zhuyin.D, "t": zhuyin.T, "n": zhuyin.N, "l": zhuyin.L,
	"g": zhuyin.G, "k": zhuyin.K, "h": zhuyin.H,
	"j": zhuyin.J, "c": zhuyin.Q, "s": zhuyin.X,
	"jh": zhuyin.ZH, "ch": zhuyin.CH, "sh": zhuyin.SH, "r": zhuyin.R,
	"z": zhuyin.Z, "ts": zhuyin.C, "sy": zhuyin.S,
}

var thlScheme = pinyinScheme{initials: thlInitials, finals: hanyuFinals}

// mps2Initials is the MPS2 (Mandarin Phonetic Symbols II) spelling table.
var mps2Initials = map[string]zhuyin.Bopomofo{
	"b": zhuyin.B, "p": zhuyin.P, "m": zhuyin.M, "f": zhuyin.F,
	"d": zhuyin.D, "t": zhuyin.T, "n": zhuyin.N, "l": zhuyin.L,
	"g": zhuyin.G, "k": zhuyin.K, "h": zhuyin.H,
	"j": zhuyin.J, "c": zhuyin.Q, "s": zhuyin.X,
	"j2": zhuyin.ZH, "ch": zhuyin.CH, "sh": zhuyin.SH, "r": zhuyin.R,
	"tz": zhuyin.Z, "ts": zhuyin.C, "s2": zhuyin.S,
}

var mps2Scheme = pinyinScheme{initials: mps2Initials, finals: hanyuFinals}

// PinyinLayout is the shared state machine for the Hanyu, THL and MPS2
// pinyin-family layouts. Unlike the zhuyin-native table layouts, it
// accumulates a raw key sequence and re-resolves it into a Syllable after
// every keystroke, since a pinyin spelling can be several keys long.
type PinyinLayout struct {
	scheme   pinyinScheme
	keys     []rune
	syllable zhuyin.Syllable
}

func newPinyinLayout(scheme pinyinScheme) *PinyinLayout {
	return &PinyinLayout{scheme: scheme}
}

// NewHanyuPinyin returns a Hanyu Pinyin layout editor.
func NewHanyuPinyin() *PinyinLayout { return newPinyinLayout(hanyuScheme) }

// NewTHLPinyin returns a Tongyong/THL pinyin layout editor.
func NewTHLPinyin() *PinyinLayout { return newPinyinLayout(thlScheme) }

// NewMPS2Pinyin returns an MPS2 pinyin layout editor.
func NewMPS2Pinyin() *PinyinLayout { return newPinyinLayout(mps2Scheme) }

// sortedInitials returns the scheme's initial spellings, longest first, so
// matching prefers "zh" over "z".
func (s pinyinScheme) sortedInitials() []string {
	keys := make([]string, 0, len(s.initials))
	for k := range s.initials {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return keys
}

// resolve decomposes buf into (initial, final, complete). complete is true
// only when the remainder after the initial exactly matches a final
// spelling; otherwise the caller should keep accepting keystrokes as long as
// the remainder could still become one (isExtendable). A remainder of "i"
// after a ZH..S initial (zhi, chi, shi, ri, zi, ci, si) resolves to the
// bare initial with no final.
func (s pinyinScheme) resolve(buf string) (zhuyin.Bopomofo, final, bool) {
	for _, initKey := range s.sortedInitials() {
		if !strings.HasPrefix(buf, initKey) {
			continue
		}
		remainder := buf[len(initKey):]
		if remainder == "" {
			return s.initials[initKey], final{}, false
		}
		if f, ok := s.finals[remainder]; ok {
			if remainder == "i" && s.initials[initKey] >= zhuyin.ZH {
				return s.initials[initKey], final{}, true
			}
			return s.initials[initKey], f, true
		}
	}
	// No initial: the whole buffer must itself be a final (zero-initial
	// syllables). y/w-led spellings such as "yi" or "wu" are not in the
	// finals tables and do not resolve.
	if f, ok := s.finals[buf]; ok {
		return 0, f, true
	}
	return 0, final{}, false
}

func (s pinyinScheme) isExtendable(buf string) bool {
	if _, _, complete := s.resolve(buf); complete {
		return true
	}
	for _, initKey := range s.sortedInitials() {
		if !strings.HasPrefix(buf, initKey) {
			continue
		}
		remainder := buf[len(initKey):]
		if remainder == "" {
			return true
		}
		for fin := range s.finals {
			if strings.HasPrefix(fin, remainder) {
				return true
			}
		}
	}
	for fin := range s.finals {
		if strings.HasPrefix(fin, buf) {
			return true
		}
	}
	return false
}

func (p *PinyinLayout) KeyPress(key rune) KeyBehavior {
	if key >= '1' && key <= '5' || key == ' ' {
		if len(p.keys) == 0 {
			return KeyError
		}
		initial, f, complete := p.scheme.resolve(string(p.keys))
		if !complete {
			return KeyError
		}
		p.syllable = zhuyin.Syllable{}
		if initial != 0 {
			p.syllable = p.syllable.Update(initial)
		}
		if f.medial != 0 {
			p.syllable = p.syllable.Update(f.medial)
		}
		if f.rime != 0 {
			p.syllable = p.syllable.Update(f.rime)
		}
		if key != ' ' && key != '1' {
			p.syllable = p.syllable.Update(zhuyin.TONE1 + zhuyin.Bopomofo(key-'1'))
		}
		p.keys = nil
		return Commit
	}

	if key < 'a' || key > 'z' {
		return KeyError
	}

	tentative := string(p.keys) + string(key)
	if !p.scheme.isExtendable(tentative) {
		return KeyError
	}
	p.keys = append(p.keys, key)

	if initial, f, complete := p.scheme.resolve(tentative); complete || initial != 0 {
		syl := zhuyin.Syllable{}
		if initial != 0 {
			syl = syl.Update(initial)
		}
		if complete {
			if f.medial != 0 {
				syl = syl.Update(f.medial)
			}
			if f.rime != 0 {
				syl = syl.Update(f.rime)
			}
		}
		p.syllable = syl
	}
	return Absorb
}

func (p *PinyinLayout) IsEmpty() bool { return len(p.keys) == 0 && p.syllable.IsEmpty() }

func (p *PinyinLayout) Clear() {
	p.keys = nil
	p.syllable = zhuyin.Syllable{}
}

func (p *PinyinLayout) RemoveLast() {
	if len(p.keys) > 0 {
		p.keys = p.keys[:len(p.keys)-1]
	}
	if len(p.keys) == 0 {
		p.syllable = zhuyin.Syllable{}
		return
	}
	if initial, f, complete := p.scheme.resolve(string(p.keys)); initial != 0 || complete {
		syl := zhuyin.Syllable{}
		if initial != 0 {
			syl = syl.Update(initial)
		}
		if complete {
			if f.medial != 0 {
				syl = syl.Update(f.medial)
			}
			if f.rime != 0 {
				syl = syl.Update(f.rime)
			}
		}
		p.syllable = syl
	}
}

func (p *PinyinLayout) Read() zhuyin.Syllable { return p.syllable }

func (p *PinyinLayout) KeySeq() (string, bool) { return string(p.keys), true }
