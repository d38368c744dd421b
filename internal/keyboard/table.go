package keyboard

import "github.com/chewing/gochewing/internal/zhuyin"

// tableLayout is the shared driver for every keyboard layout whose key
// mapping is a flat rune-to-Bopomofo table: Standard, ET, IBM and GinYieh
// all plug their own table into this one state machine.
type tableLayout struct {
	table    map[rune]zhuyin.Bopomofo
	syllable zhuyin.Syllable
}

func newTableLayout(table map[rune]zhuyin.Bopomofo) *tableLayout {
	return &tableLayout{table: table}
}

// KeyPress implements the shared Standard-family state machine: a tone key
// pressed against a non-empty syllable commits it; any other recognized key
// clears a stale tone and absorbs into the in-progress syllable. A tone key
// on an empty syllable is a KeyError, matching the original engine's rule
// that a tone alone is never a phonetic symbol on its own.
func (t *tableLayout) KeyPress(key rune) KeyBehavior {
	bopomofo, ok := t.table[key]
	if !ok {
		return KeyError
	}

	if bopomofo.Kind() == zhuyin.KindTone {
		if t.syllable.IsEmpty() {
			return KeyError
		}
		if bopomofo != zhuyin.TONE1 {
			t.syllable = t.syllable.Update(bopomofo)
		}
		return Commit
	}

	t.syllable = t.syllable.RemoveTone()
	t.syllable = t.syllable.Update(bopomofo)
	return Absorb
}

func (t *tableLayout) IsEmpty() bool { return t.syllable.IsEmpty() }

func (t *tableLayout) Clear() { t.syllable = zhuyin.Syllable{} }

func (t *tableLayout) RemoveLast() { t.syllable = t.syllable.Pop() }

func (t *tableLayout) Read() zhuyin.Syllable { return t.syllable }

func (t *tableLayout) KeySeq() (string, bool) { return "", false }
