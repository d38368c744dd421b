// Package keyboard implements the per-layout keypress-to-syllable state
// machines: Standard, ET, IBM, GinYieh, the stateful DaiChien26 (compact)
// layout, and the Pinyin-family layouts (Hanyu, THL, MPS2).
package keyboard

import "github.com/chewing/gochewing/internal/zhuyin"

// KeyBehavior is the outcome of feeding one key to a SyllableEditor.
type KeyBehavior int

const (
	// Absorb means the key contributed to the in-progress syllable.
	Absorb KeyBehavior = iota
	// Commit means a tone key completed the syllable; the caller should
	// take (Read) and clear it.
	Commit
	// KeyError means the key is not part of this layout.
	KeyError
)

func (k KeyBehavior) String() string {
	switch k {
	case Absorb:
		return "Absorb"
	case Commit:
		return "Commit"
	case KeyError:
		return "KeyError"
	default:
		return "Unknown"
	}
}

// SyllableEditor is the common interface every keyboard layout state
// machine implements.
type SyllableEditor interface {
	// KeyPress feeds one physical key (given as the ASCII/Latin-1 rune
	// printed on a US QWERTY keyboard at that position) to the layout.
	KeyPress(key rune) KeyBehavior
	IsEmpty() bool
	Clear()
	// RemoveLast pops the most recently entered phoneme.
	RemoveLast()
	// Read peeks at the in-progress syllable without clearing it.
	Read() zhuyin.Syllable
	// KeySeq returns the raw keystroke history for layouts (Pinyin
	// family) that echo it in the UI; other layouts return "", false.
	KeySeq() (string, bool)
}
