package keyboard

import (
	"testing"

	"github.com/chewing/gochewing/internal/zhuyin"
)

func TestDaiChien26SpaceOnEmptyIsKeyError(t *testing.T) {
	d := NewDaiChien26()
	if got := d.KeyPress(' '); got != KeyError {
		t.Errorf("space on empty = %v, want KeyError", got)
	}
}

func TestDaiChien26ToggleInitial(t *testing.T) {
	d := NewDaiChien26()
	d.KeyPress('q') // first press: B
	if d.Read().Initial() != zhuyin.B {
		t.Fatalf("first 'q' press should set B")
	}
	d.KeyPress('q') // second press while B already set: toggles to P
	if d.Read().Initial() != zhuyin.P {
		t.Fatalf("second 'q' press should toggle to P")
	}
}

func TestDaiChien26UMedialRimeToggle(t *testing.T) {
	d := NewDaiChien26()
	d.KeyPress('u') // medial I
	d.KeyPress('u') // medial I present: second 'u' swaps it for rime A
	if d.Read().IsEmpty() {
		t.Fatalf("expected non-empty syllable after two 'u' presses")
	}
}

func TestDaiChien26EndKeyCommits(t *testing.T) {
	d := NewDaiChien26()
	d.KeyPress('e') // G
	if got := d.KeyPress('r'); got != Commit {
		t.Fatalf("'r' after a non-empty syllable should commit (tone 3), got %v", got)
	}
}
