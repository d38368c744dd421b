package keyboard

import "testing"

func TestHanyuPinyinSimpleSyllable(t *testing.T) {
	p := NewHanyuPinyin()
	for _, k := range "zhong" {
		if got := p.KeyPress(k); got != Absorb {
			t.Fatalf("KeyPress(%q) = %v, want Absorb", k, got)
		}
	}
	if got := p.KeyPress('1'); got != Commit {
		t.Fatalf("KeyPress('1') = %v, want Commit", got)
	}
	if got, want := p.Read().String(), "ㄓㄨㄥ"; got != want {
		t.Errorf("Read() = %q, want %q", got, want)
	}
}

func TestHanyuPinyinTone(t *testing.T) {
	p := NewHanyuPinyin()
	for _, k := range "ni" {
		p.KeyPress(k)
	}
	p.KeyPress('3')
	if p.Read().Tone() == 0 {
		t.Fatalf("expected tone 3 to be set")
	}
}

func TestHanyuPinyinInvalidSpellingIsKeyError(t *testing.T) {
	p := NewHanyuPinyin()
	p.KeyPress('z')
	if got := p.KeyPress('9'); got != KeyError {
		t.Errorf("digit that's not a tone should still be rejected if non-tone digit, got %v", got)
	}
}

func TestHanyuPinyinKeySeq(t *testing.T) {
	p := NewHanyuPinyin()
	p.KeyPress('m')
	p.KeyPress('a')
	seq, ok := p.KeySeq()
	if !ok || seq != "ma" {
		t.Errorf("KeySeq() = %q, %v, want \"ma\", true", seq, ok)
	}
}

func TestHanyuPinyinRemoveLast(t *testing.T) {
	p := NewHanyuPinyin()
	p.KeyPress('m')
	p.KeyPress('a')
	p.RemoveLast()
	seq, _ := p.KeySeq()
	if seq != "m" {
		t.Errorf("KeySeq() after RemoveLast = %q, want \"m\"", seq)
	}
}
