package zhuyin

import "testing"

func TestSyllableRoundTripUint16(t *testing.T) {
	tests := []struct {
		name string
		syl  Syllable
	}{
		{"empty", Syllable{}},
		{"initial only", Syllable{}.Insert(ZH)},
		{"full", Syllable{}.Insert(ZH).Insert(U).Insert(ANG).Insert(TONE4)},
		{"medial and tone only", Syllable{}.Insert(I).Insert(TONE2)},
		{"rime only", Syllable{}.Insert(A)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.syl.ToUint16()
			got, err := FromUint16(v)
			if err != nil {
				t.Fatalf("FromUint16(%#04x) error: %v", v, err)
			}
			if got != tt.syl {
				t.Errorf("round trip = %+v, want %+v", got, tt.syl)
			}
		})
	}
}

func TestSyllableRoundTripString(t *testing.T) {
	syl := Syllable{}.Insert(ZH).Insert(U).Insert(ANG).Insert(TONE4)
	s := syl.String()
	got, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	if got != syl {
		t.Errorf("Parse(String()) = %+v, want %+v", got, syl)
	}
}

func TestFromUint16InvalidEncoding(t *testing.T) {
	// initialMask allows values up to 0x1F but only 21 initials exist;
	// code 31 (max) is out of range.
	v := uint16(initialMask) << initialShift
	if _, err := FromUint16(v); err == nil {
		t.Fatalf("expected error for out-of-range initial code")
	}
}

func TestParseInvalidGlyph(t *testing.T) {
	if _, err := Parse("x"); err == nil {
		t.Fatalf("expected error parsing non-bopomofo glyph")
	}
}

func TestParseDuplicateKind(t *testing.T) {
	if _, err := Parse("ㄓㄓ"); err == nil {
		t.Fatalf("expected error parsing two initials")
	}
}

func TestZeroEncodingIsEmpty(t *testing.T) {
	if !(Syllable{}).IsEmpty() {
		t.Fatalf("zero Syllable should be empty")
	}
	if (Syllable{}).ToUint16() != 0 {
		t.Fatalf("zero Syllable should encode as 0")
	}
}

func TestIsComplete(t *testing.T) {
	if (Syllable{}.Insert(TONE2)).IsComplete() {
		t.Errorf("tone alone should not be complete")
	}
	if !(Syllable{}.Insert(A)).IsComplete() {
		t.Errorf("a rime alone should be complete")
	}
}

func TestInsertReplacesSameKind(t *testing.T) {
	syl := Syllable{}.Insert(B).Insert(P)
	if syl.Initial() != P {
		t.Errorf("Insert should replace same-kind phoneme, got %v", syl.Initial())
	}
}

func TestPopRemovesInKindOrder(t *testing.T) {
	syl := Syllable{}.Insert(ZH).Insert(U).Insert(ANG).Insert(TONE4)
	syl = syl.Pop()
	if syl.HasTone() {
		t.Fatalf("Pop should remove tone first")
	}
	syl = syl.Pop()
	if syl.HasRime() {
		t.Fatalf("Pop should remove rime next")
	}
	syl = syl.Pop()
	if syl.HasMedial() {
		t.Fatalf("Pop should remove medial next")
	}
	syl = syl.Pop()
	if !syl.IsEmpty() {
		t.Fatalf("Pop should remove initial last, got %+v", syl)
	}
}

func TestSyllableBuilderDuplicateKind(t *testing.T) {
	_, err := NewSyllableBuilder().Insert(ZH).Insert(CH).Build()
	if err != ErrDuplicateKind {
		t.Fatalf("expected ErrDuplicateKind, got %v", err)
	}
}

func TestSyllableBuilderBuild(t *testing.T) {
	syl, err := NewSyllableBuilder().Insert(C).Insert(E).Insert(TONE3).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if syl.Initial() != C || syl.Rime() != E || syl.Tone() != TONE3 {
		t.Errorf("unexpected syllable: %+v", syl)
	}
}

func TestBopomofoKindPanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for invalid Bopomofo value")
		}
	}()
	Bopomofo(0).Kind()
}
