package keyboard

import "github.com/chewing/gochewing/internal/zhuyin"

// DaiChien26 is the compact "CP26" layout: 26 keys cover every phoneme by
// overloading most keys with two meanings (first press vs. repeat), plus a
// handful of stateful medial/rime toggles on the U and M keys. Unlike the
// table layouts it needs access to the in-progress syllable to decide which
// meaning applies, so it is its own SyllableEditor rather than a table
// plugged into tableLayout.
type DaiChien26 struct {
	syllable zhuyin.Syllable
}

// NewDaiChien26 returns a new, empty DaiChien26 editor.
func NewDaiChien26() *DaiChien26 {
	return &DaiChien26{}
}

func (d *DaiChien26) isEndKey(key rune) bool {
	switch key {
	case 'e', 'r', 'd', 'y', ' ':
		return !d.syllable.IsEmpty()
	default:
		return false
	}
}

func (d *DaiChien26) hasInitialOrMedial() bool {
	return d.syllable.HasInitial() || d.syllable.HasMedial()
}

// defaultOrAlt returns alt when the existing phoneme of this slot already
// equals def (a second press toggles to the alternate reading of the key),
// and def otherwise (first press, or the slot holds something else).
func defaultOrAlt(existing zhuyin.Bopomofo, def, alt zhuyin.Bopomofo) zhuyin.Bopomofo {
	if existing == 0 {
		return def
	}
	if existing == def {
		return alt
	}
	return def
}

func (d *DaiChien26) KeyPress(key rune) KeyBehavior {
	if d.isEndKey(key) {
		switch key {
		case 'e':
			d.syllable = d.syllable.Update(zhuyin.TONE2)
		case 'r':
			d.syllable = d.syllable.Update(zhuyin.TONE3)
		case 'd':
			d.syllable = d.syllable.Update(zhuyin.TONE4)
		case 'y':
			d.syllable = d.syllable.Update(zhuyin.TONE5)
		default:
			d.syllable = d.syllable.RemoveTone()
		}
		return Commit
	}

	switch key {
	case 'q':
		d.syllable = d.syllable.Update(defaultOrAlt(d.syllable.Initial(), zhuyin.B, zhuyin.P))
	case 'a':
		d.syllable = d.syllable.Update(zhuyin.M)
	case 'z':
		d.syllable = d.syllable.Update(zhuyin.F)
	case 'w':
		d.syllable = d.syllable.Update(defaultOrAlt(d.syllable.Initial(), zhuyin.D, zhuyin.T))
	case 's':
		d.syllable = d.syllable.Update(zhuyin.N)
	case 'x':
		d.syllable = d.syllable.Update(zhuyin.L)
	case 'e':
		d.syllable = d.syllable.Update(zhuyin.G)
	case 'd':
		d.syllable = d.syllable.Update(zhuyin.K)
	case 'c':
		d.syllable = d.syllable.Update(zhuyin.H)
	case 'r':
		d.syllable = d.syllable.Update(zhuyin.J)
	case 'f':
		d.syllable = d.syllable.Update(zhuyin.Q)
	case 'v':
		d.syllable = d.syllable.Update(zhuyin.X)
	case 't':
		d.syllable = d.syllable.Update(defaultOrAlt(d.syllable.Initial(), zhuyin.ZH, zhuyin.CH))
	case 'g':
		d.syllable = d.syllable.Update(zhuyin.SH)
	case 'b':
		if d.hasInitialOrMedial() {
			d.syllable = d.syllable.Update(zhuyin.EH)
		} else {
			d.syllable = d.syllable.Update(zhuyin.R)
		}
	case 'y':
		d.syllable = d.syllable.Update(zhuyin.Z)
	case 'h':
		d.syllable = d.syllable.Update(zhuyin.C)
	case 'n':
		if d.hasInitialOrMedial() {
			d.syllable = d.syllable.Update(zhuyin.ENG)
		} else {
			d.syllable = d.syllable.Update(zhuyin.S)
		}
	case 'u':
		switch {
		case d.syllable.Medial() == zhuyin.I && d.syllable.Rime() == zhuyin.A:
			d.syllable = d.syllable.RemoveMedial().RemoveRime()
			return Absorb
		case d.syllable.Rime() == zhuyin.A:
			d.syllable = d.syllable.Update(zhuyin.I)
			return Absorb
		case d.syllable.Medial() == zhuyin.I:
			d.syllable = d.syllable.RemoveMedial().Update(zhuyin.A)
			return Absorb
		case d.syllable.HasMedial():
			d.syllable = d.syllable.Update(zhuyin.A)
			return Absorb
		default:
			d.syllable = d.syllable.Update(zhuyin.I)
		}
	case 'j':
		d.syllable = d.syllable.Update(zhuyin.U)
	case 'm':
		switch {
		case d.syllable.Medial() == zhuyin.IU && !d.syllable.HasRime():
			d.syllable = d.syllable.RemoveMedial().Update(zhuyin.OU)
			return Absorb
		case d.syllable.Medial() == zhuyin.IU && d.syllable.Rime() != zhuyin.OU:
			d.syllable = d.syllable.RemoveMedial().Update(zhuyin.OU)
			return Absorb
		case !d.syllable.HasMedial() && d.syllable.Rime() == zhuyin.OU:
			d.syllable = d.syllable.Update(zhuyin.IU).RemoveRime()
			return Absorb
		case d.syllable.HasMedial() && d.syllable.Medial() != zhuyin.IU && d.syllable.Rime() == zhuyin.OU:
			d.syllable = d.syllable.Update(zhuyin.IU).RemoveRime()
			return Absorb
		case d.syllable.HasMedial():
			d.syllable = d.syllable.Update(zhuyin.OU)
			return Absorb
		default:
			d.syllable = d.syllable.Update(zhuyin.IU)
		}
	case 'i':
		d.syllable = d.syllable.Update(defaultOrAlt(d.syllable.Rime(), zhuyin.O, zhuyin.AI))
	case 'k':
		d.syllable = d.syllable.Update(zhuyin.E)
	case 'o':
		d.syllable = d.syllable.Update(defaultOrAlt(d.syllable.Rime(), zhuyin.EI, zhuyin.AN))
	case 'l':
		d.syllable = d.syllable.Update(defaultOrAlt(d.syllable.Rime(), zhuyin.AU, zhuyin.ANG))
	case 'p':
		d.syllable = d.syllable.Update(defaultOrAlt(d.syllable.Rime(), zhuyin.EN, zhuyin.ER))
	default:
		return KeyError
	}

	return Absorb
}

func (d *DaiChien26) IsEmpty() bool { return d.syllable.IsEmpty() }

func (d *DaiChien26) Clear() { d.syllable = zhuyin.Syllable{} }

func (d *DaiChien26) RemoveLast() { d.syllable = d.syllable.Pop() }

func (d *DaiChien26) Read() zhuyin.Syllable { return d.syllable }

func (d *DaiChien26) KeySeq() (string, bool) { return "", false }
