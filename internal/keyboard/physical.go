package keyboard

// Physical key position legends: index 0 is unused, indices 1-48 are the
// standard 48-key alphanumeric matrix in reading order (number row, then
// the three letter rows), each holding the character printed at that
// position on the named physical keyboard. Every zhuyin layout in this
// package (Standard, ET, IBM, GinYieh, DaiChien26) keys its tables on the
// QWERTY legend, i.e. by physical position rather than by printed glyph.
var qwertyLegend = []rune{
	0,
	'1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '-', '=', '\\', '`',
	'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p', '[', ']',
	'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', ';', '\'',
	'z', 'x', 'c', 'v', 'b', 'n', 'm', ',', '.', '/', ' ',
}

var dvorakLegend = []rune{
	0,
	'1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '[', ']', '\\', '`',
	'\'', ',', '.', 'p', 'y', 'f', 'g', 'c', 'r', 'l', '/', '=',
	'a', 'o', 'e', 'u', 'i', 'd', 'h', 't', 'n', 's', '-',
	';', 'q', 'j', 'k', 'x', 'b', 'm', 'w', 'v', 'z', ' ',
}

// PhysicalLayout remaps a character typed on a non-QWERTY physical keyboard
// (Dvorak) back to the QWERTY-position rune the zhuyin layouts expect, so a
// Dvorak typist can use the same layout tables as a QWERTY typist (spec
// 4.B, supplemented feature).
type PhysicalLayout struct {
	toPosition map[rune]int
}

func newPhysicalLayout(legend []rune) *PhysicalLayout {
	m := make(map[rune]int, len(legend))
	for i, r := range legend {
		if i == 0 {
			continue
		}
		m[r] = i
	}
	return &PhysicalLayout{toPosition: m}
}

// NewQwertyPhysicalLayout returns the identity physical layout.
func NewQwertyPhysicalLayout() *PhysicalLayout { return newPhysicalLayout(qwertyLegend) }

// NewDvorakPhysicalLayout returns the Dvorak physical layout.
func NewDvorakPhysicalLayout() *PhysicalLayout { return newPhysicalLayout(dvorakLegend) }

// Remap converts typed, a character as produced by this physical keyboard,
// into the QWERTY-position rune at the same physical key. It reports false
// if typed is not one of the 48 mapped positions.
func (p *PhysicalLayout) Remap(typed rune) (rune, bool) {
	pos, ok := p.toPosition[typed]
	if !ok {
		return 0, false
	}
	return qwertyLegend[pos], true
}
