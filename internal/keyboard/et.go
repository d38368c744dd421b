package keyboard

import "github.com/chewing/gochewing/internal/zhuyin"

var etTable = map[rune]zhuyin.Bopomofo{
	'1': zhuyin.TONE5, '2': zhuyin.TONE2, '3': zhuyin.TONE3, '4': zhuyin.TONE4,
	'7': zhuyin.Q, '8': zhuyin.AN, '9': zhuyin.EN, '0': zhuyin.ANG,
	'-': zhuyin.ENG, '=': zhuyin.ER,
	'q': zhuyin.EI, 'w': zhuyin.EH, 'e': zhuyin.I, 'r': zhuyin.E, 't': zhuyin.T,
	'y': zhuyin.OU, 'u': zhuyin.IU, 'i': zhuyin.AI, 'o': zhuyin.O, 'p': zhuyin.P,
	'a': zhuyin.A, 's': zhuyin.S, 'd': zhuyin.D, 'f': zhuyin.F, 'g': zhuyin.J,
	'h': zhuyin.H, 'j': zhuyin.R, 'k': zhuyin.K, 'l': zhuyin.L, ';': zhuyin.Z,
	'\'': zhuyin.C,
	'z':  zhuyin.AU, 'x': zhuyin.U, 'c': zhuyin.X, 'v': zhuyin.G, 'b': zhuyin.B,
	'n': zhuyin.N, 'm': zhuyin.M, ',': zhuyin.ZH, '.': zhuyin.CH, '/': zhuyin.SH,
	' ': zhuyin.TONE1,
}

// NewET returns the ET41 layout editor, a common older-IBM-PC alternative to
// Standard.
func NewET() SyllableEditor {
	return newTableLayout(etTable)
}
