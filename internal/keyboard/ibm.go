package keyboard

import "github.com/chewing/gochewing/internal/zhuyin"

var ibmTable = map[rune]zhuyin.Bopomofo{
	'1': zhuyin.B, '2': zhuyin.P, '3': zhuyin.M, '4': zhuyin.F, '5': zhuyin.D,
	'6': zhuyin.T, '7': zhuyin.N, '8': zhuyin.L, '9': zhuyin.G, '0': zhuyin.K,
	'-': zhuyin.H,
	'q': zhuyin.J, 'w': zhuyin.Q, 'e': zhuyin.X, 'r': zhuyin.ZH, 't': zhuyin.CH,
	'y': zhuyin.SH, 'u': zhuyin.R, 'i': zhuyin.Z, 'o': zhuyin.C, 'p': zhuyin.S,
	'a': zhuyin.I, 's': zhuyin.U, 'd': zhuyin.IU, 'f': zhuyin.A, 'g': zhuyin.O,
	'h': zhuyin.E, 'j': zhuyin.EH, 'k': zhuyin.AI, 'l': zhuyin.EI, ';': zhuyin.AU,
	'z': zhuyin.OU, 'x': zhuyin.AN, 'c': zhuyin.EN, 'v': zhuyin.ANG, 'b': zhuyin.ENG,
	'n': zhuyin.ER, 'm': zhuyin.TONE2, ',': zhuyin.TONE3, '.': zhuyin.TONE4,
	'/': zhuyin.TONE5, ' ': zhuyin.TONE1,
}

// NewIBM returns the IBM layout editor, another common older-IBM-PC
// alternative to Standard.
func NewIBM() SyllableEditor {
	return newTableLayout(ibmTable)
}
