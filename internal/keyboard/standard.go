package keyboard

import "github.com/chewing/gochewing/internal/zhuyin"

var standardTable = map[rune]zhuyin.Bopomofo{
	'1': zhuyin.B, '2': zhuyin.D, '3': zhuyin.TONE3, '4': zhuyin.TONE4,
	'5': zhuyin.ZH, '6': zhuyin.TONE2, '7': zhuyin.TONE5, '8': zhuyin.A,
	'9': zhuyin.AI, '0': zhuyin.AN, '-': zhuyin.ER,
	'q': zhuyin.P, 'w': zhuyin.T, 'e': zhuyin.G, 'r': zhuyin.J, 't': zhuyin.CH,
	'y': zhuyin.Z, 'u': zhuyin.I, 'i': zhuyin.O, 'o': zhuyin.EI, 'p': zhuyin.EN,
	'a': zhuyin.M, 's': zhuyin.N, 'd': zhuyin.K, 'f': zhuyin.Q, 'g': zhuyin.SH,
	'h': zhuyin.C, 'j': zhuyin.U, 'k': zhuyin.E, 'l': zhuyin.AU, ';': zhuyin.ANG,
	'z': zhuyin.F, 'x': zhuyin.L, 'c': zhuyin.H, 'v': zhuyin.X, 'b': zhuyin.R,
	'n': zhuyin.S, 'm': zhuyin.IU, ',': zhuyin.EH, '.': zhuyin.OU, '/': zhuyin.ENG,
	' ': zhuyin.TONE1,
}

// NewStandard returns the Standard (aka Dai Chien 大千) layout editor, the
// default on almost every platform.
func NewStandard() SyllableEditor {
	return newTableLayout(standardTable)
}
