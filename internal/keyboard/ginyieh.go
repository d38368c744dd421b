package keyboard

import "github.com/chewing/gochewing/internal/zhuyin"

var ginYiehTable = map[rune]zhuyin.Bopomofo{
	'1': zhuyin.TONE5, '2': zhuyin.B, '3': zhuyin.D, '6': zhuyin.ZH,
	'8': zhuyin.A, '9': zhuyin.AI, '0': zhuyin.AN, '-': zhuyin.I, '=': zhuyin.ER,
	'q': zhuyin.TONE2, 'w': zhuyin.P, 'e': zhuyin.T, 'r': zhuyin.G, 't': zhuyin.J,
	'y': zhuyin.CH, 'u': zhuyin.Z, 'i': zhuyin.O, 'o': zhuyin.EI, 'p': zhuyin.EN,
	'[': zhuyin.U,
	'a': zhuyin.TONE3, 's': zhuyin.M, 'd': zhuyin.N, 'f': zhuyin.K, 'g': zhuyin.Q,
	'h': zhuyin.SH, 'j': zhuyin.C, 'k': zhuyin.E, 'l': zhuyin.AU, ';': zhuyin.ANG,
	'\'': zhuyin.IU,
	'z':  zhuyin.TONE4, 'x': zhuyin.F, 'c': zhuyin.L, 'v': zhuyin.H, 'b': zhuyin.X,
	'n': zhuyin.R, 'm': zhuyin.S, ',': zhuyin.EH, '.': zhuyin.OU, '/': zhuyin.ENG,
	' ': zhuyin.TONE1,
}

// NewGinYieh returns the GinYieh layout editor, another common
// older-IBM-PC alternative to Standard.
func NewGinYieh() SyllableEditor {
	return newTableLayout(ginYiehTable)
}
