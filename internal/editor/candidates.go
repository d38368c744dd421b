package editor

import (
	"strings"
	"time"

	"github.com/chewing/gochewing/internal/conversion"
	"github.com/chewing/gochewing/internal/dictionary"
	"github.com/chewing/gochewing/internal/zhlog"
	"github.com/chewing/gochewing/internal/zhuyin"
)

// addPhraseBoost is the UserFreq increment a freshly marked phrase starts
// at.
const addPhraseBoost = 1

// SetMode switches between Chinese and Symbol top-level modes. Entering
// ModeChinese resets any open Symbol-mode candidate window.
func (e *Editor) SetMode(m Mode) {
	e.mode = m
	if m == ModeChinese {
		e.state = stateEntering
	}
}

// openSelecting builds the candidate window anchored at pos (or, with
// PhraseChoiceRearward, at the symbol before pos) and enters Selecting if
// any candidates exist.
func (e *Editor) openSelecting(pos int) Outcome {
	anchor := pos
	if e.opts.PhraseChoiceRearward {
		if pos == 0 {
			return Bell
		}
		anchor = pos - 1
	}
	if e.comp.Len() == 0 || anchor >= e.comp.Len() {
		return Bell
	}
	e.buildCandidates(anchor)
	if len(e.candidates) == 0 {
		return Bell
	}
	e.candAnchor = anchor
	e.candIndex = 0
	e.state = stateSelecting
	return Absorbed
}

// buildCandidates enumerates every phrase spanning [pos, pos+length) for
// length from the longest reachable span down to 1, honoring manual
// breaks; within a length, phrases keep the layered dictionary's own
// order — user layer first, then system layers in stack order, each
// layer internally by (UserFreq, Freq, insertion) — so the overall list
// is ordered by decreasing length, then by layer precedence.
func (e *Editor) buildCandidates(pos int) {
	n := e.comp.Len()
	syms := e.comp.Symbols()
	var list []candidateEntry
	for length := n - pos; length >= 1; length-- {
		end := pos + length
		if e.spanCrossesBreak(pos, end) {
			continue
		}
		ivals, ok := conversion.Candidates(e.dict, syms, pos, end)
		if !ok {
			continue
		}
		for _, iv := range ivals {
			list = append(list, candidateEntry{text: iv.Text, length: length, freq: iv.Freq})
		}
	}
	e.candidates = list
}

func (e *Editor) spanCrossesBreak(pos, end int) bool {
	breaks := e.comp.Breaks()
	for p := pos + 1; p < end; p++ {
		if _, ok := breaks[p]; ok {
			return true
		}
	}
	return false
}

// processSelecting implements the Selecting substate contract.
func (e *Editor) processSelecting(ev KeyEvent) Outcome {
	perPage := e.opts.CandidatesPerPage
	if perPage < 1 {
		perPage = 1
	}
	switch ev.Key {
	case KeyDown:
		return e.moveCandidate(1)
	case KeyPageDown:
		return e.moveCandidate(perPage)
	case KeyUp:
		return e.moveCandidate(-1)
	case KeyPageUp:
		return e.moveCandidate(-perPage)
	case KeyEnter:
		return e.pickCandidate(e.candIndex)
	case KeyEsc:
		e.state = stateEntering
		return Absorbed
	case KeyDefault:
		idx := strings.IndexRune(e.opts.SelectionKeys, ev.Rune)
		if idx < 0 {
			return Ignored
		}
		page := e.candIndex / perPage
		pick := page*perPage + idx
		if pick >= len(e.candidates) {
			return Bell
		}
		return e.pickCandidate(pick)
	default:
		return Ignored
	}
}

func (e *Editor) moveCandidate(delta int) Outcome {
	next := e.candIndex + delta
	if next < 0 || next >= len(e.candidates) {
		return Bell
	}
	e.candIndex = next
	return Absorbed
}

// pickCandidate pins candidates[i] as a manual selection over its span,
// moves the cursor past it, recomputes the best conversion, and returns
// to Entering.
func (e *Editor) pickCandidate(i int) Outcome {
	if i < 0 || i >= len(e.candidates) {
		return Ignored
	}
	c := e.candidates[i]
	end := e.candAnchor + c.length
	e.comp.SetSelection(conversion.Selection{Begin: e.candAnchor, End: end, Text: c.text})
	e.comp.MoveCursor(end)
	e.reconvert()
	e.state = stateEntering
	return Absorbed
}

// processSymbol implements ModeSymbol: a trigger key opens the table's
// candidate list for that key (SymbolChoice), a selection-key pick
// commits the chosen string, Esc returns to Chinese mode.
func (e *Editor) processSymbol(ev KeyEvent) Outcome {
	if e.state != stateSymbolChoice {
		switch ev.Key {
		case KeyDefault:
			if e.symTab == nil {
				return Ignored
			}
			cands, ok := e.symTab.Lookup(ev.Rune)
			if !ok || len(cands) == 0 {
				return Bell
			}
			e.symCandidates = cands
			e.symIndex = 0
			e.state = stateSymbolChoice
			return Absorbed
		case KeyEsc:
			e.mode = ModeChinese
			return Absorbed
		default:
			return Ignored
		}
	}

	switch ev.Key {
	case KeyEsc:
		e.state = stateEntering
		e.mode = ModeChinese
		return Absorbed
	case KeyDown:
		return e.moveSymbolCandidate(1)
	case KeyUp:
		return e.moveSymbolCandidate(-1)
	case KeyEnter:
		return e.commitSymbol(e.symIndex)
	case KeyDefault:
		idx := strings.IndexRune(e.opts.SelectionKeys, ev.Rune)
		if idx < 0 || idx >= len(e.symCandidates) {
			return Ignored
		}
		return e.commitSymbol(idx)
	default:
		return Ignored
	}
}

func (e *Editor) moveSymbolCandidate(delta int) Outcome {
	next := e.symIndex + delta
	if next < 0 || next >= len(e.symCandidates) {
		return Bell
	}
	e.symIndex = next
	return Absorbed
}

func (e *Editor) commitSymbol(i int) Outcome {
	e.commitBuf.WriteString(e.symCandidates[i])
	e.state = stateEntering
	e.mode = ModeChinese
	return Committed | Absorbed
}

// beginAddPhrase opens (or extends) the AddPhrase substate's marked
// range over the most recently committed text: n characters from the
// anchor, growing forward or backward per AddPhraseForward.
func (e *Editor) beginAddPhrase(n int) Outcome {
	if len(e.lastBest.text) == 0 {
		return Bell
	}
	if e.state != stateAddPhrase {
		e.state = stateAddPhrase
		e.addAnchor = 0
		if !e.opts.AddPhraseForward {
			e.addAnchor = len(e.lastBest.text)
		}
	}
	total := len(e.lastBest.text)
	if n < 0 {
		n = 0
	}
	if e.opts.AddPhraseForward {
		if e.addAnchor+n > total {
			n = total - e.addAnchor
		}
	} else if n > e.addAnchor {
		n = e.addAnchor
	}
	e.addLen = n
	return Absorbed
}

// processAddPhrase implements the AddPhrase substate: further CtrlNum
// presses resize the marked range, Enter saves it into the user layer,
// Esc cancels back to Entering.
func (e *Editor) processAddPhrase(ev KeyEvent) Outcome {
	switch ev.Key {
	case KeyCtrlNum:
		return e.beginAddPhrase(ev.Num)
	case KeyEnter:
		return e.confirmAddPhrase()
	case KeyEsc:
		e.state = stateEntering
		return Absorbed
	default:
		return Ignored
	}
}

func (e *Editor) confirmAddPhrase() Outcome {
	defer func() { e.state = stateEntering }()

	var begin, end int
	if e.opts.AddPhraseForward {
		begin, end = e.addAnchor, e.addAnchor+e.addLen
	} else {
		begin, end = e.addAnchor-e.addLen, e.addAnchor
	}
	if begin < 0 || end > len(e.lastBest.text) || begin >= end {
		return Bell
	}

	syls := make([]zhuyin.Syllable, 0, end-begin)
	for _, s := range e.lastBest.symbols[begin:end] {
		if s.IsLiteral {
			return Bell
		}
		syls = append(syls, s.Syllable)
	}
	if e.userDict == nil {
		return Bell
	}

	text := string(e.lastBest.text[begin:end])
	phrase := dictionary.Phrase{Text: text, UserFreq: addPhraseBoost, LastUsed: time.Now().Unix()}
	if err := e.userDict.Add(syls, phrase); err != nil {
		zhlog.Logger().Warn().Err(err).Str("phrase", text).Msg("editor: add-phrase failed")
		return Bell
	}
	return Absorbed
}
