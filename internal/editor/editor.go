// Package editor implements the hierarchical keystroke state machine spec
// 4.G describes: a single Process(KeyEvent) entry point that drives the
// keyboard layout (internal/keyboard), the pre-edit buffer
// (internal/composition), and the phrase segmenter (internal/conversion)
// over a layered dictionary (internal/dictionary), and that records
// user-phrase learning back into the dictionary's user layer on commit.
package editor

import (
	"strings"
	"time"

	"github.com/chewing/gochewing/internal/composition"
	"github.com/chewing/gochewing/internal/conversion"
	"github.com/chewing/gochewing/internal/dictionary"
	"github.com/chewing/gochewing/internal/keyboard"
	"github.com/chewing/gochewing/internal/symbols"
	"github.com/chewing/gochewing/internal/zhlog"
	"github.com/chewing/gochewing/internal/zhuyin"
)

// subState is the Chinese-mode substate.
type subState int

const (
	stateEntering subState = iota
	stateSelecting
	stateSymbolChoice
	stateAddPhrase
)

// candidateEntry is one row of a built candidate window: the phrase text,
// its frequency (for display/debugging), and the span length it covers.
type candidateEntry struct {
	text   string
	length int
	freq   uint32
}

// lastCommit records the editor's most recent commit so AddPhrase can
// recover which syllables produced which committed characters: the
// interval invariant (end-begin equals the phrase's rune count) makes
// this a straight rune-index-to-symbol-index correspondence.
type lastCommit struct {
	text    []rune
	symbols []conversion.Symbol
}

// Editor is one user context: composition, candidate state, options, and
// a reference to the layered dictionary it reads from and learns into.
type Editor struct {
	dict     dictionary.Dictionary
	userDict dictionary.MutableDictionary // nil disables learning
	layout   keyboard.SyllableEditor
	abbrev   *symbols.AbbrevTable
	symTab   *symbols.SymbolTable

	opts  Options
	mode  Mode
	shape Shape
	// passThrough is the language-buffer pass-through latch toggled by
	// Caps Lock / Shift-Space.
	passThrough bool

	comp     *composition.Composition
	state    subState
	best     []conversion.Interval // cached best conversion of comp
	lastBest lastCommit

	// Selecting substate.
	candAnchor int
	candidates []candidateEntry
	candIndex  int

	// SymbolChoice substate.
	symCandidates []string
	symIndex      int

	// AddPhrase substate.
	addAnchor int
	addLen    int

	commitBuf strings.Builder
}

// New returns an editor over dict (read layer stack) and userDict (the
// mutable layer learning is written to; pass nil to disable learning),
// using layout for keypress-to-syllable translation and opts as the
// initial option snapshot.
func New(dict dictionary.Dictionary, userDict dictionary.MutableDictionary, layout keyboard.SyllableEditor, opts Options) *Editor {
	shape := ShapeHalf
	if opts.FullShape {
		shape = ShapeFull
	}
	return &Editor{
		dict:     dict,
		userDict: userDict,
		layout:   layout,
		opts:     opts,
		shape:    shape,
		comp:     composition.New(),
		state:    stateEntering,
	}
}

// SetAbbrevTable and SetSymbolTable wire the optional abbreviation and
// symbol tables in; both may be left nil.
func (e *Editor) SetAbbrevTable(t *symbols.AbbrevTable) { e.abbrev = t }
func (e *Editor) SetSymbolTable(t *symbols.SymbolTable) { e.symTab = t }

// Options returns the current option snapshot.
func (e *Editor) Options() Options { return e.opts }

// SetOptions replaces the option snapshot wholesale (the capi layer's
// Set* setters mutate a copy and call this).
func (e *Editor) SetOptions(opts Options) { e.opts = opts }

// Mode and Shape report the current top-level state.
func (e *Editor) Mode() Mode   { return e.mode }
func (e *Editor) Shape() Shape { return e.shape }

// PassThrough reports whether the language-buffer latch is engaged.
func (e *Editor) PassThrough() bool { return e.passThrough }

// Composition exposes the underlying buffer for read-only inspection
// (pre-edit rendering, cursor position, etc).
func (e *Editor) Composition() *composition.Composition { return e.comp }

// PreeditIntervals returns the best conversion of the current composition.
func (e *Editor) PreeditIntervals() []conversion.Interval { return e.best }

// PreeditString concatenates the best conversion's interval texts, the
// pre-edit display string a host renders under the cursor.
func (e *Editor) PreeditString() string {
	var b strings.Builder
	for _, iv := range e.best {
		b.WriteString(iv.Text)
	}
	return b.String()
}

// BopomofoString renders the in-progress (uncommitted) syllable, for the
// auxiliary zhuyin display most front-ends show alongside the pre-edit.
func (e *Editor) BopomofoString() string { return e.layout.Read().String() }

// PopCommit drains the commit buffer (FIFO), returning everything
// committed since the last call.
func (e *Editor) PopCommit() string {
	s := e.commitBuf.String()
	e.commitBuf.Reset()
	return s
}

// Candidates exposes the current candidate window (Selecting or
// SymbolChoice substate) as plain strings: the whole list, not split into
// pages of Options.CandidatesPerPage.
func (e *Editor) Candidates() []string {
	switch e.state {
	case stateSelecting:
		out := make([]string, len(e.candidates))
		for i, c := range e.candidates {
			out[i] = c.text
		}
		return out
	case stateSymbolChoice:
		return append([]string(nil), e.symCandidates...)
	default:
		return nil
	}
}

// CandidateIndex returns the currently highlighted candidate's index.
func (e *Editor) CandidateIndex() int {
	switch e.state {
	case stateSelecting:
		return e.candIndex
	case stateSymbolChoice:
		return e.symIndex
	default:
		return 0
	}
}

// Process is the editor's single entry point: it dispatches ev through
// the top-level mode, the language-buffer latch, and the active Chinese
// substate, and returns the resulting Outcome bitset.
func (e *Editor) Process(ev KeyEvent) Outcome {
	switch ev.Key {
	case KeyCapsLock, KeyShiftSpace:
		e.passThrough = !e.passThrough
		return Absorbed
	case KeyDblTab:
		if e.shape == ShapeHalf {
			e.shape = ShapeFull
		} else {
			e.shape = ShapeHalf
		}
		return Absorbed
	}

	if e.passThrough && ev.Key == KeyDefault {
		e.commitBuf.WriteRune(ev.Rune)
		return Committed | Absorbed
	}

	if e.mode == ModeSymbol {
		return e.processSymbol(ev)
	}

	switch e.state {
	case stateSelecting:
		return e.processSelecting(ev)
	case stateAddPhrase:
		return e.processAddPhrase(ev)
	default:
		return e.processEntering(ev)
	}
}

// processEntering implements the Entering substate contract.
func (e *Editor) processEntering(ev KeyEvent) Outcome {
	switch ev.Key {
	case KeyDefault:
		return e.enterRune(ev.Rune)
	case KeySpace:
		if e.opts.SpaceAsSelection && e.layout.IsEmpty() {
			return e.openSelecting(e.comp.Cursor())
		}
		return e.enterRune(' ')
	case KeyBackspace:
		if !e.layout.IsEmpty() {
			e.layout.RemoveLast()
			return Absorbed
		}
		if e.comp.Cursor() == 0 {
			return Ignored
		}
		e.comp.DeleteBefore()
		e.reconvert()
		return Absorbed
	case KeyDelete:
		if e.comp.Cursor() >= e.comp.Len() {
			return Ignored
		}
		e.comp.DeleteAfter()
		e.reconvert()
		return Absorbed
	case KeyLeft:
		if !e.layout.IsEmpty() {
			return Bell
		}
		if e.comp.Cursor() == 0 {
			return Ignored
		}
		e.comp.MoveCursor(e.comp.Cursor() - 1)
		return Absorbed
	case KeyRight:
		if !e.layout.IsEmpty() {
			return Bell
		}
		if e.comp.Cursor() >= e.comp.Len() {
			return Ignored
		}
		e.comp.MoveCursor(e.comp.Cursor() + 1)
		return Absorbed
	case KeyHome:
		e.comp.MoveCursor(0)
		return Absorbed
	case KeyEnd:
		e.comp.MoveCursor(e.comp.Len())
		return Absorbed
	case KeyTab:
		pos := e.comp.Cursor()
		if pos <= 0 || pos >= e.comp.Len() {
			return Ignored
		}
		breaks := e.comp.Breaks()
		if _, ok := breaks[pos]; ok {
			e.comp.ClearBreak(pos)
		} else {
			e.comp.SetBreak(pos)
		}
		e.reconvert()
		return Absorbed
	case KeyCtrlNum:
		return e.beginAddPhrase(ev.Num)
	case KeyEsc:
		return e.handleEsc()
	case KeyEnter:
		if e.comp.Len() == 0 {
			return Ignored
		}
		e.commit()
		return Committed | Absorbed
	default:
		return Ignored
	}
}

// enterRune feeds one printable key to the active layout, translating an
// Absorb/Commit/KeyError result into composition mutation and Outcome.
func (e *Editor) enterRune(r rune) Outcome {
	switch e.layout.KeyPress(r) {
	case keyboard.Absorb:
		return Absorbed
	case keyboard.Commit:
		syl := e.layout.Read()
		e.layout.Clear()
		e.insertSymbol(conversion.Symbol{Syllable: syl})
		if e.comp.Len() >= e.opts.MaxPreeditLength {
			e.commit()
			return Committed | Absorbed
		}
		return Absorbed
	default: // keyboard.KeyError
		if !e.layout.IsEmpty() {
			return Ignored
		}
		if r < 0x20 {
			return Ignored
		}
		e.insertSymbol(conversion.Symbol{Literal: r, IsLiteral: true})
		return Absorbed
	}
}

func (e *Editor) insertSymbol(sym conversion.Symbol) {
	e.comp.InsertAt(e.comp.Cursor(), sym)
	e.reconvert()
}

// reconvert recomputes the best conversion of the current composition,
// honoring any manual breaks/selections pinned on it.
func (e *Editor) reconvert() {
	conv := conversion.NewConvert(e.dict, e.comp.Symbols(), e.comp.Breaks(), e.comp.Selections(), 1)
	e.best = conv.Best()
}

// handleEsc implements Entering's Escape contract: the EscCleanAllBuf
// option decides whether Escape discards the whole composition or just
// the in-progress (uncommitted) syllable.
func (e *Editor) handleEsc() Outcome {
	if e.opts.EscCleanAllBuf {
		if e.layout.IsEmpty() && e.comp.Len() == 0 {
			return Ignored
		}
		e.layout.Clear()
		e.comp = composition.New()
		e.best = nil
		return Absorbed
	}
	if !e.layout.IsEmpty() {
		e.layout.Clear()
		return Absorbed
	}
	return Ignored
}

// commit emits the best conversion to the commit buffer, records
// user-phrase learning for every multi-syllable interval chosen, and
// resets the composition.
func (e *Editor) commit() {
	symbols := e.comp.Symbols()
	text := make([]rune, 0, len(symbols))
	var b strings.Builder
	for _, iv := range e.best {
		b.WriteString(iv.Text)
		text = append(text, []rune(iv.Text)...)

		if e.opts.AutoLearn && e.userDict != nil && iv.End-iv.Begin >= 2 {
			syls := make([]zhuyin.Syllable, 0, iv.End-iv.Begin)
			literal := false
			for _, s := range symbols[iv.Begin:iv.End] {
				if s.IsLiteral {
					literal = true
					break
				}
				syls = append(syls, s.Syllable)
			}
			if !literal {
				e.learn(syls, iv.Text)
			}
		}
	}
	e.commitBuf.WriteString(b.String())
	e.lastBest = lastCommit{text: text, symbols: symbols}
	e.comp = composition.New()
	e.best = nil
	e.layout.Clear()
}

// learn records one chosen phrase back into the user layer: bump its
// UserFreq and LastUsed timestamp, inserting it fresh if this is the
// first time it has been chosen.
func (e *Editor) learn(syls []zhuyin.Syllable, text string) {
	now := time.Now().Unix()
	const learnBoost = 1
	if err := e.userDict.UpdateFreq(syls, text, learnBoost, now); err != nil {
		if err := e.userDict.Add(syls, dictionary.Phrase{Text: text, Freq: 0, UserFreq: learnBoost, LastUsed: now}); err != nil {
			zhlog.Logger().Warn().Err(err).Str("phrase", text).Msg("editor: failed to record learned phrase")
		}
	}
}
