// Package capi is a Go-idiomatic mirror of a foreign C ABI surface: an
// opaque context, one Handle* method per key matching a reference
// handle_<KEY> entry point set, string accessors, and Set* option
// setters. It exists so a real cgo export shim or an alternate host
// transport (cmd/chewingd's D-Bus service) can sit on top of the engine
// without reaching into internal/editor directly.
package capi

import (
	"github.com/chewing/gochewing/internal/conversion"
	"github.com/chewing/gochewing/internal/dictionary"
	"github.com/chewing/gochewing/internal/editor"
	"github.com/chewing/gochewing/internal/keyboard"
)

// Outcome mirrors the C ABI's integer bitset return code: Ignore=1,
// Commit=2, Bell=4, Absorb=8.
type Outcome = editor.Outcome

const (
	Ignore = editor.Ignored
	Commit = editor.Committed
	Bell   = editor.Bell
	Absorb = editor.Absorbed
)

// Context is the opaque handle every Handle* call operates on, analogous
// to the reference's `*ctx` returned by `ctx_new`.
type Context struct {
	editor *editor.Editor
}

// NewContext constructs a context over dict (the read layer stack) and
// userDict (the mutable layer learning writes to; nil disables
// learning), using layout for keypress translation.
func NewContext(dict dictionary.Dictionary, userDict dictionary.MutableDictionary, layout keyboard.SyllableEditor, opts editor.Options) *Context {
	return &Context{editor: editor.New(dict, userDict, layout, opts)}
}

// Close releases the context. The engine holds no OS resources of its
// own beyond what the caller's dictionary handles already own, so this
// is a no-op placeholder kept for ABI symmetry with ctx_delete.
func (c *Context) Close() error { return nil }

// --- Handle* : one method per key, matching the reference handle_<KEY> set.

func (c *Context) HandleDefault(r rune) Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyDefault, Rune: r})
}
func (c *Context) HandleBackspace() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyBackspace})
}
func (c *Context) HandleCapsLock() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyCapsLock})
}
func (c *Context) HandleCtrlNum(n int) Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyCtrlNum, Num: n})
}
func (c *Context) HandleDel() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyDelete})
}
func (c *Context) HandleEnter() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyEnter})
}
func (c *Context) HandleEsc() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyEsc})
}
func (c *Context) HandleSpace() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeySpace})
}
func (c *Context) HandleTab() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyTab})
}
func (c *Context) HandleHome() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyHome})
}
func (c *Context) HandleEnd() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyEnd})
}
func (c *Context) HandleLeft() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyLeft})
}
func (c *Context) HandleRight() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyRight})
}
func (c *Context) HandleUp() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyUp})
}
func (c *Context) HandleDown() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyDown})
}
func (c *Context) HandleShiftLeft() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyShiftLeft})
}
func (c *Context) HandleShiftRight() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyShiftRight})
}
func (c *Context) HandleShiftSpace() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyShiftSpace})
}
func (c *Context) HandlePageUp() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyPageUp})
}
func (c *Context) HandlePageDown() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyPageDown})
}
func (c *Context) HandleDblTab() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyDblTab})
}
func (c *Context) HandleNumLock() Outcome {
	return c.editor.Process(editor.KeyEvent{Key: editor.KeyNumLock})
}

// --- Output accessors. Strings are snapshotted at call time; the next
// mutating Handle* call invalidates a previously returned value, matching
// the reference's engine-owned, invalidated-by-the-next-call buffer
// contract.

// BufferString returns the commit buffer's contents and drains it (the
// FIFO semantics of editor.Editor.PopCommit).
func (c *Context) BufferString() string { return c.editor.PopCommit() }

// CandString returns the currently open candidate window, if any.
func (c *Context) CandString() []string { return c.editor.Candidates() }

// BopomofoString returns the in-progress (uncommitted) syllable's glyphs.
func (c *Context) BopomofoString() string { return c.editor.BopomofoString() }

// AuxString returns auxiliary status text a host may show alongside the
// pre-edit (here: the pre-edit string itself, since this module has no
// separate "hint" channel).
func (c *Context) AuxString() string { return c.editor.PreeditString() }

// Interval returns the best conversion's interval list for the current
// composition.
func (c *Context) Interval() []conversion.Interval { return c.editor.PreeditIntervals() }

// --- Option setters.

func (c *Context) SetSpaceAsSelection(v bool) {
	o := c.editor.Options()
	o.SpaceAsSelection = v
	c.editor.SetOptions(o)
}
func (c *Context) SetEscCleanAllBuf(v bool) {
	o := c.editor.Options()
	o.EscCleanAllBuf = v
	c.editor.SetOptions(o)
}
func (c *Context) SetAutoShiftCursor(v bool) {
	o := c.editor.Options()
	o.AutoShiftCursor = v
	c.editor.SetOptions(o)
}
func (c *Context) SetEasySymbolInput(v bool) {
	o := c.editor.Options()
	o.EasySymbolInput = v
	c.editor.SetOptions(o)
}
func (c *Context) SetPhraseChoiceRearward(v bool) {
	o := c.editor.Options()
	o.PhraseChoiceRearward = v
	c.editor.SetOptions(o)
}
func (c *Context) SetAddPhraseForward(v bool) {
	o := c.editor.Options()
	o.AddPhraseForward = v
	c.editor.SetOptions(o)
}
func (c *Context) SetSelectionKeys(keys string) {
	o := c.editor.Options()
	o.SelectionKeys = keys
	c.editor.SetOptions(o)
}
func (c *Context) SetCandidatesPerPage(n int) {
	o := c.editor.Options()
	o.CandidatesPerPage = n
	c.editor.SetOptions(o)
}
func (c *Context) SetMaxPreeditLength(n int) {
	o := c.editor.Options()
	o.MaxPreeditLength = n
	c.editor.SetOptions(o)
}
func (c *Context) SetAutoLearn(v bool) {
	o := c.editor.Options()
	o.AutoLearn = v
	c.editor.SetOptions(o)
}
func (c *Context) SetConversionEngine(e editor.ConversionEngine) {
	o := c.editor.Options()
	o.Engine = e
	c.editor.SetOptions(o)
}
// SetFullShape sets the initial shape a fresh context starts in; at
// runtime the shape is toggled live via KeyDblTab.
func (c *Context) SetFullShape(v bool) {
	o := c.editor.Options()
	o.FullShape = v
	c.editor.SetOptions(o)
}

// Editor exposes the underlying editor for callers (cmd/chewingd) that
// need state beyond this mirror, such as Mode/Shape for UI rendering.
func (c *Context) Editor() *editor.Editor { return c.editor }
