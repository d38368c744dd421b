// Package composition implements the pre-edit buffer the editor state
// machine builds up while entering a phrase: symbols, manual breaks, and
// manual selections over a cursor-addressed sequence.
package composition

import "github.com/chewing/gochewing/internal/conversion"

// Composition holds the symbol sequence being composed plus whatever
// manual breaks and selections the user has pinned on top of it.
type Composition struct {
	symbols    []conversion.Symbol
	cursor     int
	breaks     map[int]struct{}
	selections []conversion.Selection
}

// New returns an empty composition.
func New() *Composition {
	return &Composition{breaks: make(map[int]struct{})}
}

// Len returns the number of symbols currently composed.
func (c *Composition) Len() int { return len(c.symbols) }

// Cursor returns the current cursor position, always in [0, Len()].
func (c *Composition) Cursor() int { return c.cursor }

// Symbols returns the composed symbol sequence, in order.
func (c *Composition) Symbols() []conversion.Symbol {
	out := make([]conversion.Symbol, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// PushSymbol appends sym at the end and moves the cursor past it.
func (c *Composition) PushSymbol(sym conversion.Symbol) {
	c.symbols = append(c.symbols, sym)
	c.cursor = len(c.symbols)
}

// InsertAt inserts sym before position cursor, shifting later symbols and
// any breaks/selections right, then moves the cursor past the insertion.
func (c *Composition) InsertAt(cursor int, sym conversion.Symbol) {
	cursor = clamp(cursor, 0, len(c.symbols))
	kept := c.selections[:0]
	for _, sel := range c.selections {
		if sel.Begin < cursor && cursor < sel.End {
			continue // inserting inside a selection invalidates it
		}
		kept = append(kept, sel)
	}
	c.selections = kept
	c.symbols = append(c.symbols[:cursor:cursor], append([]conversion.Symbol{sym}, c.symbols[cursor:]...)...)
	c.shiftFrom(cursor, 1)
	c.cursor = cursor + 1
	c.dropInvalid()
}

// DeleteBefore removes the symbol immediately before the cursor, if any.
func (c *Composition) DeleteBefore() {
	if c.cursor == 0 {
		return
	}
	c.removeAt(c.cursor - 1)
	c.cursor--
}

// DeleteAfter removes the symbol immediately after the cursor, if any.
func (c *Composition) DeleteAfter() {
	if c.cursor >= len(c.symbols) {
		return
	}
	c.removeAt(c.cursor)
}

func (c *Composition) removeAt(pos int) {
	c.ClearSelectionOverlapping(pos)
	c.symbols = append(c.symbols[:pos], c.symbols[pos+1:]...)
	c.shiftFrom(pos+1, -1)
	c.dropInvalid()
}

// shiftFrom adjusts every break/selection boundary at or after pos by
// delta, used to keep them aligned across an insertion or deletion.
func (c *Composition) shiftFrom(pos, delta int) {
	shifted := make(map[int]struct{}, len(c.breaks))
	for b := range c.breaks {
		if b >= pos {
			b += delta
		}
		if b > 0 {
			shifted[b] = struct{}{}
		}
	}
	c.breaks = shifted

	for i := range c.selections {
		if c.selections[i].Begin >= pos {
			c.selections[i].Begin += delta
		}
		if c.selections[i].End >= pos {
			c.selections[i].End += delta
		}
	}
}

// MoveCursor sets the cursor to pos, clamped to [0, Len()].
func (c *Composition) MoveCursor(pos int) {
	c.cursor = clamp(pos, 0, len(c.symbols))
}

// SetBreak marks a manual break at pos (must be in (0, Len())).
func (c *Composition) SetBreak(pos int) {
	if pos <= 0 || pos >= len(c.symbols) {
		return
	}
	c.breaks[pos] = struct{}{}
}

// ClearBreak removes a manual break at pos, if any.
func (c *Composition) ClearBreak(pos int) {
	delete(c.breaks, pos)
}

// Breaks returns the set of manual break positions.
func (c *Composition) Breaks() map[int]struct{} {
	out := make(map[int]struct{}, len(c.breaks))
	for b := range c.breaks {
		out[b] = struct{}{}
	}
	return out
}

// SetSelection pins phrase text for [interval.Begin, interval.End). Any
// existing selection that overlaps the new range anywhere — not only at
// its boundary positions — is dropped first, so selections never end up
// partially overlapping.
func (c *Composition) SetSelection(interval conversion.Selection) {
	if interval.Begin < 0 || interval.End > len(c.symbols) || interval.Begin >= interval.End {
		return
	}
	out := c.selections[:0]
	for _, sel := range c.selections {
		if sel.Begin < interval.End && interval.Begin < sel.End {
			continue
		}
		out = append(out, sel)
	}
	c.selections = out
	c.selections = append(c.selections, interval)
}

// ClearSelectionOverlapping drops any selection whose interval covers pos.
func (c *Composition) ClearSelectionOverlapping(pos int) {
	out := c.selections[:0]
	for _, sel := range c.selections {
		if pos >= sel.Begin && pos < sel.End {
			continue
		}
		out = append(out, sel)
	}
	c.selections = out
}

// Selections returns the currently pinned manual selections.
func (c *Composition) Selections() []conversion.Selection {
	out := make([]conversion.Selection, len(c.selections))
	copy(out, c.selections)
	return out
}

// dropInvalid removes breaks and selections that a mutation has pushed
// out of range: a mutation that would invalidate a selection or break
// silently drops it instead of rejecting the mutation.
func (c *Composition) dropInvalid() {
	n := len(c.symbols)
	for b := range c.breaks {
		if b <= 0 || b >= n {
			delete(c.breaks, b)
		}
	}
	out := c.selections[:0]
	for _, sel := range c.selections {
		if sel.Begin >= 0 && sel.End <= n && sel.Begin < sel.End {
			out = append(out, sel)
		}
	}
	c.selections = out
	c.cursor = clamp(c.cursor, 0, n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
