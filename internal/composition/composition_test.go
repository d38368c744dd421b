package composition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chewing/gochewing/internal/conversion"
)

func litSym(r rune) conversion.Symbol {
	return conversion.Symbol{Literal: r, IsLiteral: true}
}

func TestPushSymbolAdvancesCursor(t *testing.T) {
	c := New()
	c.PushSymbol(litSym('a'))
	c.PushSymbol(litSym('b'))
	require.Equal(t, 2, c.Len())
	require.Equal(t, 2, c.Cursor())
}

func TestInsertAtShiftsBreaksAndSelections(t *testing.T) {
	c := New()
	for _, r := range "abc" {
		c.PushSymbol(litSym(r))
	}
	c.SetBreak(1)
	c.SetSelection(conversion.Selection{Begin: 1, End: 3, Text: "bc"})

	c.InsertAt(1, litSym('x'))
	require.Equal(t, 4, c.Len())
	require.Equal(t, 2, c.Cursor())

	breaks := c.Breaks()
	_, hasOld := breaks[1]
	_, hasNew := breaks[2]
	require.False(t, hasOld)
	require.True(t, hasNew)

	sels := c.Selections()
	require.Len(t, sels, 1)
	require.Equal(t, 2, sels[0].Begin)
	require.Equal(t, 4, sels[0].End)
}

func TestDeleteBeforeAndAfter(t *testing.T) {
	c := New()
	for _, r := range "abc" {
		c.PushSymbol(litSym(r))
	}
	c.MoveCursor(1)
	c.DeleteBefore()
	require.Equal(t, 2, c.Len())
	require.Equal(t, 0, c.Cursor())

	c.MoveCursor(1)
	c.DeleteAfter()
	require.Equal(t, 1, c.Len())
}

func TestCursorClampedToRange(t *testing.T) {
	c := New()
	c.PushSymbol(litSym('a'))
	c.MoveCursor(100)
	require.Equal(t, 1, c.Cursor())
	c.MoveCursor(-5)
	require.Equal(t, 0, c.Cursor())
}

func TestSetBreakRejectsBoundaryPositions(t *testing.T) {
	c := New()
	for _, r := range "ab" {
		c.PushSymbol(litSym(r))
	}
	c.SetBreak(0)
	c.SetBreak(2)
	require.Empty(t, c.Breaks())
	c.SetBreak(1)
	require.Len(t, c.Breaks(), 1)
}

func TestMutationDropsInvalidatedSelection(t *testing.T) {
	c := New()
	for _, r := range "abcd" {
		c.PushSymbol(litSym(r))
	}
	c.SetSelection(conversion.Selection{Begin: 1, End: 2, Text: "b"})
	require.Len(t, c.Selections(), 1)

	c.MoveCursor(2)
	c.DeleteBefore() // removes 'b', collapsing the selection's span to empty
	require.Empty(t, c.Selections())
}

func TestClearSelectionOverlapping(t *testing.T) {
	c := New()
	for _, r := range "abcd" {
		c.PushSymbol(litSym(r))
	}
	c.SetSelection(conversion.Selection{Begin: 0, End: 2, Text: "ab"})
	c.ClearSelectionOverlapping(1)
	require.Empty(t, c.Selections())
}

func TestSetSelectionDropsInteriorOverlap(t *testing.T) {
	c := New()
	for _, r := range "abcde" {
		c.PushSymbol(litSym(r))
	}
	c.SetSelection(conversion.Selection{Begin: 2, End: 3, Text: "c"})
	require.Len(t, c.Selections(), 1)

	// A wider selection that fully contains the prior one, without sharing
	// either boundary, must still replace it rather than coexist with it.
	c.SetSelection(conversion.Selection{Begin: 0, End: 5, Text: "abcde"})
	require.Equal(t, []conversion.Selection{{Begin: 0, End: 5, Text: "abcde"}}, c.Selections())
}
