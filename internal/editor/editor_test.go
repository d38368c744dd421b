package editor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chewing/gochewing/internal/dictionary"
	"github.com/chewing/gochewing/internal/keyboard"
	"github.com/chewing/gochewing/internal/zhuyin"
)

func syl(t *testing.T, glyphs string) zhuyin.Syllable {
	t.Helper()
	s, err := zhuyin.Parse(glyphs)
	require.NoError(t, err)
	return s
}

// buildDict inserts one phrase per (glyphs, text, _) triple as a
// single-syllable entry with Freq 100 (the third element is not read), and
// returns the resulting read-only trie.
func buildDict(t *testing.T, entries ...[3]string) dictionary.Dictionary {
	t.Helper()
	b := dictionary.NewTrieBuilder()
	for _, e := range entries {
		glyphs, text := e[0], e[1]
		require.NoError(t, b.Insert([]zhuyin.Syllable{syl(t, glyphs)}, dictionary.Phrase{Text: text, Freq: 100}))
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "ed.trie")
	_, err := b.Build(path)
	require.NoError(t, err)
	trie, err := dictionary.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { trie.Close() })
	return trie
}

func newTestEditor(t *testing.T, dict dictionary.Dictionary, userDict dictionary.MutableDictionary) *Editor {
	t.Helper()
	return New(dict, userDict, keyboard.NewStandard(), DefaultOptions())
}

func typeRunes(e *Editor, s string) {
	for _, r := range s {
		e.Process(KeyEvent{Key: KeyDefault, Rune: r})
	}
}

// Standard-layout keys "hk4g4" produce pre-edit "策試"; Enter commits it
// and empties the composition.
func TestEditorS1CommitsTwoSyllablePhrase(t *testing.T) {
	dict := buildDict(t, [3]string{"ㄘㄜˋ", "策", ""}, [3]string{"ㄕˋ", "試", ""})
	e := newTestEditor(t, dict, nil)

	typeRunes(e, "hk4g4")
	require.Equal(t, 2, e.Composition().Len())
	require.Equal(t, "策試", e.PreeditString())

	out := e.Process(KeyEvent{Key: KeyEnter})
	require.True(t, out.Has(Committed))
	require.Equal(t, "策試", e.PopCommit())
	require.Equal(t, 0, e.Composition().Len())
}

func TestEditorBackspaceRemovesSyllableThenSymbol(t *testing.T) {
	dict := buildDict(t, [3]string{"ㄘㄜˋ", "策", ""}, [3]string{"ㄕˋ", "試", ""})
	e := newTestEditor(t, dict, nil)

	typeRunes(e, "hk4g4")
	require.Equal(t, 2, e.Composition().Len())

	out := e.Process(KeyEvent{Key: KeyBackspace})
	require.True(t, out.Has(Absorbed))
	require.Equal(t, 1, e.Composition().Len())

	// Mid-syllable backspace pops a phoneme instead of deleting a symbol.
	e.Process(KeyEvent{Key: KeyDefault, Rune: 'h'})
	e.Process(KeyEvent{Key: KeyDefault, Rune: 'k'})
	require.False(t, e.layout.IsEmpty())
	e.Process(KeyEvent{Key: KeyBackspace})
	require.False(t, e.layout.IsEmpty())
	require.Equal(t, zhuyin.C, e.layout.Read().Initial())
}

func TestEditorLiteralPassThroughForUnmappedKey(t *testing.T) {
	dict := buildDict(t)
	e := newTestEditor(t, dict, nil)

	out := e.Process(KeyEvent{Key: KeyDefault, Rune: '!'})
	require.True(t, out.Has(Absorbed))
	require.Equal(t, 1, e.Composition().Len())
	require.Equal(t, "!", e.PreeditString())
}

// Space with SpaceAsSelection opens the candidate window instead of
// completing a tone-1 syllable; picking a candidate pins a manual
// selection and returns to Entering.
func TestEditorSpaceAsSelectionOpensCandidates(t *testing.T) {
	dict := buildDict(t, [3]string{"ㄘㄜˋ", "策", ""}, [3]string{"ㄘㄜˋ", "測", ""})
	opts := DefaultOptions()
	opts.SpaceAsSelection = true
	e := New(dict, nil, keyboard.NewStandard(), opts)

	e.Process(KeyEvent{Key: KeyDefault, Rune: 'h'})
	e.Process(KeyEvent{Key: KeyDefault, Rune: 'k'})
	e.Process(KeyEvent{Key: KeyDefault, Rune: '4'})
	require.Equal(t, 1, e.Composition().Len())

	e.Process(KeyEvent{Key: KeyHome})
	out := e.Process(KeyEvent{Key: KeySpace})
	require.True(t, out.Has(Absorbed))
	cands := e.Candidates()
	require.NotEmpty(t, cands)

	out = e.Process(KeyEvent{Key: KeyEnter})
	require.True(t, out.Has(Absorbed))
	require.Len(t, e.Composition().Selections(), 1)
}

func TestEditorEscClearsComposition(t *testing.T) {
	dict := buildDict(t, [3]string{"ㄘㄜˋ", "策", ""})
	opts := DefaultOptions()
	opts.EscCleanAllBuf = true
	e := New(dict, nil, keyboard.NewStandard(), opts)

	typeRunes(e, "hk4")
	require.Equal(t, 1, e.Composition().Len())

	out := e.Process(KeyEvent{Key: KeyEsc})
	require.True(t, out.Has(Absorbed))
	require.Equal(t, 0, e.Composition().Len())
}

func TestEditorMaxPreeditLengthForcesCommit(t *testing.T) {
	dict := buildDict(t, [3]string{"ㄘㄜˋ", "策", ""})
	opts := DefaultOptions()
	opts.MaxPreeditLength = 1
	e := New(dict, nil, keyboard.NewStandard(), opts)

	out := e.Process(KeyEvent{Key: KeyDefault, Rune: 'h'})
	require.True(t, out.Has(Absorbed))
	out = e.Process(KeyEvent{Key: KeyDefault, Rune: 'k'})
	require.True(t, out.Has(Absorbed))
	out = e.Process(KeyEvent{Key: KeyDefault, Rune: '4'})
	require.True(t, out.Has(Committed))
	require.Equal(t, "策", e.PopCommit())
	require.Equal(t, 0, e.Composition().Len())
}
