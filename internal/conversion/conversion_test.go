package conversion

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chewing/gochewing/internal/dictionary"
	"github.com/chewing/gochewing/internal/zhuyin"
)

func syl(t *testing.T, glyphs string) zhuyin.Syllable {
	t.Helper()
	s, err := zhuyin.Parse(glyphs)
	require.NoError(t, err)
	return s
}

func symOf(s zhuyin.Syllable) Symbol { return Symbol{Syllable: s} }

func buildDict(t *testing.T, entries map[string][]dictionary.Phrase) dictionary.Dictionary {
	t.Helper()
	b := dictionary.NewTrieBuilder()
	for glyphs, phrases := range entries {
		s := syl(t, glyphs)
		for _, p := range phrases {
			require.NoError(t, b.Insert([]zhuyin.Syllable{s}, p))
		}
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "conv.trie")
	_, err := b.Build(path)
	require.NoError(t, err)
	trie, err := dictionary.Open(path)
	require.NoError(t, err)
	return trie
}

// insertMulti adds a multi-syllable phrase directly via a builder so tests
// can exercise the coverage-by-dictionary criterion.
func insertMulti(t *testing.T, b *dictionary.TrieBuilder, glyphSeqs []string, phrase dictionary.Phrase) {
	t.Helper()
	syls := make([]zhuyin.Syllable, len(glyphSeqs))
	for i, g := range glyphSeqs {
		syls[i] = syl(t, g)
	}
	require.NoError(t, b.Insert(syls, phrase))
}

func TestConvertS3PrefersLongerDictionaryPhrases(t *testing.T) {
	b := dictionary.NewTrieBuilder()
	guo, min, da, hui := "ㄍㄨㄛˊ", "ㄇㄧㄣˊ", "ㄉㄚˋ", "ㄏㄨㄟˋ"
	insertMulti(t, b, []string{guo, min}, dictionary.Phrase{Text: "國民", Freq: 200})
	insertMulti(t, b, []string{da, hui}, dictionary.Phrase{Text: "大會", Freq: 200})
	require.NoError(t, b.Insert([]zhuyin.Syllable{syl(t, guo)}, dictionary.Phrase{Text: "國", Freq: 1}))
	require.NoError(t, b.Insert([]zhuyin.Syllable{syl(t, min)}, dictionary.Phrase{Text: "民", Freq: 1}))
	require.NoError(t, b.Insert([]zhuyin.Syllable{syl(t, da)}, dictionary.Phrase{Text: "大", Freq: 1}))
	require.NoError(t, b.Insert([]zhuyin.Syllable{syl(t, hui)}, dictionary.Phrase{Text: "會", Freq: 1}))

	dir := t.TempDir()
	path := filepath.Join(dir, "s3.trie")
	_, err := b.Build(path)
	require.NoError(t, err)
	trie, err := dictionary.Open(path)
	require.NoError(t, err)
	defer trie.Close()

	symbols := []Symbol{symOf(syl(t, guo)), symOf(syl(t, min)), symOf(syl(t, da)), symOf(syl(t, hui))}
	conv := NewConvert(trie, symbols, nil, nil, 4)
	best := conv.Best()
	require.Len(t, best, 2)
	require.Equal(t, Interval{Begin: 0, End: 2, Text: "國民", Freq: 200}, best[0])
	require.Equal(t, Interval{Begin: 2, End: 4, Text: "大會", Freq: 200}, best[1])
}

func TestConvertS4ManualBreakForcesSingleCharacters(t *testing.T) {
	b := dictionary.NewTrieBuilder()
	guo, min, da, hui := "ㄍㄨㄛˊ", "ㄇㄧㄣˊ", "ㄉㄚˋ", "ㄏㄨㄟˋ"
	insertMulti(t, b, []string{guo, min}, dictionary.Phrase{Text: "國民", Freq: 200})
	insertMulti(t, b, []string{da, hui}, dictionary.Phrase{Text: "大會", Freq: 200})
	for _, g := range []string{guo, min, da, hui} {
		require.NoError(t, b.Insert([]zhuyin.Syllable{syl(t, g)}, dictionary.Phrase{Text: syl(t, g).String(), Freq: 1}))
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "s4.trie")
	_, err := b.Build(path)
	require.NoError(t, err)
	trie, err := dictionary.Open(path)
	require.NoError(t, err)
	defer trie.Close()

	symbols := []Symbol{symOf(syl(t, guo)), symOf(syl(t, min)), symOf(syl(t, da)), symOf(syl(t, hui))}
	conv := NewConvert(trie, symbols, map[int]struct{}{1: {}}, nil, 4)
	best := conv.Best()
	require.Len(t, best, 4)
	for _, iv := range best {
		require.Equal(t, 1, iv.End-iv.Begin)
	}
}

func TestConvertS5ManualSelectionIsRespected(t *testing.T) {
	b := dictionary.NewTrieBuilder()
	guo, min, da, hui := "ㄍㄨㄛˊ", "ㄇㄧㄣˊ", "ㄉㄚˋ", "ㄏㄨㄟˋ"
	insertMulti(t, b, []string{guo, min}, dictionary.Phrase{Text: "國民", Freq: 200})
	insertMulti(t, b, []string{da, hui}, dictionary.Phrase{Text: "大會", Freq: 200})
	for _, g := range []string{guo, min, da, hui} {
		require.NoError(t, b.Insert([]zhuyin.Syllable{syl(t, g)}, dictionary.Phrase{Text: syl(t, g).String(), Freq: 1}))
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "s5.trie")
	_, err := b.Build(path)
	require.NoError(t, err)
	trie, err := dictionary.Open(path)
	require.NoError(t, err)
	defer trie.Close()

	symbols := []Symbol{symOf(syl(t, guo)), symOf(syl(t, min)), symOf(syl(t, da)), symOf(syl(t, hui))}
	selections := []Selection{{Begin: 0, End: 2, Text: "國民"}}
	conv := NewConvert(trie, symbols, nil, selections, 3)
	for k := 0; ; k++ {
		ivals, ok := conv.Nth(k)
		if !ok {
			break
		}
		require.Contains(t, ivals, Interval{Begin: 0, End: 2, Text: "國民"})
	}
}

func TestConvertEmptyInputYieldsEmptySegmentation(t *testing.T) {
	trie := buildDict(t, nil)
	defer trie.(*dictionary.Trie).Close()
	conv := NewConvert(trie, nil, nil, nil, 1)
	best := conv.Best()
	require.Empty(t, best)
}

func TestConvertUnmatchedSyllableFallsBackToOneCharacterInterval(t *testing.T) {
	trie := buildDict(t, nil)
	defer trie.(*dictionary.Trie).Close()
	s := syl(t, "ㄅㄚˇ")
	symbols := []Symbol{symOf(s)}
	conv := NewConvert(trie, symbols, nil, nil, 1)
	best := conv.Best()
	require.Len(t, best, 1)
	require.Equal(t, 0, best[0].Begin)
	require.Equal(t, 1, best[0].End)
	// The placeholder text must stay one rune even though the syllable's
	// own glyph rendering is multiple characters, so End-Begin keeps
	// matching the phrase's rune count.
	require.Len(t, []rune(best[0].Text), 1)
}

func TestConvertLiteralSymbolForcesSingleCharInterval(t *testing.T) {
	trie := buildDict(t, nil)
	defer trie.(*dictionary.Trie).Close()
	symbols := []Symbol{{Literal: '!', IsLiteral: true}}
	conv := NewConvert(trie, symbols, nil, nil, 1)
	best := conv.Best()
	require.Equal(t, []Interval{{Begin: 0, End: 1, Text: "!"}}, best)
}
