package dictionary

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chewing/gochewing/internal/zhuyin"
)

func buildSystemTrie(t *testing.T, entries map[string][]Phrase) *Trie {
	t.Helper()
	b := NewTrieBuilder()
	for glyphs, phrases := range entries {
		syl := mustSyllable(t, glyphs)
		for _, p := range phrases {
			require.NoError(t, b.Insert([]zhuyin.Syllable{syl}, p))
		}
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "system.trie")
	_, err := b.Build(path)
	require.NoError(t, err)
	trie, err := Open(path)
	require.NoError(t, err)
	return trie
}

func TestLayeredDictionaryPrefersUserLayer(t *testing.T) {
	zhong := mustSyllable(t, "ㄓㄨㄥ")
	system := buildSystemTrie(t, map[string][]Phrase{
		"ㄓㄨㄥ": {{Text: "中", Freq: 100}, {Text: "鐘", Freq: 10}},
	})
	defer system.Close()

	dir := t.TempDir()
	user, err := OpenSqlite(filepath.Join(dir, "user.sqlite3"))
	require.NoError(t, err)
	defer user.Close()
	require.NoError(t, user.Add([]zhuyin.Syllable{zhong}, Phrase{Text: "盅", UserFreq: 5}))

	layered := NewLayeredDictionary([]Dictionary{system}, user, nil)
	phrases := layered.LookupAllPhrases([]zhuyin.Syllable{zhong})
	require.Len(t, phrases, 3)
	require.Equal(t, "盅", phrases[0].Text) // user layer phrases come before system layer phrases
}

func TestLayeredDictionaryRespectsLayerPrecedenceOverFrequency(t *testing.T) {
	zhong := mustSyllable(t, "ㄓㄨㄥ")
	low := buildSystemTrie(t, map[string][]Phrase{"ㄓㄨㄥ": {{Text: "中", Freq: 1}}})
	defer low.Close()
	high := buildSystemTrie(t, map[string][]Phrase{"ㄓㄨㄥ": {{Text: "鐘", Freq: 1000}}})
	defer high.Close()

	layered := NewLayeredDictionary([]Dictionary{low, high}, nil, nil)
	phrases := layered.LookupAllPhrases([]zhuyin.Syllable{zhong})
	require.Len(t, phrases, 2)
	// low is checked first in the layer stack, so its phrase must lead
	// regardless of high's far greater frequency.
	require.Equal(t, "中", phrases[0].Text)
	require.Equal(t, "鐘", phrases[1].Text)
}

func TestLayeredDictionaryExclusionFiltersSystemLayer(t *testing.T) {
	zhong := mustSyllable(t, "ㄓㄨㄥ")
	system := buildSystemTrie(t, map[string][]Phrase{
		"ㄓㄨㄥ": {{Text: "中", Freq: 100}, {Text: "鐘", Freq: 10}},
	})
	defer system.Close()

	dir := t.TempDir()
	user, err := OpenSqlite(filepath.Join(dir, "user.sqlite3"))
	require.NoError(t, err)
	defer user.Close()

	layered := NewLayeredDictionary([]Dictionary{system}, user, nil)
	layered.Exclude([]zhuyin.Syllable{zhong}, "鐘")

	phrases := layered.LookupAllPhrases([]zhuyin.Syllable{zhong})
	require.Len(t, phrases, 1)
	require.Equal(t, "中", phrases[0].Text)

	layered.Unexclude([]zhuyin.Syllable{zhong}, "鐘")
	require.Len(t, layered.LookupAllPhrases([]zhuyin.Syllable{zhong}), 2)
}

func TestLayeredDictionaryMutationsTargetUserLayer(t *testing.T) {
	zhong := mustSyllable(t, "ㄓㄨㄥ")
	system := buildSystemTrie(t, map[string][]Phrase{"ㄓㄨㄥ": {{Text: "中", Freq: 1}}})
	defer system.Close()

	dir := t.TempDir()
	user, err := OpenSqlite(filepath.Join(dir, "user.sqlite3"))
	require.NoError(t, err)
	defer user.Close()

	layered := NewLayeredDictionary([]Dictionary{system}, user, nil)
	require.NoError(t, layered.Add([]zhuyin.Syllable{zhong}, Phrase{Text: "盅", UserFreq: 1}))

	userPhrases := user.LookupAllPhrases([]zhuyin.Syllable{zhong})
	require.Len(t, userPhrases, 1)
	require.Equal(t, "盅", userPhrases[0].Text)
}
