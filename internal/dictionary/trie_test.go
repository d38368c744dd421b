package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chewing/gochewing/internal/zhuyin"
)

func mustSyllable(t *testing.T, s string) zhuyin.Syllable {
	t.Helper()
	syl, err := zhuyin.Parse(s)
	require.NoError(t, err)
	return syl
}

func TestTrieBuildAndLookupRoundTrip(t *testing.T) {
	b := NewTrieBuilder()
	b.SetInfo(DictionaryInfo{Name: "test dict", Version: "1.0.0"})

	zhong := mustSyllable(t, "ㄓㄨㄥ")
	wen := mustSyllable(t, "ㄨㄣˊ")

	require.NoError(t, b.Insert([]zhuyin.Syllable{zhong, wen}, Phrase{Text: "中文", Freq: 100}))
	require.NoError(t, b.Insert([]zhuyin.Syllable{zhong}, Phrase{Text: "中", Freq: 500}))
	require.NoError(t, b.Insert([]zhuyin.Syllable{zhong}, Phrase{Text: "鐘", Freq: 50}))

	dir := t.TempDir()
	path := filepath.Join(dir, "test.trie")
	stats, err := b.Build(path)
	require.NoError(t, err)
	require.Equal(t, 3, stats.PhraseCount)
	require.Equal(t, 1, stats.LeafCount)

	trie, err := Open(path)
	require.NoError(t, err)
	defer trie.Close()

	require.Equal(t, "test dict", trie.About().Name)

	phrases := trie.LookupAllPhrases([]zhuyin.Syllable{zhong})
	require.Len(t, phrases, 2)
	require.Equal(t, "中", phrases[0].Text)
	require.Equal(t, "鐘", phrases[1].Text)

	first, ok := trie.LookupFirstPhrase([]zhuyin.Syllable{zhong, wen})
	require.True(t, ok)
	require.Equal(t, "中文", first.Text)

	_, ok = trie.LookupFirstPhrase([]zhuyin.Syllable{wen})
	require.False(t, ok)
}

func TestTrieBuildCoalescesDuplicateInserts(t *testing.T) {
	b := NewTrieBuilder()
	zhong := mustSyllable(t, "ㄓㄨㄥ")
	require.NoError(t, b.Insert([]zhuyin.Syllable{zhong}, Phrase{Text: "中", Freq: 10}))
	require.NoError(t, b.Insert([]zhuyin.Syllable{zhong}, Phrase{Text: "中", Freq: 20}))

	dir := t.TempDir()
	path := filepath.Join(dir, "dup.trie")
	_, err := b.Build(path)
	require.NoError(t, err)

	trie, err := Open(path)
	require.NoError(t, err)
	defer trie.Close()

	phrases := trie.LookupAllPhrases([]zhuyin.Syllable{zhong})
	require.Len(t, phrases, 1)
	require.EqualValues(t, 30, phrases[0].Freq)
}

func TestTrieEntriesIteratesEverything(t *testing.T) {
	b := NewTrieBuilder()
	zhong := mustSyllable(t, "ㄓㄨㄥ")
	wen := mustSyllable(t, "ㄨㄣˊ")
	require.NoError(t, b.Insert([]zhuyin.Syllable{zhong}, Phrase{Text: "中", Freq: 1}))
	require.NoError(t, b.Insert([]zhuyin.Syllable{zhong, wen}, Phrase{Text: "中文", Freq: 1}))

	dir := t.TempDir()
	path := filepath.Join(dir, "entries.trie")
	_, err := b.Build(path)
	require.NoError(t, err)

	trie, err := Open(path)
	require.NoError(t, err)
	defer trie.Close()

	it := trie.Entries()
	count := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	require.Equal(t, 2, count)
}

func TestOpenRejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.trie")
	require.NoError(t, os.WriteFile(path, []byte("not a trie file at all"), 0o644))
	_, err := Open(path)
	require.Error(t, err)
}

func TestOpenMmapMatchesBufferedLookup(t *testing.T) {
	b := NewTrieBuilder()
	zhong := mustSyllable(t, "ㄓㄨㄥ")
	require.NoError(t, b.Insert([]zhuyin.Syllable{zhong}, Phrase{Text: "中", Freq: 7}))

	dir := t.TempDir()
	path := filepath.Join(dir, "mmap.trie")
	_, err := b.Build(path)
	require.NoError(t, err)

	buffered, err := Open(path)
	require.NoError(t, err)
	defer buffered.Close()

	mapped, err := OpenMmap(path)
	require.NoError(t, err)
	defer mapped.Close()

	require.Equal(t, buffered.LookupAllPhrases([]zhuyin.Syllable{zhong}),
		mapped.LookupAllPhrases([]zhuyin.Syllable{zhong}))
}
