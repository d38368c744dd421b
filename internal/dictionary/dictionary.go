// Package dictionary implements the phrase dictionary abstraction: the
// read-only binary trie format, the mutable embedded-SQL user store, and
// the layered stack that merges system layers, a user layer, and an
// exclusion layer into one lookup surface.
package dictionary

import "github.com/chewing/gochewing/internal/zhuyin"

// Phrase is one dictionary entry's payload: text plus the statistics used
// to order and age candidates.
type Phrase struct {
	Text     string
	Freq     uint32
	UserFreq uint32
	LastUsed int64 // unix seconds; zero if never used
}

// DictionaryInfo is the metadata record every dictionary backend exposes.
type DictionaryInfo struct {
	Name      string
	Copyright string
	License   string
	Version   string
	Software  string
}

// Entry pairs a syllable sequence with one of its phrases, as yielded by
// Entries.
type Entry struct {
	Syllables []zhuyin.Syllable
	Phrase    Phrase
}

// EntryIterator yields dictionary entries one at a time. Its lifetime is
// tied to the Dictionary that produced it.
type EntryIterator interface {
	// Next advances to the next entry. It returns false when exhausted.
	Next() (Entry, bool)
}

// Dictionary is the read interface every backend (Trie, SQL, Layered)
// implements.
type Dictionary interface {
	// LookupFirstPhrase returns the highest-ranked phrase for syllables,
	// if any.
	LookupFirstPhrase(syllables []zhuyin.Syllable) (Phrase, bool)
	// LookupAllPhrases returns every phrase for syllables. Trie and
	// SqliteDictionary order them by descending UserFreq, then descending
	// Freq, then insertion order; LayeredDictionary orders them by layer
	// (user layer first, then system layers in stack order), keeping each
	// layer's own order.
	LookupAllPhrases(syllables []zhuyin.Syllable) []Phrase
	// LookupWord is the single-syllable convenience form of
	// LookupAllPhrases.
	LookupWord(s zhuyin.Syllable) []Phrase
	// Entries iterates every (syllables, phrase) pair in the dictionary.
	Entries() EntryIterator
	// About returns the dictionary's metadata record.
	About() DictionaryInfo
	// Path returns the backing file path, if any.
	Path() (string, bool)
}

// MutableDictionary is the optional write surface a user-layer backend
// implements.
type MutableDictionary interface {
	Dictionary
	// Add inserts or merges phrase under syllables.
	Add(syllables []zhuyin.Syllable, phrase Phrase) error
	// UpdateFreq adjusts the UserFreq of an existing phrase and bumps its
	// LastUsed timestamp.
	UpdateFreq(syllables []zhuyin.Syllable, text string, userFreqDelta uint32, lastUsed int64) error
	// Remove deletes one phrase under syllables.
	Remove(syllables []zhuyin.Syllable, text string) error
	// Flush persists any buffered writes to stable storage.
	Flush() error
}

// sliceEntryIterator adapts a pre-materialized []Entry to EntryIterator;
// every backend in this package builds its entries eagerly since the
// source dictionaries here (a handful of megabytes at most) fit in memory,
// matching the "owned iterator" note without needing a generator.
type sliceEntryIterator struct {
	entries []Entry
	pos     int
}

func newSliceEntryIterator(entries []Entry) *sliceEntryIterator {
	return &sliceEntryIterator{entries: entries}
}

func (it *sliceEntryIterator) Next() (Entry, bool) {
	if it.pos >= len(it.entries) {
		return Entry{}, false
	}
	e := it.entries[it.pos]
	it.pos++
	return e, true
}

// orderPhrases sorts phrases per the dictionary's ordering guarantee:
// descending UserFreq, then descending Freq, then stable (insertion
// order) for ties.
func orderPhrases(phrases []Phrase) []Phrase {
	out := make([]Phrase, len(phrases))
	copy(out, phrases)
	stableSortPhrases(out)
	return out
}
