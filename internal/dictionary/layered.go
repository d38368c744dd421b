package dictionary

import "github.com/chewing/gochewing/internal/zhuyin"

// LayeredDictionary merges an ordered stack of read-only system
// dictionaries with one mutable user layer and one exclusion layer (spec
// 4.C/4.D). Lookups prefer the user layer, then consult system layers in
// order, skipping any phrase the exclusion layer blocks for that key;
// mutations always target the user layer.
type LayeredDictionary struct {
	system    []Dictionary
	user      MutableDictionary
	exclusion *Exclusion
}

// NewLayeredDictionary builds a layered view over system (checked in the
// given order) and user (the only writable layer). exclusion may be nil,
// meaning nothing is excluded.
func NewLayeredDictionary(system []Dictionary, user MutableDictionary, exclusion *Exclusion) *LayeredDictionary {
	if exclusion == nil {
		exclusion = NewExclusion()
	}
	return &LayeredDictionary{system: system, user: user, exclusion: exclusion}
}

func (l *LayeredDictionary) LookupAllPhrases(syllables []zhuyin.Syllable) []Phrase {
	var out []Phrase
	seen := make(map[string]struct{})

	appendLayer := func(phrases []Phrase, filter bool) {
		for _, p := range phrases {
			if filter && l.exclusion.Excludes(syllables, p.Text) {
				continue
			}
			if _, dup := seen[p.Text]; dup {
				continue
			}
			seen[p.Text] = struct{}{}
			out = append(out, p)
		}
	}

	if l.user != nil {
		appendLayer(l.user.LookupAllPhrases(syllables), false)
	}
	for _, sys := range l.system {
		appendLayer(sys.LookupAllPhrases(syllables), true)
	}
	return out
}

func (l *LayeredDictionary) LookupFirstPhrase(syllables []zhuyin.Syllable) (Phrase, bool) {
	phrases := l.LookupAllPhrases(syllables)
	if len(phrases) == 0 {
		return Phrase{}, false
	}
	return phrases[0], true
}

func (l *LayeredDictionary) LookupWord(s zhuyin.Syllable) []Phrase {
	return l.LookupAllPhrases([]zhuyin.Syllable{s})
}

// About returns the user layer's metadata, since that is the layer a
// caller is most likely to want to identify.
func (l *LayeredDictionary) About() DictionaryInfo {
	if l.user != nil {
		return l.user.About()
	}
	return DictionaryInfo{}
}

func (l *LayeredDictionary) Path() (string, bool) {
	if l.user != nil {
		return l.user.Path()
	}
	return "", false
}

func (l *LayeredDictionary) Entries() EntryIterator {
	var entries []Entry
	if l.user != nil {
		for it := l.user.Entries(); ; {
			e, ok := it.Next()
			if !ok {
				break
			}
			entries = append(entries, e)
		}
	}
	for _, sys := range l.system {
		for it := sys.Entries(); ; {
			e, ok := it.Next()
			if !ok {
				break
			}
			if l.exclusion.Excludes(e.Syllables, e.Phrase.Text) {
				continue
			}
			entries = append(entries, e)
		}
	}
	return newSliceEntryIterator(entries)
}

// Add, UpdateFreq, Remove, and Flush always target the user layer; the
// system layers are read-only.

func (l *LayeredDictionary) Add(syllables []zhuyin.Syllable, phrase Phrase) error {
	return l.user.Add(syllables, phrase)
}

func (l *LayeredDictionary) UpdateFreq(syllables []zhuyin.Syllable, text string, userFreqDelta uint32, lastUsed int64) error {
	return l.user.UpdateFreq(syllables, text, userFreqDelta, lastUsed)
}

func (l *LayeredDictionary) Remove(syllables []zhuyin.Syllable, text string) error {
	return l.user.Remove(syllables, text)
}

func (l *LayeredDictionary) Flush() error {
	return l.user.Flush()
}

// Exclude adds (syllables, text) to the exclusion layer so future lookups
// skip it regardless of which system layer holds it.
func (l *LayeredDictionary) Exclude(syllables []zhuyin.Syllable, text string) {
	l.exclusion.Add(syllables, text)
}

// Unexclude reverses Exclude.
func (l *LayeredDictionary) Unexclude(syllables []zhuyin.Syllable, text string) {
	l.exclusion.Remove(syllables, text)
}
