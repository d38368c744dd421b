package dictionary

import "github.com/chewing/gochewing/internal/zhuyin"

// Exclusion is a set of (syllables, phrase text) pairs a user has asked the
// engine to stop suggesting. LayeredDictionary filters system-layer phrases
// against it but never touches the user layer, matching the reference
// behavior of excluding learned noise without erasing deliberate entries.
type Exclusion struct {
	keys map[string]map[string]struct{}
}

// NewExclusion returns an empty exclusion set.
func NewExclusion() *Exclusion {
	return &Exclusion{keys: make(map[string]map[string]struct{})}
}

// Add marks (syllables, text) as excluded.
func (e *Exclusion) Add(syllables []zhuyin.Syllable, text string) {
	k := syllableKey(syllables)
	set, ok := e.keys[k]
	if !ok {
		set = make(map[string]struct{})
		e.keys[k] = set
	}
	set[text] = struct{}{}
}

// Remove un-excludes (syllables, text), if present.
func (e *Exclusion) Remove(syllables []zhuyin.Syllable, text string) {
	if set, ok := e.keys[syllableKey(syllables)]; ok {
		delete(set, text)
	}
}

// Excludes reports whether (syllables, text) has been excluded.
func (e *Exclusion) Excludes(syllables []zhuyin.Syllable, text string) bool {
	set, ok := e.keys[syllableKey(syllables)]
	if !ok {
		return false
	}
	_, excluded := set[text]
	return excluded
}
