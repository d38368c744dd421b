package dictionary

import (
	"sort"

	"github.com/chewing/gochewing/internal/zhuyin"
)

// stableSortPhrases orders phrases by descending UserFreq then descending
// Freq, preserving relative order among ties.
func stableSortPhrases(phrases []Phrase) {
	sort.SliceStable(phrases, func(i, j int) bool {
		if phrases[i].UserFreq != phrases[j].UserFreq {
			return phrases[i].UserFreq > phrases[j].UserFreq
		}
		return phrases[i].Freq > phrases[j].Freq
	})
}

// syllableKey renders a syllable sequence as a comparable string key, used
// by in-memory maps in the trie builder and the layered dictionary's
// exclusion lookups.
func syllableKey(syllables []zhuyin.Syllable) string {
	b := make([]byte, 0, len(syllables)*2)
	for _, s := range syllables {
		v := s.ToUint16()
		b = append(b, byte(v), byte(v>>8))
	}
	return string(b)
}
