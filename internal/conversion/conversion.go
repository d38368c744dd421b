// Package conversion implements phrase segmentation over a syllable
// sequence: a dynamic-programming best-path search with a lexicographic,
// multi-criterion score, and a lazily-extended k-best enumeration.
package conversion

import (
	"sort"

	"github.com/chewing/gochewing/internal/dictionary"
	"github.com/chewing/gochewing/internal/zhuyin"
)

// Symbol is one element of the composition being converted: either a typed
// syllable or a literal (non-syllable) character that forces a
// single-character interval.
type Symbol struct {
	Syllable zhuyin.Syllable
	Literal  rune // valid only when IsLiteral is true
	IsLiteral bool
}

// Selection pins the phrase text for one interval; segmentations that
// conflict with it are excluded.
type Selection struct {
	Begin, End int
	Text       string
}

// Interval is one covering span of a segmentation, paired with the phrase
// text chosen for it.
type Interval struct {
	Begin, End int
	Text       string
	Freq       uint32
}

// score is compared lexicographically, in preference order, after the
// hard constraints (manual selections, dictionary coverage, manual
// breaks) have already excluded a candidate from consideration.
type score struct {
	longestPreference int64 // sum of length^2 over multi-syllable intervals
	freqSum           int64 // total frequency across chosen intervals
	maxLen            int   // length of the longest interval seen so far
	rightmostLongest  int   // End position of the longest interval
}

func (a score) less(b score) bool {
	if a.longestPreference != b.longestPreference {
		return a.longestPreference < b.longestPreference
	}
	if a.freqSum != b.freqSum {
		return a.freqSum < b.freqSum
	}
	return a.rightmostLongest < b.rightmostLongest
}

type candidate struct {
	intervals []Interval
	sc        score
}

// Convert returns the best segmentation of symbols first, then successive
// nth calls return non-worse alternatives in score order; duplicates
// (identical interval lists) are suppressed.
type Convert struct {
	candidates []candidate
	seen       map[string]struct{}
}

// NewConvert runs the DP search and keeps at most k distinct full
// segmentations, best first. Nothing more is computed later: Nth reports
// false for any index at or beyond the number kept.
func NewConvert(dict dictionary.Dictionary, symbols []Symbol, breaks map[int]struct{}, selections []Selection, k int) *Convert {
	c := &Convert{seen: make(map[string]struct{})}
	n := len(symbols)
	if n == 0 {
		c.candidates = []candidate{{intervals: nil, sc: score{}}}
		return c
	}
	if k < 1 {
		k = 1
	}

	// best[i] holds up to k distinct partial segmentations of symbols[0:i],
	// each already validated against hard constraints up to i.
	best := make([][]candidate, n+1)
	best[0] = []candidate{{}}

	for i := 1; i <= n; i++ {
		var frontier []candidate
		for j := 0; j < i; j++ {
			if best[j] == nil {
				continue
			}
			if crossesBreak(breaks, j, i) {
				continue
			}
			if crossesSelectionBoundary(selections, j, i) {
				continue
			}
			ivals, ok := intervalOptions(dict, symbols, selections, j, i)
			if !ok {
				continue
			}
			for _, prefix := range best[j] {
				for _, ival := range ivals {
					intervals := append(append([]Interval{}, prefix.intervals...), ival)
					sc := extendScore(prefix.sc, ival)
					frontier = append(frontier, candidate{intervals: intervals, sc: sc})
				}
			}
		}
		best[i] = topK(frontier, k)
	}

	c.candidates = best[n]
	sort.Slice(c.candidates, func(i, j int) bool {
		return c.candidates[j].sc.less(c.candidates[i].sc)
	})
	return c
}

// Nth returns the k-th best segmentation (0-indexed), or false if fewer
// than k+1 distinct segmentations exist.
func (c *Convert) Nth(k int) ([]Interval, bool) {
	if k < 0 || k >= len(c.candidates) {
		return nil, false
	}
	return c.candidates[k].intervals, true
}

// Best returns the top-scoring segmentation.
func (c *Convert) Best() []Interval {
	ivals, _ := c.Nth(0)
	return ivals
}

// Candidates enumerates the phrase options for the exact span [begin,
// end), in the order dict's LookupWord/LookupAllPhrases returns them. It
// reports ok=false for a multi-syllable span
// with no dictionary match, matching the same coverage rule NewConvert
// applies, and is used by the editor's Selecting substate to build one
// position's candidate window independent of a full DP pass.
func Candidates(dict dictionary.Dictionary, symbols []Symbol, begin, end int) ([]Interval, bool) {
	return intervalOptions(dict, symbols, nil, begin, end)
}

func crossesBreak(breaks map[int]struct{}, j, i int) bool {
	for p := j + 1; p < i; p++ {
		if _, ok := breaks[p]; ok {
			return true
		}
	}
	return false
}

func crossesSelectionBoundary(selections []Selection, j, i int) bool {
	for _, sel := range selections {
		// A candidate interval [j,i) conflicts with sel if it overlaps sel's
		// span without matching it exactly.
		if j < sel.End && sel.Begin < i && (j != sel.Begin || i != sel.End) {
			return true
		}
	}
	return false
}

// intervalOptions enumerates the candidate phrase texts for span [j, i),
// honoring a pinned manual selection exactly covering that span if one
// exists. It reports ok=false if the span has no valid phrase and isn't a
// single symbol.
func intervalOptions(dict dictionary.Dictionary, symbols []Symbol, selections []Selection, j, i int) ([]Interval, bool) {
	for _, sel := range selections {
		if sel.Begin == j && sel.End == i {
			return []Interval{{Begin: j, End: i, Text: sel.Text}}, true
		}
	}

	span := symbols[j:i]
	for _, s := range span {
		if s.IsLiteral && i-j != 1 {
			return nil, false
		}
	}
	if len(span) == 1 {
		if span[0].IsLiteral {
			return []Interval{{Begin: j, End: i, Text: string(span[0].Literal)}}, true
		}
		phrases := dict.LookupWord(span[0].Syllable)
		if len(phrases) == 0 {
			// Single-syllable intervals always match per spec, even with no
			// dictionary phrase; the placeholder must still be exactly one
			// character so End-Begin keeps equaling the phrase's rune count.
			glyph := []rune(span[0].Syllable.String())
			placeholder := string(glyph[0])
			return []Interval{{Begin: j, End: i, Text: placeholder}}, true
		}
		out := make([]Interval, len(phrases))
		for n, p := range phrases {
			out[n] = Interval{Begin: j, End: i, Text: p.Text, Freq: p.Freq}
		}
		return out, true
	}

	syllables := make([]zhuyin.Syllable, len(span))
	for n, s := range span {
		syllables[n] = s.Syllable
	}
	phrases := dict.LookupAllPhrases(syllables)
	if len(phrases) == 0 {
		return nil, false
	}
	out := make([]Interval, len(phrases))
	for n, p := range phrases {
		out[n] = Interval{Begin: j, End: i, Text: p.Text, Freq: p.Freq}
	}
	return out, true
}

func extendScore(prefix score, ival Interval) score {
	length := ival.End - ival.Begin
	sc := prefix
	if length >= 2 {
		sc.longestPreference += int64(length) * int64(length)
	}
	sc.freqSum += int64(ival.Freq)
	if length >= sc.maxLen {
		sc.maxLen = length
		sc.rightmostLongest = ival.End
	}
	return sc
}

// topK keeps the k best-scoring, distinct candidates from frontier.
func topK(frontier []candidate, k int) []candidate {
	if len(frontier) == 0 {
		return nil
	}
	sort.Slice(frontier, func(i, j int) bool {
		return frontier[j].sc.less(frontier[i].sc)
	})
	seen := make(map[string]struct{}, len(frontier))
	out := make([]candidate, 0, k)
	for _, c := range frontier {
		key := intervalsKey(c.intervals)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
		if len(out) >= k {
			break
		}
	}
	return out
}

func intervalsKey(intervals []Interval) string {
	var b []byte
	for _, iv := range intervals {
		b = append(b, byte(iv.Begin), byte(iv.Begin>>8), byte(iv.End), byte(iv.End>>8))
		b = append(b, iv.Text...)
		b = append(b, 0)
	}
	return string(b)
}
