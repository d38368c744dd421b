package dictionary

import (
	"encoding/binary"
	"os"
	"sort"

	"github.com/chewing/gochewing/internal/cherr"
	"github.com/chewing/gochewing/internal/zhuyin"
)

// Statistics summarizes a built trie, matching the fields the reference
// init-database tool reports after a build (node/leaf/phrase counts and
// branching/height measures).
type Statistics struct {
	NodeCount       int
	LeafCount       int
	PhraseCount     int
	MaxHeight       int
	AvgHeight       float64
	RootBranchCount int
	MaxBranchCount  int
	AvgBranchCount  float64
}

type trieNodeBuild struct {
	children map[uint16]*trieNodeBuild
	phrases  []Phrase
}

func newTrieNodeBuild() *trieNodeBuild {
	return &trieNodeBuild{children: make(map[uint16]*trieNodeBuild)}
}

// TrieBuilder accumulates (syllables, phrase) insertions in memory and
// flattens them into the on-disk trie layout on Build. Duplicate inserts
// under the same syllables and phrase text have their frequencies summed
// rather than overwritten or rejected (decision recorded in DESIGN.md).
type TrieBuilder struct {
	root *trieNodeBuild
	info DictionaryInfo
}

// NewTrieBuilder returns an empty builder.
func NewTrieBuilder() *TrieBuilder {
	return &TrieBuilder{root: newTrieNodeBuild()}
}

// SetInfo records the metadata record written into the built file's header.
func (b *TrieBuilder) SetInfo(info DictionaryInfo) {
	b.info = info
}

// Insert adds phrase under syllables, coalescing with any existing entry
// that has the same syllables and phrase text by summing Freq/UserFreq and
// keeping the later LastUsed.
func (b *TrieBuilder) Insert(syllables []zhuyin.Syllable, phrase Phrase) error {
	node := b.root
	for _, s := range syllables {
		code := s.ToUint16()
		child, ok := node.children[code]
		if !ok {
			child = newTrieNodeBuild()
			node.children[code] = child
		}
		node = child
	}
	for i, p := range node.phrases {
		if p.Text == phrase.Text {
			node.phrases[i].Freq += phrase.Freq
			node.phrases[i].UserFreq += phrase.UserFreq
			if phrase.LastUsed > node.phrases[i].LastUsed {
				node.phrases[i].LastUsed = phrase.LastUsed
			}
			return nil
		}
	}
	node.phrases = append(node.phrases, phrase)
	return nil
}

type flatNode struct {
	syllableCode uint16
	childBegin   uint32
	childEnd     uint32
	phraseBegin  uint32
	phraseEnd    uint32
}

// flatten performs a BFS over the build tree so that every node's children
// land in a contiguous, syllable-code-sorted index range (required for
// binary search in the on-disk format), and collects all phrases in the
// same traversal order.
func (b *TrieBuilder) flatten() ([]flatNode, []Phrase, Statistics) {
	var nodes []flatNode
	var phrases []Phrase
	var stats Statistics

	nodes = append(nodes, flatNode{}) // root placeholder at index 0
	heightSum, leafCount := 0, 0

	type item struct {
		build *trieNodeBuild
		index int
		depth int
	}
	items := []item{{b.root, 0, 0}}
	for len(items) > 0 {
		cur := items[0]
		items = items[1:]

		codes := make([]uint16, 0, len(cur.build.children))
		for code := range cur.build.children {
			codes = append(codes, code)
		}
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

		childBegin := uint32(len(nodes))
		for _, code := range codes {
			nodes = append(nodes, flatNode{syllableCode: code})
		}
		childEnd := uint32(len(nodes))

		ordered := orderPhrases(cur.build.phrases)
		phraseBegin := uint32(len(phrases))
		phrases = append(phrases, ordered...)
		phraseEnd := uint32(len(phrases))

		nodes[cur.index].childBegin = childBegin
		nodes[cur.index].childEnd = childEnd
		nodes[cur.index].phraseBegin = phraseBegin
		nodes[cur.index].phraseEnd = phraseEnd

		if len(codes) == 0 {
			leafCount++
			heightSum += cur.depth
			if cur.depth > stats.MaxHeight {
				stats.MaxHeight = cur.depth
			}
		} else {
			branch := len(codes)
			if cur.index == 0 {
				stats.RootBranchCount = branch
			}
			if branch > stats.MaxBranchCount {
				stats.MaxBranchCount = branch
			}
		}

		childIdx := int(childBegin)
		for _, code := range codes {
			items = append(items, item{cur.build.children[code], childIdx, cur.depth + 1})
			childIdx++
		}
	}

	stats.NodeCount = len(nodes)
	stats.LeafCount = leafCount
	stats.PhraseCount = len(phrases)
	if leafCount > 0 {
		stats.AvgHeight = float64(heightSum) / float64(leafCount)
	}
	internalCount := stats.NodeCount - leafCount
	if internalCount > 0 {
		branchSum := 0
		for _, n := range nodes {
			if n.childEnd > n.childBegin {
				branchSum += int(n.childEnd - n.childBegin)
			}
		}
		stats.AvgBranchCount = float64(branchSum) / float64(internalCount)
	}
	return nodes, phrases, stats
}

// Build writes the accumulated tree to path in the on-disk trie format and
// returns build statistics.
func (b *TrieBuilder) Build(path string) (Statistics, error) {
	nodes, phrases, stats := b.flatten()

	nodeSection := make([]byte, len(nodes)*nodeRecordSize)
	for i, n := range nodes {
		off := i * nodeRecordSize
		binary.LittleEndian.PutUint16(nodeSection[off:], n.syllableCode)
		binary.LittleEndian.PutUint32(nodeSection[off+2:], n.childBegin)
		binary.LittleEndian.PutUint32(nodeSection[off+6:], n.childEnd)
		binary.LittleEndian.PutUint32(nodeSection[off+10:], n.phraseBegin)
		binary.LittleEndian.PutUint32(nodeSection[off+14:], n.phraseEnd)
	}

	// Phrase section: an offset table of len(phrases)+1 uint32s (relative
	// to the end of the table) followed by the packed variable-length
	// records, mirroring the layout trie.go's phrase() method expects.
	records := make([][]byte, len(phrases))
	offsets := make([]uint32, len(phrases)+1)
	var cur uint32
	for i, p := range phrases {
		text := []byte(p.Text)
		rec := make([]byte, phraseHeaderLen+len(text))
		binary.LittleEndian.PutUint32(rec[0:4], p.Freq)
		rec[4] = byte(len(text))
		copy(rec[5:], text)
		records[i] = rec
		offsets[i] = cur
		cur += uint32(len(rec))
	}
	offsets[len(phrases)] = cur

	offsTableSize := (len(phrases) + 1) * 4
	phraseSection := make([]byte, offsTableSize+int(cur))
	for i, o := range offsets {
		binary.LittleEndian.PutUint32(phraseSection[i*4:], o)
	}
	pos := offsTableSize
	for _, rec := range records {
		copy(phraseSection[pos:], rec)
		pos += len(rec)
	}

	metadata := encodeMetadata(b.info)

	header := make([]byte, headerSize)
	copy(header[0:4], trieMagic)
	binary.LittleEndian.PutUint16(header[4:6], trieVersion)
	nodeSectionOffset := uint32(headerSize + len(metadata))
	phraseSectionOff := nodeSectionOffset + uint32(len(nodeSection))
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(nodes)))
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(phrases)))
	binary.LittleEndian.PutUint32(header[16:20], nodeSectionOffset)
	binary.LittleEndian.PutUint32(header[20:24], phraseSectionOff)
	binary.LittleEndian.PutUint32(header[24:28], uint32(headerSize))
	binary.LittleEndian.PutUint32(header[28:32], uint32(len(metadata)))

	out := make([]byte, 0, len(header)+len(metadata)+len(nodeSection)+len(phraseSection))
	out = append(out, header...)
	out = append(out, metadata...)
	out = append(out, nodeSection...)
	out = append(out, phraseSection...)

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return Statistics{}, cherr.New("dictionary.Build", cherr.KindIoError, err)
	}
	return stats, nil
}

func encodeMetadata(info DictionaryInfo) []byte {
	fields := []string{info.Name, info.Copyright, info.License, info.Version, info.Software}
	var out []byte
	for _, f := range fields {
		b := []byte(f)
		lenBuf := make([]byte, 2)
		binary.LittleEndian.PutUint16(lenBuf, uint16(len(b)))
		out = append(out, lenBuf...)
		out = append(out, b...)
	}
	return out
}
