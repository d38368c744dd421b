package dictionary

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/chewing/gochewing/internal/cherr"
	"github.com/chewing/gochewing/internal/zhuyin"
)

// Trie is a read-only dictionary backed by the binary trie format. It can
// be loaded fully into memory (Open) or mmap-backed (OpenMmap); both share
// this same lookup implementation over a []byte buffer.
type Trie struct {
	buf    []byte
	path   string
	header trieHeader
	info   DictionaryInfo
	closer func() error
}

// Open reads path fully into memory and parses it as a trie dictionary.
func Open(path string) (*Trie, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, cherr.New("dictionary.Open", cherr.KindIoError, err)
	}
	t, err := newTrieFromBuffer(buf, path, nil)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func newTrieFromBuffer(buf []byte, path string, closer func() error) (*Trie, error) {
	if len(buf) < headerSize || string(buf[0:4]) != trieMagic {
		return nil, cherr.New("dictionary.Open", cherr.KindFormatError, fmt.Errorf("not a trie dictionary file"))
	}
	h := trieHeader{
		Version:           binary.LittleEndian.Uint16(buf[4:6]),
		NodeCount:         binary.LittleEndian.Uint32(buf[8:12]),
		PhraseCount:       binary.LittleEndian.Uint32(buf[12:16]),
		NodeSectionOffset: binary.LittleEndian.Uint32(buf[16:20]),
		PhraseSectionOff:  binary.LittleEndian.Uint32(buf[20:24]),
		MetadataOffset:    binary.LittleEndian.Uint32(buf[24:28]),
		MetadataLength:    binary.LittleEndian.Uint32(buf[28:32]),
	}
	if h.Version != trieVersion {
		return nil, cherr.New("dictionary.Open", cherr.KindVersionUnsupported, fmt.Errorf("trie version %d", h.Version))
	}
	info, err := decodeMetadata(buf[h.MetadataOffset : h.MetadataOffset+h.MetadataLength])
	if err != nil {
		return nil, cherr.New("dictionary.Open", cherr.KindFormatError, err)
	}
	return &Trie{buf: buf, path: path, header: h, info: info, closer: closer}, nil
}

// Close releases any resources (the mmap, for OpenMmap-loaded tries); it
// is a no-op for buffered loads.
func (t *Trie) Close() error {
	if t.closer != nil {
		return t.closer()
	}
	return nil
}

func decodeMetadata(b []byte) (DictionaryInfo, error) {
	var fields [5]string
	off := 0
	for i := range fields {
		if off+2 > len(b) {
			return DictionaryInfo{}, fmt.Errorf("truncated metadata")
		}
		l := int(binary.LittleEndian.Uint16(b[off : off+2]))
		off += 2
		if off+l > len(b) {
			return DictionaryInfo{}, fmt.Errorf("truncated metadata field")
		}
		fields[i] = string(b[off : off+l])
		off += l
	}
	return DictionaryInfo{
		Name: fields[0], Copyright: fields[1], License: fields[2],
		Version: fields[3], Software: fields[4],
	}, nil
}

func (t *Trie) node(i uint32) trieNodeRecord {
	off := t.header.NodeSectionOffset + i*uint32(nodeRecordSize)
	b := t.buf[off:]
	return trieNodeRecord{
		SyllableCode: binary.LittleEndian.Uint16(b[0:2]),
		ChildBegin:   binary.LittleEndian.Uint32(b[2:6]),
		ChildEnd:     binary.LittleEndian.Uint32(b[6:10]),
		PhraseBegin:  binary.LittleEndian.Uint32(b[10:14]),
		PhraseEnd:    binary.LittleEndian.Uint32(b[14:18]),
	}
}

func (t *Trie) phrase(i uint32) Phrase {
	// Phrase records are variable-length, so the phrase section carries a
	// parallel offset table at its start: PhraseCount+1 uint32 offsets
	// (relative to the end of that table) followed by the packed records.
	offsTable := t.header.PhraseSectionOff
	recOff := t.header.PhraseSectionOff + (t.header.PhraseCount+1)*4 +
		binary.LittleEndian.Uint32(t.buf[offsTable+i*4:offsTable+i*4+4])
	b := t.buf[recOff:]
	freq := binary.LittleEndian.Uint32(b[0:4])
	textLen := int(b[4])
	text := string(b[5 : 5+textLen])
	return Phrase{Text: text, Freq: freq}
}

// findChild binary-searches node idx's children for code, returning the
// child's node index and true if present.
func (t *Trie) findChild(idx uint32, code uint16) (uint32, bool) {
	n := t.node(idx)
	lo, hi := n.ChildBegin, n.ChildEnd
	for lo < hi {
		mid := lo + (hi-lo)/2
		c := t.node(mid)
		switch {
		case c.SyllableCode == code:
			return mid, true
		case c.SyllableCode < code:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}

// walk follows syllables from the root, returning the final node index and
// whether the whole path exists.
func (t *Trie) walk(syllables []zhuyin.Syllable) (uint32, bool) {
	idx := uint32(0)
	for _, s := range syllables {
		child, ok := t.findChild(idx, s.ToUint16())
		if !ok {
			return 0, false
		}
		idx = child
	}
	return idx, true
}

func (t *Trie) phrasesAt(idx uint32) []Phrase {
	n := t.node(idx)
	if n.PhraseBegin == n.PhraseEnd {
		return nil
	}
	out := make([]Phrase, 0, n.PhraseEnd-n.PhraseBegin)
	for i := n.PhraseBegin; i < n.PhraseEnd; i++ {
		out = append(out, t.phrase(i))
	}
	return out
}

func (t *Trie) LookupAllPhrases(syllables []zhuyin.Syllable) []Phrase {
	idx, ok := t.walk(syllables)
	if !ok {
		return nil
	}
	return orderPhrases(t.phrasesAt(idx))
}

func (t *Trie) LookupFirstPhrase(syllables []zhuyin.Syllable) (Phrase, bool) {
	phrases := t.LookupAllPhrases(syllables)
	if len(phrases) == 0 {
		return Phrase{}, false
	}
	return phrases[0], true
}

func (t *Trie) LookupWord(s zhuyin.Syllable) []Phrase {
	return t.LookupAllPhrases([]zhuyin.Syllable{s})
}

func (t *Trie) About() DictionaryInfo { return t.info }

func (t *Trie) Path() (string, bool) {
	if t.path == "" {
		return "", false
	}
	return t.path, true
}

func (t *Trie) Entries() EntryIterator {
	var entries []Entry
	var walkNode func(idx uint32, prefix []zhuyin.Syllable)
	walkNode = func(idx uint32, prefix []zhuyin.Syllable) {
		for _, p := range t.phrasesAt(idx) {
			syls := make([]zhuyin.Syllable, len(prefix))
			copy(syls, prefix)
			entries = append(entries, Entry{Syllables: syls, Phrase: p})
		}
		n := t.node(idx)
		for c := n.ChildBegin; c < n.ChildEnd; c++ {
			child := t.node(c)
			syl, _ := zhuyin.FromUint16(child.SyllableCode)
			next := make([]zhuyin.Syllable, len(prefix)+1)
			copy(next, prefix)
			next[len(prefix)] = syl
			walkNode(c, next)
		}
	}
	walkNode(0, nil)
	return newSliceEntryIterator(entries)
}
