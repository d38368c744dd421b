package dictionary

// Binary trie file format: a fixed header, a tagged metadata section,
// then a node array and a phrase array. All integers are little-endian;
// every reference is an array index rather than a pointer, so the file
// is position-independent and safe to either read fully into memory or
// mmap (see trie.go / mmap.go).
const (
	trieMagic       = "CHW1"
	trieVersion     = uint16(1)
	headerSize      = 4 + 2 + 2 + 4 + 4 + 4 + 4 + 4 + 4 // magic+version+reserved+6 uint32s
	nodeRecordSize  = 2 + 4 + 4 + 4 + 4                 // syllableCode + childBegin/End + phraseBegin/End
	phraseHeaderLen = 4 + 1                             // freq + textLen, text bytes follow
)

// trieHeader mirrors the on-disk fixed header.
type trieHeader struct {
	Version           uint16
	NodeCount         uint32
	PhraseCount       uint32
	NodeSectionOffset uint32
	PhraseSectionOff  uint32
	MetadataOffset    uint32
	MetadataLength    uint32
}

// trieNodeRecord mirrors one on-disk node record.
type trieNodeRecord struct {
	SyllableCode uint16
	ChildBegin   uint32
	ChildEnd     uint32
	PhraseBegin  uint32
	PhraseEnd    uint32
}
