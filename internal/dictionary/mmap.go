package dictionary

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/chewing/gochewing/internal/cherr"
)

// OpenMmap loads path as a memory-mapped trie dictionary. Lookups read
// directly from the mapping instead of a heap-allocated copy, which matters
// for the large system dictionaries. Callers must call Close when done to
// unmap.
func OpenMmap(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cherr.New("dictionary.OpenMmap", cherr.KindIoError, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, cherr.New("dictionary.OpenMmap", cherr.KindIoError, err)
	}
	if fi.Size() == 0 {
		return nil, cherr.New("dictionary.OpenMmap", cherr.KindFormatError, os.ErrInvalid)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, cherr.New("dictionary.OpenMmap", cherr.KindIoError, err)
	}

	t, err := newTrieFromBuffer(data, path, func() error { return unix.Munmap(data) })
	if err != nil {
		_ = unix.Munmap(data)
		return nil, err
	}
	return t, nil
}
