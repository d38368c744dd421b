// Package symbols loads the auxiliary text tables the engine keeps
// alongside the phrase dictionary: the abbreviation-expansion table
// (swkb.dat) and the full-width/easy symbol candidate table
// (symbols.dat). Both are plain UTF-8, one entry per line, keyed by the
// line's first character.
package symbols

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chewing/gochewing/internal/cherr"
)

// AbbrevTable maps a single trigger character to its verbatim expansion,
// as loaded from swkb.dat: each line is the key, a single space, then the
// rest of the line verbatim.
type AbbrevTable struct {
	entries map[rune]string
}

// LoadAbbrevTable reads an abbreviation table from path.
func LoadAbbrevTable(path string) (*AbbrevTable, error) {
	t := &AbbrevTable{entries: make(map[rune]string)}
	err := forEachEntry(path, func(key rune, rest string) {
		t.entries[key] = rest
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Lookup returns the expansion for key, if any.
func (t *AbbrevTable) Lookup(key rune) (string, bool) {
	s, ok := t.entries[key]
	return s, ok
}

// SymbolTable maps a trigger/category character to an ordered list of
// candidate replacement strings, as loaded from symbols.dat. Multiple
// candidates on one line are separated by whitespace.
type SymbolTable struct {
	entries map[rune][]string
}

// LoadSymbolTable reads a symbol category table from path.
func LoadSymbolTable(path string) (*SymbolTable, error) {
	t := &SymbolTable{entries: make(map[rune][]string)}
	err := forEachEntry(path, func(key rune, rest string) {
		t.entries[key] = append(t.entries[key], strings.Fields(rest)...)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Lookup returns the candidate list registered for key, if any.
func (t *SymbolTable) Lookup(key rune) ([]string, bool) {
	s, ok := t.entries[key]
	return s, ok
}

// forEachEntry scans path line by line, skipping blank lines and '#'
// comments, splitting each remaining line on its first space into (key
// rune, rest) and invoking fn.
func forEachEntry(path string, fn func(key rune, rest string)) error {
	f, err := os.Open(path)
	if err != nil {
		return cherr.New("symbols.Load", cherr.KindIoError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		runes := []rune(line)
		key := runes[0]
		rest := ""
		if len(runes) > 1 {
			if runes[1] != ' ' {
				return cherr.New("symbols.Load", cherr.KindFormatError,
					fmt.Errorf("%s:%d: expected a space after the key character", path, lineNo))
			}
			rest = string(runes[2:])
		}
		fn(key, rest)
	}
	if err := scanner.Err(); err != nil {
		return cherr.New("symbols.Load", cherr.KindIoError, err)
	}
	return nil
}
