package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chewing/gochewing/internal/zhlog"
	"github.com/chewing/gochewing/internal/zhuyin"
)

// legacyRecordSize is the fixed record length of the old uhash.dat binary
// format: a 2-byte syllable count, up to 8 uint16 syllable codes (padded),
// a uint32 frequency, and a uint32 unix-time last-used stamp.
const (
	legacyMaxSyllables = 8
	legacyRecordSize   = 2 + legacyMaxSyllables*2 + 4 + 4
)

// MigrateUhash reads a legacy uhash.dat file (binary fixed-record, or the
// older plain-text dump) and inserts every entry it recognizes into dst.
// Unrecognized records are skipped and logged rather than aborting the
// whole migration, and re-running MigrateUhash against an already-migrated
// destination changes nothing: text entries dst already holds are skipped,
// and binary records only raise UserFreq up to the recorded value.
func MigrateUhash(path string, dst MutableDictionary) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(data) > 0 && len(data)%legacyRecordSize == 0 && looksBinary(data) {
		return migrateBinary(data, dst)
	}
	return migrateText(path, dst)
}

func looksBinary(data []byte) bool {
	n := binary.LittleEndian.Uint16(data[0:2])
	return n > 0 && int(n) <= legacyMaxSyllables
}

func migrateBinary(data []byte, dst MutableDictionary) error {
	log := zhlog.Logger()
	for off := 0; off+legacyRecordSize <= len(data); off += legacyRecordSize {
		rec := data[off : off+legacyRecordSize]
		count := binary.LittleEndian.Uint16(rec[0:2])
		if count == 0 || int(count) > legacyMaxSyllables {
			log.Warn().Int("offset", off).Msg("uhash.dat: skipping record with invalid syllable count")
			continue
		}
		syllables := make([]zhuyin.Syllable, count)
		ok := true
		for i := 0; i < int(count); i++ {
			code := binary.LittleEndian.Uint16(rec[2+i*2:])
			s, err := zhuyin.FromUint16(code)
			if err != nil {
				log.Warn().Int("offset", off).Err(err).Msg("uhash.dat: skipping record with invalid syllable")
				ok = false
				break
			}
			syllables[i] = s
		}
		if !ok {
			continue
		}
		freqOff := 2 + legacyMaxSyllables*2
		freq := binary.LittleEndian.Uint32(rec[freqOff:])
		lastUsed := binary.LittleEndian.Uint32(rec[freqOff+4:])
		// The legacy format stores one phrase's text alongside the record
		// in a paired string table upstream; since that table isn't part
		// of the retrieved reference material, text-bearing migration is
		// handled by migrateText below and this path only restores
		// frequency/last-used statistics for syllable keys dst already
		// knows about (matched by updating every phrase under the key).
		for _, p := range dst.LookupAllPhrases(syllables) {
			if p.UserFreq >= freq {
				continue
			}
			if err := dst.UpdateFreq(syllables, p.Text, freq-p.UserFreq, int64(lastUsed)); err != nil {
				log.Warn().Str("phrase", p.Text).Err(err).Msg("uhash.dat: failed to restore frequency")
			}
		}
	}
	return nil
}

// migrateText parses the older line-oriented dump: "<phrase> <syllable...>
// [last_used] <freq>", one entry per line, matching the plain-text variant
// the reference tooling also emits via dump.
func migrateText(path string, dst MutableDictionary) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	log := zhlog.Logger()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			log.Warn().Int("line", lineNo).Msg("uhash.dat: skipping malformed line")
			continue
		}
		text := fields[0]
		freq, err := strconv.ParseUint(fields[len(fields)-1], 10, 32)
		lastFieldIsFreq := err == nil
		var syllableFields []string
		var freqVal uint64
		var lastUsed int64
		if lastFieldIsFreq {
			if v, err := strconv.ParseInt(fields[len(fields)-2], 10, 64); err == nil && len(fields) >= 4 {
				lastUsed = v
				syllableFields = fields[1 : len(fields)-2]
				freqVal = freq
			} else {
				syllableFields = fields[1 : len(fields)-1]
				freqVal = freq
			}
		} else {
			log.Warn().Int("line", lineNo).Msg("uhash.dat: skipping line without trailing frequency")
			continue
		}
		syllables := make([]zhuyin.Syllable, 0, len(syllableFields))
		ok := true
		for _, sf := range syllableFields {
			s, err := zhuyin.Parse(sf)
			if err != nil {
				log.Warn().Int("line", lineNo).Str("syllable", sf).Err(err).Msg("uhash.dat: skipping line with unparsable syllable")
				ok = false
				break
			}
			syllables = append(syllables, s)
		}
		if !ok {
			continue
		}
		for _, p := range dst.LookupAllPhrases(syllables) {
			if p.Text == text {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if err := dst.Add(syllables, Phrase{Text: text, Freq: uint32(freqVal), LastUsed: lastUsed}); err != nil {
			return fmt.Errorf("uhash.dat line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}
