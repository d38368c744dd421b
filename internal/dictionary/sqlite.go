package dictionary

import (
	"database/sql"
	"encoding/binary"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/chewing/gochewing/internal/cherr"
	"github.com/chewing/gochewing/internal/zhuyin"
)

// schemaVersion is bumped whenever the table layout changes; OpenSqlite runs the
// migrations in migrate() up to this version.
const schemaVersion = 1

// SqliteDictionary is the mutable user-layer backend: phrases the user
// types or adds are persisted here, keyed by syllable sequence.
type SqliteDictionary struct {
	db   *sql.DB
	path string
	info DictionaryInfo
}

// OpenSqlite opens (creating if necessary) a user dictionary at path and
// runs any pending migrations.
func OpenSqlite(path string) (*SqliteDictionary, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, cherr.New("dictionary.OpenSqlite", cherr.KindIoError, err)
	}
	d := &SqliteDictionary{db: db, path: path, info: DictionaryInfo{
		Name: "user dictionary", Software: "gochewing",
	}}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *SqliteDictionary) migrate() error {
	if _, err := d.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return cherr.New("dictionary.migrate", cherr.KindMigration, err)
	}
	var version int
	row := d.db.QueryRow(`SELECT version FROM schema_version LIMIT 1`)
	if err := row.Scan(&version); err != nil {
		if err != sql.ErrNoRows {
			return cherr.New("dictionary.migrate", cherr.KindMigration, err)
		}
		version = 0
	}
	if version >= schemaVersion {
		return nil
	}
	if _, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS user_phrase (
			syllables BLOB NOT NULL,
			phrase TEXT NOT NULL,
			freq INTEGER NOT NULL DEFAULT 0,
			user_freq INTEGER NOT NULL DEFAULT 0,
			last_used INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (syllables, phrase)
		)`); err != nil {
		return cherr.New("dictionary.migrate", cherr.KindMigration, err)
	}
	if _, err := d.db.Exec(`CREATE INDEX IF NOT EXISTS idx_user_phrase_syllables ON user_phrase(syllables)`); err != nil {
		return cherr.New("dictionary.migrate", cherr.KindMigration, err)
	}
	if _, err := d.db.Exec(`DELETE FROM schema_version`); err != nil {
		return cherr.New("dictionary.migrate", cherr.KindMigration, err)
	}
	if _, err := d.db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, schemaVersion); err != nil {
		return cherr.New("dictionary.migrate", cherr.KindMigration, err)
	}
	return nil
}

func syllableBlob(syllables []zhuyin.Syllable) []byte {
	b := make([]byte, len(syllables)*2)
	for i, s := range syllables {
		binary.LittleEndian.PutUint16(b[i*2:], s.ToUint16())
	}
	return b
}

func (d *SqliteDictionary) LookupAllPhrases(syllables []zhuyin.Syllable) []Phrase {
	rows, err := d.db.Query(
		`SELECT phrase, freq, user_freq, last_used FROM user_phrase WHERE syllables = ?`,
		syllableBlob(syllables))
	if err != nil {
		return nil
	}
	defer rows.Close()
	var phrases []Phrase
	for rows.Next() {
		var p Phrase
		if err := rows.Scan(&p.Text, &p.Freq, &p.UserFreq, &p.LastUsed); err != nil {
			continue
		}
		phrases = append(phrases, p)
	}
	return orderPhrases(phrases)
}

func (d *SqliteDictionary) LookupFirstPhrase(syllables []zhuyin.Syllable) (Phrase, bool) {
	phrases := d.LookupAllPhrases(syllables)
	if len(phrases) == 0 {
		return Phrase{}, false
	}
	return phrases[0], true
}

func (d *SqliteDictionary) LookupWord(s zhuyin.Syllable) []Phrase {
	return d.LookupAllPhrases([]zhuyin.Syllable{s})
}

func (d *SqliteDictionary) About() DictionaryInfo { return d.info }

func (d *SqliteDictionary) Path() (string, bool) {
	if d.path == "" {
		return "", false
	}
	return d.path, true
}

func (d *SqliteDictionary) Entries() EntryIterator {
	rows, err := d.db.Query(`SELECT syllables, phrase, freq, user_freq, last_used FROM user_phrase`)
	if err != nil {
		return newSliceEntryIterator(nil)
	}
	defer rows.Close()
	var entries []Entry
	for rows.Next() {
		var blob []byte
		var p Phrase
		if err := rows.Scan(&blob, &p.Text, &p.Freq, &p.UserFreq, &p.LastUsed); err != nil {
			continue
		}
		syls := make([]zhuyin.Syllable, len(blob)/2)
		for i := range syls {
			v := binary.LittleEndian.Uint16(blob[i*2:])
			s, err := zhuyin.FromUint16(v)
			if err != nil {
				continue
			}
			syls[i] = s
		}
		entries = append(entries, Entry{Syllables: syls, Phrase: p})
	}
	return newSliceEntryIterator(entries)
}

// Add inserts phrase under syllables, summing Freq/UserFreq into any
// existing row for the same (syllables, phrase text) pair.
func (d *SqliteDictionary) Add(syllables []zhuyin.Syllable, phrase Phrase) error {
	blob := syllableBlob(syllables)
	_, err := d.db.Exec(`
		INSERT INTO user_phrase (syllables, phrase, freq, user_freq, last_used)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(syllables, phrase) DO UPDATE SET
			freq = freq + excluded.freq,
			user_freq = user_freq + excluded.user_freq,
			last_used = MAX(last_used, excluded.last_used)`,
		blob, phrase.Text, phrase.Freq, phrase.UserFreq, phrase.LastUsed)
	if err != nil {
		return cherr.New("dictionary.Add", cherr.KindIoError, err)
	}
	return nil
}

// UpdateFreq adjusts an existing phrase's UserFreq and LastUsed, used to
// record selection/learning feedback.
func (d *SqliteDictionary) UpdateFreq(syllables []zhuyin.Syllable, text string, userFreqDelta uint32, lastUsed int64) error {
	res, err := d.db.Exec(`
		UPDATE user_phrase SET user_freq = user_freq + ?, last_used = ?
		WHERE syllables = ? AND phrase = ?`,
		userFreqDelta, lastUsed, syllableBlob(syllables), text)
	if err != nil {
		return cherr.New("dictionary.UpdateFreq", cherr.KindIoError, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return cherr.New("dictionary.UpdateFreq", cherr.KindIoError, err)
	}
	if n == 0 {
		return cherr.New("dictionary.UpdateFreq", cherr.KindNotFound, fmt.Errorf("phrase %q not found", text))
	}
	return nil
}

// Remove deletes the phrase under syllables matching text.
func (d *SqliteDictionary) Remove(syllables []zhuyin.Syllable, text string) error {
	_, err := d.db.Exec(`DELETE FROM user_phrase WHERE syllables = ? AND phrase = ?`,
		syllableBlob(syllables), text)
	if err != nil {
		return cherr.New("dictionary.Remove", cherr.KindIoError, err)
	}
	return nil
}

// Flush is a no-op: every mutation above commits immediately.
func (d *SqliteDictionary) Flush() error { return nil }

// Close releases the underlying database handle.
func (d *SqliteDictionary) Close() error { return d.db.Close() }
