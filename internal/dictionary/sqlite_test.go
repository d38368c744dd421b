package dictionary

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chewing/gochewing/internal/zhuyin"
)

func TestSqliteDictionaryAddAndLookup(t *testing.T) {
	dir := t.TempDir()
	db, err := OpenSqlite(filepath.Join(dir, "user.sqlite3"))
	require.NoError(t, err)
	defer db.Close()

	zhong := mustSyllable(t, "ㄓㄨㄥ")
	require.NoError(t, db.Add([]zhuyin.Syllable{zhong}, Phrase{Text: "中", Freq: 1, UserFreq: 10}))
	require.NoError(t, db.Add([]zhuyin.Syllable{zhong}, Phrase{Text: "中", Freq: 1, UserFreq: 5}))

	phrases := db.LookupAllPhrases([]zhuyin.Syllable{zhong})
	require.Len(t, phrases, 1)
	require.EqualValues(t, 15, phrases[0].UserFreq)
}

func TestSqliteDictionaryUpdateFreqAndRemove(t *testing.T) {
	dir := t.TempDir()
	db, err := OpenSqlite(filepath.Join(dir, "user.sqlite3"))
	require.NoError(t, err)
	defer db.Close()

	zhong := mustSyllable(t, "ㄓㄨㄥ")
	require.NoError(t, db.Add([]zhuyin.Syllable{zhong}, Phrase{Text: "中", Freq: 1}))

	require.NoError(t, db.UpdateFreq([]zhuyin.Syllable{zhong}, "中", 3, 1000))
	phrases := db.LookupAllPhrases([]zhuyin.Syllable{zhong})
	require.Len(t, phrases, 1)
	require.EqualValues(t, 3, phrases[0].UserFreq)
	require.EqualValues(t, 1000, phrases[0].LastUsed)

	err = db.UpdateFreq([]zhuyin.Syllable{zhong}, "missing", 1, 1)
	require.Error(t, err)

	require.NoError(t, db.Remove([]zhuyin.Syllable{zhong}, "中"))
	require.Empty(t, db.LookupAllPhrases([]zhuyin.Syllable{zhong}))
}

func TestSqliteDictionaryMigrationIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.sqlite3")
	db, err := OpenSqlite(path)
	require.NoError(t, err)
	db.Close()

	db2, err := OpenSqlite(path)
	require.NoError(t, err)
	defer db2.Close()

	zhong := mustSyllable(t, "ㄓㄨㄥ")
	require.NoError(t, db2.Add([]zhuyin.Syllable{zhong}, Phrase{Text: "中", Freq: 1}))
	require.Len(t, db2.LookupAllPhrases([]zhuyin.Syllable{zhong}), 1)
}
