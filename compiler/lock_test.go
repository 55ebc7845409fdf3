package compiler

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(t *testing.T, ds *Dataset, alpha2 string) uint16 {
	t.Helper()

	for _, c := range ds.Countries {
		if c.Alpha2 == alpha2 {
			return c.Index
		}
	}
	t.Fatalf("%s not in dataset", alpha2)
	return 0
}

func TestIndexStability(t *testing.T) {
	t.Parallel()

	first, err := Compile(testSource(), nil, "v1")
	require.NoError(t, err)

	// Reordering the source keeps all indices.
	src := testSource()
	slices.Reverse(src.Countries)
	reordered, err := Compile(src, first.Lock, "v2")
	require.NoError(t, err)
	for _, c := range first.Countries {
		assert.Equal(t, c.Index, indexOf(t, reordered, c.Alpha2), c.Alpha2)
	}

	// Removing a country withdraws its index.
	src = testSource()
	src.Countries = slices.Delete(src.Countries, 1, 2) // AT
	removed, err := Compile(src, reordered.Lock, "v3")
	require.NoError(t, err)
	assert.Len(t, removed.Countries, 4)
	assert.Equal(t, uint16(5), removed.MaxIndex())
	entry, ok := removed.Lock.Lookup("AT")
	require.True(t, ok)
	assert.True(t, entry.Withdrawn)
	assert.Zero(t, removed.Table()[2], "withdrawn index must stay empty")

	// New countries never reuse withdrawn indices.
	src.Countries = append(src.Countries, CountrySource{
		Name: "Sri Lanka", Alpha2: "LK", Alpha3: "LKA", CountryCode: "144", RegionCode: "142", SubRegionCode: "034",
	})
	added, err := Compile(src, removed.Lock, "v4")
	require.NoError(t, err)
	assert.Equal(t, uint16(6), indexOf(t, added, "LK"))

	// A re-added country gets its old index back.
	src.Countries = append(src.Countries, testSource().Countries[1])
	readded, err := Compile(src, added.Lock, "v5")
	require.NoError(t, err)
	assert.Equal(t, uint16(2), indexOf(t, readded, "AT"))
	entry, ok = readded.Lock.Lookup("AT")
	require.True(t, ok)
	assert.False(t, entry.Withdrawn)

	// The input lock is never modified.
	entry, ok = removed.Lock.Lookup("AT")
	require.True(t, ok)
	assert.True(t, entry.Withdrawn)
}

func TestLockViolations(t *testing.T) {
	t.Parallel()

	locks := map[string]*IndexLock{
		"zero index": {Entries: []LockEntry{{Index: 0, Alpha2: "NO"}}},
		"malformed code": {Entries: []LockEntry{{Index: 1, Alpha2: "no"}}},
		"duplicate index": {Entries: []LockEntry{
			{Index: 1, Alpha2: "NO"},
			{Index: 1, Alpha2: "AT"},
		}},
		"duplicate code": {Entries: []LockEntry{
			{Index: 1, Alpha2: "NO"},
			{Index: 2, Alpha2: "NO"},
		}},
	}
	for name, lock := range locks {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Compile(testSource(), lock, "")
			requireViolation(t, err, CheckIndex)
		})
	}
}

func TestLockFile(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "index.yaml")

	// Missing lock is empty.
	lock, err := LoadIndexLock(filename)
	require.NoError(t, err)
	assert.Empty(t, lock.Entries)
	assert.False(t, lock.Current(""))

	ds, err := Compile(testSource(), lock, "digest")
	require.NoError(t, err)
	require.NoError(t, ds.Lock.SaveTo(filename))

	loaded, err := LoadIndexLock(filename)
	require.NoError(t, err)
	assert.Equal(t, ds.Lock, loaded)
	assert.True(t, loaded.Current("digest"))
	assert.False(t, loaded.Current("other"))

	// Broken lock.
	require.NoError(t, os.WriteFile(filename, []byte("entries: {"), 0o0600))
	_, err = LoadIndexLock(filename)
	assert.Error(t, err)
}
