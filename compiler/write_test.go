package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.go")
	b := filepath.Join(dir, "sub", "b.go")
	files := map[string][]byte{
		a: []byte("package a\n"),
		b: []byte("package b\n"),
	}
	require.NoError(t, WriteFiles(files))
	for name, data := range files {
		written, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, data, written)
	}

	// No temporary files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriteFilesFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "a.go")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o0600))

	// A regular file in place of a directory makes staging fail.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o0600))

	err := WriteFiles(map[string][]byte{
		existing:                       []byte("new"),
		filepath.Join(blocker, "b.go"): []byte("package b\n"),
	})
	require.Error(t, err)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data), "existing files must not be touched")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files must be removed")
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	lockFile := filepath.Join(dir, "data", "index.yaml")
	require.NoError(t, Generate(testSource(), "digest", &IndexLock{}, Target{
		LockFile: lockFile,
		OutDir:   dir,
	}))

	assert.FileExists(t, filepath.Join(dir, DefinitionsFile))
	assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(RegionsFile)))
	lock, err := LoadIndexLock(lockFile)
	require.NoError(t, err)
	assert.True(t, lock.Current("digest"))
	assert.Len(t, lock.Entries, 5)
}

func TestGenerateFailureWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := testSource()
	src.Countries[1].Alpha3 = "NOR"

	err := Generate(src, "digest", &IndexLock{}, Target{
		LockFile: filepath.Join(dir, "index.yaml"),
		OutDir:   dir,
	})
	requireViolation(t, err, CheckAlpha3)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateCommitsLockLast(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	lockFile := filepath.Join(dir, "index.yaml")
	// A directory in place of the lock lets staging pass but fails its rename.
	require.NoError(t, os.MkdirAll(filepath.Join(lockFile, "occupied"), 0o0755))

	err := Generate(testSource(), "digest", &IndexLock{}, Target{
		LockFile: lockFile,
		OutDir:   dir,
	})
	require.Error(t, err)

	// Sources were committed before the lock, which stays stale.
	assert.FileExists(t, filepath.Join(dir, DefinitionsFile))
	assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(RegionsFile)))
	assert.DirExists(t, lockFile)

	// No temporary files remain.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temporary file left behind")
	}
}

func TestWriteFilesOrder(t *testing.T) {
	t.Parallel()

	names := []string{"b", "a", "c"}
	dir := t.TempDir()
	files := make(map[string][]byte, len(names))
	for _, name := range names {
		files[filepath.Join(dir, name)] = []byte(name)
	}
	// Blocking the first name in sort order fails its rename before any other.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "occupied"), 0o0755))

	require.Error(t, writeFiles(files, filepath.Join(dir, "a")))
	assert.FileExists(t, filepath.Join(dir, "b"))
	assert.FileExists(t, filepath.Join(dir, "c"))

	dir = t.TempDir()
	files = make(map[string][]byte, len(names))
	for _, name := range names {
		files[filepath.Join(dir, name)] = []byte(name)
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "occupied"), 0o0755))

	require.Error(t, WriteFiles(files))
	assert.NoFileExists(t, filepath.Join(dir, "b"))
	assert.NoFileExists(t, filepath.Join(dir, "c"))
}
