package compiler

import (
	"path/filepath"
)

// Target describes where generated files are written to.
type Target struct {
	// LockFile is the location of the index lock.
	LockFile string
	// OutDir is the module root the generated sources are written to.
	OutDir string
}

// Generate compiles the source, renders the generated sources and writes
// them together with the updated index lock.
// Nothing is written if any step before the final renames fails. The lock
// is renamed last, so an interrupted commit leaves a stale lock behind,
// which makes the next check report the generated files as outdated.
func Generate(src *Source, digest string, lock *IndexLock, target Target) error {
	ds, err := Compile(src, lock, digest)
	if err != nil {
		return err
	}
	rendered, err := Render(ds)
	if err != nil {
		return err
	}
	lockData, err := ds.Lock.Marshal()
	if err != nil {
		return err
	}

	files := make(map[string][]byte, len(rendered)+1)
	for name, data := range rendered {
		files[filepath.Join(target.OutDir, filepath.FromSlash(name))] = data
	}
	files[target.LockFile] = lockData
	return writeFiles(files, target.LockFile)
}
