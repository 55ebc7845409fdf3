package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// IndexLock records the canonical index assigned to every alpha-2 code.
// Entries are never removed: codes that vanish from the source are marked
// as withdrawn and their index stays reserved.
type IndexLock struct {
	// Digest is the digest of the source the lock was last written for.
	Digest  string      `yaml:"digest"`
	Entries []LockEntry `yaml:"entries"`
}

// LockEntry is a single canonical index assignment.
type LockEntry struct {
	Index     uint16 `yaml:"index"`
	Alpha2    string `yaml:"alpha2"`
	Withdrawn bool   `yaml:"withdrawn,omitempty"`
}

// LoadIndexLock loads the index lock at the given location.
// A missing file results in an empty lock.
func LoadIndexLock(filename string) (*IndexLock, error) {
	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		lock := &IndexLock{}
		if err := yaml.Unmarshal(data, lock); err != nil {
			return nil, fmt.Errorf("unmarshal index lock %s: %w", filename, err)
		}
		return lock, nil

	case errors.Is(err, os.ErrNotExist):
		// First generation, start empty.
		return &IndexLock{}, nil

	default:
		return nil, fmt.Errorf("read index lock %s: %w", filename, err)
	}
}

// Marshal returns the YAML form of the lock.
func (l *IndexLock) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("marshal index lock: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal index lock: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveTo writes the lock to the given file.
func (l *IndexLock) SaveTo(filename string) error {
	data, err := l.Marshal()
	if err != nil {
		return err
	}
	return WriteFiles(map[string][]byte{filename: data})
}

// Current returns whether the lock was written for the source with the given digest.
func (l *IndexLock) Current(digest string) bool {
	return l.Digest != "" && l.Digest == digest
}

// Lookup returns the entry of the given alpha-2 code.
func (l *IndexLock) Lookup(alpha2 string) (LockEntry, bool) {
	for _, e := range l.Entries {
		if e.Alpha2 == alpha2 {
			return e, true
		}
	}
	return LockEntry{}, false
}

// check verifies that the lock itself is consistent.
func (l *IndexLock) check() error {
	indices := make(map[uint16]string, len(l.Entries))
	codes := make(map[string]uint16, len(l.Entries))
	for i, e := range l.Entries {
		if e.Index == 0 {
			return violation(CheckIndex, 0, "", "lock entry #%d (%s): index 0 is reserved", i+1, e.Alpha2)
		}
		if !isUpperLetters(e.Alpha2, 2) {
			return violation(CheckIndex, 0, "", "lock entry #%d: malformed alpha-2 code %q", i+1, e.Alpha2)
		}
		if other, ok := indices[e.Index]; ok {
			return violation(CheckIndex, 0, "", "duplicate canonical index %d assigned to %s and %s", e.Index, other, e.Alpha2)
		}
		if other, ok := codes[e.Alpha2]; ok {
			return violation(CheckIndex, 0, "", "alpha-2 code %s assigned to canonical indices %d and %d", e.Alpha2, other, e.Index)
		}
		indices[e.Index] = e.Alpha2
		codes[e.Alpha2] = e.Index
	}
	return nil
}

// assignIndices returns the canonical index of every country and the
// updated lock. Known codes keep their index, new codes are appended in
// declaration order after the highest index ever assigned.
func assignIndices(countries []CountrySource, lock *IndexLock) ([]uint16, *IndexLock, error) {
	if err := lock.check(); err != nil {
		return nil, nil, err
	}

	// Copy existing entries and find the highest index.
	updated := &IndexLock{
		Digest:  lock.Digest,
		Entries: make([]LockEntry, 0, len(lock.Entries)+len(countries)),
	}
	byCode := make(map[string]int, len(lock.Entries))
	var highest uint16
	for _, e := range lock.Entries {
		e.Withdrawn = true // Reset below for all present codes.
		byCode[e.Alpha2] = len(updated.Entries)
		updated.Entries = append(updated.Entries, e)
		highest = max(highest, e.Index)
	}

	// Assign indices.
	indices := make([]uint16, len(countries))
	for i, c := range countries {
		if pos, ok := byCode[c.Alpha2]; ok {
			updated.Entries[pos].Withdrawn = false
			indices[i] = updated.Entries[pos].Index
			continue
		}

		if highest == math.MaxUint16 {
			return nil, nil, violation(CheckIndex, i+1, c.Alpha2, "canonical index space exhausted")
		}
		highest++
		byCode[c.Alpha2] = len(updated.Entries)
		updated.Entries = append(updated.Entries, LockEntry{
			Index:  highest,
			Alpha2: c.Alpha2,
		})
		indices[i] = highest
	}

	slices.SortFunc(updated.Entries, func(a, b LockEntry) int {
		return int(a.Index) - int(b.Index)
	})
	return indices, updated, nil
}
