package compiler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// WriteFiles writes the given files. Destinations are only touched once
// every file was staged successfully.
// Content is first written to temporary files next to the destinations,
// which are then renamed into place one by one. A failing rename leaves
// the files renamed before it in place.
func WriteFiles(files map[string][]byte) error {
	return writeFiles(files, "")
}

// writeFiles is WriteFiles with the given file renamed into place last.
func writeFiles(files map[string][]byte, last string) (err error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case a == last:
			return 1
		case b == last:
			return -1
		default:
			return strings.Compare(a, b)
		}
	})

	// Clean up temporary files on failure.
	temps := make(map[string]string, len(files))
	defer func() {
		if err != nil {
			for _, tmp := range temps {
				_ = os.Remove(tmp)
			}
		}
	}()

	// Stage.
	for _, name := range names {
		tmp, err := writeTemp(name, files[name])
		if err != nil {
			return err
		}
		temps[name] = tmp
	}

	// Commit.
	for _, name := range names {
		if err := os.Rename(temps[name], name); err != nil {
			return fmt.Errorf("move %s into place: %w", name, err)
		}
		delete(temps, name)
	}
	return nil
}

func writeTemp(name string, data []byte) (tmpName string, err error) {
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0o0755); err != nil { //nolint:gosec // generated sources are public
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temporary file for %s: %w", name, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	_, writeErr := f.Write(data)
	if writeErr == nil {
		writeErr = f.Chmod(0o0644)
	}
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		return "", fmt.Errorf("write temporary file for %s: %w", name, err)
	}
	return f.Name(), nil
}
