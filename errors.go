package jurisdiction

import (
	"errors"
	"fmt"
)

// ErrUnknownJurisdiction is returned when no jurisdiction matches the given input.
var ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

func unknown(kind string, input string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownJurisdiction, kind, SafeString(input))
}

// SafeString returns the given string cleaned from potentially disruptive
// characters and cut to a sane length. It's not meant for general use, but
// to be able to print or log untrusted input with some safety.
func SafeString(s string) string {
	if len(s) > 64 {
		s = s[:64]
	}
	b := []byte(s)
	for i, c := range b {
		b[i] = safeCharacter(c)
	}
	return string(b)
}

func safeCharacter(c byte) byte {
	// Check for basic safe range.
	if c < 32 || c > 126 {
		return '.'
	}

	// Other potentially disruptive characters.
	switch c {
	case 34, // "
		36, // $
		37, // %
		60, // <
		62, // >
		92, // \
		96: // `
		return '.'
	}

	return c
}
