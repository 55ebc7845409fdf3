package jurisdiction

import (
	"sync"

	"github.com/mycoria/jurisdiction/internal/fold"
)

// definition holds the static information of a jurisdiction.
type definition struct {
	alpha2  string
	alpha3  string
	numeric uint16
	name    string
}

func (def *definition) valid() bool {
	return def.alpha2 != ""
}

// lookupTables maps every representation to the canonical index.
// A zero entry means that nothing is assigned.
type lookupTables struct {
	byAlpha2  [26 * 26]uint16
	byAlpha3  map[string]uint16
	byNumeric [1000]uint16
	byName    map[string]uint16
	all       []Jurisdiction
}

// tables is built on first use and never modified afterwards.
var tables = sync.OnceValue(buildTables)

func buildTables() *lookupTables {
	t := &lookupTables{
		byAlpha3: make(map[string]uint16, len(definitions)),
		byName:   make(map[string]uint16, len(definitions)),
		all:      make([]Jurisdiction, 0, len(definitions)),
	}

	for i := range definitions {
		def := &definitions[i]
		if !def.valid() {
			continue
		}
		index := uint16(i) //nolint:gosec // Table size is bound by the generator.

		slot, ok := alpha2Slot(def.alpha2)
		if !ok {
			panic("generated alpha-2 code " + def.alpha2 + " is malformed")
		}
		t.byAlpha2[slot] = index
		t.byAlpha3[def.alpha3] = index
		t.byNumeric[def.numeric] = index
		t.byName[fold.Name(def.name)] = index
		t.all = append(t.all, Jurisdiction{index: index})
	}

	return t
}

// alpha2Slot returns the position of the given upper case alpha-2 code in
// the dense alpha-2 table.
func alpha2Slot(code string) (slot int, ok bool) {
	if len(code) != 2 {
		return 0, false
	}
	a, b := code[0], code[1]
	if a < 'A' || a > 'Z' || b < 'A' || b > 'Z' {
		return 0, false
	}
	return int(a-'A')*26 + int(b-'A'), true
}

// lookup returns the definition at the given canonical index.
// Unknown indices return the zero definition.
func lookup(index uint16) *definition {
	if int(index) >= len(definitions) {
		return &definitions[0]
	}
	return &definitions[index]
}

// upperASCII returns s with all ASCII letters in upper case.
// Only strings up to three bytes are of interest, longer ones are returned as is.
func upperASCII(s string) string {
	if len(s) > 3 {
		return s
	}
	var (
		buf     [3]byte
		changed bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
			changed = true
		}
		buf[i] = c
	}
	if !changed {
		return s
	}
	return string(buf[:len(s)])
}
