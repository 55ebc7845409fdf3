package jurisdiction

import (
	"fmt"
	"strconv"
)

// Jurisdiction identifies a country or area of the world.
//
// It only holds the canonical index of the jurisdiction and is as cheap to
// pass around as an integer. All methods look up the requested information
// in the static tables. The zero value is the undefined jurisdiction.
type Jurisdiction struct {
	index uint16
}

// Code is implemented by all representations of a jurisdiction:
// Jurisdiction, Alpha2 and Alpha3.
type Code interface {
	Jurisdiction() Jurisdiction
}

var (
	_ Code = Jurisdiction{}
	_ Code = Alpha2(0)
	_ Code = Alpha3(0)
)

// Parse returns the jurisdiction of the given alpha-2 or alpha-3 code.
// Matching is case-insensitive.
func Parse(s string) (Jurisdiction, error) {
	code := upperASCII(s)
	switch len(code) {
	case 2:
		if index, ok := lookupAlpha2(code); ok {
			return Jurisdiction{index: index}, nil
		}
	case 3:
		if index, ok := lookupAlpha3(code); ok {
			return Jurisdiction{index: index}, nil
		}
	}
	return Jurisdiction{}, unknown("code", s)
}

// MustParse is like Parse, but panics if the code is unknown.
// It is intended for tests and static setup.
func MustParse(s string) Jurisdiction {
	j, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return j
}

// FromNumeric returns the jurisdiction with the given ISO 3166 numeric country code.
func FromNumeric(countryCode uint16) (Jurisdiction, error) {
	if int(countryCode) < len(tables().byNumeric) {
		if index := tables().byNumeric[countryCode]; index != 0 {
			return Jurisdiction{index: index}, nil
		}
	}
	return Jurisdiction{}, fmt.Errorf("%w: numeric code %d", ErrUnknownJurisdiction, countryCode)
}

// ParseNumeric returns the jurisdiction with the given ISO 3166 numeric
// country code in its decimal text form, eg. "578" or "004".
func ParseNumeric(s string) (Jurisdiction, error) {
	if len(s) == 0 || len(s) > 3 {
		return Jurisdiction{}, unknown("numeric code", s)
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return Jurisdiction{}, unknown("numeric code", s)
	}
	return FromNumeric(uint16(n))
}

// FromIndex returns the jurisdiction with the given canonical index.
// Withdrawn and unassigned indices are unknown.
func FromIndex(index uint16) (Jurisdiction, error) {
	if !lookup(index).valid() {
		return Jurisdiction{}, fmt.Errorf("%w: index %d", ErrUnknownJurisdiction, index)
	}
	return Jurisdiction{index: index}, nil
}

// fromIndex returns the jurisdiction at the given index, or the undefined
// jurisdiction if the index is not assigned.
func fromIndex(index uint16) Jurisdiction {
	if !lookup(index).valid() {
		return Jurisdiction{}
	}
	return Jurisdiction{index: index}
}

// All returns all jurisdictions in canonical order.
func All() []Jurisdiction {
	all := tables().all
	out := make([]Jurisdiction, len(all))
	copy(out, all)
	return out
}

// Count returns the number of known jurisdictions.
func Count() int {
	return len(tables().all)
}

// Jurisdiction returns itself, so that it satisfies Code.
func (j Jurisdiction) Jurisdiction() Jurisdiction {
	return j
}

// Is returns whether j and the given code denote the same jurisdiction.
// The undefined jurisdiction is never equal to anything.
func (j Jurisdiction) Is(c Code) bool {
	if c == nil || !j.IsValid() {
		return false
	}
	return c.Jurisdiction().index == j.index
}

// IsValid returns whether the jurisdiction is defined.
func (j Jurisdiction) IsValid() bool {
	return j.index != 0 && lookup(j.index).valid()
}

// Index returns the canonical index of the jurisdiction.
// The index is stable and may be persisted. The undefined jurisdiction has index 0.
func (j Jurisdiction) Index() uint16 {
	return j.index
}

// Name returns the English short name of the jurisdiction.
func (j Jurisdiction) Name() string {
	return lookup(j.index).name
}

// CountryCode returns the ISO 3166 numeric country code.
func (j Jurisdiction) CountryCode() uint16 {
	return lookup(j.index).numeric
}

// Alpha2 returns the ISO 3166 alpha-2 code.
func (j Jurisdiction) Alpha2() Alpha2 {
	return Alpha2(j.index)
}

// Alpha3 returns the ISO 3166 alpha-3 code.
func (j Jurisdiction) Alpha3() Alpha3 {
	return Alpha3(j.index)
}

// String returns the alpha-2 code, the canonical string form.
func (j Jurisdiction) String() string {
	if def := lookup(j.index); def.valid() {
		return def.alpha2
	}
	return "undefined"
}
