package jurisdiction

import (
	"fmt"
)

// Alpha2 is a two letter ISO 3166 country code.
// The value of an Alpha2 is the canonical index of its jurisdiction.
type Alpha2 uint16

// Alpha3 is a three letter ISO 3166 country code.
// The value of an Alpha3 is the canonical index of its jurisdiction.
type Alpha3 uint16

// ParseAlpha2 returns the Alpha2 code of the given string.
// Matching is case-insensitive.
func ParseAlpha2(s string) (Alpha2, error) {
	index, ok := lookupAlpha2(upperASCII(s))
	if !ok {
		return 0, unknown("alpha-2 code", s)
	}
	return Alpha2(index), nil
}

// ParseAlpha3 returns the Alpha3 code of the given string.
// Matching is case-insensitive.
func ParseAlpha3(s string) (Alpha3, error) {
	index, ok := lookupAlpha3(upperASCII(s))
	if !ok {
		return 0, unknown("alpha-3 code", s)
	}
	return Alpha3(index), nil
}

func lookupAlpha2(code string) (index uint16, ok bool) {
	slot, ok := alpha2Slot(code)
	if !ok {
		return 0, false
	}
	index = tables().byAlpha2[slot]
	return index, index != 0
}

func lookupAlpha3(code string) (index uint16, ok bool) {
	if len(code) != 3 {
		return 0, false
	}
	index, ok = tables().byAlpha3[code]
	return index, ok
}

// Jurisdiction returns the jurisdiction of the code.
func (a Alpha2) Jurisdiction() Jurisdiction {
	return fromIndex(uint16(a))
}

// IsValid returns whether the code is assigned.
func (a Alpha2) IsValid() bool {
	return lookup(uint16(a)).valid()
}

// String returns the two letter code.
func (a Alpha2) String() string {
	if def := lookup(uint16(a)); def.valid() {
		return def.alpha2
	}
	return fmt.Sprintf("Alpha2(%d)", uint16(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a Alpha2) MarshalText() ([]byte, error) {
	def := lookup(uint16(a))
	if !def.valid() {
		return nil, fmt.Errorf("%w: alpha-2 index %d", ErrUnknownJurisdiction, uint16(a))
	}
	return []byte(def.alpha2), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Only the canonical upper case form is accepted.
func (a *Alpha2) UnmarshalText(text []byte) error {
	index, ok := lookupAlpha2(string(text))
	if !ok {
		return unknown("alpha-2 code", string(text))
	}
	*a = Alpha2(index)
	return nil
}

// Jurisdiction returns the jurisdiction of the code.
func (a Alpha3) Jurisdiction() Jurisdiction {
	return fromIndex(uint16(a))
}

// IsValid returns whether the code is assigned.
func (a Alpha3) IsValid() bool {
	return lookup(uint16(a)).valid()
}

// String returns the three letter code.
func (a Alpha3) String() string {
	if def := lookup(uint16(a)); def.valid() {
		return def.alpha3
	}
	return fmt.Sprintf("Alpha3(%d)", uint16(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a Alpha3) MarshalText() ([]byte, error) {
	def := lookup(uint16(a))
	if !def.valid() {
		return nil, fmt.Errorf("%w: alpha-3 index %d", ErrUnknownJurisdiction, uint16(a))
	}
	return []byte(def.alpha3), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Only the canonical upper case form is accepted.
func (a *Alpha3) UnmarshalText(text []byte) error {
	index, ok := lookupAlpha3(string(text))
	if !ok {
		return unknown("alpha-3 code", string(text))
	}
	*a = Alpha3(index)
	return nil
}
