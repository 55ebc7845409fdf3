package jurisdiction

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ErrUndefined is returned when the undefined jurisdiction is serialized.
var ErrUndefined = errors.New("undefined jurisdiction")

// MarshalText implements encoding.TextMarshaler.
// A jurisdiction is serialized as its bare alpha-2 code.
func (j Jurisdiction) MarshalText() ([]byte, error) {
	def := lookup(j.index)
	if j.index == 0 || !def.valid() {
		return nil, ErrUndefined
	}
	return []byte(def.alpha2), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Only known alpha-2 codes in their canonical upper case form are accepted.
func (j *Jurisdiction) UnmarshalText(text []byte) error {
	index, ok := lookupAlpha2(string(text))
	if !ok {
		return unknown("alpha-2 code", string(text))
	}
	j.index = index
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
// A jurisdiction is encoded as a text string holding its alpha-2 code.
func (j Jurisdiction) MarshalCBOR() ([]byte, error) {
	text, err := j.MarshalText()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(string(text))
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (j *Jurisdiction) UnmarshalCBOR(data []byte) error {
	var code string
	if err := cbor.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("decode jurisdiction: %w", err)
	}
	return j.UnmarshalText([]byte(code))
}
