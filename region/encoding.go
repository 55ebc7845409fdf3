package region

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Regions are serialized by their English name, eg. "Northern Europe".
// Deserialization also accepts the three digit M49 code.

// MarshalText implements encoding.TextMarshaler.
func (r Region) MarshalText() ([]byte, error) {
	info := r.info()
	if info == nil {
		return nil, fmt.Errorf("%w: region %d", ErrUnknownRegion, uint16(r))
	}
	return []byte(info.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (r Region) MarshalCBOR() ([]byte, error) {
	return marshalCBOR(r)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (r *Region) UnmarshalCBOR(data []byte) error {
	return unmarshalCBOR(data, r.UnmarshalText)
}

// MarshalText implements encoding.TextMarshaler.
func (s SubRegion) MarshalText() ([]byte, error) {
	info := s.info()
	if info == nil {
		return nil, fmt.Errorf("%w: sub-region %d", ErrUnknownRegion, uint16(s))
	}
	return []byte(info.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SubRegion) UnmarshalText(text []byte) error {
	parsed, err := ParseSubRegion(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (s SubRegion) MarshalCBOR() ([]byte, error) {
	return marshalCBOR(s)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (s *SubRegion) UnmarshalCBOR(data []byte) error {
	return unmarshalCBOR(data, s.UnmarshalText)
}

// MarshalText implements encoding.TextMarshaler.
func (ir IntermediateRegion) MarshalText() ([]byte, error) {
	info := ir.info()
	if info == nil {
		return nil, fmt.Errorf("%w: intermediate region %d", ErrUnknownRegion, uint16(ir))
	}
	return []byte(info.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ir *IntermediateRegion) UnmarshalText(text []byte) error {
	parsed, err := ParseIntermediateRegion(string(text))
	if err != nil {
		return err
	}
	*ir = parsed
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (ir IntermediateRegion) MarshalCBOR() ([]byte, error) {
	return marshalCBOR(ir)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (ir *IntermediateRegion) UnmarshalCBOR(data []byte) error {
	return unmarshalCBOR(data, ir.UnmarshalText)
}

type textMarshaler interface {
	MarshalText() ([]byte, error)
}

// marshalCBOR encodes the text form as a CBOR text string.
func marshalCBOR(v textMarshaler) ([]byte, error) {
	text, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(string(text))
}

func unmarshalCBOR(data []byte, unmarshalText func([]byte) error) error {
	var name string
	if err := cbor.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("decode region: %w", err)
	}
	return unmarshalText([]byte(name))
}
