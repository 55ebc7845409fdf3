package region

import (
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classified struct {
	Region             Region             `json:"region"             cbor:"region"`
	SubRegion          SubRegion          `json:"subRegion"          cbor:"subRegion"`
	IntermediateRegion IntermediateRegion `json:"intermediateRegion" cbor:"intermediateRegion"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	in := classified{Europe, NorthernEurope, ChannelIslands}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"region":"Europe","subRegion":"Northern Europe","intermediateRegion":"Channel Islands"}`,
		string(data),
	)

	var out classified
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	// Codes and any case are accepted.
	require.NoError(t, json.Unmarshal(
		[]byte(`{"region":"150","subRegion":"northern europe","intermediateRegion":"830"}`),
		&out,
	))
	assert.Equal(t, in, out)

	// Unknown names are rejected.
	err = json.Unmarshal([]byte(`{"region":"Atlantis"}`), &out)
	assert.ErrorIs(t, err, ErrUnknownRegion)
}

func TestCBOR(t *testing.T) {
	t.Parallel()

	in := classified{Africa, SubSaharanAfrica, WesternAfrica}
	data, err := cbor.Marshal(in)
	require.NoError(t, err)

	var names map[string]string
	require.NoError(t, cbor.Unmarshal(data, &names))
	assert.Equal(t, "Sub-Saharan Africa", names["subRegion"])

	var out classified
	require.NoError(t, cbor.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	// Region names must be text strings.
	numeric, err := cbor.Marshal(map[string]uint16{"region": 150})
	require.NoError(t, err)
	assert.Error(t, cbor.Unmarshal(numeric, &out))
}

func TestMarshalUnknown(t *testing.T) {
	t.Parallel()

	_, err := Region(0).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownRegion)
	_, err = SubRegion(999).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownRegion)
	_, err = IntermediateRegion(1).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownRegion)

	_, err = json.Marshal(classified{})
	assert.Error(t, err)
}
