package compiler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSource returns a small but complete source.
func testSource() *Source {
	return &Source{
		Regions: []RegionSource{
			{Code: "150", Name: "Europe"},
			{Code: "142", Name: "Asia"},
		},
		SubRegions: []SubRegionSource{
			{Code: "154", Name: "Northern Europe", Region: "150"},
			{Code: "155", Name: "Western Europe", Region: "150"},
			{Code: "034", Name: "Southern Asia", Region: "142"},
		},
		IntermediateRegions: []IntermediateRegionSource{
			{Code: "830", Name: "Channel Islands", SubRegion: "154"},
		},
		Countries: []CountrySource{
			{Name: "Norway", Alpha2: "NO", Alpha3: "NOR", CountryCode: "578", RegionCode: "150", SubRegionCode: "154"},
			{Name: "Austria", Alpha2: "AT", Alpha3: "AUT", CountryCode: "040", RegionCode: "150", SubRegionCode: "155"},
			{Name: "Guernsey", Alpha2: "GG", Alpha3: "GGY", CountryCode: "831", RegionCode: "150", SubRegionCode: "154", IntermediateRegionCode: "830"},
			{Name: "Antarctica", Alpha2: "AQ", Alpha3: "ATA", CountryCode: "010"},
			{Name: "India", Alpha2: "IN", Alpha3: "IND", CountryCode: "356", RegionCode: "142", SubRegionCode: "034"},
		},
	}
}

func requireViolation(t *testing.T, err error, check Check) *ValidationError {
	t.Helper()

	var verr *ValidationError
	require.Error(t, err)
	require.True(t, errors.As(err, &verr), "error must be a validation error: %s", err)
	assert.Equal(t, check, verr.Check, "unexpected check failed: %s", err)
	return verr
}

func TestParseSource(t *testing.T) {
	t.Parallel()

	const valid = `{
		"regions": [{"code": "150", "name": "Europe"}],
		"countries": [{"name": "Norway", "alpha-2": "NO", "alpha-3": "NOR", "country-code": "578", "region-code": "150"}]
	}`
	src, err := ParseSource([]byte(valid + "\n"))
	require.NoError(t, err)
	require.Len(t, src.Countries, 1)
	assert.Equal(t, "150", src.Countries[0].RegionCode)

	for name, data := range map[string]string{
		"second object":   valid + `{"countries": []}`,
		"trailing junk":   valid + "\n]",
		"unknown field":   `{"countries": [], "territories": []}`,
		"no countries":    `{"regions": []}`,
		"truncated input": valid[:len(valid)-3],
	} {
		_, err := ParseSource([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestCompile(t *testing.T) {
	t.Parallel()

	ds, err := Compile(testSource(), nil, "abc")
	require.NoError(t, err)

	assert.Equal(t, "abc", ds.Digest)
	assert.Equal(t, "abc", ds.Lock.Digest)
	assert.Len(t, ds.Countries, 5)
	assert.Equal(t, uint16(5), ds.MaxIndex())

	// Indices are assigned in declaration order.
	for i, c := range ds.Countries {
		assert.Equal(t, uint16(i+1), c.Index) //nolint:gosec
	}
	no := ds.Countries[0]
	assert.Equal(t, Country{
		Index:     1,
		Alpha2:    "NO",
		Alpha3:    "NOR",
		Numeric:   578,
		Name:      "Norway",
		Region:    150,
		SubRegion: 154,
	}, no)
	assert.Equal(t, uint16(830), ds.Countries[2].IntermediateRegion)

	// Antarctica has no classification.
	aq := ds.Countries[3]
	assert.Equal(t, "AQ", aq.Alpha2)
	assert.Zero(t, aq.Region)
	assert.Zero(t, aq.SubRegion)
	assert.Zero(t, aq.IntermediateRegion)

	// Table has the reserved zero slot.
	table := ds.Table()
	assert.Len(t, table, 6)
	assert.Zero(t, table[0])
	assert.Equal(t, "IN", table[5].Alpha2)
}

func TestChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(src *Source)
		check  Check
		record int
	}{
		{
			name:   "lower case alpha-2",
			modify: func(src *Source) { src.Countries[1].Alpha2 = "at" },
			check:  CheckAlpha2,
			record: 2,
		},
		{
			name:   "long alpha-2",
			modify: func(src *Source) { src.Countries[1].Alpha2 = "AUT" },
			check:  CheckAlpha2,
			record: 2,
		},
		{
			name:   "duplicate alpha-2",
			modify: func(src *Source) { src.Countries[4].Alpha2 = "NO" },
			check:  CheckAlpha2,
			record: 5,
		},
		{
			name:   "malformed alpha-3",
			modify: func(src *Source) { src.Countries[0].Alpha3 = "N0R" },
			check:  CheckAlpha3,
			record: 1,
		},
		{
			name:   "duplicate alpha-3",
			modify: func(src *Source) { src.Countries[2].Alpha3 = "AUT" },
			check:  CheckAlpha3,
			record: 3,
		},
		{
			name:   "short numeric",
			modify: func(src *Source) { src.Countries[1].CountryCode = "40" },
			check:  CheckNumeric,
			record: 2,
		},
		{
			name:   "non digit numeric",
			modify: func(src *Source) { src.Countries[1].CountryCode = "04a" },
			check:  CheckNumeric,
			record: 2,
		},
		{
			name:   "duplicate numeric",
			modify: func(src *Source) { src.Countries[3].CountryCode = "578" },
			check:  CheckNumeric,
			record: 4,
		},
		{
			name:   "unknown region",
			modify: func(src *Source) { src.Countries[4].RegionCode = "002" },
			check:  CheckRegion,
			record: 5,
		},
		{
			name:   "sub-region of other region",
			modify: func(src *Source) { src.Countries[4].SubRegionCode = "154" },
			check:  CheckRegion,
			record: 5,
		},
		{
			name: "sub-region without region",
			modify: func(src *Source) {
				src.Countries[3].SubRegionCode = "154"
			},
			check:  CheckRegion,
			record: 4,
		},
		{
			name:   "intermediate region of other sub-region",
			modify: func(src *Source) { src.Countries[1].IntermediateRegionCode = "830" },
			check:  CheckRegion,
			record: 2,
		},
		{
			name:   "sub-region references unknown region",
			modify: func(src *Source) { src.SubRegions[2].Region = "009" },
			check:  CheckRegion,
		},
		{
			name:   "duplicate region name",
			modify: func(src *Source) { src.Regions[1].Name = "Europe" },
			check:  CheckRegion,
		},
		{
			name:   "missing name",
			modify: func(src *Source) { src.Countries[3].Name = "" },
			check:  CheckName,
			record: 4,
		},
		{
			name:   "blank name",
			modify: func(src *Source) { src.Countries[3].Name = " \t" },
			check:  CheckName,
			record: 4,
		},
		{
			name:   "duplicate name",
			modify: func(src *Source) { src.Countries[1].Name = "Norway" },
			check:  CheckName,
			record: 2,
		},
		{
			name:   "name equal after folding",
			modify: func(src *Source) { src.Countries[4].Name = "  NÓRWAY " },
			check:  CheckName,
			record: 5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := testSource()
			tc.modify(src)
			_, err := Compile(src, nil, "")
			verr := requireViolation(t, err, tc.check)
			assert.Equal(t, tc.record, verr.Record)
		})
	}
}

func TestCheckOrder(t *testing.T) {
	t.Parallel()

	// Violates all checks, alpha-3 only at a later record.
	src := testSource()
	src.Countries[0].Alpha3 = "BAD!"
	src.Countries[0].CountryCode = "x"
	src.Countries[0].RegionCode = "999"
	src.Countries[4].Alpha2 = "NO"
	lock := &IndexLock{Entries: []LockEntry{{Index: 1, Alpha2: "NO"}, {Index: 1, Alpha2: "AT"}}}

	_, err := Compile(src, lock, "")
	requireViolation(t, err, CheckAlpha2)

	src.Countries[4].Alpha2 = "IN"
	_, err = Compile(src, lock, "")
	requireViolation(t, err, CheckAlpha3)

	src.Countries[0].Alpha3 = "NOR"
	_, err = Compile(src, lock, "")
	requireViolation(t, err, CheckNumeric)

	src.Countries[0].CountryCode = "578"
	_, err = Compile(src, lock, "")
	requireViolation(t, err, CheckRegion)

	src.Countries[0].RegionCode = "150"
	_, err = Compile(src, lock, "")
	requireViolation(t, err, CheckIndex)

	lock.Entries[1].Index = 2
	src.Countries[1].Name = "Norway"
	_, err = Compile(src, lock, "")
	requireViolation(t, err, CheckName)

	src.Countries[1].Name = "Austria"
	_, err = Compile(src, lock, "")
	assert.NoError(t, err)
}

func TestCompileRealData(t *testing.T) {
	t.Parallel()

	src, digest, err := LoadSource("../data/country-region.json")
	require.NoError(t, err)
	lock, err := LoadIndexLock("../data/index.yaml")
	require.NoError(t, err)

	assert.True(t, lock.Current(digest), "index lock must be up to date with the data source")

	ds, err := Compile(src, lock, digest)
	require.NoError(t, err)
	assert.Len(t, ds.Countries, len(src.Countries))
	assert.Equal(t, lock.Entries, ds.Lock.Entries, "compiling the committed data must not change the lock")
}
