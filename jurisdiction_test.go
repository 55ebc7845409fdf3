package jurisdiction

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllJurisdictions(t *testing.T) {
	t.Parallel()

	all := All()
	assert.Len(t, all, Count())
	assert.Equal(t, 249, Count())

	var lastIndex uint16
	for _, j := range all {
		assert.True(t, j.IsValid(), "%d must be valid", j.Index())
		assert.Greater(t, j.Index(), lastIndex, "must be in canonical order")
		lastIndex = j.Index()

		// Every representation resolves to the same jurisdiction.
		a2 := j.Alpha2()
		a3 := j.Alpha3()
		assert.Len(t, a2.String(), 2)
		assert.Len(t, a3.String(), 3)
		assert.Equal(t, j, a2.Jurisdiction())
		assert.Equal(t, j, a3.Jurisdiction())
		assert.Equal(t, j, MustParse(a2.String()))
		assert.Equal(t, j, MustParse(a3.String()))

		byNumeric, err := FromNumeric(j.CountryCode())
		assert.NoError(t, err)
		assert.Equal(t, j, byNumeric)

		byIndex, err := FromIndex(j.Index())
		assert.NoError(t, err)
		assert.Equal(t, j, byIndex)

		byName, err := ParseName(j.Name())
		assert.NoError(t, err)
		assert.Equal(t, j, byName)

		assert.True(t, j.Is(a2))
		assert.True(t, j.Is(a3))
		assert.True(t, j.Is(j))
		assert.Equal(t, a2.String(), j.String())
	}
}

func TestNorway(t *testing.T) {
	t.Parallel()

	no, err := Parse("NO")
	require.NoError(t, err)
	assert.Equal(t, "Norway", no.Name())
	assert.Equal(t, uint16(578), no.CountryCode())
	assert.Equal(t, "NOR", no.Alpha3().String())
	assert.Equal(t, NO, no.Alpha2())
	assert.Equal(t, NOR, no.Alpha3())
	assert.True(t, no.Is(NO))
	assert.True(t, no.Is(NOR))
	assert.False(t, no.Is(SE))

	// Alpha2 and Alpha3 constants share the canonical index.
	assert.Equal(t, uint16(NO), uint16(NOR))
	assert.Equal(t, uint16(NO), no.Index())

	for _, s := range []string{"no", "No", "NOR", "nor"} {
		j, err := Parse(s)
		assert.NoError(t, err, s)
		assert.Equal(t, no, j, s)
	}
	j, err := ParseNumeric("578")
	assert.NoError(t, err)
	assert.Equal(t, no, j)
}

func TestLeadingZeroNumeric(t *testing.T) {
	t.Parallel()

	af, err := ParseNumeric("004")
	require.NoError(t, err)
	assert.Equal(t, AF.Jurisdiction(), af)

	af, err = ParseNumeric("4")
	require.NoError(t, err)
	assert.Equal(t, AF.Jurisdiction(), af)
}

func TestUnknown(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "ZZ", "ZZZ", "N", "NORW", "N0", "ÅÅ", "\x00\x00"} {
		_, err := Parse(s)
		assert.True(t, errors.Is(err, ErrUnknownJurisdiction), "%q: %v", s, err)
	}
	for _, s := range []string{"", "0", "999", "1000", "-1", "abc"} {
		_, err := ParseNumeric(s)
		assert.True(t, errors.Is(err, ErrUnknownJurisdiction), "%q: %v", s, err)
	}
	_, err := FromNumeric(0)
	assert.True(t, errors.Is(err, ErrUnknownJurisdiction))
	_, err = FromNumeric(65535)
	assert.True(t, errors.Is(err, ErrUnknownJurisdiction))
	_, err = FromIndex(0)
	assert.True(t, errors.Is(err, ErrUnknownJurisdiction))
	_, err = FromIndex(uint16(Count() + 1)) //nolint:gosec
	assert.True(t, errors.Is(err, ErrUnknownJurisdiction))
	_, err = ParseAlpha2("ZZ")
	assert.True(t, errors.Is(err, ErrUnknownJurisdiction))
	_, err = ParseAlpha3("ZZZ")
	assert.True(t, errors.Is(err, ErrUnknownJurisdiction))
	_, err = ParseName("Atlantis")
	assert.True(t, errors.Is(err, ErrUnknownJurisdiction))

	assert.Panics(t, func() { MustParse("ZZ") })
}

func TestUndefined(t *testing.T) {
	t.Parallel()

	var j Jurisdiction
	assert.False(t, j.IsValid())
	assert.Zero(t, j.Index())
	assert.Empty(t, j.Name())
	assert.Zero(t, j.CountryCode())
	assert.Equal(t, "undefined", j.String())
	assert.False(t, j.Is(j))
	assert.False(t, j.Is(nil))
	assert.False(t, MustParse("SE").Is(nil))
	assert.False(t, Alpha2(0).IsValid())
	assert.Equal(t, "Alpha2(0)", Alpha2(0).String())
	assert.Equal(t, "Alpha3(60000)", Alpha3(60000).String())
	assert.False(t, Alpha3(60000).Jurisdiction().IsValid())
}

func TestParseName(t *testing.T) {
	t.Parallel()

	tests := map[string]Alpha2{
		"Norway":                   NO,
		"norway":                   NO,
		"  NORWAY ":                NO,
		"Côte d'Ivoire":            CI,
		"cote d'ivoire":            CI,
		"Curacao":                  CW,
		"aland islands":            AX,
		"Saint  Barthelemy":        BL,
		"turkiye":                  TR,
		"United States of America": US,
	}
	for name, expected := range tests {
		j, err := ParseName(name)
		if assert.NoError(t, err, name) {
			assert.Equal(t, expected.Jurisdiction(), j, name)
		}
	}

	for _, name := range []string{"", "   "} {
		_, err := ParseName(name)
		assert.ErrorIs(t, err, ErrUnknownJurisdiction, "%q", name)
	}
}

func TestRandomCodes(t *testing.T) {
	t.Parallel()

	known := make(map[string]Jurisdiction, Count())
	for _, j := range All() {
		known[j.Alpha2().String()] = j
		known[j.Alpha3().String()] = j
	}

	for range 1000 {
		var code strings.Builder
		for range gofakeit.Number(2, 3) {
			code.WriteString(gofakeit.Letter())
		}

		j, err := Parse(code.String())
		expected, ok := known[strings.ToUpper(code.String())]
		if ok {
			assert.NoError(t, err, code.String())
			assert.Equal(t, expected, j, code.String())
		} else {
			assert.True(t, errors.Is(err, ErrUnknownJurisdiction), code.String())
			assert.False(t, j.IsValid())
		}
	}

	for range 1000 {
		numeric := gofakeit.Number(0, 999)
		j, err := FromNumeric(uint16(numeric)) //nolint:gosec
		if err == nil {
			assert.Equal(t, uint16(numeric), j.CountryCode()) //nolint:gosec
			assert.Equal(t, j, MustParse(j.String()))
		}
		_, textErr := ParseNumeric(strconv.Itoa(numeric))
		assert.Equal(t, err == nil, textErr == nil)
	}
}

func TestConcurrentLookups(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for _, j := range All() {
				if !j.Is(MustParse(j.Alpha3().String())) {
					t.Errorf("lookup of %s failed", j)
				}
			}
		}()
	}
	wg.Wait()
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{"NO", "nor", "ZZ", "", "Å", "578"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		j, err := Parse(s)
		if err != nil {
			if !errors.Is(err, ErrUnknownJurisdiction) {
				t.Fatalf("unexpected error type: %s", err)
			}
			return
		}
		if !j.IsValid() {
			t.Fatalf("%q parsed into invalid jurisdiction", s)
		}
		if !strings.EqualFold(j.Alpha2().String(), s) && !strings.EqualFold(j.Alpha3().String(), s) {
			t.Fatalf("%q parsed into %s", s, j)
		}
	})
}

func BenchmarkParse(b *testing.B) {
	for b.Loop() {
		_, _ = Parse("nor")
	}
}
