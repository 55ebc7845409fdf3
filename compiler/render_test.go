package compiler

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	ds, err := Compile(testSource(), nil, "0123")
	require.NoError(t, err)
	files, err := Render(ds)
	require.NoError(t, err)
	require.Len(t, files, 2)

	// Both files must be valid Go.
	fset := token.NewFileSet()
	defs, err := parser.ParseFile(fset, DefinitionsFile, files[DefinitionsFile], parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "jurisdiction", defs.Name.Name)
	assert.True(t, ast.IsGenerated(defs))

	regions, err := parser.ParseFile(fset, RegionsFile, files[RegionsFile], parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "region", regions.Name.Name)
	assert.True(t, ast.IsGenerated(regions))

	definitions := string(files[DefinitionsFile])
	assert.Contains(t, definitions, `const DataDigest = "0123"`)
	assert.Contains(t, definitions, "NO Alpha2 = 1\n")
	assert.Contains(t, definitions, "NOR Alpha3 = 1\n")
	assert.Contains(t, definitions, "IND Alpha3 = 5\n")
	assert.Contains(t, definitions, `{alpha2: "GG", alpha3: "GGY", numeric: 831, name: "Guernsey"},`)

	regionSrc := string(files[RegionsFile])
	assert.Contains(t, regionSrc, "ChannelIslands IntermediateRegion = 830\n")
	assert.Contains(t, regionSrc, "{region: Europe, subRegion: NorthernEurope, intermediateRegion: ChannelIslands},")
	// Index 0 and Antarctica.
	assert.Equal(t, 2, strings.Count(regionSrc, "\t{},\n"))
}

func TestRenderMatchesCommitted(t *testing.T) {
	t.Parallel()

	src, digest, err := LoadSource("../data/country-region.json")
	require.NoError(t, err)
	lock, err := LoadIndexLock("../data/index.yaml")
	require.NoError(t, err)
	ds, err := Compile(src, lock, digest)
	require.NoError(t, err)
	files, err := Render(ds)
	require.NoError(t, err)

	for name, data := range files {
		committed, err := os.ReadFile("../" + name)
		require.NoError(t, err)
		assert.Equal(t, string(committed), string(data), "%s is out of date, run go generate", name)
	}
}

func TestRenderIdentifiers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SouthEasternAsia", Identifier("South-eastern Asia"))
	assert.Equal(t, "LatinAmericaAndTheCaribbean", Identifier("Latin America and the Caribbean"))
	assert.Equal(t, "SubSaharanAfrica", Identifier("Sub-Saharan Africa"))

	tests := map[string]func(src *Source){
		"reserved": func(src *Source) {
			src.Regions[1].Name = "Regions"
		},
		"not exported": func(src *Source) {
			src.Regions[1].Name = "1st Asia"
		},
		"collision": func(src *Source) {
			src.SubRegions[1].Name = "Europe"
		},
	}
	for name, modify := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			src := testSource()
			modify(src)
			ds, err := Compile(src, nil, "")
			require.NoError(t, err)
			_, err = Render(ds)
			assert.True(t, errors.Is(err, ErrIdentifier), "unexpected error: %v", err)
		})
	}
}
