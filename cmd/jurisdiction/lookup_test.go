package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycoria/jurisdiction"
	"github.com/mycoria/jurisdiction/config"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	for _, query := range []string{"NO", "nor", "578", "Norway", "norway"} {
		j, err := resolve(query)
		if assert.NoError(t, err, query) {
			assert.True(t, j.Is(jurisdiction.NO), query)
		}
	}
	for _, query := range []string{"", "ZZ", "5780", "Atlantis"} {
		_, err := resolve(query)
		assert.ErrorIs(t, err, jurisdiction.ErrUnknownJurisdiction, query)
	}

	members, err := regionJurisdictions("Channel Islands")
	assert.NoError(t, err)
	assert.Len(t, members, 2)
	_, err = regionJurisdictions("Atlantis")
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	c, err := makeDefaultConfig().Parse()
	require.NoError(t, err)

	// Written defaults load back unchanged.
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, c.SaveTo(filename))
	loaded, err := config.LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, c.Store, loaded.Store)
	assert.Equal(t, c.APIListen, loaded.APIListen)
}

func TestConfigDefaultsOut(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "jurisdiction.json")
	configOut = filename
	t.Cleanup(func() { configOut = "" })

	require.NoError(t, configDefaults(configDefaultsCmd, nil))
	loaded, err := config.LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, makeDefaultConfig(), loaded.Store)

	// Second run must not overwrite.
	assert.Error(t, configDefaults(configDefaultsCmd, nil))
}
