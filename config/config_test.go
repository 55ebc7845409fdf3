package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycoria/jurisdiction"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	c, err := Store{}.Parse()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIListen, c.APIListen.String())
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
	assert.Len(t, c.Supported(), jurisdiction.Count())
	assert.True(t, c.Supports(jurisdiction.MustParse("NO")))
	assert.False(t, c.Supports(jurisdiction.Jurisdiction{}))
}

func TestSupported(t *testing.T) {
	t.Parallel()

	c, err := Store{
		SupportedConfig: []string{"se", "NOR", "Channel Islands", "155"},
	}.Parse()
	require.NoError(t, err)

	for _, code := range []string{"SE", "NO", "GG", "JE", "AT", "DE", "FR"} {
		assert.True(t, c.Supports(jurisdiction.MustParse(code)), code)
	}
	for _, code := range []string{"FI", "US", "IM", "AQ"} {
		assert.False(t, c.Supports(jurisdiction.MustParse(code)), code)
	}

	supported := c.Supported()
	for i := 1; i < len(supported); i++ {
		assert.Less(t, supported[i-1].Index(), supported[i].Index(), "must be in canonical order")
	}
	for _, j := range supported {
		assert.True(t, c.Supports(j))
	}
}

func TestInvalid(t *testing.T) {
	t.Parallel()

	stores := map[string]Store{
		"listen address":    {API: API{Listen: "localhost"}},
		"listen port":       {API: API{Listen: "127.0.0.1:0"}},
		"log level":         {Log: Log{Level: "loud"}},
		"unknown supported": {SupportedConfig: []string{"NO", "Atlantis"}},
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := store.Parse()
			assert.Error(t, err)
		})
	}

	// Test configs may listen on any port.
	c := MakeTestConfig(Store{API: API{Listen: "127.0.0.1:0"}})
	assert.Zero(t, c.APIListen.Port())
	assert.Panics(t, func() {
		MakeTestConfig(Store{Log: Log{Level: "loud"}})
	})
}

func TestLoadAndSave(t *testing.T) {
	t.Parallel()

	store := Store{
		API:             API{Listen: "[::1]:8080", DisableMetrics: true},
		Log:             Log{Level: "debug"},
		SupportedConfig: []string{"Europe", "US"},
	}
	c, err := store.Parse()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)

	dir := t.TempDir()
	for _, name := range []string{"config.yaml", "config.yml", "config.json"} {
		filename := filepath.Join(dir, name)
		require.NoError(t, c.SaveTo(filename), name)

		loaded, err := LoadConfig(filename)
		require.NoError(t, err, name)
		assert.Equal(t, store, loaded.Store, name)
		assert.Equal(t, c.Supported(), loaded.Supported(), name)
	}

	// Existing files are kept.
	err = c.SaveTo(filepath.Join(dir, "config.yaml"))
	assert.ErrorIs(t, err, os.ErrExist)

	assert.ErrorIs(t, c.SaveTo(filepath.Join(dir, "config.toml")), ErrUnknownFileType)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), nil, 0o0600))
	_, err = LoadConfig(filepath.Join(dir, "config.toml"))
	assert.ErrorIs(t, err, ErrUnknownFileType)
	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	t.Parallel()

	store := Store{SupportedConfig: []string{"NO"}}
	cloned, err := store.Clone()
	require.NoError(t, err)
	assert.Equal(t, store, cloned)

	cloned.SupportedConfig[0] = "SE"
	assert.Equal(t, "NO", store.SupportedConfig[0])
}
