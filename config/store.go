package config

import (
	"github.com/mitchellh/copystructure"
)

// Store holds all configuration in a storable format.
type Store struct {
	API API `json:"api,omitempty" yaml:"api,omitempty"`
	Log Log `json:"log,omitempty" yaml:"log,omitempty"`

	// SupportedConfig limits the jurisdictions served by the API.
	// Entries are alpha-2 or alpha-3 codes, or region names or M49 codes.
	// An empty list supports all jurisdictions.
	SupportedConfig []string `json:"supported,omitempty" yaml:"supported,omitempty"`
}

// API defines the configuration of the lookup API.
type API struct {
	// Listen is the IP and port to listen on.
	Listen string `json:"listen,omitempty" yaml:"listen,omitempty"`
	// DisableMetrics disables the metrics endpoint.
	DisableMetrics bool `json:"disableMetrics,omitempty" yaml:"disableMetrics,omitempty"`
}

// Log defines the logging configuration.
type Log struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
}

// Clone returns a full copy the store.
func (s Store) Clone() (Store, error) {
	copied, err := copystructure.Copy(s)
	if err != nil {
		return Store{}, err
	}
	return copied.(Store), nil //nolint:forcetypeassert
}
