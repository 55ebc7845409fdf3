package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned for config files other than JSON or YAML.
var ErrUnknownFileType = errors.New("unknown config file type")

type fileFormat uint8

const (
	formatJSON fileFormat = iota + 1
	formatYAML
)

// formatOf returns the file format by extension.
func formatOf(filename string) (fileFormat, error) {
	switch filepath.Ext(filename) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFileType, filename)
	}
}

// LoadConfig loads and parses the config from the given JSON or YAML file.
func LoadConfig(filename string) (*Config, error) {
	format, err := formatOf(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file at %s: %w", filename, err)
	}

	store := &Store{}
	switch format {
	case formatJSON:
		err = json.Unmarshal(data, store)
	case formatYAML:
		err = yaml.Unmarshal(data, store)
	}
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", filename, err)
	}

	return store.Parse()
}

// SaveTo writes the config store to the given JSON or YAML file.
// Existing files are not overwritten.
func (c *Config) SaveTo(filename string) error {
	format, err := formatOf(filename)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case formatJSON:
		data, err = json.MarshalIndent(c.Store, "", "  ")
		data = append(data, '\n')
	case formatYAML:
		data, err = yaml.Marshal(c.Store)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o0600)
	if err != nil {
		return fmt.Errorf("create config file at %s: %w", filename, err)
	}
	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(filename)
		return fmt.Errorf("write config to %s: %w", filename, err)
	}
	return nil
}
