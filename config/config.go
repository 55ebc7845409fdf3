package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"slices"
	"strings"

	"github.com/mycoria/jurisdiction"
	"github.com/mycoria/jurisdiction/region"
)

// Config holds initialized configuration.
type Config struct {
	Store

	APIListen netip.AddrPort
	LogLevel  slog.Level

	// supported is nil if all jurisdictions are supported.
	supported map[jurisdiction.Jurisdiction]struct{}
}

// Parse parses a config definition and return an initialized config.
func (s Store) Parse() (*Config, error) {
	return s.parse(false)
}

// MakeTestConfig parses and returns the given config store with loosened checks.
// If anything fails, it panics.
func MakeTestConfig(s Store) *Config {
	c, err := s.parse(true)
	if err != nil {
		panic("test config invalid: " + err.Error())
	}
	return c
}

func (s Store) parse(test bool) (*Config, error) {
	c := &Config{
		Store:    s,
		LogLevel: slog.LevelInfo,
	}

	// API.
	listen := c.API.Listen
	if listen == "" {
		listen = DefaultAPIListen
	}
	var err error
	c.APIListen, err = netip.ParseAddrPort(listen)
	if err != nil {
		return nil, fmt.Errorf("api.listen %q is not a valid IP and port", listen)
	}
	if !test && c.APIListen.Port() == 0 {
		return nil, errors.New("api.listen must have a port")
	}

	// Logging.
	if c.Log.Level != "" {
		if err := c.LogLevel.UnmarshalText([]byte(c.Log.Level)); err != nil {
			return nil, fmt.Errorf("log.level %q is invalid: %w", c.Log.Level, err)
		}
	}

	// Supported jurisdictions.
	if len(c.SupportedConfig) > 0 {
		c.supported = make(map[jurisdiction.Jurisdiction]struct{})
		for i, entry := range c.SupportedConfig {
			members, err := resolveSupported(entry)
			if err != nil {
				return nil, fmt.Errorf("supported.#%d is invalid: %w", i+1, err)
			}
			for _, j := range members {
				c.supported[j] = struct{}{}
			}
		}
	}

	return c, nil
}

// resolveSupported returns the jurisdictions denoted by a supported entry.
// Entries are alpha-2 or alpha-3 codes, or region names or M49 codes.
func resolveSupported(entry string) ([]jurisdiction.Jurisdiction, error) {
	entry = strings.TrimSpace(entry)

	if j, err := jurisdiction.Parse(entry); err == nil {
		return []jurisdiction.Jurisdiction{j}, nil
	}
	if r, err := region.Parse(entry); err == nil {
		return r.Jurisdictions(), nil
	}
	if s, err := region.ParseSubRegion(entry); err == nil {
		return s.Jurisdictions(), nil
	}
	if ir, err := region.ParseIntermediateRegion(entry); err == nil {
		return ir.Jurisdictions(), nil
	}
	return nil, fmt.Errorf("%q is neither a jurisdiction code nor a region", jurisdiction.SafeString(entry))
}

// Supports returns whether the given jurisdiction is supported.
func (c *Config) Supports(j jurisdiction.Jurisdiction) bool {
	if !j.IsValid() {
		return false
	}
	if c.supported == nil {
		return true
	}
	_, ok := c.supported[j]
	return ok
}

// Supported returns all supported jurisdictions in canonical order.
func (c *Config) Supported() []jurisdiction.Jurisdiction {
	all := jurisdiction.All()
	if c.supported == nil {
		return all
	}
	return slices.DeleteFunc(all, func(j jurisdiction.Jurisdiction) bool {
		_, ok := c.supported[j]
		return !ok
	})
}
