// Package compiler turns the raw jurisdiction data source into the
// generated lookup tables of the jurisdiction and region packages.
//
// Compilation validates the source, assigns stable canonical indices
// through the index lock and renders Go source. Any violation aborts
// compilation and nothing is written.
package compiler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Source is the raw data source.
type Source struct {
	Regions             []RegionSource             `json:"regions"`
	SubRegions          []SubRegionSource          `json:"sub-regions"`
	IntermediateRegions []IntermediateRegionSource `json:"intermediate-regions"`
	Countries           []CountrySource            `json:"countries"`
}

// RegionSource defines a M49 region.
type RegionSource struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SubRegionSource defines a M49 sub-region and the region it belongs to.
type SubRegionSource struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// IntermediateRegionSource defines a M49 intermediate region and the
// sub-region it belongs to.
type IntermediateRegionSource struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	SubRegion string `json:"sub-region"`
}

// CountrySource defines a country or area.
// Region fields hold M49 codes and may be empty.
type CountrySource struct {
	Name                   string `json:"name"`
	Alpha2                 string `json:"alpha-2"`
	Alpha3                 string `json:"alpha-3"`
	CountryCode            string `json:"country-code"`
	RegionCode             string `json:"region-code,omitempty"`
	SubRegionCode          string `json:"sub-region-code,omitempty"`
	IntermediateRegionCode string `json:"intermediate-region-code,omitempty"`
}

// ParseSource parses the JSON data source.
// Unknown fields and trailing data are rejected.
func ParseSource(data []byte) (*Source, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	src := &Source{}
	if err := dec.Decode(src); err != nil {
		return nil, fmt.Errorf("decode source: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode source: unexpected data after top-level object")
	}
	if len(src.Countries) == 0 {
		return nil, errors.New("decode source: no countries defined")
	}
	return src, nil
}

// LoadSource reads and parses the data source at the given location.
// It also returns the digest of the raw file.
func LoadSource(filename string) (src *Source, digest string, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, "", fmt.Errorf("read source at %s: %w", filename, err)
	}
	src, err = ParseSource(data)
	if err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", filename, err)
	}
	return src, Digest(data), nil
}
