// Package jurisdiction provides lightweight static information about the
// countries and areas of the world.
//
// Every jurisdiction is identified by a Jurisdiction value, a small handle
// that only holds the canonical index of the jurisdiction. All other
// information is looked up in static tables that are generated from
// data/country-region.json:
//   - ISO 3166 alpha-2 and alpha-3 codes (Alpha2, Alpha3)
//   - ISO 3166 numeric country code
//   - English short name
//
// UN M49 region classifications live in the separate region package.
//
// Canonical indices are recorded in data/index.yaml and never change for a
// code once assigned, so they may be persisted. On API boundaries a
// Jurisdiction is represented by its alpha-2 code.
//
// All tables are immutable after initialization and every function of this
// package is safe for concurrent use.
package jurisdiction

//go:generate go run ./cmd/jurisdiction generate --data data/country-region.json --lock data/index.yaml --out .
