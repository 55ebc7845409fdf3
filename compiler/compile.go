package compiler

import (
	"slices"
)

// Dataset is the validated, indexed form of a Source.
type Dataset struct {
	// Digest is the digest of the raw source.
	Digest string

	// Countries holds all countries, ordered by canonical index.
	Countries []Country

	Regions             []Region
	SubRegions          []SubRegion
	IntermediateRegions []IntermediateRegion

	// Lock is the index lock updated for this dataset.
	Lock *IndexLock
}

// Country is a validated country record.
// Region fields hold M49 codes, 0 means unclassified.
type Country struct {
	Index              uint16
	Alpha2             string
	Alpha3             string
	Numeric            uint16
	Name               string
	Region             uint16
	SubRegion          uint16
	IntermediateRegion uint16
}

// Region is a validated M49 region.
type Region struct {
	Code uint16
	Name string
}

// SubRegion is a validated M49 sub-region.
type SubRegion struct {
	Code   uint16
	Name   string
	Region uint16
}

// IntermediateRegion is a validated M49 intermediate region.
type IntermediateRegion struct {
	Code      uint16
	Name      string
	SubRegion uint16
}

// Compile validates the source and assigns canonical indices using the
// given lock, which is not modified. The checks run in the order of the
// Check constants and the first violation is returned as *ValidationError.
func Compile(src *Source, lock *IndexLock, digest string) (*Dataset, error) {
	if lock == nil {
		lock = &IndexLock{}
	}

	// Checks 1-4.
	regions, err := validate(src)
	if err != nil {
		return nil, err
	}

	// Check 5 and index assignment.
	indices, updatedLock, err := assignIndices(src.Countries, lock)
	if err != nil {
		return nil, err
	}
	updatedLock.Digest = digest

	// Check 6.
	if err := checkNames(src.Countries); err != nil {
		return nil, err
	}

	ds := &Dataset{
		Digest:              digest,
		Countries:           make([]Country, 0, len(src.Countries)),
		Regions:             regions.ordered,
		SubRegions:          regions.orderedSub,
		IntermediateRegions: regions.orderedIntermediate,
		Lock:                updatedLock,
	}
	for i, c := range src.Countries {
		numeric, _ := parseThreeDigits(c.CountryCode)
		region, subRegion, intermediateRegion, _ := regions.resolve(c)
		ds.Countries = append(ds.Countries, Country{
			Index:              indices[i],
			Alpha2:             c.Alpha2,
			Alpha3:             c.Alpha3,
			Numeric:            numeric,
			Name:               c.Name,
			Region:             region,
			SubRegion:          subRegion,
			IntermediateRegion: intermediateRegion,
		})
	}
	slices.SortFunc(ds.Countries, func(a, b Country) int {
		return int(a.Index) - int(b.Index)
	})

	return ds, nil
}

// MaxIndex returns the highest canonical index ever assigned, including
// withdrawn ones.
func (ds *Dataset) MaxIndex() uint16 {
	var highest uint16
	for _, e := range ds.Lock.Entries {
		highest = max(highest, e.Index)
	}
	return highest
}

// Table returns the countries laid out by canonical index, with zero
// values for index 0 and for withdrawn indices.
func (ds *Dataset) Table() []Country {
	table := make([]Country, int(ds.MaxIndex())+1)
	for _, c := range ds.Countries {
		table[c.Index] = c
	}
	return table
}
