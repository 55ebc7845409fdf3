package compiler

import (
	"fmt"
	"strconv"

	"github.com/mycoria/jurisdiction/internal/fold"
)

// Check identifies one of the validation steps.
// Steps run in the order of their values; the first violation aborts.
type Check uint8

// Checks.
const (
	CheckAlpha2 Check = iota + 1
	CheckAlpha3
	CheckNumeric
	CheckRegion
	CheckIndex
	CheckName
)

func (c Check) String() string {
	switch c {
	case CheckAlpha2:
		return "alpha-2"
	case CheckAlpha3:
		return "alpha-3"
	case CheckNumeric:
		return "numeric code"
	case CheckRegion:
		return "region"
	case CheckIndex:
		return "canonical index"
	case CheckName:
		return "name"
	default:
		return "Check(" + strconv.Itoa(int(c)) + ")"
	}
}

// ValidationError describes a data integrity violation.
type ValidationError struct {
	Check Check

	// Record is the 1-based position of the offending country in the
	// source, or 0 if the violation is not bound to a country.
	Record int
	// Code is the alpha-2 code of the offending record, if known.
	Code string

	Msg string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Record > 0 && e.Code != "":
		return fmt.Sprintf("%s check failed at country #%d (%s): %s", e.Check, e.Record, e.Code, e.Msg)
	case e.Record > 0:
		return fmt.Sprintf("%s check failed at country #%d: %s", e.Check, e.Record, e.Msg)
	default:
		return fmt.Sprintf("%s check failed: %s", e.Check, e.Msg)
	}
}

func violation(check Check, record int, code string, format string, args ...any) *ValidationError {
	return &ValidationError{
		Check:  check,
		Record: record,
		Code:   code,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// validate runs the region independent source checks in order.
// The canonical index check needs the lock and runs in assignIndices,
// the name check runs last.
func validate(src *Source) (*regionIndex, error) {
	if err := checkAlpha2(src.Countries); err != nil {
		return nil, err
	}
	if err := checkAlpha3(src.Countries); err != nil {
		return nil, err
	}
	if err := checkNumeric(src.Countries); err != nil {
		return nil, err
	}
	return checkRegions(src)
}

func checkAlpha2(countries []CountrySource) error {
	seen := make(map[string]int, len(countries))
	for i, c := range countries {
		if !isUpperLetters(c.Alpha2, 2) {
			return violation(CheckAlpha2, i+1, "", "malformed alpha-2 code %q: must be 2 upper case letters", c.Alpha2)
		}
		if first, ok := seen[c.Alpha2]; ok {
			return violation(CheckAlpha2, i+1, c.Alpha2, "duplicate alpha-2 code, already used by country #%d", first)
		}
		seen[c.Alpha2] = i + 1
	}
	return nil
}

func checkAlpha3(countries []CountrySource) error {
	seen := make(map[string]int, len(countries))
	for i, c := range countries {
		if !isUpperLetters(c.Alpha3, 3) {
			return violation(CheckAlpha3, i+1, c.Alpha2, "malformed alpha-3 code %q: must be 3 upper case letters", c.Alpha3)
		}
		if first, ok := seen[c.Alpha3]; ok {
			return violation(CheckAlpha3, i+1, c.Alpha2, "duplicate alpha-3 code %s, already used by country #%d", c.Alpha3, first)
		}
		seen[c.Alpha3] = i + 1
	}
	return nil
}

func checkNumeric(countries []CountrySource) error {
	seen := make(map[uint16]int, len(countries))
	for i, c := range countries {
		code, ok := parseThreeDigits(c.CountryCode)
		if !ok {
			return violation(CheckNumeric, i+1, c.Alpha2, "malformed numeric code %q: must be 3 digits in 000-999", c.CountryCode)
		}
		if first, ok := seen[code]; ok {
			return violation(CheckNumeric, i+1, c.Alpha2, "duplicate numeric code %s, already used by country #%d", c.CountryCode, first)
		}
		seen[code] = i + 1
	}
	return nil
}

// regionIndex holds the validated region tables.
type regionIndex struct {
	regions             map[uint16]*Region
	subRegions          map[uint16]*SubRegion
	intermediateRegions map[uint16]*IntermediateRegion

	ordered             []Region
	orderedSub          []SubRegion
	orderedIntermediate []IntermediateRegion
}

func checkRegions(src *Source) (*regionIndex, error) { //nolint:gocognit // Function has sections.
	idx := &regionIndex{
		regions:             make(map[uint16]*Region, len(src.Regions)),
		subRegions:          make(map[uint16]*SubRegion, len(src.SubRegions)),
		intermediateRegions: make(map[uint16]*IntermediateRegion, len(src.IntermediateRegions)),

		// Fixed capacity keeps the pointers in the maps valid.
		ordered:             make([]Region, 0, len(src.Regions)),
		orderedSub:          make([]SubRegion, 0, len(src.SubRegions)),
		orderedIntermediate: make([]IntermediateRegion, 0, len(src.IntermediateRegions)),
	}

	// Region tables.
	names := make(map[string]struct{})
	for i, r := range src.Regions {
		code, err := checkRegionEntry("region", i, r.Code, r.Name, names)
		if err != nil {
			return nil, err
		}
		if _, ok := idx.regions[code]; ok {
			return nil, violation(CheckRegion, 0, "", "region #%d: duplicate code %s", i+1, r.Code)
		}
		idx.ordered = append(idx.ordered, Region{Code: code, Name: r.Name})
		idx.regions[code] = &idx.ordered[len(idx.ordered)-1]
	}

	names = make(map[string]struct{})
	for i, s := range src.SubRegions {
		code, err := checkRegionEntry("sub-region", i, s.Code, s.Name, names)
		if err != nil {
			return nil, err
		}
		if _, ok := idx.subRegions[code]; ok {
			return nil, violation(CheckRegion, 0, "", "sub-region #%d: duplicate code %s", i+1, s.Code)
		}
		parent, ok := parseThreeDigits(s.Region)
		if !ok || idx.regions[parent] == nil {
			return nil, violation(CheckRegion, 0, "", "sub-region %s (%s) references unknown region %q", s.Code, s.Name, s.Region)
		}
		idx.orderedSub = append(idx.orderedSub, SubRegion{Code: code, Name: s.Name, Region: parent})
		idx.subRegions[code] = &idx.orderedSub[len(idx.orderedSub)-1]
	}

	names = make(map[string]struct{})
	for i, ir := range src.IntermediateRegions {
		code, err := checkRegionEntry("intermediate region", i, ir.Code, ir.Name, names)
		if err != nil {
			return nil, err
		}
		if _, ok := idx.intermediateRegions[code]; ok {
			return nil, violation(CheckRegion, 0, "", "intermediate region #%d: duplicate code %s", i+1, ir.Code)
		}
		parent, ok := parseThreeDigits(ir.SubRegion)
		if !ok || idx.subRegions[parent] == nil {
			return nil, violation(CheckRegion, 0, "", "intermediate region %s (%s) references unknown sub-region %q", ir.Code, ir.Name, ir.SubRegion)
		}
		idx.orderedIntermediate = append(idx.orderedIntermediate, IntermediateRegion{Code: code, Name: ir.Name, SubRegion: parent})
		idx.intermediateRegions[code] = &idx.orderedIntermediate[len(idx.orderedIntermediate)-1]
	}

	// Country references.
	for i, c := range src.Countries {
		if _, _, _, err := idx.resolve(c); err != nil {
			err.Record = i + 1
			err.Code = c.Alpha2
			return nil, err
		}
	}

	return idx, nil
}

func checkRegionEntry(kind string, i int, rawCode, name string, names map[string]struct{}) (uint16, error) {
	code, ok := parseThreeDigits(rawCode)
	if !ok || code == 0 {
		return 0, violation(CheckRegion, 0, "", "%s #%d: malformed code %q", kind, i+1, rawCode)
	}
	if name == "" {
		return 0, violation(CheckRegion, 0, "", "%s %s: missing name", kind, rawCode)
	}
	if _, ok := names[name]; ok {
		return 0, violation(CheckRegion, 0, "", "%s %s: duplicate name %q", kind, rawCode, name)
	}
	names[name] = struct{}{}
	return code, nil
}

// resolve returns the validated region codes of the given country.
// Absent classifications are returned as 0.
func (idx *regionIndex) resolve(c CountrySource) (region, subRegion, intermediateRegion uint16, err *ValidationError) {
	if c.RegionCode != "" {
		code, ok := parseThreeDigits(c.RegionCode)
		if !ok || idx.regions[code] == nil {
			return 0, 0, 0, violation(CheckRegion, 0, "", "unknown region %q", c.RegionCode)
		}
		region = code
	}

	if c.SubRegionCode != "" {
		code, ok := parseThreeDigits(c.SubRegionCode)
		if !ok || idx.subRegions[code] == nil {
			return 0, 0, 0, violation(CheckRegion, 0, "", "unknown sub-region %q", c.SubRegionCode)
		}
		sub := idx.subRegions[code]
		if region == 0 {
			return 0, 0, 0, violation(CheckRegion, 0, "", "sub-region %s declared without region", c.SubRegionCode)
		}
		if sub.Region != region {
			return 0, 0, 0, violation(CheckRegion, 0, "",
				"sub-region %s (%s) belongs to region %03d, not to declared region %s",
				c.SubRegionCode, sub.Name, sub.Region, c.RegionCode,
			)
		}
		subRegion = code
	}

	if c.IntermediateRegionCode != "" {
		code, ok := parseThreeDigits(c.IntermediateRegionCode)
		if !ok || idx.intermediateRegions[code] == nil {
			return 0, 0, 0, violation(CheckRegion, 0, "", "unknown intermediate region %q", c.IntermediateRegionCode)
		}
		ir := idx.intermediateRegions[code]
		if subRegion == 0 {
			return 0, 0, 0, violation(CheckRegion, 0, "", "intermediate region %s declared without sub-region", c.IntermediateRegionCode)
		}
		if ir.SubRegion != subRegion {
			return 0, 0, 0, violation(CheckRegion, 0, "",
				"intermediate region %s (%s) belongs to sub-region %03d, not to declared sub-region %s",
				c.IntermediateRegionCode, ir.Name, ir.SubRegion, c.SubRegionCode,
			)
		}
		intermediateRegion = code
	}

	return region, subRegion, intermediateRegion, nil
}

// checkNames verifies that every name is present and unique in the folded
// form used by name lookups.
func checkNames(countries []CountrySource) error {
	seen := make(map[string]int, len(countries))
	for i, c := range countries {
		key := fold.Name(c.Name)
		if key == "" {
			return violation(CheckName, i+1, c.Alpha2, "missing name")
		}
		if first, ok := seen[key]; ok {
			return violation(CheckName, i+1, c.Alpha2, "name %q is indistinguishable from the name of country #%d", c.Name, first)
		}
		seen[key] = i + 1
	}
	return nil
}

func isUpperLetters(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// parseThreeDigits parses a zero padded three digit decimal code.
func parseThreeDigits(s string) (uint16, bool) {
	if len(s) != 3 {
		return 0, false
	}
	var n uint16
	for i := 0; i < 3; i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + uint16(s[i]-'0')
	}
	return n, true
}
