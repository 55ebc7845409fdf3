// Package region adds UN M49 region classifications to jurisdictions.
//
// The classification is sourced from the statistics division of the UN
// for standard country and area codes for statistical use (M49), see
// https://unstats.un.org/unsd/methodology/m49/overview.
//
// Importing this package is optional: the jurisdiction package works
// without it, and the region tables are only linked in when it is used.
package region

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/mycoria/jurisdiction"
)

// Errors.
var (
	// ErrNoRegionClassification is returned when a jurisdiction has no
	// classification on the requested level, eg. Antarctica.
	ErrNoRegionClassification = errors.New("no region classification")

	// ErrUnknownRegion is returned when a region cannot be found.
	ErrUnknownRegion = errors.New("unknown region")
)

// Region is a high level M49 region. Its value is the M49 code.
type Region uint16

// SubRegion is a subdivision of a Region. Its value is the M49 code.
type SubRegion uint16

// IntermediateRegion is a subdivision of a SubRegion. Its value is the M49 code.
type IntermediateRegion uint16

type regionInfo struct {
	code Region
	name string
}

type subRegionInfo struct {
	code   SubRegion
	name   string
	region Region
}

type intermediateRegionInfo struct {
	code      IntermediateRegion
	name      string
	subRegion SubRegion
}

// classification holds the M49 classification of a jurisdiction.
// Zero values mean that there is no classification on that level.
type classification struct {
	region             Region
	subRegion          SubRegion
	intermediateRegion IntermediateRegion
}

func classificationOf(j jurisdiction.Jurisdiction) classification {
	if !j.IsValid() || int(j.Index()) >= len(classifications) {
		return classification{}
	}
	return classifications[j.Index()]
}

// Of returns the region the jurisdiction is situated in.
func Of(j jurisdiction.Jurisdiction) (Region, error) {
	c := classificationOf(j)
	if c.region == 0 {
		return 0, fmt.Errorf("%w: %s has no region", ErrNoRegionClassification, j)
	}
	return c.region, nil
}

// SubRegionOf returns the sub-region the jurisdiction is situated in.
func SubRegionOf(j jurisdiction.Jurisdiction) (SubRegion, error) {
	c := classificationOf(j)
	if c.subRegion == 0 {
		return 0, fmt.Errorf("%w: %s has no sub-region", ErrNoRegionClassification, j)
	}
	return c.subRegion, nil
}

// IntermediateRegionOf returns the intermediate region the jurisdiction is
// situated in. Most jurisdictions do not have one.
func IntermediateRegionOf(j jurisdiction.Jurisdiction) (IntermediateRegion, error) {
	c := classificationOf(j)
	if c.intermediateRegion == 0 {
		return 0, fmt.Errorf("%w: %s has no intermediate region", ErrNoRegionClassification, j)
	}
	return c.intermediateRegion, nil
}

// Regions returns all regions.
func Regions() []Region {
	out := make([]Region, 0, len(regionTable))
	for _, info := range regionTable {
		out = append(out, info.code)
	}
	return out
}

// SubRegions returns all sub-regions.
func SubRegions() []SubRegion {
	out := make([]SubRegion, 0, len(subRegionTable))
	for _, info := range subRegionTable {
		out = append(out, info.code)
	}
	return out
}

// IntermediateRegions returns all intermediate regions.
func IntermediateRegions() []IntermediateRegion {
	out := make([]IntermediateRegion, 0, len(intermediateRegionTable))
	for _, info := range intermediateRegionTable {
		out = append(out, info.code)
	}
	return out
}

// Region.

func (r Region) info() *regionInfo {
	return infos().regions[r]
}

// IsValid returns whether the region is defined.
func (r Region) IsValid() bool {
	return r.info() != nil
}

// Code returns the M49 code.
func (r Region) Code() uint16 {
	return uint16(r)
}

// Name returns the English name.
func (r Region) Name() string {
	if info := r.info(); info != nil {
		return info.name
	}
	return ""
}

func (r Region) String() string {
	if info := r.info(); info != nil {
		return info.name
	}
	return fmt.Sprintf("Region(%d)", uint16(r))
}

// Jurisdictions returns all jurisdictions in the region, in canonical order.
func (r Region) Jurisdictions() []jurisdiction.Jurisdiction {
	return members().byRegion[r].clone()
}

// SubRegion.

func (s SubRegion) info() *subRegionInfo {
	return infos().subRegions[s]
}

// IsValid returns whether the sub-region is defined.
func (s SubRegion) IsValid() bool {
	return s.info() != nil
}

// Code returns the M49 code.
func (s SubRegion) Code() uint16 {
	return uint16(s)
}

// Name returns the English name.
func (s SubRegion) Name() string {
	if info := s.info(); info != nil {
		return info.name
	}
	return ""
}

func (s SubRegion) String() string {
	if info := s.info(); info != nil {
		return info.name
	}
	return fmt.Sprintf("SubRegion(%d)", uint16(s))
}

// Region returns the region the sub-region belongs to.
func (s SubRegion) Region() Region {
	if info := s.info(); info != nil {
		return info.region
	}
	return 0
}

// Jurisdictions returns all jurisdictions in the sub-region, in canonical order.
func (s SubRegion) Jurisdictions() []jurisdiction.Jurisdiction {
	return members().bySubRegion[s].clone()
}

// IntermediateRegion.

func (ir IntermediateRegion) info() *intermediateRegionInfo {
	return infos().intermediateRegions[ir]
}

// IsValid returns whether the intermediate region is defined.
func (ir IntermediateRegion) IsValid() bool {
	return ir.info() != nil
}

// Code returns the M49 code.
func (ir IntermediateRegion) Code() uint16 {
	return uint16(ir)
}

// Name returns the English name.
func (ir IntermediateRegion) Name() string {
	if info := ir.info(); info != nil {
		return info.name
	}
	return ""
}

func (ir IntermediateRegion) String() string {
	if info := ir.info(); info != nil {
		return info.name
	}
	return fmt.Sprintf("IntermediateRegion(%d)", uint16(ir))
}

// SubRegion returns the sub-region the intermediate region belongs to.
func (ir IntermediateRegion) SubRegion() SubRegion {
	if info := ir.info(); info != nil {
		return info.subRegion
	}
	return 0
}

// Region returns the region the intermediate region belongs to.
func (ir IntermediateRegion) Region() Region {
	return ir.SubRegion().Region()
}

// Jurisdictions returns all jurisdictions in the intermediate region, in canonical order.
func (ir IntermediateRegion) Jurisdictions() []jurisdiction.Jurisdiction {
	return members().byIntermediateRegion[ir].clone()
}

// Lookup.

type infoIndex struct {
	regions             map[Region]*regionInfo
	subRegions          map[SubRegion]*subRegionInfo
	intermediateRegions map[IntermediateRegion]*intermediateRegionInfo
}

// infos is built on first use and never modified afterwards.
var infos = sync.OnceValue(func() *infoIndex {
	idx := &infoIndex{
		regions:             make(map[Region]*regionInfo, len(regionTable)),
		subRegions:          make(map[SubRegion]*subRegionInfo, len(subRegionTable)),
		intermediateRegions: make(map[IntermediateRegion]*intermediateRegionInfo, len(intermediateRegionTable)),
	}
	for i := range regionTable {
		idx.regions[regionTable[i].code] = &regionTable[i]
	}
	for i := range subRegionTable {
		idx.subRegions[subRegionTable[i].code] = &subRegionTable[i]
	}
	for i := range intermediateRegionTable {
		idx.intermediateRegions[intermediateRegionTable[i].code] = &intermediateRegionTable[i]
	}
	return idx
})

// Membership.

type jurisdictionList []jurisdiction.Jurisdiction

func (l jurisdictionList) clone() []jurisdiction.Jurisdiction {
	out := make([]jurisdiction.Jurisdiction, len(l))
	copy(out, l)
	return out
}

type membership struct {
	byRegion             map[Region]jurisdictionList
	bySubRegion          map[SubRegion]jurisdictionList
	byIntermediateRegion map[IntermediateRegion]jurisdictionList
}

// members is built on first use and never modified afterwards.
var members = sync.OnceValue(func() *membership {
	ms := &membership{
		byRegion:             make(map[Region]jurisdictionList, len(regionTable)),
		bySubRegion:          make(map[SubRegion]jurisdictionList, len(subRegionTable)),
		byIntermediateRegion: make(map[IntermediateRegion]jurisdictionList, len(intermediateRegionTable)),
	}
	for _, j := range jurisdiction.All() {
		c := classificationOf(j)
		if c.region != 0 {
			ms.byRegion[c.region] = append(ms.byRegion[c.region], j)
		}
		if c.subRegion != 0 {
			ms.bySubRegion[c.subRegion] = append(ms.bySubRegion[c.subRegion], j)
		}
		if c.intermediateRegion != 0 {
			ms.byIntermediateRegion[c.intermediateRegion] = append(ms.byIntermediateRegion[c.intermediateRegion], j)
		}
	}
	return ms
})

// Parsing.

// Parse returns the region with the given name or M49 code.
// Names are matched case-insensitively.
func Parse(s string) (Region, error) {
	if code, ok := parseCode(s); ok {
		if info := infos().regions[Region(code)]; info != nil {
			return info.code, nil
		}
		return 0, unknownRegion("region", s)
	}
	for _, info := range regionTable {
		if strings.EqualFold(info.name, s) {
			return info.code, nil
		}
	}
	return 0, unknownRegion("region", s)
}

// ParseSubRegion returns the sub-region with the given name or M49 code.
// Names are matched case-insensitively.
func ParseSubRegion(s string) (SubRegion, error) {
	if code, ok := parseCode(s); ok {
		if info := infos().subRegions[SubRegion(code)]; info != nil {
			return info.code, nil
		}
		return 0, unknownRegion("sub-region", s)
	}
	for _, info := range subRegionTable {
		if strings.EqualFold(info.name, s) {
			return info.code, nil
		}
	}
	return 0, unknownRegion("sub-region", s)
}

// ParseIntermediateRegion returns the intermediate region with the given
// name or M49 code. Names are matched case-insensitively.
func ParseIntermediateRegion(s string) (IntermediateRegion, error) {
	if code, ok := parseCode(s); ok {
		if info := infos().intermediateRegions[IntermediateRegion(code)]; info != nil {
			return info.code, nil
		}
		return 0, unknownRegion("intermediate region", s)
	}
	for _, info := range intermediateRegionTable {
		if strings.EqualFold(info.name, s) {
			return info.code, nil
		}
	}
	return 0, unknownRegion("intermediate region", s)
}

// parseCode parses a three digit M49 code.
func parseCode(s string) (code uint16, ok bool) {
	if len(s) != 3 {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

func unknownRegion(kind, input string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownRegion, kind, jurisdiction.SafeString(input))
}
