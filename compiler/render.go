package compiler

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"
	"unicode"

	"github.com/leekchan/gtf"
)

// Generated files, relative to the module root.
const (
	DefinitionsFile = "definitions_gen.go"
	RegionsFile     = "region/regions_gen.go"
)

//go:embed templates
var templateFS embed.FS

var templates = template.Must(
	template.New("").Funcs(gtf.GtfFuncMap).ParseFS(templateFS, "templates/*.tmpl"),
)

// ErrIdentifier is returned when a region name cannot be turned into a
// usable Go identifier.
var ErrIdentifier = errors.New("invalid identifier")

// Identifiers that already exist in the region package.
var reservedRegionIdents = map[string]struct{}{
	"Region":                    {},
	"SubRegion":                 {},
	"IntermediateRegion":        {},
	"Of":                        {},
	"SubRegionOf":               {},
	"IntermediateRegionOf":      {},
	"Regions":                   {},
	"SubRegions":                {},
	"IntermediateRegions":       {},
	"Parse":                     {},
	"ParseSubRegion":            {},
	"ParseIntermediateRegion":   {},
	"ErrNoRegionClassification": {},
	"ErrUnknownRegion":          {},
}

type regionView struct {
	Ident  string
	Code   uint16
	Name   string
	Parent string
}

type classificationView struct {
	Region             string
	SubRegion          string
	IntermediateRegion string
}

type regionsView struct {
	Regions             []regionView
	SubRegions          []regionView
	IntermediateRegions []regionView
	Classifications     []classificationView
}

// Render renders the generated Go sources of the dataset.
// The returned map is keyed by the file paths relative to the module root.
func Render(ds *Dataset) (map[string][]byte, error) {
	definitions, err := renderFile("definitions.go.tmpl", ds)
	if err != nil {
		return nil, err
	}

	view, err := buildRegionsView(ds)
	if err != nil {
		return nil, err
	}
	regions, err := renderFile("regions.go.tmpl", view)
	if err != nil {
		return nil, err
	}

	return map[string][]byte{
		DefinitionsFile: definitions,
		RegionsFile:     regions,
	}, nil
}

func renderFile(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return formatted, nil
}

func buildRegionsView(ds *Dataset) (*regionsView, error) {
	view := &regionsView{
		Regions:             make([]regionView, 0, len(ds.Regions)),
		SubRegions:          make([]regionView, 0, len(ds.SubRegions)),
		IntermediateRegions: make([]regionView, 0, len(ds.IntermediateRegions)),
	}
	idents := make(map[uint16]string)
	subIdents := make(map[uint16]string)
	intermediateIdents := make(map[uint16]string)
	taken := make(map[string]string)

	claim := func(kind, name string) (string, error) {
		ident := Identifier(name)
		if !token.IsIdentifier(ident) || !token.IsExported(ident) {
			return "", fmt.Errorf("%w: %s %q results in %q", ErrIdentifier, kind, name, ident)
		}
		if _, ok := reservedRegionIdents[ident]; ok {
			return "", fmt.Errorf("%w: %s %q results in reserved %q", ErrIdentifier, kind, name, ident)
		}
		if other, ok := taken[ident]; ok {
			return "", fmt.Errorf("%w: %s %q and %s both result in %q", ErrIdentifier, kind, name, other, ident)
		}
		taken[ident] = fmt.Sprintf("%s %q", kind, name)
		return ident, nil
	}

	for _, r := range ds.Regions {
		ident, err := claim("region", r.Name)
		if err != nil {
			return nil, err
		}
		idents[r.Code] = ident
		view.Regions = append(view.Regions, regionView{Ident: ident, Code: r.Code, Name: r.Name})
	}
	for _, s := range ds.SubRegions {
		ident, err := claim("sub-region", s.Name)
		if err != nil {
			return nil, err
		}
		subIdents[s.Code] = ident
		view.SubRegions = append(view.SubRegions, regionView{
			Ident: ident, Code: s.Code, Name: s.Name, Parent: idents[s.Region],
		})
	}
	for _, ir := range ds.IntermediateRegions {
		ident, err := claim("intermediate region", ir.Name)
		if err != nil {
			return nil, err
		}
		intermediateIdents[ir.Code] = ident
		view.IntermediateRegions = append(view.IntermediateRegions, regionView{
			Ident: ident, Code: ir.Code, Name: ir.Name, Parent: subIdents[ir.SubRegion],
		})
	}

	for _, c := range ds.Table() {
		view.Classifications = append(view.Classifications, classificationView{
			Region:             idents[c.Region],
			SubRegion:          subIdents[c.SubRegion],
			IntermediateRegion: intermediateIdents[c.IntermediateRegion],
		})
	}
	return view, nil
}

// Identifier derives the Go identifier of a region name by joining its
// alphanumeric words with their first letter upper cased.
// "South-eastern Asia" becomes "SouthEasternAsia".
func Identifier(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !isASCIIAlnum(r)
	})
	var b strings.Builder
	for _, w := range words {
		b.WriteRune(unicode.ToUpper(rune(w[0])))
		b.WriteString(w[1:])
	}
	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
