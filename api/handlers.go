package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"

	"github.com/mycoria/jurisdiction"
	"github.com/mycoria/jurisdiction/region"
)

// Endpoint names used in metrics.
const (
	endpointList         = "list"
	endpointJurisdiction = "jurisdiction"
	endpointRegion       = "region"
)

const mimeCBOR = "application/cbor"

// Info describes a jurisdiction.
type Info struct {
	Jurisdiction jurisdiction.Jurisdiction `json:"jurisdiction" cbor:"jurisdiction" yaml:"jurisdiction"`
	Alpha3       string                    `json:"alpha3"       cbor:"alpha3"       yaml:"alpha3"`
	CountryCode  uint16                    `json:"countryCode"  cbor:"countryCode"  yaml:"countryCode"`
	Name         string                    `json:"name"         cbor:"name"         yaml:"name"`
	Index        uint16                    `json:"index"        cbor:"index"        yaml:"index"`

	Region             *region.Region             `json:"region,omitempty"             cbor:"region,omitempty"             yaml:"region,omitempty"`
	SubRegion          *region.SubRegion          `json:"subRegion,omitempty"          cbor:"subRegion,omitempty"          yaml:"subRegion,omitempty"`
	IntermediateRegion *region.IntermediateRegion `json:"intermediateRegion,omitempty" cbor:"intermediateRegion,omitempty" yaml:"intermediateRegion,omitempty"`
}

// Describe returns the full information of a jurisdiction.
func Describe(j jurisdiction.Jurisdiction) Info {
	info := Info{
		Jurisdiction: j,
		Alpha3:       j.Alpha3().String(),
		CountryCode:  j.CountryCode(),
		Name:         j.Name(),
		Index:        j.Index(),
	}
	// Unclassified levels stay nil and are omitted.
	if r, err := region.Of(j); err == nil {
		info.Region = &r
	}
	if s, err := region.SubRegionOf(j); err == nil {
		info.SubRegion = &s
	}
	if ir, err := region.IntermediateRegionOf(j); err == nil {
		info.IntermediateRegion = &ir
	}
	return info
}

func (api *API) register(r chi.Router) {
	r.Get("/jurisdictions", api.handleList)
	r.Get("/jurisdictions/{code}", api.handleJurisdiction)
	r.Get("/regions/{region}/jurisdictions", api.handleRegion)
}

// handleList handles GET /v1/jurisdictions.
func (api *API) handleList(w http.ResponseWriter, r *http.Request) {
	defer api.observe(endpointList, time.Now())

	supported := api.config.Supported()
	infos := make([]Info, 0, len(supported))
	for _, j := range supported {
		infos = append(infos, Describe(j))
	}
	api.metrics.IncrementLookup(endpointList, resultFound)
	writeResponse(w, r, infos)
}

// handleJurisdiction handles GET /v1/jurisdictions/{code}.
func (api *API) handleJurisdiction(w http.ResponseWriter, r *http.Request) {
	defer api.observe(endpointJurisdiction, time.Now())

	code := chi.URLParam(r, "code")
	j, err := parseCode(code)
	if err != nil {
		api.metrics.IncrementLookup(endpointJurisdiction, resultUnknown)
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if !api.config.Supports(j) {
		api.metrics.IncrementLookup(endpointJurisdiction, resultUnsupported)
		writeError(w, http.StatusForbidden, "jurisdiction "+j.String()+" is not supported")
		return
	}

	api.metrics.IncrementLookup(endpointJurisdiction, resultFound)
	writeResponse(w, r, Describe(j))
}

// handleRegion handles GET /v1/regions/{region}/jurisdictions.
func (api *API) handleRegion(w http.ResponseWriter, r *http.Request) {
	defer api.observe(endpointRegion, time.Now())

	members, err := regionMembers(chi.URLParam(r, "region"))
	if err != nil {
		api.metrics.IncrementLookup(endpointRegion, resultUnknown)
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	infos := make([]Info, 0, len(members))
	for _, j := range members {
		if api.config.Supports(j) {
			infos = append(infos, Describe(j))
		}
	}
	api.metrics.IncrementLookup(endpointRegion, resultFound)
	writeResponse(w, r, infos)
}

func (api *API) observe(endpoint string, started time.Time) {
	api.metrics.ObserveLatency(endpoint, time.Since(started))
}

// parseCode parses an alpha-2, alpha-3 or numeric code.
func parseCode(code string) (jurisdiction.Jurisdiction, error) {
	if code != "" && strings.Trim(code, "0123456789") == "" {
		return jurisdiction.ParseNumeric(code)
	}
	return jurisdiction.Parse(code)
}

// regionMembers returns the jurisdictions of the region, sub-region or
// intermediate region with the given name or code.
func regionMembers(name string) ([]jurisdiction.Jurisdiction, error) {
	if r, err := region.Parse(name); err == nil {
		return r.Jurisdictions(), nil
	}
	if s, err := region.ParseSubRegion(name); err == nil {
		return s.Jurisdictions(), nil
	}
	ir, err := region.ParseIntermediateRegion(name)
	if err != nil {
		return nil, errors.New("unknown region " + jurisdiction.SafeString(name))
	}
	return ir.Jurisdictions(), nil
}

// writeResponse writes v as CBOR if the client accepts it, or as JSON otherwise.
func writeResponse(w http.ResponseWriter, r *http.Request, v any) {
	var (
		data        []byte
		err         error
		contentType string
	)
	if strings.Contains(r.Header.Get("Accept"), mimeCBOR) {
		data, err = cbor.Marshal(v)
		contentType = mimeCBOR
	} else {
		data, err = json.Marshal(v)
		contentType = "application/json"
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	data, _ := json.Marshal(map[string]string{"error": msg})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
