// Package http provides HTTP-based implementations of maptoposter services.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fwojciec/maptoposter"
)

// DefaultBaseURL is the Nominatim search endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org/search"

// DefaultTimeout bounds a single geocoding request.
const DefaultTimeout = 10 * time.Second

// DefaultAcceptLanguage is the language preference sent to Nominatim.
const DefaultAcceptLanguage = "en-US,en;q=0.9"

// DefaultUserAgent identifies the client when no user agent is configured.
// Nominatim's usage policy rejects requests without one.
const DefaultUserAgent = "maptoposter dev"

// Ensure Geocoder implements maptoposter.Geocoder at compile time.
var _ maptoposter.Geocoder = (*Geocoder)(nil)

// Candidate is one entry of a Nominatim jsonv2 search response.
// Candidates arrive ranked by the service's own relevance score.
type Candidate struct {
	PlaceID     uint64   `json:"place_id"`
	Licence     string   `json:"licence"`
	OSMType     string   `json:"osm_type"`
	OSMID       uint64   `json:"osm_id"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	PlaceRank   uint     `json:"place_rank"`
	Importance  float64  `json:"importance"`
	AddressType string   `json:"addresstype"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	BoundingBox []string `json:"boundingbox"`
}

// Geocoder resolves places through the Nominatim search API.
// Each Resolve issues exactly one request; there is no retry, caching or
// rate limiting, so callers must respect the service's usage policy.
type Geocoder struct {
	client         *http.Client
	baseURL        string
	userAgent      string
	acceptLanguage string
	timeout        time.Duration
}

// Option configures a Geocoder.
type Option func(*Geocoder)

// WithTimeout sets the timeout for geocoding requests.
// Defaults to DefaultTimeout (10s); non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(g *Geocoder) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithBaseURL points the geocoder at a different search endpoint.
func WithBaseURL(u string) Option {
	return func(g *Geocoder) {
		if u != "" {
			g.baseURL = u
		}
	}
}

// WithUserAgent sets the User-Agent header, conventionally "<name> <version>".
func WithUserAgent(ua string) Option {
	return func(g *Geocoder) {
		if ua != "" {
			g.userAgent = ua
		}
	}
}

// WithAcceptLanguage sets the Accept-Language header.
func WithAcceptLanguage(lang string) Option {
	return func(g *Geocoder) {
		if lang != "" {
			g.acceptLanguage = lang
		}
	}
}

// WithHTTPClient uses client for requests. The client's own timeout is
// replaced by the geocoder's.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Geocoder) {
		g.client = client
	}
}

// NewGeocoder creates a new Nominatim-backed Geocoder.
func NewGeocoder(opts ...Option) *Geocoder {
	g := &Geocoder{
		baseURL:        DefaultBaseURL,
		userAgent:      DefaultUserAgent,
		acceptLanguage: DefaultAcceptLanguage,
		timeout:        DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.client == nil {
		g.client = &http.Client{}
	} else {
		c := *g.client
		g.client = &c
	}
	g.client.Timeout = g.timeout

	return g
}

// Resolve looks up the query and returns the first candidate's location.
func (g *Geocoder) Resolve(ctx context.Context, q maptoposter.GeocodeQuery) (*maptoposter.Location, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.searchURL(q), nil)
	if err != nil {
		return nil, maptoposter.WrapErrorf(err, maptoposter.EINTERNAL, "build geocoding request")
	}
	req.Header.Set("Accept-Language", g.acceptLanguage)
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, maptoposter.WrapErrorf(err, maptoposter.ETRANSPORT, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := maptoposter.Errorf(maptoposter.ESTATUS, "geocoding service returned HTTP %d", resp.StatusCode)
		e.StatusCode = resp.StatusCode
		return nil, e
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, maptoposter.WrapErrorf(err, maptoposter.ETRANSPORT, "read geocoding response")
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(body, &elems); err != nil {
		return nil, maptoposter.WrapErrorf(err, maptoposter.EDECODE, "decode geocoding response")
	}

	if len(elems) == 0 {
		return nil, maptoposter.Errorf(maptoposter.ENORESULTS, "no matching locations found for %s", describe(q))
	}

	candidates := make([]*Candidate, 0, len(elems))
	for i, elem := range elems {
		c, err := DecodeCandidate(elem)
		if err != nil {
			return nil, maptoposter.WrapErrorf(err, maptoposter.EDECODE, "decode geocoding candidate %d", i)
		}
		candidates = append(candidates, c)
	}

	return candidates[0].Location()
}

// CandidateFields are the keys every search result must carry.
var CandidateFields = []string{"lat", "lon", "display_name"}

// DecodeCandidate parses one search result. It must be a JSON object with
// every key in CandidateFields set to a non-null value; other fields may be
// absent but must have the expected type when present.
func DecodeCandidate(data []byte) (*Candidate, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("candidate is null")
	}

	for _, name := range CandidateFields {
		raw, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, fmt.Errorf("candidate field %q is missing", name)
		}
	}

	var c Candidate
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Location extracts the display name and coordinates of the candidate.
func (c *Candidate) Location() (*maptoposter.Location, error) {
	lat, err := strconv.ParseFloat(c.Lat, 64)
	if err != nil {
		return nil, maptoposter.WrapErrorf(err, maptoposter.EINVALIDCOORD, "invalid latitude %q", c.Lat)
	}
	lon, err := strconv.ParseFloat(c.Lon, 64)
	if err != nil {
		return nil, maptoposter.WrapErrorf(err, maptoposter.EINVALIDCOORD, "invalid longitude %q", c.Lon)
	}

	loc := &maptoposter.Location{
		DisplayName: c.DisplayName,
		Lat:         lat,
		Lon:         lon,
	}
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	return loc, nil
}

func (g *Geocoder) searchURL(q maptoposter.GeocodeQuery) string {
	params := url.Values{}
	params.Set("city", q.City)
	params.Set("country", q.Country)
	if q.State != "" {
		params.Set("state", q.State)
	}
	if q.PostalCode != "" {
		params.Set("postalcode", q.PostalCode)
	}
	params.Set("format", "jsonv2")

	return g.baseURL + "?" + params.Encode()
}

// describe formats the query for error messages.
func describe(q maptoposter.GeocodeQuery) string {
	s := q.City
	if q.State != "" {
		s += ", " + q.State
	}
	if q.PostalCode != "" {
		s += " " + q.PostalCode
	}
	return s + ", " + q.Country
}
