package maptoposter

import (
	"context"
	"math"
	"strings"

	"github.com/golang/geo/s2"
)

// GeocodeQuery describes the place to resolve.
// City and Country are required; State and PostalCode narrow the search
// and are forwarded verbatim when set.
type GeocodeQuery struct {
	City       string `json:"city"`
	Country    string `json:"country"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// Validate returns an error if the query is missing required fields.
func (q GeocodeQuery) Validate() error {
	if strings.TrimSpace(q.City) == "" {
		return Errorf(EINVALID, "city required")
	}
	if strings.TrimSpace(q.Country) == "" {
		return Errorf(EINVALID, "country required")
	}
	return nil
}

// Location is a resolved geographic anchor point in degrees.
type Location struct {
	DisplayName string  `json:"displayName"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// Validate returns an error if the coordinates are not finite or fall
// outside [-90,90] x [-180,180].
func (l *Location) Validate() error {
	if math.IsNaN(l.Lat) || math.IsInf(l.Lat, 0) || l.Lat < -90 || l.Lat > 90 {
		return Errorf(EINVALIDCOORD, "latitude %v out of range", l.Lat)
	}
	if math.IsNaN(l.Lon) || math.IsInf(l.Lon, 0) || l.Lon < -180 || l.Lon > 180 {
		return Errorf(EINVALIDCOORD, "longitude %v out of range", l.Lon)
	}
	return nil
}

// LatLng returns the location as an S2 point for downstream geometry.
func (l *Location) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(l.Lat, l.Lon)
}

// Cell returns the S2 cell containing the location at the given level (0-30).
func (l *Location) Cell(level int) s2.CellID {
	return s2.CellIDFromLatLng(l.LatLng()).Parent(level)
}

// Geocoder resolves place descriptions to coordinates.
type Geocoder interface {
	// Resolve returns the best-ranked match for the query.
	// Returns EINVALID for an incomplete query, ENORESULTS when nothing
	// matches, and ETRANSPORT, ESTATUS, EDECODE or EINVALIDCOORD when the
	// upstream exchange fails.
	Resolve(ctx context.Context, q GeocodeQuery) (*Location, error)
}
