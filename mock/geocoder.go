package mock

import (
	"context"

	"github.com/fwojciec/maptoposter"
)

var _ maptoposter.Geocoder = (*Geocoder)(nil)

// Geocoder is a mock implementation of maptoposter.Geocoder.
type Geocoder struct {
	ResolveFn func(ctx context.Context, q maptoposter.GeocodeQuery) (*maptoposter.Location, error)
}

func (g *Geocoder) Resolve(ctx context.Context, q maptoposter.GeocodeQuery) (*maptoposter.Location, error) {
	return g.ResolveFn(ctx, q)
}
