// Package slog provides log/slog decorators for maptoposter services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/maptoposter"
)

// Ensure LoggingGeocoder implements maptoposter.Geocoder.
var _ maptoposter.Geocoder = (*LoggingGeocoder)(nil)

// LoggingGeocoder wraps a Geocoder with debug logging.
type LoggingGeocoder struct {
	next   maptoposter.Geocoder
	logger *slog.Logger
}

// NewLoggingGeocoder creates a new LoggingGeocoder.
func NewLoggingGeocoder(next maptoposter.Geocoder, logger *slog.Logger) *LoggingGeocoder {
	return &LoggingGeocoder{next: next, logger: logger}
}

// Resolve delegates to the wrapped geocoder and logs the lookup.
func (g *LoggingGeocoder) Resolve(ctx context.Context, q maptoposter.GeocodeQuery) (loc *maptoposter.Location, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"city", q.City,
			"country", q.Country,
		}
		if q.State != "" {
			attrs = append(attrs, "state", q.State)
		}
		if q.PostalCode != "" {
			attrs = append(attrs, "postal_code", q.PostalCode)
		}
		if loc != nil {
			attrs = append(attrs,
				"display_name", loc.DisplayName,
				"lat", loc.Lat,
				"lon", loc.Lon,
			)
		}
		attrs = append(attrs, "duration", time.Since(begin))
		if err != nil {
			attrs = append(attrs, "code", maptoposter.ErrorCode(err), "err", err)
		}
		g.logger.Info("geocode", attrs...)
	}(time.Now())
	return g.next.Resolve(ctx, q)
}
