package maptoposter

import (
	"strings"
	"time"
)

// PosterTimestampFormat is the timestamp layout embedded in poster file names.
// It avoids ':' so the names are valid on every filesystem.
const PosterTimestampFormat = "20060102_150405"

// PosterFilename returns the file name of a poster rendered for city with
// the given theme at time t: {city_slug}_{theme}_{timestamp}.png.
func PosterFilename(city, themeID string, t time.Time) string {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(city)), " ", "_")
	return slug + "_" + themeID + "_" + t.Format(PosterTimestampFormat) + ".png"
}
