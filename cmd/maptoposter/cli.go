package main

import (
	"context"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/maptoposter"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Geocoder maptoposter.Geocoder
	Themes   maptoposter.ThemeService

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (d *Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug        bool             `help:"Log service calls to stderr"`
	StrictColors bool             `name:"strict-colors" help:"Require theme colors to be hex values"`
	Version      kong.VersionFlag `help:"Print version and exit"`

	Generate   GenerateCmd   `cmd:"" aliases:"gen" help:"Generate a map poster"`
	ListThemes ListThemesCmd `cmd:"" name:"list-themes" help:"List all available themes"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	City       string `short:"c" required:"" help:"City name"`
	Country    string `short:"C" required:"" help:"Country name"`
	State      string `short:"s" help:"Optional state/province name"`
	PostalCode string `short:"p" name:"postal-code" help:"Optional postal code"`
	Theme      string `short:"t" default:"feature_based" help:"Theme name"`
	Distance   uint16 `short:"d" default:"29000" help:"Map radius in meters"`

	ThemeDir  string `name:"theme-dir" default:"themes" env:"MAPTOPOSTER_THEME_DIR" help:"The path to the directory with the theme .json files"`
	FontDir   string `name:"font-dir" default:"fonts" env:"MAPTOPOSTER_FONT_DIR" help:"The path to the directory with the fonts to use on the posters"`
	OutputDir string `short:"o" name:"output-dir" default:"posters" env:"MAPTOPOSTER_OUTPUT_DIR" help:"The path to the directory to output the posters to"`

	Language     string        `default:"en-US,en;q=0.9" env:"MAPTOPOSTER_LANGUAGE" help:"Accept-Language preference sent to the geocoding service"`
	Timeout      time.Duration `default:"10s" env:"MAPTOPOSTER_TIMEOUT" help:"Geocoding request timeout"`
	NominatimURL string        `name:"nominatim-url" default:"https://nominatim.openstreetmap.org/search" env:"MAPTOPOSTER_NOMINATIM_URL" help:"Nominatim search endpoint"`
}

// ListThemesCmd is the "list-themes" subcommand.
type ListThemesCmd struct {
	ThemeDir string `name:"theme-dir" default:"themes" env:"MAPTOPOSTER_THEME_DIR" help:"The path to the directory with the theme .json files"`
}
