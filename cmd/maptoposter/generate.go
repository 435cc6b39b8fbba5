package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/maptoposter"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

// cellLevel is the S2 level reported as the poster's tile anchor (~1km cells).
const cellLevel = 13

// Validate checks flag values Kong cannot check on its own.
func (c *GenerateCmd) Validate() error {
	if _, _, err := language.ParseAcceptLanguage(c.Language); err != nil {
		return fmt.Errorf("invalid --language %q: %w", c.Language, err)
	}
	if c.Distance == 0 {
		return fmt.Errorf("--distance must be greater than zero")
	}
	return nil
}

// Run executes the generate command.
// Geocoding and theme loading are independent, so they run concurrently;
// the first failure cancels the other and is reported with its stage.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	query := maptoposter.GeocodeQuery{
		City:       c.City,
		Country:    c.Country,
		State:      c.State,
		PostalCode: c.PostalCode,
	}

	var (
		loc   *maptoposter.Location
		theme *maptoposter.Theme
	)

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		var err error
		if loc, err = deps.Geocoder.Resolve(ctx, query); err != nil {
			return fmt.Errorf("geocoding failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if theme, err = deps.Themes.FindTheme(ctx, c.ThemeDir, c.Theme); err != nil {
			return fmt.Errorf("theme loading failed: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	output := filepath.Join(c.OutputDir, maptoposter.PosterFilename(c.City, c.Theme, deps.now()))

	fmt.Fprintf(deps.Stdout, "✓ Found: %s\n", loc.DisplayName)
	fmt.Fprintf(deps.Stdout, "✓ Coordinates: %.7f, %.7f\n", loc.Lat, loc.Lon)
	fmt.Fprintf(deps.Stdout, "✓ Tile anchor: s2:%s (level %d)\n", loc.Cell(cellLevel).ToToken(), cellLevel)
	fmt.Fprintf(deps.Stdout, "✓ Theme: %s (%s)\n", theme.Name, c.Theme)
	fmt.Fprintf(deps.Stdout, "✓ Radius: %dm\n", c.Distance)
	fmt.Fprintf(deps.Stdout, "✓ Output: %s\n", output)

	return nil
}
