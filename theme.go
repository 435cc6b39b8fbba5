package maptoposter

import (
	"context"
	"regexp"
)

// ThemeExt is the file extension of theme descriptors.
const ThemeExt = ".json"

// DefaultThemeDir is the theme directory used when none is configured.
const DefaultThemeDir = "themes"

// Theme is a named set of colors used to render a poster.
// Themes are addressed by the stem of their file name, which is distinct
// from the Name display field.
type Theme struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	BG              string `json:"bg"`
	Text            string `json:"text"`
	GradientColor   string `json:"gradient_color"`
	Water           string `json:"water"`
	Parks           string `json:"parks"`
	RoadMotorway    string `json:"road_motorway"`
	RoadPrimary     string `json:"road_primary"`
	RoadSecondary   string `json:"road_secondary"`
	RoadTertiary    string `json:"road_tertiary"`
	RoadResidential string `json:"road_residential"`
	RoadDefault     string `json:"road_default"`
}

// ThemeFields lists the required JSON fields of a theme descriptor in the
// order they are checked.
var ThemeFields = []string{
	"name",
	"description",
	"bg",
	"text",
	"gradient_color",
	"water",
	"parks",
	"road_motorway",
	"road_primary",
	"road_secondary",
	"road_tertiary",
	"road_residential",
	"road_default",
}

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Colors returns the color fields keyed by their JSON name, in ThemeFields order.
func (t *Theme) Colors() []ThemeColor {
	return []ThemeColor{
		{"bg", t.BG},
		{"text", t.Text},
		{"gradient_color", t.GradientColor},
		{"water", t.Water},
		{"parks", t.Parks},
		{"road_motorway", t.RoadMotorway},
		{"road_primary", t.RoadPrimary},
		{"road_secondary", t.RoadSecondary},
		{"road_tertiary", t.RoadTertiary},
		{"road_residential", t.RoadResidential},
		{"road_default", t.RoadDefault},
	}
}

// ThemeColor is a single named color of a theme.
type ThemeColor struct {
	Field string
	Value string
}

// ValidateColors returns an ESCHEMA error naming the first color field
// that is not a hex color (#rgb, #rgba, #rrggbb or #rrggbbaa).
func (t *Theme) ValidateColors() error {
	for _, c := range t.Colors() {
		if !hexColorRe.MatchString(c.Value) {
			e := Errorf(ESCHEMA, "theme field %q is not a hex color: %q", c.Field, c.Value)
			e.Field = c.Field
			return e
		}
	}
	return nil
}

// ThemeService discovers and loads themes from a directory.
// The directory is passed on every call; implementations hold no state.
type ThemeService interface {
	// ListThemes returns the sorted identifiers of the themes in dir.
	// A missing directory is created and yields an empty list.
	// Directories and entries named exactly ".json" are not themes and are skipped.
	ListThemes(ctx context.Context, dir string) ([]string, error)

	// FindTheme loads the theme identified by id from dir.
	// Returns ENOTFOUND if the file is missing or unreadable, EMALFORMED if
	// it is not valid JSON and ESCHEMA if a required field is missing or
	// not a string.
	FindTheme(ctx context.Context, dir, id string) (*Theme, error)
}
