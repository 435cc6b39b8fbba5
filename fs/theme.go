// Package fs provides file-based storage for themes.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/maptoposter"
)

// Ensure ThemeCatalog implements maptoposter.ThemeService at compile time.
var _ maptoposter.ThemeService = (*ThemeCatalog)(nil)

// ThemeCatalog reads theme descriptors from a directory, one JSON file per
// theme. Nothing is cached: every call scans or reads the filesystem again.
type ThemeCatalog struct {
	strictColors bool
}

// Option configures a ThemeCatalog.
type Option func(*ThemeCatalog)

// WithStrictColors makes FindTheme reject themes whose color fields are not
// hex colors.
func WithStrictColors() Option {
	return func(c *ThemeCatalog) {
		c.strictColors = true
	}
}

// NewThemeCatalog creates a new ThemeCatalog.
func NewThemeCatalog(opts ...Option) *ThemeCatalog {
	c := &ThemeCatalog{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListThemes returns the sorted identifiers of the themes in dir.
// If dir does not exist it is created and an empty list is returned.
// Entries without the theme extension, directories and names that are not
// valid UTF-8 are skipped.
func (c *ThemeCatalog) ListThemes(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, iofs.ErrNotExist) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, maptoposter.WrapErrorf(err, maptoposter.EINTERNAL, "create theme directory %q", dir)
		}
		return []string{}, nil
	} else if err != nil && len(entries) == 0 {
		return nil, maptoposter.WrapErrorf(err, maptoposter.EINTERNAL, "read theme directory %q", dir)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !utf8.ValidString(name) {
			continue
		}
		id, ok := strings.CutSuffix(name, maptoposter.ThemeExt)
		if !ok || id == "" {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

// FindTheme reads and validates {dir}/{id}.json.
func (c *ThemeCatalog) FindTheme(ctx context.Context, dir, id string) (*maptoposter.Theme, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := ThemePath(dir, id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, maptoposter.WrapErrorf(err, maptoposter.ENOTFOUND, "theme %q not found", id)
	}

	theme, err := DecodeTheme(data)
	if err != nil {
		return nil, err
	}

	if c.strictColors {
		if err := theme.ValidateColors(); err != nil {
			return nil, err
		}
	}

	return theme, nil
}

// ThemePath returns the descriptor path for id within dir.
// Identifiers are plain file stems; anything that could escape dir is rejected.
func ThemePath(dir, id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", maptoposter.Errorf(maptoposter.EINVALID, "invalid theme identifier %q", id)
	}
	return filepath.Join(dir, id+maptoposter.ThemeExt), nil
}

// DecodeTheme parses a theme descriptor, checking every required field in
// maptoposter.ThemeFields order. Unknown fields are ignored.
func DecodeTheme(data []byte) (*maptoposter.Theme, error) {
	if !json.Valid(data) {
		return nil, maptoposter.Errorf(maptoposter.EMALFORMED, "theme is not valid JSON")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, maptoposter.Errorf(maptoposter.ESCHEMA, "theme must be a JSON object")
	}

	values := make(map[string]string, len(maptoposter.ThemeFields))
	for _, name := range maptoposter.ThemeFields {
		raw, ok := fields[name]
		if !ok {
			return nil, schemaError(name, "theme field %q is missing", name)
		}
		var s string
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) || json.Unmarshal(raw, &s) != nil {
			return nil, schemaError(name, "theme field %q must be a string", name)
		}
		values[name] = s
	}

	// Built from the exact keys checked above; json.Unmarshal into the struct
	// would also match keys case-insensitively.
	return &maptoposter.Theme{
		Name:            values["name"],
		Description:     values["description"],
		BG:              values["bg"],
		Text:            values["text"],
		GradientColor:   values["gradient_color"],
		Water:           values["water"],
		Parks:           values["parks"],
		RoadMotorway:    values["road_motorway"],
		RoadPrimary:     values["road_primary"],
		RoadSecondary:   values["road_secondary"],
		RoadTertiary:    values["road_tertiary"],
		RoadResidential: values["road_residential"],
		RoadDefault:     values["road_default"],
	}, nil
}

func schemaError(field, format string, args ...any) error {
	e := maptoposter.Errorf(maptoposter.ESCHEMA, format, args...)
	e.Field = field
	return e
}
