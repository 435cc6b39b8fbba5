package main_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/maptoposter"
	main "github.com/fwojciec/maptoposter/cmd/maptoposter"
	"github.com/fwojciec/maptoposter/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListThemesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists display name, identifier and description", func(t *testing.T) {
		t.Parallel()

		themes := &mock.ThemeService{
			ListThemesFn: func(_ context.Context, dir string) ([]string, error) {
				assert.Equal(t, "themes", dir)
				return []string{"dark", "noir"}, nil
			},
			FindThemeFn: func(_ context.Context, _, id string) (*maptoposter.Theme, error) {
				switch id {
				case "dark":
					return &maptoposter.Theme{Name: "Dark Mode", Description: "Deep charcoal"}, nil
				default:
					return &maptoposter.Theme{Name: "Noir", Description: "Black and white"}, nil
				}
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Themes: themes,
		}

		err := (&main.ListThemesCmd{ThemeDir: "themes"}).Run(deps)

		require.NoError(t, err)
		want := "Available themes:\n" +
			strings.Repeat("-", 60) + "\n" +
			"  Dark Mode (dark)\n" +
			"    Deep charcoal\n" +
			"  Noir (noir)\n" +
			"    Black and white\n"
		assert.Equal(t, want, stdout.String())
	})

	t.Run("lists broken themes by identifier", func(t *testing.T) {
		t.Parallel()

		themes := &mock.ThemeService{
			ListThemesFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{"broken"}, nil
			},
			FindThemeFn: func(_ context.Context, _, _ string) (*maptoposter.Theme, error) {
				return nil, maptoposter.Errorf(maptoposter.EMALFORMED, "theme is not valid JSON")
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Themes: themes,
		}

		err := (&main.ListThemesCmd{ThemeDir: "themes"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "  broken (broken)\n")
	})

	t.Run("shows helpful message when no themes exist", func(t *testing.T) {
		t.Parallel()

		themes := &mock.ThemeService{
			ListThemesFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Themes: themes,
		}

		err := (&main.ListThemesCmd{ThemeDir: "themes"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No themes found in themes")
	})

	t.Run("names listing stage on failure", func(t *testing.T) {
		t.Parallel()

		themes := &mock.ThemeService{
			ListThemesFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, maptoposter.WrapErrorf(errors.New("permission denied"), maptoposter.EINTERNAL, "create theme directory")
			},
		}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Themes: themes,
		}

		err := (&main.ListThemesCmd{ThemeDir: "/root/themes"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "theme listing failed")
		assert.Contains(t, err.Error(), "permission denied")
	})
}
