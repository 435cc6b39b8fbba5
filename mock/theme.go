package mock

import (
	"context"

	"github.com/fwojciec/maptoposter"
)

var _ maptoposter.ThemeService = (*ThemeService)(nil)

// ThemeService is a mock implementation of maptoposter.ThemeService.
type ThemeService struct {
	ListThemesFn func(ctx context.Context, dir string) ([]string, error)
	FindThemeFn  func(ctx context.Context, dir, id string) (*maptoposter.Theme, error)
}

func (s *ThemeService) ListThemes(ctx context.Context, dir string) ([]string, error) {
	return s.ListThemesFn(ctx, dir)
}

func (s *ThemeService) FindTheme(ctx context.Context, dir, id string) (*maptoposter.Theme, error) {
	return s.FindThemeFn(ctx, dir, id)
}
