package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/maptoposter"
)

// Ensure LoggingThemeService implements maptoposter.ThemeService.
var _ maptoposter.ThemeService = (*LoggingThemeService)(nil)

// LoggingThemeService wraps a ThemeService with debug logging.
type LoggingThemeService struct {
	next   maptoposter.ThemeService
	logger *slog.Logger
}

// NewLoggingThemeService creates a new LoggingThemeService.
func NewLoggingThemeService(next maptoposter.ThemeService, logger *slog.Logger) *LoggingThemeService {
	return &LoggingThemeService{next: next, logger: logger}
}

// ListThemes delegates to the wrapped service and logs the scan.
func (s *LoggingThemeService) ListThemes(ctx context.Context, dir string) (ids []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list themes",
			"dir", dir,
			"count", len(ids),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListThemes(ctx, dir)
}

// FindTheme delegates to the wrapped service and logs the load.
func (s *LoggingThemeService) FindTheme(ctx context.Context, dir, id string) (theme *maptoposter.Theme, err error) {
	defer func(begin time.Time) {
		name := ""
		if theme != nil {
			name = theme.Name
		}
		s.logger.Info("load theme",
			"dir", dir,
			"id", id,
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTheme(ctx, dir, id)
}
