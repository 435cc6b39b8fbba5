package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/maptoposter"
	"github.com/fwojciec/maptoposter/fs"
	maphttp "github.com/fwojciec/maptoposter/http"
	mapslog "github.com/fwojciec/maptoposter/slog"
	"github.com/google/uuid"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s\n", err)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services used by commands. Run wires the filesystem theme catalog, and
	// the Nominatim geocoder for generate, when these are nil.
	Geocoder maptoposter.Geocoder
	Themes   maptoposter.ThemeService

	// Now overrides the clock used for output file names.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// UserAgent identifies this program to the geocoding service.
func UserAgent() string {
	return "maptoposter " + version
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("maptoposter"),
		kong.Description("Generate beautiful map posters for any city"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"version": version},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help and version flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'maptoposter --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	case "--version":
		_, _ = parser.Parse([]string{"--version"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire command-specific dependencies based on command
	cmd := kongCtx.Command()
	if cmd == "generate" && m.Geocoder == nil {
		m.Geocoder = maphttp.NewGeocoder(
			maphttp.WithBaseURL(cli.Generate.NominatimURL),
			maphttp.WithUserAgent(UserAgent()),
			maphttp.WithAcceptLanguage(cli.Generate.Language),
			maphttp.WithTimeout(cli.Generate.Timeout),
		)
	}

	if m.Themes == nil {
		var opts []fs.Option
		if cli.StrictColors {
			opts = append(opts, fs.WithStrictColors())
		}
		m.Themes = fs.NewThemeCatalog(opts...)
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Geocoder: m.Geocoder,
		Themes:   m.Themes,
		Now:      m.Now,
	}

	// Wrap services with logging decorators in debug mode
	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil)).With("run", uuid.NewString())
		if deps.Geocoder != nil {
			deps.Geocoder = mapslog.NewLoggingGeocoder(deps.Geocoder, logger)
		}
		deps.Themes = mapslog.NewLoggingThemeService(deps.Themes, logger)
	}

	return kongCtx.Run(deps)
}
