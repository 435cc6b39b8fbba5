package main

import (
	"fmt"
	"strings"
)

// Run executes the list-themes command.
func (c *ListThemesCmd) Run(deps *Dependencies) error {
	ids, err := deps.Themes.ListThemes(deps.Ctx, c.ThemeDir)
	if err != nil {
		return fmt.Errorf("theme listing failed: %w", err)
	}

	if len(ids) == 0 {
		fmt.Fprintf(deps.Stdout, "No themes found in %s. Add <name>.json theme files to get started.\n", c.ThemeDir)
		return nil
	}

	fmt.Fprintln(deps.Stdout, "Available themes:")
	fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	for _, id := range ids {
		// A broken theme is still listed so it can be found and fixed.
		theme, err := deps.Themes.FindTheme(deps.Ctx, c.ThemeDir, id)
		if err != nil {
			fmt.Fprintf(deps.Stdout, "  %s (%s)\n", id, id)
			continue
		}
		fmt.Fprintf(deps.Stdout, "  %s (%s)\n", theme.Name, id)
		fmt.Fprintf(deps.Stdout, "    %s\n", theme.Description)
	}

	return nil
}
