package main_test

import (
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/maptoposter/cmd/maptoposter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		err := main.LoadEnv(filepath.Join(t.TempDir(), ".env"))

		require.NoError(t, err)
	})

	t.Run("loads variables without overriding existing ones", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("MAPTOPOSTER_TEST_FONT_DIR=custom-fonts\nMAPTOPOSTER_TEST_OUTPUT_DIR=from-file\n"), 0644))
		t.Setenv("MAPTOPOSTER_TEST_OUTPUT_DIR", "from-env")
		t.Cleanup(func() { _ = os.Unsetenv("MAPTOPOSTER_TEST_FONT_DIR") })

		err := main.LoadEnv(path)

		require.NoError(t, err)
		assert.Equal(t, "custom-fonts", os.Getenv("MAPTOPOSTER_TEST_FONT_DIR"))
		assert.Equal(t, "from-env", os.Getenv("MAPTOPOSTER_TEST_OUTPUT_DIR"))
	})

	t.Run("reports malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("BAD-KEY=value\n"), 0644))

		err := main.LoadEnv(path)

		require.Error(t, err)
	})
}
