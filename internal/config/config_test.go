package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/steptree/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Missing file yields defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("Missing required file fails", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
		assert.Error(t, err)
	})

	t.Run("Keys override defaults", func(t *testing.T) {
		path := writeConfig(t, "prefix: \"@nix\"\nlenient: true\nformat: json\nmax_level: 3\n")
		cfg, err := config.Load(path, true)
		require.NoError(t, err)
		assert.Equal(t, "@nix", cfg.Prefix)
		assert.True(t, cfg.Lenient)
		assert.Equal(t, config.FormatJSON, cfg.Format)
		assert.Equal(t, uint8(3), cfg.MaxLevel)
		assert.Equal(t, 2, cfg.Indent, "unset keys keep their default")
	})

	t.Run("Unknown format is rejected", func(t *testing.T) {
		path := writeConfig(t, "format: html\n")
		_, err := config.Load(path, false)
		assert.ErrorContains(t, err, "unknown format")
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		path := writeConfig(t, "format: [\n")
		_, err := config.Load(path, false)
		assert.Error(t, err)
	})
}
