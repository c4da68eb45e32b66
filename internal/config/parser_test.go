package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gallery/internal/theme"
	galleryerrors "github.com/alexisbeaulieu97/gallery/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, ValidateConfig(&cfg))
	assert.Equal(t, theme.Light, cfg.Theme.DefaultTheme())
	assert.Equal(t, theme.DefaultStorageKey, cfg.Theme.StorageKey)
	assert.Equal(t, 10, cfg.Grid.PageSize)
	assert.Equal(t, "svg", cfg.Chart.Format)
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
theme:
  default: dark
log:
  level: debug
grid:
  page_size: 3
`)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, cfg.Theme.DefaultTheme())
	assert.Equal(t, theme.DefaultStorageKey, cfg.Theme.StorageKey)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Grid.PageSize)
	assert.Equal(t, 8.0, cfg.Chart.Width)
}

func TestParseConfigRejectsUnknownTheme(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
theme:
  default: sepia
`)

	_, err := ParseConfig(path)
	var validationErr *galleryerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "theme.default", validationErr.Field)
	assert.Contains(t, validationErr.Message, "theme")
}

func TestParseConfigRejectsBadStorageKey(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
theme:
  storage_key: "has spaces"
`)

	_, err := ParseConfig(path)
	var validationErr *galleryerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "theme.storage_key", validationErr.Field)
}

func TestParseConfigRejectsOutOfRangeValues(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"grid.page_size": "grid:\n  page_size: 0\n",
		"chart.format":   "chart:\n  format: gif\n",
		"log.level":      "log:\n  level: chatty\n",
		"chart.width":    "chart:\n  width: -1\n",
	}

	for field, content := range tests {
		_, err := ParseConfig(writeConfig(t, content))
		var validationErr *galleryerrors.ValidationError
		require.ErrorAs(t, err, &validationErr, field)
		assert.Equal(t, field, validationErr.Field)
	}
}

func TestParseConfigReportsYAMLLine(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "theme:\n\tdefault: dark\n")

	_, err := ParseConfig(path)
	var parseErr *galleryerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
	assert.Positive(t, parseErr.Line)
}

func TestLoadOptionalMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	require.Error(t, err)

	cfg, err = Load("", true)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestResolvedPathExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	resolved, err := PreferencesConfig{Path: "~/prefs.json"}.ResolvedPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "prefs.json"), resolved)

	resolved, err = PreferencesConfig{Path: "/tmp/prefs.json"}.ResolvedPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/prefs.json", resolved)
}
