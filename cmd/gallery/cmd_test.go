package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/gallery/internal/logger"
	"github.com/alexisbeaulieu97/gallery/internal/prefs"
	"github.com/alexisbeaulieu97/gallery/internal/theme"
	galleryerrors "github.com/alexisbeaulieu97/gallery/pkg/errors"
)

// setupHome points HOME at a temp dir so no real config or preferences leak in.
func setupHome(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func readPersistedTheme(t *testing.T, path string) (string, bool) {
	t.Helper()
	store, err := prefs.NewFileStore(path, logger.Nop())
	require.NoError(t, err)
	return store.Get(theme.DefaultStorageKey)
}

func TestThemeCommand_DefaultsToLight(t *testing.T) {
	setupHome(t)

	out, err := executeCommand("theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)
}

func TestThemeSet_PersistsAcrossRuns(t *testing.T) {
	home := setupHome(t)
	prefsPath := filepath.Join(home, "prefs.json")

	out, err := executeCommand("theme", "set", "DARK", "--prefs", prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "Theme set to dark\n", out)

	value, ok := readPersistedTheme(t, prefsPath)
	require.True(t, ok)
	assert.Equal(t, "dark", value)

	out, err = executeCommand("theme", "--prefs", prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}

func TestThemeSet_UsesDefaultPreferencesPath(t *testing.T) {
	home := setupHome(t)

	_, err := executeCommand("theme", "set", "dark")
	require.NoError(t, err)

	value, ok := readPersistedTheme(t, filepath.Join(home, ".gallery", "preferences.json"))
	require.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestThemeSet_RejectsUnknownTheme(t *testing.T) {
	home := setupHome(t)
	prefsPath := filepath.Join(home, "prefs.json")

	_, err := executeCommand("theme", "set", "purple", "--prefs", prefsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to set theme")
	assert.Contains(t, err.Error(), "Suggestion: Use one of: light, dark.")

	var validationErr *galleryerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "theme", validationErr.Field)
	assert.ErrorIs(t, err, theme.ErrInvalidTheme)

	_, statErr := os.Stat(prefsPath)
	assert.True(t, os.IsNotExist(statErr), "nothing is written for a rejected theme")
}

func TestThemeToggle(t *testing.T) {
	home := setupHome(t)
	prefsPath := filepath.Join(home, "prefs.json")

	out, err := executeCommand("theme", "toggle", "--prefs", prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "Theme set to dark\n", out)

	out, err = executeCommand("theme", "toggle", "--prefs", prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "Theme set to light\n", out)

	value, _ := readPersistedTheme(t, prefsPath)
	assert.Equal(t, "light", value)
}

func TestThemeCommand_InvalidPersistedValueFallsBack(t *testing.T) {
	home := setupHome(t)
	prefsPath := filepath.Join(home, "prefs.json")
	require.NoError(t, os.WriteFile(prefsPath, []byte(`{"version":"1.0","values":{"ui-theme":"sepia"}}`), 0o644))

	out, err := executeCommand("theme", "--prefs", prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)
}

func TestPaletteCommand_JSON(t *testing.T) {
	setupHome(t)

	out, err := executeCommand("palette", "dark", "--json")
	require.NoError(t, err)

	var got paletteOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, "alpine-dark", got.GridTheme)
	assert.Equal(t, theme.DeriveStyle(theme.Dark), got.Style)
	assert.Contains(t, out, `"tooltipBackground": "#1f2937"`)
}

func TestPaletteCommand_YAMLUsesPersistedTheme(t *testing.T) {
	home := setupHome(t)
	prefsPath := filepath.Join(home, "prefs.json")
	_, err := executeCommand("theme", "set", "dark", "--prefs", prefsPath)
	require.NoError(t, err)

	out, err := executeCommand("palette", "--prefs", prefsPath)
	require.NoError(t, err)

	var got paletteOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, "#10b981", got.Style.LineColor)
}

func TestPaletteCommand_RejectsUnknownTheme(t *testing.T) {
	setupHome(t)

	_, err := executeCommand("palette", "blue")
	var validationErr *galleryerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestChartExport_WritesSVG(t *testing.T) {
	home := setupHome(t)
	out := filepath.Join(home, "charts", "sales.svg")

	stdout, err := executeCommand("chart", "export", "--out", out, "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote svg chart (dark theme)")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	leftovers, err := filepath.Glob(filepath.Join(home, "charts", ".chart-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestChartExport_RejectsUnknownExtension(t *testing.T) {
	home := setupHome(t)
	out := filepath.Join(home, "sales.gif")

	_, err := executeCommand("chart", "export", "--out", out)
	var validationErr *galleryerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "format", validationErr.Field)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestChartExport_RequiresOut(t *testing.T) {
	setupHome(t)

	_, err := executeCommand("chart", "export")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out")
}

func TestShowcaseCommand(t *testing.T) {
	setupHome(t)

	out, err := executeCommand("showcase", "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "Component Gallery")
	assert.Contains(t, out, "theme alpine-dark")
}

func TestShowcaseCommand_Both(t *testing.T) {
	setupHome(t)

	out, err := executeCommand("showcase", "--both")
	require.NoError(t, err)
	assert.Contains(t, out, "☀ Light")
	assert.Contains(t, out, "☾ Dark")
}

func TestRootCommand_PrintsShowcaseWithoutTerminal(t *testing.T) {
	setupHome(t)

	out, err := executeCommand()
	require.NoError(t, err)
	assert.Contains(t, out, "Component Gallery")
	assert.Contains(t, out, "Inventory")
}

func TestConfig_InvalidFileIsReported(t *testing.T) {
	home := setupHome(t)
	cfgPath := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme:\n  default: purple\n"), 0o644))

	_, err := executeCommand("theme", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load configuration")

	var validationErr *galleryerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "theme.default", validationErr.Field)
}

func TestConfig_MissingExplicitFileFails(t *testing.T) {
	home := setupHome(t)

	_, err := executeCommand("theme", "--config", filepath.Join(home, "absent.yaml"))
	var parseErr *galleryerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestConfig_DefaultThemeAndStorageKey(t *testing.T) {
	home := setupHome(t)
	cfgPath := filepath.Join(home, ".gallery", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme:\n  default: dark\n  storage_key: gallery.theme\n"), 0o644))

	out, err := executeCommand("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	_, err = executeCommand("theme", "set", "light")
	require.NoError(t, err)

	store, err := prefs.NewFileStore(filepath.Join(home, ".gallery", "preferences.json"), logger.Nop())
	require.NoError(t, err)
	value, ok := store.Get("gallery.theme")
	require.True(t, ok)
	assert.Equal(t, "light", value)
	_, ok = store.Get(theme.DefaultStorageKey)
	assert.False(t, ok)
}

func TestConfig_EphemeralPreferences(t *testing.T) {
	home := setupHome(t)
	cfgPath := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("preferences:\n  ephemeral: true\n"), 0o644))

	out, err := executeCommand("theme", "toggle", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "Theme set to dark\n", out)

	_, statErr := os.Stat(filepath.Join(home, ".gallery", "preferences.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCommandErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := newCommandError("do thing", "context", cause, "try again")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to do thing: context\n\nError: boom\n\nSuggestion: try again", err.Error())
}

func TestPaletteCommand_Diff(t *testing.T) {
	setupHome(t)

	out, err := executeCommand("palette", "--diff")
	require.NoError(t, err)
	assert.Contains(t, out, "--- light\n+++ dark\n")
	assert.Contains(t, out, "-theme: light\n")
	assert.Contains(t, out, "+theme: dark\n")
	assert.Contains(t, out, "+gridTheme: alpine-dark\n")
	assert.Contains(t, out, "6 lines removed, 6 added")
}
