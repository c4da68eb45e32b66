package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/gallery/internal/theme"
)

// Config is the gallery configuration document.
type Config struct {
	Theme       ThemeConfig       `yaml:"theme"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Log         LogConfig         `yaml:"log"`
	Grid        GridConfig        `yaml:"grid"`
	Chart       ChartConfig       `yaml:"chart"`
}

// ThemeConfig controls how the theme store is initialised.
type ThemeConfig struct {
	// Default is used when nothing valid has been persisted.
	Default    string `yaml:"default" validate:"required,theme"`
	StorageKey string `yaml:"storage_key" validate:"required,storage_key"`
	// DetectTerminal picks the default from the terminal background instead.
	DetectTerminal bool `yaml:"detect_terminal"`
}

// PreferencesConfig locates the preferences file.
type PreferencesConfig struct {
	Path string `yaml:"path"`
	// Ephemeral keeps the preference in memory only.
	Ephemeral bool `yaml:"ephemeral"`
}

// LogConfig configures the zerolog logger.
type LogConfig struct {
	Level         string `yaml:"level" validate:"required,oneof=trace debug info warn error disabled"`
	HumanReadable bool   `yaml:"human_readable"`
}

// GridConfig configures the inventory grid.
type GridConfig struct {
	PageSize int `yaml:"page_size" validate:"min=1,max=100"`
}

// ChartConfig configures chart export.
type ChartConfig struct {
	Width  float64 `yaml:"width" validate:"gt=0,lte=40"`
	Height float64 `yaml:"height" validate:"gt=0,lte=40"`
	Format string  `yaml:"format" validate:"oneof=svg png pdf eps"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			Default:    theme.Default.String(),
			StorageKey: theme.DefaultStorageKey,
		},
		Log: LogConfig{
			Level:         "warn",
			HumanReadable: true,
		},
		Grid: GridConfig{
			PageSize: 10,
		},
		Chart: ChartConfig{
			Width:  8,
			Height: 4,
			Format: "svg",
		},
	}
}

// DefaultTheme returns the configured fallback theme.
func (c ThemeConfig) DefaultTheme() theme.Theme {
	t, err := theme.Parse(c.Default)
	if err != nil {
		return theme.Default
	}
	return t
}

// ResolvedPath expands a leading ~ in the preferences path.
func (p PreferencesConfig) ResolvedPath() (string, error) {
	path := strings.TrimSpace(p.Path)
	if path == "" || !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// DefaultPath returns ~/.gallery/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gallery", "config.yaml"), nil
}
