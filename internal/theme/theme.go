// Package theme holds the light/dark display mode shared by every widget,
// the palette derived from it, and the store that persists and broadcasts it.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Theme is the binary display mode selected by the user.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default is used when no valid preference has been persisted.
const Default = Light

// ErrInvalidTheme is returned for any value other than Light or Dark.
var ErrInvalidTheme = errors.New("theme must be \"light\" or \"dark\"")

// All lists the recognised themes in display order.
func All() []Theme {
	return []Theme{Light, Dark}
}

// Parse converts a user or storage supplied name into a Theme.
func Parse(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidTheme, value)
	}
}

// Valid reports whether t is one of the two recognised themes.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Toggle returns the opposite theme. Invalid values toggle to Dark, the
// opposite of the default.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == Dark
}

func (t Theme) String() string {
	return string(t)
}

// Label is the capitalised name shown in the interface.
func (t Theme) Label() string {
	switch t {
	case Dark:
		return "Dark"
	case Light:
		return "Light"
	default:
		return "Unknown"
	}
}

// GridThemeName returns the inventory grid skin matching t.
func GridThemeName(t Theme) string {
	if t == Dark {
		return "alpine-dark"
	}
	return "alpine"
}
