package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gallery/internal/theme"
)

// ThemeToggle switches the store between light and dark.
type ThemeToggle struct {
	store *theme.Store
}

// NewThemeToggle creates a toggle bound to store.
func NewThemeToggle(store *theme.Store) *ThemeToggle {
	return &ThemeToggle{store: store}
}

// Activate flips the theme and returns the new value.
func (t *ThemeToggle) Activate() (theme.Theme, error) {
	return t.store.Toggle()
}

// Icon returns the glyph for th.
func Icon(th theme.Theme) string {
	if th.IsDark() {
		return "☾"
	}
	return "☀"
}

// View renders the active theme and the key hint for switching.
func (t *ThemeToggle) View(ctx RenderContext) string {
	current := ctx.Theme
	badge := NewButton(Icon(current) + " " + current.Label()).
		WithVariant(ButtonOutline).
		WithSize(SizeSmall).
		View(ctx.WithFocus(false))
	hint := Muted(lipgloss.NewStyle(), ctx).Render("t: switch to " + current.Toggle().Label())
	return lipgloss.JoinHorizontal(lipgloss.Center, badge, " ", hint)
}
