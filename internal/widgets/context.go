package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gallery/internal/theme"
)

// RenderContext carries the theme and derived colours into a View call.
type RenderContext struct {
	Theme   theme.Theme
	Style   theme.StyleParams
	Width   int
	Focused bool
}

// NewRenderContext derives the style for t and returns an unconstrained context.
func NewRenderContext(t theme.Theme) RenderContext {
	return RenderContext{
		Theme: t,
		Style: theme.DeriveStyle(t),
	}
}

// WithWidth returns a copy of the context constrained to width cells.
func (c RenderContext) WithWidth(width int) RenderContext {
	c.Width = width
	return c
}

// WithFocus returns a copy of the context with the focus flag set.
func (c RenderContext) WithFocus(focused bool) RenderContext {
	c.Focused = focused
	return c
}

// StyleFunc applies theme colours to a lipgloss style.
type StyleFunc func(lipgloss.Style, RenderContext) lipgloss.Style

// Compose applies fns in order.
func Compose(fns ...StyleFunc) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		for _, fn := range fns {
			if fn != nil {
				base = fn(base, ctx)
			}
		}
		return base
	}
}

// Text colours the foreground with the theme text colour.
func Text(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
	return base.Foreground(lipgloss.Color(ctx.Style.TextColor))
}

// Accent colours the foreground with the theme line colour.
func Accent(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
	return base.Foreground(lipgloss.Color(ctx.Style.LineColor))
}

// Muted colours the foreground with the theme grid colour.
func Muted(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
	return base.Foreground(lipgloss.Color(ctx.Style.GridColor))
}

// Surface paints the tooltip background behind text-coloured content.
func Surface(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
	return base.
		Background(lipgloss.Color(ctx.Style.TooltipBackground)).
		Foreground(lipgloss.Color(ctx.Style.TextColor))
}

// Render styles s with fn applied to a fresh style.
func (c RenderContext) Render(fn StyleFunc, s string) string {
	return fn(lipgloss.NewStyle(), c).Render(s)
}

// Section frames body under a heading. Focused sections get an accent border.
func Section(ctx RenderContext, title, body string) string {
	heading := Compose(Text, bold)(lipgloss.NewStyle(), ctx).Render(title)

	border := lipgloss.Color(ctx.Style.GridColor)
	if ctx.Focused {
		border = lipgloss.Color(ctx.Style.LineColor)
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if ctx.Width > 4 {
		frame = frame.Width(ctx.Width - 2)
	}

	return lipgloss.JoinVertical(lipgloss.Left, heading, frame.Render(body))
}

func bold(base lipgloss.Style, _ RenderContext) lipgloss.Style {
	return base.Bold(true)
}
