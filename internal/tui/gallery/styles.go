package gallery

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gallery/internal/widgets"
)

// Fixed banner colours; they read on both palettes.
var (
	errorColor = lipgloss.Color("#ef4444")
	errorText  = lipgloss.Color("#fafafa")
)

func titleStyle(ctx widgets.RenderContext) lipgloss.Style {
	return widgets.Accent(lipgloss.NewStyle(), ctx).
		Bold(true).
		PaddingRight(2)
}

func headerStyle(ctx widgets.RenderContext) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(ctx.Style.GridColor)).
		MarginBottom(1)
}

func errorBannerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(errorText).
		Background(errorColor).
		Padding(0, 1)
}

func statusStyle(ctx widgets.RenderContext) lipgloss.Style {
	return widgets.Text(lipgloss.NewStyle(), ctx).Italic(true)
}
