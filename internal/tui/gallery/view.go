package gallery

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gallery/internal/theme"
	"github.com/alexisbeaulieu97/gallery/internal/widgets"
)

// View renders the current model state
func (m Model) View() string {
	return m.render(true)
}

// Showcase renders every section once in t, with nothing focused and no key
// help, for output that is not a terminal.
func Showcase(t theme.Theme, width int) string {
	m := NewModel(theme.NewStore(nil, theme.WithDefault(t)), Options{})
	defer m.Close()

	if width > 0 {
		m.width = width
	}
	m.focus = noSection
	return m.render(false)
}

func (m Model) render(interactive bool) string {
	ctx := widgets.NewRenderContext(m.current).WithWidth(m.width)

	var content strings.Builder
	content.WriteString(m.renderHeader(ctx))
	content.WriteString("\n")

	if m.showError {
		content.WriteString(errorBannerStyle().Render("⚠ " + m.errorMsg))
		content.WriteString("\n\n")
	}

	for _, s := range Sections() {
		content.WriteString(m.renderSection(ctx, s))
		content.WriteString("\n")
	}

	if !interactive {
		return content.String()
	}

	if m.status != "" {
		content.WriteString(statusStyle(ctx).Render(m.status))
		content.WriteString("\n")
	}
	content.WriteString(m.help.View(m.keys))

	return content.String()
}

func (m Model) renderHeader(ctx widgets.RenderContext) string {
	title := titleStyle(ctx).Render("Component Gallery")
	return headerStyle(ctx).Render(lipgloss.JoinHorizontal(lipgloss.Center, title, m.toggle.View(ctx)))
}

// renderSection frames one section, highlighting it when focused.
func (m Model) renderSection(ctx widgets.RenderContext, s Section) string {
	focused := m.focus == s
	inner := ctx.WithFocus(focused)

	var body string
	switch s {
	case SectionButtons:
		rows := make([]string, len(m.rows))
		for i, g := range m.rows {
			rows[i] = g.View(inner.WithFocus(focused && i == m.row))
		}
		body = lipgloss.JoinVertical(lipgloss.Left, rows...)
	case SectionChart:
		body = m.chart.View(inner)
	case SectionAccordion:
		body = m.accordion.View(inner)
	case SectionSelect:
		body = m.picker.View(inner)
	case SectionInventory:
		body = m.grid.View(inner)
	}

	return widgets.Section(inner, s.String(), body)
}
