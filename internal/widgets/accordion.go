package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AccordionItem is one collapsible entry.
type AccordionItem struct {
	Title   string
	Content string
}

// Accordion shows a list of titles of which at most one is expanded.
type Accordion struct {
	items       []AccordionItem
	open        int
	cursor      int
	collapsible bool
}

// NewAccordion creates a collapsible accordion with every item closed.
func NewAccordion(items ...AccordionItem) *Accordion {
	return &Accordion{items: items, open: -1, collapsible: true}
}

// WithCollapsible controls whether the open item can be closed again.
func (a *Accordion) WithCollapsible(collapsible bool) *Accordion {
	a.collapsible = collapsible
	return a
}

// Items returns the accordion entries.
func (a *Accordion) Items() []AccordionItem { return a.items }

// Cursor returns the index of the focused item.
func (a *Accordion) Cursor() int { return a.cursor }

// Open returns the index of the expanded item.
func (a *Accordion) Open() (int, bool) {
	return a.open, a.open >= 0
}

// IsOpen reports whether item i is expanded.
func (a *Accordion) IsOpen(i int) bool {
	return a.open >= 0 && a.open == i
}

// Toggle expands item i, collapsing any other. Toggling the open item
// collapses it when the accordion is collapsible. Out of range indexes are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= len(a.items) {
		return
	}
	if a.open == i {
		if a.collapsible {
			a.open = -1
		}
		return
	}
	a.open = i
}

// ToggleCursor toggles the focused item.
func (a *Accordion) ToggleCursor() {
	a.Toggle(a.cursor)
}

// MoveCursor moves focus by delta, wrapping around.
func (a *Accordion) MoveCursor(delta int) {
	n := len(a.items)
	if n == 0 {
		return
	}
	a.cursor = ((a.cursor+delta)%n + n) % n
}

// View renders titles with a chevron and the content of the open item.
func (a *Accordion) View(ctx RenderContext) string {
	if len(a.items) == 0 {
		return ""
	}

	titleStyle := Text(lipgloss.NewStyle(), ctx)
	cursorStyle := Compose(Accent, bold)(lipgloss.NewStyle(), ctx)
	contentStyle := Text(lipgloss.NewStyle(), ctx).PaddingLeft(4)
	rule := Muted(lipgloss.NewStyle(), ctx)

	width := 0
	for _, item := range a.items {
		if w := lipgloss.Width(item.Title) + 4; w > width {
			width = w
		}
	}
	if ctx.Width > width {
		width = ctx.Width
	}

	var rows []string
	for i, item := range a.items {
		chevron := "▸"
		if a.IsOpen(i) {
			chevron = "▾"
		}
		line := chevron + " " + item.Title
		if ctx.Focused && i == a.cursor {
			line = cursorStyle.Render(line)
		} else {
			line = titleStyle.Render(line)
		}
		rows = append(rows, line)
		if a.IsOpen(i) {
			rows = append(rows, contentStyle.Render(item.Content))
		}
		rows = append(rows, rule.Render(strings.Repeat("─", width)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
