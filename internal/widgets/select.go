package widgets

import (
	"github.com/charmbracelet/lipgloss"
)

// SelectOption is one choice of a Select.
type SelectOption struct {
	Value string
	Label string
}

// Select is a dropdown holding at most one chosen option.
type Select struct {
	options     []SelectOption
	placeholder string
	selected    int
	cursor      int
	open        bool
	width       int
}

// NewSelect creates a closed select with nothing chosen.
func NewSelect(placeholder string, options ...SelectOption) *Select {
	return &Select{options: options, placeholder: placeholder, selected: -1, width: 20}
}

// WithWidth sets the trigger width in cells.
func (s *Select) WithWidth(width int) *Select {
	if width > 0 {
		s.width = width
	}
	return s
}

// Options returns the available choices.
func (s *Select) Options() []SelectOption { return s.options }

// IsOpen reports whether the option list is shown.
func (s *Select) IsOpen() bool { return s.open }

// Cursor returns the highlighted option index.
func (s *Select) Cursor() int { return s.cursor }

// Selected returns the chosen option.
func (s *Select) Selected() (SelectOption, bool) {
	if s.selected < 0 || s.selected >= len(s.options) {
		return SelectOption{}, false
	}
	return s.options[s.selected], true
}

// SetOpen opens or closes the list. Opening moves the cursor to the chosen option.
func (s *Select) SetOpen(open bool) {
	if len(s.options) == 0 {
		s.open = false
		return
	}
	if open && !s.open && s.selected >= 0 {
		s.cursor = s.selected
	}
	s.open = open
}

// Toggle flips the open state.
func (s *Select) Toggle() {
	s.SetOpen(!s.open)
}

// MoveCursor moves the highlight by delta while open, wrapping around.
func (s *Select) MoveCursor(delta int) {
	n := len(s.options)
	if !s.open || n == 0 {
		return
	}
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// Choose selects the highlighted option and closes the list.
func (s *Select) Choose() (SelectOption, bool) {
	if !s.open || len(s.options) == 0 {
		return SelectOption{}, false
	}
	s.selected = s.cursor
	s.open = false
	return s.options[s.selected], true
}

// SelectValue chooses the option with the given value.
func (s *Select) SelectValue(value string) bool {
	for i, opt := range s.options {
		if opt.Value == value {
			s.selected = i
			s.cursor = i
			return true
		}
	}
	return false
}

// Clear removes the current choice.
func (s *Select) Clear() {
	s.selected = -1
}

// View renders the trigger and, when open, the option list.
func (s *Select) View(ctx RenderContext) string {
	border := lipgloss.Color(ctx.Style.GridColor)
	if ctx.Focused {
		border = lipgloss.Color(ctx.Style.LineColor)
	}

	label := s.placeholder
	labelStyle := Muted(lipgloss.NewStyle(), ctx)
	if opt, ok := s.Selected(); ok {
		label = opt.Label
		labelStyle = Text(lipgloss.NewStyle(), ctx)
	}
	chevron := "▾"
	if s.open {
		chevron = "▴"
	}

	inner := s.width - 4
	if inner < 1 {
		inner = 1
	}
	trigger := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Width(inner-2).Render(label),
			Text(lipgloss.NewStyle(), ctx).Render(" "+chevron),
		))

	if !s.open {
		return trigger
	}

	rows := make([]string, 0, len(s.options))
	for i, opt := range s.options {
		mark := "  "
		if i == s.selected {
			mark = "✓ "
		}
		style := Text(lipgloss.NewStyle(), ctx).Width(inner)
		if i == s.cursor {
			style = style.
				Background(lipgloss.Color(ctx.Style.LineColor)).
				Foreground(lipgloss.Color(ctx.Style.TooltipBackground))
		}
		rows = append(rows, style.Render(mark+opt.Label))
	}

	list := Surface(lipgloss.NewStyle(), ctx).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ctx.Style.GridColor)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return lipgloss.JoinVertical(lipgloss.Left, trigger, list)
}
