package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the colour treatment of a Button.
type ButtonVariant int

const (
	ButtonDefault ButtonVariant = iota
	ButtonSecondary
	ButtonDestructive
	ButtonOutline
	ButtonGhost
	ButtonLink
)

// ButtonVariants lists every variant in display order.
func ButtonVariants() []ButtonVariant {
	return []ButtonVariant{ButtonDefault, ButtonSecondary, ButtonDestructive, ButtonOutline, ButtonGhost, ButtonLink}
}

func (v ButtonVariant) String() string {
	switch v {
	case ButtonSecondary:
		return "secondary"
	case ButtonDestructive:
		return "destructive"
	case ButtonOutline:
		return "outline"
	case ButtonGhost:
		return "ghost"
	case ButtonLink:
		return "link"
	default:
		return "default"
	}
}

// ButtonSize selects the padding of a Button.
type ButtonSize int

const (
	SizeDefault ButtonSize = iota
	SizeSmall
	SizeLarge
	SizeIcon
)

// ButtonSizes lists every size in display order.
func ButtonSizes() []ButtonSize {
	return []ButtonSize{SizeSmall, SizeDefault, SizeLarge, SizeIcon}
}

func (s ButtonSize) String() string {
	switch s {
	case SizeSmall:
		return "sm"
	case SizeLarge:
		return "lg"
	case SizeIcon:
		return "icon"
	default:
		return "default"
	}
}

// destructive red does not change with the theme.
const (
	destructiveBackground = "#ef4444"
	destructiveForeground = "#fafafa"
)

var buttonVariantStyles = map[ButtonVariant]StyleFunc{
	ButtonDefault: func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return s.
			Background(lipgloss.Color(ctx.Style.TextColor)).
			Foreground(lipgloss.Color(ctx.Style.TooltipBackground))
	},
	ButtonSecondary: func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return s.
			Background(lipgloss.Color(ctx.Style.GridColor)).
			Foreground(lipgloss.Color(ctx.Style.TextColor))
	},
	ButtonDestructive: func(s lipgloss.Style, _ RenderContext) lipgloss.Style {
		return s.
			Background(lipgloss.Color(destructiveBackground)).
			Foreground(lipgloss.Color(destructiveForeground))
	},
	ButtonOutline: func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return s.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ctx.Style.GridColor)).
			Foreground(lipgloss.Color(ctx.Style.TextColor))
	},
	ButtonGhost: Text,
	ButtonLink: func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return s.
			Foreground(lipgloss.Color(ctx.Style.LineColor)).
			Underline(true)
	},
}

// Button is a clickable label. It holds no behaviour; callers react to presses.
type Button struct {
	label    string
	variant  ButtonVariant
	size     ButtonSize
	disabled bool
	focused  bool
	appliers []StyleFunc
}

// NewButton creates a default-variant, default-size button.
func NewButton(label string) *Button {
	return &Button{label: label}
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.size = size
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocused marks the button as the keyboard target.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithAppliers appends extra theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.appliers = append(b.appliers, appliers...)
	return b
}

// SetLabel updates the label.
func (b *Button) SetLabel(label string) {
	b.label = label
}

// Label returns the label.
func (b *Button) Label() string { return b.label }

// Variant returns the variant.
func (b *Button) Variant() ButtonVariant { return b.variant }

// Size returns the size.
func (b *Button) Size() ButtonSize { return b.size }

// IsDisabled reports whether the button ignores presses.
func (b *Button) IsDisabled() bool { return b.disabled }

// Style computes the lipgloss style of the button for ctx.
func (b *Button) Style(ctx RenderContext) lipgloss.Style {
	style := sizeStyle(b.size)
	if fn, ok := buttonVariantStyles[b.variant]; ok {
		style = fn(style, ctx)
	}
	style = Compose(b.appliers...)(style, ctx)

	if b.disabled {
		style = style.Faint(true)
	}
	if b.focused || ctx.Focused {
		style = style.Bold(true).Underline(true)
	}
	return style
}

// View renders the button.
func (b *Button) View(ctx RenderContext) string {
	return b.Style(ctx).Render(b.label)
}

func sizeStyle(size ButtonSize) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch size {
	case SizeSmall:
		return base.Padding(0, 1)
	case SizeLarge:
		return base.Padding(1, 4)
	case SizeIcon:
		return base.Padding(0, 1)
	default:
		return base.Padding(0, 2)
	}
}

// Counter is a button that shows how often it has been pressed.
type Counter struct {
	*Button
	count int
}

// NewCounter creates a counter starting at zero.
func NewCounter() *Counter {
	c := &Counter{Button: NewButton("")}
	c.refresh()
	return c
}

// Click increments the count.
func (c *Counter) Click() int {
	c.count++
	c.refresh()
	return c.count
}

// Count returns the number of clicks so far.
func (c *Counter) Count() int { return c.count }

func (c *Counter) refresh() {
	c.SetLabel(fmt.Sprintf("Count is %d", c.count))
}

// ButtonGroup lays out buttons horizontally and tracks a keyboard cursor.
type ButtonGroup struct {
	buttons []*Button
	cursor  int
	gap     int
}

// NewButtonGroup creates a group of the given buttons.
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{buttons: buttons, gap: 1}
}

// WithGap sets the number of blank cells between buttons.
func (g *ButtonGroup) WithGap(gap int) *ButtonGroup {
	if gap >= 0 {
		g.gap = gap
	}
	return g
}

// Buttons returns the grouped buttons.
func (g *ButtonGroup) Buttons() []*Button { return g.buttons }

// Cursor returns the index of the focused button.
func (g *ButtonGroup) Cursor() int { return g.cursor }

// Move shifts the cursor by delta, wrapping around.
func (g *ButtonGroup) Move(delta int) {
	n := len(g.buttons)
	if n == 0 {
		return
	}
	g.cursor = ((g.cursor+delta)%n + n) % n
}

// Press returns the focused button index, or -1 when the group is empty or
// the focused button is disabled.
func (g *ButtonGroup) Press() int {
	if len(g.buttons) == 0 || g.buttons[g.cursor].IsDisabled() {
		return -1
	}
	return g.cursor
}

// View renders the buttons in a row. When ctx is focused the cursor button is highlighted.
func (g *ButtonGroup) View(ctx RenderContext) string {
	if len(g.buttons) == 0 {
		return ""
	}
	inner := ctx.WithFocus(false)
	parts := make([]string, 0, len(g.buttons)*2)
	for i, b := range g.buttons {
		if i > 0 && g.gap > 0 {
			parts = append(parts, strings.Repeat(" ", g.gap))
		}
		rendered := *b
		rendered.focused = ctx.Focused && i == g.cursor
		parts = append(parts, rendered.View(inner))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
