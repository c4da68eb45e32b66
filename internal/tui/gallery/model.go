// Package gallery is the interactive bubbletea page showing every widget.
package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gallery/internal/logger"
	"github.com/alexisbeaulieu97/gallery/internal/sample"
	"github.com/alexisbeaulieu97/gallery/internal/theme"
	"github.com/alexisbeaulieu97/gallery/internal/widgets"
)

const (
	minWidth    = 60
	minHeight   = 20
	chartHeight = 9
)

// Options tunes a new Model.
type Options struct {
	PageSize int
	Logger   *logger.Logger
}

// Model is the gallery page state.
type Model struct {
	store *theme.Store
	sub   *subscription
	log   *logger.Logger

	// Widgets
	toggle    *widgets.ThemeToggle
	rows      []*widgets.ButtonGroup
	row       int
	counter   *widgets.Counter
	chart     *widgets.LineChart
	accordion *widgets.Accordion
	picker    *widgets.Select
	grid      *widgets.Grid

	// UI state
	current theme.Theme
	focus   Section
	status  string
	keys    KeyMap
	help    help.Model

	showError bool
	errorMsg  string

	width  int
	height int
}

// NewModel builds the page over store and subscribes to it. Call Close (or
// quit the program) to drop the subscription.
func NewModel(store *theme.Store, opts Options) Model {
	counter := widgets.NewCounter()
	variants := make([]*widgets.Button, 0, len(widgets.ButtonVariants()))
	for _, v := range widgets.ButtonVariants() {
		variants = append(variants, widgets.NewButton(label(v.String())).WithVariant(v))
	}
	sizes := make([]*widgets.Button, 0, len(widgets.ButtonSizes())+1)
	for _, s := range widgets.ButtonSizes() {
		sizes = append(sizes, widgets.NewButton(sizeLabel(s)).WithVariant(widgets.ButtonOutline).WithSize(s))
	}
	sizes = append(sizes, counter.Button)

	m := Model{
		store:     store,
		sub:       newSubscription(store),
		log:       opts.Logger,
		toggle:    widgets.NewThemeToggle(store),
		rows:      []*widgets.ButtonGroup{widgets.NewButtonGroup(variants...), widgets.NewButtonGroup(sizes...)},
		counter:   counter,
		chart:     widgets.NewLineChart("value", chartHeight, ChartPoints(sample.Series())...),
		accordion: widgets.NewAccordion(AccordionItems(sample.FAQs())...),
		picker:    widgets.NewSelect("Select a fruit", SelectOptions(sample.Fruits())...),
		grid:      widgets.NewGrid(InventoryColumns(), InventoryRecords(sample.Inventory()), opts.PageSize),
		focus:     SectionButtons,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		width:     80,
		height:    24,
	}
	m.applyTheme(store.Theme())
	return m
}

// Init waits for the first theme change.
func (m Model) Init() tea.Cmd {
	return waitForThemeChange(m.sub)
}

// Close drops the store subscription. It is safe to call more than once.
func (m Model) Close() {
	m.sub.Close()
}

// Theme returns the theme the page is currently drawn with.
func (m Model) Theme() theme.Theme { return m.current }

// Focus returns the focused section.
func (m Model) Focus() Section { return m.focus }

// Status returns the last action message.
func (m Model) Status() string { return m.status }

func (m *Model) applyTheme(t theme.Theme) {
	m.current = t
	m.grid.ApplyStyle(theme.DeriveStyle(t))
}

func (m *Model) setFocus(s Section) {
	m.focus = s
	if s == SectionInventory {
		m.grid.Focus()
	} else {
		m.grid.Blur()
	}
	if s != SectionSelect {
		m.picker.SetOpen(false)
	}
}

func (m *Model) moveFocus(delta int) {
	n := int(sectionCount)
	m.setFocus(Section(((int(m.focus)+delta)%n + n) % n))
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.showError = true
	m.errorMsg = err.Error()
	m.log.Error(err, "gallery action failed")
}

// ChartPoints converts the sample series for the line chart.
func ChartPoints(points []sample.Point) []widgets.ChartPoint {
	out := make([]widgets.ChartPoint, len(points))
	for i, p := range points {
		out[i] = widgets.ChartPoint{Label: p.Name, Value: p.Value}
	}
	return out
}

// AccordionItems converts the sample FAQ.
func AccordionItems(faqs []sample.FAQ) []widgets.AccordionItem {
	out := make([]widgets.AccordionItem, len(faqs))
	for i, f := range faqs {
		out[i] = widgets.AccordionItem{Title: f.Question, Content: f.Answer}
	}
	return out
}

// SelectOptions converts the sample options.
func SelectOptions(options []sample.Option) []widgets.SelectOption {
	out := make([]widgets.SelectOption, len(options))
	for i, o := range options {
		out[i] = widgets.SelectOption{Value: o.Value, Label: o.Label}
	}
	return out
}

// InventoryColumns are the grid columns for sample.InventoryItem rows.
func InventoryColumns() []widgets.Column {
	return []widgets.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 20},
		{Title: "Quantity", Width: 10},
		{Title: "Price", Width: 10, Format: func(v any) string {
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("$%.2f", f)
			}
			return fmt.Sprint(v)
		}},
	}
}

// InventoryRecords converts the sample inventory to grid records.
func InventoryRecords(items []sample.InventoryItem) []widgets.Record {
	out := make([]widgets.Record, len(items))
	for i, it := range items {
		out[i] = widgets.Record{it.ID, it.Name, it.Quantity, it.Price}
	}
	return out
}

func sizeLabel(s widgets.ButtonSize) string {
	switch s {
	case widgets.SizeSmall:
		return "Small"
	case widgets.SizeLarge:
		return "Large"
	case widgets.SizeIcon:
		return "➜"
	default:
		return "Default"
	}
}

func label(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
