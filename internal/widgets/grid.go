package widgets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gallery/internal/theme"
)

// Column describes one grid column. Format turns a cell value into text; when
// nil the value is printed with %v.
type Column struct {
	Title  string
	Width  int
	Format func(any) string
}

// Record is one grid row. Cells hold int, float64 or string values so that
// sorting compares them by kind rather than by text.
type Record []any

// SortOrder is the direction of the active sort.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAscending
	SortDescending
)

// DefaultPageSize is the number of rows shown per page unless configured.
const DefaultPageSize = 10

// Grid is a sortable, filterable, paginated table.
type Grid struct {
	columns []Column
	records []Record

	sortColumn int
	sortOrder  SortOrder
	filter     string

	visible   []Record
	table     table.Model
	paginator paginator.Model
	input     textinput.Model
	filtering bool
	applied   theme.StyleParams
}

// NewGrid builds a grid over records with the given page size.
func NewGrid(columns []Column, records []Record, pageSize int) *Grid {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = pageSize

	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "filter rows"
	input.CharLimit = 64

	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}

	g := &Grid{
		columns:    columns,
		records:    records,
		sortColumn: -1,
		paginator:  p,
		input:      input,
		table: table.New(
			table.WithColumns(cols),
			table.WithHeight(pageSize+1),
		),
	}
	g.ApplyStyle(theme.DeriveStyle(theme.Default))
	g.refresh()
	return g
}

// ApplyStyle restyles the table for params. The bubbles table keeps its
// styles, so this must run whenever the theme changes.
func (g *Grid) ApplyStyle(params theme.StyleParams) {
	g.applied = params
	g.table.SetStyles(GridStyles(params))
	g.input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(params.LineColor))
	g.input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(params.TextColor))
	g.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(params.GridColor))
}

// AppliedStyle returns the params last passed to ApplyStyle.
func (g *Grid) AppliedStyle() theme.StyleParams { return g.applied }

// GridStyles derives bubbles table styles from params.
func GridStyles(params theme.StyleParams) table.Styles {
	return table.Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color(params.TextColor)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color(params.GridColor)),
		Cell: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(params.TextColor)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(params.TooltipBackground)).
			Background(lipgloss.Color(params.LineColor)),
	}
}

// Focus gives the table keyboard focus.
func (g *Grid) Focus() { g.table.Focus() }

// Blur removes keyboard focus.
func (g *Grid) Blur() { g.table.Blur() }

// SortBy sorts by column ascending, or flips the direction when column is
// already the sort column. Out of range columns are ignored.
func (g *Grid) SortBy(column int) {
	if column < 0 || column >= len(g.columns) {
		return
	}
	if g.sortColumn == column && g.sortOrder == SortAscending {
		g.sortOrder = SortDescending
	} else {
		g.sortColumn = column
		g.sortOrder = SortAscending
	}
	g.refresh()
}

// CycleSort moves the sort to the next column, ascending. After the last
// column the grid returns to its original order.
func (g *Grid) CycleSort() {
	next := g.sortColumn + 1
	if next >= len(g.columns) {
		g.sortColumn = -1
		g.sortOrder = SortNone
		g.refresh()
		return
	}
	g.sortColumn = next
	g.sortOrder = SortAscending
	g.refresh()
}

// ReverseSort flips the direction of the active sort.
func (g *Grid) ReverseSort() {
	switch g.sortOrder {
	case SortAscending:
		g.sortOrder = SortDescending
	case SortDescending:
		g.sortOrder = SortAscending
	default:
		return
	}
	g.refresh()
}

// Sort returns the active sort column (-1 for none) and direction.
func (g *Grid) Sort() (int, SortOrder) { return g.sortColumn, g.sortOrder }

// SetFilter keeps only records with a cell containing query, ignoring case.
// The grid returns to the first page.
func (g *Grid) SetFilter(query string) {
	g.filter = strings.TrimSpace(query)
	g.paginator.Page = 0
	g.refresh()
}

// Filter returns the active filter query.
func (g *Grid) Filter() string { return g.filter }

// StartFilter focuses the filter input.
func (g *Grid) StartFilter() tea.Cmd {
	g.filtering = true
	g.input.SetValue(g.filter)
	g.input.CursorEnd()
	return g.input.Focus()
}

// StopFilter leaves the filter input, keeping the current query.
func (g *Grid) StopFilter() {
	g.filtering = false
	g.input.Blur()
}

// Filtering reports whether keystrokes go to the filter input.
func (g *Grid) Filtering() bool { return g.filtering }

// NextPage advances one page if possible.
func (g *Grid) NextPage() {
	g.paginator.NextPage()
	g.refresh()
}

// PrevPage goes back one page if possible.
func (g *Grid) PrevPage() {
	g.paginator.PrevPage()
	g.refresh()
}

// Page returns the zero-based current page and the page count.
func (g *Grid) Page() (int, int) { return g.paginator.Page, g.paginator.TotalPages }

// Matches returns every record passing the filter, in sort order.
func (g *Grid) Matches() []Record {
	matches := make([]Record, 0, len(g.records))
	query := strings.ToLower(g.filter)
	for _, r := range g.records {
		if query == "" || g.matches(r, query) {
			matches = append(matches, r)
		}
	}

	if g.sortOrder != SortNone && g.sortColumn >= 0 {
		col, desc := g.sortColumn, g.sortOrder == SortDescending
		sort.SliceStable(matches, func(i, j int) bool {
			if desc {
				return less(matches[j][col], matches[i][col])
			}
			return less(matches[i][col], matches[j][col])
		})
	}
	return matches
}

// Visible returns the records on the current page.
func (g *Grid) Visible() []Record { return g.visible }

// Selected returns the record under the table cursor.
func (g *Grid) Selected() (Record, bool) {
	i := g.table.Cursor()
	if i < 0 || i >= len(g.visible) {
		return nil, false
	}
	return g.visible[i], true
}

// Update routes key messages to the filter input while filtering and to the
// table otherwise.
func (g *Grid) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if g.filtering {
		g.input, cmd = g.input.Update(msg)
		if g.input.Value() != g.filter {
			g.SetFilter(g.input.Value())
		}
		return cmd
	}
	g.table, cmd = g.table.Update(msg)
	return cmd
}

// View renders the filter line, table, pager and skin caption.
func (g *Grid) View(ctx RenderContext) string {
	muted := Muted(lipgloss.NewStyle(), ctx)
	text := Text(lipgloss.NewStyle(), ctx)

	filterLine := muted.Render("/ to filter")
	if g.filtering {
		filterLine = g.input.View()
	} else if g.filter != "" {
		filterLine = text.Render(fmt.Sprintf("filter: %q", g.filter))
	}

	body := g.table.View()
	if len(g.visible) == 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, body, muted.Render("No rows to show"))
	}

	page, total := g.Page()
	if total == 0 {
		total = 1
	}
	pager := text.Render(fmt.Sprintf("Page %d of %d", page+1, total))
	count := muted.Render(fmt.Sprintf("  %d of %d rows", len(g.Matches()), len(g.records)))
	caption := muted.Render("  theme " + theme.GridThemeName(ctx.Theme))

	return lipgloss.JoinVertical(lipgloss.Left,
		filterLine,
		body,
		pager+count+caption,
	)
}

func (g *Grid) matches(r Record, query string) bool {
	for i, cell := range r {
		if strings.Contains(strings.ToLower(g.format(i, cell)), query) {
			return true
		}
	}
	return false
}

func (g *Grid) format(column int, v any) string {
	if column < len(g.columns) && g.columns[column].Format != nil {
		return g.columns[column].Format(v)
	}
	return fmt.Sprintf("%v", v)
}

func (g *Grid) refresh() {
	matches := g.Matches()
	if len(matches) == 0 {
		g.paginator.TotalPages = 1
	} else {
		g.paginator.SetTotalPages(len(matches))
	}
	if g.paginator.Page >= g.paginator.TotalPages {
		g.paginator.Page = g.paginator.TotalPages - 1
	}

	start, end := g.paginator.GetSliceBounds(len(matches))
	g.visible = matches[start:end]

	rows := make([]table.Row, len(g.visible))
	for i, r := range g.visible {
		row := make(table.Row, len(g.columns))
		for c := range g.columns {
			if c < len(r) {
				row[c] = g.format(c, r[c])
			}
		}
		rows[i] = row
	}

	cols := make([]table.Column, len(g.columns))
	for i, c := range g.columns {
		title := c.Title
		if i == g.sortColumn {
			switch g.sortOrder {
			case SortAscending:
				title += " ▲"
			case SortDescending:
				title += " ▼"
			}
		}
		cols[i] = table.Column{Title: title, Width: c.Width}
	}

	g.table.SetRows(rows)
	g.table.SetColumns(cols)
	if g.table.Cursor() >= len(rows) {
		g.table.SetCursor(max(len(rows)-1, 0))
	}
}

func less(a, b any) bool {
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.ToLower(av) < strings.ToLower(bv)
		}
	}
	return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
}
