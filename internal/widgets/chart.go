package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChartPoint is one category of a LineChart series.
type ChartPoint struct {
	Label string
	Value float64
}

// ChartStyles are the lipgloss styles a LineChart draws with.
type ChartStyles struct {
	Line    lipgloss.Style
	Grid    lipgloss.Style
	Axis    lipgloss.Style
	Legend  lipgloss.Style
	Tooltip lipgloss.Style
}

// NewChartStyles derives the chart styles from ctx.
func NewChartStyles(ctx RenderContext) ChartStyles {
	return ChartStyles{
		Line:   Compose(Accent, bold)(lipgloss.NewStyle(), ctx),
		Grid:   Muted(lipgloss.NewStyle(), ctx),
		Axis:   Text(lipgloss.NewStyle(), ctx),
		Legend: Text(lipgloss.NewStyle(), ctx),
		Tooltip: Surface(lipgloss.NewStyle(), ctx).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ctx.Style.GridColor)).
			BorderBackground(lipgloss.Color(ctx.Style.TooltipBackground)).
			Padding(0, 1),
	}
}

const (
	minChartHeight   = 5
	chartColumnWidth = 6
	chartGridLines   = 4
)

// LineChart draws a single series as a character plot with a tooltip for the
// point under the cursor.
type LineChart struct {
	points     []ChartPoint
	seriesName string
	height     int
	cursor     int
}

// NewLineChart creates a chart of the given plot height in rows.
func NewLineChart(seriesName string, height int, points ...ChartPoint) *LineChart {
	if height < minChartHeight {
		height = minChartHeight
	}
	return &LineChart{points: points, seriesName: seriesName, height: height}
}

// Points returns the plotted series.
func (c *LineChart) Points() []ChartPoint { return c.points }

// Cursor returns the index of the point shown in the tooltip.
func (c *LineChart) Cursor() int { return c.cursor }

// MoveCursor shifts the tooltip by delta points, clamped to the series.
func (c *LineChart) MoveCursor(delta int) {
	if len(c.points) == 0 {
		return
	}
	c.cursor += delta
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor >= len(c.points) {
		c.cursor = len(c.points) - 1
	}
}

// Domain returns the y range the chart is scaled to. The lower bound is zero
// unless the series goes negative; the upper bound is rounded up to a
// multiple of a power of ten.
func (c *LineChart) Domain() (float64, float64) {
	if len(c.points) == 0 {
		return 0, 1
	}
	lo, hi := 0.0, 0.0
	for _, p := range c.points {
		if !finite(p.Value) {
			continue
		}
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}
	return -niceCeil(-lo), niceCeil(hi)
}

func niceCeil(v float64) float64 {
	if v <= 0 {
		return 0
	}
	step := math.Pow(10, math.Floor(math.Log10(v)))
	return math.Ceil(v/step) * step
}

// row maps a value to a canvas row, 0 being the top. Non-finite values sit on
// the baseline and the result is always a valid row.
func (c *LineChart) row(v, lo, hi float64) int {
	if hi == lo || !finite(v) {
		return c.height - 1
	}
	r := int(math.Round((hi - v) / (hi - lo) * float64(c.height-1)))
	return max(0, min(r, c.height-1))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type cellKind int

const (
	cellEmpty cellKind = iota
	cellGrid
	cellLine
	cellPoint
	cellCursor
)

func (c *LineChart) canvas() [][]cellKind {
	width := (len(c.points)-1)*chartColumnWidth + 1
	if width < 1 {
		width = 1
	}
	cells := make([][]cellKind, c.height)
	for r := range cells {
		cells[r] = make([]cellKind, width)
		if c.isGridRow(r) {
			for x := range cells[r] {
				if x%2 == 0 {
					cells[r][x] = cellGrid
				}
			}
		}
	}

	lo, hi := c.Domain()
	for i := 0; i+1 < len(c.points); i++ {
		a, b := c.points[i].Value, c.points[i+1].Value
		for step := 1; step < chartColumnWidth; step++ {
			t := float64(step) / chartColumnWidth
			x := i*chartColumnWidth + step
			from := c.row(a+(b-a)*t, lo, hi)
			to := c.row(a+(b-a)*float64(step+1)/chartColumnWidth, lo, hi)
			if from > to {
				from, to = to, from
			}
			for r := from; r <= to && r < c.height; r++ {
				cells[r][x] = cellLine
			}
		}
	}
	for i, p := range c.points {
		kind := cellPoint
		if i == c.cursor {
			kind = cellCursor
		}
		cells[c.row(p.Value, lo, hi)][i*chartColumnWidth] = kind
	}
	return cells
}

func (c *LineChart) isGridRow(r int) bool {
	return (r*chartGridLines)%(c.height-1) == 0
}

func (c *LineChart) gridValue(r int) float64 {
	lo, hi := c.Domain()
	return hi - (hi-lo)*float64(r)/float64(c.height-1)
}

// View renders the plot, axis labels, legend and tooltip.
func (c *LineChart) View(ctx RenderContext) string {
	styles := NewChartStyles(ctx)
	if len(c.points) == 0 {
		return styles.Axis.Render("no data")
	}

	const labelWidth = 6
	glyphs := map[cellKind]string{cellEmpty: " ", cellGrid: "┈", cellLine: "•", cellPoint: "●", cellCursor: "◆"}

	var lines []string
	for r, row := range c.canvas() {
		label := strings.Repeat(" ", labelWidth)
		if c.isGridRow(r) {
			label = fmt.Sprintf("%*s", labelWidth, formatTick(c.gridValue(r)))
		}

		var b strings.Builder
		b.WriteString(styles.Axis.Render(label + " ┤"))
		for _, cell := range row {
			switch cell {
			case cellGrid:
				b.WriteString(styles.Grid.Render(glyphs[cell]))
			case cellLine, cellPoint, cellCursor:
				b.WriteString(styles.Line.Render(glyphs[cell]))
			default:
				b.WriteString(glyphs[cell])
			}
		}
		lines = append(lines, b.String())
	}

	width := len(c.canvas()[0])
	lines = append(lines, styles.Axis.Render(strings.Repeat(" ", labelWidth)+" └"+strings.Repeat("─", width)))

	labels := []rune(strings.Repeat(" ", width+chartColumnWidth))
	for i, p := range c.points {
		start := i*chartColumnWidth - len(p.Label)/2
		if start < 0 {
			start = 0
		}
		for j, r := range p.Label {
			if start+j < len(labels) {
				labels[start+j] = r
			}
		}
	}
	lines = append(lines, styles.Axis.Render(strings.Repeat(" ", labelWidth+2)+strings.TrimRight(string(labels), " ")))

	legend := styles.Line.Render("━●━") + " " + styles.Legend.Render(c.seriesName)
	lines = append(lines, strings.Repeat(" ", labelWidth+2)+legend)

	plot := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.JoinHorizontal(lipgloss.Top, plot, "  ", c.Tooltip(ctx))
}

// Tooltip renders the box describing the point under the cursor.
func (c *LineChart) Tooltip(ctx RenderContext) string {
	if len(c.points) == 0 {
		return ""
	}
	p := c.points[c.cursor]
	styles := NewChartStyles(ctx)
	body := lipgloss.JoinVertical(lipgloss.Left,
		p.Label,
		fmt.Sprintf("%s : %s", c.seriesName, formatTick(p.Value)),
	)
	return styles.Tooltip.Render(body)
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
