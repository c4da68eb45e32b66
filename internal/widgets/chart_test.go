package widgets

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gallery/internal/theme"
)

func monthlyChart() *LineChart {
	return NewLineChart("value", 9,
		ChartPoint{Label: "Jan", Value: 400},
		ChartPoint{Label: "Feb", Value: 300},
		ChartPoint{Label: "Mar", Value: 600},
		ChartPoint{Label: "Apr", Value: 800},
		ChartPoint{Label: "May", Value: 500},
		ChartPoint{Label: "Jun", Value: 700},
	)
}

func TestChartDomain(t *testing.T) {
	t.Parallel()

	lo, hi := monthlyChart().Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 800.0, hi)

	lo, hi = NewLineChart("v", 5, ChartPoint{Value: -35}, ChartPoint{Value: 1234}).Domain()
	assert.Equal(t, -40.0, lo)
	assert.Equal(t, 2000.0, hi)

	lo, hi = NewLineChart("v", 5).Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestChartCursorClamps(t *testing.T) {
	t.Parallel()

	c := monthlyChart()
	c.MoveCursor(-3)
	assert.Equal(t, 0, c.Cursor())
	c.MoveCursor(100)
	assert.Equal(t, 5, c.Cursor())
}

func TestChartViewIncludesAxesLegendAndTooltip(t *testing.T) {
	t.Parallel()

	c := monthlyChart()
	c.MoveCursor(2)
	out := c.View(NewRenderContext(theme.Light))

	for _, month := range []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"} {
		assert.Contains(t, out, month)
	}
	assert.Contains(t, out, "800 ┤")
	assert.Contains(t, out, "0 ┤")
	assert.Contains(t, out, "value : 600")
	assert.Contains(t, out, "◆")
	assert.Contains(t, out, "━●━ value")
}

func TestChartPlotsHighestPointOnTopRow(t *testing.T) {
	t.Parallel()

	c := monthlyChart()
	cells := c.canvas()
	require.Len(t, cells, 9)
	assert.Equal(t, cellPoint, cells[0][3*chartColumnWidth], "Apr is the maximum")
	assert.Equal(t, cellCursor, cells[c.row(400, 0, 800)][0], "cursor starts on Jan")
}

func TestChartNonFiniteValues(t *testing.T) {
	t.Parallel()

	c := NewLineChart("v", 5,
		ChartPoint{Label: "a", Value: 10},
		ChartPoint{Label: "b", Value: math.NaN()},
		ChartPoint{Label: "c", Value: math.Inf(1)},
		ChartPoint{Label: "d", Value: math.Inf(-1)},
		ChartPoint{Label: "e", Value: 20},
	)

	lo, hi := c.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 20.0, hi)

	assert.Equal(t, 4, c.row(math.NaN(), lo, hi))
	assert.Equal(t, 4, c.row(math.Inf(1), lo, hi))
	assert.Equal(t, 0, c.row(1e9, lo, hi))
	assert.Equal(t, 4, c.row(-1e9, lo, hi))

	assert.NotPanics(t, func() {
		for i := 0; i < 5; i++ {
			c.MoveCursor(1)
			_ = c.View(NewRenderContext(theme.Dark))
		}
	})
}

func TestChartStylesFollowTheme(t *testing.T) {
	t.Parallel()

	styles := NewChartStyles(NewRenderContext(theme.Dark))
	assert.Equal(t, lipgloss.Color("#10b981"), styles.Line.GetForeground())
	assert.Equal(t, lipgloss.Color("#374151"), styles.Grid.GetForeground())
	assert.Equal(t, lipgloss.Color("#d1d5db"), styles.Axis.GetForeground())
	assert.Equal(t, lipgloss.Color("#1f2937"), styles.Tooltip.GetBackground())
	assert.Equal(t, lipgloss.Color("#374151"), styles.Tooltip.GetBorderTopForeground())

	light := NewChartStyles(NewRenderContext(theme.Light))
	assert.Equal(t, lipgloss.Color("#ffffff"), light.Tooltip.GetBackground())
}

func TestEmptyChart(t *testing.T) {
	t.Parallel()

	c := NewLineChart("value", 2)
	c.MoveCursor(1)
	assert.Equal(t, "no data", strings.TrimSpace(c.View(NewRenderContext(theme.Light))))
	assert.Empty(t, c.Tooltip(NewRenderContext(theme.Light)))
}
