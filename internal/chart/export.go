// Package chart renders the gallery line chart to image and document formats.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexisbeaulieu97/gallery/internal/sample"
	"github.com/alexisbeaulieu97/gallery/internal/theme"
	galleryerrors "github.com/alexisbeaulieu97/gallery/pkg/errors"
)

// Options controls an export. Zero values fall back to the defaults below.
type Options struct {
	Theme      theme.Theme
	Format     string
	Width      float64 // inches
	Height     float64 // inches
	Title      string
	SeriesName string
	Points     []sample.Point
}

const (
	DefaultFormat = "svg"
	DefaultWidth  = 8.0
	DefaultHeight = 4.0
)

var formats = []string{"svg", "png", "pdf", "eps"}

// Formats lists the supported output formats.
func Formats() []string {
	return append([]string(nil), formats...)
}

func (o Options) withDefaults() Options {
	if !o.Theme.Valid() {
		o.Theme = theme.Default
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	o.Format = strings.ToLower(o.Format)
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.SeriesName == "" {
		o.SeriesName = "value"
	}
	if o.Points == nil {
		o.Points = sample.Series()
	}
	return o
}

// Palette is the theme palette converted to image colours.
type Palette struct {
	Line       color.Color
	Grid       color.Color
	Text       color.Color
	Background color.Color
}

// NewPalette parses the hex colours of params.
func NewPalette(params theme.StyleParams) (Palette, error) {
	parse := func(key, value string) (color.Color, error) {
		c, err := colorful.Hex(value)
		if err != nil {
			return nil, galleryerrors.NewValidationError(key, fmt.Sprintf("invalid colour %q", value), err)
		}
		return c, nil
	}

	var (
		p   Palette
		err error
	)
	if p.Line, err = parse(theme.KeyLineColor, params.LineColor); err != nil {
		return Palette{}, err
	}
	if p.Grid, err = parse(theme.KeyGridColor, params.GridColor); err != nil {
		return Palette{}, err
	}
	if p.Text, err = parse(theme.KeyTextColor, params.TextColor); err != nil {
		return Palette{}, err
	}
	if p.Background, err = parse(theme.KeyTooltipBackground, params.TooltipBackground); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// Build assembles the plot for opts without rendering it.
func Build(opts Options) (*plot.Plot, error) {
	opts = opts.withDefaults()

	pal, err := NewPalette(theme.DeriveStyle(opts.Theme))
	if err != nil {
		return nil, err
	}

	p, err := plot.New()
	if err != nil {
		return nil, fmt.Errorf("create plot: %w", err)
	}

	p.BackgroundColor = pal.Background
	p.Title.Text = opts.Title
	p.Title.TextStyle.Color = pal.Text
	p.Legend.TextStyle.Color = pal.Text
	p.Legend.Top = true
	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.LineStyle.Color = pal.Text
		axis.Label.TextStyle.Color = pal.Text
		axis.Tick.Label.Color = pal.Text
		axis.Tick.LineStyle.Color = pal.Text
	}
	p.Y.Min = 0

	dashes := []vg.Length{vg.Points(3), vg.Points(3)}
	grid := plotter.NewGrid()
	grid.Vertical.Color = pal.Grid
	grid.Vertical.Dashes = dashes
	grid.Horizontal.Color = pal.Grid
	grid.Horizontal.Dashes = dashes

	xys := make(plotter.XYs, len(opts.Points))
	names := make([]string, len(opts.Points))
	for i, pt := range opts.Points {
		xys[i].X = float64(i)
		xys[i].Y = pt.Value
		names[i] = pt.Name
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("create line: %w", err)
	}
	line.LineStyle.Color = pal.Line
	line.LineStyle.Width = vg.Points(2)

	dots, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("create points: %w", err)
	}
	dots.GlyphStyle.Color = pal.Line
	dots.GlyphStyle.Radius = vg.Points(3)
	dots.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(grid, line, dots)
	p.Legend.Add(opts.SeriesName, line, dots)
	p.NominalX(names...)

	return p, nil
}

// Export renders the chart described by opts to w.
func Export(w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	if !supported(opts.Format) {
		return galleryerrors.NewValidationError("format",
			fmt.Sprintf("unsupported format %q (want one of %s)", opts.Format, strings.Join(formats, ", ")), nil)
	}
	if len(opts.Points) == 0 {
		return galleryerrors.NewValidationError("points", "nothing to plot", nil)
	}

	p, err := Build(opts)
	if err != nil {
		return err
	}

	writer, err := p.WriterTo(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, opts.Format)
	if err != nil {
		return fmt.Errorf("prepare %s canvas: %w", opts.Format, err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("write %s chart: %w", opts.Format, err)
	}
	return nil
}

func supported(format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}
