package chart

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gallery/internal/sample"
	"github.com/alexisbeaulieu97/gallery/internal/theme"
	galleryerrors "github.com/alexisbeaulieu97/gallery/pkg/errors"
)

func TestNewPaletteParsesThemeColours(t *testing.T) {
	t.Parallel()

	pal, err := NewPalette(theme.DeriveStyle(theme.Dark))
	require.NoError(t, err)

	line, ok := pal.Line.(colorful.Color)
	require.True(t, ok)
	assert.Equal(t, "#10b981", line.Hex())

	bg, ok := pal.Background.(colorful.Color)
	require.True(t, ok)
	assert.Equal(t, "#1f2937", bg.Hex())
}

func TestNewPaletteRejectsBadColour(t *testing.T) {
	t.Parallel()

	params := theme.DeriveStyle(theme.Light)
	params.GridColor = "grey"

	_, err := NewPalette(params)
	var validationErr *galleryerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, theme.KeyGridColor, validationErr.Field)
}

func TestExportSVGUsesThemeLineColour(t *testing.T) {
	t.Parallel()

	for _, th := range theme.All() {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, Options{Theme: th, Title: "Chart"}))

		out := strings.ToLower(buf.String())
		assert.Contains(t, out, "<svg")
		assert.True(t, containsColour(out, theme.DeriveStyle(th).LineColor), th.String())
	}
}

func TestExportPNG(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, Options{Theme: theme.Dark, Format: "PNG", Width: 4, Height: 2}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Export(&buf, Options{Format: "gif"})

	var validationErr *galleryerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "format", validationErr.Field)
	assert.Zero(t, buf.Len())
}

func TestExportRejectsEmptySeries(t *testing.T) {
	t.Parallel()

	err := Export(&bytes.Buffer{}, Options{Points: []sample.Point{}})
	var validationErr *galleryerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestBuildUsesSampleSeriesByDefault(t *testing.T) {
	t.Parallel()

	p, err := Build(Options{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.NotNil(t, p.BackgroundColor)
}

func TestFormats(t *testing.T) {
	t.Parallel()

	formats := Formats()
	assert.Equal(t, []string{"svg", "png", "pdf", "eps"}, formats)

	formats[0] = "gif"
	assert.Equal(t, "svg", Formats()[0], "callers get a copy")
}

func containsColour(svg, hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}
	r, g, b := c.RGB255()
	return strings.Contains(svg, strings.ToLower(hex)) ||
		strings.Contains(svg, fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)) ||
		strings.Contains(svg, fmt.Sprintf("rgb(%d, %d, %d)", r, g, b))
}
