package theme

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStyleLightPalette(t *testing.T) {
	t.Parallel()

	want := StyleParams{
		LineColor:         "#059669",
		GridColor:         "#e5e7eb",
		TextColor:         "#374151",
		TooltipBackground: "#ffffff",
	}
	assert.Equal(t, want, DeriveStyle(Light))
}

func TestDeriveStyleDarkPalette(t *testing.T) {
	t.Parallel()

	want := StyleParams{
		LineColor:         "#10b981",
		GridColor:         "#374151",
		TextColor:         "#d1d5db",
		TooltipBackground: "#1f2937",
	}
	assert.Equal(t, want, DeriveStyle(Dark))
}

func TestDeriveStyleIsPure(t *testing.T) {
	t.Parallel()

	for _, th := range All() {
		first := DeriveStyle(th)
		second := DeriveStyle(th)
		assert.Equal(t, first, second, th.String())
		assert.True(t, first == second, th.String())
	}
}

func TestDeriveStyleIsTotal(t *testing.T) {
	t.Parallel()

	for _, th := range All() {
		params := DeriveStyle(th).Map()
		require.Len(t, params, 4)
		for _, key := range DeriveStyle(th).Keys() {
			value, ok := params[key]
			require.True(t, ok, key)
			require.NotEmpty(t, value, key)

			_, err := colorful.Hex(value)
			require.NoError(t, err, "%s %s=%s", th, key, value)
		}
	}
}

func TestDeriveStyleFallsBackForUnknownTheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DeriveStyle(Light), DeriveStyle(Theme("neon")))
}

func TestPalettesDiffer(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, DeriveStyle(Light), DeriveStyle(Dark))
}
