package theme

// StyleParams is the set of colours a widget needs to render consistently with
// the active theme. Values are #rrggbb hex strings.
type StyleParams struct {
	LineColor         string `json:"lineColor" yaml:"lineColor"`
	GridColor         string `json:"gridColor" yaml:"gridColor"`
	TextColor         string `json:"textColor" yaml:"textColor"`
	TooltipBackground string `json:"tooltipBackground" yaml:"tooltipBackground"`
}

// Semantic keys of StyleParams.
const (
	KeyLineColor         = "lineColor"
	KeyGridColor         = "gridColor"
	KeyTextColor         = "textColor"
	KeyTooltipBackground = "tooltipBackground"
)

var (
	lightStyle = StyleParams{
		LineColor:         "#059669",
		GridColor:         "#e5e7eb",
		TextColor:         "#374151",
		TooltipBackground: "#ffffff",
	}
	darkStyle = StyleParams{
		LineColor:         "#10b981",
		GridColor:         "#374151",
		TextColor:         "#d1d5db",
		TooltipBackground: "#1f2937",
	}
)

// DeriveStyle maps a theme to its palette. It is pure: the same theme always
// yields an equal value. Unrecognised themes get the light palette.
func DeriveStyle(t Theme) StyleParams {
	if t == Dark {
		return darkStyle
	}
	return lightStyle
}

// Keys returns the semantic keys in display order.
func (p StyleParams) Keys() []string {
	return []string{KeyLineColor, KeyGridColor, KeyTextColor, KeyTooltipBackground}
}

// Map exposes the params keyed by their semantic names.
func (p StyleParams) Map() map[string]string {
	return map[string]string{
		KeyLineColor:         p.LineColor,
		KeyGridColor:         p.GridColor,
		KeyTextColor:         p.TextColor,
		KeyTooltipBackground: p.TooltipBackground,
	}
}
