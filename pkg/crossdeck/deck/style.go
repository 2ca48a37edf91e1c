package deck

import "github.com/crossdeck/crossdeck/pkg/crossdeck/model"

// ChartStyle is the closed set of style attributes the system
// preserves across data updates. It is deliberately not an open-ended
// "preserve everything" promise.
type ChartStyle struct {
	// Palette holds series fill colors as RRGGBB hex.
	Palette []string `json:"palette,omitempty"`
	// LegendVisible shows or hides the legend.
	LegendVisible bool `json:"legend_visible"`
	// DataLabels shows per-point value labels.
	DataLabels bool `json:"data_labels"`
	// NumberFormat is the data label number format, e.g. "0.0".
	NumberFormat string `json:"number_format,omitempty"`
	// FontFamily styles axis tick labels.
	FontFamily string `json:"font_family,omitempty"`
	// AxisFontSize is the tick label size in points.
	AxisFontSize int `json:"axis_font_size,omitempty"`
	// GridlineWidth is the major gridline width in points.
	GridlineWidth float64 `json:"gridline_width,omitempty"`
	// GridlineColor is the major gridline color as RRGGBB hex.
	GridlineColor string `json:"gridline_color,omitempty"`
}

// CaptureStyle snapshots the attributes a data replacement may clobber.
func CaptureStyle(c *Chart) (model.ChartKind, ChartStyle) {
	style := c.Style
	style.Palette = append([]string(nil), c.Style.Palette...)
	return c.Kind, style
}

// RestoreStyle reapplies a captured snapshot after a data replacement.
func RestoreStyle(c *Chart, kind model.ChartKind, style ChartStyle) {
	c.Kind = kind
	c.Style = style
}

// Theme carries the fixed brand defaults applied at render time.
type Theme struct {
	HeadFont   string
	BodyFont   string
	TitleSize  int
	AxisSize   int
	LabelSize  int
	Background string
	Palette    []string
}

// DefaultTheme is the stock report branding.
var DefaultTheme = Theme{
	HeadFont:   "Arial",
	BodyFont:   "Arial",
	TitleSize:  28,
	AxisSize:   11,
	LabelSize:  12,
	Background: "F7F7EA",
	Palette:    []string{"2175F3", "00AA72", "F7941E", "9966FF", "FF6384"},
}

// ChartStyle derives the default chart styling from the theme.
func (t Theme) ChartStyle() ChartStyle {
	return ChartStyle{
		Palette:       append([]string(nil), t.Palette...),
		LegendVisible: false,
		DataLabels:    true,
		NumberFormat:  "0.0",
		FontFamily:    t.BodyFont,
		AxisFontSize:  t.AxisSize,
		GridlineWidth: 0.5,
		GridlineColor: "D2D2D2",
	}
}
