// Package deck models a slide deck as a document of annotated shapes
// and renders crosstab tables into it. The document is the system's
// persistent artifact: its shape annotations are the only state that
// crosses sessions.
package deck

import "github.com/crossdeck/crossdeck/pkg/crossdeck/model"

// EMUPerInch is the number of EMUs (English Metric Units) per inch.
const EMUPerInch = 914400

// Inches converts inches to EMU.
func Inches(in float64) int64 {
	return int64(in * EMUPerInch)
}

// ShapeKind identifies the payload a shape carries.
type ShapeKind string

const (
	// KindChart is a chart graphic frame.
	KindChart ShapeKind = "chart"
	// KindGrid is a data table graphic frame.
	KindGrid ShapeKind = "grid"
	// KindTextBox is a plain text box.
	KindTextBox ShapeKind = "textbox"
)

// Document is an ordered sequence of slides.
type Document struct {
	// Width and Height are the slide dimensions in EMU.
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
	// Slides in presentation order.
	Slides []*Slide `json:"slides"`
}

// Slide holds a set of shapes over a background fill.
type Slide struct {
	// Background is the fill color as RRGGBB hex, empty for none.
	Background string `json:"background,omitempty"`
	// Shapes on the slide. Order carries no meaning.
	Shapes []*Shape `json:"shapes"`
}

// Shape is one deck element. Exactly one payload field matches Kind.
type Shape struct {
	// Name is a display name, not used for matching.
	Name string `json:"name,omitempty"`
	// Kind selects the payload.
	Kind ShapeKind `json:"kind"`
	// Annotation is the raw "key: value" tag text, the alt-text analog.
	// Empty means the shape is not managed.
	Annotation string `json:"annotation,omitempty"`
	// Frame is the shape position and size in EMU.
	Frame Frame `json:"frame"`

	// Chart payload, set when Kind is KindChart.
	Chart *Chart `json:"chart,omitempty"`
	// Grid payload, set when Kind is KindGrid.
	Grid *Grid `json:"grid,omitempty"`
	// Text payload, set when Kind is KindTextBox.
	Text string `json:"text,omitempty"`
	// Font styles the text payload.
	Font *Font `json:"font,omitempty"`
}

// Frame is a shape bounding box in EMU.
type Frame struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
	W int64 `json:"w"`
	H int64 `json:"h"`
}

// Font is the bounded text style set.
type Font struct {
	Family string `json:"family,omitempty"`
	Size   int    `json:"size,omitempty"`
	Bold   bool   `json:"bold,omitempty"`
}

// Series is one chart series: parallel categories and values. Values
// may be nil where the source cell was missing.
type Series struct {
	Name       string     `json:"name"`
	Categories []string   `json:"categories"`
	Values     []*float64 `json:"values"`
}

// Chart is a chart payload.
type Chart struct {
	Kind   model.ChartKind `json:"kind"`
	Series Series          `json:"series"`
	Style  ChartStyle      `json:"style"`
}

// ReplaceData swaps the chart's series for fresh data. Mirroring the
// underlying rendering layer, the replacement resets the chart kind
// and style to renderer defaults; callers that need them kept must
// capture before and restore after (see CaptureStyle/RestoreStyle).
func (c *Chart) ReplaceData(s Series) {
	c.Series = s
	c.Kind = model.ChartBarV
	c.Style = ChartStyle{}
}

// Grid is a data table payload. Row 0 is the header, column 0 the row
// labels; the top-left cell is blank.
type Grid struct {
	Cells [][]string `json:"cells"`
}

// Rows returns the row count.
func (g *Grid) Rows() int { return len(g.Cells) }

// Cols returns the column count of the widest row.
func (g *Grid) Cols() int {
	n := 0
	for _, r := range g.Cells {
		if len(r) > n {
			n = len(r)
		}
	}
	return n
}

// Cell reads a cell, treating out-of-range as empty.
func (g *Grid) Cell(r, c int) string {
	if r < 0 || r >= len(g.Cells) {
		return ""
	}
	row := g.Cells[r]
	if c < 0 || c >= len(row) {
		return ""
	}
	return row[c]
}

// SetCell writes a cell; out-of-range writes are ignored.
func (g *Grid) SetCell(r, c int, v string) {
	if r < 0 || r >= len(g.Cells) {
		return
	}
	row := g.Cells[r]
	if c < 0 || c >= len(row) {
		return
	}
	row[c] = v
}
