package deck

import (
	"encoding/json"
	"fmt"

	"github.com/crossdeck/crossdeck/pkg/crossdeck/annotation"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/basetext"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/model"
)

// Render produces a new deck: a leading title slide, then one slide
// per table in input order, each carrying a tagged title, a tagged
// question textbox, a tagged chart (or chart plus data grid), and a
// tagged base textbox. Selections are keyed by Table.ID; missing
// selections fall back to table-derived defaults.
func Render(tables []*model.Table, sels model.SelectionSet) *Document {
	theme := DefaultTheme
	doc := &Document{
		Width:  Inches(13.333),
		Height: Inches(7.5),
	}

	doc.Slides = append(doc.Slides, &Slide{
		Background: theme.Background,
		Shapes: []*Shape{{
			Name:  "TITLE",
			Kind:  KindTextBox,
			Text:  "Automated Crosstab Report",
			Frame: Frame{X: Inches(0.5), Y: Inches(0.2), W: Inches(9), H: Inches(0.6)},
			Font:  &Font{Family: theme.HeadFont, Size: theme.TitleSize, Bold: true},
		}},
	})

	for i, t := range tables {
		doc.Slides = append(doc.Slides, renderSlide(t, sels[t.ID], theme, i+1))
	}
	return doc
}

func renderSlide(t *model.Table, sel model.Selection, theme Theme, n int) *Slide {
	slide := &Slide{Background: theme.Background}

	kind := sel.ChartKind
	if kind == "" {
		kind = model.ChartBarH
	}
	includeGrid := kind == model.ChartWithTable
	if includeGrid {
		kind = model.ChartBarH
	}

	titleText := sel.Title
	if titleText == "" {
		titleText = t.Title
	}
	slide.Shapes = append(slide.Shapes, &Shape{
		Name: fmt.Sprintf("TITLE_%d", n),
		Kind: KindTextBox,
		Text: titleText,
		Annotation: annotation.Encode(map[string]string{
			annotation.KeyType:       annotation.TypeTextTitle,
			annotation.KeyTableTitle: t.Title,
			annotation.KeyColumn:     "Total",
			annotation.KeyAutoUpdate: "yes",
		}),
		Frame: Frame{X: Inches(0.5), Y: Inches(0.2), W: Inches(9), H: Inches(0.6)},
		Font:  &Font{Family: theme.HeadFont, Size: theme.TitleSize, Bold: true},
	})

	questionText := sel.QuestionText
	if questionText == "" {
		questionText = t.Title
	}
	slide.Shapes = append(slide.Shapes, &Shape{
		Name: fmt.Sprintf("TEXT_QUESTION_%d", n),
		Kind: KindTextBox,
		Text: "Question: " + questionText,
		Annotation: annotation.Encode(map[string]string{
			annotation.KeyType:       annotation.TypeQuestionText,
			annotation.KeyTableTitle: t.Title,
			annotation.KeyColumn:     "Total",
			annotation.KeyAutoUpdate: "yes",
		}),
		Frame: Frame{X: Inches(0.5), Y: Inches(0.8), W: Inches(9), H: Inches(0.4)},
		Font:  &Font{Family: theme.BodyFont, Size: theme.LabelSize},
	})

	colIdx := t.ChooseColumn("")
	seriesName := "Series"
	if colIdx >= 0 {
		seriesName = t.ColLabels[colIdx]
	}
	categories, values := t.Series(colIdx)

	chartHeight := 6.0
	if includeGrid {
		chartHeight = 3.0
	}
	slide.Shapes = append(slide.Shapes, &Shape{
		Name: fmt.Sprintf("CHART_%d", n),
		Kind: KindChart,
		Annotation: annotation.Encode(map[string]string{
			annotation.KeyType:        annotation.TypeChart,
			annotation.KeyTableTitle:  t.Title,
			annotation.KeyColumn:      seriesName,
			annotation.KeyExcludeRows: annotation.ExcludeRowsValue,
			annotation.KeyAutoUpdate:  "yes",
		}),
		Frame: Frame{X: Inches(0.5), Y: Inches(1.4), W: Inches(9), H: Inches(chartHeight)},
		Chart: &Chart{
			Kind: kind,
			Series: Series{
				Name:       seriesName,
				Categories: categories,
				Values:     values,
			},
			Style: theme.ChartStyle(),
		},
	})

	if includeGrid {
		slide.Shapes = append(slide.Shapes, &Shape{
			Name: fmt.Sprintf("TABLE_%d", n),
			Kind: KindGrid,
			Annotation: annotation.Encode(map[string]string{
				annotation.KeyType:        annotation.TypeTable,
				annotation.KeyTableTitle:  t.Title,
				annotation.KeyColumn:      seriesName,
				annotation.KeyExcludeRows: annotation.ExcludeRowsValue,
				annotation.KeyAutoUpdate:  "yes",
			}),
			Frame: Frame{X: Inches(0.5), Y: Inches(4.5), W: Inches(9), H: Inches(3)},
			Grid:  renderGrid(t),
		})
	}

	baseText := sel.BaseText
	if baseText == "" {
		if count, ok := t.BaseCount(); ok {
			baseText = basetext.Render("", &count)
		} else {
			baseText = basetext.Render("", nil)
		}
	}
	slide.Shapes = append(slide.Shapes, &Shape{
		Name: fmt.Sprintf("TEXT_BASE_%d", n),
		Kind: KindTextBox,
		Text: baseText,
		Annotation: annotation.Encode(map[string]string{
			annotation.KeyType:       annotation.TypeTextBase,
			annotation.KeyTableTitle: t.Title,
			annotation.KeyColumn:     "Total",
			annotation.KeyAutoUpdate: "yes",
		}),
		Frame: Frame{X: Inches(0.5), Y: Inches(7.0), W: Inches(9), H: Inches(0.4)},
		Font:  &Font{Family: theme.BodyFont, Size: 10},
	})

	slide.Shapes = append(slide.Shapes, metaShape(t, kind, includeGrid))
	return slide
}

// renderGrid lays the full table out as text: header row, then one row
// per label including summary rows, values to one decimal place.
func renderGrid(t *model.Table) *Grid {
	header := append([]string{""}, t.ColLabels...)
	cells := [][]string{header}
	for i, lab := range t.RowLabels {
		row := make([]string, 1+len(t.ColLabels))
		row[0] = lab
		for j := range t.ColLabels {
			if v := t.Value(i, j); v != nil {
				row[1+j] = fmt.Sprintf("%.1f", *v)
			}
		}
		cells = append(cells, row)
	}
	return &Grid{Cells: cells}
}

// metaShape embeds a tiny untagged provenance box the merge engine
// ignores.
func metaShape(t *model.Table, kind model.ChartKind, includeGrid bool) *Shape {
	meta, _ := json.Marshal(map[string]any{
		"table_key":     t.Title,
		"row_count":     len(t.RowLabels),
		"col_labels":    t.ColLabels,
		"chart_kind":    kind,
		"include_table": includeGrid,
	})
	return &Shape{
		Name:  "DATA_META",
		Kind:  KindTextBox,
		Text:  string(meta),
		Frame: Frame{X: 0, Y: Inches(7.45), W: Inches(0.1), H: Inches(0.2)},
		Font:  &Font{Size: 1},
	}
}
