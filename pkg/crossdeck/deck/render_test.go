package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossdeck/crossdeck/pkg/crossdeck/annotation"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/model"
)

func fp(v float64) *float64 { return &v }

func satisfactionTable() *model.Table {
	return &model.Table{
		ID:        "Sheet1#1",
		Sheet:     "Sheet1",
		Title:     "Q2 Satisfaction",
		RowLabels: []string{"Satisfied", "Neutral", "Unsatisfied", "Base"},
		ColLabels: []string{"Total"},
		Values:    [][]*float64{{fp(60)}, {fp(25)}, {fp(15)}, {fp(400)}},
	}
}

func findByType(slide *Slide, typ string) *Shape {
	for _, shp := range slide.Shapes {
		if annotation.Decode(shp.Annotation)[annotation.KeyType] == typ {
			return shp
		}
	}
	return nil
}

func TestRenderEndToEnd(t *testing.T) {
	tbl := satisfactionTable()
	doc := Render([]*model.Table{tbl}, model.SelectionSet{
		"Sheet1#1": {ChartKind: model.ChartBarH},
	})

	// Title slide plus one data slide.
	require.Len(t, doc.Slides, 2)
	slide := doc.Slides[1]

	chart := findByType(slide, annotation.TypeChart)
	require.NotNil(t, chart)
	require.NotNil(t, chart.Chart)
	assert.Equal(t, model.ChartBarH, chart.Chart.Kind)
	assert.Equal(t, []string{"Satisfied", "Neutral", "Unsatisfied"}, chart.Chart.Series.Categories)
	require.Len(t, chart.Chart.Series.Values, 3)
	assert.Equal(t, 60.0, *chart.Chart.Series.Values[0])
	assert.Equal(t, 25.0, *chart.Chart.Series.Values[1])
	assert.Equal(t, 15.0, *chart.Chart.Series.Values[2])
	assert.Equal(t, "Total", chart.Chart.Series.Name)

	base := findByType(slide, annotation.TypeTextBase)
	require.NotNil(t, base)
	assert.Equal(t, "Base: Total respondents. 400 complete surveys.", base.Text)

	question := findByType(slide, annotation.TypeQuestionText)
	require.NotNil(t, question)
	assert.Equal(t, "Question: Q2 Satisfaction", question.Text)

	title := findByType(slide, annotation.TypeTextTitle)
	require.NotNil(t, title)
	assert.Equal(t, "Q2 Satisfaction", title.Text)

	// Every managed shape binds back to the source table.
	for _, typ := range []string{annotation.TypeChart, annotation.TypeTextBase,
		annotation.TypeQuestionText, annotation.TypeTextTitle} {
		shp := findByType(slide, typ)
		require.NotNil(t, shp, typ)
		assert.Equal(t, "Q2 Satisfaction", annotation.Decode(shp.Annotation)[annotation.KeyTableTitle])
	}
}

func TestRenderChartWithTable(t *testing.T) {
	tbl := satisfactionTable()
	doc := Render([]*model.Table{tbl}, model.SelectionSet{
		"Sheet1#1": {ChartKind: model.ChartWithTable},
	})
	slide := doc.Slides[1]

	chart := findByType(slide, annotation.TypeChart)
	require.NotNil(t, chart)
	// chart+table renders as a horizontal bar plus a grid.
	assert.Equal(t, model.ChartBarH, chart.Chart.Kind)

	grid := findByType(slide, annotation.TypeTable)
	require.NotNil(t, grid)
	require.NotNil(t, grid.Grid)
	assert.Equal(t, 5, grid.Grid.Rows()) // header + 4 rows, Base included
	assert.Equal(t, "Total", grid.Grid.Cell(0, 1))
	assert.Equal(t, "Satisfied", grid.Grid.Cell(1, 0))
	assert.Equal(t, "60.0", grid.Grid.Cell(1, 1))
	assert.Equal(t, "400.0", grid.Grid.Cell(4, 1))
}

func TestRenderSelectionOverrides(t *testing.T) {
	tbl := satisfactionTable()
	doc := Render([]*model.Table{tbl}, model.SelectionSet{
		"Sheet1#1": {
			ChartKind:    model.ChartDonut,
			Title:        "Customer mood",
			QuestionText: "How satisfied are you overall?",
			BaseText:     "Base: Screened adults. 400 complete surveys.",
		},
	})
	slide := doc.Slides[1]

	assert.Equal(t, model.ChartDonut, findByType(slide, annotation.TypeChart).Chart.Kind)
	assert.Equal(t, "Customer mood", findByType(slide, annotation.TypeTextTitle).Text)
	assert.Equal(t, "Question: How satisfied are you overall?", findByType(slide, annotation.TypeQuestionText).Text)
	assert.Equal(t, "Base: Screened adults. 400 complete surveys.", findByType(slide, annotation.TypeTextBase).Text)

	// The annotation keeps the durable table binding, not the override.
	ann := annotation.Decode(findByType(slide, annotation.TypeTextTitle).Annotation)
	assert.Equal(t, "Q2 Satisfaction", ann[annotation.KeyTableTitle])
}

func TestRenderDefaultsWithoutSelections(t *testing.T) {
	doc := Render([]*model.Table{satisfactionTable()}, nil)
	slide := doc.Slides[1]
	chart := findByType(slide, annotation.TypeChart)
	require.NotNil(t, chart)
	assert.Equal(t, model.ChartBarH, chart.Chart.Kind)
	assert.Nil(t, findByType(slide, annotation.TypeTable))
}

func TestReplaceDataResetsStyle(t *testing.T) {
	c := &Chart{
		Kind:  model.ChartDonut,
		Style: DefaultTheme.ChartStyle(),
	}
	kind, style := CaptureStyle(c)
	c.ReplaceData(Series{Name: "Total", Categories: []string{"a"}, Values: []*float64{fp(1)}})

	// The replacement clobbers kind and style, as the underlying
	// renderer does.
	assert.Equal(t, model.ChartBarV, c.Kind)
	assert.Empty(t, c.Style.Palette)

	RestoreStyle(c, kind, style)
	assert.Equal(t, model.ChartDonut, c.Kind)
	assert.Equal(t, DefaultTheme.Palette, c.Style.Palette)
	assert.Equal(t, "0.0", c.Style.NumberFormat)
	// Data replacement survives the restore.
	assert.Equal(t, []string{"a"}, c.Series.Categories)
}
