// Package merge refreshes an existing deck from freshly extracted
// tables. Every annotated shape is located by its table binding and
// its data-bearing content rewritten, while text a user may have
// hand-edited is preserved unless an explicit selection overrides it.
package merge

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/crossdeck/crossdeck/pkg/crossdeck/annotation"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/basetext"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/deck"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/model"
)

// Summary tallies one merge pass. Per-shape failures are absorbed here,
// never raised to the caller.
type Summary struct {
	// ChartsUpdated counts charts whose data was replaced.
	ChartsUpdated int `json:"charts_updated"`
	// TablesUpdated counts data grids whose cells were rewritten.
	TablesUpdated int `json:"tables_updated"`
	// TextUpdated counts title/question/base textboxes rewritten.
	TextUpdated int `json:"text_updated"`
	// Skipped counts managed shapes left untouched for any reason:
	// auto_update off, no table mapping, preservation, or a per-shape
	// failure.
	Skipped int `json:"skipped"`
	// NoMapping counts skips caused by an unresolvable table title.
	NoMapping int `json:"no_mapping"`
	// Ambiguous counts resolutions where more than one table shared the
	// winning title; the first in extraction order won.
	Ambiguous int `json:"ambiguous"`
}

func (s Summary) String() string {
	return fmt.Sprintf("charts updated: %d, tables updated: %d, text updated: %d, shapes skipped: %d, no mapping: %d, ambiguous: %d",
		s.ChartsUpdated, s.TablesUpdated, s.TextUpdated, s.Skipped, s.NoMapping, s.Ambiguous)
}

// Engine performs merge passes.
type Engine struct {
	log *slog.Logger
}

// New returns an engine logging to log, or slog.Default() when nil.
func New(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{log: log}
}

// Merge walks every shape of every slide, refreshing managed shapes
// in place from the freshly extracted tables. Selections must be keyed
// by normalized table title (see SelectionSet.ByTitle). Each per-shape
// operation is fault-isolated: a failure degrades to leave-untouched
// and a tally, never an error.
func (e *Engine) Merge(doc *deck.Document, tables []*model.Table, sels model.SelectionSet) Summary {
	var sum Summary
	res := newResolver(tables)

	for si, slide := range doc.Slides {
		done := make(map[*deck.Shape]bool)
		for _, shp := range slide.Shapes {
			if done[shp] {
				continue
			}
			e.mergeShape(slide, shp, res, sels, done, &sum, si)
		}
	}

	e.log.Info("merge pass complete",
		"charts_updated", sum.ChartsUpdated,
		"tables_updated", sum.TablesUpdated,
		"text_updated", sum.TextUpdated,
		"skipped", sum.Skipped,
		"no_mapping", sum.NoMapping,
		"ambiguous", sum.Ambiguous,
	)
	return sum
}

// mergeShape handles one shape. The recover guard is the outermost
// fault isolation: whatever goes wrong inside, the shape is left as it
// was and the pass continues.
func (e *Engine) mergeShape(slide *deck.Slide, shp *deck.Shape, res *resolver, sels model.SelectionSet, done map[*deck.Shape]bool, sum *Summary, si int) {
	defer func() {
		if r := recover(); r != nil {
			sum.Skipped++
			e.log.Warn("shape update failed", "slide", si, "shape", shp.Name, "panic", r)
		}
		done[shp] = true
	}()

	ann := annotation.Decode(shp.Annotation)
	if !annotation.IsManaged(ann) {
		return
	}
	if !annotation.AutoUpdate(ann) {
		sum.Skipped++
		return
	}

	t, ok, ambiguous := res.resolve(ann[annotation.KeyTableTitle])
	if ambiguous {
		sum.Ambiguous++
	}
	if !ok {
		sum.Skipped++
		sum.NoMapping++
		e.log.Warn("no table mapping for shape", "slide", si, "shape", shp.Name,
			"table_title", ann[annotation.KeyTableTitle])
		return
	}
	sel, hasSel := sels[model.Normalize(t.Title)]

	switch ann[annotation.KeyType] {
	case annotation.TypeChart:
		if err := updateChart(shp, t, ann[annotation.KeyColumn]); err != nil {
			sum.Skipped++
			e.log.Warn("chart update failed", "slide", si, "shape", shp.Name, "err", err)
			return
		}
		sum.ChartsUpdated++
		e.cascade(slide, shp, t, res, sels, done, sum, si)
	case annotation.TypeTable:
		if err := updateGrid(shp, t); err != nil {
			sum.Skipped++
			e.log.Warn("table update failed", "slide", si, "shape", shp.Name, "err", err)
			return
		}
		sum.TablesUpdated++
		e.cascade(slide, shp, t, res, sels, done, sum, si)
	case annotation.TypeQuestionText, annotation.TypeTextBase, annotation.TypeTextTitle:
		e.updateText(shp, ann[annotation.KeyType], t, sel, hasSel, sum)
	default:
		sum.Skipped++
		e.log.Warn("unknown shape type", "slide", si, "shape", shp.Name,
			"type", ann[annotation.KeyType])
	}
}

// cascade re-runs the text handlers for sibling shapes on the same
// slide bound to the same table, so one chart or grid update refreshes
// its question, base, and title even without separate selections.
func (e *Engine) cascade(slide *deck.Slide, origin *deck.Shape, t *model.Table, res *resolver, sels model.SelectionSet, done map[*deck.Shape]bool, sum *Summary, si int) {
	sel, hasSel := sels[model.Normalize(t.Title)]
	for _, sib := range slide.Shapes {
		if sib == origin || done[sib] {
			continue
		}
		ann := annotation.Decode(sib.Annotation)
		typ := ann[annotation.KeyType]
		if typ != annotation.TypeQuestionText && typ != annotation.TypeTextBase && typ != annotation.TypeTextTitle {
			continue
		}
		if !annotation.AutoUpdate(ann) {
			sum.Skipped++
			done[sib] = true
			continue
		}
		st, ok, _ := res.resolve(ann[annotation.KeyTableTitle])
		if !ok || st != t {
			continue
		}
		e.updateText(sib, typ, t, sel, hasSel, sum)
		done[sib] = true
	}
}

// updateText dispatches the preservation-aware text handlers and
// tallies the outcome.
func (e *Engine) updateText(shp *deck.Shape, typ string, t *model.Table, sel model.Selection, hasSel bool, sum *Summary) {
	var updated bool
	switch typ {
	case annotation.TypeQuestionText:
		updated = updateQuestion(shp, t, sel, hasSel)
	case annotation.TypeTextBase:
		updated = updateBase(shp, t, sel, hasSel)
	case annotation.TypeTextTitle:
		updated = updateTitle(shp, sel, hasSel)
	}
	if updated {
		sum.TextUpdated++
	} else {
		sum.Skipped++
	}
}

// updateChart recomputes the bound series and replaces the chart data,
// preserving the chart kind and the enumerated style attributes around
// the replacement (the replacement itself resets them).
func updateChart(shp *deck.Shape, t *model.Table, column string) error {
	if shp.Chart == nil {
		return errors.New("shape has no chart payload")
	}
	colIdx := t.ChooseColumn(column)
	name := "Series"
	if colIdx >= 0 {
		name = t.ColLabels[colIdx]
	}
	categories, values := t.Series(colIdx)

	kind, style := deck.CaptureStyle(shp.Chart)
	shp.Chart.ReplaceData(deck.Series{Name: name, Categories: categories, Values: values})
	deck.RestoreStyle(shp.Chart, kind, style)
	return nil
}

// updateGrid rewrites matched data cells to one-decimal text. Headers
// match column labels exactly; row labels match normalized. Unmatched
// rows and columns become empty text, never deleted.
func updateGrid(shp *deck.Shape, t *model.Table) error {
	if shp.Grid == nil {
		return errors.New("shape has no grid payload")
	}
	g := shp.Grid
	if g.Rows() < 2 || g.Cols() < 2 {
		return errors.New("grid too small to carry data")
	}

	colMap := make([]int, g.Cols()-1)
	for c := 1; c < g.Cols(); c++ {
		colMap[c-1] = -1
		hdr := g.Cell(0, c)
		for i, lab := range t.ColLabels {
			if lab == hdr {
				colMap[c-1] = i
				break
			}
		}
	}

	rowIdx := make(map[string]int)
	for i, lab := range t.RowLabels {
		key := model.Normalize(lab)
		if _, exists := rowIdx[key]; !exists {
			rowIdx[key] = i
		}
	}

	for r := 1; r < g.Rows(); r++ {
		j, matched := rowIdx[model.Normalize(g.Cell(r, 0))]
		for c := 1; c < g.Cols(); c++ {
			txt := ""
			if ci := colMap[c-1]; matched && ci >= 0 {
				if v := t.Value(j, ci); v != nil {
					txt = fmt.Sprintf("%.1f", *v)
				}
			}
			g.SetCell(r, c, txt)
		}
	}
	return nil
}

// updateQuestion refreshes the question textbox. Text still equal to
// the rendered default is refreshed; customized text is preserved
// verbatim unless an explicit selection overrides it.
func updateQuestion(shp *deck.Shape, t *model.Table, sel model.Selection, hasSel bool) bool {
	if hasSel && sel.QuestionText != "" {
		shp.Text = "Question: " + sel.QuestionText
		return true
	}
	if shp.Text == "Question: "+t.Title {
		shp.Text = "Question: " + t.Title
		return true
	}
	return false
}

// updateBase recomputes the respondent count while keeping any custom
// description already present in the text. A selection-provided base
// text replaces the whole footnote verbatim.
func updateBase(shp *deck.Shape, t *model.Table, sel model.Selection, hasSel bool) bool {
	if hasSel && sel.BaseText != "" {
		shp.Text = sel.BaseText
		return true
	}
	description, _ := basetext.Parse(shp.Text)
	if n, ok := t.BaseCount(); ok {
		shp.Text = basetext.Render(description, &n)
	} else {
		shp.Text = basetext.Render(description, nil)
	}
	return true
}

// updateTitle never rewrites from table data; only an explicit
// selection changes it.
func updateTitle(shp *deck.Shape, sel model.Selection, hasSel bool) bool {
	if hasSel && sel.Title != "" {
		shp.Text = sel.Title
		return true
	}
	return false
}
