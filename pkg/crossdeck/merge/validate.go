package merge

import (
	"fmt"

	"github.com/crossdeck/crossdeck/pkg/crossdeck/annotation"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/deck"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/model"
)

// Binding status values reported per shape.
const (
	StatusUnmanaged = "unmanaged"
	StatusMapped    = "mapped"
	StatusNoTable   = "no table"
	StatusNoColumn  = "no column"
)

// ShapeInfo describes one shape's binding against a fresh parse.
type ShapeInfo struct {
	// Slide is the 1-based slide number.
	Slide int `json:"slide"`
	// Name is the shape's display name, if any.
	Name string `json:"name,omitempty"`
	// Type is the annotated shape type, empty for unmanaged shapes.
	Type string `json:"type,omitempty"`
	// TableTitle is the annotated table binding.
	TableTitle string `json:"table_title,omitempty"`
	// Column is the annotated column binding.
	Column string `json:"column,omitempty"`
	// AutoUpdate is false when the shape opted out of refreshes.
	AutoUpdate bool `json:"auto_update"`
	// Status is one of the binding status values.
	Status string `json:"status"`
}

// Report summarizes a dry-run validation of a deck against a workbook.
type Report struct {
	// TotalShapes counts every shape in the deck.
	TotalShapes int `json:"total_shapes"`
	// ManagedShapes counts shapes carrying an annotation.
	ManagedShapes int `json:"managed_shapes"`
	// ValidBindings counts managed shapes that fully resolve.
	ValidBindings int `json:"valid_bindings"`
	// InvalidBindings counts managed shapes with an unresolvable table
	// or, for charts, a column missing from the resolved table.
	InvalidBindings int `json:"invalid_bindings"`
	// Issues holds one human-readable line per invalid binding.
	Issues []string `json:"issues,omitempty"`
	// Shapes lists every shape with its binding status.
	Shapes []ShapeInfo `json:"shapes"`
}

// Validate checks every shape's annotation against freshly extracted
// tables without touching the deck: which shapes are managed, which
// table each binds to, and whether a chart's column binding still
// exists. It is the dry-run counterpart of Merge; a chart column that
// merely falls back (see Table.ChooseColumn) is still reported here so
// a stale binding is visible before an update pass.
func Validate(doc *deck.Document, tables []*model.Table) Report {
	var rep Report
	res := newResolver(tables)

	for si, slide := range doc.Slides {
		for _, shp := range slide.Shapes {
			rep.TotalShapes++
			info := ShapeInfo{
				Slide:      si + 1,
				Name:       shp.Name,
				AutoUpdate: true,
				Status:     StatusUnmanaged,
			}
			ann := annotation.Decode(shp.Annotation)
			if !annotation.IsManaged(ann) {
				rep.Shapes = append(rep.Shapes, info)
				continue
			}

			rep.ManagedShapes++
			info.Type = ann[annotation.KeyType]
			info.TableTitle = ann[annotation.KeyTableTitle]
			info.Column = ann[annotation.KeyColumn]
			info.AutoUpdate = annotation.AutoUpdate(ann)

			t, ok, _ := res.resolve(info.TableTitle)
			switch {
			case !ok:
				info.Status = StatusNoTable
				rep.InvalidBindings++
				rep.Issues = append(rep.Issues, fmt.Sprintf(
					"slide %d shape %q: table %q not found in workbook",
					info.Slide, info.Name, info.TableTitle))
			case info.Type == annotation.TypeChart && info.Column != "" && !hasColumn(t, info.Column):
				info.Status = StatusNoColumn
				rep.InvalidBindings++
				rep.Issues = append(rep.Issues, fmt.Sprintf(
					"slide %d shape %q: column %q not found in table %q",
					info.Slide, info.Name, info.Column, t.Title))
			default:
				info.Status = StatusMapped
				rep.ValidBindings++
			}
			rep.Shapes = append(rep.Shapes, info)
		}
	}
	return rep
}

func hasColumn(t *model.Table, column string) bool {
	for _, c := range t.ColLabels {
		if c == column {
			return true
		}
	}
	return false
}
