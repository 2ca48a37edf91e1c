package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/crossdeck/crossdeck/pkg/crossdeck/model"
)

// BuildTables extracts every crosstab block on one sheet. Block
// ordinals are 1-based and block-local per sheet; an accepted block
// that collapses below the size floor after trimming still consumes
// its ordinal.
func BuildTables(f *excelize.File, sheetName string, p Params) ([]*model.Table, error) {
	rows, err := LoadGrid(f, sheetName)
	if err != nil {
		return nil, err
	}

	var tables []*model.Table
	for bi, blk := range findBlocks(rows, p) {
		ordinal := bi + 1
		rc, ok := trimEdges(rows, blk, p)
		if !ok {
			continue
		}
		tables = append(tables, buildTable(rows, blk, rc, sheetName, ordinal, p))
	}
	return tables, nil
}

// buildTable normalizes one trimmed block into a Table. blk carries the
// pre-trim row span for provenance; rc is the trimmed rectangle.
func buildTable(rows [][]string, blk, rc rect, sheetName string, ordinal int, p Params) *model.Table {
	headerOff := findHeaderRow(rows, rc, p.HeaderScanDepth)
	headerRow := rc.r1 + headerOff

	// Data rows sit below the header; the first column holds row labels.
	var rowLabels []string
	var values [][]*float64
	dataCols := rc.width() - 1
	for r := headerRow + 1; r <= rc.r2; r++ {
		rowLabels = append(rowLabels, cellAt(rows, r, rc.c1))
		vals := make([]*float64, dataCols)
		for j := 0; j < dataCols; j++ {
			vals[j] = parseNumber(cellAt(rows, r, rc.c1+1+j))
		}
		values = append(values, vals)
	}

	colLabels := make([]string, dataCols)
	for j := 0; j < dataCols; j++ {
		colLabels[j] = cellAt(rows, headerRow, rc.c1+1+j)
	}

	title := findTitle(rows, rc, headerRow)
	if title == "" {
		title = fmt.Sprintf("%s table %d", sheetName, ordinal)
	}

	return &model.Table{
		ID:        fmt.Sprintf("%s#%d", sheetName, ordinal),
		Sheet:     sheetName,
		Title:     title,
		RowLabels: rowLabels,
		ColLabels: colLabels,
		Values:    values,
		Meta: model.Meta{
			BlockStart:  blk.r1,
			BlockEnd:    blk.r2,
			SourceRange: rangeRef(rc),
		},
	}
}

// findHeaderRow returns the offset (from rc.r1) of the first row among
// the leading scanDepth rows holding at least two non-empty cells,
// falling back to the block's first row.
func findHeaderRow(rows [][]string, rc rect, scanDepth int) int {
	limit := scanDepth
	if h := rc.height(); h < limit {
		limit = h
	}
	for off := 0; off < limit; off++ {
		n := 0
		for c := rc.c1; c <= rc.c2; c++ {
			if cellAt(rows, rc.r1+off, c) != "" {
				n++
			}
		}
		if n >= 2 {
			return off
		}
	}
	return 0
}

// findTitle scans the rows above the header, top to bottom, and
// returns the first non-empty cell of the first row carrying any text.
func findTitle(rows [][]string, rc rect, headerRow int) string {
	for r := rc.r1; r < headerRow; r++ {
		for c := rc.c1; c <= rc.c2; c++ {
			if v := cellAt(rows, r, c); v != "" {
				return v
			}
		}
	}
	return ""
}

// rangeRef formats a rectangle in A1 notation, e.g. "A12:N35".
func rangeRef(rc rect) string {
	start, err := excelize.CoordinatesToCellName(rc.c1+1, rc.r1+1)
	if err != nil {
		return ""
	}
	end, err := excelize.CoordinatesToCellName(rc.c2+1, rc.r2+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", start, end)
}
