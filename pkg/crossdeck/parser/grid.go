// Package parser turns raw sheet grids into crosstab tables.
package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadGrid reads a sheet into a ragged row-major grid of raw cell
// strings. Empty string means an empty cell.
func LoadGrid(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName)
}

// cellAt reads a cell from a ragged grid, treating out-of-range as
// empty.
func cellAt(rows [][]string, r, c int) string {
	if r < 0 || r >= len(rows) {
		return ""
	}
	row := rows[r]
	if c < 0 || c >= len(row) {
		return ""
	}
	return row[c]
}

// parseNumber coerces a raw cell to a float, or nil when the cell is
// empty or non-numeric. Coercion never fails.
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
