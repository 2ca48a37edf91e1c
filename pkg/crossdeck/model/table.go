// Package model defines the data records shared across crossdeck.
package model

import (
	"math"
	"strings"
)

// excludePrefixes marks row labels that carry summary statistics rather
// than answer categories. Matching rows never enter chart series.
var excludePrefixes = []string{"base", "mean", "average", "avg"}

// columnFallback is the preference order used when no explicit column
// binding matches the table.
var columnFallback = []string{"Total", "Overall", "All", "Base"}

// Table is one crosstab block extracted from a workbook.
type Table struct {
	// ID is the parse-local key, "<sheet>#<ordinal>". Unique within one
	// parse result, not stable across parses.
	ID string `json:"id"`
	// Sheet is the source sheet name.
	Sheet string `json:"sheet"`
	// Title is the inferred block title. Titles may collide; cross-parse
	// matching keys on the normalized title, not the ID.
	Title string `json:"title"`
	// RowLabels holds one label per data row, in sheet order. Summary
	// rows such as "Base" or "Mean" are kept; exclusion happens
	// downstream.
	RowLabels []string `json:"row_labels"`
	// ColLabels holds one label per data column.
	ColLabels []string `json:"col_labels"`
	// Values is the row-major numeric matrix. Non-numeric cells are nil.
	Values [][]*float64 `json:"values"`
	// Meta records where the block came from.
	Meta Meta `json:"meta"`
}

// Meta is block provenance within the source sheet.
type Meta struct {
	// BlockStart is the 0-based sheet row index where the raw block
	// begins, before edge trimming.
	BlockStart int `json:"block_start"`
	// BlockEnd is the 0-based sheet row index where the raw block ends,
	// inclusive.
	BlockEnd int `json:"block_end"`
	// SourceRange is the trimmed block in A1 notation, e.g. "A12:N35".
	SourceRange string `json:"source_range,omitempty"`
}

// Normalize collapses internal whitespace, trims, and lowercases.
// It is the canonical form for title and row-label matching.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Value returns the cell at (row, col), or nil when out of range or
// non-numeric.
func (t *Table) Value(row, col int) *float64 {
	if row < 0 || row >= len(t.Values) {
		return nil
	}
	r := t.Values[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// ExcludedRows reports the row indexes whose labels mark summary
// statistics (base, mean, average, avg prefixes, case-insensitive).
func (t *Table) ExcludedRows() map[int]bool {
	ex := make(map[int]bool)
	for i, lab := range t.RowLabels {
		n := Normalize(lab)
		for _, p := range excludePrefixes {
			if strings.HasPrefix(n, p) {
				ex[i] = true
				break
			}
		}
	}
	return ex
}

// BaseRow returns the index of the first row whose label starts with
// "base", or -1 when no such row exists.
func (t *Table) BaseRow() int {
	for i, lab := range t.RowLabels {
		if strings.HasPrefix(Normalize(lab), "base") {
			return i
		}
	}
	return -1
}

// ChooseColumn resolves a column binding. An exact match on preferred
// wins; otherwise the first of Total, Overall, All, Base present wins;
// otherwise column 0. Returns -1 only when the table has no columns.
func (t *Table) ChooseColumn(preferred string) int {
	if len(t.ColLabels) == 0 {
		return -1
	}
	if preferred != "" {
		for i, c := range t.ColLabels {
			if c == preferred {
				return i
			}
		}
	}
	for _, cand := range columnFallback {
		for i, c := range t.ColLabels {
			if c == cand {
				return i
			}
		}
	}
	return 0
}

// Series builds chart data from one column: categories are the row
// labels minus excluded rows, values the matching cells. A negative
// colIdx yields nil values, keeping categories intact.
func (t *Table) Series(colIdx int) (categories []string, values []*float64) {
	ex := t.ExcludedRows()
	for i, lab := range t.RowLabels {
		if ex[i] {
			continue
		}
		categories = append(categories, lab)
		if colIdx < 0 {
			values = append(values, nil)
			continue
		}
		values = append(values, t.Value(i, colIdx))
	}
	return categories, values
}

// BaseCount computes the respondent base: the base row's value at the
// Total-preferring column, rounded to the nearest integer. ok is false
// when no base row, no columns, or a non-numeric cell.
func (t *Table) BaseCount() (n int64, ok bool) {
	ri := t.BaseRow()
	ci := t.ChooseColumn("")
	if ri < 0 || ci < 0 {
		return 0, false
	}
	v := t.Value(ri, ci)
	if v == nil {
		return 0, false
	}
	return int64(math.Round(*v)), true
}
