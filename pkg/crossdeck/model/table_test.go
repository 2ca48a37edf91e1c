package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func demoTable() *Table {
	return &Table{
		ID:        "Sheet1#1",
		Sheet:     "Sheet1",
		Title:     "Q2 Satisfaction",
		RowLabels: []string{"Satisfied", "Neutral", "Unsatisfied", "Base"},
		ColLabels: []string{"Total"},
		Values:    [][]*float64{{fp(60)}, {fp(25)}, {fp(15)}, {fp(400)}},
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "q1 age", Normalize("  Q1\t Age "))
	assert.Equal(t, "", Normalize("   "))
}

func TestChooseColumnFallbackOrder(t *testing.T) {
	tests := []struct {
		name      string
		cols      []string
		preferred string
		want      int
	}{
		{"exact match wins", []string{"Male", "Female", "Total"}, "Female", 1},
		{"total preferred", []string{"Male", "Total"}, "Missing", 1},
		{"overall next", []string{"Male", "Overall"}, "", 1},
		{"all next", []string{"Male", "All"}, "", 1},
		{"base last resort", []string{"Male", "Base"}, "", 1},
		{"first column fallback", []string{"Male", "Female"}, "", 0},
		{"no columns", nil, "Total", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := &Table{ColLabels: tt.cols}
			assert.Equal(t, tt.want, tbl.ChooseColumn(tt.preferred))
		})
	}
}

func TestExcludedRows(t *testing.T) {
	tbl := &Table{RowLabels: []string{"Yes", "MEAN", " Average score", "avg.", "Base (n)", "No"}}
	ex := tbl.ExcludedRows()
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true, 4: true}, ex)
}

func TestSeriesExcludesSummaryRows(t *testing.T) {
	cats, vals := demoTable().Series(0)
	assert.Equal(t, []string{"Satisfied", "Neutral", "Unsatisfied"}, cats)
	require.Len(t, vals, 3)
	assert.Equal(t, 60.0, *vals[0])
	assert.Equal(t, 25.0, *vals[1])
	assert.Equal(t, 15.0, *vals[2])
}

func TestSeriesNegativeColumn(t *testing.T) {
	cats, vals := demoTable().Series(-1)
	assert.Len(t, cats, 3)
	for _, v := range vals {
		assert.Nil(t, v)
	}
}

func TestBaseCount(t *testing.T) {
	n, ok := demoTable().BaseCount()
	require.True(t, ok)
	assert.Equal(t, int64(400), n)
}

func TestBaseCountRounds(t *testing.T) {
	tbl := demoTable()
	tbl.Values[3][0] = fp(399.6)
	n, ok := tbl.BaseCount()
	require.True(t, ok)
	assert.Equal(t, int64(400), n)
}

func TestBaseCountMissing(t *testing.T) {
	tbl := &Table{
		RowLabels: []string{"Yes", "No"},
		ColLabels: []string{"Total"},
		Values:    [][]*float64{{fp(1)}, {fp(2)}},
	}
	_, ok := tbl.BaseCount()
	assert.False(t, ok)

	tbl = demoTable()
	tbl.Values[3][0] = nil
	_, ok = tbl.BaseCount()
	assert.False(t, ok)
}

func TestValueBounds(t *testing.T) {
	tbl := demoTable()
	assert.Nil(t, tbl.Value(-1, 0))
	assert.Nil(t, tbl.Value(0, 5))
	assert.Nil(t, tbl.Value(99, 0))
}

func TestExcludedRowsCaseSweep(t *testing.T) {
	// Any-case summary labels are excluded from series construction.
	tbl := &Table{
		RowLabels: []string{"Mean", "Average", "Avg", "BASE", "Kept"},
		ColLabels: []string{"Total"},
		Values:    [][]*float64{{fp(1)}, {fp(2)}, {fp(3)}, {fp(4)}, {fp(5)}},
	}
	cats, _ := tbl.Series(0)
	assert.Equal(t, []string{"Kept"}, cats)
}
