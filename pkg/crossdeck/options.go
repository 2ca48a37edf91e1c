// Package crossdeck extracts crosstab tables from survey workbooks and
// feeds deck rendering and merging.
package crossdeck

import "github.com/crossdeck/crossdeck/pkg/crossdeck/parser"

// Options configures extraction behavior. Zero-value fields fall back
// to the standard crosstab thresholds.
type Options struct {
	// MinRows is the minimum row count for an accepted block (default 2).
	MinRows int
	// MinCols is the minimum column count for an accepted block
	// (default 2).
	MinCols int
	// MinCells is the minimum number of non-empty cells in an accepted
	// block (default 10).
	MinCells int
	// HeaderScanDepth is how many leading block rows are searched for
	// the header row (default 5).
	HeaderScanDepth int
}

// DefaultOptions returns the standard extraction options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) params() parser.Params {
	p := parser.DefaultParams()
	if o.MinRows > 0 {
		p.MinRows = o.MinRows
	}
	if o.MinCols > 0 {
		p.MinCols = o.MinCols
	}
	if o.MinCells > 0 {
		p.MinCells = o.MinCells
	}
	if o.HeaderScanDepth > 0 {
		p.HeaderScanDepth = o.HeaderScanDepth
	}
	return p
}
