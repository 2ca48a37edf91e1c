package parser

// Params holds the acceptance thresholds for block detection.
type Params struct {
	// MinRows is the minimum row count for an accepted block.
	MinRows int
	// MinCols is the minimum column count for an accepted block.
	MinCols int
	// MinCells is the minimum number of non-empty cells; rejects stray
	// labels and notes.
	MinCells int
	// HeaderScanDepth is how many leading rows are searched for the
	// header row.
	HeaderScanDepth int
}

// DefaultParams returns the standard crosstab thresholds.
func DefaultParams() Params {
	return Params{
		MinRows:         2,
		MinCols:         2,
		MinCells:        10,
		HeaderScanDepth: 5,
	}
}

// rect is a 0-based inclusive cell rectangle within a sheet grid.
type rect struct {
	r1, c1, r2, c2 int
}

func (rc rect) height() int { return rc.r2 - rc.r1 + 1 }
func (rc rect) width() int  { return rc.c2 - rc.c1 + 1 }

// findBlocks segments a sheet into candidate blocks: contiguous runs of
// non-empty rows bounded by empty rows or the sheet edges. A run is
// accepted when its bounding box spans at least MinRows x MinCols and
// holds at least MinCells non-empty cells.
func findBlocks(rows [][]string, p Params) []rect {
	var blocks []rect
	start := -1
	for i := 0; i <= len(rows); i++ {
		empty := i == len(rows) || rowIsEmpty(rows[i])
		switch {
		case start < 0 && !empty:
			start = i
		case start >= 0 && empty:
			if rc, ok := blockBounds(rows, start, i-1); ok {
				if rc.height() >= p.MinRows && rc.width() >= p.MinCols &&
					countNonEmpty(rows, rc) >= p.MinCells {
					// Keep the full row span; edge columns are trimmed later.
					blocks = append(blocks, rect{r1: start, c1: rc.c1, r2: i - 1, c2: rc.c2})
				}
			}
			start = -1
		}
	}
	return blocks
}

// trimEdges strips fully-empty leading and trailing rows and columns
// from a block. ok is false when fewer than MinRows x MinCols cells
// remain; such blocks are dropped silently.
func trimEdges(rows [][]string, rc rect, p Params) (rect, bool) {
	for rc.r1 <= rc.r2 && rowEmptyIn(rows, rc.r1, rc.c1, rc.c2) {
		rc.r1++
	}
	for rc.r2 >= rc.r1 && rowEmptyIn(rows, rc.r2, rc.c1, rc.c2) {
		rc.r2--
	}
	for rc.c1 <= rc.c2 && colEmptyIn(rows, rc.c1, rc.r1, rc.r2) {
		rc.c1++
	}
	for rc.c2 >= rc.c1 && colEmptyIn(rows, rc.c2, rc.r1, rc.r2) {
		rc.c2--
	}
	if rc.r1 > rc.r2 || rc.c1 > rc.c2 {
		return rc, false
	}
	if rc.height() < p.MinRows || rc.width() < p.MinCols {
		return rc, false
	}
	return rc, true
}

func rowIsEmpty(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

func rowEmptyIn(rows [][]string, r, c1, c2 int) bool {
	for c := c1; c <= c2; c++ {
		if cellAt(rows, r, c) != "" {
			return false
		}
	}
	return true
}

func colEmptyIn(rows [][]string, c, r1, r2 int) bool {
	for r := r1; r <= r2; r++ {
		if cellAt(rows, r, c) != "" {
			return false
		}
	}
	return true
}

// blockBounds finds the bounding box of non-empty cells within a row
// run. ok is false when the run holds no data at all.
func blockBounds(rows [][]string, r1, r2 int) (rect, bool) {
	minCol, maxCol := -1, -1
	for r := r1; r <= r2 && r < len(rows); r++ {
		for c, cell := range rows[r] {
			if cell == "" {
				continue
			}
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if c > maxCol {
				maxCol = c
			}
		}
	}
	if minCol < 0 {
		return rect{}, false
	}
	return rect{r1: r1, c1: minCol, r2: r2, c2: maxCol}, true
}

// countNonEmpty counts non-empty cells within a rectangle.
func countNonEmpty(rows [][]string, rc rect) int {
	n := 0
	for r := rc.r1; r <= rc.r2; r++ {
		for c := rc.c1; c <= rc.c2; c++ {
			if cellAt(rows, r, c) != "" {
				n++
			}
		}
	}
	return n
}
