package parser

import "testing"

func TestFindBlocksSplitsOnEmptyRows(t *testing.T) {
	rows := [][]string{
		{"Q1 Age"},
		{"", "18-24", "25-34", "Total"},
		{"Male", "10", "20", "30"},
		{"Female", "15", "25", "40"},
		{},
		{},
		{"Q2 Region"},
		{"", "North", "South", "Total"},
		{"Yes", "1", "2", "3"},
		{"No", "4", "5", "6"},
	}

	blocks := findBlocks(rows, DefaultParams())
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].r1 != 0 || blocks[0].r2 != 3 {
		t.Errorf("block 0 rows = [%d,%d], want [0,3]", blocks[0].r1, blocks[0].r2)
	}
	if blocks[1].r1 != 6 || blocks[1].r2 != 9 {
		t.Errorf("block 1 rows = [%d,%d], want [6,9]", blocks[1].r1, blocks[1].r2)
	}
	if blocks[0].r2 >= blocks[1].r1 {
		t.Errorf("blocks overlap: %v %v", blocks[0], blocks[1])
	}
}

func TestFindBlocksRejectsSmallBlocks(t *testing.T) {
	// A 2x2 block holds only 4 non-empty cells, under the 10-cell floor.
	rows := [][]string{
		{"a", "b"},
		{"c", "d"},
	}
	if blocks := findBlocks(rows, DefaultParams()); len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %d", len(blocks))
	}
}

func TestFindBlocksRejectsSingleColumn(t *testing.T) {
	rows := [][]string{
		{"one"}, {"two"}, {"three"}, {"four"}, {"five"},
		{"six"}, {"seven"}, {"eight"}, {"nine"}, {"ten"},
	}
	if blocks := findBlocks(rows, DefaultParams()); len(blocks) != 0 {
		t.Fatalf("expected no single-column blocks, got %d", len(blocks))
	}
}

func TestTrimEdgesStripsEmptyColumns(t *testing.T) {
	rows := [][]string{
		{"", "a", "b", ""},
		{"", "c", "d", ""},
		{"", "e", "f", ""},
	}
	rc, ok := trimEdges(rows, rect{r1: 0, c1: 0, r2: 2, c2: 3}, DefaultParams())
	if !ok {
		t.Fatal("expected trimmed block to survive")
	}
	if rc.c1 != 1 || rc.c2 != 2 {
		t.Errorf("cols = [%d,%d], want [1,2]", rc.c1, rc.c2)
	}
}

func TestTrimEdgesDropsCollapsedBlocks(t *testing.T) {
	rows := [][]string{
		{"only", ""},
		{"", ""},
	}
	if _, ok := trimEdges(rows, rect{r1: 0, c1: 0, r2: 1, c2: 1}, DefaultParams()); ok {
		t.Fatal("expected collapsed block to be dropped")
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  *float64
	}{
		{"123", fp(123)},
		{"12.5", fp(12.5)},
		{"-4", fp(-4)},
		{" 7 ", fp(7)},
		{"n/a", nil},
		{"", nil},
		{"12%", nil},
	}
	for _, tt := range tests {
		got := parseNumber(tt.input)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("parseNumber(%q) = %v, want nil", tt.input, *got)
		case tt.want != nil && got == nil:
			t.Errorf("parseNumber(%q) = nil, want %v", tt.input, *tt.want)
		case tt.want != nil && got != nil && *got != *tt.want:
			t.Errorf("parseNumber(%q) = %v, want %v", tt.input, *got, *tt.want)
		}
	}
}

func fp(v float64) *float64 { return &v }
