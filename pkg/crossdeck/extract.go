package crossdeck

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/crossdeck/crossdeck/pkg/crossdeck/model"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/parser"
)

// Extract parses a crosstab workbook into tables, one per detected
// block, in sheet then block order. An unreadable workbook is fatal;
// no partial results are returned. Heuristic misses inside a sheet
// (ragged headers, non-numeric cells, missing titles) resolve via
// documented fallbacks and never error.
func Extract(path string, opts Options) ([]*model.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	p := opts.params()
	var tables []*model.Table
	for _, sheetName := range f.GetSheetList() {
		ts, err := parser.BuildTables(f, sheetName, p)
		if err != nil {
			return nil, &ExtractionError{SheetName: sheetName, Err: err}
		}
		tables = append(tables, ts...)
	}
	return tables, nil
}
