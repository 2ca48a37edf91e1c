package crossdeck

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ExtractionError represents a fatal error during extraction. Per-cell
// and per-block heuristic misses are never errors; this covers
// structural failures that prevent producing any tables.
type ExtractionError struct {
	SheetName string
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q: %v", e.SheetName, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
