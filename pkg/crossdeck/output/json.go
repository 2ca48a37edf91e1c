// Package output serializes parse results.
package output

import (
	"encoding/json"

	"github.com/crossdeck/crossdeck/pkg/crossdeck/model"
)

// ParseResult is the JSON envelope for an extraction run.
type ParseResult struct {
	Tables []*model.Table `json:"tables"`
}

// ToJSON serializes extracted tables.
func ToJSON(tables []*model.Table, pretty bool) ([]byte, error) {
	result := ParseResult{Tables: tables}
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
