package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidDeck indicates the deck file could not be read or parsed.
var ErrInvalidDeck = errors.New("invalid deck file")

// Store loads and saves deck documents. The file format is owned by
// the rendering layer; the reference implementation is JSON.
type Store interface {
	Load(path string) (*Document, error)
	Save(doc *Document, path string) error
}

// JSONStore persists documents as JSON files.
type JSONStore struct {
	// Pretty indents the output.
	Pretty bool
}

// Load reads and parses a deck document. Failures are fatal: a deck
// that cannot be read yields no partial document.
func (s JSONStore) Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeck, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeck, err)
	}
	return &doc, nil
}

// Save writes a deck document. The target path is always a fresh
// write; Save never edits a file in place partially.
func (s JSONStore) Save(doc *Document, path string) error {
	var data []byte
	var err error
	if s.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
