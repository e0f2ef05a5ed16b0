package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"mend/internal/models"
)

// Store reads and writes the advice document at a file path. The whole
// document sits in memory between load and save; there is no streaming or
// partial I/O.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// Load parses the JSON array at path into a Document. Numbers are decoded
// as json.Number so untouched numeric fields serialize back exactly as they
// came in.
func (s *Store) Load(path string) (models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc models.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrParse, path, err)
	}
	return doc, nil
}

// Save writes the document back to path with 2-space indentation and
// literal UTF-8 (no \u escapes). The file is replaced atomically so a crash
// mid-write cannot leave a truncated dataset behind.
func (s *Store) Save(path string, doc models.Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
