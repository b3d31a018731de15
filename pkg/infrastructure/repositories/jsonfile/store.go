// Package jsonfile persists the planning document as a single JSON blob
// under a fixed storage key, the way the replaced system kept it in browser
// storage. Loading never fails on an older document: missing pieces are
// back-filled by an ordered migration chain and unknown fields survive a
// round trip untouched.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dzcontrol/planner/pkg/domain/entities"
)

// StorageKey is the fixed name of the persisted document.
const StorageKey = "surovinyAppData_v15"

// Store reads and writes the planning document blob.
type Store struct {
	path string
}

// NewStore creates a store keeping the document under dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, StorageKey+".json")}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document, applying migrations to older shapes. A missing
// file yields the seeded default document. The returned names list which
// migrations changed the document; callers should Save when it is non-empty.
func (s *Store) Load() (*entities.Document, []string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return entities.DefaultDocument(), nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document %s: %w", s.path, err)
	}

	var doc entities.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to decode document %s: %w", s.path, err)
	}

	applied := Migrate(&doc)
	return &doc, applied, nil
}

// Save writes the document, creating the directory when needed.
func (s *Store) Save(doc *entities.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", s.path, err)
	}
	return nil
}
