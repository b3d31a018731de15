package memory

import (
	"fmt"
	"sync"

	"github.com/dzcontrol/planner/pkg/domain/entities"
	"github.com/dzcontrol/planner/pkg/domain/repositories"
)

// DocumentRepository holds the planning document in memory. Every snapshot
// is a deep clone and every replace swaps the whole document, so readers
// never observe a torn state.
type DocumentRepository struct {
	mu  sync.RWMutex
	doc *entities.Document
}

// NewDocumentRepository creates a repository seeded with the given document.
func NewDocumentRepository(doc *entities.Document) *DocumentRepository {
	return &DocumentRepository{doc: doc.Clone()}
}

// Verify interface compliance
var _ repositories.DocumentRepository = (*DocumentRepository)(nil)

// Snapshot returns a stable deep copy of the current document.
func (r *DocumentRepository) Snapshot() (*entities.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.doc == nil {
		return nil, fmt.Errorf("no document loaded")
	}
	return r.doc.Clone(), nil
}

// Replace atomically swaps in a new document.
func (r *DocumentRepository) Replace(doc *entities.Document) error {
	if doc == nil {
		return fmt.Errorf("cannot replace with a nil document")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = doc.Clone()
	return nil
}
