package repositories

import "github.com/dzcontrol/planner/pkg/domain/entities"

// DocumentRepository provides access to the planning document. Snapshot
// returns a stable copy safe to read for the duration of one computation;
// Replace swaps the whole document atomically. Callers never mutate a
// snapshot they handed in.
type DocumentRepository interface {
	Snapshot() (*entities.Document, error)
	Replace(doc *entities.Document) error
}
