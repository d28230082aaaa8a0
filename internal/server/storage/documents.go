package storage

import (
	"context"

	"github.com/nilesh2630/floorplan/internal/merge"
	"github.com/nilesh2630/floorplan/internal/models"
)

// DocumentStorage defines the interface for versioned floor plan persistence.
// Every accepted write bumps the document version by exactly 1; the version
// is the sole concurrency token.
type DocumentStorage interface {
	// Create stores a new floor plan with version fixed at 1.
	Create(ctx context.Context, name string, payload models.Payload, author string) (*models.Document, error)

	// Get retrieves a floor plan by ID.
	// Returns ErrDocumentNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*models.Document, error)

	// List returns all floor plans, most recently modified first.
	List(ctx context.Context) ([]*models.Document, error)

	// ConditionalUpdate performs an atomic compare-and-swap write: the
	// expectedVersion check and the write are indivisible with respect to
	// other writers. On match the version becomes expectedVersion+1. On
	// mismatch it returns *ConflictError carrying the current document and
	// leaves the store untouched.
	ConditionalUpdate(ctx context.Context, id, name string, payload models.Payload, expectedVersion int64, author string) (*models.Document, error)

	// Delete removes a floor plan unconditionally. It does not check a
	// caller-supplied version, so a delete can clobber a concurrent update.
	// Returns ErrDocumentNotFound if it doesn't exist.
	Delete(ctx context.Context, id string) error

	// BatchMerge folds the ordered deltas into the current stored payload
	// via the resolver and performs a single write that bumps the version by
	// exactly 1 regardless of how many deltas were folded. Used only by the
	// offline-sync path.
	// Returns ErrDocumentNotFound if the floor plan doesn't exist.
	BatchMerge(ctx context.Context, id string, deltas []merge.Delta, author string) (*models.Document, error)
}
