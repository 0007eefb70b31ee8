package storage

import (
	"context"

	"github.com/yorutsuke/ledgersync/internal/models"
)

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage defines interface for the local embedded transaction store.
// Implementations are transactional and read-your-writes.
type RecordStorage interface {
	// Upsert stores or replaces a transaction record
	Upsert(ctx context.Context, tx *models.Transaction) error

	// Get retrieves a transaction by ID
	// Returns ErrRecordNotFound if record doesn't exist
	Get(ctx context.Context, id string) (*models.Transaction, error)

	// List returns all records for an owner, optionally filtered by date range
	// (nil range means no filter). Used as the local side of a pull merge.
	List(ctx context.Context, owner string, dateRange *models.DateRange) ([]*models.Transaction, error)

	// GetDirty returns all records for an owner with the dirty flag set
	GetDirty(ctx context.Context, owner string) ([]*models.Transaction, error)

	// CountDirty returns the number of dirty records for an owner
	// without loading them. Used by the startup recovery scan.
	CountDirty(ctx context.Context, owner string) (int, error)

	// ClearDirty clears the dirty flag for the given record IDs only.
	// Records the server did not confirm keep their flag.
	ClearDirty(ctx context.Context, ids []string) error
}
