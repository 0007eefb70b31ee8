package storage

import (
	"context"
	"time"
)

//go:generate moq -out syncstate_mock.go . SyncStateStorage

// SyncStateStorage defines interface for client sync-state metadata:
// the coalesced offline queue marker and the last successful sync time.
type SyncStateStorage interface {
	// MarkQueuePending sets the coalesced "sync attempt is owed" marker.
	// Repeated calls are idempotent: the marker is a boolean, not a list.
	MarkQueuePending(ctx context.Context) error

	// ClearQueue removes the pending marker
	ClearQueue(ctx context.Context) error

	// IsQueuePending reports whether a sync attempt is owed
	IsQueuePending(ctx context.Context) (bool, error)

	// SaveLastSyncedAt saves the time of the last successful sync
	SaveLastSyncedAt(ctx context.Context, ts time.Time) error

	// GetLastSyncedAt retrieves the time of the last successful sync
	// Returns zero time if no sync has been performed yet
	GetLastSyncedAt(ctx context.Context) (time.Time, error)
}
