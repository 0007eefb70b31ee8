package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/client/telemetry"
)

// OfflineQueue is the coalesced "a sync attempt is owed" signal. It is a
// single boolean marker, deliberately not a per-item retry list: individual
// dirty flags, not the marker, drive eventual re-sync of specific records.
type OfflineQueue struct {
	state  storage.SyncStateStorage
	logger *slog.Logger
}

// NewOfflineQueue creates a new offline queue over the sync-state store
func NewOfflineQueue(state storage.SyncStateStorage, logger *slog.Logger) *OfflineQueue {
	return &OfflineQueue{
		state:  state,
		logger: logger,
	}
}

// MarkPending records that a sync attempt is owed. Coalescing: marking an
// already-pending queue is a no-op, never a second entry.
func (q *OfflineQueue) MarkPending(ctx context.Context) error {
	if err := q.state.MarkQueuePending(ctx); err != nil {
		return fmt.Errorf("failed to mark offline queue pending: %w", err)
	}

	q.logger.Info(telemetry.EventQueueMarked)
	return nil
}

// Clear removes the pending marker. Called atomically right before a sync
// attempt so a failed attempt cannot leave duplicate retries behind.
func (q *OfflineQueue) Clear(ctx context.Context) error {
	if err := q.state.ClearQueue(ctx); err != nil {
		return fmt.Errorf("failed to clear offline queue: %w", err)
	}

	q.logger.Debug("Offline queue cleared")
	return nil
}

// IsPending reports whether a sync attempt is owed
func (q *OfflineQueue) IsPending(ctx context.Context) (bool, error) {
	pending, err := q.state.IsQueuePending(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check offline queue: %w", err)
	}
	return pending, nil
}
