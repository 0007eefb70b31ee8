package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/models"
)

// RecoveryManager inspects unsynced state left behind by a crash or an
// offline session. CheckStatus is used at startup to prompt the user;
// Discard is the explicit, never-automatic way to drop that state.
type RecoveryManager struct {
	records storage.RecordStorage
	state   storage.SyncStateStorage
	queue   *OfflineQueue
	logger  *slog.Logger
}

// NewRecoveryManager creates a new recovery manager
func NewRecoveryManager(
	records storage.RecordStorage,
	state storage.SyncStateStorage,
	queue *OfflineQueue,
	logger *slog.Logger,
) *RecoveryManager {
	return &RecoveryManager{
		records: records,
		state:   state,
		queue:   queue,
		logger:  logger,
	}
}

// CheckStatus reports the current unsynced state for an owner.
// Строго read-only: повторные вызовы ничего не мутируют.
func (m *RecoveryManager) CheckStatus(ctx context.Context, owner string) (*models.RecoveryStatus, error) {
	dirtyCount, err := m.records.CountDirty(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to count dirty records: %w", err)
	}

	queuePending, err := m.queue.IsPending(ctx)
	if err != nil {
		return nil, err
	}

	lastSyncedAt, err := m.state.GetLastSyncedAt(ctx)
	if err != nil {
		return nil, err
	}

	return &models.RecoveryStatus{
		DirtyCount:   dirtyCount,
		QueuePending: queuePending,
		LastSyncedAt: lastSyncedAt,
	}, nil
}

// Discard clears every dirty flag for the owner and the queue marker,
// abandoning unsynced local mutations. Data-loss action: callers must
// obtain explicit user consent first. Returns the number of records
// whose dirty flag was cleared.
func (m *RecoveryManager) Discard(ctx context.Context, owner string) (int, error) {
	dirty, err := m.records.GetDirty(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("failed to get dirty records: %w", err)
	}

	ids := make([]string, 0, len(dirty))
	for _, tx := range dirty {
		ids = append(ids, tx.ID)
	}

	if err := m.records.ClearDirty(ctx, ids); err != nil {
		return 0, fmt.Errorf("failed to clear dirty flags: %w", err)
	}

	if err := m.queue.Clear(ctx); err != nil {
		return 0, err
	}

	m.logger.Warn("Discarded unsynced local state",
		"owner", owner,
		"discarded", len(ids))

	return len(ids), nil
}
