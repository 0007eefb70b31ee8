package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/models"
)

func TestRecoveryManager_CheckStatus(t *testing.T) {
	syncedAt := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)

	records := &storage.RecordStorageMock{
		CountDirtyFunc: func(ctx context.Context, owner string) (int, error) { return 4, nil },
	}
	state := quietStateMock()
	state.IsQueuePendingFunc = func(ctx context.Context) (bool, error) { return true, nil }
	state.GetLastSyncedAtFunc = func(ctx context.Context) (time.Time, error) { return syncedAt, nil }

	logger := testLogger()
	manager := NewRecoveryManager(records, state, NewOfflineQueue(state, logger), logger)

	status, err := manager.CheckStatus(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 4, status.DirtyCount)
	assert.True(t, status.QueuePending)
	assert.Equal(t, syncedAt, status.LastSyncedAt)
	assert.True(t, status.HasUnsyncedWork())
}

func TestRecoveryManager_CheckStatus_ReadOnly(t *testing.T) {
	records := &storage.RecordStorageMock{
		CountDirtyFunc: func(ctx context.Context, owner string) (int, error) { return 2, nil },
	}
	state := quietStateMock()
	state.IsQueuePendingFunc = func(ctx context.Context) (bool, error) { return true, nil }

	logger := testLogger()
	manager := NewRecoveryManager(records, state, NewOfflineQueue(state, logger), logger)

	// Повторные проверки ничего не мутируют
	for i := 0; i < 3; i++ {
		_, err := manager.CheckStatus(context.Background(), "user-1")
		require.NoError(t, err)
	}

	assert.Empty(t, state.MarkQueuePendingCalls())
	assert.Empty(t, state.ClearQueueCalls())
	assert.Empty(t, records.ClearDirtyCalls())
	assert.Empty(t, records.GetDirtyCalls())
}

func TestRecoveryManager_Discard(t *testing.T) {
	owner := "user-1"
	now := time.Now().UTC()

	records := &storage.RecordStorageMock{
		GetDirtyFunc: func(ctx context.Context, o string) ([]*models.Transaction, error) {
			return []*models.Transaction{
				dirtyTx("tx-1", owner, now),
				dirtyTx("tx-2", owner, now),
			}, nil
		},
		ClearDirtyFunc: func(ctx context.Context, ids []string) error { return nil },
	}
	state := quietStateMock()

	logger := testLogger()
	manager := NewRecoveryManager(records, state, NewOfflineQueue(state, logger), logger)

	discarded, err := manager.Discard(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 2, discarded)

	require.Len(t, records.ClearDirtyCalls(), 1)
	assert.Equal(t, []string{"tx-1", "tx-2"}, records.ClearDirtyCalls()[0].Ids)
	assert.Len(t, state.ClearQueueCalls(), 1)
}

func TestOfflineQueue_CoalescesRepeatedMarks(t *testing.T) {
	pending := false
	state := quietStateMock()
	state.MarkQueuePendingFunc = func(ctx context.Context) error {
		pending = true
		return nil
	}
	state.ClearQueueFunc = func(ctx context.Context) error {
		pending = false
		return nil
	}
	state.IsQueuePendingFunc = func(ctx context.Context) (bool, error) {
		return pending, nil
	}

	queue := NewOfflineQueue(state, testLogger())
	ctx := context.Background()

	// Сто офлайн-мутаций схлопываются в один маркер
	for i := 0; i < 100; i++ {
		require.NoError(t, queue.MarkPending(ctx))
	}

	got, err := queue.IsPending(ctx)
	require.NoError(t, err)
	assert.True(t, got)

	// Одного Clear достаточно
	require.NoError(t, queue.Clear(ctx))
	got, err = queue.IsPending(ctx)
	require.NoError(t, err)
	assert.False(t, got)
}
