package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/yorutsuke/ledgersync/internal/client/api"
	"github.com/yorutsuke/ledgersync/internal/client/netprobe"
	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/models"
	"github.com/yorutsuke/ledgersync/pkg/api"
)

func newPushFixture(
	apiMock *ClientAPIMock,
	records *storage.RecordStorageMock,
	state *storage.SyncStateStorageMock,
	online bool,
) *PushEngine {
	probe := &netprobe.ProberMock{
		IsOnlineFunc: func(ctx context.Context) bool { return online },
	}
	logger := testLogger()
	queue := NewOfflineQueue(state, logger)
	return NewPushEngine(apiMock, records, state, queue, probe, staticToken("test-token"), logger)
}

func TestPushEngine_SyncDirty_Online(t *testing.T) {
	owner := "user-1"
	now := time.Now().UTC()
	dirty := []*models.Transaction{
		dirtyTx("tx-1", owner, now),
		dirtyTx("tx-2", owner, now),
	}

	records := &storage.RecordStorageMock{
		GetDirtyFunc: func(ctx context.Context, o string) ([]*models.Transaction, error) {
			return dirty, nil
		},
		ClearDirtyFunc: func(ctx context.Context, ids []string) error { return nil },
	}
	state := quietStateMock()
	apiMock := &ClientAPIMock{
		BulkUpsertFunc: func(ctx context.Context, accessToken string, req api.BulkUpsertRequest) (*api.BulkUpsertResponse, error) {
			return &api.BulkUpsertResponse{SyncedIDs: []string{"tx-1", "tx-2"}}, nil
		},
	}

	engine := newPushFixture(apiMock, records, state, true)

	result, err := engine.SyncDirty(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SyncedCount)
	assert.Equal(t, 0, result.QueuedCount)
	assert.Empty(t, result.FailedIDs)

	// Один bulk вызов на весь пакет
	require.Len(t, apiMock.BulkUpsertCalls(), 1)
	assert.Len(t, apiMock.BulkUpsertCalls()[0].Req.Records, 2)
	assert.Equal(t, "test-token", apiMock.BulkUpsertCalls()[0].AccessToken)

	// Dirty снят ровно с подтвержденных ID
	require.Len(t, records.ClearDirtyCalls(), 1)
	assert.Equal(t, []string{"tx-1", "tx-2"}, records.ClearDirtyCalls()[0].Ids)

	// Маркер очереди снят, метка времени сохранена
	assert.Len(t, state.ClearQueueCalls(), 1)
	assert.Len(t, state.SaveLastSyncedAtCalls(), 1)
}

func TestPushEngine_SyncDirty_Offline(t *testing.T) {
	owner := "user-1"
	now := time.Now().UTC()

	records := &storage.RecordStorageMock{
		GetDirtyFunc: func(ctx context.Context, o string) ([]*models.Transaction, error) {
			return []*models.Transaction{
				dirtyTx("tx-1", owner, now),
				dirtyTx("tx-2", owner, now),
				dirtyTx("tx-3", owner, now),
			}, nil
		},
	}
	state := quietStateMock()
	apiMock := &ClientAPIMock{}

	engine := newPushFixture(apiMock, records, state, false)

	result, err := engine.SyncDirty(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 3, result.QueuedCount)
	assert.Equal(t, 0, result.SyncedCount)

	// Сервер не трогали, очередь помечена один раз
	assert.Empty(t, apiMock.BulkUpsertCalls())
	assert.Len(t, state.MarkQueuePendingCalls(), 1)
}

func TestPushEngine_SyncDirty_OfflineThenReconnect(t *testing.T) {
	owner := "user-1"
	now := time.Now().UTC()
	dirty := []*models.Transaction{
		dirtyTx("tx-1", owner, now),
		dirtyTx("tx-2", owner, now),
	}

	online := false
	probe := &netprobe.ProberMock{
		IsOnlineFunc: func(ctx context.Context) bool { return online },
	}
	records := &storage.RecordStorageMock{
		GetDirtyFunc: func(ctx context.Context, o string) ([]*models.Transaction, error) {
			return dirty, nil
		},
		ClearDirtyFunc: func(ctx context.Context, ids []string) error { return nil },
	}
	state := quietStateMock()
	apiMock := &ClientAPIMock{
		BulkUpsertFunc: func(ctx context.Context, accessToken string, req api.BulkUpsertRequest) (*api.BulkUpsertResponse, error) {
			ids := make([]string, 0, len(req.Records))
			for _, rec := range req.Records {
				ids = append(ids, rec.ID)
			}
			return &api.BulkUpsertResponse{SyncedIDs: ids}, nil
		},
	}

	logger := testLogger()
	queue := NewOfflineQueue(state, logger)
	engine := NewPushEngine(apiMock, records, state, queue, probe, staticToken("tok"), logger)

	// Пока offline: все в очередь
	result, err := engine.SyncDirty(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 2, result.QueuedCount)
	assert.Empty(t, apiMock.BulkUpsertCalls())

	// Сеть вернулась: один проход отправляет все скопившееся
	online = true
	result, err = engine.SyncDirty(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SyncedCount)
	require.Len(t, apiMock.BulkUpsertCalls(), 1)
	assert.Len(t, apiMock.BulkUpsertCalls()[0].Req.Records, 2)
}

func TestPushEngine_SyncDirty_PartialBatch(t *testing.T) {
	owner := "user-1"
	now := time.Now().UTC()

	records := &storage.RecordStorageMock{
		GetDirtyFunc: func(ctx context.Context, o string) ([]*models.Transaction, error) {
			return []*models.Transaction{
				dirtyTx("tx-1", owner, now),
				dirtyTx("tx-2", owner, now),
				dirtyTx("tx-3", owner, now),
			}, nil
		},
		ClearDirtyFunc: func(ctx context.Context, ids []string) error { return nil },
	}
	state := quietStateMock()
	apiMock := &ClientAPIMock{
		BulkUpsertFunc: func(ctx context.Context, accessToken string, req api.BulkUpsertRequest) (*api.BulkUpsertResponse, error) {
			return &api.BulkUpsertResponse{
				SyncedIDs: []string{"tx-1", "tx-3"},
				FailedIDs: []string{"tx-2"},
			}, nil
		},
	}

	engine := newPushFixture(apiMock, records, state, true)

	result, err := engine.SyncDirty(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SyncedCount)
	assert.Equal(t, []string{"tx-2"}, result.FailedIDs)
	assert.Equal(t, 1, result.QueuedCount)

	// Dirty снят только с подтвержденных, отклоненная запись ждет
	require.Len(t, records.ClearDirtyCalls(), 1)
	assert.Equal(t, []string{"tx-1", "tx-3"}, records.ClearDirtyCalls()[0].Ids)
	assert.Len(t, state.MarkQueuePendingCalls(), 1)
	assert.Empty(t, state.ClearQueueCalls())
}

func TestPushEngine_SyncDirty_TransportError(t *testing.T) {
	owner := "user-1"
	now := time.Now().UTC()

	records := &storage.RecordStorageMock{
		GetDirtyFunc: func(ctx context.Context, o string) ([]*models.Transaction, error) {
			return []*models.Transaction{dirtyTx("tx-1", owner, now)}, nil
		},
	}
	state := quietStateMock()
	transportErr := &clientapi.TransportError{Op: "POST /api/v1/transactions/bulk-upsert", StatusCode: 503}
	apiMock := &ClientAPIMock{
		BulkUpsertFunc: func(ctx context.Context, accessToken string, req api.BulkUpsertRequest) (*api.BulkUpsertResponse, error) {
			return nil, transportErr
		},
	}

	engine := newPushFixture(apiMock, records, state, true)

	result, err := engine.SyncDirty(context.Background(), owner)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, clientapi.IsTransportError(err))

	// Очередь не помечается: dirty флаги сами обеспечат повтор
	assert.Empty(t, state.MarkQueuePendingCalls())
	assert.Empty(t, records.ClearDirtyCalls())
}

func TestPushEngine_SyncDirty_NothingToPush(t *testing.T) {
	records := &storage.RecordStorageMock{
		GetDirtyFunc: func(ctx context.Context, o string) ([]*models.Transaction, error) {
			return nil, nil
		},
	}
	state := quietStateMock()
	state.IsQueuePendingFunc = func(ctx context.Context) (bool, error) { return true, nil }
	apiMock := &ClientAPIMock{}

	engine := newPushFixture(apiMock, records, state, true)

	result, err := engine.SyncDirty(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.SyncedCount)

	// Устаревший маркер очереди снимается мимоходом
	assert.Len(t, state.ClearQueueCalls(), 1)
	assert.Empty(t, apiMock.BulkUpsertCalls())
}

func TestPushEngine_SyncDirty_LocalStorageError(t *testing.T) {
	records := &storage.RecordStorageMock{
		GetDirtyFunc: func(ctx context.Context, o string) ([]*models.Transaction, error) {
			return nil, errors.New("disk corrupted")
		},
	}
	state := quietStateMock()
	apiMock := &ClientAPIMock{}

	engine := newPushFixture(apiMock, records, state, true)

	result, err := engine.SyncDirty(context.Background(), "user-1")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, apiMock.BulkUpsertCalls())
	assert.Empty(t, state.MarkQueuePendingCalls())
}
