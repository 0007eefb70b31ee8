package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/yorutsuke/ledgersync/internal/client/api"
	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/models"
	"github.com/yorutsuke/ledgersync/pkg/api"
)

// happyControllerFixture собирает контроллер над пустым, полностью
// синхронизированным состоянием
func happyControllerFixture(state *storage.SyncStateStorageMock) (*Controller, *ClientAPIMock, *storage.RecordStorageMock) {
	records := &storage.RecordStorageMock{
		GetDirtyFunc: func(ctx context.Context, o string) ([]*models.Transaction, error) {
			return nil, nil
		},
		ListFunc: func(ctx context.Context, o string, dr *models.DateRange) ([]*models.Transaction, error) {
			return nil, nil
		},
	}
	apiMock := &ClientAPIMock{
		QueryFunc: func(ctx context.Context, accessToken, o string, dr *models.DateRange) ([]api.TransactionRecord, error) {
			return nil, nil
		},
	}
	coordinator := newCoordinatorFixture(apiMock, records, state, true)
	controller := NewController(coordinator, state, testLogger())
	return controller, apiMock, records
}

func TestController_InitialStatusIsIdle(t *testing.T) {
	controller, _, _ := happyControllerFixture(quietStateMock())

	status := controller.Status()
	_, ok := status.(StatusIdle)
	assert.True(t, ok)
	assert.True(t, status.LastSyncedAt().IsZero())
}

func TestController_Sync_Success(t *testing.T) {
	syncedAt := time.Now().UTC().Truncate(time.Second)
	state := quietStateMock()
	state.GetLastSyncedAtFunc = func(ctx context.Context) (time.Time, error) {
		return syncedAt, nil
	}
	controller, _, _ := happyControllerFixture(state)

	status := controller.Sync(context.Background(), "user-1", nil)

	success, ok := status.(StatusSuccess)
	require.True(t, ok)
	require.NotNil(t, success.Result)

	// Метка перечитана из хранилища после прохода
	assert.Equal(t, syncedAt, status.LastSyncedAt())

	// Контроллер хранит последний статус
	assert.Equal(t, status, controller.Status())
}

func TestController_Sync_Failure(t *testing.T) {
	state := quietStateMock()
	records := &storage.RecordStorageMock{
		GetDirtyFunc: func(ctx context.Context, o string) ([]*models.Transaction, error) {
			return []*models.Transaction{dirtyTx("tx-1", "user-1", time.Now())}, nil
		},
		ListFunc: func(ctx context.Context, o string, dr *models.DateRange) ([]*models.Transaction, error) {
			return nil, nil
		},
	}
	apiMock := &ClientAPIMock{
		BulkUpsertFunc: func(ctx context.Context, accessToken string, req api.BulkUpsertRequest) (*api.BulkUpsertResponse, error) {
			return nil, &clientapi.TransportError{Op: "POST", StatusCode: 502}
		},
		QueryFunc: func(ctx context.Context, accessToken, o string, dr *models.DateRange) ([]api.TransactionRecord, error) {
			return nil, nil
		},
	}
	coordinator := newCoordinatorFixture(apiMock, records, state, true)
	controller := NewController(coordinator, state, testLogger())

	status := controller.Sync(context.Background(), "user-1", nil)

	failed, ok := status.(StatusFailed)
	require.True(t, ok)
	assert.NotEmpty(t, failed.Message)
}

func TestController_Sync_PerRecordPullErrorIsStillSuccess(t *testing.T) {
	owner := "user-1"
	now := time.Now().UTC()

	state := quietStateMock()
	records := &storage.RecordStorageMock{
		GetDirtyFunc: func(ctx context.Context, o string) ([]*models.Transaction, error) {
			return nil, nil
		},
		ListFunc: func(ctx context.Context, o string, dr *models.DateRange) ([]*models.Transaction, error) {
			return nil, nil
		},
		UpsertFunc: func(ctx context.Context, tx *models.Transaction) error {
			if tx.ID == "tx-bad" {
				return errors.New("constraint violation")
			}
			return nil
		},
	}
	apiMock := &ClientAPIMock{
		QueryFunc: func(ctx context.Context, accessToken, o string, dr *models.DateRange) ([]api.TransactionRecord, error) {
			return []api.TransactionRecord{
				remoteRecord("tx-bad", owner, now),
				remoteRecord("tx-good", owner, now),
			}, nil
		},
	}
	coordinator := newCoordinatorFixture(apiMock, records, state, true)
	controller := NewController(coordinator, state, testLogger())

	status := controller.Sync(context.Background(), owner, nil)

	// Изолированная ошибка одной записи не роняет статус: проход
	// завершился, ошибка видна в результате рядом со счетчиками
	success, ok := status.(StatusSuccess)
	require.True(t, ok)
	require.NotNil(t, success.Result)
	assert.Equal(t, 1, success.Result.Pull.SyncedCount)
	require.Len(t, success.Result.Pull.Errors, 1)
	assert.Contains(t, success.Result.Pull.Errors[0], "tx-bad")
}

func TestController_Sync_PullFetchFailureIsFailed(t *testing.T) {
	state := quietStateMock()
	records := &storage.RecordStorageMock{
		GetDirtyFunc: func(ctx context.Context, o string) ([]*models.Transaction, error) {
			return nil, nil
		},
	}
	apiMock := &ClientAPIMock{
		QueryFunc: func(ctx context.Context, accessToken, o string, dr *models.DateRange) ([]api.TransactionRecord, error) {
			return nil, &clientapi.TransportError{Op: "GET", StatusCode: 0, Err: errors.New("connection refused")}
		},
	}
	coordinator := newCoordinatorFixture(apiMock, records, state, true)
	controller := NewController(coordinator, state, testLogger())

	status := controller.Sync(context.Background(), "user-1", nil)

	failed, ok := status.(StatusFailed)
	require.True(t, ok)
	assert.Contains(t, failed.Message, "failed to fetch remote records")
}

func TestController_Sync_CoalescesConcurrentRequests(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	state := quietStateMock()
	records := &storage.RecordStorageMock{
		GetDirtyFunc: func(ctx context.Context, o string) ([]*models.Transaction, error) {
			close(started)
			<-release
			return nil, nil
		},
		ListFunc: func(ctx context.Context, o string, dr *models.DateRange) ([]*models.Transaction, error) {
			return nil, nil
		},
	}
	apiMock := &ClientAPIMock{
		QueryFunc: func(ctx context.Context, accessToken, o string, dr *models.DateRange) ([]api.TransactionRecord, error) {
			return nil, nil
		},
	}
	coordinator := newCoordinatorFixture(apiMock, records, state, true)
	controller := NewController(coordinator, state, testLogger())

	done := make(chan Status)
	go func() {
		done <- controller.Sync(context.Background(), "user-1", nil)
	}()

	<-started

	// Второй запрос во время работающего прохода: новый проход не
	// стартует, возвращается текущий StatusSyncing
	status := controller.Sync(context.Background(), "user-1", nil)
	_, ok := status.(StatusSyncing)
	assert.True(t, ok)

	close(release)
	first := <-done
	_, ok = first.(StatusSuccess)
	assert.True(t, ok)

	// Ровно один проход дошел до хранилища
	assert.Len(t, records.GetDirtyCalls(), 1)
}

func TestController_ShouldAutoSync(t *testing.T) {
	tests := []struct {
		name       string
		lastSynced time.Time
		threshold  time.Duration
		want       bool
	}{
		{
			name:       "never synced",
			lastSynced: time.Time{},
			threshold:  time.Hour,
			want:       true,
		},
		{
			name:       "recently synced",
			lastSynced: time.Now().Add(-time.Minute),
			threshold:  time.Hour,
			want:       false,
		},
		{
			name:       "stale",
			lastSynced: time.Now().Add(-2 * time.Hour),
			threshold:  time.Hour,
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := quietStateMock()
			state.GetLastSyncedAtFunc = func(ctx context.Context) (time.Time, error) {
				return tt.lastSynced, nil
			}
			controller, _, _ := happyControllerFixture(state)

			got, err := controller.ShouldAutoSync(context.Background(), tt.threshold)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
