package sync

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func staticToken(token string) TokenSource {
	return func(ctx context.Context) (string, error) {
		return token, nil
	}
}

// dirtyTx строит грязную транзакцию для тестов
func dirtyTx(id, owner string, updatedAt time.Time) *models.Transaction {
	return &models.Transaction{
		ID:         id,
		Owner:      owner,
		Amount:     1250,
		Currency:   "JPY",
		Memo:       "coffee",
		OccurredAt: updatedAt.Add(-time.Hour),
		CreatedAt:  updatedAt.Add(-time.Hour),
		UpdatedAt:  updatedAt,
		Dirty:      true,
	}
}

// quietStateMock возвращает sync-state мок, где все операции успешны
func quietStateMock() *storage.SyncStateStorageMock {
	return &storage.SyncStateStorageMock{
		MarkQueuePendingFunc: func(ctx context.Context) error { return nil },
		ClearQueueFunc:       func(ctx context.Context) error { return nil },
		IsQueuePendingFunc:   func(ctx context.Context) (bool, error) { return false, nil },
		SaveLastSyncedAtFunc: func(ctx context.Context, ts time.Time) error { return nil },
		GetLastSyncedAtFunc:  func(ctx context.Context) (time.Time, error) { return time.Time{}, nil },
	}
}

// noMediaEngine возвращает медиа-движок, которому нечего делать
func noMediaEngine() *MediaSyncEngine {
	media := &storage.MediaStorageMock{
		HasLocalBytesFunc: func(ctx context.Context, ref string) (bool, error) { return true, nil },
	}
	return NewMediaSyncEngine(media, testLogger())
}
