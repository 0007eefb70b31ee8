package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpClient "github.com/yorutsuke/ledgersync/internal/client/api"
	"github.com/yorutsuke/ledgersync/internal/client/netprobe"
	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/pkg/api"
)

// TokenSource returns a valid access token for API calls
type TokenSource func(ctx context.Context) (string, error)

// PushResult contains push operation results
type PushResult struct {
	FailedIDs   []string // записи, отклоненные сервером в этом пакете
	SyncedCount int      // количество подтвержденных сервером записей
	QueuedCount int      // количество записей, оставшихся ждать следующей попытки
}

// PushEngine sends locally dirty records to the remote store in one bulk
// call per pass. When the store is unreachable it coalesces the work into
// the offline queue marker instead of fanning out per-record retries.
type PushEngine struct {
	apiClient httpClient.ClientAPI
	records   storage.RecordStorage
	state     storage.SyncStateStorage
	queue     *OfflineQueue
	probe     netprobe.Prober
	token     TokenSource
	logger    *slog.Logger
	now       func() time.Time
}

// NewPushEngine creates a new push engine
func NewPushEngine(
	apiClient httpClient.ClientAPI,
	records storage.RecordStorage,
	state storage.SyncStateStorage,
	queue *OfflineQueue,
	probe netprobe.Prober,
	token TokenSource,
	logger *slog.Logger,
) *PushEngine {
	return &PushEngine{
		apiClient: apiClient,
		records:   records,
		state:     state,
		queue:     queue,
		probe:     probe,
		token:     token,
		logger:    logger,
		now:       time.Now,
	}
}

// SyncDirty pushes all dirty records of the owner to the remote store.
//
// Ошибка локального хранилища фатальна для текущего прохода: ничего не
// мутируется, ошибка возвращается вызывающему. Транспортная ошибка
// пробрасывается НЕ помечая очередь: dirty флаги уже гарантируют, что
// записи будут подхвачены следующим триггером, а повторное помечание
// исторически приводило к неограниченному росту очереди.
func (e *PushEngine) SyncDirty(ctx context.Context, owner string) (*PushResult, error) {
	dirty, err := e.records.GetDirty(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to read dirty records: %w", err)
	}

	// Нечего отправлять - заодно снимаем устаревший маркер очереди
	if len(dirty) == 0 {
		pending, err := e.queue.IsPending(ctx)
		if err == nil && pending {
			if err := e.queue.Clear(ctx); err != nil {
				e.logger.Warn("Failed to clear stale queue marker", "error", err)
			}
		}
		return &PushResult{}, nil
	}

	// Offline: коалесцируем в один маркер, сервер не трогаем
	if !e.probe.IsOnline(ctx) {
		if err := e.queue.MarkPending(ctx); err != nil {
			return nil, err
		}

		e.logger.Info("Offline, queued dirty records for later sync",
			"owner", owner,
			"queued", len(dirty))

		return &PushResult{QueuedCount: len(dirty)}, nil
	}

	accessToken, err := e.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	// Один bulk вызов на весь пакет
	req := api.BulkUpsertRequest{
		Owner:   owner,
		Records: make([]api.TransactionRecord, 0, len(dirty)),
	}
	for _, tx := range dirty {
		req.Records = append(req.Records, toAPIRecord(tx))
	}

	resp, err := e.apiClient.BulkUpsert(ctx, accessToken, req)
	if err != nil {
		// Транспортная ошибка: dirty флаги остаются, очередь не трогаем
		e.logger.Error("Bulk upsert failed",
			"owner", owner,
			"records", len(dirty),
			"error", err)
		return nil, err
	}

	// Снимаем dirty только с подтвержденных сервером ID
	if err := e.records.ClearDirty(ctx, resp.SyncedIDs); err != nil {
		return nil, fmt.Errorf("failed to clear dirty flags: %w", err)
	}

	result := &PushResult{
		SyncedCount: len(resp.SyncedIDs),
		FailedIDs:   resp.FailedIDs,
	}

	// Частичный отказ: отклоненные записи ждут следующей попытки
	if len(resp.FailedIDs) > 0 {
		result.QueuedCount = len(resp.FailedIDs)
		if err := e.queue.MarkPending(ctx); err != nil {
			return nil, err
		}
		e.logger.Warn("Server rejected part of the batch",
			"owner", owner,
			"synced", result.SyncedCount,
			"failed", len(resp.FailedIDs))
	} else {
		if err := e.queue.Clear(ctx); err != nil {
			e.logger.Warn("Failed to clear queue marker", "error", err)
		}
	}

	if err := e.state.SaveLastSyncedAt(ctx, e.now()); err != nil {
		// Не прерываем проход из-за ошибки сохранения метки времени
		e.logger.Warn("Failed to save last synced at", "error", err)
	}

	e.logger.Info("Push completed",
		"owner", owner,
		"synced", result.SyncedCount,
		"failed", len(result.FailedIDs))

	return result, nil
}
