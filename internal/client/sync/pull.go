package sync

import (
	"context"
	"fmt"
	"log/slog"

	httpClient "github.com/yorutsuke/ledgersync/internal/client/api"
	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/models"
)

// PullResult contains pull operation results
type PullResult struct {
	Errors        []string     // изолированные ошибки по отдельным записям
	MediaResult   *MediaResult // результат медиа-прохода над полученным набором
	SyncedCount   int          // количество записей, записанных локально
	ConflictCount int          // количество записей, потребовавших разрешения
	RemoteCount   int          // количество записей, полученных с сервера
	LocalCount    int          // количество локальных записей в окне
	FetchFailed   bool         // проход оборвался до слияния: токен, сеть или локальный список
}

// PullEngine fetches the remote state of an owner and reconciles it into the
// local store record by record. Pull is deliberately infallible at the call
// site: a failed fetch produces an empty result with the error recorded in
// Errors, never a panic up the UI stack.
type PullEngine struct {
	apiClient httpClient.ClientAPI
	records   storage.RecordStorage
	resolver  func(remote, local *models.Transaction) *models.Transaction
	media     *MediaSyncEngine
	token     TokenSource
	logger    *slog.Logger
}

// NewPullEngine creates a new pull engine
func NewPullEngine(
	apiClient httpClient.ClientAPI,
	records storage.RecordStorage,
	media *MediaSyncEngine,
	token TokenSource,
	logger *slog.Logger,
) *PullEngine {
	return &PullEngine{
		apiClient: apiClient,
		records:   records,
		resolver:  Resolve,
		media:     media,
		token:     token,
		logger:    logger,
	}
}

// Pull reconciles remote records into the local store for the owner,
// optionally windowed by dateRange. Ошибка одной записи не прерывает
// проход: она попадает в result.Errors, остальные записи обрабатываются.
func (e *PullEngine) Pull(ctx context.Context, owner string, dateRange *models.DateRange) *PullResult {
	result := &PullResult{
		MediaResult: &MediaResult{},
	}

	accessToken, err := e.token(ctx)
	if err != nil {
		result.FetchFailed = true
		result.Errors = append(result.Errors, fmt.Sprintf("failed to get access token: %v", err))
		return result
	}

	remoteRecords, err := e.apiClient.Query(ctx, accessToken, owner, dateRange)
	if err != nil {
		e.logger.Error("Failed to fetch remote records",
			"owner", owner,
			"error", err)
		result.FetchFailed = true
		result.Errors = append(result.Errors, fmt.Sprintf("failed to fetch remote records: %v", err))
		return result
	}

	local, err := e.records.List(ctx, owner, dateRange)
	if err != nil {
		result.FetchFailed = true
		result.Errors = append(result.Errors, fmt.Sprintf("failed to list local records: %v", err))
		return result
	}

	result.RemoteCount = len(remoteRecords)
	result.LocalCount = len(local)

	// Индексируем локальные записи по ID для слияния
	localByID := make(map[string]*models.Transaction, len(local))
	for _, tx := range local {
		localByID[tx.ID] = tx
	}

	remote := make([]*models.Transaction, 0, len(remoteRecords))
	for _, rec := range remoteRecords {
		remoteTx := fromAPIRecord(rec)
		remote = append(remote, remoteTx)

		existing, ok := localByID[remoteTx.ID]
		if !ok {
			// Записи нет локально - вставляем как чистую
			if err := e.records.Upsert(ctx, remoteTx); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("failed to insert record %s: %v", remoteTx.ID, err))
				continue
			}
			result.SyncedCount++
			continue
		}

		// Чистая локальная копия при точном совпадении версий уже
		// синхронизирована: ни записи, ни конфликта. Без этого каждый
		// pull над стабильной парой переписывал бы все записи заново.
		if alreadySynchronized(remoteTx, existing) {
			continue
		}

		// Запись есть с обеих сторон - разрешаем конфликт
		result.ConflictCount++

		winner := e.resolver(remoteTx, existing)
		if winner == existing {
			// Локальная версия победила: ничего не пишем, dirty флаг
			// сохраняется и запись уйдет следующим push
			continue
		}

		if err := e.records.Upsert(ctx, winner); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to update record %s: %v", remoteTx.ID, err))
			continue
		}
		result.SyncedCount++
	}

	// Медиа-проход всегда идет по полученному набору, даже если часть
	// записей выше завершилась ошибкой
	result.MediaResult = e.media.SyncMedia(ctx, owner, remote)

	e.logger.Info("Pull completed",
		"owner", owner,
		"remote", result.RemoteCount,
		"local", result.LocalCount,
		"synced", result.SyncedCount,
		"conflicts", result.ConflictCount,
		"errors", len(result.Errors))

	return result
}

// alreadySynchronized reports whether the clean local copy matches the
// remote one: equal updatedAt and the same confirmation mark. Такая пара
// не требует ни перезаписи, ни разрешения конфликта.
func alreadySynchronized(remote, local *models.Transaction) bool {
	if local.Dirty || !remote.UpdatedAt.Equal(local.UpdatedAt) {
		return false
	}
	if (remote.ConfirmedAt == nil) != (local.ConfirmedAt == nil) {
		return false
	}
	return remote.ConfirmedAt == nil || remote.ConfirmedAt.Equal(*local.ConfirmedAt)
}
