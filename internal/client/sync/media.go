package sync

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/client/telemetry"
	"github.com/yorutsuke/ledgersync/internal/models"
)

// MediaResult contains media sync pass results
type MediaResult struct {
	OrphanedIDs []string // ID записей с медиа без известного удаленного расположения
	Total       int      // записей с медиа-ссылкой в этом проходе
	Created     int      // созданных локальных метаданных
	Updated     int      // обновленных указателей на удаленное расположение
	Skipped     int      // локальные байты на месте, делать нечего
	Orphaned    int      // осиротевших медиа-ссылок
	Errors      int      // ошибок хранилища (изолированных)
}

// MediaSyncEngine backfills and repairs local pointers to out-of-band media
// referenced by synced records. It never fetches bytes: downloads are lazy,
// deferred to view time.
type MediaSyncEngine struct {
	media  storage.MediaStorage
	logger *slog.Logger
	now    func() time.Time
}

// NewMediaSyncEngine creates a new media sync engine
func NewMediaSyncEngine(media storage.MediaStorage, logger *slog.Logger) *MediaSyncEngine {
	return &MediaSyncEngine{
		media:  media,
		logger: logger,
		now:    time.Now,
	}
}

// SyncMedia walks the given records and reconciles local media metadata
// with what the remote records claim. Per-record failures are counted and
// skipped; one bad record never aborts the pass.
func (e *MediaSyncEngine) SyncMedia(ctx context.Context, owner string, records []*models.Transaction) *MediaResult {
	result := &MediaResult{}

	for _, tx := range records {
		if tx.MediaRef == "" {
			continue
		}
		result.Total++

		if err := e.syncOne(ctx, owner, tx, result); err != nil {
			result.Errors++
			e.logger.Warn("Failed to sync media for record",
				"record_id", tx.ID,
				"media_ref", tx.MediaRef,
				"error", err)
		}
	}

	if result.Orphaned > 0 {
		// Отдельный сигнал целостности данных, не фатальный
		e.logger.Warn(telemetry.EventMediaOrphaned,
			"owner", owner,
			"orphaned", result.Orphaned,
			"record_ids", result.OrphanedIDs)
	}

	return result
}

// syncOne обрабатывает одну запись с медиа-ссылкой
func (e *MediaSyncEngine) syncOne(ctx context.Context, owner string, tx *models.Transaction, result *MediaResult) error {
	// Локальные байты на месте - делать нечего
	present, err := e.media.HasLocalBytes(ctx, tx.MediaRef)
	if err != nil {
		return err
	}
	if present {
		result.Skipped++
		return nil
	}

	meta, err := e.media.GetMeta(ctx, tx.MediaRef)
	switch {
	case err == nil:
		// Метаданные есть, байтов нет: чиним указатель, если сервер
		// сообщил расположение. Скачивание отложено до просмотра.
		if tx.MediaLocation == "" {
			result.Orphaned++
			result.OrphanedIDs = append(result.OrphanedIDs, tx.ID)
			return nil
		}
		if meta.RemoteLocation == tx.MediaLocation {
			result.Skipped++
			return nil
		}
		meta.RemoteLocation = tx.MediaLocation
		meta.UpdatedAt = e.now()
		if err := e.media.SaveMeta(ctx, meta); err != nil {
			return err
		}
		result.Updated++
		return nil

	case errors.Is(err, storage.ErrMediaNotFound):
		// Метаданных нет вовсе
		if tx.MediaLocation == "" {
			result.Orphaned++
			result.OrphanedIDs = append(result.OrphanedIDs, tx.ID)
			return nil
		}
		now := e.now()
		meta := &models.MediaMeta{
			Ref:            tx.MediaRef,
			Owner:          owner,
			RemoteLocation: tx.MediaLocation,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := e.media.SaveMeta(ctx, meta); err != nil {
			return err
		}
		result.Created++
		return nil

	default:
		return err
	}
}
