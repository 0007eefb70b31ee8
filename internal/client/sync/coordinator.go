package sync

import (
	"context"
	"log/slog"

	"github.com/yorutsuke/ledgersync/internal/models"
)

// FullSyncResult contains the combined results of one full sync pass
type FullSyncResult struct {
	Push *PushResult
	Pull *PullResult
}

// Coordinator sequences a full sync pass: push first so local mutations
// reach the server before we read its state back, then pull. Pull runs
// even when push fails, so a flaky upload never blocks downloads.
type Coordinator struct {
	push   *PushEngine
	pull   *PullEngine
	queue  *OfflineQueue
	logger *slog.Logger
}

// NewCoordinator creates a new sync coordinator
func NewCoordinator(push *PushEngine, pull *PullEngine, queue *OfflineQueue, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		push:   push,
		pull:   pull,
		queue:  queue,
		logger: logger,
	}
}

// FullSync runs one push+pull pass for the owner. Возвращаемый результат
// никогда не nil: даже при ошибке push секция pull заполнена. Ошибка push
// возвращается рядом с результатом, решение об эскалации за вызывающим.
//
// FullSync идемпотентен: повторный вызов на уже синхронизированном
// состоянии ничего не меняет ни локально, ни на сервере.
func (c *Coordinator) FullSync(ctx context.Context, owner string, dateRange *models.DateRange) (*FullSyncResult, error) {
	// Снимаем маркер очереди до попытки: этот проход и есть та попытка,
	// которую маркер требовал. Провал прохода пометит очередь заново.
	if err := c.queue.Clear(ctx); err != nil {
		c.logger.Warn("Failed to clear queue marker before sync", "error", err)
	}

	result := &FullSyncResult{}

	pushResult, pushErr := c.push.SyncDirty(ctx, owner)
	if pushErr != nil {
		c.logger.Error("Push failed, continuing with pull",
			"owner", owner,
			"error", pushErr)
		pushResult = &PushResult{}
	}
	result.Push = pushResult

	result.Pull = c.pull.Pull(ctx, owner, dateRange)

	c.logger.Info("Full sync completed",
		"owner", owner,
		"pushed", result.Push.SyncedCount,
		"pulled", result.Pull.SyncedCount,
		"conflicts", result.Pull.ConflictCount,
		"push_failed", pushErr != nil)

	return result, pushErr
}
