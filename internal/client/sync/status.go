package sync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/client/telemetry"
	"github.com/yorutsuke/ledgersync/internal/models"
)

// Status is the observable state of the sync controller. It is a closed set:
// Idle, Syncing, Success or Failed. Каждое состояние несет последнюю
// успешную метку синхронизации для отображения в UI.
type Status interface {
	// LastSyncedAt returns the timestamp of the last successful sync,
	// zero if the store has never synced
	LastSyncedAt() time.Time

	// isStatus запечатывает набор реализаций этим пакетом
	isStatus()
}

// StatusIdle means no sync is running and none has been requested
type StatusIdle struct {
	SyncedAt time.Time
}

// StatusSyncing means a sync pass is currently in flight
type StatusSyncing struct {
	SyncedAt time.Time
}

// StatusSuccess means the last sync pass completed; Result holds its counts
type StatusSuccess struct {
	Result   *FullSyncResult
	SyncedAt time.Time
}

// StatusFailed means the last sync pass failed with Message
type StatusFailed struct {
	Message  string
	SyncedAt time.Time
}

func (s StatusIdle) LastSyncedAt() time.Time    { return s.SyncedAt }
func (s StatusSyncing) LastSyncedAt() time.Time { return s.SyncedAt }
func (s StatusSuccess) LastSyncedAt() time.Time { return s.SyncedAt }
func (s StatusFailed) LastSyncedAt() time.Time  { return s.SyncedAt }

func (StatusIdle) isStatus()    {}
func (StatusSyncing) isStatus() {}
func (StatusSuccess) isStatus() {}
func (StatusFailed) isStatus()  {}

// Controller serializes sync passes and exposes their state to the UI.
// Запросы синхронизации во время работающего прохода коалесцируются:
// второй проход не стартует, вызывающий получает текущий статус.
type Controller struct {
	coordinator *Coordinator
	state       storage.SyncStateStorage
	logger      *slog.Logger

	mu      sync.Mutex
	current Status
	syncing bool
}

// NewController creates a new sync controller in the Idle state
func NewController(coordinator *Coordinator, state storage.SyncStateStorage, logger *slog.Logger) *Controller {
	return &Controller{
		coordinator: coordinator,
		state:       state,
		logger:      logger,
		current:     StatusIdle{},
	}
}

// Status returns the current controller status
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Sync runs one full sync pass for the owner and returns the resulting
// status. Если проход уже идет, новый не стартует: возвращается текущий
// StatusSyncing без побочных эффектов.
func (c *Controller) Sync(ctx context.Context, owner string, dateRange *models.DateRange) Status {
	c.mu.Lock()
	if c.syncing {
		current := c.current
		c.mu.Unlock()
		c.logger.Debug("Sync already in progress, request coalesced", "owner", owner)
		return current
	}
	c.syncing = true
	lastSynced := c.current.LastSyncedAt()
	c.current = StatusSyncing{SyncedAt: lastSynced}
	c.mu.Unlock()

	// Каждый проход несет свой trace_id: по нему события push/pull/media
	// одного прохода склеиваются в логах
	logger := telemetry.WithTrace(c.logger, telemetry.NewTraceID())
	logger.Info(telemetry.EventSyncStarted, "owner", owner)

	result, err := c.coordinator.FullSync(ctx, owner, dateRange)

	// Перечитываем метку из хранилища: успешный push мог ее обновить
	syncedAt := lastSynced
	if ts, tsErr := c.state.GetLastSyncedAt(ctx); tsErr == nil && !ts.IsZero() {
		syncedAt = ts
	}

	// Жесткая ошибка - только транспортный провал push или оборванный до
	// слияния pull. Изолированные ошибки отдельных записей не роняют
	// статус: проход завершился, счетчики и ошибки доступны в результате.
	var status Status
	switch {
	case err != nil:
		logger.Error(telemetry.EventSyncFailed, "owner", owner, "error", err)
		status = StatusFailed{Message: err.Error(), SyncedAt: syncedAt}
	case result.Pull.FetchFailed:
		logger.Error(telemetry.EventSyncFailed, "owner", owner, "error", result.Pull.Errors[0])
		status = StatusFailed{Message: result.Pull.Errors[0], SyncedAt: syncedAt}
	default:
		logger.Info(telemetry.EventSyncFinished,
			"owner", owner,
			"pushed", result.Push.SyncedCount,
			"queued", result.Push.QueuedCount,
			"pulled", result.Pull.SyncedCount,
			"conflicts", result.Pull.ConflictCount,
			"errors", len(result.Pull.Errors))
		status = StatusSuccess{Result: result, SyncedAt: syncedAt}
	}

	c.mu.Lock()
	c.current = status
	c.syncing = false
	c.mu.Unlock()

	return status
}

// ShouldAutoSync reports whether the store is stale enough to warrant an
// automatic background pass. Никогда не синхронизировавшееся хранилище
// всегда считается устаревшим.
func (c *Controller) ShouldAutoSync(ctx context.Context, threshold time.Duration) (bool, error) {
	c.mu.Lock()
	if c.syncing {
		c.mu.Unlock()
		return false, nil
	}
	c.mu.Unlock()

	lastSynced, err := c.state.GetLastSyncedAt(ctx)
	if err != nil {
		return false, err
	}
	if lastSynced.IsZero() {
		return true, nil
	}
	return time.Since(lastSynced) >= threshold, nil
}
