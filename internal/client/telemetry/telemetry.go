// Package telemetry configures structured JSON logging for the client.
// Each sync pass carries a trace_id so one pass can be followed across
// push, pull and media events in the rotated log files.
package telemetry

import (
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Имена событий для поиска по логам
const (
	EventSyncStarted   = "sync_started"
	EventSyncFinished  = "sync_finished"
	EventSyncFailed    = "sync_failed"
	EventQueueMarked   = "queue_marked"
	EventMediaOrphaned = "media_orphaned"
)

const (
	logFileName  = "ledgersync.log"
	maxSizeMB    = 10
	maxBackups   = 7
	maxAgeDays   = 30
	compressLogs = true
)

// NewLogger возвращает JSON логгер, пишущий в ротируемые файлы в dir
func NewLogger(dir string, level slog.Level) *slog.Logger {
	writer := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   compressLogs,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// NewTraceID возвращает свежий идентификатор одного прохода синхронизации
func NewTraceID() string {
	return uuid.New().String()
}

// WithTrace возвращает логгер, несущий атрибут trace_id
func WithTrace(logger *slog.Logger, traceID string) *slog.Logger {
	return logger.With("trace_id", traceID)
}
