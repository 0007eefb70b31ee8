package models

import "time"

// MediaMeta представляет локальные метаданные одного медиа-объекта
// (сжатый снимок чека). Сами байты хранятся отдельно: локально по
// LocalPath и/или удалённо по RemoteLocation.
type MediaMeta struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Ref   string `json:"ref"`   // Ref стабильный идентификатор медиа (ключ)
	Owner string `json:"owner"` // Owner идентификатор владельца

	// LocalPath путь к локальным байтам. Наличие файла никогда не
	// предполагается — оно проверяется перед использованием.
	LocalPath string `json:"local_path,omitempty"`
	// RemoteLocation удалённое расположение байтов, пустая строка если
	// сервер его ещё не сообщил.
	RemoteLocation string `json:"remote_location,omitempty"`

	MD5       string `json:"md5,omitempty"` // MD5 хеш сжатых байтов (дедупликация)
	SizeBytes int64  `json:"size_bytes"`    // SizeBytes размер сжатых байтов
}

// RecoveryStatus описывает несинхронизированное состояние, найденное при
// старте приложения. Вычисляется по запросу и никогда не персистится.
type RecoveryStatus struct {
	LastSyncedAt time.Time `json:"last_synced_at"`
	DirtyCount   int       `json:"dirty_count"`
	QueuePending bool      `json:"queue_pending"`
}

// HasUnsyncedWork reports whether anything is still waiting to reach the server.
func (s *RecoveryStatus) HasUnsyncedWork() bool {
	return s.DirtyCount > 0 || s.QueuePending
}
