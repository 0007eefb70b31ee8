// Package store implements the in-memory authoritative store backing the
// development server. It enforces the same acceptance rules a production
// deployment would: ownership, write-once confirmation and last-write-wins.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yorutsuke/ledgersync/internal/models"
	"github.com/yorutsuke/ledgersync/pkg/api"
)

var (
	// ErrUserExists возвращается при повторной регистрации email
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")
)

// User содержит учетные данные пользователя
type User struct {
	ID          string
	Email       string
	AuthKeyHash string // SHA256 хеш деривированного auth key
	PublicSalt  string // base64
	CreatedAt   time.Time
}

// Store хранит пользователей и транзакции в памяти
type Store struct {
	mu    sync.RWMutex
	users map[string]*User // email -> user
	// owner -> id -> record
	records map[string]map[string]api.TransactionRecord
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		users:   make(map[string]*User),
		records: make(map[string]map[string]api.TransactionRecord),
	}
}

// CreateUser регистрирует нового пользователя
func (s *Store) CreateUser(ctx context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return ErrUserExists
	}
	s.users[user.Email] = user
	return nil
}

// GetUserByEmail возвращает пользователя по email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Upsert применяет одну запись к хранилищу. Возвращает true, если запись
// принята, и false, если отклонена правилами приема.
//
// Правила приема:
//  1. Подтвержденная запись не может стать неподтвержденной и не может
//     сменить время подтверждения (write-once).
//  2. Более старый UpdatedAt не перезаписывает более новый (LWW).
func (s *Store) Upsert(ctx context.Context, owner string, rec api.TransactionRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID, ok := s.records[owner]
	if !ok {
		byID = make(map[string]api.TransactionRecord)
		s.records[owner] = byID
	}

	existing, ok := byID[rec.ID]
	if !ok {
		byID[rec.ID] = rec
		return true
	}

	// ConfirmedAt write-once
	if existing.ConfirmedAt != nil {
		if rec.ConfirmedAt == nil || !rec.ConfirmedAt.Equal(*existing.ConfirmedAt) {
			return false
		}
	}

	// Устаревшая версия не принимается
	if rec.UpdatedAt.Before(existing.UpdatedAt) {
		return false
	}

	byID[rec.ID] = rec
	return true
}

// Query возвращает записи владельца, опционально в окне дат по OccurredAt
func (s *Store) Query(ctx context.Context, owner string, dateRange *models.DateRange) []api.TransactionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]api.TransactionRecord, 0, len(s.records[owner]))
	for _, rec := range s.records[owner] {
		if dateRange != nil && !dateRange.Contains(rec.OccurredAt) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
