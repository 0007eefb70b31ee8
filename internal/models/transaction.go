package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction представляет одну транзакцию ночного журнала (ledger).
// Это синхронизируемая запись: она живёт одновременно в локальном
// embedded хранилище и в удалённом авторитетном хранилище.
type Transaction struct {
	OccurredAt time.Time `json:"occurred_at"` // OccurredAt дата/время самой покупки
	CreatedAt  time.Time `json:"created_at"`  // CreatedAt время создания записи
	UpdatedAt  time.Time `json:"updated_at"`  // UpdatedAt время последней принятой мутации (локальной или серверной)

	// ConfirmedAt время явного подтверждения пользователем.
	// Write-once: однажды установленное значение никогда не очищается.
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`

	ID       string `json:"id"`       // ID уникальный идентификатор записи (UUID)
	Owner    string `json:"owner"`    // Owner идентификатор владельца записи
	Currency string `json:"currency"` // Currency код валюты (ISO 4217)
	Memo     string `json:"memo"`     // Memo свободный комментарий

	// MediaRef ссылка на out-of-band медиа (снимок чека), пустая строка если нет.
	MediaRef string `json:"media_ref,omitempty"`
	// MediaLocation удалённое расположение медиа. Устанавливается только
	// после того, как медиа подтверждённо сохранено на сервере.
	MediaLocation string `json:"media_location,omitempty"`

	Amount int64 `json:"amount"` // Amount сумма в минорных единицах валюты

	// Dirty флаг неподтверждённой локальной мутации. Хранится рядом с записью.
	// Устанавливают его только продюсеры локальных мутаций, снимает только
	// sync engine после подтверждения сервером.
	Dirty bool `json:"dirty"`
}

// NewID returns a fresh opaque record identifier.
func NewID() string {
	return uuid.NewString()
}

// IsConfirmed reports whether the transaction carries a user confirmation.
func (t *Transaction) IsConfirmed() bool {
	return t.ConfirmedAt != nil
}

// Clone создает глубокую копию транзакции
func (t *Transaction) Clone() *Transaction {
	clone := *t
	if t.ConfirmedAt != nil {
		confirmedAt := *t.ConfirmedAt
		clone.ConfirmedAt = &confirmedAt
	}
	return &clone
}

// DateRange is an optional inclusive time filter for queries and pulls.
// A nil *DateRange means "no filter".
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether ts falls inside the range.
func (r *DateRange) Contains(ts time.Time) bool {
	if r == nil {
		return true
	}
	if !r.From.IsZero() && ts.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && ts.After(r.To) {
		return false
	}
	return true
}
