package sync

import (
	"github.com/yorutsuke/ledgersync/internal/models"
	"github.com/yorutsuke/ledgersync/pkg/api"
)

// toAPIRecord конвертирует локальную транзакцию в wire формат.
// Dirty флаг - чисто локальное состояние и на сервер не уходит.
func toAPIRecord(tx *models.Transaction) api.TransactionRecord {
	return api.TransactionRecord{
		ID:            tx.ID,
		Owner:         tx.Owner,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		Memo:          tx.Memo,
		OccurredAt:    tx.OccurredAt,
		ConfirmedAt:   tx.ConfirmedAt,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
		MediaRef:      tx.MediaRef,
		MediaLocation: tx.MediaLocation,
	}
}

// fromAPIRecord конвертирует wire формат в локальную транзакцию.
// Принятая с сервера запись по определению не dirty.
func fromAPIRecord(rec api.TransactionRecord) *models.Transaction {
	return &models.Transaction{
		ID:            rec.ID,
		Owner:         rec.Owner,
		Amount:        rec.Amount,
		Currency:      rec.Currency,
		Memo:          rec.Memo,
		OccurredAt:    rec.OccurredAt,
		ConfirmedAt:   rec.ConfirmedAt,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
		MediaRef:      rec.MediaRef,
		MediaLocation: rec.MediaLocation,
		Dirty:         false,
	}
}
