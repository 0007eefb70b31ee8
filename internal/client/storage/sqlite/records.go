package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/models"
)

// Compile-time check that Storage implements RecordStorage
var _ storage.RecordStorage = (*Storage)(nil)

const transactionColumns = `id, owner, amount, currency, memo,
       occurred_at, confirmed_at, created_at, updated_at,
       dirty, media_ref, media_location`

// Upsert stores or replaces a transaction record
func (s *Storage) Upsert(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, owner, amount, currency, memo,
			occurred_at, confirmed_at, created_at, updated_at,
			dirty, media_ref, media_location
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner = excluded.owner,
			amount = excluded.amount,
			currency = excluded.currency,
			memo = excluded.memo,
			occurred_at = excluded.occurred_at,
			confirmed_at = excluded.confirmed_at,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			dirty = excluded.dirty,
			media_ref = excluded.media_ref,
			media_location = excluded.media_location
	`

	// Временные метки хранятся в наносекундах: округление до секунды
	// превращало бы строго-более-новые версии в ложные ничьи при слиянии.
	// confirmed_at - nullable.
	var confirmedAt sql.NullInt64
	if tx.ConfirmedAt != nil {
		confirmedAt = sql.NullInt64{Int64: tx.ConfirmedAt.UnixNano(), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		tx.ID,
		tx.Owner,
		tx.Amount,
		tx.Currency,
		tx.Memo,
		tx.OccurredAt.UnixNano(),
		confirmedAt,
		tx.CreatedAt.UnixNano(),
		tx.UpdatedAt.UnixNano(),
		boolToInt(tx.Dirty),
		tx.MediaRef,
		tx.MediaLocation,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert transaction: %w", err)
	}

	return nil
}

// Get retrieves a transaction by ID
// Returns storage.ErrRecordNotFound if record doesn't exist
func (s *Storage) Get(ctx context.Context, id string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return tx, nil
}

// List returns all records for an owner, optionally filtered by date range
func (s *Storage) List(ctx context.Context, owner string, dateRange *models.DateRange) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE owner = ?`
	args := []any{owner}

	// Фильтр по occurred_at, если диапазон задан
	if dateRange != nil {
		if !dateRange.From.IsZero() {
			query += ` AND occurred_at >= ?`
			args = append(args, dateRange.From.UnixNano())
		}
		if !dateRange.To.IsZero() {
			query += ` AND occurred_at <= ?`
			args = append(args, dateRange.To.UnixNano())
		}
	}
	query += ` ORDER BY occurred_at, id`

	return s.queryTransactions(ctx, query, args...)
}

// GetDirty returns all records for an owner with the dirty flag set
func (s *Storage) GetDirty(ctx context.Context, owner string) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE owner = ? AND dirty = 1 ORDER BY updated_at, id`

	return s.queryTransactions(ctx, query, owner)
}

// CountDirty returns the number of dirty records for an owner
func (s *Storage) CountDirty(ctx context.Context, owner string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE owner = ? AND dirty = 1`, owner,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count dirty transactions: %w", err)
	}
	return count, nil
}

// ClearDirty clears the dirty flag for the given record IDs only
func (s *Storage) ClearDirty(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	query := `UPDATE transactions SET dirty = 0 WHERE id IN (` + placeholders + `)`
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear dirty flags: %w", err)
	}

	return nil
}

// queryTransactions выполняет запрос и сканирует все строки
func (s *Storage) queryTransactions(ctx context.Context, query string, args ...any) ([]*models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var result []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		result = append(result, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return result, nil
}

// rowScanner объединяет *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTransaction сканирует одну строку в models.Transaction
func scanTransaction(row rowScanner) (*models.Transaction, error) {
	tx := &models.Transaction{}
	var occurredAt, createdAt, updatedAt int64
	var confirmedAt sql.NullInt64
	var dirty int

	err := row.Scan(
		&tx.ID,
		&tx.Owner,
		&tx.Amount,
		&tx.Currency,
		&tx.Memo,
		&occurredAt,
		&confirmedAt,
		&createdAt,
		&updatedAt,
		&dirty,
		&tx.MediaRef,
		&tx.MediaLocation,
	)
	if err != nil {
		return nil, err
	}

	tx.OccurredAt = time.Unix(0, occurredAt).UTC()
	tx.CreatedAt = time.Unix(0, createdAt).UTC()
	tx.UpdatedAt = time.Unix(0, updatedAt).UTC()
	tx.Dirty = dirty != 0
	if confirmedAt.Valid {
		ts := time.Unix(0, confirmedAt.Int64).UTC()
		tx.ConfirmedAt = &ts
	}

	return tx, nil
}
