package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/yorutsuke/ledgersync/internal/client/storage"
)

const (
	keyQueuePending = "queue_pending"
	keyLastSyncedAt = "last_synced_at"
)

// Compile-time check that Storage implements SyncStateStorage
var _ storage.SyncStateStorage = (*Storage)(nil)

// MarkQueuePending sets the coalesced "sync attempt is owed" marker.
// Идемпотентно: маркер — одиночный boolean, не список элементов.
func (s *Storage) MarkQueuePending(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}

		if err := bucket.Put([]byte(keyQueuePending), []byte{1}); err != nil {
			return fmt.Errorf("failed to mark queue pending: %w", err)
		}

		return nil
	})
}

// ClearQueue removes the pending marker
func (s *Storage) ClearQueue(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}

		if err := bucket.Delete([]byte(keyQueuePending)); err != nil {
			return fmt.Errorf("failed to clear queue marker: %w", err)
		}

		return nil
	})
}

// IsQueuePending reports whether a sync attempt is owed
func (s *Storage) IsQueuePending(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	var pending bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}

		pending = bucket.Get([]byte(keyQueuePending)) != nil
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to read queue marker: %w", err)
	}

	return pending, nil
}

// SaveLastSyncedAt saves the time of the last successful sync
func (s *Storage) SaveLastSyncedAt(ctx context.Context, ts time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}

		// Конвертируем unix timestamp в bytes
		tsBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(tsBytes, uint64(ts.Unix()))

		if err := bucket.Put([]byte(keyLastSyncedAt), tsBytes); err != nil {
			return fmt.Errorf("failed to save last synced at: %w", err)
		}

		return nil
	})
}

// GetLastSyncedAt retrieves the time of the last successful sync
// Returns zero time if no sync has been performed yet
func (s *Storage) GetLastSyncedAt(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var ts time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}

		tsBytes := bucket.Get([]byte(keyLastSyncedAt))
		if tsBytes == nil {
			// Синхронизаций еще не было
			return nil
		}

		ts = time.Unix(int64(binary.BigEndian.Uint64(tsBytes)), 0).UTC()
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last synced at: %w", err)
	}

	return ts, nil
}
