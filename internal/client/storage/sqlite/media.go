package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/models"
)

// Compile-time check that Storage implements MediaStorage
var _ storage.MediaStorage = (*Storage)(nil)

// GetMeta retrieves media metadata by ref
// Returns storage.ErrMediaNotFound if no metadata exists
func (s *Storage) GetMeta(ctx context.Context, ref string) (*models.MediaMeta, error) {
	query := `
		SELECT ref, owner, local_path, remote_location, md5, size_bytes,
		       created_at, updated_at
		FROM media WHERE ref = ?
	`

	meta := &models.MediaMeta{}
	var createdAt, updatedAt int64

	err := s.db.QueryRowContext(ctx, query, ref).Scan(
		&meta.Ref,
		&meta.Owner,
		&meta.LocalPath,
		&meta.RemoteLocation,
		&meta.MD5,
		&meta.SizeBytes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to get media metadata: %w", err)
	}

	meta.CreatedAt = time.Unix(0, createdAt).UTC()
	meta.UpdatedAt = time.Unix(0, updatedAt).UTC()

	return meta, nil
}

// SaveMeta stores or replaces media metadata
func (s *Storage) SaveMeta(ctx context.Context, meta *models.MediaMeta) error {
	query := `
		INSERT INTO media (
			ref, owner, local_path, remote_location, md5, size_bytes,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(ref) DO UPDATE SET
			owner = excluded.owner,
			local_path = excluded.local_path,
			remote_location = excluded.remote_location,
			md5 = excluded.md5,
			size_bytes = excluded.size_bytes,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		meta.Ref,
		meta.Owner,
		meta.LocalPath,
		meta.RemoteLocation,
		meta.MD5,
		meta.SizeBytes,
		meta.CreatedAt.UnixNano(),
		meta.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save media metadata: %w", err)
	}

	return nil
}

// HasLocalBytes reports whether the bytes referenced by the metadata are
// present on disk. Missing metadata or an empty local path count as absent.
func (s *Storage) HasLocalBytes(ctx context.Context, ref string) (bool, error) {
	meta, err := s.GetMeta(ctx, ref)
	if err != nil {
		if errors.Is(err, storage.ErrMediaNotFound) {
			return false, nil
		}
		return false, err
	}

	if meta.LocalPath == "" {
		return false, nil
	}

	// Наличие файла проверяем, а не предполагаем
	if _, err := os.Stat(meta.LocalPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat media file: %w", err)
	}

	return true, nil
}
