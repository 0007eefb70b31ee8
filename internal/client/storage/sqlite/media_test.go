package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/models"
)

func testMediaMeta(ref, owner string) *models.MediaMeta {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	return &models.MediaMeta{
		Ref:       ref,
		Owner:     owner,
		MD5:       "d41d8cd98f00b204e9800998ecf8427e",
		SizeBytes: 34215,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStorage_SaveAndGetMeta(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	meta := testMediaMeta("img-1", "user-1")
	meta.RemoteLocation = "receipts/user-1/img-1.webp"
	require.NoError(t, s.SaveMeta(ctx, meta))

	got, err := s.GetMeta(ctx, "img-1")
	require.NoError(t, err)
	assert.Equal(t, meta, got)

	// Обновление указателя на удаленное расположение
	meta.RemoteLocation = "receipts/user-1/img-1-v2.webp"
	require.NoError(t, s.SaveMeta(ctx, meta))

	got, err = s.GetMeta(ctx, "img-1")
	require.NoError(t, err)
	assert.Equal(t, "receipts/user-1/img-1-v2.webp", got.RemoteLocation)
}

func TestStorage_GetMeta_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetMeta(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrMediaNotFound)
}

func TestStorage_HasLocalBytes(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Нет метаданных - нет байтов
	present, err := s.HasLocalBytes(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, present)

	// Метаданные без локального пути
	meta := testMediaMeta("img-1", "user-1")
	require.NoError(t, s.SaveMeta(ctx, meta))

	present, err = s.HasLocalBytes(ctx, "img-1")
	require.NoError(t, err)
	assert.False(t, present)

	// Путь указывает на несуществующий файл
	meta.LocalPath = filepath.Join(t.TempDir(), "gone.webp")
	require.NoError(t, s.SaveMeta(ctx, meta))

	present, err = s.HasLocalBytes(ctx, "img-1")
	require.NoError(t, err)
	assert.False(t, present)

	// Файл существует
	require.NoError(t, os.WriteFile(meta.LocalPath, []byte("webp-bytes"), 0o600))

	present, err = s.HasLocalBytes(ctx, "img-1")
	require.NoError(t, err)
	assert.True(t, present)
}
