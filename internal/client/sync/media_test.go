package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/models"
)

func mediaTx(id, ref, location string) *models.Transaction {
	now := time.Now().UTC()
	return &models.Transaction{
		ID:            id,
		Owner:         "user-1",
		Amount:        3200,
		Currency:      "JPY",
		MediaRef:      ref,
		MediaLocation: location,
		OccurredAt:    now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestMediaSyncEngine_SkipsRecordsWithoutMedia(t *testing.T) {
	media := &storage.MediaStorageMock{}
	engine := NewMediaSyncEngine(media, testLogger())

	result := engine.SyncMedia(context.Background(), "user-1", []*models.Transaction{
		mediaTx("tx-1", "", ""),
	})

	assert.Equal(t, 0, result.Total)
	assert.Empty(t, media.HasLocalBytesCalls())
}

func TestMediaSyncEngine_SkipsWhenBytesPresent(t *testing.T) {
	media := &storage.MediaStorageMock{
		HasLocalBytesFunc: func(ctx context.Context, ref string) (bool, error) { return true, nil },
	}
	engine := NewMediaSyncEngine(media, testLogger())

	result := engine.SyncMedia(context.Background(), "user-1", []*models.Transaction{
		mediaTx("tx-1", "md5-abc", "s3://bucket/md5-abc.webp"),
	})

	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Created)
	assert.Empty(t, media.SaveMetaCalls())
}

func TestMediaSyncEngine_CreatesMissingMeta(t *testing.T) {
	media := &storage.MediaStorageMock{
		HasLocalBytesFunc: func(ctx context.Context, ref string) (bool, error) { return false, nil },
		GetMetaFunc: func(ctx context.Context, ref string) (*models.MediaMeta, error) {
			return nil, storage.ErrMediaNotFound
		},
		SaveMetaFunc: func(ctx context.Context, meta *models.MediaMeta) error { return nil },
	}
	engine := NewMediaSyncEngine(media, testLogger())

	result := engine.SyncMedia(context.Background(), "user-1", []*models.Transaction{
		mediaTx("tx-1", "md5-abc", "s3://bucket/md5-abc.webp"),
	})

	assert.Equal(t, 1, result.Created)
	require.Len(t, media.SaveMetaCalls(), 1)
	saved := media.SaveMetaCalls()[0].Meta
	assert.Equal(t, "md5-abc", saved.Ref)
	assert.Equal(t, "user-1", saved.Owner)
	assert.Equal(t, "s3://bucket/md5-abc.webp", saved.RemoteLocation)
}

func TestMediaSyncEngine_UpdatesStalePointer(t *testing.T) {
	media := &storage.MediaStorageMock{
		HasLocalBytesFunc: func(ctx context.Context, ref string) (bool, error) { return false, nil },
		GetMetaFunc: func(ctx context.Context, ref string) (*models.MediaMeta, error) {
			return &models.MediaMeta{Ref: ref, Owner: "user-1", RemoteLocation: "s3://old/location"}, nil
		},
		SaveMetaFunc: func(ctx context.Context, meta *models.MediaMeta) error { return nil },
	}
	engine := NewMediaSyncEngine(media, testLogger())

	result := engine.SyncMedia(context.Background(), "user-1", []*models.Transaction{
		mediaTx("tx-1", "md5-abc", "s3://new/location"),
	})

	assert.Equal(t, 1, result.Updated)
	require.Len(t, media.SaveMetaCalls(), 1)
	assert.Equal(t, "s3://new/location", media.SaveMetaCalls()[0].Meta.RemoteLocation)
}

func TestMediaSyncEngine_OrphanedReference(t *testing.T) {
	media := &storage.MediaStorageMock{
		HasLocalBytesFunc: func(ctx context.Context, ref string) (bool, error) { return false, nil },
		GetMetaFunc: func(ctx context.Context, ref string) (*models.MediaMeta, error) {
			return nil, storage.ErrMediaNotFound
		},
	}
	engine := NewMediaSyncEngine(media, testLogger())

	// Ни локальных байтов, ни удаленного расположения
	result := engine.SyncMedia(context.Background(), "user-1", []*models.Transaction{
		mediaTx("tx-1", "md5-lost", ""),
	})

	assert.Equal(t, 1, result.Orphaned)
	assert.Equal(t, []string{"tx-1"}, result.OrphanedIDs)
	assert.Empty(t, media.SaveMetaCalls())
}

func TestMediaSyncEngine_StorageErrorIsolation(t *testing.T) {
	media := &storage.MediaStorageMock{
		HasLocalBytesFunc: func(ctx context.Context, ref string) (bool, error) {
			if ref == "md5-bad" {
				return false, errors.New("stat failed")
			}
			return true, nil
		},
	}
	engine := NewMediaSyncEngine(media, testLogger())

	result := engine.SyncMedia(context.Background(), "user-1", []*models.Transaction{
		mediaTx("tx-1", "md5-bad", "s3://bucket/a"),
		mediaTx("tx-2", "md5-ok", "s3://bucket/b"),
	})

	// Ошибка одной записи не прервала проход
	assert.Equal(t, 1, result.Errors)
	assert.Equal(t, 1, result.Skipped)
}
