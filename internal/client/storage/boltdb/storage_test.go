package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yorutsuke/ledgersync/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "state.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestStorage_QueueMarker(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	pending, err := s.IsQueuePending(ctx)
	require.NoError(t, err)
	assert.False(t, pending)

	require.NoError(t, s.MarkQueuePending(ctx))

	pending, err = s.IsQueuePending(ctx)
	require.NoError(t, err)
	assert.True(t, pending)

	require.NoError(t, s.ClearQueue(ctx))

	pending, err = s.IsQueuePending(ctx)
	require.NoError(t, err)
	assert.False(t, pending)
}

func TestStorage_QueueMarker_Coalesces(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Много offline-мутаций оставляют ровно один маркер
	for range 100 {
		require.NoError(t, s.MarkQueuePending(ctx))
	}

	pending, err := s.IsQueuePending(ctx)
	require.NoError(t, err)
	assert.True(t, pending)

	// Одного Clear достаточно
	require.NoError(t, s.ClearQueue(ctx))

	pending, err = s.IsQueuePending(ctx)
	require.NoError(t, err)
	assert.False(t, pending)
}

func TestStorage_LastSyncedAt(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	ts, err := s.GetLastSyncedAt(ctx)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	syncedAt := time.Date(2026, 1, 15, 11, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveLastSyncedAt(ctx, syncedAt))

	ts, err = s.GetLastSyncedAt(ctx)
	require.NoError(t, err)
	assert.Equal(t, syncedAt, ts)
}

func TestStorage_SessionLifecycle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	session := &storage.Session{
		UserID:      "user-1",
		Email:       "user@example.com",
		AccessToken: "token",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}
	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	require.NoError(t, s.DeleteSession(ctx))

	_, err = s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_SaveSession_Nil(t *testing.T) {
	s := newTestStorage(t)
	assert.Error(t, s.SaveSession(context.Background(), nil))
}
