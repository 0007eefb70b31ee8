package server

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/yorutsuke/ledgersync/internal/client/api"
	"github.com/yorutsuke/ledgersync/internal/crypto"
	"github.com/yorutsuke/ledgersync/internal/server/handlers"
	"github.com/yorutsuke/ledgersync/internal/server/store"
	"github.com/yorutsuke/ledgersync/pkg/api"
)

// Полный цикл против реального клиента: register -> salt -> login ->
// bulk-upsert -> query.
func TestServer_EndToEnd(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := Config{
		JWT: handlers.JWTConfig{
			Secret:          []byte("test-secret"),
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
		Version: "test",
	}

	srv := httptest.NewServer(NewHandler(logger, store.New(), cfg))
	defer srv.Close()

	client := clientapi.NewClient(srv.URL)
	ctx := context.Background()

	email := "taro@example.com"
	password := "long-enough-password"

	// Регистрация
	salt, err := crypto.GenerateSaltBase64()
	require.NoError(t, err)
	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(password, email, salt)
	require.NoError(t, err)
	authKeyHash, err := crypto.HashAuthKey(authKey)
	require.NoError(t, err)

	regResp, err := client.Register(ctx, api.RegisterRequest{
		Email:       email,
		AuthKeyHash: authKeyHash,
		PublicSalt:  salt,
	})
	require.NoError(t, err)
	require.NotEmpty(t, regResp.UserID)

	// Повторная регистрация отклоняется
	_, err = client.Register(ctx, api.RegisterRequest{
		Email:       email,
		AuthKeyHash: authKeyHash,
		PublicSalt:  salt,
	})
	require.Error(t, err)

	// Соль совпадает с отправленной
	saltResp, err := client.GetSalt(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, salt, saltResp.PublicSalt)

	// Логин
	tokenResp, err := client.Login(ctx, api.LoginRequest{
		Email:       email,
		AuthKeyHash: authKeyHash,
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokenResp.AccessToken)
	assert.Equal(t, regResp.UserID, tokenResp.UserID)

	// Bulk upsert
	now := time.Now().UTC().Truncate(time.Second)
	rec := api.TransactionRecord{
		ID:         "tx-1",
		Owner:      tokenResp.UserID,
		Amount:     1250,
		Currency:   "JPY",
		Memo:       "coffee",
		OccurredAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	upsertResp, err := client.BulkUpsert(ctx, tokenResp.AccessToken, api.BulkUpsertRequest{
		Owner:   tokenResp.UserID,
		Records: []api.TransactionRecord{rec},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"tx-1"}, upsertResp.SyncedIDs)
	assert.Empty(t, upsertResp.FailedIDs)

	// Query возвращает запись обратно
	records, err := client.Query(ctx, tokenResp.AccessToken, tokenResp.UserID, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "tx-1", records[0].ID)
	assert.Equal(t, int64(1250), records[0].Amount)
}

func TestServer_RejectsUnauthenticatedSync(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := Config{
		JWT: handlers.JWTConfig{
			Secret:         []byte("test-secret"),
			AccessTokenTTL: time.Minute,
		},
	}

	srv := httptest.NewServer(NewHandler(logger, store.New(), cfg))
	defer srv.Close()

	client := clientapi.NewClient(srv.URL)

	_, err := client.BulkUpsert(context.Background(), "", api.BulkUpsertRequest{Owner: "u"})
	require.Error(t, err)
	assert.True(t, clientapi.IsTransportError(err))

	_, err = client.Query(context.Background(), "garbage-token", "u", nil)
	require.Error(t, err)
}

func TestServer_WrongPasswordRejected(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := Config{
		JWT: handlers.JWTConfig{
			Secret:         []byte("test-secret"),
			AccessTokenTTL: time.Minute,
		},
	}

	srv := httptest.NewServer(NewHandler(logger, store.New(), cfg))
	defer srv.Close()

	client := clientapi.NewClient(srv.URL)
	ctx := context.Background()

	_, err := client.Register(ctx, api.RegisterRequest{
		Email:       "taro@example.com",
		AuthKeyHash: "right-hash",
		PublicSalt:  "salt",
	})
	require.NoError(t, err)

	_, err = client.Login(ctx, api.LoginRequest{
		Email:       "taro@example.com",
		AuthKeyHash: "wrong-hash",
	})
	require.Error(t, err)
	assert.True(t, clientapi.IsTransportError(err))
}
