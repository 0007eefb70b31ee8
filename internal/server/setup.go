// Package server wires the development server: an in-memory authoritative
// store behind the same HTTP API a production deployment exposes.
package server

import (
	"log/slog"
	"net/http"

	"github.com/yorutsuke/ledgersync/internal/server/handlers"
	"github.com/yorutsuke/ledgersync/internal/server/middleware"
	"github.com/yorutsuke/ledgersync/internal/server/store"
)

// Config содержит конфигурацию сервера
type Config struct {
	JWT     handlers.JWTConfig
	Version string
}

// NewHandler собирает полный HTTP handler сервера
func NewHandler(logger *slog.Logger, st *store.Store, cfg Config) http.Handler {
	authHandler := handlers.NewAuthHandler(logger, st, cfg.JWT)
	syncHandler := handlers.NewSyncHandler(logger, st)
	healthHandler := handlers.NewHealthHandler(logger, cfg.Version)

	requireAuth := middleware.AuthMiddleware(logger, cfg.JWT)

	mux := http.NewServeMux()

	// Публичные эндпоинты
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("GET /api/v1/auth/salt/{email}", authHandler.GetSalt)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("/api/v1/health", healthHandler.Health)

	// Защищенные эндпоинты
	mux.Handle("POST /api/v1/transactions/bulk-upsert", requireAuth(http.HandlerFunc(syncHandler.BulkUpsert)))
	mux.Handle("GET /api/v1/transactions", requireAuth(http.HandlerFunc(syncHandler.Query)))

	// Health не логируем: netprobe клиентов опрашивает его постоянно
	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}
