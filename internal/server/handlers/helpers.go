package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yorutsuke/ledgersync/pkg/api"
)

// contextKey тип для ключей контекста, чтобы не конфликтовать с чужими
type contextKey string

const (
	// UserIDKey ключ контекста с ID аутентифицированного пользователя
	UserIDKey contextKey = "user_id"

	// EmailKey ключ контекста с email аутентифицированного пользователя
	EmailKey contextKey = "email"
)

// sendJSON пишет JSON ответ с заданным статусом
func sendJSON(w http.ResponseWriter, logger *slog.Logger, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// sendError пишет JSON ошибку с заданным статусом
func sendError(w http.ResponseWriter, logger *slog.Logger, message string, status int) {
	sendJSON(w, logger, api.ErrorResponse{Error: message}, status)
}
