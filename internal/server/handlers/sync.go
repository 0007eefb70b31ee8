package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/yorutsuke/ledgersync/internal/models"
	"github.com/yorutsuke/ledgersync/internal/server/store"
	"github.com/yorutsuke/ledgersync/pkg/api"
)

// SyncHandler обрабатывает запросы синхронизации транзакций
type SyncHandler struct {
	logger *slog.Logger
	store  *store.Store
}

// NewSyncHandler создает новый handler для синхронизации
func NewSyncHandler(logger *slog.Logger, st *store.Store) *SyncHandler {
	return &SyncHandler{
		logger: logger,
		store:  st,
	}
}

// BulkUpsert обрабатывает POST /api/v1/transactions/bulk-upsert.
// Каждая запись принимается или отклоняется независимо: ID принятых
// уходят в synced_ids, отклоненных - в failed_ids.
func (h *SyncHandler) BulkUpsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		sendError(w, h.logger, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.BulkUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}

	// Владелец пакета обязан совпадать с аутентифицированным пользователем
	if req.Owner != userID {
		h.logger.WarnContext(ctx, "bulk upsert owner mismatch",
			slog.String("owner", req.Owner),
			slog.String("user_id", userID))
		sendError(w, h.logger, "owner mismatch", http.StatusForbidden)
		return
	}

	resp := api.BulkUpsertResponse{
		SyncedIDs: make([]string, 0, len(req.Records)),
		FailedIDs: make([]string, 0),
	}

	for _, rec := range req.Records {
		if rec.ID == "" || rec.Owner != userID {
			resp.FailedIDs = append(resp.FailedIDs, rec.ID)
			continue
		}
		if h.store.Upsert(ctx, userID, rec) {
			resp.SyncedIDs = append(resp.SyncedIDs, rec.ID)
		} else {
			resp.FailedIDs = append(resp.FailedIDs, rec.ID)
		}
	}

	h.logger.InfoContext(ctx, "bulk upsert processed",
		slog.String("user_id", userID),
		slog.Int("synced", len(resp.SyncedIDs)),
		slog.Int("failed", len(resp.FailedIDs)))

	sendJSON(w, h.logger, resp, http.StatusOK)
}

// Query обрабатывает GET /api/v1/transactions?owner=&from=&to=
func (h *SyncHandler) Query(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		sendError(w, h.logger, "unauthorized", http.StatusUnauthorized)
		return
	}

	owner := r.URL.Query().Get("owner")
	if owner == "" {
		sendError(w, h.logger, "owner is required", http.StatusBadRequest)
		return
	}
	if owner != userID {
		sendError(w, h.logger, "owner mismatch", http.StatusForbidden)
		return
	}

	dateRange, err := parseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	records := h.store.Query(ctx, owner, dateRange)
	sendJSON(w, h.logger, api.QueryResponse{Records: records}, http.StatusOK)
}

// parseDateRange разбирает опциональные RFC3339 границы окна
func parseDateRange(fromStr, toStr string) (*models.DateRange, error) {
	if fromStr == "" && toStr == "" {
		return nil, nil
	}

	var dateRange models.DateRange
	var err error
	if fromStr != "" {
		dateRange.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return nil, err
		}
	}
	if toStr != "" {
		dateRange.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			return nil, err
		}
	}
	return &dateRange, nil
}
