package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/yorutsuke/ledgersync/internal/server/store"
	"github.com/yorutsuke/ledgersync/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger    *slog.Logger
	store     *store.Store
	jwtConfig JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, st *store.Store, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		store:     st,
		jwtConfig: jwtConfig,
	}
}

// Register обрабатывает POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		sendError(w, h.logger, "invalid email", http.StatusBadRequest)
		return
	}
	if req.AuthKeyHash == "" {
		sendError(w, h.logger, "auth_key_hash is required", http.StatusBadRequest)
		return
	}
	if req.PublicSalt == "" {
		sendError(w, h.logger, "public_salt is required", http.StatusBadRequest)
		return
	}

	user := &store.User{
		ID:          uuid.New().String(),
		Email:       req.Email,
		AuthKeyHash: req.AuthKeyHash,
		PublicSalt:  req.PublicSalt,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("email", req.Email))
			sendError(w, h.logger, "email already taken", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered",
		slog.String("email", req.Email),
		slog.String("user_id", user.ID))

	sendJSON(w, h.logger, api.RegisterResponse{UserID: user.ID, Email: user.Email}, http.StatusCreated)
}

// GetSalt обрабатывает GET /api/v1/auth/salt/{email}
func (h *AuthHandler) GetSalt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := r.PathValue("email")
	if email == "" {
		sendError(w, h.logger, "email is required", http.StatusBadRequest)
		return
	}

	user, err := h.store.GetUserByEmail(ctx, email)
	if err != nil {
		sendError(w, h.logger, "user not found", http.StatusNotFound)
		return
	}

	sendJSON(w, h.logger, api.SaltResponse{PublicSalt: user.PublicSalt}, http.StatusOK)
}

// Login обрабатывает POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		sendError(w, h.logger, "invalid credentials", http.StatusUnauthorized)
		return
	}

	// Сравнение хешей за постоянное время
	if subtle.ConstantTimeCompare([]byte(user.AuthKeyHash), []byte(req.AuthKeyHash)) != 1 {
		h.logger.WarnContext(ctx, "login failed", slog.String("email", req.Email))
		sendError(w, h.logger, "invalid credentials", http.StatusUnauthorized)
		return
	}

	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, user.ID, user.Email)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	refreshToken, _, err := GenerateRefreshToken(h.jwtConfig)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate refresh token", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in",
		slog.String("email", user.Email),
		slog.String("user_id", user.ID))

	sendJSON(w, h.logger, api.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		ExpiresIn:    expiresIn,
	}, http.StatusOK)
}
