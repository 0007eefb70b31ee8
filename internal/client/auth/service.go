// Package auth implements the client-side login flow: salt retrieval, key
// derivation and session persistence. The sync engine only consumes the
// AccessToken method.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	clientapi "github.com/yorutsuke/ledgersync/internal/client/api"
	"github.com/yorutsuke/ledgersync/internal/client/storage"
	"github.com/yorutsuke/ledgersync/internal/crypto"
	pkgapi "github.com/yorutsuke/ledgersync/pkg/api"
)

// минимальная длина пароля
const minPasswordLength = 8

// ErrNotAuthenticated возвращается, когда сессии нет
var ErrNotAuthenticated = errors.New("not authenticated, run login first")

// ErrSessionExpired возвращается, когда access token истек
var ErrSessionExpired = errors.New("session expired, run login again")

// Service предоставляет функции авторизации клиента
type Service struct {
	apiClient clientapi.ClientAPI
	sessions  storage.SessionStorage
	logger    *slog.Logger
	now       func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(apiClient clientapi.ClientAPI, sessions storage.SessionStorage, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
		now:       time.Now,
	}
}

// Register регистрирует нового пользователя на сервере.
// Пароль никогда не уходит на сервер: передается только хеш
// деривированного auth key и публичная соль.
func (s *Service) Register(ctx context.Context, email, password string) (*pkgapi.RegisterResponse, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	publicSalt, err := crypto.GenerateSaltBase64()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(password, email, publicSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive auth key: %w", err)
	}

	authKeyHash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash auth key: %w", err)
	}

	req := pkgapi.RegisterRequest{
		Email:       email,
		AuthKeyHash: authKeyHash,
		PublicSalt:  publicSalt,
	}

	resp, err := s.apiClient.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("User registered", "email", email, "user_id", resp.UserID)
	return resp, nil
}

// Login выполняет аутентификацию и сохраняет сессию локально
func (s *Service) Login(ctx context.Context, email, password string) (*storage.Session, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	// 1. Получаем public_salt с сервера
	saltResp, err := s.apiClient.GetSalt(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get salt: %w", err)
	}

	// 2. Деривируем auth key из пароля
	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(password, email, saltResp.PublicSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive auth key: %w", err)
	}

	// 3. Хешируем auth_key
	authKeyHash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash auth key: %w", err)
	}

	// 4. Отправляем запрос на логин
	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Email:       email,
		AuthKeyHash: authKeyHash,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	// 5. Сохраняем сессию
	session := &storage.Session{
		UserID:       resp.UserID,
		Email:        email,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		PublicSalt:   saltResp.PublicSalt,
		ExpiresAt:    s.now().Unix() + resp.ExpiresIn,
	}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("User logged in", "email", email, "user_id", resp.UserID)
	return session, nil
}

// Logout удаляет локальную сессию. Сервер не уведомляется: access token
// просто истекает по TTL.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CurrentSession возвращает сохраненную сессию
func (s *Service) CurrentSession(ctx context.Context) (*storage.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// AccessToken возвращает действующий access token. Подходит как
// TokenSource для движков синхронизации.
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return "", err
	}
	if session.ExpiresAt > 0 && s.now().Unix() >= session.ExpiresAt {
		return "", ErrSessionExpired
	}
	return session.AccessToken, nil
}

// validateCredentials проверяет email и пароль перед любым сетевым вызовом
func validateCredentials(email, password string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}
