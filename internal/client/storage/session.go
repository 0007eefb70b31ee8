package storage

import "context"

// Session содержит данные аутентификации клиента
type Session struct {
	UserID       string `json:"user_id"`       // UserID идентификатор пользователя (owner записей)
	Email        string `json:"email"`         // Email пользователя
	AccessToken  string `json:"access_token"`  // JWT access token
	RefreshToken string `json:"refresh_token"` // refresh token
	PublicSalt   string `json:"public_salt"`   // base64 encoded salt
	ExpiresAt    int64  `json:"expires_at"`    // unix время истечения access token
}

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for persisting the client session
type SessionStorage interface {
	// SaveSession stores session data, replacing any previous session
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session
	DeleteSession(ctx context.Context) error
}
