package storage

import (
	"context"
)

// AuthStorage persists the logged-in session between CLI invocations.
type AuthStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession returns the stored session.
	// Returns ErrAuthNotFound if nobody is logged in.
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}

// Session is the persisted login state.
type Session struct {
	Email       string `json:"email"`
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}
