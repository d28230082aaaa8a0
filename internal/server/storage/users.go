package storage

import (
	"context"

	"github.com/nilesh2630/floorplan/internal/models"
)

// UserStorage defines the interface for account persistence.
type UserStorage interface {
	// CreateUser stores a new user.
	// Returns ErrUserAlreadyExists if the email is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email.
	// Returns ErrUserNotFound if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
