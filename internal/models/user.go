package models

import "time"

// User represents an account that owns floor plan edits.
type User struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"id"` // UUID
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt hash, never serialized
}
