package handlers

import "context"

// contextKey is the type for request context keys set by the middleware.
type contextKey string

const (
	// UserIDKey holds the authenticated user id in the request context
	UserIDKey contextKey = "user_id"
	// EmailKey holds the authenticated user email in the request context
	EmailKey contextKey = "email"
)

// GetUserID extracts the authenticated user id from the request context.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetEmail extracts the authenticated user email from the request context.
func GetEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}
