package api

import (
	"errors"
	"fmt"

	"github.com/nilesh2630/floorplan/pkg/api"
)

// Client error taxonomy. The sync coordinator dispatches on these:
// terminal errors abandon a queued change, transient ones leave it queued.
var (
	// ErrNotFound indicates the target floor plan does not exist (terminal)
	ErrNotFound = errors.New("floor plan not found")

	// ErrValidation indicates the server rejected the request body (terminal)
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized indicates a missing or rejected access token (terminal)
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable indicates a transport failure or server 5xx: the
	// operation may be retried once the server is reachable again
	ErrUnavailable = errors.New("server unavailable")

	// ErrConflict is the sentinel wrapped by ConflictError
	ErrConflict = errors.New("version conflict")
)

// ConflictError is returned when a conditional update is rejected with 409.
// Latest carries the server's current document so the caller can merge and
// retry.
type ConflictError struct {
	Latest *api.FloorPlan
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict: server holds version %d", e.Latest.Version)
}

// Is makes errors.Is(err, ErrConflict) match ConflictError values.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
