package storage

import (
	"errors"
	"fmt"

	"github.com/nilesh2630/floorplan/internal/models"
)

// Common storage errors
var (
	// ErrDocumentNotFound indicates that no floor plan exists with the given ID
	ErrDocumentNotFound = errors.New("floor plan not found")

	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that a user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrVersionConflict is the sentinel wrapped by ConflictError, usable
	// with errors.Is
	ErrVersionConflict = errors.New("version conflict")
)

// ConflictError is returned by ConditionalUpdate when the expected version
// does not match the stored version. Latest carries the current stored
// document, unmodified by the rejected write.
type ConflictError struct {
	Latest          *models.Document
	ExpectedVersion int64
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict: expected %d, stored %d",
		e.ExpectedVersion, e.Latest.Version)
}

// Is makes errors.Is(err, ErrVersionConflict) match ConflictError values.
func (e *ConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}
