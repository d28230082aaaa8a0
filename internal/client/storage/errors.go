package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no session is stored
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrPlanNotFound indicates that no cached floor plan exists for the id
	ErrPlanNotFound = errors.New("floor plan not found in cache")

	// ErrChangeNotFound indicates that no queued change exists for the sequence
	ErrChangeNotFound = errors.New("queued change not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
