// Package api defines the wire types shared by the server handlers and the
// client.
package api

import "time"

// FloorPlan is the wire representation of a stored floor plan.
type FloorPlan struct {
	LastModifiedAt time.Time      `json:"last_modified_at"`
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	LastModifiedBy string         `json:"last_modified_by"`
	Payload        map[string]any `json:"payload"`
	Version        int64          `json:"version"`
}

// CreateFloorPlanRequest creates a new floor plan with version 1.
type CreateFloorPlanRequest struct {
	Name    string         `json:"name"`
	Payload map[string]any `json:"payload"`
}

// UpdateFloorPlanRequest is a conditional update: it only succeeds when
// ExpectedVersion matches the stored version.
type UpdateFloorPlanRequest struct {
	Name            string         `json:"name"`
	Payload         map[string]any `json:"payload"`
	ExpectedVersion int64          `json:"expected_version"`
}

// ConflictResponse is returned with HTTP 409 when a conditional update is
// rejected. Latest carries the current stored document, unmodified.
type ConflictResponse struct {
	Message string     `json:"message"`
	Latest  *FloorPlan `json:"latest"`
}

// SyncDelta is one offline payload delta inside a batch sync request.
type SyncDelta struct {
	Payload   map[string]any `json:"payload"`
	Timestamp int64          `json:"timestamp"`
	ClientSeq uint64         `json:"client_seq"`
}

// SyncBatchRequest folds the ordered deltas into the stored floor plan with a
// single version bump, regardless of how many deltas are folded.
type SyncBatchRequest struct {
	Deltas []SyncDelta `json:"deltas"`
}

// ListFloorPlansResponse lists floor plans, most recently modified first.
type ListFloorPlansResponse struct {
	FloorPlans []FloorPlan `json:"floor_plans"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Message string `json:"message"`
}
