package storage

import (
	"context"

	"github.com/nilesh2630/floorplan/internal/models"
)

// PlanCache is the local copy of floor plans last seen from the server. It
// backs offline reads and supplies the base version recorded on queued
// changes.
type PlanCache interface {
	// SavePlan stores or replaces a cached floor plan
	SavePlan(ctx context.Context, plan *models.Document) error

	// GetPlan returns a cached floor plan.
	// Returns ErrPlanNotFound if the id is not cached.
	GetPlan(ctx context.Context, id string) (*models.Document, error)

	// ListPlans returns all cached floor plans, most recently modified first
	ListPlans(ctx context.Context) ([]*models.Document, error)

	// DeletePlan removes a cached floor plan. Deleting an id that is not
	// cached is not an error.
	DeletePlan(ctx context.Context, id string) error
}
