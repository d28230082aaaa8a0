package cli

import (
	"context"
	"errors"
	"fmt"

	httpClient "github.com/nilesh2630/floorplan/internal/client/api"
	"github.com/nilesh2630/floorplan/internal/models"
)

func (c *Cli) runList(ctx context.Context) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	plans, err := c.apiClient.ListFloorPlans(ctx, session.AccessToken)
	if err != nil {
		if !errors.Is(err, httpClient.ErrUnavailable) {
			return err
		}
		return c.listFromCache(ctx)
	}

	docs := make([]*models.Document, 0, len(plans))
	for i := range plans {
		doc := &models.Document{
			ID:             plans[i].ID,
			Name:           plans[i].Name,
			Payload:        plans[i].Payload,
			Version:        plans[i].Version,
			LastModifiedBy: plans[i].LastModifiedBy,
			LastModifiedAt: plans[i].LastModifiedAt,
		}
		docs = append(docs, doc)

		if err := c.store.SavePlan(ctx, doc); err != nil {
			c.logger.Warn("failed to cache floor plan", "id", doc.ID, "error", err)
		}
	}

	return c.renderTemplate(planListTemplate, docs)
}

func (c *Cli) listFromCache(ctx context.Context) error {
	plans, err := c.store.ListPlans(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cached floor plans: %w", err)
	}

	c.io.Println("Server unreachable, showing cached floor plans.")
	return c.renderTemplate(planListTemplate, plans)
}
