package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	httpClient "github.com/nilesh2630/floorplan/internal/client/api"
	"github.com/nilesh2630/floorplan/internal/client/storage"
	"github.com/nilesh2630/floorplan/internal/models"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: floorplan get <id>")
	}
	id := args[0]

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	doc, err := c.fetchPlan(ctx, session.AccessToken, id)
	if err != nil {
		return err
	}

	payloadJSON, err := json.MarshalIndent(doc.Payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	return c.renderTemplate(planDetailsTemplate, struct {
		Plan        *models.Document
		PayloadJSON string
	}{Plan: doc, PayloadJSON: string(payloadJSON)})
}

// fetchPlan prefers the server copy and refreshes the cache with it; when
// the server is unreachable the cached copy is served instead.
func (c *Cli) fetchPlan(ctx context.Context, accessToken, id string) (*models.Document, error) {
	plan, err := c.apiClient.GetFloorPlan(ctx, accessToken, id)
	if err == nil {
		doc := &models.Document{
			ID:             plan.ID,
			Name:           plan.Name,
			Payload:        plan.Payload,
			Version:        plan.Version,
			LastModifiedBy: plan.LastModifiedBy,
			LastModifiedAt: plan.LastModifiedAt,
		}
		if saveErr := c.store.SavePlan(ctx, doc); saveErr != nil {
			c.logger.Warn("failed to cache floor plan", "id", id, "error", saveErr)
		}
		return doc, nil
	}

	if !errors.Is(err, httpClient.ErrUnavailable) {
		return nil, err
	}

	doc, cacheErr := c.store.GetPlan(ctx, id)
	if errors.Is(cacheErr, storage.ErrPlanNotFound) {
		return nil, fmt.Errorf("server unreachable and floor plan %s is not cached", id)
	}
	if cacheErr != nil {
		return nil, fmt.Errorf("failed to read cached floor plan: %w", cacheErr)
	}

	c.io.Println("Server unreachable, showing cached copy.")
	return doc, nil
}
