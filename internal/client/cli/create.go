package cli

import (
	"context"
	"fmt"

	"github.com/nilesh2630/floorplan/internal/models"
	"github.com/nilesh2630/floorplan/internal/validation"
)

func (c *Cli) runCreate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing name. Usage: floorplan create <name> [payload]")
	}

	name := args[0]
	if err := validation.ValidateDocumentName(name); err != nil {
		return err
	}

	raw := ""
	if len(args) > 1 {
		raw = args[1]
	}
	payload, err := parsePayload(raw)
	if err != nil {
		return err
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	_, err = c.store.Enqueue(ctx, models.Change{
		TargetID:  models.PendingTargetID,
		Kind:      models.ChangeCreate,
		Name:      name,
		Delta:     payload,
		Timestamp: c.nextTimestamp(ctx),
	})
	if err != nil {
		return fmt.Errorf("failed to queue change: %w", err)
	}

	c.io.Printf("Queued creation of %q.\n", name)

	return c.drainIfReachable(ctx, session.AccessToken)
}
