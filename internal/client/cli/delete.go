package cli

import (
	"context"
	"fmt"

	"github.com/nilesh2630/floorplan/internal/models"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: floorplan delete <id>")
	}
	id := args[0]

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	// Queued edits of the plan are superseded by the delete
	removed, err := c.store.RemoveTarget(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to drop queued changes: %w", err)
	}
	if removed > 0 {
		c.io.Printf("Dropped %d queued change(s) for %s.\n", removed, id)
	}

	_, err = c.store.Enqueue(ctx, models.Change{
		TargetID:  id,
		Kind:      models.ChangeDelete,
		Timestamp: c.nextTimestamp(ctx),
	})
	if err != nil {
		return fmt.Errorf("failed to queue change: %w", err)
	}

	c.io.Printf("Queued deletion of %s.\n", id)

	return c.drainIfReachable(ctx, session.AccessToken)
}
