package cli

import (
	"context"
	"fmt"

	"github.com/nilesh2630/floorplan/internal/models"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: floorplan edit <id> <delta>")
	}
	id := args[0]

	delta, err := parsePayload(args[1])
	if err != nil {
		return err
	}
	if len(delta) == 0 {
		return fmt.Errorf("delta must contain at least one field")
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	// The base version is the version of the last copy seen from the
	// server; the queued change replays against it.
	base, err := c.fetchPlan(ctx, session.AccessToken, id)
	if err != nil {
		return err
	}

	_, err = c.store.Enqueue(ctx, models.Change{
		TargetID:    id,
		Kind:        models.ChangeUpdate,
		Delta:       delta,
		BaseVersion: base.Version,
		Timestamp:   c.nextTimestamp(ctx),
	})
	if err != nil {
		return fmt.Errorf("failed to queue change: %w", err)
	}

	c.io.Printf("Queued edit of %q (%d field(s)).\n", base.Name, len(delta))

	return c.drainIfReachable(ctx, session.AccessToken)
}
