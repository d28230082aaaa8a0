package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")

	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	pending, err := c.coordinator.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to read change queue: %w", err)
	}
	if pending == 0 {
		c.io.Println("Nothing to sync.")
		return nil
	}

	c.io.Printf("Pushing %d queued change(s)...\n", pending)

	result, err := c.coordinator.Drain(ctx, session.AccessToken)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.printDrainResult(result)
	return nil
}
