package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.store.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Println("✓ Logged out.")

	pending, err := c.coordinator.PendingCount(ctx)
	if err == nil && pending > 0 {
		c.io.Printf("Note: %d queued change(s) remain and will sync after the next login.\n", pending)
	}

	return nil
}
