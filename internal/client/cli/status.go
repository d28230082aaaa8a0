package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nilesh2630/floorplan/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.store.GetSession(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		c.io.Println("Session: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'floorplan login' to authenticate.")
	case err != nil:
		return fmt.Errorf("failed to get session: %w", err)
	default:
		expiresAt := time.Unix(session.ExpiresAt, 0)
		remaining := time.Until(expiresAt)

		c.io.Println("Session: Authenticated")
		c.io.Printf("Email: %s\n", session.Email)
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("Token has expired. Please login again.")
		}
	}

	c.io.Println()
	if err := c.apiClient.Health(ctx); err != nil {
		c.io.Println("Server: unreachable")
	} else {
		c.io.Println("Server: reachable")
	}

	pending, err := c.coordinator.PendingCount(ctx)
	if err != nil {
		c.io.Printf("Warning: failed to read change queue: %v\n", err)
		return nil
	}

	if pending > 0 {
		c.io.Printf("Pending sync: %d change(s) waiting to be pushed\n", pending)
		c.io.Println("Run 'floorplan sync' to synchronize with the server.")
	} else {
		c.io.Println("All changes synchronized with the server.")
	}

	return nil
}
