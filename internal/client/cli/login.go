package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/nilesh2630/floorplan/internal/client/storage"
	"github.com/nilesh2630/floorplan/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	session := &storage.Session{
		Email:       email,
		AccessToken: resp.AccessToken,
		ExpiresAt:   time.Now().Unix() + resp.ExpiresIn,
	}
	if err := c.store.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Token expires: %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))

	// Changes may have queued up while logged out
	pending, err := c.coordinator.PendingCount(ctx)
	if err == nil && pending > 0 {
		c.io.Println()
		c.io.Printf("You have %d pending change(s). Run 'floorplan sync' to push them.\n", pending)
	}

	return nil
}
