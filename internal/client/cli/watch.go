package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/nilesh2630/floorplan/internal/client/connectivity"
	"github.com/nilesh2630/floorplan/internal/client/sync"
)

const defaultProbeInterval = 5 * time.Second

// runWatch keeps the process alive, probing the server and draining the
// queue every time reachability is restored. Ctrl-C stops it.
func (c *Cli) runWatch(ctx context.Context, args []string) error {
	interval := defaultProbeInterval
	if len(args) > 0 {
		parsed, err := time.ParseDuration(args[0])
		if err != nil {
			return fmt.Errorf("invalid interval %q: %w", args[0], err)
		}
		if parsed <= 0 {
			return fmt.Errorf("interval must be positive")
		}
		interval = parsed
	}

	if _, err := c.session(ctx); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	monitor := connectivity.New(
		connectivity.ProberFunc(c.apiClient.Health),
		interval,
		c.logger,
	)
	restored := monitor.Subscribe()

	go monitor.Run(ctx)

	c.io.Printf("Watching for connectivity every %s. Press Ctrl-C to stop.\n", interval)

	for {
		select {
		case <-ctx.Done():
			c.io.Println()
			c.io.Println("Stopped.")
			return nil
		case <-restored:
			if empty, err := c.store.IsEmpty(ctx); err == nil && empty {
				continue
			}

			// The token may have rotated or expired since startup
			session, err := c.session(ctx)
			if err != nil {
				return err
			}

			result, err := c.coordinator.Drain(ctx, session.AccessToken)
			if errors.Is(err, sync.ErrSyncInProgress) {
				continue
			}
			if err != nil {
				c.io.Printf("Sync failed: %v\n", err)
				continue
			}

			if result.Applied > 0 || len(result.Abandoned) > 0 || result.Requeued > 0 {
				c.printDrainResult(result)
			}
		}
	}
}
