// Package cli implements the floorplan client commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpClient "github.com/nilesh2630/floorplan/internal/client/api"
	"github.com/nilesh2630/floorplan/internal/client/iocli"
	"github.com/nilesh2630/floorplan/internal/client/storage"
	"github.com/nilesh2630/floorplan/internal/client/sync"
	"github.com/nilesh2630/floorplan/internal/clock"
	"github.com/nilesh2630/floorplan/internal/merge"
)

// Store is the client-side persistence the commands need. The BoltDB
// storage satisfies all three facets.
type Store interface {
	storage.ChangeQueue
	storage.PlanCache
	storage.AuthStorage
}

type Cli struct {
	apiClient   httpClient.ClientAPI
	store       Store
	io          iocli.IO
	logger      *slog.Logger
	clock       *clock.Monotonic
	coordinator *sync.Coordinator

	clockSynced bool
}

func New(apiClient httpClient.ClientAPI, store Store, io iocli.IO, logger *slog.Logger) *Cli {
	return &Cli{
		apiClient:   apiClient,
		store:       store,
		io:          io,
		logger:      logger,
		clock:       clock.New(),
		coordinator: sync.NewCoordinator(apiClient, store, store, merge.ShallowMerge{}, logger),
	}
}

// nextTimestamp hands out the next change timestamp. On first use it advances
// the clock past every timestamp already queued, so changes persisted by a
// previous run keep their order even if wall time stepped backwards since.
func (c *Cli) nextTimestamp(ctx context.Context) int64 {
	if !c.clockSynced {
		queued, err := c.store.DrainInOrder(ctx)
		if err != nil {
			c.logger.Warn("failed to read queued changes for clock catch-up", "error", err)
		} else {
			for _, qc := range queued {
				c.clock.Observe(qc.Change.Timestamp)
			}
			c.clockSynced = true
		}
	}
	return c.clock.Next()
}

// session returns the stored session, rejecting expired tokens.
func (c *Cli) session(ctx context.Context) (*storage.Session, error) {
	session, err := c.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, fmt.Errorf("not authenticated. Please run 'floorplan login' first")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if time.Now().Unix() >= session.ExpiresAt {
		return nil, fmt.Errorf("access token has expired. Please login again")
	}

	return session, nil
}
