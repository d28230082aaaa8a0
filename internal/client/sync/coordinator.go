// Package sync drains the offline change queue against the server once it
// becomes reachable again.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	httpClient "github.com/nilesh2630/floorplan/internal/client/api"
	"github.com/nilesh2630/floorplan/internal/client/storage"
	"github.com/nilesh2630/floorplan/internal/merge"
	"github.com/nilesh2630/floorplan/internal/models"
	"github.com/nilesh2630/floorplan/pkg/api"
)

//go:generate moq -pkg sync -out api_mock.go ../api ClientAPI:APIClientMock

// ErrSyncInProgress is returned by Drain when another drain is already
// running. Rapid reachability flaps collapse into the drain in flight.
var ErrSyncInProgress = errors.New("sync already in progress")

// Coordinator replays queued changes strictly in enqueue order. Each change
// leaves the queue only after the server accepted it or after it is
// abandoned as unprocessable; a crash mid-drain leaves the remainder queued.
type Coordinator struct {
	apiClient httpClient.ClientAPI
	queue     storage.ChangeQueue
	cache     storage.PlanCache
	resolver  merge.Resolver
	logger    *slog.Logger

	batchUpdates bool
	drainMu      sync.Mutex
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithBatchedUpdates makes the drain group consecutive updates to the same
// floor plan into one batch sync call, bumping the server version once per
// group instead of once per change.
func WithBatchedUpdates() Option {
	return func(c *Coordinator) { c.batchUpdates = true }
}

// NewCoordinator creates a sync coordinator.
func NewCoordinator(
	apiClient httpClient.ClientAPI,
	queue storage.ChangeQueue,
	cache storage.PlanCache,
	resolver merge.Resolver,
	logger *slog.Logger,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		apiClient: apiClient,
		queue:     queue,
		cache:     cache,
		resolver:  resolver,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AbandonedChange is a queued change the server rejected for a reason that
// retrying cannot fix. It has been removed from the queue.
type AbandonedChange struct {
	Change models.Change
	Err    error
}

// DrainResult reports the outcome of one drain pass.
type DrainResult struct {
	// Applied counts changes the server accepted
	Applied int
	// Merged counts conflicts resolved by merging onto the latest
	// document and resubmitting
	Merged int
	// Requeued counts changes left queued after transient failures
	Requeued int
	// Abandoned lists changes dropped as unprocessable
	Abandoned []AbandonedChange
	// Conflicts describes updates whose merge-and-retry was rejected a
	// second time; those changes are also listed in Abandoned
	Conflicts []models.ConflictReport
}

// PendingCount returns the number of queued changes.
func (c *Coordinator) PendingCount(ctx context.Context) (int, error) {
	return c.queue.Len(ctx)
}

// Drain replays the whole queue in order. Only one drain runs at a time;
// concurrent calls fail fast with ErrSyncInProgress. A failed change never
// halts the pass: transient failures keep the change queued, terminal ones
// abandon it, and processing continues with the next change either way.
func (c *Coordinator) Drain(ctx context.Context, accessToken string) (*DrainResult, error) {
	if !c.drainMu.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer c.drainMu.Unlock()

	queued, err := c.queue.DrainInOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read change queue: %w", err)
	}

	c.logger.Info("draining change queue", "pending", len(queued))

	result := &DrainResult{}

	i := 0
	for i < len(queued) {
		if ctx.Err() != nil {
			result.Requeued += len(queued) - i
			break
		}

		if c.batchUpdates && queued[i].Change.Kind == models.ChangeUpdate {
			j := i + 1
			for j < len(queued) &&
				queued[j].Change.Kind == models.ChangeUpdate &&
				queued[j].Change.TargetID == queued[i].Change.TargetID {
				j++
			}
			c.applyBatch(ctx, accessToken, queued[i:j], result)
			i = j
			continue
		}

		c.applyOne(ctx, accessToken, queued[i], result)
		i++
	}

	c.logger.Info("drain finished",
		"applied", result.Applied,
		"merged", result.Merged,
		"requeued", result.Requeued,
		"abandoned", len(result.Abandoned),
	)

	return result, nil
}

func (c *Coordinator) applyOne(ctx context.Context, accessToken string, qc storage.QueuedChange, result *DrainResult) {
	change := qc.Change

	var err error
	switch change.Kind {
	case models.ChangeCreate:
		err = c.applyCreate(ctx, accessToken, change)
	case models.ChangeUpdate:
		err = c.applyUpdate(ctx, accessToken, change, result)
	case models.ChangeDelete:
		err = c.applyDelete(ctx, accessToken, change)
	default:
		err = fmt.Errorf("unknown change kind %q", change.Kind)
	}

	switch {
	case err == nil:
		c.ack(ctx, qc.Seq)
		result.Applied++
	case errors.Is(err, httpClient.ErrUnavailable), errors.Is(err, httpClient.ErrUnauthorized):
		// A rejected token is recoverable: logging in again replays the
		// change, so it must not leave the durable queue.
		result.Requeued++
		c.logger.Warn("change left queued", "seq", qc.Seq, "target_id", change.TargetID, "error", err)
	default:
		c.ack(ctx, qc.Seq)
		result.Abandoned = append(result.Abandoned, AbandonedChange{Change: change, Err: err})
		c.logger.Warn("change abandoned",
			"seq", qc.Seq,
			"target_id", change.TargetID,
			"kind", change.Kind,
			"error", err,
		)
	}
}

func (c *Coordinator) applyCreate(ctx context.Context, accessToken string, change models.Change) error {
	plan, err := c.apiClient.CreateFloorPlan(ctx, accessToken, api.CreateFloorPlanRequest{
		Name:    change.Name,
		Payload: change.Delta,
	})
	if err != nil {
		return err
	}

	c.cachePlan(ctx, plan)
	return nil
}

// applyUpdate folds the change's delta onto a full base document and submits
// a conditional update with the version known at enqueue time. The base comes
// from the local plan cache, or from the server when the cache has no copy; a
// bare delta is never submitted as the whole document, since that would drop
// every field the delta does not mention. On a version conflict it folds the
// delta onto the latest server document and resubmits once against the latest
// version; a second conflict abandons the change with a conflict report.
func (c *Coordinator) applyUpdate(ctx context.Context, accessToken string, change models.Change, result *DrainResult) error {
	delta := merge.Delta{
		Payload:   change.Delta,
		Timestamp: change.Timestamp,
		ClientSeq: change.ClientSeq,
	}

	base, err := c.cache.GetPlan(ctx, change.TargetID)
	if err != nil {
		latest, fetchErr := c.apiClient.GetFloorPlan(ctx, accessToken, change.TargetID)
		if fetchErr != nil {
			return fmt.Errorf("failed to resolve base floor plan: %w", fetchErr)
		}
		base = toDocument(latest)
	}

	name := change.Name
	if name == "" {
		name = base.Name
	}
	payload := c.resolver.Merge(base.Payload, []merge.Delta{delta})

	plan, err := c.apiClient.UpdateFloorPlan(ctx, accessToken, change.TargetID, api.UpdateFloorPlanRequest{
		Name:            name,
		Payload:         payload,
		ExpectedVersion: change.BaseVersion,
	})
	if err == nil {
		c.cachePlan(ctx, plan)
		return nil
	}

	var conflict *httpClient.ConflictError
	if !errors.As(err, &conflict) {
		return err
	}

	c.logger.Info("version conflict, merging onto latest document",
		"target_id", change.TargetID,
		"expected_version", change.BaseVersion,
		"latest_version", conflict.Latest.Version,
	)

	if name == "" {
		name = conflict.Latest.Name
	}
	merged := c.resolver.Merge(conflict.Latest.Payload, []merge.Delta{delta})

	plan, err = c.apiClient.UpdateFloorPlan(ctx, accessToken, change.TargetID, api.UpdateFloorPlanRequest{
		Name:            name,
		Payload:         merged,
		ExpectedVersion: conflict.Latest.Version,
	})
	if err == nil {
		result.Merged++
		c.cachePlan(ctx, plan)
		return nil
	}

	var again *httpClient.ConflictError
	if errors.As(err, &again) {
		result.Conflicts = append(result.Conflicts, models.ConflictReport{
			AttemptedChange: change,
			ExpectedVersion: conflict.Latest.Version,
			Latest:          toDocument(again.Latest),
		})
	}
	return err
}

func (c *Coordinator) applyDelete(ctx context.Context, accessToken string, change models.Change) error {
	err := c.apiClient.DeleteFloorPlan(ctx, accessToken, change.TargetID)
	if err != nil && !errors.Is(err, httpClient.ErrNotFound) {
		// a delete of an already deleted plan is satisfied either way
		return err
	}

	if cacheErr := c.cache.DeletePlan(ctx, change.TargetID); cacheErr != nil {
		c.logger.Warn("failed to drop cached floor plan", "target_id", change.TargetID, "error", cacheErr)
	}
	return nil
}

// applyBatch folds a run of consecutive updates to one floor plan into a
// single sync call. The whole run succeeds or fails together.
func (c *Coordinator) applyBatch(ctx context.Context, accessToken string, run []storage.QueuedChange, result *DrainResult) {
	targetID := run[0].Change.TargetID

	req := api.SyncBatchRequest{Deltas: make([]api.SyncDelta, 0, len(run))}
	for _, qc := range run {
		req.Deltas = append(req.Deltas, api.SyncDelta{
			Payload:   qc.Change.Delta,
			Timestamp: qc.Change.Timestamp,
			ClientSeq: qc.Change.ClientSeq,
		})
	}

	plan, err := c.apiClient.SyncFloorPlan(ctx, accessToken, targetID, req)
	switch {
	case err == nil:
		for _, qc := range run {
			c.ack(ctx, qc.Seq)
		}
		result.Applied += len(run)
		c.cachePlan(ctx, plan)
	case errors.Is(err, httpClient.ErrUnavailable), errors.Is(err, httpClient.ErrUnauthorized):
		result.Requeued += len(run)
		c.logger.Warn("batch left queued", "target_id", targetID, "size", len(run), "error", err)
	default:
		for _, qc := range run {
			c.ack(ctx, qc.Seq)
			result.Abandoned = append(result.Abandoned, AbandonedChange{Change: qc.Change, Err: err})
		}
		c.logger.Warn("batch abandoned", "target_id", targetID, "size", len(run), "error", err)
	}
}

func (c *Coordinator) ack(ctx context.Context, seq uint64) {
	if err := c.queue.Ack(ctx, seq); err != nil {
		// the change will be replayed on the next drain; replays are
		// safe because the server validates the expected version
		c.logger.Error("failed to ack change", "seq", seq, "error", err)
	}
}

func (c *Coordinator) cachePlan(ctx context.Context, plan *api.FloorPlan) {
	if err := c.cache.SavePlan(ctx, toDocument(plan)); err != nil {
		c.logger.Warn("failed to cache floor plan", "id", plan.ID, "error", err)
	}
}

func toDocument(plan *api.FloorPlan) *models.Document {
	if plan == nil {
		return nil
	}
	return &models.Document{
		ID:             plan.ID,
		Name:           plan.Name,
		Payload:        plan.Payload,
		Version:        plan.Version,
		LastModifiedBy: plan.LastModifiedBy,
		LastModifiedAt: plan.LastModifiedAt,
	}
}
