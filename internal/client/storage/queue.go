package storage

import (
	"context"

	"github.com/nilesh2630/floorplan/internal/models"
)

// QueuedChange is a change together with the durable sequence number it was
// assigned at enqueue time.
type QueuedChange struct {
	Change models.Change
	Seq    uint64
}

// ChangeQueue is the durable ordered queue of changes made while the server
// was unreachable. Entries survive process restarts and are drained strictly
// in enqueue order.
type ChangeQueue interface {
	// Enqueue appends a change and returns the sequence number assigned to
	// it. The stored change carries that number as its ClientSeq.
	Enqueue(ctx context.Context, change models.Change) (uint64, error)

	// DrainInOrder returns a snapshot of all queued changes in enqueue
	// order. Entries stay queued until acknowledged with Ack.
	DrainInOrder(ctx context.Context) ([]QueuedChange, error)

	// Ack removes the change with the given sequence number. Acking an
	// already removed sequence is not an error.
	Ack(ctx context.Context, seq uint64) error

	// RemoveTarget removes every queued change for the given target and
	// returns how many were removed.
	RemoveTarget(ctx context.Context, targetID string) (int, error)

	// Len returns the number of queued changes.
	Len(ctx context.Context) (int, error)

	// IsEmpty reports whether the queue holds no changes.
	IsEmpty(ctx context.Context) (bool, error)
}
