package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/nilesh2630/floorplan/internal/client/storage"
	"github.com/nilesh2630/floorplan/internal/models"
)

// Queue entries are keyed by the bucket's NextSequence counter encoded
// big-endian, so a cursor walk visits them in enqueue order and sequence
// numbers are never reused after a crash.

// Enqueue appends a change to the durable queue.
func (s *Storage) Enqueue(ctx context.Context, change models.Change) (uint64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var seq uint64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChanges)
		if bucket == nil {
			return fmt.Errorf("changes bucket not found")
		}

		next, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to assign sequence: %w", err)
		}

		change.ClientSeq = next

		data, err := json.Marshal(change)
		if err != nil {
			return fmt.Errorf("failed to marshal change: %w", err)
		}

		if err := bucket.Put(seqKey(next), data); err != nil {
			return fmt.Errorf("failed to save change: %w", err)
		}

		seq = next
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("transaction failed: %w", err)
	}

	return seq, nil
}

// DrainInOrder returns a snapshot of all queued changes in enqueue order.
func (s *Storage) DrainInOrder(ctx context.Context) ([]storage.QueuedChange, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var queued []storage.QueuedChange

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChanges)
		if bucket == nil {
			return nil
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			var change models.Change
			if err := json.Unmarshal(v, &change); err != nil {
				return fmt.Errorf("failed to unmarshal change: %w", err)
			}
			queued = append(queued, storage.QueuedChange{
				Change: change,
				Seq:    binary.BigEndian.Uint64(k),
			})
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to read queue: %w", err)
	}

	return queued, nil
}

// Ack removes an acknowledged change from the queue.
func (s *Storage) Ack(ctx context.Context, seq uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChanges)
		if bucket == nil {
			return nil
		}
		return bucket.Delete(seqKey(seq))
	})

	if err != nil {
		return fmt.Errorf("failed to ack change: %w", err)
	}

	return nil
}

// RemoveTarget drops every queued change addressing the given target.
func (s *Storage) RemoveTarget(ctx context.Context, targetID string) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	removed := 0

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChanges)
		if bucket == nil {
			return nil
		}

		var keys [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var change models.Change
			if err := json.Unmarshal(v, &change); err != nil {
				return fmt.Errorf("failed to unmarshal change: %w", err)
			}
			if change.TargetID == targetID {
				key := make([]byte, len(k))
				copy(key, k)
				keys = append(keys, key)
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range keys {
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("failed to delete change: %w", err)
			}
		}

		removed = len(keys)
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to remove target changes: %w", err)
	}

	return removed, nil
}

// Len returns the number of queued changes.
func (s *Storage) Len(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	count := 0

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChanges)
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to count queue: %w", err)
	}

	return count, nil
}

// IsEmpty reports whether the queue holds no changes.
func (s *Storage) IsEmpty(ctx context.Context) (bool, error) {
	count, err := s.Len(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
