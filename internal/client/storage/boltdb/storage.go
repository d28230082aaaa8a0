package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketAuth    = []byte("auth")
	bucketPlans   = []byte("floorplans")
	bucketChanges = []byte("changes")
)

// Storage is the BoltDB-backed client store. It holds the session, the
// local floor plan cache and the durable change queue in one database file.
type Storage struct {
	db *bbolt.DB
}

// New opens (or creates) the BoltDB database at dbPath.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketAuth); err != nil {
			return fmt.Errorf("failed to create auth bucket: %w", err)
		}

		if _, err := tx.CreateBucketIfNotExists(bucketPlans); err != nil {
			return fmt.Errorf("failed to create floorplans bucket: %w", err)
		}

		if _, err := tx.CreateBucketIfNotExists(bucketChanges); err != nil {
			return fmt.Errorf("failed to create changes bucket: %w", err)
		}

		return nil
	})
}
