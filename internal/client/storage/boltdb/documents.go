package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/nilesh2630/floorplan/internal/client/storage"
	"github.com/nilesh2630/floorplan/internal/models"
)

// SavePlan stores or replaces a cached floor plan.
func (s *Storage) SavePlan(ctx context.Context, plan *models.Document) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal floor plan: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPlans)
		if bucket == nil {
			return fmt.Errorf("floorplans bucket not found")
		}
		return bucket.Put([]byte(plan.ID), data)
	})

	if err != nil {
		return fmt.Errorf("failed to save floor plan: %w", err)
	}

	return nil
}

// GetPlan retrieves a cached floor plan by id.
func (s *Storage) GetPlan(ctx context.Context, id string) (*models.Document, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var plan *models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPlans)
		if bucket == nil {
			return storage.ErrPlanNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrPlanNotFound
		}

		plan = &models.Document{}
		if err := json.Unmarshal(data, plan); err != nil {
			return fmt.Errorf("failed to unmarshal floor plan: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return plan, nil
}

// ListPlans returns all cached floor plans, most recently modified first.
func (s *Storage) ListPlans(ctx context.Context) ([]*models.Document, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var plans []*models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPlans)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var plan models.Document
			if err := json.Unmarshal(v, &plan); err != nil {
				return fmt.Errorf("failed to unmarshal floor plan: %w", err)
			}
			plans = append(plans, &plan)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list floor plans: %w", err)
	}

	sort.Slice(plans, func(i, j int) bool {
		if !plans[i].LastModifiedAt.Equal(plans[j].LastModifiedAt) {
			return plans[i].LastModifiedAt.After(plans[j].LastModifiedAt)
		}
		return plans[i].ID < plans[j].ID
	})

	return plans, nil
}

// DeletePlan removes a cached floor plan.
func (s *Storage) DeletePlan(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPlans)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(id))
	})

	if err != nil {
		return fmt.Errorf("failed to delete floor plan: %w", err)
	}

	return nil
}
