package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nilesh2630/floorplan/internal/merge"
	"github.com/nilesh2630/floorplan/internal/models"
	"github.com/nilesh2630/floorplan/internal/server/storage"
)

// Create stores a new floor plan with version fixed at 1.
func (s *Storage) Create(ctx context.Context, name string, payload models.Payload, author string) (*models.Document, error) {
	doc := &models.Document{
		ID:             uuid.New().String(),
		Name:           name,
		Payload:        payload,
		Version:        1,
		LastModifiedBy: author,
		LastModifiedAt: time.Now(),
	}

	payloadJSON, err := json.Marshal(doc.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	query := `
		INSERT INTO floor_plans (id, name, payload, version, last_modified_by, last_modified_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		doc.ID,
		doc.Name,
		string(payloadJSON),
		doc.Version,
		doc.LastModifiedBy,
		doc.LastModifiedAt.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert floor plan: %w", err)
	}

	return doc, nil
}

// Get retrieves a floor plan by ID
// Returns ErrDocumentNotFound if it doesn't exist
func (s *Storage) Get(ctx context.Context, id string) (*models.Document, error) {
	query := `
		SELECT id, name, payload, version, last_modified_by, last_modified_at
		FROM floor_plans
		WHERE id = ?
	`

	doc, err := scanDocument(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get floor plan: %w", err)
	}

	return doc, nil
}

// List returns all floor plans, most recently modified first.
func (s *Storage) List(ctx context.Context) ([]*models.Document, error) {
	query := `
		SELECT id, name, payload, version, last_modified_by, last_modified_at
		FROM floor_plans
		ORDER BY last_modified_at DESC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query floor plans: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var docs []*models.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan floor plan: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, nil
}

// ConditionalUpdate performs the compare-and-swap write. The version check
// and the write run inside one transaction on the single writer connection,
// so two concurrent updates against the same starting version cannot both
// succeed. On mismatch the store is untouched and *storage.ConflictError
// carries the current document.
func (s *Storage) ConditionalUpdate(ctx context.Context, id, name string, payload models.Payload, expectedVersion int64, author string) (*models.Document, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	current, err := getDocumentTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if current.Version != expectedVersion {
		return nil, &storage.ConflictError{Latest: current, ExpectedVersion: expectedVersion}
	}

	updated, err := writeDocumentTx(ctx, tx, id, name, payload, expectedVersion, author)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return updated, nil
}

// Delete removes a floor plan unconditionally (no version check)
// Returns ErrDocumentNotFound if it doesn't exist
func (s *Storage) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM floor_plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete floor plan: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrDocumentNotFound
	}

	return nil
}

// BatchMerge folds the deltas into the current payload via the resolver and
// writes once: the version is bumped by exactly 1 no matter how many deltas
// were folded. Only the offline-sync path uses this.
func (s *Storage) BatchMerge(ctx context.Context, id string, deltas []merge.Delta, author string) (*models.Document, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	current, err := getDocumentTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	mergedPayload := s.resolver.Merge(current.Payload, deltas)

	updated, err := writeDocumentTx(ctx, tx, id, current.Name, mergedPayload, current.Version, author)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return updated, nil
}

// getDocumentTx reads a document inside a transaction.
func getDocumentTx(ctx context.Context, tx *sql.Tx, id string) (*models.Document, error) {
	query := `
		SELECT id, name, payload, version, last_modified_by, last_modified_at
		FROM floor_plans
		WHERE id = ?
	`

	doc, err := scanDocument(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get floor plan: %w", err)
	}

	return doc, nil
}

// writeDocumentTx writes the accepted update inside a transaction. The WHERE
// version guard is the second line of defense behind the transaction.
func writeDocumentTx(ctx context.Context, tx *sql.Tx, id, name string, payload models.Payload, fromVersion int64, author string) (*models.Document, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	now := time.Now()

	query := `
		UPDATE floor_plans
		SET name = ?, payload = ?, version = version + 1,
		    last_modified_by = ?, last_modified_at = ?
		WHERE id = ? AND version = ?
	`

	result, err := tx.ExecContext(ctx, query,
		name,
		string(payloadJSON),
		author,
		now.UnixMilli(),
		id,
		fromVersion,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update floor plan: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("floor plan %s changed underneath the transaction", id)
	}

	return &models.Document{
		ID:             id,
		Name:           name,
		Payload:        payload,
		Version:        fromVersion + 1,
		LastModifiedBy: author,
		LastModifiedAt: now,
	}, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*models.Document, error) {
	doc := &models.Document{}
	var payloadJSON string
	var lastModifiedAt int64

	err := row.Scan(
		&doc.ID,
		&doc.Name,
		&payloadJSON,
		&doc.Version,
		&doc.LastModifiedBy,
		&lastModifiedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(payloadJSON), &doc.Payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	doc.LastModifiedAt = time.UnixMilli(lastModifiedAt)

	return doc, nil
}
