package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilesh2630/floorplan/internal/merge"
	"github.com/nilesh2630/floorplan/internal/models"
	"github.com/nilesh2630/floorplan/internal/server/storage"
	"github.com/nilesh2630/floorplan/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// mockDocumentStorage is an in-memory DocumentStorage honoring the
// compare-and-swap contract.
type mockDocumentStorage struct {
	docs     map[string]*models.Document
	order    []string // insertion order; List reverses it
	resolver merge.Resolver
}

func newMockDocumentStorage() *mockDocumentStorage {
	return &mockDocumentStorage{
		docs:     make(map[string]*models.Document),
		resolver: merge.ShallowMerge{},
	}
}

func (m *mockDocumentStorage) Create(_ context.Context, name string, payload models.Payload, author string) (*models.Document, error) {
	doc := &models.Document{
		ID:             uuid.New().String(),
		Name:           name,
		Payload:        payload,
		Version:        1,
		LastModifiedBy: author,
		LastModifiedAt: time.Now(),
	}
	m.docs[doc.ID] = doc
	m.order = append(m.order, doc.ID)
	return doc, nil
}

func (m *mockDocumentStorage) Get(_ context.Context, id string) (*models.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, storage.ErrDocumentNotFound
	}
	return doc, nil
}

func (m *mockDocumentStorage) List(_ context.Context) ([]*models.Document, error) {
	out := make([]*models.Document, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.docs[m.order[i]])
	}
	return out, nil
}

func (m *mockDocumentStorage) ConditionalUpdate(_ context.Context, id, name string, payload models.Payload, expectedVersion int64, author string) (*models.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, storage.ErrDocumentNotFound
	}
	if doc.Version != expectedVersion {
		return nil, &storage.ConflictError{Latest: doc, ExpectedVersion: expectedVersion}
	}
	updated := &models.Document{
		ID:             id,
		Name:           name,
		Payload:        payload,
		Version:        expectedVersion + 1,
		LastModifiedBy: author,
		LastModifiedAt: time.Now(),
	}
	m.docs[id] = updated
	return updated, nil
}

func (m *mockDocumentStorage) Delete(_ context.Context, id string) error {
	if _, ok := m.docs[id]; !ok {
		return storage.ErrDocumentNotFound
	}
	delete(m.docs, id)
	return nil
}

func (m *mockDocumentStorage) BatchMerge(_ context.Context, id string, deltas []merge.Delta, author string) (*models.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, storage.ErrDocumentNotFound
	}
	updated := &models.Document{
		ID:             id,
		Name:           doc.Name,
		Payload:        m.resolver.Merge(doc.Payload, deltas),
		Version:        doc.Version + 1,
		LastModifiedBy: author,
		LastModifiedAt: time.Now(),
	}
	m.docs[id] = updated
	return updated, nil
}

func authedRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	ctx := context.WithValue(req.Context(), UserIDKey, "user123")
	return req.WithContext(ctx)
}

func TestFloorPlanHandler_Create(t *testing.T) {
	store := newMockDocumentStorage()
	handler := NewFloorPlanHandler(setupTestLogger(), store)

	req := authedRequest(http.MethodPost, "/api/v1/floorplans", api.CreateFloorPlanRequest{
		Name:    "Ground floor",
		Payload: map[string]any{"x": float64(1)},
	})
	w := httptest.NewRecorder()
	handler.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var got api.FloorPlan
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, int64(1), got.Version)
	assert.Equal(t, "user123", got.LastModifiedBy)
}

func TestFloorPlanHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		body any
		name string
	}{
		{name: "missing name", body: api.CreateFloorPlanRequest{Payload: map[string]any{}}},
		{name: "missing payload", body: api.CreateFloorPlanRequest{Name: "plan"}},
		{name: "invalid json", body: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockDocumentStorage()
			handler := NewFloorPlanHandler(setupTestLogger(), store)

			var req *http.Request
			if tt.body == nil {
				req = httptest.NewRequest(http.MethodPost, "/api/v1/floorplans", bytes.NewBufferString("{not json"))
				req = req.WithContext(context.WithValue(req.Context(), UserIDKey, "user123"))
			} else {
				req = authedRequest(http.MethodPost, "/api/v1/floorplans", tt.body)
			}

			w := httptest.NewRecorder()
			handler.Create(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, store.docs, "validation failure must not create anything")
		})
	}
}

func TestFloorPlanHandler_Create_Unauthorized(t *testing.T) {
	handler := NewFloorPlanHandler(setupTestLogger(), newMockDocumentStorage())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/floorplans", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()
	handler.Create(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFloorPlanHandler_Get(t *testing.T) {
	store := newMockDocumentStorage()
	doc, err := store.Create(context.Background(), "plan", models.Payload{"x": float64(1)}, "user123")
	require.NoError(t, err)

	handler := NewFloorPlanHandler(setupTestLogger(), store)

	req := authedRequest(http.MethodGet, "/api/v1/floorplans/"+doc.ID, nil)
	req.SetPathValue("id", doc.ID)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got api.FloorPlan
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, doc.ID, got.ID)
}

func TestFloorPlanHandler_Get_NotFound(t *testing.T) {
	handler := NewFloorPlanHandler(setupTestLogger(), newMockDocumentStorage())

	req := authedRequest(http.MethodGet, "/api/v1/floorplans/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	handler.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFloorPlanHandler_List(t *testing.T) {
	store := newMockDocumentStorage()
	_, err := store.Create(context.Background(), "older", models.Payload{}, "user123")
	require.NoError(t, err)
	newer, err := store.Create(context.Background(), "newer", models.Payload{}, "user123")
	require.NoError(t, err)

	handler := NewFloorPlanHandler(setupTestLogger(), store)

	req := authedRequest(http.MethodGet, "/api/v1/floorplans", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got api.ListFloorPlansResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got.FloorPlans, 2)
	assert.Equal(t, newer.ID, got.FloorPlans[0].ID, "most recently modified first")
}

func TestFloorPlanHandler_Update(t *testing.T) {
	store := newMockDocumentStorage()
	doc, err := store.Create(context.Background(), "plan", models.Payload{"x": float64(1)}, "user123")
	require.NoError(t, err)

	handler := NewFloorPlanHandler(setupTestLogger(), store)

	req := authedRequest(http.MethodPut, "/api/v1/floorplans/"+doc.ID, api.UpdateFloorPlanRequest{
		Name:            "plan",
		Payload:         map[string]any{"x": float64(2)},
		ExpectedVersion: 1,
	})
	req.SetPathValue("id", doc.ID)
	w := httptest.NewRecorder()
	handler.Update(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got api.FloorPlan
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, int64(2), got.Version)
}

func TestFloorPlanHandler_Update_Conflict(t *testing.T) {
	store := newMockDocumentStorage()
	doc, err := store.Create(context.Background(), "plan", models.Payload{"x": float64(1)}, "user123")
	require.NoError(t, err)

	// Another client wins the race to version 2.
	_, err = store.ConditionalUpdate(context.Background(), doc.ID, "plan", models.Payload{"x": float64(9)}, 1, "other")
	require.NoError(t, err)

	handler := NewFloorPlanHandler(setupTestLogger(), store)

	req := authedRequest(http.MethodPut, "/api/v1/floorplans/"+doc.ID, api.UpdateFloorPlanRequest{
		Name:            "plan",
		Payload:         map[string]any{"x": float64(2)},
		ExpectedVersion: 1,
	})
	req.SetPathValue("id", doc.ID)
	w := httptest.NewRecorder()
	handler.Update(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var conflict api.ConflictResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&conflict))
	require.NotNil(t, conflict.Latest)
	assert.Equal(t, int64(2), conflict.Latest.Version)
	assert.Equal(t, float64(9), conflict.Latest.Payload["x"])

	// Resubmitting against the returned version succeeds, producing v3.
	req = authedRequest(http.MethodPut, "/api/v1/floorplans/"+doc.ID, api.UpdateFloorPlanRequest{
		Name:            "plan",
		Payload:         map[string]any{"x": float64(2)},
		ExpectedVersion: conflict.Latest.Version,
	})
	req.SetPathValue("id", doc.ID)
	w = httptest.NewRecorder()
	handler.Update(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var updated api.FloorPlan
	require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
	assert.Equal(t, int64(3), updated.Version)
}

func TestFloorPlanHandler_Update_NotFound(t *testing.T) {
	handler := NewFloorPlanHandler(setupTestLogger(), newMockDocumentStorage())

	req := authedRequest(http.MethodPut, "/api/v1/floorplans/missing", api.UpdateFloorPlanRequest{
		Name:            "plan",
		Payload:         map[string]any{},
		ExpectedVersion: 1,
	})
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	handler.Update(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFloorPlanHandler_Delete(t *testing.T) {
	store := newMockDocumentStorage()
	doc, err := store.Create(context.Background(), "plan", models.Payload{}, "user123")
	require.NoError(t, err)

	handler := NewFloorPlanHandler(setupTestLogger(), store)

	req := authedRequest(http.MethodDelete, "/api/v1/floorplans/"+doc.ID, nil)
	req.SetPathValue("id", doc.ID)
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	req = authedRequest(http.MethodDelete, "/api/v1/floorplans/"+doc.ID, nil)
	req.SetPathValue("id", doc.ID)
	w = httptest.NewRecorder()
	handler.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFloorPlanHandler_SyncBatch(t *testing.T) {
	store := newMockDocumentStorage()
	doc, err := store.Create(context.Background(), "plan", models.Payload{"x": float64(1)}, "user123")
	require.NoError(t, err)

	handler := NewFloorPlanHandler(setupTestLogger(), store)

	req := authedRequest(http.MethodPost, "/api/v1/floorplans/"+doc.ID+"/sync", api.SyncBatchRequest{
		Deltas: []api.SyncDelta{
			{Payload: map[string]any{"x": float64(2)}, Timestamp: 10},
			{Payload: map[string]any{"y": float64(5)}, Timestamp: 20},
		},
	})
	req.SetPathValue("id", doc.ID)
	w := httptest.NewRecorder()
	handler.SyncBatch(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got api.FloorPlan
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, float64(2), got.Payload["x"])
	assert.Equal(t, float64(5), got.Payload["y"])
	assert.Equal(t, int64(2), got.Version, "batch sync bumps the version exactly once")
}

func TestFloorPlanHandler_SyncBatch_NotFound(t *testing.T) {
	handler := NewFloorPlanHandler(setupTestLogger(), newMockDocumentStorage())

	req := authedRequest(http.MethodPost, "/api/v1/floorplans/missing/sync", api.SyncBatchRequest{})
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	handler.SyncBatch(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
