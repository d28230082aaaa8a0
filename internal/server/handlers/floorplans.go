package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nilesh2630/floorplan/internal/merge"
	"github.com/nilesh2630/floorplan/internal/models"
	"github.com/nilesh2630/floorplan/internal/server/storage"
	"github.com/nilesh2630/floorplan/internal/validation"
	"github.com/nilesh2630/floorplan/pkg/api"
)

// DocumentStorage is the slice of the store the floor plan handlers need.
type DocumentStorage interface {
	Create(ctx context.Context, name string, payload models.Payload, author string) (*models.Document, error)
	Get(ctx context.Context, id string) (*models.Document, error)
	List(ctx context.Context) ([]*models.Document, error)
	ConditionalUpdate(ctx context.Context, id, name string, payload models.Payload, expectedVersion int64, author string) (*models.Document, error)
	Delete(ctx context.Context, id string) error
	BatchMerge(ctx context.Context, id string, deltas []merge.Delta, author string) (*models.Document, error)
}

// FloorPlanHandler handles the floor plan API routes.
type FloorPlanHandler struct {
	logger  *slog.Logger
	storage DocumentStorage
}

// NewFloorPlanHandler creates a new floor plan handler.
func NewFloorPlanHandler(logger *slog.Logger, storage DocumentStorage) *FloorPlanHandler {
	return &FloorPlanHandler{
		logger:  logger,
		storage: storage,
	}
}

// Create handles POST /api/v1/floorplans
func (h *FloorPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		writeError(w, h.logger, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req api.CreateFloorPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode create request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateDocumentName(req.Name); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidatePayload(req.Payload); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.storage.Create(ctx, req.Name, req.Payload, userID)
	if err != nil {
		h.logger.Error("Failed to create floor plan", "error", err, "user_id", userID)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("Floor plan created", "id", doc.ID, "user_id", userID)
	writeJSON(w, h.logger, http.StatusCreated, toAPIFloorPlan(doc))
}

// List handles GET /api/v1/floorplans
// Floor plans are returned most recently modified first.
func (h *FloorPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	docs, err := h.storage.List(ctx)
	if err != nil {
		h.logger.Error("Failed to list floor plans", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := api.ListFloorPlansResponse{FloorPlans: make([]api.FloorPlan, 0, len(docs))}
	for _, doc := range docs {
		resp.FloorPlans = append(resp.FloorPlans, *toAPIFloorPlan(doc))
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

// Get handles GET /api/v1/floorplans/{id}
func (h *FloorPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	doc, err := h.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Floor plan not found")
			return
		}
		h.logger.Error("Failed to get floor plan", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toAPIFloorPlan(doc))
}

// Update handles PUT /api/v1/floorplans/{id}
// The write succeeds only when expected_version matches the stored version;
// on mismatch it answers 409 with the current document so the client can
// merge and retry.
func (h *FloorPlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	userID, ok := GetUserID(ctx)
	if !ok {
		writeError(w, h.logger, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req api.UpdateFloorPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode update request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateDocumentName(req.Name); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidatePayload(req.Payload); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.storage.ConditionalUpdate(ctx, id, req.Name, req.Payload, req.ExpectedVersion, userID)
	if err != nil {
		var conflict *storage.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Info("Version conflict on update",
				"id", id,
				"expected_version", req.ExpectedVersion,
				"stored_version", conflict.Latest.Version)
			writeJSON(w, h.logger, http.StatusConflict, api.ConflictResponse{
				Message: "Conflict detected. The floor plan has been modified by another client.",
				Latest:  toAPIFloorPlan(conflict.Latest),
			})
		case errors.Is(err, storage.ErrDocumentNotFound):
			writeError(w, h.logger, http.StatusNotFound, "Floor plan not found")
		default:
			h.logger.Error("Failed to update floor plan", "error", err, "id", id)
			writeError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.logger.Info("Floor plan updated", "id", id, "version", doc.Version, "user_id", userID)
	writeJSON(w, h.logger, http.StatusOK, toAPIFloorPlan(doc))
}

// Delete handles DELETE /api/v1/floorplans/{id}
// The delete is unconditional: no version check.
func (h *FloorPlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := h.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Floor plan not found")
			return
		}
		h.logger.Error("Failed to delete floor plan", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("Floor plan deleted", "id", id)
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Floor plan deleted successfully"})
}

// SyncBatch handles POST /api/v1/floorplans/{id}/sync
// It folds all offline deltas into the stored plan with a single version
// bump, regardless of how many deltas are folded.
func (h *FloorPlanHandler) SyncBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	userID, ok := GetUserID(ctx)
	if !ok {
		writeError(w, h.logger, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req api.SyncBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode sync request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	deltas := make([]merge.Delta, 0, len(req.Deltas))
	for _, d := range req.Deltas {
		if err := validation.ValidatePayload(d.Payload); err != nil {
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		deltas = append(deltas, merge.Delta{
			Payload:   d.Payload,
			Timestamp: d.Timestamp,
			ClientSeq: d.ClientSeq,
		})
	}

	doc, err := h.storage.BatchMerge(ctx, id, deltas, userID)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Floor plan not found")
			return
		}
		h.logger.Error("Failed to sync floor plan", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("Offline changes synced",
		"id", id,
		"deltas", len(deltas),
		"version", doc.Version,
		"user_id", userID)
	writeJSON(w, h.logger, http.StatusOK, toAPIFloorPlan(doc))
}
