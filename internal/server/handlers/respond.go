package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nilesh2630/floorplan/internal/models"
	"github.com/nilesh2630/floorplan/pkg/api"
)

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError sends an api.ErrorResponse body.
func writeError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	writeJSON(w, logger, status, api.ErrorResponse{Message: message})
}

// toAPIFloorPlan converts the storage model to its wire representation.
func toAPIFloorPlan(doc *models.Document) *api.FloorPlan {
	return &api.FloorPlan{
		ID:             doc.ID,
		Name:           doc.Name,
		Payload:        doc.Payload,
		Version:        doc.Version,
		LastModifiedBy: doc.LastModifiedBy,
		LastModifiedAt: doc.LastModifiedAt,
	}
}
