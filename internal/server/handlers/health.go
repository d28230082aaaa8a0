package handlers

import (
	"log/slog"
	"net/http"
)

// HealthHandler handles health check requests. The client connectivity
// monitor probes this endpoint, so it must stay unauthenticated and cheap.
type HealthHandler struct {
	logger *slog.Logger
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	return &HealthHandler{logger: logger}
}

// HealthResponse is the health check body.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, HealthResponse{Status: "ok"})
}
