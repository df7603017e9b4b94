package v1handler

import (
	"net/http"

	"urlshot/internal/browser"
)

// HealthResponse is the body of GET /v1/health.
type HealthResponse struct {
	// Status is healthy, degraded or unhealthy based on session pool usage.
	Status string `json:"status"`
	// Sessions is the current pool snapshot.
	Sessions browser.Health `json:"sessions"`
}

// Health reports service health derived from session pool usage: healthy
// while free sessions remain, degraded while requests queue, unhealthy once
// the queue itself is full.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	snapshot := h.deps.Pool.Health()

	status := http.StatusOK
	if snapshot.Status() == "unhealthy" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(r.Context(), w, status, HealthResponse{
		Status:   snapshot.Status(),
		Sessions: snapshot,
	})
}
