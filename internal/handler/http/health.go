package http

import (
	"net/http"
	"time"

	"news-digest/internal/handler/http/respond"
)

// HealthResponse is the JSON payload for the health check endpoint.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
	Checks    map[string]string `json:"checks"`
}

// HealthHandler reports process liveness. The service holds no stateful
// backends to probe, so the check reports the selected enrichment backend
// alongside a static healthy status.
type HealthHandler struct {
	Backend string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   serviceVersion,
		Checks: map[string]string{
			"enrichment_backend": h.Backend,
		},
	})
}
