package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"article-digest/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler answers readiness checks: it pings the database and reports
// per-check status. Unhealthy dependencies yield 503.
type HealthHandler struct {
	DB      *sql.DB
	Version string
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	healthy := true

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			healthy = false
			checks["database"] = CheckStatus{Status: "unhealthy", Message: respond.SanitizeError(err)}
		} else {
			checks["database"] = CheckStatus{Status: "healthy"}
		}
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	code := http.StatusOK
	if !healthy {
		resp.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	respond.JSON(w, code, resp)
}

// LiveHandler answers liveness probes without touching dependencies.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
