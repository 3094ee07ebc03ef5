package api

import (
	"context"
	"net/http"
	"time"

	"firststeps/internal/build"
	"firststeps/internal/store"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

const healthTimeout = 5 * time.Second

// Pinger reports whether the database deployment is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ComponentHealth reports the state of a single dependency.
type ComponentHealth struct {
	Status    string  `json:"status"`
	Message   string  `json:"message,omitempty"`
	LatencyMS float64 `json:"latency_ms"`
}

// HealthResponse is the body returned by GET /healthz.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version"`
	Components map[string]ComponentHealth `json:"components"`
}

// healthHandler probes MongoDB and the GridFS bucket.
type healthHandler struct {
	pinger Pinger
	files  store.FileStoreIface
}

// Health reports service health, including MongoDB reachability and a GridFS
// read probe. Unreachable MongoDB makes the service unhealthy (503); a failed
// bucket probe alone only degrades it.
// GET /healthz
//
// @Summary      Health check
// @Description  Reports overall service health and per-dependency detail.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /healthz [get]
func (h *healthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	components := make(map[string]ComponentHealth, 2)
	overall := statusHealthy

	start := time.Now()
	if err := h.pinger.Ping(ctx); err != nil {
		components["mongodb"] = ComponentHealth{
			Status:    statusUnhealthy,
			Message:   err.Error(),
			LatencyMS: msSince(start),
		}
		overall = statusUnhealthy
	} else {
		components["mongodb"] = ComponentHealth{Status: statusHealthy, LatencyMS: msSince(start)}
	}

	start = time.Now()
	if _, err := h.files.List(ctx, 1); err != nil {
		components["gridfs"] = ComponentHealth{
			Status:    statusUnhealthy,
			Message:   err.Error(),
			LatencyMS: msSince(start),
		}
		if overall == statusHealthy {
			overall = statusDegraded
		}
	} else {
		components["gridfs"] = ComponentHealth{Status: statusHealthy, LatencyMS: msSince(start)}
	}

	code := http.StatusOK
	if overall == statusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, &HealthResponse{
		Status:     overall,
		Version:    build.Version,
		Components: components,
	})
}

// Alive reports process liveness only; it touches no dependencies.
// GET /livez
//
// @Summary      Liveness check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /livez [get]
func (h *healthHandler) Alive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
