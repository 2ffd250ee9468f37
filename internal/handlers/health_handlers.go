package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
)

// CheckFunc probes one dependency
type CheckFunc func(ctx context.Context) error

// HealthHandlers handles health check and readiness endpoints
type HealthHandlers struct {
	checks  map[string]CheckFunc
	timeout time.Duration
}

// NewHealthHandlers creates a new health handlers instance. checks are run by
// the readiness probe, keyed by dependency name.
func NewHealthHandlers(checks map[string]CheckFunc) *HealthHandlers {
	return &HealthHandlers{checks: checks, timeout: 2 * time.Second}
}

// ReadinessStatus is the readiness probe body
type ReadinessStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck reports that the process is serving requests
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "API is healthy",
	})
}

// ReadinessCheck determines if the application is ready to serve traffic
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := ReadinessStatus{Status: "ready", Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			status.Checks[name] = "unavailable"
			status.Status = "not_ready"
			continue
		}
		status.Checks[name] = "ok"
	}

	if status.Status != "ready" {
		return c.JSON(http.StatusServiceUnavailable, status)
	}
	return c.JSON(http.StatusOK, status)
}
