// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func() bool

// HealthController handles health check endpoints.
type HealthController struct {
	checks map[string]HealthCheck
	now    func() time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Timestamp    string            `json:"timestamp"`
}

// NewHealthController creates a new health controller for the named dependency checks.
func NewHealthController(checks map[string]HealthCheck) *HealthController {
	return &HealthController{
		checks: checks,
		now:    time.Now,
	}
}

// Check handles GET /health requests.
// The endpoint always answers 200; a failing dependency marks the status degraded.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"
	deps := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if check != nil && check() {
			deps[name] = "connected"
			continue
		}
		deps[name] = "disconnected"
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:       status,
		Dependencies: deps,
		Timestamp:    h.now().UTC().Format(time.RFC3339),
	})
}
