package handlers

import (
	"net/http"

	"networth-tracker/internal/errors"
	"networth-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles the unauthenticated liveness endpoint
type HealthHandler struct {
	healthService services.HealthServiceInterface
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(healthService services.HealthServiceInterface) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Check reports database liveness and per-table row counts
func (h *HealthHandler) Check(c echo.Context) error {
	health, err := h.healthService.Check()
	if err != nil {
		return SendError(c, errors.CodeHealthCheckFailed, errors.WithDetails("database unreachable"))
	}
	return SendSuccess(c, http.StatusOK, health)
}
