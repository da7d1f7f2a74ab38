package handlers

import (
	"net/http"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/errors"
	"networth-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AllocationHandler handles allocation view and target requests
type AllocationHandler struct {
	allocationService services.AllocationServiceInterface
	metrics           services.MetricsRecorderInterface
}

// NewAllocationHandler creates a new allocation handler
func NewAllocationHandler(
	allocationService services.AllocationServiceInterface,
	metrics services.MetricsRecorderInterface,
) *AllocationHandler {
	return &AllocationHandler{
		allocationService: allocationService,
		metrics:           metrics,
	}
}

// GetAllocation returns the per-category allocation view for one period
func (h *AllocationHandler) GetAllocation(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	period, err := periodFromQuery(c)
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	allocation, err := h.allocationService.GetAllocation(userID, period)
	if err != nil {
		if isValidationError(err) {
			return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}
	return SendSuccess(c, http.StatusOK, allocation)
}

// ListTargets returns the user's allocation targets on the 0-100 scale
func (h *AllocationHandler) ListTargets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	targets, err := h.allocationService.ListTargets(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendSuccess(c, http.StatusOK, targets)
}

// SaveTarget upserts the target share for one asset category
func (h *AllocationHandler) SaveTarget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	var req dto.UpdateAllocationTargetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	target, err := h.allocationService.SaveTarget(userID, c.Param("category"), &req)
	if err != nil {
		if isValidationError(err) {
			return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("allocation_target", "upsert")
	return SendSuccess(c, http.StatusOK, target)
}
