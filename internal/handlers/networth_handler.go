package handlers

import (
	"net/http"
	"strconv"

	"networth-tracker/internal/errors"
	"networth-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// NetWorthHandler handles history and projection requests
type NetWorthHandler struct {
	netWorthService services.NetWorthServiceInterface
}

// NewNetWorthHandler creates a new net worth handler
func NewNetWorthHandler(netWorthService services.NetWorthServiceInterface) *NetWorthHandler {
	return &NetWorthHandler{netWorthService: netWorthService}
}

// GetHistory returns per-period totals over the trailing window
func (h *NetWorthHandler) GetHistory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	months := 0
	if raw := c.QueryParam("months"); raw != "" {
		months, err = strconv.Atoi(raw)
		if err != nil || months < 1 {
			return SendError(c, errors.CodeValidation, errors.WithDetails("invalid months parameter"))
		}
	}

	history, err := h.netWorthService.History(userID, months)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendSuccess(c, http.StatusOK, history)
}

// GetProjection returns the forward projection built from trailing growth
func (h *NetWorthHandler) GetProjection(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	projection, err := h.netWorthService.Projection(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendSuccess(c, http.StatusOK, projection)
}
