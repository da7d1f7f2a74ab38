package handlers

import (
	"fmt"
	"net/http"
	"time"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/errors"
	"networth-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler handles profile and data export requests
type UserHandler struct {
	userService   services.UserServiceInterface
	exportService services.ExportServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	userService services.UserServiceInterface,
	exportService services.ExportServiceInterface,
) *UserHandler {
	return &UserHandler{
		userService:   userService,
		exportService: exportService,
	}
}

// GetProfile returns the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		if isNotFound(err) {
			return SendError(c, errors.CodeNotFound)
		}
		return SendSystemError(c, err)
	}
	return SendSuccess(c, http.StatusOK, dto.ProfileResponse{User: user})
}

// UpdateProfile applies partial changes to the authenticated user's profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		if isNotFound(err) {
			return SendError(c, errors.CodeNotFound)
		}
		return SendSystemError(c, err)
	}
	return SendSuccess(c, http.StatusOK, dto.ProfileResponse{User: user})
}

// ExportData returns all of the user's records as a JSON attachment
func (h *UserHandler) ExportData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	export, err := h.exportService.ExportData(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	filename := fmt.Sprintf("finance-export-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.JSON(http.StatusOK, export)
}
