package handlers

import (
	"net/http"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/errors"
	"networth-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// SubcategoryHandler handles expense subcategory requests
type SubcategoryHandler struct {
	subcategoryService services.SubcategoryServiceInterface
	metrics            services.MetricsRecorderInterface
}

// NewSubcategoryHandler creates a new subcategory handler
func NewSubcategoryHandler(
	subcategoryService services.SubcategoryServiceInterface,
	metrics services.MetricsRecorderInterface,
) *SubcategoryHandler {
	return &SubcategoryHandler{
		subcategoryService: subcategoryService,
		metrics:            metrics,
	}
}

// ListSubcategories returns system defaults plus the user's own rows
func (h *SubcategoryHandler) ListSubcategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	subcategories, err := h.subcategoryService.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendSuccess(c, http.StatusOK, subcategories)
}

// CreateSubcategory adds a user-owned subcategory
func (h *SubcategoryHandler) CreateSubcategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	var req dto.CreateSubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	subcategory, err := h.subcategoryService.Create(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("subcategory", "create")
	return SendSuccess(c, http.StatusCreated, subcategory)
}

// UpdateSubcategory renames a user-owned subcategory. System defaults are
// refused with 403; other users' rows read as 404.
func (h *SubcategoryHandler) UpdateSubcategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	subcategoryID, err := pathUUID(c, "id")
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateSubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	subcategory, err := h.subcategoryService.Update(userID, subcategoryID, &req)
	if err != nil {
		switch {
		case isDefaultSubcategory(err):
			return SendError(c, errors.CodeForbidden,
				errors.WithDetails("system default subcategories cannot be modified"))
		case isNotFound(err):
			return SendError(c, errors.CodeNotFound)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("subcategory", "update")
	return SendSuccess(c, http.StatusOK, subcategory)
}

// DeleteSubcategory removes a user-owned subcategory unless expenses still
// reference it
func (h *SubcategoryHandler) DeleteSubcategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	subcategoryID, err := pathUUID(c, "id")
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	if err := h.subcategoryService.Delete(userID, subcategoryID); err != nil {
		switch {
		case isDefaultSubcategory(err):
			return SendError(c, errors.CodeForbidden,
				errors.WithDetails("system default subcategories cannot be deleted"))
		case isSubcategoryInUse(err):
			return SendError(c, errors.CodeConflict,
				errors.WithDetails("subcategory is referenced by expenses"))
		case isNotFound(err):
			return SendError(c, errors.CodeNotFound)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("subcategory", "delete")
	return SendSuccess(c, http.StatusOK, map[string]string{"message": "subcategory deleted"})
}
