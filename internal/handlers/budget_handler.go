package handlers

import (
	"net/http"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/errors"
	"networth-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget view and upsert requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
	metrics       services.MetricsRecorderInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(
	budgetService services.BudgetServiceInterface,
	metrics services.MetricsRecorderInterface,
) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		metrics:       metrics,
	}
}

// ListBudgets returns the budget view for one period; every catalog category
// appears, zero-filled when unused
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	period, err := periodFromQuery(c)
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	budgets, err := h.budgetService.ListByPeriod(userID, period)
	if err != nil {
		if isValidationError(err) {
			return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}
	return SendSuccess(c, http.StatusOK, budgets)
}

// SaveBudget upserts a user-entered budget for one category and period
func (h *BudgetHandler) SaveBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	budget, err := h.budgetService.Save(userID, c.Param("category"), &req)
	if err != nil {
		if isValidationError(err) {
			return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("budget", "upsert")
	return SendSuccess(c, http.StatusOK, budget)
}

// AutoAdjust derives calculated budgets from trailing average spend for
// categories the user has not budgeted in the period
func (h *BudgetHandler) AutoAdjust(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	period, err := periodFromQuery(c)
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	result, err := h.budgetService.AutoAdjust(userID, period)
	if err != nil {
		if isValidationError(err) {
			return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("budget", "auto_adjust")
	return SendSuccess(c, http.StatusOK, result)
}
