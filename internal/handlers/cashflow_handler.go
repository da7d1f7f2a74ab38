package handlers

import (
	"net/http"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/errors"
	"networth-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// CashflowHandler handles income and expense requests
type CashflowHandler struct {
	cashflowService services.CashflowServiceInterface
	metrics         services.MetricsRecorderInterface
}

// NewCashflowHandler creates a new cashflow handler
func NewCashflowHandler(
	cashflowService services.CashflowServiceInterface,
	metrics services.MetricsRecorderInterface,
) *CashflowHandler {
	return &CashflowHandler{
		cashflowService: cashflowService,
		metrics:         metrics,
	}
}

// ListIncomings returns the income entries of one period
func (h *CashflowHandler) ListIncomings(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	period, err := periodFromQuery(c)
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	incomings, err := h.cashflowService.ListIncomings(userID, period)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendSuccess(c, http.StatusOK, incomings)
}

// CreateIncoming adds an income entry
func (h *CashflowHandler) CreateIncoming(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	var req dto.CreateIncomingRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	item, err := h.cashflowService.CreateIncoming(userID, &req)
	if err != nil {
		if isValidationError(err) {
			return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("incoming", "create")
	return SendSuccess(c, http.StatusCreated, item)
}

// DeleteIncoming removes an income entry
func (h *CashflowHandler) DeleteIncoming(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	itemID, err := pathUUID(c, "id")
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	if err := h.cashflowService.DeleteIncoming(userID, itemID); err != nil {
		if isNotFound(err) {
			return SendError(c, errors.CodeNotFound)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("incoming", "delete")
	return SendSuccess(c, http.StatusOK, map[string]string{"message": "incoming deleted"})
}

// ListExpenses returns the expense entries of one period
func (h *CashflowHandler) ListExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	period, err := periodFromQuery(c)
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	expenses, err := h.cashflowService.ListExpenses(userID, period)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendSuccess(c, http.StatusOK, expenses)
}

// CreateExpense adds an expense entry with an optional subcategory
func (h *CashflowHandler) CreateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	item, err := h.cashflowService.CreateExpense(userID, &req)
	if err != nil {
		switch {
		case isNotFound(err):
			return SendError(c, errors.CodeNotFound,
				errors.WithDetails("subcategory not found"))
		case isValidationError(err):
			return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("expense", "create")
	return SendSuccess(c, http.StatusCreated, item)
}

// UpdateExpense applies partial changes to an expense entry
func (h *CashflowHandler) UpdateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	itemID, err := pathUUID(c, "id")
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	item, err := h.cashflowService.UpdateExpense(userID, itemID, &req)
	if err != nil {
		switch {
		case isNotFound(err):
			return SendError(c, errors.CodeNotFound)
		case isValidationError(err):
			return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("expense", "update")
	return SendSuccess(c, http.StatusOK, item)
}

// DeleteExpense removes an expense entry
func (h *CashflowHandler) DeleteExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeUnauthorized)
	}

	itemID, err := pathUUID(c, "id")
	if err != nil {
		return SendError(c, errors.CodeValidation, errors.WithDetails(err.Error()))
	}

	if err := h.cashflowService.DeleteExpense(userID, itemID); err != nil {
		if isNotFound(err) {
			return SendError(c, errors.CodeNotFound)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementResourceWrite("expense", "delete")
	return SendSuccess(c, http.StatusOK, map[string]string{"message": "expense deleted"})
}
