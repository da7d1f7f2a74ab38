package dto

import "github.com/shopspring/decimal"

// UpdateBudgetRequest represents the request payload for saving a budget
type UpdateBudgetRequest struct {
	Year   int    `json:"year" validate:"required,min=1900,max=3000"`
	Month  int    `json:"month" validate:"required,min=1,max=12"`
	Amount string `json:"amount" validate:"required"`
}

// BudgetEntry is one expense category in the budget view. Every catalog
// category appears, zero-filled when no budget or spend exists for the period.
type BudgetEntry struct {
	Category   string          `json:"category"`
	Name       string          `json:"name"`
	Budget     decimal.Decimal `json:"budget"`
	Actual     decimal.Decimal `json:"actual"`
	Remaining  decimal.Decimal `json:"remaining"`
	Calculated bool            `json:"calculated"`
}

// BudgetListResponse is the budget view for one period
type BudgetListResponse struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	TotalBudget decimal.Decimal `json:"total_budget"`
	TotalActual decimal.Decimal `json:"total_actual"`
	Entries     []BudgetEntry   `json:"entries"`
}

// AutoAdjustResponse reports the categories that received a calculated budget
type AutoAdjustResponse struct {
	Year     int           `json:"year"`
	Month    int           `json:"month"`
	Adjusted []BudgetEntry `json:"adjusted"`
}
