package dto

import (
	"networth-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// CreateIncomingRequest represents the request payload for adding income
type CreateIncomingRequest struct {
	Category    string  `json:"category" validate:"required,oneof=SALARY BONUS DIVIDENDS OTHER_INCOME"`
	Year        int     `json:"year" validate:"required,min=1900,max=3000"`
	Month       int     `json:"month" validate:"required,min=1,max=12"`
	Amount      string  `json:"amount" validate:"required"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
}

// CreateExpenseRequest represents the request payload for adding an expense
type CreateExpenseRequest struct {
	Category      string  `json:"category" validate:"required,oneof=HOUSING GROCERIES TRANSPORT UTILITIES HEALTH LEISURE SUBSCRIPTIONS OTHER_EXPENSE"`
	SubcategoryID *string `json:"subcategory_id,omitempty" validate:"omitempty,uuid"`
	Year          int     `json:"year" validate:"required,min=1900,max=3000"`
	Month         int     `json:"month" validate:"required,min=1,max=12"`
	Amount        string  `json:"amount" validate:"required"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=255"`
}

// UpdateExpenseRequest represents the request payload for editing an expense.
// All fields optional; absent fields are left unchanged.
type UpdateExpenseRequest struct {
	Category      *string `json:"category,omitempty" validate:"omitempty,oneof=HOUSING GROCERIES TRANSPORT UTILITIES HEALTH LEISURE SUBSCRIPTIONS OTHER_EXPENSE"`
	SubcategoryID *string `json:"subcategory_id,omitempty" validate:"omitempty,uuid"`
	Amount        *string `json:"amount,omitempty"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=255"`
}

// IncomingListResponse represents the income entries of one period
type IncomingListResponse struct {
	Incomings []models.IncomingItem `json:"incomings"`
	Year      int                   `json:"year"`
	Month     int                   `json:"month"`
	Total     decimal.Decimal       `json:"total"`
}

// ExpenseListResponse represents the expense entries of one period
type ExpenseListResponse struct {
	Expenses []models.ExpenseItem `json:"expenses"`
	Year     int                  `json:"year"`
	Month    int                  `json:"month"`
	Total    decimal.Decimal      `json:"total"`
}

// CreateSubcategoryRequest represents the request payload for a custom
// expense subcategory
type CreateSubcategoryRequest struct {
	Category string `json:"category" validate:"required,oneof=HOUSING GROCERIES TRANSPORT UTILITIES HEALTH LEISURE SUBSCRIPTIONS OTHER_EXPENSE"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateSubcategoryRequest represents the request payload for renaming a
// custom subcategory
type UpdateSubcategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// SubcategoryListResponse represents the defaults plus the user's own rows
type SubcategoryListResponse struct {
	Subcategories []models.ExpenseSubcategory `json:"subcategories"`
}
