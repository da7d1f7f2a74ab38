package dto

import (
	"time"

	"networth-tracker/internal/models"
)

// UpdateProfileRequest represents the request payload for editing the
// authenticated user's profile
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
}

// ProfileResponse represents the authenticated user's profile
type ProfileResponse struct {
	*models.User
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Database  string           `json:"database"`
	Tables    map[string]int64 `json:"tables,omitempty"`
}

// ExportResponse bundles every record a user owns into one document
type ExportResponse struct {
	ExportedAt    time.Time                         `json:"exported_at"`
	User          *models.User                      `json:"user"`
	Assets        []models.Asset                    `json:"assets"`
	AssetInputs   []models.AssetInput               `json:"asset_inputs"`
	Incomings     []models.IncomingItem             `json:"incomings"`
	Expenses      []models.ExpenseItem              `json:"expenses"`
	Budgets       []models.Budget                   `json:"budgets"`
	Targets       []models.CategoryAllocationTarget `json:"allocation_targets"`
	Subcategories []models.ExpenseSubcategory       `json:"subcategories"`
}
