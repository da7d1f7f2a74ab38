package dto

import (
	"networth-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationAssetEntry is one asset's snapshot nested under its category
type AllocationAssetEntry struct {
	AssetID uuid.UUID       `json:"asset_id"`
	Name    string          `json:"name"`
	Ticker  *string         `json:"ticker,omitempty"`
	Value   decimal.Decimal `json:"value"`
}

// AllocationCategory is the per-category breakdown of the allocation view.
// Percentages are on the 0-100 scale; delta = current - target, so a positive
// delta means the category holds more than the target share.
type AllocationCategory struct {
	Category          string                 `json:"category"`
	CurrentValue      decimal.Decimal        `json:"current_value"`
	PreviousValue     decimal.Decimal        `json:"previous_value"`
	CurrentPercentage decimal.Decimal        `json:"current_percentage"`
	TargetPercentage  decimal.Decimal        `json:"target_percentage"`
	TargetValue       decimal.Decimal        `json:"target_value"`
	Delta             decimal.Decimal        `json:"delta"`
	DeltaPercentage   decimal.Decimal        `json:"delta_percentage"`
	Assets            []AllocationAssetEntry `json:"assets"`
}

// AllocationResponse is the aggregated allocation view for one period
type AllocationResponse struct {
	Year          int                  `json:"year"`
	Month         int                  `json:"month"`
	CurrentTotal  decimal.Decimal      `json:"current_total"`
	PreviousTotal decimal.Decimal      `json:"previous_total"`
	Categories    []AllocationCategory `json:"categories"`
}

// UpdateAllocationTargetRequest carries the desired share on the 0-100 scale
type UpdateAllocationTargetRequest struct {
	TargetPct string `json:"target_pct" validate:"required"`
}

// AllocationTargetResponse represents one stored target on the 0-100 scale
type AllocationTargetResponse struct {
	Category  string          `json:"category"`
	TargetPct decimal.Decimal `json:"target_pct"`
}

// AllocationTargetListResponse represents all of a user's targets
type AllocationTargetListResponse struct {
	Targets []AllocationTargetResponse `json:"targets"`
}

// NewAllocationTargetResponse converts a stored target to its API shape
func NewAllocationTargetResponse(target *models.CategoryAllocationTarget) AllocationTargetResponse {
	return AllocationTargetResponse{
		Category:  target.Category,
		TargetPct: target.Target.Percent(),
	}
}
