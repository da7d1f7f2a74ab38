package dto

import (
	"networth-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Asset Request DTOs

// CreateAssetRequest represents the request payload for creating an asset
type CreateAssetRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	Ticker    *string `json:"ticker,omitempty" validate:"omitempty,min=1,max=20"`
	Category  string  `json:"category" validate:"required,oneof=STOCKS ETF BONDS CRYPTO REAL_ESTATE CASH COMMODITIES OTHER_ASSET"`
	MarketCap *string `json:"market_cap,omitempty"`
}

// UpdateAssetRequest represents the request payload for updating an asset.
// All fields optional; absent fields are left unchanged.
type UpdateAssetRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Ticker    *string `json:"ticker,omitempty" validate:"omitempty,min=1,max=20"`
	Category  *string `json:"category,omitempty" validate:"omitempty,oneof=STOCKS ETF BONDS CRYPTO REAL_ESTATE CASH COMMODITIES OTHER_ASSET"`
	MarketCap *string `json:"market_cap,omitempty"`
}

// SaveAssetInputRequest represents the request payload for saving a monthly
// snapshot. A second save for the same (asset, year, month) overwrites the
// value rather than creating a duplicate.
type SaveAssetInputRequest struct {
	AssetID string  `json:"asset_id" validate:"required,uuid"`
	Year    int     `json:"year" validate:"required,min=1900,max=3000"`
	Month   int     `json:"month" validate:"required,min=1,max=12"`
	Value   string  `json:"value" validate:"required"`
	Notes   *string `json:"notes,omitempty" validate:"omitempty,max=255"`
}

// Asset Response DTOs

// AssetListResponse represents a user's asset list
type AssetListResponse struct {
	Assets []models.Asset `json:"assets"`
	Total  int            `json:"total"`
}

// AssetInputListResponse represents the snapshots of one period
type AssetInputListResponse struct {
	Inputs []models.AssetInput `json:"inputs"`
	Year   int                 `json:"year"`
	Month  int                 `json:"month"`
	Total  decimal.Decimal     `json:"total"`
}
