package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAssetCategory = errors.New("invalid asset category")
	ErrAssetNameRequired    = errors.New("asset name is required")
)

// Asset is a named holding (stock, fund, property) belonging to a user.
// Deletion is hard: there is no soft-delete column, matching the lifecycle
// where an asset either exists with its snapshot history or is gone.
type Asset struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string           `gorm:"type:varchar(100);not null" json:"name"`
	Ticker    *string          `gorm:"type:varchar(20)" json:"ticker,omitempty"`
	Category  string           `gorm:"type:varchar(40);not null;index" json:"category"`
	MarketCap *decimal.Decimal `gorm:"type:decimal(20,2)" json:"market_cap,omitempty"`
	CreatedAt time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time        `gorm:"not null" json:"updated_at"`

	User   User         `gorm:"foreignKey:UserID" json:"-"`
	Inputs []AssetInput `gorm:"foreignKey:AssetID" json:"-"`
}

// BeforeCreate hook for Asset
func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Asset
func (a *Asset) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the asset fields
func (a *Asset) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if a.Name == "" {
		return ErrAssetNameRequired
	}
	if !IsValidAssetCategory(a.Category) {
		return ErrInvalidAssetCategory
	}
	if a.MarketCap != nil && a.MarketCap.LessThan(decimal.Zero) {
		return errors.New("market cap cannot be negative")
	}
	return nil
}

// TableName returns the table name for Asset
func (a *Asset) TableName() string {
	return "assets"
}
