package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssetInput is the recorded total value of one asset for one (year, month)
// period. The composite unique index gives saves upsert semantics: a second
// save for the same key overwrites the value instead of duplicating the row.
type AssetInput struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_asset_inputs_key" json:"user_id"`
	AssetID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_asset_inputs_key" json:"asset_id"`
	Year      int             `gorm:"not null;uniqueIndex:idx_asset_inputs_key" json:"year"`
	Month     int             `gorm:"not null;uniqueIndex:idx_asset_inputs_key" json:"month"`
	Value     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"value"`
	Notes     *string         `gorm:"type:varchar(255)" json:"notes,omitempty"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`

	Asset Asset `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for AssetInput
func (ai *AssetInput) BeforeCreate(tx *gorm.DB) error {
	if ai.ID == uuid.Nil {
		ai.ID = uuid.New()
	}

	now := time.Now()
	if ai.CreatedAt.IsZero() {
		ai.CreatedAt = now
	}
	if ai.UpdatedAt.IsZero() {
		ai.UpdatedAt = now
	}

	return ai.Validate()
}

// BeforeUpdate hook for AssetInput
func (ai *AssetInput) BeforeUpdate(tx *gorm.DB) error {
	ai.UpdatedAt = time.Now()
	return ai.Validate()
}

// Validate validates the asset input fields
func (ai *AssetInput) Validate() error {
	if ai.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if ai.AssetID == uuid.Nil {
		return errors.New("asset ID is required")
	}
	return ai.Period().Validate()
}

// Period returns the snapshot period key
func (ai *AssetInput) Period() Period {
	return Period{Year: ai.Year, Month: ai.Month}
}

// TableName returns the table name for AssetInput
func (ai *AssetInput) TableName() string {
	return "asset_inputs"
}
