package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryAllocationTarget is the user's desired share of total net worth for
// one asset category. Persisted on the 0-1 scale through the Fraction type;
// the API surface speaks 0-100 and converts at the DTO boundary.
type CategoryAllocationTarget struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_allocation_targets_key" json:"user_id"`
	Category  string    `gorm:"type:varchar(40);not null;uniqueIndex:idx_allocation_targets_key" json:"category"`
	Target    Fraction  `gorm:"type:decimal(12,10);not null" json:"target"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for CategoryAllocationTarget
func (t *CategoryAllocationTarget) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for CategoryAllocationTarget
func (t *CategoryAllocationTarget) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the allocation target fields
func (t *CategoryAllocationTarget) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidAssetCategory(t.Category) {
		return ErrInvalidAssetCategory
	}
	return t.Target.Validate()
}

// TableName returns the table name for CategoryAllocationTarget
func (t *CategoryAllocationTarget) TableName() string {
	return "category_allocation_targets"
}
