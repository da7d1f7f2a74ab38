package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a planned spending ceiling for one expense category in one
// period. Calculated distinguishes system-derived budgets (auto-adjust) from
// user-entered ones; auto-adjust never overwrites a user-entered budget.
type Budget struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_key" json:"user_id"`
	Category   string          `gorm:"type:varchar(40);not null;uniqueIndex:idx_budgets_key" json:"category"`
	Year       int             `gorm:"not null;uniqueIndex:idx_budgets_key" json:"year"`
	Month      int             `gorm:"not null;uniqueIndex:idx_budgets_key" json:"month"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Calculated bool            `gorm:"not null;default:false" json:"calculated"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidExpenseCategory(b.Category) {
		return ErrInvalidCashflowCategory
	}
	if b.Amount.LessThan(decimal.Zero) {
		return ErrNegativeAmount
	}
	return b.Period().Validate()
}

// Period returns the period key
func (b *Budget) Period() Period {
	return Period{Year: b.Year, Month: b.Month}
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}
