package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidCashflowCategory = errors.New("invalid cash flow category")
	ErrNegativeAmount          = errors.New("amount cannot be negative")
)

// IncomingItem is a single income entry for a (year, month) period.
type IncomingItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_incomings_user_period" json:"user_id"`
	Category    string          `gorm:"type:varchar(40);not null" json:"category"`
	Year        int             `gorm:"not null;index:idx_incomings_user_period" json:"year"`
	Month       int             `gorm:"not null;index:idx_incomings_user_period" json:"month"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Description *string         `gorm:"type:varchar(255)" json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for IncomingItem
func (i *IncomingItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

// BeforeUpdate hook for IncomingItem
func (i *IncomingItem) BeforeUpdate(tx *gorm.DB) error {
	i.UpdatedAt = time.Now()
	return i.Validate()
}

// Validate validates the incoming item fields
func (i *IncomingItem) Validate() error {
	if i.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidIncomeCategory(i.Category) {
		return ErrInvalidCashflowCategory
	}
	if i.Amount.LessThan(decimal.Zero) {
		return ErrNegativeAmount
	}
	return i.Period().Validate()
}

// Period returns the period key
func (i *IncomingItem) Period() Period {
	return Period{Year: i.Year, Month: i.Month}
}

// TableName returns the table name for IncomingItem
func (i *IncomingItem) TableName() string {
	return "incoming_items"
}

// ExpenseItem is a single expense entry for a (year, month) period, optionally
// tagged with a subcategory.
type ExpenseItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_expenses_user_period" json:"user_id"`
	Category      string          `gorm:"type:varchar(40);not null" json:"category"`
	SubcategoryID *uuid.UUID      `gorm:"type:uuid;index" json:"subcategory_id,omitempty"`
	Year          int             `gorm:"not null;index:idx_expenses_user_period" json:"year"`
	Month         int             `gorm:"not null;index:idx_expenses_user_period" json:"month"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Description   *string         `gorm:"type:varchar(255)" json:"description,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`

	Subcategory *ExpenseSubcategory `gorm:"foreignKey:SubcategoryID" json:"-"`
}

// BeforeCreate hook for ExpenseItem
func (e *ExpenseItem) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

// BeforeUpdate hook for ExpenseItem
func (e *ExpenseItem) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return e.Validate()
}

// Validate validates the expense item fields
func (e *ExpenseItem) Validate() error {
	if e.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidExpenseCategory(e.Category) {
		return ErrInvalidCashflowCategory
	}
	if e.Amount.LessThan(decimal.Zero) {
		return ErrNegativeAmount
	}
	return e.Period().Validate()
}

// Period returns the period key
func (e *ExpenseItem) Period() Period {
	return Period{Year: e.Year, Month: e.Month}
}

// TableName returns the table name for ExpenseItem
func (e *ExpenseItem) TableName() string {
	return "expense_items"
}
