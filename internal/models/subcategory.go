package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSubcategoryNameRequired = errors.New("subcategory name is required")

// ExpenseSubcategory refines an expense category. Rows with a NULL user_id
// are system defaults: visible to everyone, never editable or deletable
// through the API. User-owned rows may be deleted only while no expense item
// references them.
type ExpenseSubcategory struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Category  string     `gorm:"type:varchar(40);not null;index" json:"category"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`

	ExpenseItems []ExpenseItem `gorm:"foreignKey:SubcategoryID" json:"-"`
}

// BeforeCreate hook for ExpenseSubcategory
func (s *ExpenseSubcategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

// BeforeUpdate hook for ExpenseSubcategory
func (s *ExpenseSubcategory) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return s.Validate()
}

// Validate validates the subcategory fields
func (s *ExpenseSubcategory) Validate() error {
	if s.Name == "" {
		return ErrSubcategoryNameRequired
	}
	if !IsValidExpenseCategory(s.Category) {
		return ErrInvalidCashflowCategory
	}
	return nil
}

// IsDefault reports whether this is a system default subcategory
func (s *ExpenseSubcategory) IsDefault() bool {
	return s.UserID == nil
}

// OwnedBy reports whether the subcategory belongs to the given user
func (s *ExpenseSubcategory) OwnedBy(userID uuid.UUID) bool {
	return s.UserID != nil && *s.UserID == userID
}

// TableName returns the table name for ExpenseSubcategory
func (s *ExpenseSubcategory) TableName() string {
	return "expense_subcategories"
}

// DefaultSubcategories returns the seed rows for system default subcategories.
func DefaultSubcategories() []ExpenseSubcategory {
	return []ExpenseSubcategory{
		{Category: ExpenseCategoryHousing, Name: "Rent"},
		{Category: ExpenseCategoryHousing, Name: "Mortgage"},
		{Category: ExpenseCategoryHousing, Name: "Maintenance"},
		{Category: ExpenseCategoryTransport, Name: "Fuel"},
		{Category: ExpenseCategoryTransport, Name: "Public Transit"},
		{Category: ExpenseCategoryUtilities, Name: "Electricity"},
		{Category: ExpenseCategoryUtilities, Name: "Water"},
		{Category: ExpenseCategoryUtilities, Name: "Internet"},
		{Category: ExpenseCategoryLeisure, Name: "Dining Out"},
		{Category: ExpenseCategoryLeisure, Name: "Travel"},
		{Category: ExpenseCategorySubscriptions, Name: "Streaming"},
	}
}
