package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var ErrInvalidEmail = errors.New("invalid email address")

// User is the ownership root: every other row carries a user_id. Identity is
// delegated to the hosted provider; Subject stores the provider's stable
// subject claim and users are provisioned on first authenticated request.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Subject     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	DisplayName string    `gorm:"type:varchar(100);not null" json:"display_name"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	Assets            []Asset                    `gorm:"foreignKey:UserID" json:"-"`
	AssetInputs       []AssetInput               `gorm:"foreignKey:UserID" json:"-"`
	IncomingItems     []IncomingItem             `gorm:"foreignKey:UserID" json:"-"`
	ExpenseItems      []ExpenseItem              `gorm:"foreignKey:UserID" json:"-"`
	Budgets           []Budget                   `gorm:"foreignKey:UserID" json:"-"`
	AllocationTargets []CategoryAllocationTarget `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

// BeforeUpdate hook for User
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return u.Validate()
}

// Validate validates the user fields
func (u *User) Validate() error {
	if u.Subject == "" {
		return errors.New("subject is required")
	}
	if u.Email == "" || !emailRegex.MatchString(u.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
