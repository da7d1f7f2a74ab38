package repositories

import (
	"errors"
	"fmt"

	"networth-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSubcategoryNotFound   = errors.New("subcategory not found")
	ErrSubcategoryReferenced = errors.New("subcategory is referenced by expenses")
)

// subcategoryRepository implements SubcategoryRepositoryInterface
type subcategoryRepository struct {
	db *gorm.DB
}

// NewSubcategoryRepository creates a new subcategory repository
func NewSubcategoryRepository(db *gorm.DB) SubcategoryRepositoryInterface {
	return &subcategoryRepository{db: db}
}

// Create adds a user-owned subcategory
func (r *subcategoryRepository) Create(subcategory *models.ExpenseSubcategory) error {
	if err := r.db.Create(subcategory).Error; err != nil {
		return fmt.Errorf("failed to create subcategory: %w", err)
	}
	return nil
}

// ListForUser retrieves the system defaults plus the user's own subcategories
func (r *subcategoryRepository) ListForUser(userID uuid.UUID) ([]models.ExpenseSubcategory, error) {
	var subcategories []models.ExpenseSubcategory
	err := r.db.Where("user_id IS NULL OR user_id = ?", userID).
		Order("category ASC, name ASC").
		Find(&subcategories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	return subcategories, nil
}

// GetByID retrieves a subcategory by primary key. Ownership checks belong to
// the service layer, which distinguishes defaults from other users' rows.
func (r *subcategoryRepository) GetByID(id uuid.UUID) (*models.ExpenseSubcategory, error) {
	var subcategory models.ExpenseSubcategory
	if err := r.db.Where("id = ?", id).First(&subcategory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, fmt.Errorf("failed to get subcategory: %w", err)
	}
	return &subcategory, nil
}

// Update persists changes to a subcategory
func (r *subcategoryRepository) Update(subcategory *models.ExpenseSubcategory) error {
	if err := r.db.Save(subcategory).Error; err != nil {
		return fmt.Errorf("failed to update subcategory: %w", err)
	}
	return nil
}

// DeleteIfUnreferenced removes a subcategory unless any expense still points
// at it. The count and delete run in one transaction so a concurrent expense
// create cannot slip between them.
func (r *subcategoryRepository) DeleteIfUnreferenced(subcategoryID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ExpenseItem{}).
			Where("subcategory_id = ?", subcategoryID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count subcategory references: %w", err)
		}
		if count > 0 {
			return ErrSubcategoryReferenced
		}
		result := tx.Where("id = ?", subcategoryID).Delete(&models.ExpenseSubcategory{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete subcategory: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrSubcategoryNotFound
		}
		return nil
	})
}
