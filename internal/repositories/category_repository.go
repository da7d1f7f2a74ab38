package repositories

import (
	"fmt"

	"networth-tracker/internal/models"

	"gorm.io/gorm"
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{db: db}
}

// ListByKind retrieves the catalog rows for one kind in stable order
func (r *categoryRepository) ListByKind(kind string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("kind = ?", kind).Order("sort_order ASC").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
