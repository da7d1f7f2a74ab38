package repositories

import (
	"errors"
	"fmt"

	"networth-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAllocationTargetNotFound = errors.New("allocation target not found")

// allocationTargetRepository implements AllocationTargetRepositoryInterface
type allocationTargetRepository struct {
	db *gorm.DB
}

// NewAllocationTargetRepository creates a new allocation target repository
func NewAllocationTargetRepository(db *gorm.DB) AllocationTargetRepositoryInterface {
	return &allocationTargetRepository{db: db}
}

// Upsert saves a target for (user, category), replacing the previous fraction
func (r *allocationTargetRepository) Upsert(target *models.CategoryAllocationTarget) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"target", "updated_at"}),
	}).Create(target).Error
	if err != nil {
		return fmt.Errorf("failed to upsert allocation target: %w", err)
	}
	return nil
}

// GetByUser retrieves all allocation targets for a user
func (r *allocationTargetRepository) GetByUser(userID uuid.UUID) ([]models.CategoryAllocationTarget, error) {
	var targets []models.CategoryAllocationTarget
	err := r.db.Where("user_id = ?", userID).Order("category ASC").Find(&targets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get allocation targets: %w", err)
	}
	return targets, nil
}

// GetByKey retrieves the target for one (user, category) key
func (r *allocationTargetRepository) GetByKey(userID uuid.UUID, category string) (*models.CategoryAllocationTarget, error) {
	var target models.CategoryAllocationTarget
	err := r.db.Where("user_id = ? AND category = ?", userID, category).First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAllocationTargetNotFound
		}
		return nil, fmt.Errorf("failed to get allocation target: %w", err)
	}
	return &target, nil
}
