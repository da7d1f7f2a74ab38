package repositories

import (
	"errors"
	"fmt"

	"networth-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrBudgetNotFound = errors.New("budget not found")

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

// Upsert saves a budget for (user, category, year, month), overwriting the
// amount and calculated flag of an existing row for the same key.
func (r *budgetRepository) Upsert(budget *models.Budget) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "category"}, {Name: "year"}, {Name: "month"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "calculated", "updated_at"}),
	}).Create(budget).Error
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

// GetByUserAndPeriod retrieves all budgets for a user and period
func (r *budgetRepository) GetByUserAndPeriod(userID uuid.UUID, period models.Period) ([]models.Budget, error) {
	var budgets []models.Budget
	err := r.db.Where("user_id = ? AND year = ? AND month = ?", userID, period.Year, period.Month).
		Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetAllByUser retrieves every budget a user owns, ordered by period
func (r *budgetRepository) GetAllByUser(userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	err := r.db.Where("user_id = ?", userID).
		Order("year ASC, month ASC, category ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetByKey retrieves the budget for one (user, category, period) key
func (r *budgetRepository) GetByKey(userID uuid.UUID, category string, period models.Period) (*models.Budget, error) {
	var budget models.Budget
	err := r.db.Where("user_id = ? AND category = ? AND year = ? AND month = ?",
		userID, category, period.Year, period.Month).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}
