package repositories

import (
	"errors"
	"fmt"

	"networth-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrIncomingNotFound = errors.New("incoming item not found")
	ErrExpenseNotFound  = errors.New("expense item not found")
)

// incomingRepository implements IncomingRepositoryInterface
type incomingRepository struct {
	db *gorm.DB
}

// NewIncomingRepository creates a new incoming repository
func NewIncomingRepository(db *gorm.DB) IncomingRepositoryInterface {
	return &incomingRepository{db: db}
}

// Create adds an income entry
func (r *incomingRepository) Create(item *models.IncomingItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create incoming item: %w", err)
	}
	return nil
}

// GetByUserAndPeriod retrieves income entries for a user and period
func (r *incomingRepository) GetByUserAndPeriod(userID uuid.UUID, period models.Period) ([]models.IncomingItem, error) {
	var items []models.IncomingItem
	err := r.db.Where("user_id = ? AND year = ? AND month = ?", userID, period.Year, period.Month).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get incoming items: %w", err)
	}
	return items, nil
}

// GetAllByUser retrieves every income entry a user owns, ordered by period
func (r *incomingRepository) GetAllByUser(userID uuid.UUID) ([]models.IncomingItem, error) {
	var items []models.IncomingItem
	err := r.db.Where("user_id = ?", userID).
		Order("year ASC, month ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get incoming items: %w", err)
	}
	return items, nil
}

// GetByID retrieves an income entry scoped to its owner
func (r *incomingRepository) GetByID(userID, itemID uuid.UUID) (*models.IncomingItem, error) {
	var item models.IncomingItem
	if err := r.db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncomingNotFound
		}
		return nil, fmt.Errorf("failed to get incoming item: %w", err)
	}
	return &item, nil
}

// Update persists changes to an income entry
func (r *incomingRepository) Update(item *models.IncomingItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update incoming item: %w", err)
	}
	return nil
}

// Delete removes an income entry owned by the user
func (r *incomingRepository) Delete(userID, itemID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.IncomingItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete incoming item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrIncomingNotFound
	}
	return nil
}

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{db: db}
}

// Create adds an expense entry
func (r *expenseRepository) Create(item *models.ExpenseItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create expense item: %w", err)
	}
	return nil
}

// GetByUserAndPeriod retrieves expense entries for a user and period
func (r *expenseRepository) GetByUserAndPeriod(userID uuid.UUID, period models.Period) ([]models.ExpenseItem, error) {
	var items []models.ExpenseItem
	err := r.db.Where("user_id = ? AND year = ? AND month = ?", userID, period.Year, period.Month).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get expense items: %w", err)
	}
	return items, nil
}

// GetAllByUser retrieves every expense entry a user owns, ordered by period
func (r *expenseRepository) GetAllByUser(userID uuid.UUID) ([]models.ExpenseItem, error) {
	var items []models.ExpenseItem
	err := r.db.Where("user_id = ?", userID).
		Order("year ASC, month ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get expense items: %w", err)
	}
	return items, nil
}

// GetByID retrieves an expense entry scoped to its owner
func (r *expenseRepository) GetByID(userID, itemID uuid.UUID) (*models.ExpenseItem, error) {
	var item models.ExpenseItem
	if err := r.db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense item: %w", err)
	}
	return &item, nil
}

// Update persists changes to an expense entry
func (r *expenseRepository) Update(item *models.ExpenseItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update expense item: %w", err)
	}
	return nil
}

// Delete removes an expense entry owned by the user
func (r *expenseRepository) Delete(userID, itemID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.ExpenseItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// SumsByCategory totals expenses per category for a user and period
func (r *expenseRepository) SumsByCategory(userID uuid.UUID, period models.Period) ([]CategoryTotal, error) {
	var totals []CategoryTotal
	err := r.db.Model(&models.ExpenseItem{}).
		Select("category, SUM(amount) AS total").
		Where("user_id = ? AND year = ? AND month = ?", userID, period.Year, period.Month).
		Group("category").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}
	return totals, nil
}

// SumsByCategoryRange totals expenses per category over an inclusive period
// range, feeding the budget auto-adjustment averages.
func (r *expenseRepository) SumsByCategoryRange(userID uuid.UUID, from, to models.Period) ([]CategoryTotal, error) {
	var totals []CategoryTotal
	err := r.db.Model(&models.ExpenseItem{}).
		Select("category, SUM(amount) AS total").
		Where("user_id = ? AND (year * 12 + month - 1) BETWEEN ? AND ?", userID, from.Index(), to.Index()).
		Group("category").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category range: %w", err)
	}
	return totals, nil
}

// CountBySubcategory counts expense rows referencing a subcategory
func (r *expenseRepository) CountBySubcategory(subcategoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ExpenseItem{}).
		Where("subcategory_id = ?", subcategoryID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count expenses by subcategory: %w", err)
	}
	return count, nil
}
