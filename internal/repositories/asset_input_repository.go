package repositories

import (
	"errors"
	"fmt"

	"networth-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAssetInputNotFound = errors.New("asset input not found")

// assetInputRepository implements AssetInputRepositoryInterface
type assetInputRepository struct {
	db *gorm.DB
}

// NewAssetInputRepository creates a new asset input repository
func NewAssetInputRepository(db *gorm.DB) AssetInputRepositoryInterface {
	return &assetInputRepository{db: db}
}

// Upsert saves a snapshot for (user, asset, year, month). An existing row for
// the key gets its value fields overwritten in the same statement, so the
// operation is atomic from the caller's perspective.
func (r *assetInputRepository) Upsert(input *models.AssetInput) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "asset_id"}, {Name: "year"}, {Name: "month"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"value", "notes", "updated_at"}),
	}).Create(input).Error
	if err != nil {
		return fmt.Errorf("failed to upsert asset input: %w", err)
	}
	return nil
}

// GetByUserAndPeriod retrieves all snapshots for a user and period, with the
// owning asset preloaded for category grouping.
func (r *assetInputRepository) GetByUserAndPeriod(userID uuid.UUID, period models.Period) ([]models.AssetInput, error) {
	var inputs []models.AssetInput
	err := r.db.Preload("Asset").
		Where("user_id = ? AND year = ? AND month = ?", userID, period.Year, period.Month).
		Order("created_at ASC").
		Find(&inputs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get asset inputs: %w", err)
	}
	return inputs, nil
}

// GetAllByUser retrieves every snapshot a user owns, ordered by period
func (r *assetInputRepository) GetAllByUser(userID uuid.UUID) ([]models.AssetInput, error) {
	var inputs []models.AssetInput
	err := r.db.Where("user_id = ?", userID).
		Order("year ASC, month ASC").
		Find(&inputs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get asset inputs: %w", err)
	}
	return inputs, nil
}

// GetByID retrieves a snapshot scoped to its owner
func (r *assetInputRepository) GetByID(userID, inputID uuid.UUID) (*models.AssetInput, error) {
	var input models.AssetInput
	if err := r.db.Where("id = ? AND user_id = ?", inputID, userID).First(&input).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetInputNotFound
		}
		return nil, fmt.Errorf("failed to get asset input: %w", err)
	}
	return &input, nil
}

// Delete removes a snapshot owned by the user
func (r *assetInputRepository) Delete(userID, inputID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", inputID, userID).Delete(&models.AssetInput{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset input: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAssetInputNotFound
	}
	return nil
}

// TotalsByPeriodRange sums snapshot values per (year, month) over the
// inclusive period range. Periods without rows are simply absent from the
// result; callers decide whether that matters.
func (r *assetInputRepository) TotalsByPeriodRange(userID uuid.UUID, from, to models.Period) ([]PeriodTotal, error) {
	var totals []PeriodTotal
	err := r.db.Model(&models.AssetInput{}).
		Select("year, month, SUM(value) AS total").
		Where("user_id = ? AND (year * 12 + month - 1) BETWEEN ? AND ?", userID, from.Index(), to.Index()).
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum asset inputs by period: %w", err)
	}
	return totals, nil
}

// CountByPeriodKey counts rows for a single upsert key; used by tests and the
// idempotency guarantees around saves.
func (r *assetInputRepository) CountByPeriodKey(userID, assetID uuid.UUID, period models.Period) (int64, error) {
	var count int64
	err := r.db.Model(&models.AssetInput{}).
		Where("user_id = ? AND asset_id = ? AND year = ? AND month = ?", userID, assetID, period.Year, period.Month).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count asset inputs: %w", err)
	}
	return count, nil
}
