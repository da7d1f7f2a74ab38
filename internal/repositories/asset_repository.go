package repositories

import (
	"errors"
	"fmt"

	"networth-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAssetNotFound = errors.New("asset not found")

// assetRepository implements AssetRepositoryInterface
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) AssetRepositoryInterface {
	return &assetRepository{db: db}
}

// Create creates a new asset
func (r *assetRepository) Create(asset *models.Asset) error {
	if err := r.db.Create(asset).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

// GetByID retrieves an asset scoped to its owner. A non-owned asset is
// indistinguishable from an absent one.
func (r *assetRepository) GetByID(userID, assetID uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	if err := r.db.Where("id = ? AND user_id = ?", assetID, userID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &asset, nil
}

// GetByUserID retrieves all assets for a user
func (r *assetRepository) GetByUserID(userID uuid.UUID) ([]models.Asset, error) {
	var assets []models.Asset
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to get assets for user: %w", err)
	}
	return assets, nil
}

// Update saves the full asset row
func (r *assetRepository) Update(asset *models.Asset) error {
	if err := r.db.Save(asset).Error; err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return nil
}

// CountInputs counts snapshot rows referencing the asset
func (r *assetRepository) CountInputs(assetID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.AssetInput{}).Where("asset_id = ?", assetID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count asset inputs: %w", err)
	}
	return count, nil
}

// Delete hard-deletes an asset owned by the user
func (r *assetRepository) Delete(userID, assetID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", assetID, userID).Delete(&models.Asset{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAssetNotFound
	}
	return nil
}

// DeleteWithInputs removes the asset and its snapshot history in a single
// transaction so a force-delete cannot strand orphan snapshots.
func (r *assetRepository) DeleteWithInputs(userID, assetID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var asset models.Asset
		if err := tx.Where("id = ? AND user_id = ?", assetID, userID).First(&asset).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssetNotFound
			}
			return fmt.Errorf("failed to get asset: %w", err)
		}

		if err := tx.Where("asset_id = ?", assetID).Delete(&models.AssetInput{}).Error; err != nil {
			return fmt.Errorf("failed to delete asset inputs: %w", err)
		}

		if err := tx.Delete(&asset).Error; err != nil {
			return fmt.Errorf("failed to delete asset: %w", err)
		}

		return nil
	})
}
