package services

import (
	"errors"
	"fmt"
	"log/slog"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrAssetHasInputs signals a delete attempt against an asset that still has
// snapshots; callers must pass force to cascade.
var ErrAssetHasInputs = errors.New("asset has recorded snapshots")

type assetService struct {
	assetRepo repositories.AssetRepositoryInterface
}

// NewAssetService creates a new asset service
func NewAssetService(assetRepo repositories.AssetRepositoryInterface) AssetServiceInterface {
	return &assetService{assetRepo: assetRepo}
}

// ListAssets returns all assets owned by the user
func (s *assetService) ListAssets(userID uuid.UUID) (*dto.AssetListResponse, error) {
	assets, err := s.assetRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return &dto.AssetListResponse{Assets: assets, Total: len(assets)}, nil
}

// CreateAsset adds an asset to the user's portfolio
func (s *assetService) CreateAsset(userID uuid.UUID, req *dto.CreateAssetRequest) (*models.Asset, error) {
	asset := &models.Asset{
		UserID:   userID,
		Name:     req.Name,
		Ticker:   req.Ticker,
		Category: req.Category,
	}

	if req.MarketCap != nil {
		marketCap, err := decimal.NewFromString(*req.MarketCap)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid market cap", ErrValidation)
		}
		asset.MarketCap = &marketCap
	}

	if err := s.assetRepo.Create(asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	slog.Info("asset created", "user_id", userID, "asset_id", asset.ID, "category", asset.Category)
	return asset, nil
}

// UpdateAsset applies the provided fields to an asset the user owns
func (s *assetService) UpdateAsset(userID, assetID uuid.UUID, req *dto.UpdateAssetRequest) (*models.Asset, error) {
	asset, err := s.assetRepo.GetByID(userID, assetID)
	if err != nil {
		if errors.Is(err, repositories.ErrAssetNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Ticker != nil {
		asset.Ticker = req.Ticker
	}
	if req.Category != nil {
		asset.Category = *req.Category
	}
	if req.MarketCap != nil {
		marketCap, err := decimal.NewFromString(*req.MarketCap)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid market cap", ErrValidation)
		}
		asset.MarketCap = &marketCap
	}

	if err := s.assetRepo.Update(asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}
	return asset, nil
}

// DeleteAsset removes an asset. Without force the delete is refused while
// snapshots still reference the asset; with force the snapshots go too, in
// one transaction.
func (s *assetService) DeleteAsset(userID, assetID uuid.UUID, force bool) error {
	// Ownership first: a foreign asset must look absent, never conflicted.
	if _, err := s.assetRepo.GetByID(userID, assetID); err != nil {
		if errors.Is(err, repositories.ErrAssetNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get asset: %w", err)
	}

	count, err := s.assetRepo.CountInputs(assetID)
	if err != nil {
		return fmt.Errorf("failed to count asset snapshots: %w", err)
	}

	if count > 0 {
		if !force {
			return ErrAssetHasInputs
		}
		if err := s.assetRepo.DeleteWithInputs(userID, assetID); err != nil {
			if errors.Is(err, repositories.ErrAssetNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to delete asset with snapshots: %w", err)
		}
		slog.Info("asset deleted with snapshots", "user_id", userID, "asset_id", assetID, "snapshots", count)
		return nil
	}

	if err := s.assetRepo.Delete(userID, assetID); err != nil {
		if errors.Is(err, repositories.ErrAssetNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	slog.Info("asset deleted", "user_id", userID, "asset_id", assetID)
	return nil
}
