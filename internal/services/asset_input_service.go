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

type assetInputService struct {
	inputRepo repositories.AssetInputRepositoryInterface
	assetRepo repositories.AssetRepositoryInterface
}

// NewAssetInputService creates a new asset input service
func NewAssetInputService(
	inputRepo repositories.AssetInputRepositoryInterface,
	assetRepo repositories.AssetRepositoryInterface,
) AssetInputServiceInterface {
	return &assetInputService{
		inputRepo: inputRepo,
		assetRepo: assetRepo,
	}
}

// ListByPeriod returns the user's snapshots for one period with their total
func (s *assetInputService) ListByPeriod(userID uuid.UUID, period models.Period) (*dto.AssetInputListResponse, error) {
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	inputs, err := s.inputRepo.GetByUserAndPeriod(userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset inputs: %w", err)
	}

	total := decimal.Zero
	for _, input := range inputs {
		total = total.Add(input.Value)
	}

	return &dto.AssetInputListResponse{
		Inputs: inputs,
		Year:   period.Year,
		Month:  period.Month,
		Total:  total,
	}, nil
}

// Save upserts the snapshot for (asset, year, month). The asset must belong
// to the caller; a snapshot against someone else's asset reads as absence.
func (s *assetInputService) Save(userID uuid.UUID, req *dto.SaveAssetInputRequest) (*models.AssetInput, error) {
	assetID, err := uuid.Parse(req.AssetID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid asset id", ErrValidation)
	}

	if _, err := s.assetRepo.GetByID(userID, assetID); err != nil {
		if errors.Is(err, repositories.ErrAssetNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify asset: %w", err)
	}

	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid value", ErrValidation)
	}

	input := &models.AssetInput{
		UserID:  userID,
		AssetID: assetID,
		Year:    req.Year,
		Month:   req.Month,
		Value:   value,
		Notes:   req.Notes,
	}

	if err := s.inputRepo.Upsert(input); err != nil {
		return nil, fmt.Errorf("failed to save asset input: %w", err)
	}

	slog.Info("asset input saved",
		"user_id", userID,
		"asset_id", assetID,
		"period", input.Period().String())

	return input, nil
}

// Delete removes a snapshot the user owns
func (s *assetInputService) Delete(userID, inputID uuid.UUID) error {
	if err := s.inputRepo.Delete(userID, inputID); err != nil {
		if errors.Is(err, repositories.ErrAssetInputNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete asset input: %w", err)
	}
	return nil
}
