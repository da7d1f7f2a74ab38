package services

import (
	"fmt"
	"sort"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

type allocationService struct {
	inputRepo  repositories.AssetInputRepositoryInterface
	targetRepo repositories.AllocationTargetRepositoryInterface
}

// NewAllocationService creates a new allocation service
func NewAllocationService(
	inputRepo repositories.AssetInputRepositoryInterface,
	targetRepo repositories.AllocationTargetRepositoryInterface,
) AllocationServiceInterface {
	return &allocationService{
		inputRepo:  inputRepo,
		targetRepo: targetRepo,
	}
}

// GetAllocation aggregates the user's snapshots for a period into the
// per-category allocation view. Categories with no current-period snapshot
// are omitted rather than zero-filled; a target without holdings does not
// surface a row. Percentages are on the 0-100 scale and delta is
// current - target, positive when the category is over-allocated.
func (s *allocationService) GetAllocation(userID uuid.UUID, period models.Period) (*dto.AllocationResponse, error) {
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	current, err := s.inputRepo.GetByUserAndPeriod(userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get current snapshots: %w", err)
	}

	previous, err := s.inputRepo.GetByUserAndPeriod(userID, period.Previous())
	if err != nil {
		return nil, fmt.Errorf("failed to get previous snapshots: %w", err)
	}

	targets, err := s.targetRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get allocation targets: %w", err)
	}

	targetByCategory := make(map[string]models.Fraction, len(targets))
	for _, target := range targets {
		targetByCategory[target.Category] = target.Target
	}

	currentByCategory := groupByCategory(current)
	previousTotals := sumByCategory(previous)

	currentTotal := decimal.Zero
	for _, inputs := range currentByCategory {
		for _, input := range inputs {
			currentTotal = currentTotal.Add(input.Value)
		}
	}
	previousTotal := decimal.Zero
	for _, total := range previousTotals {
		previousTotal = previousTotal.Add(total)
	}

	categories := make([]dto.AllocationCategory, 0, len(currentByCategory))
	for category, inputs := range currentByCategory {
		currentValue := decimal.Zero
		assets := make([]dto.AllocationAssetEntry, 0, len(inputs))
		for _, input := range inputs {
			currentValue = currentValue.Add(input.Value)
			assets = append(assets, dto.AllocationAssetEntry{
				AssetID: input.AssetID,
				Name:    input.Asset.Name,
				Ticker:  input.Asset.Ticker,
				Value:   input.Value,
			})
		}

		// A category without a stored target is treated as target zero,
		// making the whole current value surplus.
		target := targetByCategory[category]

		currentPct := decimal.Zero
		if currentTotal.IsPositive() {
			currentPct = currentValue.Div(currentTotal).Mul(oneHundred)
		}
		targetValue := target.Of(currentTotal)

		categories = append(categories, dto.AllocationCategory{
			Category:          category,
			CurrentValue:      currentValue,
			PreviousValue:     previousTotals[category],
			CurrentPercentage: currentPct,
			TargetPercentage:  target.Percent(),
			TargetValue:       targetValue,
			Delta:             currentValue.Sub(targetValue),
			DeltaPercentage:   currentPct.Sub(target.Percent()),
			Assets:            assets,
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	return &dto.AllocationResponse{
		Year:          period.Year,
		Month:         period.Month,
		CurrentTotal:  currentTotal,
		PreviousTotal: previousTotal,
		Categories:    categories,
	}, nil
}

// ListTargets returns the user's stored targets on the 0-100 scale
func (s *allocationService) ListTargets(userID uuid.UUID) (*dto.AllocationTargetListResponse, error) {
	targets, err := s.targetRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocation targets: %w", err)
	}

	response := &dto.AllocationTargetListResponse{
		Targets: make([]dto.AllocationTargetResponse, 0, len(targets)),
	}
	for i := range targets {
		response.Targets = append(response.Targets, dto.NewAllocationTargetResponse(&targets[i]))
	}
	return response, nil
}

// SaveTarget upserts the target share for one asset category. The request
// carries a 0-100 percentage; it is converted to the 0-1 fraction exactly
// once here.
func (s *allocationService) SaveTarget(userID uuid.UUID, category string, req *dto.UpdateAllocationTargetRequest) (*dto.AllocationTargetResponse, error) {
	if !models.IsValidAssetCategory(category) {
		return nil, fmt.Errorf("%w: unknown asset category", ErrValidation)
	}

	pct, err := decimal.NewFromString(req.TargetPct)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid target percentage", ErrValidation)
	}

	fraction, err := models.FractionFromPercent(pct)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	target := &models.CategoryAllocationTarget{
		UserID:   userID,
		Category: category,
		Target:   fraction,
	}
	if err := s.targetRepo.Upsert(target); err != nil {
		return nil, fmt.Errorf("failed to save allocation target: %w", err)
	}

	response := dto.NewAllocationTargetResponse(target)
	return &response, nil
}

func groupByCategory(inputs []models.AssetInput) map[string][]models.AssetInput {
	grouped := make(map[string][]models.AssetInput)
	for _, input := range inputs {
		grouped[input.Asset.Category] = append(grouped[input.Asset.Category], input)
	}
	return grouped
}

func sumByCategory(inputs []models.AssetInput) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, input := range inputs {
		sums[input.Asset.Category] = sums[input.Asset.Category].Add(input.Value)
	}
	return sums
}
