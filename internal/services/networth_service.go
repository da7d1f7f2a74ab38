package services

import (
	"fmt"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// DefaultHistoryMonths is the trailing window for the history view.
	DefaultHistoryMonths = 6
	// MaxHistoryMonths caps the window so a single request cannot scan
	// unbounded history.
	MaxHistoryMonths = 60

	projectionLookback = 4
	projectionHorizon  = 6
)

type netWorthService struct {
	inputRepo repositories.AssetInputRepositoryInterface
}

// NewNetWorthService creates a new net worth service
func NewNetWorthService(inputRepo repositories.AssetInputRepositoryInterface) NetWorthServiceInterface {
	return &netWorthService{inputRepo: inputRepo}
}

// History returns per-period snapshot totals over the trailing window,
// oldest first. Periods without snapshots are absent, not zero-filled.
func (s *netWorthService) History(userID uuid.UUID, months int) (*dto.NetWorthHistoryResponse, error) {
	if months <= 0 {
		months = DefaultHistoryMonths
	}
	if months > MaxHistoryMonths {
		months = MaxHistoryMonths
	}

	to := models.CurrentPeriod()
	from := to.AddMonths(-(months - 1))

	totals, err := s.inputRepo.TotalsByPeriodRange(userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get net worth history: %w", err)
	}

	points := make([]dto.NetWorthPoint, 0, len(totals))
	for _, total := range totals {
		period := total.Period()
		points = append(points, dto.NetWorthPoint{
			Year:  period.Year,
			Month: period.Month,
			Label: period.Label(),
			Total: total.Total,
		})
	}

	return &dto.NetWorthHistoryResponse{Months: months, Points: points}, nil
}

// Projection extrapolates the current total forward using the mean
// month-over-month delta of the trailing months. With fewer than two
// historical totals there is no delta to average and the projection is empty.
func (s *netWorthService) Projection(userID uuid.UUID) (*dto.NetWorthProjectionResponse, error) {
	to := models.CurrentPeriod()
	from := to.AddMonths(-(projectionLookback - 1))

	totals, err := s.inputRepo.TotalsByPeriodRange(userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get projection basis: %w", err)
	}

	if len(totals) < 2 {
		return &dto.NetWorthProjectionResponse{
			AverageGrowth: decimal.Zero,
			Points:        []dto.ProjectionPoint{},
		}, nil
	}

	// Simple mean of the deltas between consecutive data points.
	deltaSum := decimal.Zero
	for i := 1; i < len(totals); i++ {
		deltaSum = deltaSum.Add(totals[i].Total.Sub(totals[i-1].Total))
	}
	avgGrowth := deltaSum.Div(decimal.NewFromInt(int64(len(totals) - 1)))

	currentTotal := totals[len(totals)-1].Total
	basePeriod := totals[len(totals)-1].Period()

	points := make([]dto.ProjectionPoint, 0, projectionHorizon+1)
	for i := 0; i <= projectionHorizon; i++ {
		period := basePeriod.AddMonths(i)
		point := dto.ProjectionPoint{
			Year:      period.Year,
			Month:     period.Month,
			Label:     period.Label(),
			Projected: currentTotal.Add(avgGrowth.Mul(decimal.NewFromInt(int64(i)))),
		}
		if i == 0 {
			actual := currentTotal
			point.Actual = &actual
		}
		points = append(points, point)
	}

	return &dto.NetWorthProjectionResponse{
		AverageGrowth: avgGrowth,
		Points:        points,
	}, nil
}
