package services

import (
	"fmt"
	"log/slog"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const autoAdjustLookback = 3

type budgetService struct {
	budgetRepo   repositories.BudgetRepositoryInterface
	expenseRepo  repositories.ExpenseRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:   budgetRepo,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// ListByPeriod returns the budget view for one period. Unlike the allocation
// view, every catalog category appears, zero-filled when the user has no
// budget or spend for it.
func (s *budgetService) ListByPeriod(userID uuid.UUID, period models.Period) (*dto.BudgetListResponse, error) {
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	catalog, err := s.categoryRepo.ListByKind(models.CategoryKindExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense catalog: %w", err)
	}

	budgets, err := s.budgetRepo.GetByUserAndPeriod(userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	budgetByCategory := make(map[string]models.Budget, len(budgets))
	for _, budget := range budgets {
		budgetByCategory[budget.Category] = budget
	}

	actuals, err := s.expenseRepo.SumsByCategory(userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}
	actualByCategory := make(map[string]decimal.Decimal, len(actuals))
	for _, actual := range actuals {
		actualByCategory[actual.Category] = actual.Total
	}

	totalBudget := decimal.Zero
	totalActual := decimal.Zero
	entries := make([]dto.BudgetEntry, 0, len(catalog))
	for _, category := range catalog {
		entry := dto.BudgetEntry{
			Category: category.Code,
			Name:     category.Name,
			Budget:   decimal.Zero,
			Actual:   decimal.Zero,
		}
		if budget, ok := budgetByCategory[category.Code]; ok {
			entry.Budget = budget.Amount
			entry.Calculated = budget.Calculated
		}
		if actual, ok := actualByCategory[category.Code]; ok {
			entry.Actual = actual
		}
		entry.Remaining = entry.Budget.Sub(entry.Actual)

		totalBudget = totalBudget.Add(entry.Budget)
		totalActual = totalActual.Add(entry.Actual)
		entries = append(entries, entry)
	}

	return &dto.BudgetListResponse{
		Year:        period.Year,
		Month:       period.Month,
		TotalBudget: totalBudget,
		TotalActual: totalActual,
		Entries:     entries,
	}, nil
}

// Save upserts a user-entered budget for (category, period)
func (s *budgetService) Save(userID uuid.UUID, category string, req *dto.UpdateBudgetRequest) (*models.Budget, error) {
	if !models.IsValidExpenseCategory(category) {
		return nil, fmt.Errorf("%w: unknown expense category", ErrValidation)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() {
		return nil, fmt.Errorf("%w: invalid amount", ErrValidation)
	}

	budget := &models.Budget{
		UserID:     userID,
		Category:   category,
		Year:       req.Year,
		Month:      req.Month,
		Amount:     amount,
		Calculated: false,
	}
	if err := s.budgetRepo.Upsert(budget); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	slog.Info("budget saved",
		"user_id", userID,
		"category", category,
		"period", budget.Period().String())

	return budget, nil
}

// AutoAdjust derives calculated budgets from the trailing three months'
// average spend. Only categories without any budget for the target period are
// touched; user-entered budgets always win over derived ones.
func (s *budgetService) AutoAdjust(userID uuid.UUID, period models.Period) (*dto.AutoAdjustResponse, error) {
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.budgetRepo.GetByUserAndPeriod(userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	hasBudget := make(map[string]bool, len(existing))
	for _, budget := range existing {
		hasBudget[budget.Category] = true
	}

	from := period.AddMonths(-autoAdjustLookback)
	to := period.Previous()
	averages, err := s.expenseRepo.SumsByCategoryRange(userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum trailing expenses: %w", err)
	}

	lookback := decimal.NewFromInt(autoAdjustLookback)
	adjusted := make([]dto.BudgetEntry, 0, len(averages))
	for _, sum := range averages {
		if hasBudget[sum.Category] {
			continue
		}

		amount := sum.Total.Div(lookback).Round(2)
		budget := &models.Budget{
			UserID:     userID,
			Category:   sum.Category,
			Year:       period.Year,
			Month:      period.Month,
			Amount:     amount,
			Calculated: true,
		}
		if err := s.budgetRepo.Upsert(budget); err != nil {
			return nil, fmt.Errorf("failed to save calculated budget: %w", err)
		}

		adjusted = append(adjusted, dto.BudgetEntry{
			Category:   sum.Category,
			Budget:     amount,
			Calculated: true,
		})
	}

	slog.Info("budgets auto-adjusted",
		"user_id", userID,
		"period", period.String(),
		"count", len(adjusted))

	return &dto.AutoAdjustResponse{
		Year:     period.Year,
		Month:    period.Month,
		Adjusted: adjusted,
	}, nil
}
