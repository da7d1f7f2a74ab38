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

type cashflowService struct {
	incomingRepo    repositories.IncomingRepositoryInterface
	expenseRepo     repositories.ExpenseRepositoryInterface
	subcategoryRepo repositories.SubcategoryRepositoryInterface
}

// NewCashflowService creates a new cashflow service
func NewCashflowService(
	incomingRepo repositories.IncomingRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	subcategoryRepo repositories.SubcategoryRepositoryInterface,
) CashflowServiceInterface {
	return &cashflowService{
		incomingRepo:    incomingRepo,
		expenseRepo:     expenseRepo,
		subcategoryRepo: subcategoryRepo,
	}
}

// ListIncomings returns the income entries of one period with their total
func (s *cashflowService) ListIncomings(userID uuid.UUID, period models.Period) (*dto.IncomingListResponse, error) {
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	items, err := s.incomingRepo.GetByUserAndPeriod(userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomings: %w", err)
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}

	return &dto.IncomingListResponse{
		Incomings: items,
		Year:      period.Year,
		Month:     period.Month,
		Total:     total,
	}, nil
}

// CreateIncoming adds an income entry
func (s *cashflowService) CreateIncoming(userID uuid.UUID, req *dto.CreateIncomingRequest) (*models.IncomingItem, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount", ErrValidation)
	}

	item := &models.IncomingItem{
		UserID:      userID,
		Category:    req.Category,
		Year:        req.Year,
		Month:       req.Month,
		Amount:      amount,
		Description: req.Description,
	}
	if err := s.incomingRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create incoming: %w", err)
	}

	slog.Info("incoming created", "user_id", userID, "category", item.Category, "period", item.Period().String())
	return item, nil
}

// DeleteIncoming removes an income entry the user owns
func (s *cashflowService) DeleteIncoming(userID, itemID uuid.UUID) error {
	if err := s.incomingRepo.Delete(userID, itemID); err != nil {
		if errors.Is(err, repositories.ErrIncomingNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete incoming: %w", err)
	}
	return nil
}

// ListExpenses returns the expense entries of one period with their total
func (s *cashflowService) ListExpenses(userID uuid.UUID, period models.Period) (*dto.ExpenseListResponse, error) {
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	items, err := s.expenseRepo.GetByUserAndPeriod(userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}

	return &dto.ExpenseListResponse{
		Expenses: items,
		Year:     period.Year,
		Month:    period.Month,
		Total:    total,
	}, nil
}

// CreateExpense adds an expense entry, resolving an optional subcategory.
// The subcategory must be a system default or one of the caller's own rows.
func (s *cashflowService) CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.ExpenseItem, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount", ErrValidation)
	}

	item := &models.ExpenseItem{
		UserID:      userID,
		Category:    req.Category,
		Year:        req.Year,
		Month:       req.Month,
		Amount:      amount,
		Description: req.Description,
	}

	if req.SubcategoryID != nil {
		subcategoryID, err := s.resolveSubcategory(userID, *req.SubcategoryID, req.Category)
		if err != nil {
			return nil, err
		}
		item.SubcategoryID = subcategoryID
	}

	if err := s.expenseRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	slog.Info("expense created", "user_id", userID, "category", item.Category, "period", item.Period().String())
	return item, nil
}

// UpdateExpense applies the provided fields to an expense the user owns
func (s *cashflowService) UpdateExpense(userID, itemID uuid.UUID, req *dto.UpdateExpenseRequest) (*models.ExpenseItem, error) {
	item, err := s.expenseRepo.GetByID(userID, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid amount", ErrValidation)
		}
		item.Amount = amount
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.SubcategoryID != nil {
		subcategoryID, err := s.resolveSubcategory(userID, *req.SubcategoryID, item.Category)
		if err != nil {
			return nil, err
		}
		item.SubcategoryID = subcategoryID
	}

	if err := s.expenseRepo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return item, nil
}

// DeleteExpense removes an expense entry the user owns
func (s *cashflowService) DeleteExpense(userID, itemID uuid.UUID) error {
	if err := s.expenseRepo.Delete(userID, itemID); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

func (s *cashflowService) resolveSubcategory(userID uuid.UUID, rawID, category string) (*uuid.UUID, error) {
	subcategoryID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subcategory id", ErrValidation)
	}

	subcategory, err := s.subcategoryRepo.GetByID(subcategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrSubcategoryNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subcategory: %w", err)
	}

	if !subcategory.IsDefault() && !subcategory.OwnedBy(userID) {
		return nil, ErrNotFound
	}
	if subcategory.Category != category {
		return nil, fmt.Errorf("%w: subcategory belongs to a different category", ErrValidation)
	}

	return &subcategoryID, nil
}
