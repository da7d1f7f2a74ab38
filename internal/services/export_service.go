package services

import (
	"fmt"
	"log/slog"
	"time"

	"networth-tracker/internal/dto"
	"networth-tracker/internal/repositories"

	"github.com/google/uuid"
)

type exportService struct {
	userRepo        repositories.UserRepositoryInterface
	assetRepo       repositories.AssetRepositoryInterface
	inputRepo       repositories.AssetInputRepositoryInterface
	incomingRepo    repositories.IncomingRepositoryInterface
	expenseRepo     repositories.ExpenseRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	targetRepo      repositories.AllocationTargetRepositoryInterface
	subcategoryRepo repositories.SubcategoryRepositoryInterface
}

// NewExportService creates a new export service
func NewExportService(
	userRepo repositories.UserRepositoryInterface,
	assetRepo repositories.AssetRepositoryInterface,
	inputRepo repositories.AssetInputRepositoryInterface,
	incomingRepo repositories.IncomingRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	targetRepo repositories.AllocationTargetRepositoryInterface,
	subcategoryRepo repositories.SubcategoryRepositoryInterface,
) ExportServiceInterface {
	return &exportService{
		userRepo:        userRepo,
		assetRepo:       assetRepo,
		inputRepo:       inputRepo,
		incomingRepo:    incomingRepo,
		expenseRepo:     expenseRepo,
		budgetRepo:      budgetRepo,
		targetRepo:      targetRepo,
		subcategoryRepo: subcategoryRepo,
	}
}

// ExportData bundles every record the user owns into one document
func (s *exportService) ExportData(userID uuid.UUID) (*dto.ExportResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user for export: %w", err)
	}

	assets, err := s.assetRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export assets: %w", err)
	}
	inputs, err := s.inputRepo.GetAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export asset inputs: %w", err)
	}
	incomings, err := s.incomingRepo.GetAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export incomings: %w", err)
	}
	expenses, err := s.expenseRepo.GetAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export expenses: %w", err)
	}
	budgets, err := s.budgetRepo.GetAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export budgets: %w", err)
	}
	targets, err := s.targetRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export allocation targets: %w", err)
	}
	subcategories, err := s.subcategoryRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export subcategories: %w", err)
	}

	slog.Info("data exported",
		"user_id", userID,
		"assets", len(assets),
		"asset_inputs", len(inputs),
		"incomings", len(incomings),
		"expenses", len(expenses))

	return &dto.ExportResponse{
		ExportedAt:    time.Now().UTC(),
		User:          user,
		Assets:        assets,
		AssetInputs:   inputs,
		Incomings:     incomings,
		Expenses:      expenses,
		Budgets:       budgets,
		Targets:       targets,
		Subcategories: subcategories,
	}, nil
}
