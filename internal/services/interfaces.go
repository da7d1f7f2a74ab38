package services

import (
	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"

	"github.com/google/uuid"
)

// TokenServiceInterface defines the contract for bearer-token verification
type TokenServiceInterface interface {
	ValidateToken(tokenString string) (*models.IdentityClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// UserServiceInterface defines profile and identity resolution operations
type UserServiceInterface interface {
	ResolveIdentity(claims *models.IdentityClaims) (*models.User, error)
	GetProfile(userID uuid.UUID) (*models.User, error)
	UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error)
}

// AssetServiceInterface defines asset catalog operations
type AssetServiceInterface interface {
	ListAssets(userID uuid.UUID) (*dto.AssetListResponse, error)
	CreateAsset(userID uuid.UUID, req *dto.CreateAssetRequest) (*models.Asset, error)
	UpdateAsset(userID, assetID uuid.UUID, req *dto.UpdateAssetRequest) (*models.Asset, error)
	DeleteAsset(userID, assetID uuid.UUID, force bool) error
}

// AssetInputServiceInterface defines monthly snapshot operations
type AssetInputServiceInterface interface {
	ListByPeriod(userID uuid.UUID, period models.Period) (*dto.AssetInputListResponse, error)
	Save(userID uuid.UUID, req *dto.SaveAssetInputRequest) (*models.AssetInput, error)
	Delete(userID, inputID uuid.UUID) error
}

// AllocationServiceInterface defines the allocation view and target operations
type AllocationServiceInterface interface {
	GetAllocation(userID uuid.UUID, period models.Period) (*dto.AllocationResponse, error)
	ListTargets(userID uuid.UUID) (*dto.AllocationTargetListResponse, error)
	SaveTarget(userID uuid.UUID, category string, req *dto.UpdateAllocationTargetRequest) (*dto.AllocationTargetResponse, error)
}

// BudgetServiceInterface defines budget view and upsert operations
type BudgetServiceInterface interface {
	ListByPeriod(userID uuid.UUID, period models.Period) (*dto.BudgetListResponse, error)
	Save(userID uuid.UUID, category string, req *dto.UpdateBudgetRequest) (*models.Budget, error)
	AutoAdjust(userID uuid.UUID, period models.Period) (*dto.AutoAdjustResponse, error)
}

// CashflowServiceInterface defines income and expense operations
type CashflowServiceInterface interface {
	ListIncomings(userID uuid.UUID, period models.Period) (*dto.IncomingListResponse, error)
	CreateIncoming(userID uuid.UUID, req *dto.CreateIncomingRequest) (*models.IncomingItem, error)
	DeleteIncoming(userID, itemID uuid.UUID) error

	ListExpenses(userID uuid.UUID, period models.Period) (*dto.ExpenseListResponse, error)
	CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.ExpenseItem, error)
	UpdateExpense(userID, itemID uuid.UUID, req *dto.UpdateExpenseRequest) (*models.ExpenseItem, error)
	DeleteExpense(userID, itemID uuid.UUID) error
}

// SubcategoryServiceInterface defines expense subcategory operations
type SubcategoryServiceInterface interface {
	List(userID uuid.UUID) (*dto.SubcategoryListResponse, error)
	Create(userID uuid.UUID, req *dto.CreateSubcategoryRequest) (*models.ExpenseSubcategory, error)
	Update(userID, subcategoryID uuid.UUID, req *dto.UpdateSubcategoryRequest) (*models.ExpenseSubcategory, error)
	Delete(userID, subcategoryID uuid.UUID) error
}

// NetWorthServiceInterface defines history and projection operations
type NetWorthServiceInterface interface {
	History(userID uuid.UUID, months int) (*dto.NetWorthHistoryResponse, error)
	Projection(userID uuid.UUID) (*dto.NetWorthProjectionResponse, error)
}

// ExportServiceInterface defines the full-data export operation
type ExportServiceInterface interface {
	ExportData(userID uuid.UUID) (*dto.ExportResponse, error)
}

// HealthServiceInterface defines the liveness check operation
type HealthServiceInterface interface {
	Check() (*dto.HealthResponse, error)
}
