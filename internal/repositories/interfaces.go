package repositories

import (
	"networth-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodTotal is an aggregated snapshot total for one (year, month) period.
type PeriodTotal struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// Period returns the period key of the aggregate row
func (pt PeriodTotal) Period() models.Period {
	return models.Period{Year: pt.Year, Month: pt.Month}
}

// CategoryTotal is an aggregated amount for one category code.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetBySubject(subject string) (*models.User, error)
	Update(user *models.User) error
	UpdateProfile(userID uuid.UUID, fields map[string]interface{}) error
}

// AssetRepositoryInterface defines the contract for asset repository operations
type AssetRepositoryInterface interface {
	Create(asset *models.Asset) error
	GetByID(userID, assetID uuid.UUID) (*models.Asset, error)
	GetByUserID(userID uuid.UUID) ([]models.Asset, error)
	Update(asset *models.Asset) error
	CountInputs(assetID uuid.UUID) (int64, error)
	Delete(userID, assetID uuid.UUID) error
	DeleteWithInputs(userID, assetID uuid.UUID) error
}

// AssetInputRepositoryInterface defines the contract for snapshot operations
type AssetInputRepositoryInterface interface {
	Upsert(input *models.AssetInput) error
	GetByUserAndPeriod(userID uuid.UUID, period models.Period) ([]models.AssetInput, error)
	GetAllByUser(userID uuid.UUID) ([]models.AssetInput, error)
	GetByID(userID, inputID uuid.UUID) (*models.AssetInput, error)
	Delete(userID, inputID uuid.UUID) error
	TotalsByPeriodRange(userID uuid.UUID, from, to models.Period) ([]PeriodTotal, error)
	CountByPeriodKey(userID, assetID uuid.UUID, period models.Period) (int64, error)
}

// IncomingRepositoryInterface defines the contract for income item operations
type IncomingRepositoryInterface interface {
	Create(item *models.IncomingItem) error
	GetByUserAndPeriod(userID uuid.UUID, period models.Period) ([]models.IncomingItem, error)
	GetAllByUser(userID uuid.UUID) ([]models.IncomingItem, error)
	GetByID(userID, itemID uuid.UUID) (*models.IncomingItem, error)
	Update(item *models.IncomingItem) error
	Delete(userID, itemID uuid.UUID) error
}

// ExpenseRepositoryInterface defines the contract for expense item operations
type ExpenseRepositoryInterface interface {
	Create(item *models.ExpenseItem) error
	GetByUserAndPeriod(userID uuid.UUID, period models.Period) ([]models.ExpenseItem, error)
	GetAllByUser(userID uuid.UUID) ([]models.ExpenseItem, error)
	GetByID(userID, itemID uuid.UUID) (*models.ExpenseItem, error)
	Update(item *models.ExpenseItem) error
	Delete(userID, itemID uuid.UUID) error
	SumsByCategory(userID uuid.UUID, period models.Period) ([]CategoryTotal, error)
	SumsByCategoryRange(userID uuid.UUID, from, to models.Period) ([]CategoryTotal, error)
	CountBySubcategory(subcategoryID uuid.UUID) (int64, error)
}

// BudgetRepositoryInterface defines the contract for budget operations
type BudgetRepositoryInterface interface {
	Upsert(budget *models.Budget) error
	GetByUserAndPeriod(userID uuid.UUID, period models.Period) ([]models.Budget, error)
	GetAllByUser(userID uuid.UUID) ([]models.Budget, error)
	GetByKey(userID uuid.UUID, category string, period models.Period) (*models.Budget, error)
}

// AllocationTargetRepositoryInterface defines the contract for target operations
type AllocationTargetRepositoryInterface interface {
	Upsert(target *models.CategoryAllocationTarget) error
	GetByUser(userID uuid.UUID) ([]models.CategoryAllocationTarget, error)
	GetByKey(userID uuid.UUID, category string) (*models.CategoryAllocationTarget, error)
}

// SubcategoryRepositoryInterface defines the contract for subcategory operations
type SubcategoryRepositoryInterface interface {
	Create(subcategory *models.ExpenseSubcategory) error
	ListForUser(userID uuid.UUID) ([]models.ExpenseSubcategory, error)
	GetByID(id uuid.UUID) (*models.ExpenseSubcategory, error)
	Update(subcategory *models.ExpenseSubcategory) error
	DeleteIfUnreferenced(subcategoryID uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for catalog reads
type CategoryRepositoryInterface interface {
	ListByKind(kind string) ([]models.Category, error)
}
