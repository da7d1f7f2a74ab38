package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category kinds
const (
	CategoryKindAsset   = "asset"
	CategoryKindExpense = "expense"
	CategoryKindIncome  = "income"
)

// Asset category codes
const (
	AssetCategoryStocks      = "STOCKS"
	AssetCategoryETF         = "ETF"
	AssetCategoryBonds       = "BONDS"
	AssetCategoryCrypto      = "CRYPTO"
	AssetCategoryRealEstate  = "REAL_ESTATE"
	AssetCategoryCash        = "CASH"
	AssetCategoryCommodities = "COMMODITIES"
	AssetCategoryOther       = "OTHER_ASSET"
)

// Expense category codes
const (
	ExpenseCategoryHousing       = "HOUSING"
	ExpenseCategoryGroceries     = "GROCERIES"
	ExpenseCategoryTransport     = "TRANSPORT"
	ExpenseCategoryUtilities     = "UTILITIES"
	ExpenseCategoryHealth        = "HEALTH"
	ExpenseCategoryLeisure       = "LEISURE"
	ExpenseCategorySubscriptions = "SUBSCRIPTIONS"
	ExpenseCategoryOther         = "OTHER_EXPENSE"
)

// Income category codes
const (
	IncomeCategorySalary    = "SALARY"
	IncomeCategoryBonus     = "BONUS"
	IncomeCategoryDividends = "DIVIDENDS"
	IncomeCategoryOther     = "OTHER_INCOME"
)

var ErrInvalidCategoryKind = errors.New("invalid category kind")

// Category is a read-only reference row: the catalog of category codes the
// handlers accept. Seeded at startup, never mutated through the API.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Kind      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_categories_kind_code" json:"kind"`
	Code      string    `gorm:"type:varchar(40);not null;uniqueIndex:idx_categories_kind_code" json:"code"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	switch c.Kind {
	case CategoryKindAsset, CategoryKindExpense, CategoryKindIncome:
	default:
		return ErrInvalidCategoryKind
	}
	if c.Code == "" {
		return errors.New("category code is required")
	}
	if c.Name == "" {
		return errors.New("category name is required")
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// AssetCategoryCodes returns all valid asset category codes
func AssetCategoryCodes() []string {
	return []string{
		AssetCategoryStocks,
		AssetCategoryETF,
		AssetCategoryBonds,
		AssetCategoryCrypto,
		AssetCategoryRealEstate,
		AssetCategoryCash,
		AssetCategoryCommodities,
		AssetCategoryOther,
	}
}

// ExpenseCategoryCodes returns all valid expense category codes
func ExpenseCategoryCodes() []string {
	return []string{
		ExpenseCategoryHousing,
		ExpenseCategoryGroceries,
		ExpenseCategoryTransport,
		ExpenseCategoryUtilities,
		ExpenseCategoryHealth,
		ExpenseCategoryLeisure,
		ExpenseCategorySubscriptions,
		ExpenseCategoryOther,
	}
}

// IncomeCategoryCodes returns all valid income category codes
func IncomeCategoryCodes() []string {
	return []string{
		IncomeCategorySalary,
		IncomeCategoryBonus,
		IncomeCategoryDividends,
		IncomeCategoryOther,
	}
}

// IsValidAssetCategory checks if the code is in the asset catalog
func IsValidAssetCategory(code string) bool {
	return containsCode(AssetCategoryCodes(), code)
}

// IsValidExpenseCategory checks if the code is in the expense catalog
func IsValidExpenseCategory(code string) bool {
	return containsCode(ExpenseCategoryCodes(), code)
}

// IsValidIncomeCategory checks if the code is in the income catalog
func IsValidIncomeCategory(code string) bool {
	return containsCode(IncomeCategoryCodes(), code)
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// DefaultCategories returns the seed rows for the category catalog.
func DefaultCategories() []Category {
	names := map[string]string{
		AssetCategoryStocks:          "Stocks",
		AssetCategoryETF:             "ETFs & Funds",
		AssetCategoryBonds:           "Bonds",
		AssetCategoryCrypto:          "Crypto",
		AssetCategoryRealEstate:      "Real Estate",
		AssetCategoryCash:            "Cash",
		AssetCategoryCommodities:     "Commodities",
		AssetCategoryOther:           "Other Assets",
		ExpenseCategoryHousing:       "Housing",
		ExpenseCategoryGroceries:     "Groceries",
		ExpenseCategoryTransport:     "Transport",
		ExpenseCategoryUtilities:     "Utilities",
		ExpenseCategoryHealth:        "Health",
		ExpenseCategoryLeisure:       "Leisure",
		ExpenseCategorySubscriptions: "Subscriptions",
		ExpenseCategoryOther:         "Other Expenses",
		IncomeCategorySalary:         "Salary",
		IncomeCategoryBonus:          "Bonus",
		IncomeCategoryDividends:      "Dividends",
		IncomeCategoryOther:          "Other Income",
	}

	var categories []Category
	for i, code := range AssetCategoryCodes() {
		categories = append(categories, Category{Kind: CategoryKindAsset, Code: code, Name: names[code], SortOrder: i})
	}
	for i, code := range ExpenseCategoryCodes() {
		categories = append(categories, Category{Kind: CategoryKindExpense, Code: code, Name: names[code], SortOrder: i})
	}
	for i, code := range IncomeCategoryCodes() {
		categories = append(categories, Category{Kind: CategoryKindIncome, Code: code, Name: names[code], SortOrder: i})
	}
	return categories
}
