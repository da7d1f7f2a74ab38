package repositories

import (
	"testing"

	"networth-tracker/internal/database"
	"networth-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CashflowRepositoryTestSuite struct {
	suite.Suite
	db       *database.DB
	incoming IncomingRepositoryInterface
	expenses ExpenseRepositoryInterface
	user     *models.User
}

func (s *CashflowRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.incoming = NewIncomingRepository(s.db.DB)
	s.expenses = NewExpenseRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db)
}

func (s *CashflowRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CashflowRepositoryTestSuite) createExpense(category string, year, month int, amount int64) *models.ExpenseItem {
	item := &models.ExpenseItem{
		UserID:   s.user.ID,
		Category: category,
		Year:     year,
		Month:    month,
		Amount:   decimal.NewFromInt(amount),
	}
	s.Require().NoError(s.expenses.Create(item))
	return item
}

func (s *CashflowRepositoryTestSuite) TestIncomingCreateAndList() {
	item := &models.IncomingItem{
		UserID:   s.user.ID,
		Category: models.IncomeCategorySalary,
		Year:     2026,
		Month:    8,
		Amount:   decimal.NewFromInt(4200),
	}
	s.Require().NoError(s.incoming.Create(item))

	items, err := s.incoming.GetByUserAndPeriod(s.user.ID, models.Period{Year: 2026, Month: 8})
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(models.IncomeCategorySalary, items[0].Category)
}

func (s *CashflowRepositoryTestSuite) TestIncomingDeleteScopedToOwner() {
	item := &models.IncomingItem{
		UserID:   s.user.ID,
		Category: models.IncomeCategoryBonus,
		Year:     2026,
		Month:    8,
		Amount:   decimal.NewFromInt(500),
	}
	s.Require().NoError(s.incoming.Create(item))

	other := database.CreateTestUser(s.T(), s.db)
	s.ErrorIs(s.incoming.Delete(other.ID, item.ID), ErrIncomingNotFound)
	s.Require().NoError(s.incoming.Delete(s.user.ID, item.ID))
}

func (s *CashflowRepositoryTestSuite) TestExpenseUpdate() {
	item := s.createExpense(models.ExpenseCategoryGroceries, 2026, 8, 80)

	item.Amount = decimal.NewFromInt(95)
	s.Require().NoError(s.expenses.Update(item))

	found, err := s.expenses.GetByID(s.user.ID, item.ID)
	s.Require().NoError(err)
	s.True(found.Amount.Equal(decimal.NewFromInt(95)))
}

func (s *CashflowRepositoryTestSuite) TestSumsByCategory() {
	s.createExpense(models.ExpenseCategoryGroceries, 2026, 8, 100)
	s.createExpense(models.ExpenseCategoryGroceries, 2026, 8, 50)
	s.createExpense(models.ExpenseCategoryHousing, 2026, 8, 1200)
	s.createExpense(models.ExpenseCategoryHousing, 2026, 7, 1200)

	totals, err := s.expenses.SumsByCategory(s.user.ID, models.Period{Year: 2026, Month: 8})
	s.Require().NoError(err)
	s.Require().Len(totals, 2)

	byCategory := map[string]decimal.Decimal{}
	for _, t := range totals {
		byCategory[t.Category] = t.Total
	}
	s.True(byCategory[models.ExpenseCategoryGroceries].Equal(decimal.NewFromInt(150)))
	s.True(byCategory[models.ExpenseCategoryHousing].Equal(decimal.NewFromInt(1200)))
}

func (s *CashflowRepositoryTestSuite) TestSumsByCategoryRangeSpansYearBoundary() {
	s.createExpense(models.ExpenseCategoryTransport, 2025, 12, 60)
	s.createExpense(models.ExpenseCategoryTransport, 2026, 1, 40)
	s.createExpense(models.ExpenseCategoryTransport, 2026, 3, 999)

	totals, err := s.expenses.SumsByCategoryRange(s.user.ID,
		models.Period{Year: 2025, Month: 12}, models.Period{Year: 2026, Month: 2})
	s.Require().NoError(err)
	s.Require().Len(totals, 1)
	s.True(totals[0].Total.Equal(decimal.NewFromInt(100)))
}

func (s *CashflowRepositoryTestSuite) TestCountBySubcategory() {
	sub := &models.ExpenseSubcategory{
		UserID:   &s.user.ID,
		Category: models.ExpenseCategoryHousing,
		Name:     "Garden",
	}
	s.Require().NoError(s.db.Create(sub).Error)

	item := s.createExpense(models.ExpenseCategoryHousing, 2026, 8, 30)
	item.SubcategoryID = &sub.ID
	s.Require().NoError(s.expenses.Update(item))

	count, err := s.expenses.CountBySubcategory(sub.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func TestCashflowRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CashflowRepositoryTestSuite))
}
