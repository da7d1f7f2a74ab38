package services

import (
	"testing"

	"networth-tracker/internal/database"
	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CashflowServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service CashflowServiceInterface
	user    *models.User
}

func (s *CashflowServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.service = NewCashflowService(
		repositories.NewIncomingRepository(s.db.DB),
		repositories.NewExpenseRepository(s.db.DB),
		repositories.NewSubcategoryRepository(s.db.DB),
	)
	s.user = database.CreateTestUser(s.T(), s.db)
}

func (s *CashflowServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CashflowServiceTestSuite) TestIncomingLifecycle() {
	item, err := s.service.CreateIncoming(s.user.ID, &dto.CreateIncomingRequest{
		Category: models.IncomeCategorySalary,
		Year:     2026,
		Month:    8,
		Amount:   "4200.50",
	})
	s.Require().NoError(err)

	listed, err := s.service.ListIncomings(s.user.ID, models.Period{Year: 2026, Month: 8})
	s.Require().NoError(err)
	s.Require().Len(listed.Incomings, 1)
	s.True(listed.Total.Equal(decimal.RequireFromString("4200.50")))

	s.Require().NoError(s.service.DeleteIncoming(s.user.ID, item.ID))

	listed, err = s.service.ListIncomings(s.user.ID, models.Period{Year: 2026, Month: 8})
	s.Require().NoError(err)
	s.Empty(listed.Incomings)
}

func (s *CashflowServiceTestSuite) TestCreateIncomingInvalidAmount() {
	_, err := s.service.CreateIncoming(s.user.ID, &dto.CreateIncomingRequest{
		Category: models.IncomeCategorySalary,
		Year:     2026,
		Month:    8,
		Amount:   "not-a-number",
	})
	s.ErrorIs(err, ErrValidation)
}

func (s *CashflowServiceTestSuite) TestExpenseWithDefaultSubcategory() {
	var rent models.ExpenseSubcategory
	s.Require().NoError(s.db.Where("user_id IS NULL AND name = ?", "Rent").First(&rent).Error)

	rentID := rent.ID.String()
	item, err := s.service.CreateExpense(s.user.ID, &dto.CreateExpenseRequest{
		Category:      models.ExpenseCategoryHousing,
		SubcategoryID: &rentID,
		Year:          2026,
		Month:         8,
		Amount:        "950",
	})
	s.Require().NoError(err)
	s.Require().NotNil(item.SubcategoryID)
	s.Equal(rent.ID, *item.SubcategoryID)
}

func (s *CashflowServiceTestSuite) TestExpenseSubcategoryMustMatchCategory() {
	var rent models.ExpenseSubcategory
	s.Require().NoError(s.db.Where("user_id IS NULL AND name = ?", "Rent").First(&rent).Error)

	rentID := rent.ID.String()
	_, err := s.service.CreateExpense(s.user.ID, &dto.CreateExpenseRequest{
		Category:      models.ExpenseCategoryGroceries,
		SubcategoryID: &rentID,
		Year:          2026,
		Month:         8,
		Amount:        "50",
	})
	s.ErrorIs(err, ErrValidation)
}

func (s *CashflowServiceTestSuite) TestExpenseForeignSubcategoryIsNotFound() {
	other := database.CreateTestUser(s.T(), s.db)
	sub := &models.ExpenseSubcategory{
		UserID:   &other.ID,
		Category: models.ExpenseCategoryLeisure,
		Name:     "Sailing",
	}
	s.Require().NoError(s.db.Create(sub).Error)

	subID := sub.ID.String()
	_, err := s.service.CreateExpense(s.user.ID, &dto.CreateExpenseRequest{
		Category:      models.ExpenseCategoryLeisure,
		SubcategoryID: &subID,
		Year:          2026,
		Month:         8,
		Amount:        "200",
	})
	s.ErrorIs(err, ErrNotFound)
}

func (s *CashflowServiceTestSuite) TestUpdateExpense() {
	item, err := s.service.CreateExpense(s.user.ID, &dto.CreateExpenseRequest{
		Category: models.ExpenseCategoryTransport,
		Year:     2026,
		Month:    8,
		Amount:   "60",
	})
	s.Require().NoError(err)

	amount := "72.50"
	updated, err := s.service.UpdateExpense(s.user.ID, item.ID, &dto.UpdateExpenseRequest{Amount: &amount})
	s.Require().NoError(err)
	s.True(updated.Amount.Equal(decimal.RequireFromString("72.50")))
}

func (s *CashflowServiceTestSuite) TestListExpensesScopedToPeriod() {
	for month := 7; month <= 8; month++ {
		_, err := s.service.CreateExpense(s.user.ID, &dto.CreateExpenseRequest{
			Category: models.ExpenseCategoryGroceries,
			Year:     2026,
			Month:    month,
			Amount:   "100",
		})
		s.Require().NoError(err)
	}

	listed, err := s.service.ListExpenses(s.user.ID, models.Period{Year: 2026, Month: 8})
	s.Require().NoError(err)
	s.Len(listed.Expenses, 1)
	s.True(listed.Total.Equal(decimal.NewFromInt(100)))
}

func TestCashflowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashflowServiceTestSuite))
}
