package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"networth-tracker/internal/database"
	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"

	"github.com/stretchr/testify/suite"
)

type BudgetHandlerTestSuite struct {
	suite.Suite
	h *handlerHarness
}

func TestBudgetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}

func (s *BudgetHandlerTestSuite) SetupTest() {
	s.h = newHandlerHarness(s.T())
}

func (s *BudgetHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.h.db)
}

func (s *BudgetHandlerTestSuite) saveBudget(category, amount string, year, month int) *testEnvelope {
	c, rec := s.h.newContext(s.T(), http.MethodPatch, "/api/budgets/"+category, dto.UpdateBudgetRequest{
		Year:   year,
		Month:  month,
		Amount: amount,
	})
	c.SetParamNames("category")
	c.SetParamValues(category)

	s.Require().NoError(s.h.budgets.SaveBudget(c))
	s.Equal(http.StatusOK, rec.Code)
	return decodeEnvelope(s.T(), rec)
}

func (s *BudgetHandlerTestSuite) addExpense(category, amount string, year, month int) {
	c, rec := s.h.newContext(s.T(), http.MethodPost, "/api/expenses", dto.CreateExpenseRequest{
		Category: category,
		Year:     year,
		Month:    month,
		Amount:   amount,
	})
	s.Require().NoError(s.h.cashflow.CreateExpense(c))
	s.Require().Equal(http.StatusCreated, rec.Code)
}

func (s *BudgetHandlerTestSuite) listBudgets(year, month int) *dto.BudgetListResponse {
	target := fmt.Sprintf("/api/budgets?year=%d&month=%d", year, month)
	c, rec := s.h.newContext(s.T(), http.MethodGet, target, nil)
	s.Require().NoError(s.h.budgets.ListBudgets(c))
	s.Require().Equal(http.StatusOK, rec.Code)

	var list dto.BudgetListResponse
	decodeData(s.T(), rec, &list)
	return &list
}

func (s *BudgetHandlerTestSuite) TestListZeroFillsEveryCategory() {
	list := s.listBudgets(2026, 5)

	s.Len(list.Entries, len(models.ExpenseCategoryCodes()))
	for _, entry := range list.Entries {
		s.True(entry.Budget.IsZero(), entry.Category)
		s.True(entry.Actual.IsZero(), entry.Category)
	}
}

func (s *BudgetHandlerTestSuite) TestBudgetAndActualJoined() {
	s.saveBudget(models.ExpenseCategoryGroceries, "400.00", 2026, 5)
	s.addExpense(models.ExpenseCategoryGroceries, "150.25", 2026, 5)

	list := s.listBudgets(2026, 5)

	var found bool
	for _, entry := range list.Entries {
		if entry.Category != models.ExpenseCategoryGroceries {
			continue
		}
		found = true
		s.Equal("400", entry.Budget.String())
		s.Equal("150.25", entry.Actual.String())
		s.Equal("249.75", entry.Remaining.String())
		s.False(entry.Calculated)
	}
	s.True(found)
	s.Equal("400", list.TotalBudget.String())
	s.Equal("150.25", list.TotalActual.String())
}

func (s *BudgetHandlerTestSuite) TestSaveRejectsUnknownCategory() {
	c, rec := s.h.newContext(s.T(), http.MethodPatch, "/api/budgets/TULIPS", dto.UpdateBudgetRequest{
		Year:   2026,
		Month:  5,
		Amount: "100",
	})
	c.SetParamNames("category")
	c.SetParamValues("TULIPS")

	s.Require().NoError(s.h.budgets.SaveBudget(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestAutoAdjustDerivesTrailingAverage() {
	// three months of history before the target period
	s.addExpense(models.ExpenseCategoryTransport, "90", 2026, 2)
	s.addExpense(models.ExpenseCategoryTransport, "120", 2026, 3)
	s.addExpense(models.ExpenseCategoryTransport, "150", 2026, 4)

	c, rec := s.h.newContext(s.T(), http.MethodPost, "/api/budgets/auto-adjust?year=2026&month=5", nil)
	s.Require().NoError(s.h.budgets.AutoAdjust(c))
	s.Equal(http.StatusOK, rec.Code)

	var result dto.AutoAdjustResponse
	decodeData(s.T(), rec, &result)
	s.Equal(2026, result.Year)
	s.Equal(5, result.Month)
	s.Equal(1, result.Adjusted)

	list := s.listBudgets(2026, 5)
	for _, entry := range list.Entries {
		if entry.Category == models.ExpenseCategoryTransport {
			s.Equal("120", entry.Budget.String())
			s.True(entry.Calculated)
		}
	}
}

func (s *BudgetHandlerTestSuite) TestAutoAdjustKeepsUserBudgets() {
	s.addExpense(models.ExpenseCategoryLeisure, "300", 2026, 4)
	s.saveBudget(models.ExpenseCategoryLeisure, "50", 2026, 5)

	c, rec := s.h.newContext(s.T(), http.MethodPost, "/api/budgets/auto-adjust?year=2026&month=5", nil)
	s.Require().NoError(s.h.budgets.AutoAdjust(c))
	s.Equal(http.StatusOK, rec.Code)

	list := s.listBudgets(2026, 5)
	for _, entry := range list.Entries {
		if entry.Category == models.ExpenseCategoryLeisure {
			s.Equal("50", entry.Budget.String())
			s.False(entry.Calculated)
		}
	}
}
