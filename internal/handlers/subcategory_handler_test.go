package handlers

import (
	"net/http"
	"testing"

	"networth-tracker/internal/database"
	"networth-tracker/internal/dto"
	"networth-tracker/internal/models"

	"github.com/stretchr/testify/suite"
)

type SubcategoryHandlerTestSuite struct {
	suite.Suite
	h *handlerHarness
}

func TestSubcategoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SubcategoryHandlerTestSuite))
}

func (s *SubcategoryHandlerTestSuite) SetupTest() {
	s.h = newHandlerHarness(s.T())
}

func (s *SubcategoryHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.h.db)
}

func (s *SubcategoryHandlerTestSuite) create(category, name string) *models.ExpenseSubcategory {
	c, rec := s.h.newContext(s.T(), http.MethodPost, "/api/subcategories", dto.CreateSubcategoryRequest{
		Category: category,
		Name:     name,
	})
	s.Require().NoError(s.h.subcategories.CreateSubcategory(c))
	s.Require().Equal(http.StatusCreated, rec.Code)

	var sub models.ExpenseSubcategory
	decodeData(s.T(), rec, &sub)
	return &sub
}

func (s *SubcategoryHandlerTestSuite) defaultSubcategory() *models.ExpenseSubcategory {
	var sub models.ExpenseSubcategory
	err := s.h.db.Where("user_id IS NULL").First(&sub).Error
	s.Require().NoError(err)
	return &sub
}

func (s *SubcategoryHandlerTestSuite) TestListIncludesDefaultsAndOwn() {
	s.create(models.ExpenseCategoryLeisure, "Board games")

	c, rec := s.h.newContext(s.T(), http.MethodGet, "/api/subcategories", nil)
	s.Require().NoError(s.h.subcategories.ListSubcategories(c))
	s.Equal(http.StatusOK, rec.Code)

	var list dto.SubcategoryListResponse
	decodeData(s.T(), rec, &list)
	s.Len(list.Subcategories, len(models.DefaultSubcategories())+1)
}

func (s *SubcategoryHandlerTestSuite) TestUpdateDefaultForbidden() {
	def := s.defaultSubcategory()

	c, rec := s.h.newContext(s.T(), http.MethodPatch, "/api/subcategories/"+def.ID.String(),
		dto.UpdateSubcategoryRequest{Name: "Mine now"})
	c.SetParamNames("id")
	c.SetParamValues(def.ID.String())

	s.Require().NoError(s.h.subcategories.UpdateSubcategory(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("FORBIDDEN", decodeEnvelope(s.T(), rec).Error.Code)
}

func (s *SubcategoryHandlerTestSuite) TestDeleteDefaultForbidden() {
	def := s.defaultSubcategory()

	c, rec := s.h.newContext(s.T(), http.MethodDelete, "/api/subcategories/"+def.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(def.ID.String())

	s.Require().NoError(s.h.subcategories.DeleteSubcategory(c))
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *SubcategoryHandlerTestSuite) TestForeignSubcategoryIsNotFound() {
	stranger := otherUser(s.T(), s.h.db)
	foreign := &models.ExpenseSubcategory{
		UserID:   &stranger.ID,
		Category: models.ExpenseCategoryHealth,
		Name:     "Therapy",
	}
	s.Require().NoError(s.h.db.Create(foreign).Error)

	c, rec := s.h.newContext(s.T(), http.MethodPatch, "/api/subcategories/"+foreign.ID.String(),
		dto.UpdateSubcategoryRequest{Name: "Stolen"})
	c.SetParamNames("id")
	c.SetParamValues(foreign.ID.String())

	s.Require().NoError(s.h.subcategories.UpdateSubcategory(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *SubcategoryHandlerTestSuite) TestDeleteReferencedConflicts() {
	sub := s.create(models.ExpenseCategoryLeisure, "Concerts")

	subID := sub.ID.String()
	expCtx, expRec := s.h.newContext(s.T(), http.MethodPost, "/api/expenses", dto.CreateExpenseRequest{
		Category:      models.ExpenseCategoryLeisure,
		SubcategoryID: &subID,
		Year:          2026,
		Month:         5,
		Amount:        "80",
	})
	s.Require().NoError(s.h.cashflow.CreateExpense(expCtx))
	s.Require().Equal(http.StatusCreated, expRec.Code)

	c, rec := s.h.newContext(s.T(), http.MethodDelete, "/api/subcategories/"+subID, nil)
	c.SetParamNames("id")
	c.SetParamValues(subID)

	s.Require().NoError(s.h.subcategories.DeleteSubcategory(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("CONFLICT", decodeEnvelope(s.T(), rec).Error.Code)
}

func (s *SubcategoryHandlerTestSuite) TestDeleteUnreferencedSucceeds() {
	sub := s.create(models.ExpenseCategoryUtilities, "Water")

	c, rec := s.h.newContext(s.T(), http.MethodDelete, "/api/subcategories/"+sub.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(sub.ID.String())

	s.Require().NoError(s.h.subcategories.DeleteSubcategory(c))
	s.Equal(http.StatusOK, rec.Code)
}
