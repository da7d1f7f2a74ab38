package services

import (
	"testing"

	"networth-tracker/internal/database"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExportServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service ExportServiceInterface
	user    *models.User
}

func (s *ExportServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.service = NewExportService(
		repositories.NewUserRepository(s.db.DB),
		repositories.NewAssetRepository(s.db.DB),
		repositories.NewAssetInputRepository(s.db.DB),
		repositories.NewIncomingRepository(s.db.DB),
		repositories.NewExpenseRepository(s.db.DB),
		repositories.NewBudgetRepository(s.db.DB),
		repositories.NewAllocationTargetRepository(s.db.DB),
		repositories.NewSubcategoryRepository(s.db.DB),
	)
	s.user = database.CreateTestUser(s.T(), s.db)
}

func (s *ExportServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ExportServiceTestSuite) TestExportBundlesOwnRecordsOnly() {
	asset := database.CreateTestAsset(s.T(), s.db, s.user, models.AssetCategoryETF)
	database.CreateTestAssetInput(s.T(), s.db, s.user, asset, 2026, 8, 1000)

	other := database.CreateTestUser(s.T(), s.db)
	otherAsset := database.CreateTestAsset(s.T(), s.db, other, models.AssetCategoryCash)
	database.CreateTestAssetInput(s.T(), s.db, other, otherAsset, 2026, 8, 999)

	s.Require().NoError(s.db.Create(&models.IncomingItem{
		UserID:   s.user.ID,
		Category: models.IncomeCategorySalary,
		Year:     2026,
		Month:    8,
		Amount:   decimal.NewFromInt(4000),
	}).Error)

	export, err := s.service.ExportData(s.user.ID)
	s.Require().NoError(err)

	s.Equal(s.user.ID, export.User.ID)
	s.Len(export.Assets, 1)
	s.Len(export.AssetInputs, 1)
	s.Len(export.Incomings, 1)
	s.Empty(export.Expenses)
	s.False(export.ExportedAt.IsZero())
	s.Len(export.Subcategories, len(models.DefaultSubcategories()))
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
