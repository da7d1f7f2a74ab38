package repositories

import (
	"testing"

	"networth-tracker/internal/database"
	"networth-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AssetRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo AssetRepositoryInterface
	user *models.User
}

func (s *AssetRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAssetRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db)
}

func (s *AssetRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AssetRepositoryTestSuite) TestCreateAndGetByID() {
	asset := &models.Asset{
		UserID:   s.user.ID,
		Name:     "World ETF",
		Category: models.AssetCategoryETF,
	}

	err := s.repo.Create(asset)
	s.Require().NoError(err)

	found, err := s.repo.GetByID(s.user.ID, asset.ID)
	s.Require().NoError(err)
	s.Equal("World ETF", found.Name)
	s.Equal(models.AssetCategoryETF, found.Category)
}

func (s *AssetRepositoryTestSuite) TestGetByIDOtherUser() {
	asset := database.CreateTestAsset(s.T(), s.db, s.user, models.AssetCategoryStocks)
	other := database.CreateTestUser(s.T(), s.db)

	_, err := s.repo.GetByID(other.ID, asset.ID)
	s.ErrorIs(err, ErrAssetNotFound)
}

func (s *AssetRepositoryTestSuite) TestGetByUserID() {
	database.CreateTestAsset(s.T(), s.db, s.user, models.AssetCategoryStocks)
	database.CreateTestAsset(s.T(), s.db, s.user, models.AssetCategoryCrypto)

	other := database.CreateTestUser(s.T(), s.db)
	database.CreateTestAsset(s.T(), s.db, other, models.AssetCategoryCash)

	assets, err := s.repo.GetByUserID(s.user.ID)
	s.Require().NoError(err)
	s.Len(assets, 2)
}

func (s *AssetRepositoryTestSuite) TestCountInputs() {
	asset := database.CreateTestAsset(s.T(), s.db, s.user, models.AssetCategoryStocks)
	database.CreateTestAssetInput(s.T(), s.db, s.user, asset, 2026, 7, 1000)
	database.CreateTestAssetInput(s.T(), s.db, s.user, asset, 2026, 8, 1100)

	count, err := s.repo.CountInputs(asset.ID)
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *AssetRepositoryTestSuite) TestDeleteNotFound() {
	err := s.repo.Delete(s.user.ID, uuid.New())
	s.ErrorIs(err, ErrAssetNotFound)
}

func (s *AssetRepositoryTestSuite) TestDeleteWithInputsCascades() {
	asset := database.CreateTestAsset(s.T(), s.db, s.user, models.AssetCategoryBonds)
	database.CreateTestAssetInput(s.T(), s.db, s.user, asset, 2026, 8, 500)

	err := s.repo.DeleteWithInputs(s.user.ID, asset.ID)
	s.Require().NoError(err)

	_, err = s.repo.GetByID(s.user.ID, asset.ID)
	s.ErrorIs(err, ErrAssetNotFound)

	count, err := s.repo.CountInputs(asset.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), count)
}

func TestAssetRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssetRepositoryTestSuite))
}
