package repositories

import (
	"testing"

	"networth-tracker/internal/database"
	"networth-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AllocationTargetRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo AllocationTargetRepositoryInterface
	user *models.User
}

func (s *AllocationTargetRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAllocationTargetRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db)
}

func (s *AllocationTargetRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AllocationTargetRepositoryTestSuite) mustFraction(percent int64) models.Fraction {
	f, err := models.FractionFromPercent(decimal.NewFromInt(percent))
	s.Require().NoError(err)
	return f
}

func (s *AllocationTargetRepositoryTestSuite) TestUpsertReplacesTarget() {
	first := &models.CategoryAllocationTarget{
		UserID:   s.user.ID,
		Category: models.AssetCategoryETF,
		Target:   s.mustFraction(40),
	}
	s.Require().NoError(s.repo.Upsert(first))

	second := &models.CategoryAllocationTarget{
		UserID:   s.user.ID,
		Category: models.AssetCategoryETF,
		Target:   s.mustFraction(55),
	}
	s.Require().NoError(s.repo.Upsert(second))

	targets, err := s.repo.GetByUser(s.user.ID)
	s.Require().NoError(err)
	s.Require().Len(targets, 1)
	s.True(targets[0].Target.Percent().Equal(decimal.NewFromInt(55)))
}

func (s *AllocationTargetRepositoryTestSuite) TestGetByKeyNotFound() {
	_, err := s.repo.GetByKey(s.user.ID, models.AssetCategoryCrypto)
	s.ErrorIs(err, ErrAllocationTargetNotFound)
}

func TestAllocationTargetRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationTargetRepositoryTestSuite))
}
