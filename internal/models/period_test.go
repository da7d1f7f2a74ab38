package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// PeriodTestSuite defines the test suite for Period
type PeriodTestSuite struct {
	suite.Suite
}

// TestPeriodTestSuite runs the test suite
func TestPeriodTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodTestSuite))
}

func (s *PeriodTestSuite) TestValidate() {
	s.NoError(Period{Year: 2026, Month: 1}.Validate())
	s.NoError(Period{Year: 2026, Month: 12}.Validate())
	s.ErrorIs(Period{Year: 2026, Month: 0}.Validate(), ErrInvalidMonth)
	s.ErrorIs(Period{Year: 2026, Month: 13}.Validate(), ErrInvalidMonth)
	s.ErrorIs(Period{Year: 1, Month: 6}.Validate(), ErrInvalidYear)
}

func (s *PeriodTestSuite) TestPrevious_WrapsJanuary() {
	s.Equal(Period{Year: 2025, Month: 12}, Period{Year: 2026, Month: 1}.Previous())
	s.Equal(Period{Year: 2026, Month: 8}, Period{Year: 2026, Month: 9}.Previous())
}

func (s *PeriodTestSuite) TestNext_WrapsDecember() {
	s.Equal(Period{Year: 2027, Month: 1}, Period{Year: 2026, Month: 12}.Next())
	s.Equal(Period{Year: 2026, Month: 10}, Period{Year: 2026, Month: 9}.Next())
}

func (s *PeriodTestSuite) TestAddMonths() {
	base := Period{Year: 2026, Month: 9}

	s.Equal(Period{Year: 2026, Month: 9}, base.AddMonths(0))
	s.Equal(Period{Year: 2027, Month: 3}, base.AddMonths(6))
	s.Equal(Period{Year: 2026, Month: 6}, base.AddMonths(-3))
	s.Equal(Period{Year: 2025, Month: 12}, base.AddMonths(-9))
	s.Equal(Period{Year: 2025, Month: 10}, base.AddMonths(-11))
}

func (s *PeriodTestSuite) TestIndexOrdering() {
	earlier := Period{Year: 2025, Month: 12}
	later := Period{Year: 2026, Month: 1}

	s.True(earlier.Before(later))
	s.False(later.Before(earlier))
	s.Equal(1, later.Index()-earlier.Index())
}

func (s *PeriodTestSuite) TestLabel() {
	s.Equal("Jan", Period{Year: 2026, Month: 1}.Label())
	s.Equal("Sep", Period{Year: 2026, Month: 9}.Label())
	s.Equal("Dec", Period{Year: 2026, Month: 12}.Label())
}

func (s *PeriodTestSuite) TestString() {
	s.Equal("2026-09", Period{Year: 2026, Month: 9}.String())
}
