package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsModelTestSuite struct {
	suite.Suite
}

func TestAnalyticsModelTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsModelTestSuite))
}

func (s *AnalyticsModelTestSuite) TestMonthKey_String() {
	s.Equal("2026-03", MonthKey{Year: 2026, Month: 3}.String())
	s.Equal("2025-12", MonthKey{Year: 2025, Month: 12}.String())
	s.Equal("0099-01", MonthKey{Year: 99, Month: 1}.String())
}

func (s *AnalyticsModelTestSuite) TestMonthKey_Before() {
	s.True(MonthKey{2025, 12}.Before(MonthKey{2026, 1}))
	s.True(MonthKey{2026, 1}.Before(MonthKey{2026, 2}))
	s.False(MonthKey{2026, 2}.Before(MonthKey{2026, 2}))
	s.False(MonthKey{2026, 3}.Before(MonthKey{2026, 2}))
}

func (s *AnalyticsModelTestSuite) TestMonthKeyOf() {
	key := MonthKeyOf(time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC))
	s.Equal(MonthKey{Year: 2026, Month: 8}, key)
}

func (s *AnalyticsModelTestSuite) TestTrendMatrix_AddAccumulates() {
	matrix := make(CategoryTrendMatrix)
	key := MonthKey{2026, 5}

	matrix.Add(key, CategoryGroceries, decimal.NewFromFloat(10.00))
	matrix.Add(key, CategoryGroceries, decimal.NewFromFloat(2.50))
	matrix.Add(key, CategoryTravel, decimal.NewFromFloat(99.99))

	s.True(matrix.Cell(key, CategoryGroceries).Equal(decimal.NewFromFloat(12.50)))
	s.True(matrix.Cell(key, CategoryTravel).Equal(decimal.NewFromFloat(99.99)))
}

func (s *AnalyticsModelTestSuite) TestTrendMatrix_MonthsChronological() {
	matrix := make(CategoryTrendMatrix)
	matrix.Add(MonthKey{2026, 2}, CategoryOther, decimal.NewFromInt(1))
	matrix.Add(MonthKey{2025, 11}, CategoryOther, decimal.NewFromInt(1))
	matrix.Add(MonthKey{2026, 1}, CategoryOther, decimal.NewFromInt(1))

	s.Equal([]MonthKey{{2025, 11}, {2026, 1}, {2026, 2}}, matrix.Months())
}

func (s *AnalyticsModelTestSuite) TestTrendMatrix_CategoriesUnionSorted() {
	matrix := make(CategoryTrendMatrix)
	matrix.Add(MonthKey{2026, 1}, CategoryTravel, decimal.NewFromInt(1))
	matrix.Add(MonthKey{2026, 2}, CategoryGroceries, decimal.NewFromInt(1))
	matrix.Add(MonthKey{2026, 2}, CategoryEntertainment, decimal.NewFromInt(1))

	s.Equal([]string{CategoryEntertainment, CategoryGroceries, CategoryTravel}, matrix.Categories())
}

func (s *AnalyticsModelTestSuite) TestTrendMatrix_MissingCellIsZero() {
	matrix := make(CategoryTrendMatrix)
	matrix.Add(MonthKey{2026, 1}, CategoryTravel, decimal.NewFromInt(5))

	// Absent month and absent category both read as zero, not a fault
	s.True(matrix.Cell(MonthKey{2026, 2}, CategoryTravel).IsZero())
	s.True(matrix.Cell(MonthKey{2026, 1}, CategoryGroceries).IsZero())
}
