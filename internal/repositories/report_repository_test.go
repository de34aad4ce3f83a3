package repositories

import (
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ReportRepositorySuite defines the test suite for ReportRepository
type ReportRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ReportRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *ReportRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewReportRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *ReportRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestReportRepositorySuite runs the test suite
func TestReportRepositorySuite(t *testing.T) {
	suite.Run(t, new(ReportRepositorySuite))
}

func (s *ReportRepositorySuite) TestSaveAndGetByMonthYear() {
	report := &models.MonthlyReport{
		Month:        5,
		Year:         2025,
		TotalIncome:  decimal.NewFromFloat(5000.00),
		TotalExpense: decimal.NewFromFloat(2350.00),
		Summary:      "Auto-generated report",
	}

	s.NoError(s.repo.Save(report))
	s.NotEqual(uuid.Nil, report.ID)

	found, err := s.repo.GetByMonthYear(5, 2025)
	s.NoError(err)
	s.Equal(report.ID, found.ID)
	s.True(found.TotalIncome.Equal(decimal.NewFromFloat(5000.00)))
	s.True(found.TotalExpense.Equal(decimal.NewFromFloat(2350.00)))
}

func (s *ReportRepositorySuite) TestGetByMonthYear_NotFound() {
	_, err := s.repo.GetByMonthYear(1, 2020)
	s.ErrorIs(err, ErrReportNotFound)
}

func (s *ReportRepositorySuite) TestSave_UpdatesInPlace() {
	report := &models.MonthlyReport{
		Month:       5,
		Year:        2025,
		TotalIncome: decimal.NewFromFloat(100.00),
	}
	s.NoError(s.repo.Save(report))

	report.TotalIncome = decimal.NewFromFloat(200.00)
	s.NoError(s.repo.Save(report))

	reports, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(reports, 1)
	s.True(reports[0].TotalIncome.Equal(decimal.NewFromFloat(200.00)))
}

func (s *ReportRepositorySuite) TestUniquePeriodConstraint() {
	first := &models.MonthlyReport{Month: 5, Year: 2025}
	s.NoError(s.repo.Save(first))

	duplicate := &models.MonthlyReport{Month: 5, Year: 2025}
	s.Error(s.repo.Save(duplicate))
}

func (s *ReportRepositorySuite) TestGetAll_OrderedByPeriod() {
	s.NoError(s.repo.Save(&models.MonthlyReport{Month: 1, Year: 2025}))
	s.NoError(s.repo.Save(&models.MonthlyReport{Month: 12, Year: 2024}))

	reports, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(reports, 2)
	s.Equal(2024, reports[0].Year)
	s.Equal(2025, reports[1].Year)
}
