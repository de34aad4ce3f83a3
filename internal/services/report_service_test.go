package services

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ReportServiceSuite defines the test suite for ReportServiceInterface
type ReportServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	txRepo     *repository_mocks.MockTransactionRepositoryInterface
	reportRepo *repository_mocks.MockReportRepositoryInterface
	service    ReportServiceInterface
	now        time.Time
}

// SetupTest runs before each test in the suite
func (s *ReportServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.txRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.reportRepo = repository_mocks.NewMockReportRepositoryInterface(s.ctrl)
	// Mid-June: the report period is May 2025
	s.now = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	s.service = NewReportService(s.txRepo, s.reportRepo, NewNoopMetrics(), func() time.Time { return s.now })
}

// TearDownTest runs after each test in the suite
func (s *ReportServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestReportServiceSuite runs the test suite
func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceSuite))
}

func (s *ReportServiceSuite) TestGeneratePreviousMonthReport() {
	mayTx := []models.Transaction{
		{ID: uuid.New(), Description: "Salary", Amount: decimal.NewFromInt(5000)},
		{ID: uuid.New(), Description: "Groceries", Amount: decimal.NewFromInt(-450)},
		{ID: uuid.New(), Description: "Rent", Amount: decimal.NewFromInt(-1000)},
	}

	s.txRepo.EXPECT().GetWithFilters(gomock.Any()).DoAndReturn(
		func(filters models.TransactionFilters) ([]models.Transaction, error) {
			s.Require().NotNil(filters.From)
			s.Require().NotNil(filters.To)
			// The window is the full previous calendar month
			s.True(filters.From.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)))
			s.True(filters.To.Equal(time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC)))
			return mayTx, nil
		})
	s.reportRepo.EXPECT().GetByMonthYear(5, 2025).Return(nil, repositories.ErrReportNotFound)
	s.reportRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(r *models.MonthlyReport) error {
		r.ID = uuid.New()
		return nil
	})

	report, err := s.service.GeneratePreviousMonthReport()
	s.NoError(err)
	s.Equal(5, report.Month)
	s.Equal(2025, report.Year)
	s.True(report.TotalIncome.Equal(decimal.NewFromInt(5000)))
	s.True(report.TotalExpense.Equal(decimal.NewFromInt(1450)))
	s.Equal("Auto-generated report", report.Summary)
}

func (s *ReportServiceSuite) TestGeneratePreviousMonthReport_JanuaryRollsBackYear() {
	s.now = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	s.txRepo.EXPECT().GetWithFilters(gomock.Any()).DoAndReturn(
		func(filters models.TransactionFilters) ([]models.Transaction, error) {
			s.True(filters.From.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
			s.True(filters.To.Equal(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)))
			return nil, nil
		})
	s.reportRepo.EXPECT().GetByMonthYear(12, 2024).Return(nil, repositories.ErrReportNotFound)
	s.reportRepo.EXPECT().Save(gomock.Any()).Return(nil)

	report, err := s.service.GeneratePreviousMonthReport()
	s.NoError(err)
	s.Equal(12, report.Month)
	s.Equal(2024, report.Year)
}

func (s *ReportServiceSuite) TestGeneratePreviousMonthReport_ZeroCountsAsIncome() {
	mayTx := []models.Transaction{
		{ID: uuid.New(), Description: "Placeholder", Amount: decimal.Zero},
		{ID: uuid.New(), Description: "Groceries", Amount: decimal.NewFromInt(-100)},
	}

	s.txRepo.EXPECT().GetWithFilters(gomock.Any()).Return(mayTx, nil)
	s.reportRepo.EXPECT().GetByMonthYear(5, 2025).Return(nil, repositories.ErrReportNotFound)
	s.reportRepo.EXPECT().Save(gomock.Any()).Return(nil)

	report, err := s.service.GeneratePreviousMonthReport()
	s.NoError(err)
	s.True(report.TotalIncome.IsZero())
	s.True(report.TotalExpense.Equal(decimal.NewFromInt(100)))
}

func (s *ReportServiceSuite) TestGeneratePreviousMonthReport_UpsertsExistingPeriod() {
	existing := &models.MonthlyReport{
		ID:           uuid.New(),
		Month:        5,
		Year:         2025,
		TotalIncome:  decimal.NewFromInt(100),
		TotalExpense: decimal.NewFromInt(100),
	}

	mayTx := []models.Transaction{
		{ID: uuid.New(), Description: "Salary", Amount: decimal.NewFromInt(5000)},
	}

	s.txRepo.EXPECT().GetWithFilters(gomock.Any()).Return(mayTx, nil)
	s.reportRepo.EXPECT().GetByMonthYear(5, 2025).Return(existing, nil)
	s.reportRepo.EXPECT().Save(existing).Return(nil)

	report, err := s.service.GeneratePreviousMonthReport()
	s.NoError(err)
	// Same row, refreshed totals
	s.Equal(existing.ID, report.ID)
	s.True(report.TotalIncome.Equal(decimal.NewFromInt(5000)))
	s.True(report.TotalExpense.IsZero())
}

func (s *ReportServiceSuite) TestGeneratePreviousMonthReport_EmptyMonth() {
	s.txRepo.EXPECT().GetWithFilters(gomock.Any()).Return(nil, nil)
	s.reportRepo.EXPECT().GetByMonthYear(5, 2025).Return(nil, repositories.ErrReportNotFound)
	s.reportRepo.EXPECT().Save(gomock.Any()).Return(nil)

	report, err := s.service.GeneratePreviousMonthReport()
	s.NoError(err)
	s.True(report.TotalIncome.IsZero())
	s.True(report.TotalExpense.IsZero())
}

func (s *ReportServiceSuite) TestGeneratePreviousMonthReport_LoadError() {
	s.txRepo.EXPECT().GetWithFilters(gomock.Any()).Return(nil, errStore)

	_, err := s.service.GeneratePreviousMonthReport()
	s.Error(err)
}

func (s *ReportServiceSuite) TestGeneratePreviousMonthReport_SaveError() {
	s.txRepo.EXPECT().GetWithFilters(gomock.Any()).Return(nil, nil)
	s.reportRepo.EXPECT().GetByMonthYear(5, 2025).Return(nil, repositories.ErrReportNotFound)
	s.reportRepo.EXPECT().Save(gomock.Any()).Return(errStore)

	_, err := s.service.GeneratePreviousMonthReport()
	s.Error(err)
}
