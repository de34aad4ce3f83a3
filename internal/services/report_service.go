package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
)

const reportSummaryText = "Auto-generated report"

// reportService implements ReportServiceInterface. The clock is injected so
// the generator can be run out-of-band against any reference date; it never
// reads the system clock directly.
type reportService struct {
	txRepo     repositories.TransactionRepositoryInterface
	reportRepo repositories.ReportRepositoryInterface
	metrics    MetricsRecorderInterface
	clock      func() time.Time
}

// NewReportService creates a new monthly report service. A nil clock
// defaults to time.Now.
func NewReportService(
	txRepo repositories.TransactionRepositoryInterface,
	reportRepo repositories.ReportRepositoryInterface,
	metrics MetricsRecorderInterface,
	clock func() time.Time,
) ReportServiceInterface {
	if clock == nil {
		clock = time.Now
	}
	return &reportService{
		txRepo:     txRepo,
		reportRepo: reportRepo,
		metrics:    metrics,
		clock:      clock,
	}
}

// GeneratePreviousMonthReport aggregates the calendar month before the
// current date and upserts the snapshot for that (month, year). Re-running
// for the same period overwrites the existing row rather than duplicating it.
//
// Unlike the on-demand summary, this aggregation counts zero amounts on the
// income side: income sums amount >= 0, expense sums |amount| for amount < 0.
func (s *reportService) GeneratePreviousMonthReport() (*models.MonthlyReport, error) {
	now := s.clock()

	firstOfCurrent := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	from := firstOfCurrent.AddDate(0, -1, 0)
	to := firstOfCurrent.Add(-time.Second)

	transactions, err := s.txRepo.GetWithFilters(models.TransactionFilters{From: &from, To: &to})
	if err != nil {
		s.metrics.RecordMonthlyReport("error")
		return nil, fmt.Errorf("failed to load transactions for report: %w", err)
	}

	income := decimal.Zero
	expense := decimal.Zero
	for i := range transactions {
		t := &transactions[i]
		if t.Amount.GreaterThanOrEqual(decimal.Zero) {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount.Abs())
		}
	}

	month := int(from.Month())
	year := from.Year()

	report, err := s.reportRepo.GetByMonthYear(month, year)
	if err != nil {
		if !errors.Is(err, repositories.ErrReportNotFound) {
			s.metrics.RecordMonthlyReport("error")
			return nil, fmt.Errorf("failed to look up monthly report: %w", err)
		}
		report = &models.MonthlyReport{
			Month: month,
			Year:  year,
		}
	}

	report.TotalIncome = income
	report.TotalExpense = expense
	report.Summary = reportSummaryText

	if err := s.reportRepo.Save(report); err != nil {
		s.metrics.RecordMonthlyReport("error")
		return nil, fmt.Errorf("failed to save monthly report: %w", err)
	}

	s.metrics.RecordMonthlyReport("success")
	slog.Info("monthly report generated",
		"month", month,
		"year", year,
		"total_income", income.String(),
		"total_expense", expense.String(),
		"transaction_count", len(transactions))

	return report, nil
}
