// Package scheduler runs the periodic monthly report job.
package scheduler

import (
	"fmt"
	"log/slog"

	"fintrack/internal/services"

	"github.com/robfig/cron/v3"
)

// Scheduler triggers report generation on a cron schedule
type Scheduler struct {
	cron          *cron.Cron
	reportService services.ReportServiceInterface
}

// New creates a scheduler that is not yet running
func New(reportService services.ReportServiceInterface) *Scheduler {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	return &Scheduler{
		cron:          c,
		reportService: reportService,
	}
}

// Start registers the monthly report job and starts the cron loop.
// The spec follows standard five-field cron syntax.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, s.runMonthlyReport)
	if err != nil {
		return fmt.Errorf("failed to schedule monthly report job: %w", err)
	}

	s.cron.Start()
	slog.Info("report scheduler started", "spec", spec)
	return nil
}

// Stop halts the cron loop and waits for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("report scheduler stopped")
}

func (s *Scheduler) runMonthlyReport() {
	report, err := s.reportService.GeneratePreviousMonthReport()
	if err != nil {
		slog.Error("scheduled monthly report failed", "error", err)
		return
	}

	slog.Info("scheduled monthly report generated",
		"month", report.Month,
		"year", report.Year,
		"total_income", report.TotalIncome.String(),
		"total_expense", report.TotalExpense.String(),
	)
}
