package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler handles summary and monthly report HTTP requests
type ReportHandler struct {
	summaryService services.SummaryServiceInterface
	reportService  services.ReportServiceInterface
	reportRepo     repositories.ReportRepositoryInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(summaryService services.SummaryServiceInterface, reportService services.ReportServiceInterface, reportRepo repositories.ReportRepositoryInterface) *ReportHandler {
	return &ReportHandler{
		summaryService: summaryService,
		reportService:  reportService,
		reportRepo:     reportRepo,
	}
}

// GetSummary aggregates stored transactions into totals and category breakdowns
// @Summary Aggregate transactions
// @Description Aggregate all stored transactions into income/expense totals and a per-category breakdown, optionally narrowed by account and type
// @Tags Reports
// @Produce json
// @Param accountId query string false "Only aggregate transactions assigned to this account (UUID)"
// @Param type query string false "Summary type filter: income or expense (case-insensitive); any other value yields both totals"
// @Success 200 {object} models.Summary "Aggregated totals"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_003 - Invalid account ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports/summary [get]
func (h *ReportHandler) GetSummary(c echo.Context) error {
	accountID, err := parseUUIDQuery(c, "accountId")
	if err != nil {
		return SendError(c, errors.AccountInvalidID, errors.WithDetails(err.Error()))
	}

	// The type filter is permissive: values other than income/expense fall
	// through to the full summary with both totals.
	summary, err := h.summaryService.SummarizeStored(accountID, c.QueryParam("type"))
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// RunMonthlyReport generates the snapshot for the previous calendar month
// @Summary Generate monthly report
// @Description Aggregate the previous calendar month and upsert its snapshot. Running twice for the same period updates the existing row.
// @Tags Reports
// @Produce json
// @Success 200 {object} models.MonthlyReport "Generated report"
// @Failure 500 {object} errors.ErrorResponse "REPORT_002 - Report generation failed"
// @Router /reports/monthly/run [post]
func (h *ReportHandler) RunMonthlyReport(c echo.Context) error {
	report, err := h.reportService.GeneratePreviousMonthReport()
	if err != nil {
		return SendError(c, errors.ReportGenerationFailed, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, report)
}

// ListReports retrieves all stored monthly report snapshots
// @Summary List monthly reports
// @Tags Reports
// @Produce json
// @Success 200 {object} dto.ReportListResponse "Reports"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports/monthly [get]
func (h *ReportHandler) ListReports(c echo.Context) error {
	reports, err := h.reportRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ReportListResponse{
		Reports: reports,
		Total:   len(reports),
	})
}

// GetReport retrieves a specific monthly report by ID
// @Summary Get monthly report by ID
// @Tags Reports
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} models.MonthlyReport "Report details"
// @Failure 404 {object} errors.ErrorResponse "REPORT_001 - Report not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports/monthly/{id} [get]
func (h *ReportHandler) GetReport(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	report, err := h.reportRepo.GetByID(id)
	if err != nil {
		if err == repositories.ErrReportNotFound {
			return SendError(c, errors.ReportNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}
