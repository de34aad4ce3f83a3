package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound = errors.New("monthly report not found")
)

// reportRepository implements ReportRepositoryInterface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new monthly report repository
func NewReportRepository(db *gorm.DB) ReportRepositoryInterface {
	return &reportRepository{
		db: db,
	}
}

// GetByID retrieves a monthly report by ID
func (r *reportRepository) GetByID(id uuid.UUID) (*models.MonthlyReport, error) {
	report := &models.MonthlyReport{ID: id}
	if err := r.db.First(report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get monthly report: %w", err)
	}
	return report, nil
}

// GetByMonthYear retrieves the snapshot for one calendar month, if present
func (r *reportRepository) GetByMonthYear(month, year int) (*models.MonthlyReport, error) {
	var report models.MonthlyReport
	if err := r.db.Where("month = ? AND year = ?", month, year).
		First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get monthly report: %w", err)
	}
	return &report, nil
}

// GetAll retrieves all monthly reports ordered by period
func (r *reportRepository) GetAll() ([]models.MonthlyReport, error) {
	var reports []models.MonthlyReport
	if err := r.db.Order("year ASC, month ASC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to get monthly reports: %w", err)
	}
	return reports, nil
}

// Save inserts the report or updates an existing row in place
func (r *reportRepository) Save(report *models.MonthlyReport) error {
	if err := r.db.Save(report).Error; err != nil {
		return fmt.Errorf("failed to save monthly report: %w", err)
	}
	return nil
}
