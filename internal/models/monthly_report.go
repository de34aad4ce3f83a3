package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyReport is a frozen aggregation snapshot for one calendar month.
// At most one row exists per (month, year); the report generator overwrites
// the existing row when it re-runs for the same period.
type MonthlyReport struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Month        int             `gorm:"not null;uniqueIndex:idx_reports_month_year" json:"month"`
	Year         int             `gorm:"not null;uniqueIndex:idx_reports_month_year" json:"year"`
	TotalIncome  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"totalIncome"`
	TotalExpense decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"totalExpense"`
	Summary      string          `gorm:"type:text" json:"summary"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for MonthlyReport
func (r *MonthlyReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return nil
}

// BeforeUpdate hook for MonthlyReport
func (r *MonthlyReport) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}

// TableName returns the table name for MonthlyReport
func (r *MonthlyReport) TableName() string {
	return "monthly_reports"
}
