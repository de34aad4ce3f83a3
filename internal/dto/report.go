package dto

import (
	"fintrack/internal/models"
)

// Report Response DTOs

// ReportListResponse represents a list of monthly report snapshots
type ReportListResponse struct {
	Reports []models.MonthlyReport `json:"reports"`
	Total   int                    `json:"total"`
}
