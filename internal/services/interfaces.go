package services

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionInput carries the fields accepted when creating a
// transaction. OccurredAt defaults to the service clock when nil; AccountID
// is optional and may reference an account that no longer exists.
type CreateTransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	OccurredAt  *time.Time
	AccountID   *uuid.UUID
}

// UpdateTransactionInput carries the mutable transaction fields. The owning
// account and the timestamp cannot be changed after creation.
type UpdateTransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Category    string
}

// LedgerServiceInterface defines transaction management operations
type LedgerServiceInterface interface {
	CreateTransaction(input CreateTransactionInput) (*models.Transaction, error)
	GetTransaction(id uuid.UUID) (*models.Transaction, error)
	ListTransactions(from, to *time.Time) ([]models.Transaction, error)
	UpdateTransaction(id uuid.UUID, input UpdateTransactionInput) (*models.Transaction, error)
	DeleteTransaction(id uuid.UUID) error
}

// SummaryServiceInterface defines the aggregation engine operations
type SummaryServiceInterface interface {
	// Summarize is the pure aggregation over an in-memory transaction set.
	Summarize(transactions []models.Transaction, accountID *uuid.UUID, typeFilter string) models.Summary
	// SummarizeStored loads all transactions from the store and aggregates them.
	SummarizeStored(accountID *uuid.UUID, typeFilter string) (models.Summary, error)
}

// ReportServiceInterface defines the monthly report generator
type ReportServiceInterface interface {
	// GeneratePreviousMonthReport aggregates the calendar month before the
	// service clock's current date and upserts the snapshot for that period.
	GeneratePreviousMonthReport() (*models.MonthlyReport, error)
}

// MetricsRecorderInterface records ledger metrics
type MetricsRecorderInterface interface {
	RecordPosting(outcome string, duration time.Duration)
	RecordSummaryRequest(typeFilter string)
	RecordMonthlyReport(outcome string)
}
