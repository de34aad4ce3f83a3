package repositories

import (
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetAll() ([]models.Account, error)
	Update(account *models.Account) error
	// Delete removes the account together with its owned transactions and
	// budgets in a single database transaction. Deleting an absent account
	// is a no-op.
	Delete(id uuid.UUID) error
	// AdjustBalance atomically adds amount to the account balance under a
	// row lock and returns the updated account.
	AdjustBalance(id uuid.UUID, amount decimal.Decimal) (*models.Account, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	// CreatePosted inserts the transaction and, when it is assigned to an
	// existing account, posts the amount to that account's balance in the
	// same database transaction. An account id that does not resolve leaves
	// the transaction unassigned without error.
	CreatePosted(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetAll() ([]models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByID(id uuid.UUID) (*models.Budget, error)
	GetAll() ([]models.Budget, error)
	GetByMonthYear(month, year int) ([]models.Budget, error)
	Update(budget *models.Budget) error
	Delete(id uuid.UUID) error
}

// ReportRepositoryInterface defines the contract for monthly report repository operations
type ReportRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.MonthlyReport, error)
	GetByMonthYear(month, year int) (*models.MonthlyReport, error)
	GetAll() ([]models.MonthlyReport, error)
	// Save inserts the report or updates it in place when it already has an
	// identity, preserving the one-row-per-period invariant.
	Save(report *models.MonthlyReport) error
}
