package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction without touching any account balance
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreatePosted inserts the transaction and posts its amount to the assigned
// account inside a single database transaction: either both the row insert
// and the balance update persist, or neither does. The balance update is a
// relative increment executed in the database, so concurrent postings against
// the same account compose instead of overwriting each other. An AccountID
// that does not resolve leaves the transaction unassigned.
func (r *transactionRepository) CreatePosted(transaction *models.Transaction) error {
	if transaction.AccountID == nil {
		return r.Create(transaction)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		rows, err := postToBalance(tx, *transaction.AccountID, transaction.Amount)
		if err != nil {
			return fmt.Errorf("failed to post transaction to account: %w", err)
		}
		if rows == 0 {
			// Unknown account: keep the transaction, drop the assignment.
			transaction.AccountID = nil
		}

		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetAll retrieves all transactions in store iteration order
func (r *transactionRepository) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetWithFilters retrieves transactions matching the filters. The time range
// applies only when both bounds are set, and is inclusive on both ends.
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, error) {
	query := r.db.Model(&models.Transaction{})

	if filters.AccountID != nil {
		query = query.Where("account_id = ?", *filters.AccountID)
	}
	if filters.HasRange() {
		query = query.Where("occurred_at BETWEEN ? AND ?", *filters.From, *filters.To)
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get filtered transactions: %w", err)
	}
	return transactions, nil
}

// Update updates a transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := r.db.Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// Delete removes a transaction. Returns ErrTransactionNotFound without any
// store mutation when the id does not resolve.
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
