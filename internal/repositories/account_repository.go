package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{ID: id}
	if err := r.db.First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetAll retrieves all accounts
func (r *accountRepository) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// Update updates an account
func (r *accountRepository) Update(account *models.Account) error {
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// Delete removes an account and cascades deletion of its owned transactions
// and budgets. The account is the arena: its entries have no independent
// lifetime once the owner is gone. Deleting an absent account is a no-op.
func (r *accountRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to delete account transactions: %w", err)
		}

		if err := tx.Where("account_id = ?", id).Delete(&models.Budget{}).Error; err != nil {
			return fmt.Errorf("failed to delete account budgets: %w", err)
		}

		if err := tx.Delete(&models.Account{ID: id}).Error; err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}

		return nil
	})
}

// AdjustBalance adds amount to the account balance. The increment runs in the
// database (balance = balance + ?), so concurrent adjustments against the same
// account compose instead of losing updates.
func (r *accountRepository) AdjustBalance(id uuid.UUID, amount decimal.Decimal) (*models.Account, error) {
	var account models.Account

	err := r.db.Transaction(func(tx *gorm.DB) error {
		rows, err := postToBalance(tx, id, amount)
		if err != nil {
			return fmt.Errorf("failed to update account balance: %w", err)
		}
		if rows == 0 {
			return ErrAccountNotFound
		}

		if err := tx.First(&account, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to reload account: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// postToBalance applies a relative balance increment for the account. Doing
// the arithmetic in the database keeps the read-modify-write out of Go, where
// it would race under concurrent postings. Returns the number of matched rows;
// zero means the account does not exist.
func postToBalance(tx *gorm.DB, id uuid.UUID, amount decimal.Decimal) (int64, error) {
	result := tx.Model(&models.Account{}).
		Where("id = ?", id).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
