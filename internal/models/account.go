package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNameRequired = errors.New("account name is required")
	ErrInvalidCurrency     = errors.New("currency must be a 3-letter code")
)

// Account is a ledger account. Balance tracks the sum of all transactions
// posted against the account; posting goes through the ledger service, which
// adjusts the balance in the same database transaction that inserts the
// posting.
type Account struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Currency  string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
	Budgets      []Budget      `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Currency == "" {
		a.Currency = "USD"
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.Name == "" {
		return ErrAccountNameRequired
	}

	if len(a.Currency) != 3 {
		return ErrInvalidCurrency
	}

	return nil
}

// Post applies a signed transaction amount to the running balance.
// Positive amounts increase the balance, negative amounts decrease it.
func (a *Account) Post(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}
