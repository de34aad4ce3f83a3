package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryUncategorized is the fallback label for transactions without a
// category.
const CategoryUncategorized = "Uncategorized"

// Type filter values accepted by the summary endpoint.
const (
	SummaryTypeIncome  = "income"
	SummaryTypeExpense = "expense"
)

var (
	ErrDescriptionRequired = errors.New("transaction description is required")
	ErrCategoryTooLong     = errors.New("category label too long")
)

// Transaction is a single ledger entry. The sign of Amount encodes the
// direction: positive is income, negative is expense, zero is neutral.
// AccountID is nil while the transaction is unassigned; assigning it to an
// account at creation time posts the amount to that account's balance.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(100)" json:"category,omitempty"`
	OccurredAt  time.Time       `gorm:"not null;index" json:"date"`
	AccountID   *uuid.UUID      `gorm:"type:uuid;index" json:"account_id,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Account *Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	if t.OccurredAt.IsZero() {
		t.OccurredAt = now
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Description == "" {
		return ErrDescriptionRequired
	}

	if len(t.Category) > 100 {
		return ErrCategoryTooLong
	}

	return nil
}

// IsIncome returns true for strictly positive amounts
func (t *Transaction) IsIncome() bool {
	return t.Amount.GreaterThan(decimal.Zero)
}

// IsExpense returns true for strictly negative amounts
func (t *Transaction) IsExpense() bool {
	return t.Amount.LessThan(decimal.Zero)
}

// CategoryLabel returns the grouping label for the transaction, falling back
// to CategoryUncategorized when no category is set.
func (t *Transaction) CategoryLabel() string {
	if t.Category == "" {
		return CategoryUncategorized
	}
	return t.Category
}

// Assigned returns true if the transaction is posted to an account
func (t *Transaction) Assigned() bool {
	return t.AccountID != nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
