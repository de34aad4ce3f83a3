package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrBudgetCategoryRequired = errors.New("budget category is required")
	ErrInvalidBudgetMonth     = errors.New("budget month must be between 1 and 12")
	ErrInvalidBudgetYear      = errors.New("budget year is required")
)

// Budget is a per-category spending limit for one calendar month. Budgets are
// owned by an account the same way transactions are; they are deleted when
// their account is deleted. The aggregation engine does not consume budgets.
type Budget struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Category    string          `gorm:"type:varchar(100);not null" json:"category"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"limit_amount"`
	Month       int             `gorm:"not null" json:"month"`
	Year        int             `gorm:"not null" json:"year"`
	AccountID   *uuid.UUID      `gorm:"type:uuid;index" json:"account_id,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Account *Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.Category == "" {
		return ErrBudgetCategoryRequired
	}

	if b.Month < 1 || b.Month > 12 {
		return ErrInvalidBudgetMonth
	}

	if b.Year == 0 {
		return ErrInvalidBudgetYear
	}

	return nil
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}
