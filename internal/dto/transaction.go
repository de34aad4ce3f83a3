package dto

import (
	"time"

	"fintrack/internal/models"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for creating a
// transaction. The amount is signed: positive for income, negative for
// expense. AccountID is optional; an id that does not resolve to an account
// leaves the transaction unassigned.
type CreateTransactionRequest struct {
	Description string     `json:"description" validate:"required,min=1,max=255"`
	Amount      string     `json:"amount" validate:"required,decimal_amount"`
	Category    string     `json:"category" validate:"omitempty,max=100"`
	Date        *time.Time `json:"date"`
	AccountID   *string    `json:"account_id" validate:"omitempty,uuid"`
}

// UpdateTransactionRequest represents the request payload for updating a
// transaction. Account assignment and timestamp are immutable.
type UpdateTransactionRequest struct {
	Description string `json:"description" validate:"required,min=1,max=255"`
	Amount      string `json:"amount" validate:"required,decimal_amount"`
	Category    string `json:"category" validate:"omitempty,max=100"`
}

// Transaction Response DTOs

// TransactionListResponse represents a list of transactions
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
}
