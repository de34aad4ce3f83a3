package dto

import (
	"fintrack/internal/models"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating an account.
// Balance and other monetary fields travel as strings so they can be parsed
// into exact decimals.
type CreateAccountRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Currency string `json:"currency" validate:"omitempty,currency_code"`
	Balance  string `json:"balance" validate:"omitempty,decimal_amount"`
}

// UpdateAccountRequest represents the request payload for updating an account
type UpdateAccountRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Currency string `json:"currency" validate:"omitempty,currency_code"`
	Balance  string `json:"balance" validate:"omitempty,decimal_amount"`
}

// AdjustBalanceRequest represents the request payload for a balance adjustment
type AdjustBalanceRequest struct {
	Amount string `json:"amount" validate:"required,decimal_amount"`
}

// Account Response DTOs

// AccountListResponse represents a list of accounts
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
	Total    int              `json:"total"`
}
