package dto

import (
	"fintrack/internal/models"
)

// Budget Request DTOs

// CreateBudgetRequest represents the request payload for creating a budget
type CreateBudgetRequest struct {
	Category    string  `json:"category" validate:"required,min=1,max=100"`
	LimitAmount string  `json:"limit_amount" validate:"required,decimal_amount"`
	Month       int     `json:"month" validate:"required,min=1,max=12"`
	Year        int     `json:"year" validate:"required,min=1970"`
	AccountID   *string `json:"account_id" validate:"omitempty,uuid"`
}

// UpdateBudgetRequest represents the request payload for updating a budget
type UpdateBudgetRequest struct {
	Category    string `json:"category" validate:"required,min=1,max=100"`
	LimitAmount string `json:"limit_amount" validate:"required,decimal_amount"`
	Month       int    `json:"month" validate:"required,min=1,max=12"`
	Year        int    `json:"year" validate:"required,min=1970"`
}

// Budget Response DTOs

// BudgetListResponse represents a list of budgets
type BudgetListResponse struct {
	Budgets []models.Budget `json:"budgets"`
	Total   int             `json:"total"`
}
