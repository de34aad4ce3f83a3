package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetRepo repositories.BudgetRepositoryInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetRepo repositories.BudgetRepositoryInterface) *BudgetHandler {
	return &BudgetHandler{budgetRepo: budgetRepo}
}

// CreateBudget creates a new category budget for a period
// @Summary Create a budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} models.Budget "Budget created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	limit, err := decimal.NewFromString(req.LimitAmount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid limit amount"))
	}

	var accountID *uuid.UUID
	if req.AccountID != nil && *req.AccountID != "" {
		id, err := uuid.Parse(*req.AccountID)
		if err != nil {
			return SendError(c, errors.AccountInvalidID, errors.WithDetails("Invalid account_id"))
		}
		accountID = &id
	}

	budget := &models.Budget{
		Category:    req.Category,
		LimitAmount: limit,
		Month:       req.Month,
		Year:        req.Year,
		AccountID:   accountID,
	}

	if err := h.budgetRepo.Create(budget); err != nil {
		if err == models.ErrInvalidBudgetMonth {
			return SendError(c, errors.BudgetInvalidMonth, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, budget)
}

// GetBudget retrieves a specific budget by ID
// @Summary Get budget by ID
// @Tags Budgets
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Success 200 {object} models.Budget "Budget details"
// @Failure 400 {object} errors.ErrorResponse "BUDGET_002 - Invalid budget ID"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.BudgetInvalidID, errors.WithDetails(err.Error()))
	}

	budget, err := h.budgetRepo.GetByID(id)
	if err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// ListBudgets retrieves budgets, optionally narrowed to a month/year period
// @Summary List budgets
// @Tags Budgets
// @Produce json
// @Param month query int false "Month (1-12), requires year"
// @Param year query int false "Year, requires month"
// @Success 200 {object} dto.BudgetListResponse "Budgets"
// @Failure 400 {object} errors.ErrorResponse "BUDGET_003 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	month := getIntParam(c, "month", 0)
	year := getIntParam(c, "year", 0)

	var budgets []models.Budget
	var err error
	if month != 0 && year != 0 {
		if month < 1 || month > 12 {
			return SendError(c, errors.BudgetInvalidMonth, errors.WithDetails("month must be between 1 and 12"))
		}
		budgets, err = h.budgetRepo.GetByMonthYear(month, year)
	} else {
		budgets, err = h.budgetRepo.GetAll()
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetListResponse{
		Budgets: budgets,
		Total:   len(budgets),
	})
}

// UpdateBudget overwrites the mutable budget fields
// @Summary Update a budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Param request body dto.UpdateBudgetRequest true "Updated budget details"
// @Success 200 {object} models.Budget "Updated budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.BudgetInvalidID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	limit, err := decimal.NewFromString(req.LimitAmount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid limit amount"))
	}

	budget, err := h.budgetRepo.GetByID(id)
	if err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	budget.Category = req.Category
	budget.LimitAmount = limit
	budget.Month = req.Month
	budget.Year = req.Year

	if err := h.budgetRepo.Update(budget); err != nil {
		if err == models.ErrInvalidBudgetMonth {
			return SendError(c, errors.BudgetInvalidMonth, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// DeleteBudget removes a budget
// @Summary Delete a budget
// @Tags Budgets
// @Param id path string true "Budget ID (UUID)"
// @Success 204 "Budget deleted"
// @Failure 400 {object} errors.ErrorResponse "BUDGET_002 - Invalid budget ID"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.BudgetInvalidID, errors.WithDetails(err.Error()))
	}

	if err := h.budgetRepo.Delete(id); err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
