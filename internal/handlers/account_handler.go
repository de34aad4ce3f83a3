package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountRepo repositories.AccountRepositoryInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountRepo repositories.AccountRepositoryInterface) *AccountHandler {
	return &AccountHandler{accountRepo: accountRepo}
}

// CreateAccount creates a new account
// @Summary Create a new account
// @Description Create an account with an optional currency and opening balance
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} models.Account "Account created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	balance := decimal.Zero
	if req.Balance != "" {
		var err error
		balance, err = decimal.NewFromString(req.Balance)
		if err != nil {
			return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid balance amount"))
		}
	}

	account := &models.Account{
		Name:     req.Name,
		Currency: req.Currency,
		Balance:  balance,
	}

	if err := h.accountRepo.Create(account); err != nil {
		if err == models.ErrAccountNameRequired {
			return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
		}
		if err == models.ErrInvalidCurrency {
			return SendError(c, errors.AccountInvalidCurrency, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, account)
}

// GetAccount retrieves a specific account by ID
// @Summary Get account by ID
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} models.Account "Account details"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 - Invalid account ID"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.AccountInvalidID, errors.WithDetails(err.Error()))
	}

	account, err := h.accountRepo.GetByID(id)
	if err != nil {
		if err == repositories.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// ListAccounts retrieves all accounts
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Success 200 {object} dto.AccountListResponse "Accounts"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

// UpdateAccount overwrites the mutable account fields
// @Summary Update an account
// @Description Overwrite the account name, currency and balance
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param request body dto.UpdateAccountRequest true "Updated account details"
// @Success 200 {object} models.Account "Updated account"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.AccountInvalidID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountRepo.GetByID(id)
	if err != nil {
		if err == repositories.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	account.Name = req.Name
	if req.Currency != "" {
		account.Currency = req.Currency
	}
	if req.Balance != "" {
		balance, err := decimal.NewFromString(req.Balance)
		if err != nil {
			return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid balance amount"))
		}
		account.Balance = balance
	}

	if err := h.accountRepo.Update(account); err != nil {
		if err == models.ErrInvalidCurrency {
			return SendError(c, errors.AccountInvalidCurrency, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// DeleteAccount removes an account together with its transactions and budgets
// @Summary Delete an account
// @Description Delete the account and cascade to its transactions and budgets. Deleting an absent account succeeds.
// @Tags Accounts
// @Param id path string true "Account ID (UUID)"
// @Success 204 "Account deleted"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 - Invalid account ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.AccountInvalidID, errors.WithDetails(err.Error()))
	}

	if err := h.accountRepo.Delete(id); err != nil {
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdjustBalance applies a signed adjustment to the account balance
// @Summary Adjust account balance
// @Description Atomically add a signed amount to the account balance
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param request body dto.AdjustBalanceRequest true "Signed adjustment amount"
// @Success 200 {object} models.Account "Updated account"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{id}/balance [post]
func (h *AccountHandler) AdjustBalance(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.AccountInvalidID, errors.WithDetails(err.Error()))
	}

	var req dto.AdjustBalanceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid adjustment amount"))
	}

	account, err := h.accountRepo.AdjustBalance(id, amount)
	if err != nil {
		if err == repositories.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}
