package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledgerService services.LedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// CreateTransaction records a new transaction and posts it to its account
// @Summary Create a transaction
// @Description Record a signed transaction. When account_id resolves to an existing account the amount is posted to its balance atomically; an unresolvable id leaves the transaction unassigned.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} models.Transaction "Transaction created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid transaction amount"))
	}

	var accountID *uuid.UUID
	if req.AccountID != nil && *req.AccountID != "" {
		id, err := uuid.Parse(*req.AccountID)
		if err != nil {
			return SendError(c, errors.AccountInvalidID, errors.WithDetails("Invalid account_id"))
		}
		accountID = &id
	}

	transaction, err := h.ledgerService.CreateTransaction(services.CreateTransactionInput{
		Description: req.Description,
		Amount:      amount,
		Category:    req.Category,
		OccurredAt:  req.Date,
		AccountID:   accountID,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, transaction)
}

// GetTransaction retrieves a specific transaction by ID
// @Summary Get transaction by ID
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction "Transaction details"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TransactionInvalidID, errors.WithDetails(err.Error()))
	}

	transaction, err := h.ledgerService.GetTransaction(id)
	if err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// ListTransactions retrieves transactions, optionally bounded by a date range
// @Summary List transactions
// @Description List all transactions. When both from and to are supplied only transactions inside the inclusive range are returned; a single bound is ignored.
// @Tags Transactions
// @Produce json
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Success 200 {object} dto.TransactionListResponse "Transactions"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date parameter"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	transactions, err := h.ledgerService.ListTransactions(from, to)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
	})
}

// UpdateTransaction overwrites the mutable transaction fields
// @Summary Update a transaction
// @Description Overwrite description, amount and category. Account balances are not readjusted; they reflect amounts as posted.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Updated transaction details"
// @Success 200 {object} models.Transaction "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TransactionInvalidID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Invalid transaction amount"))
	}

	transaction, err := h.ledgerService.UpdateTransaction(id, services.UpdateTransactionInput{
		Description: req.Description,
		Amount:      amount,
		Category:    req.Category,
	})
	if err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes a transaction
// @Summary Delete a transaction
// @Description Delete the transaction. Account balances are not readjusted.
// @Tags Transactions
// @Param id path string true "Transaction ID (UUID)"
// @Success 204 "Transaction deleted"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TransactionInvalidID, errors.WithDetails(err.Error()))
	}

	if err := h.ledgerService.DeleteTransaction(id); err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
