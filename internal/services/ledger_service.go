package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("resource not found")
)

// ledgerService implements LedgerServiceInterface. Posting a transaction
// against an account and updating that account's balance happen as one unit
// of work at the repository layer; the service never observes a partially
// applied posting.
type ledgerService struct {
	txRepo  repositories.TransactionRepositoryInterface
	metrics MetricsRecorderInterface
	clock   func() time.Time
}

// NewLedgerService creates a new ledger service. A nil clock defaults to
// time.Now; tests inject a fixed clock.
func NewLedgerService(
	txRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	clock func() time.Time,
) LedgerServiceInterface {
	if clock == nil {
		clock = time.Now
	}
	return &ledgerService{
		txRepo:  txRepo,
		metrics: metrics,
		clock:   clock,
	}
}

func (s *ledgerService) CreateTransaction(input CreateTransactionInput) (*models.Transaction, error) {
	start := s.clock()

	occurredAt := start
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	transaction := &models.Transaction{
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
		OccurredAt:  occurredAt,
		AccountID:   input.AccountID,
	}

	if err := s.txRepo.CreatePosted(transaction); err != nil {
		s.metrics.RecordPosting("error", time.Since(start))
		slog.Error("failed to create transaction",
			"description", input.Description,
			"error", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.RecordPosting("success", time.Since(start))
	slog.Info("transaction created",
		"transaction_id", transaction.ID,
		"amount", transaction.Amount.String(),
		"assigned", transaction.Assigned())

	return transaction, nil
}

func (s *ledgerService) GetTransaction(id uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.txRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// ListTransactions returns transactions with OccurredAt in [from, to] when
// both bounds are given, otherwise all transactions in store iteration order.
func (s *ledgerService) ListTransactions(from, to *time.Time) ([]models.Transaction, error) {
	if from != nil && to != nil {
		return s.txRepo.GetWithFilters(models.TransactionFilters{From: from, To: to})
	}
	return s.txRepo.GetAll()
}

// UpdateTransaction overwrites description, amount, and category. The owning
// account's balance is not re-adjusted when the amount changes: balances
// reflect amounts as they were at posting time.
func (s *ledgerService) UpdateTransaction(id uuid.UUID, input UpdateTransactionInput) (*models.Transaction, error) {
	transaction, err := s.txRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	transaction.Description = input.Description
	transaction.Amount = input.Amount
	transaction.Category = input.Category

	if err := s.txRepo.Update(transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	slog.Info("transaction updated", "transaction_id", transaction.ID)

	return transaction, nil
}

// DeleteTransaction removes a transaction. The owning account's balance is
// not reversed; see UpdateTransaction.
func (s *ledgerService) DeleteTransaction(id uuid.UUID) error {
	if err := s.txRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	slog.Info("transaction deleted", "transaction_id", id)

	return nil
}
