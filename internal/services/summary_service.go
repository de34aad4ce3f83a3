package services

import (
	"fmt"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

// summaryService implements SummaryServiceInterface. Summarize is a pure
// function over its inputs; SummarizeStored is the only method that touches
// the store.
type summaryService struct {
	txRepo  repositories.TransactionRepositoryInterface
	metrics MetricsRecorderInterface
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	txRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) SummaryServiceInterface {
	return &summaryService{
		txRepo:  txRepo,
		metrics: metrics,
	}
}

// Summarize partitions the transactions into income (amount > 0) and expense
// (amount < 0) and aggregates totals and a per-category breakdown. Zero
// amounts fall in neither bucket. The account filter drops transactions with
// no account. Expense totals and expense category values are absolute values.
//
// When no type filter is given, both totals are computed but the category
// breakdown covers only the expense side; income categories appear in the
// breakdown only under the explicit "income" filter.
func (s *summaryService) Summarize(transactions []models.Transaction, accountID *uuid.UUID, typeFilter string) models.Summary {
	summary := models.NewSummary()

	var income, expense []*models.Transaction
	for i := range transactions {
		t := &transactions[i]
		if accountID != nil && (t.AccountID == nil || *t.AccountID != *accountID) {
			continue
		}
		switch {
		case t.IsIncome():
			income = append(income, t)
		case t.IsExpense():
			expense = append(expense, t)
		}
	}

	switch strings.ToLower(typeFilter) {
	case models.SummaryTypeIncome:
		for _, t := range income {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
			label := t.CategoryLabel()
			summary.ByCategory[label] = summary.ByCategory[label].Add(t.Amount)
		}

	case models.SummaryTypeExpense:
		for _, t := range expense {
			abs := t.Amount.Abs()
			summary.TotalExpense = summary.TotalExpense.Add(abs)
			label := t.CategoryLabel()
			summary.ByCategory[label] = summary.ByCategory[label].Add(abs)
		}

	default:
		for _, t := range income {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		}
		for _, t := range expense {
			abs := t.Amount.Abs()
			summary.TotalExpense = summary.TotalExpense.Add(abs)
			label := t.CategoryLabel()
			summary.ByCategory[label] = summary.ByCategory[label].Add(abs)
		}
	}

	return summary
}

// SummarizeStored aggregates every stored transaction. A filter that matches
// nothing yields a zero summary, never an error.
func (s *summaryService) SummarizeStored(accountID *uuid.UUID, typeFilter string) (models.Summary, error) {
	transactions, err := s.txRepo.GetAll()
	if err != nil {
		return models.Summary{}, fmt.Errorf("failed to load transactions for summary: %w", err)
	}

	s.metrics.RecordSummaryRequest(strings.ToLower(typeFilter))

	return s.Summarize(transactions, accountID, typeFilter), nil
}
