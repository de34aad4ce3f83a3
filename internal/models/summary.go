package models

import (
	"github.com/shopspring/decimal"
)

// Summary is the output of the aggregation engine: income and expense totals
// plus a per-category breakdown. TotalExpense and the ByCategory expense
// values hold absolute values; the sign convention lives on the transactions
// themselves.
type Summary struct {
	TotalIncome  decimal.Decimal            `json:"totalIncome"`
	TotalExpense decimal.Decimal            `json:"totalExpense"`
	ByCategory   map[string]decimal.Decimal `json:"byCategory"`
}

// NewSummary returns a zero-valued summary with an initialized category map
func NewSummary() Summary {
	return Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		ByCategory:   make(map[string]decimal.Decimal),
	}
}
