package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters narrows transaction listings. A nil field means the
// dimension is not filtered. From and To are inclusive bounds on OccurredAt
// and only apply when both are set.
type TransactionFilters struct {
	AccountID *uuid.UUID
	From      *time.Time
	To        *time.Time
}

// HasRange returns true when both time bounds are set
func (f TransactionFilters) HasRange() bool {
	return f.From != nil && f.To != nil
}
