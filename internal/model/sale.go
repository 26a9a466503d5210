package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRecord is an immutable snapshot of a finalized transaction.
//
// Items is a textual summary of the purchased lines, "{qty}x {name}" pairs
// joined by ", ". Records are never mutated or removed once appended to the
// ledger.
type SaleRecord struct {
	ID        uuid.UUID       `json:"id"`
	Cashier   string          `json:"cashier"`
	Items     string          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}

// DisplayTotal renders the sale total with two-decimal fixed precision.
func (s *SaleRecord) DisplayTotal() string {
	return s.Total.StringFixed(2)
}
