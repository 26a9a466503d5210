package store

import (
	"tillpoint/internal/model"

	"github.com/shopspring/decimal"
)

// CatalogStore defines the interface for product list access.
//
// The catalog is append-only with respect to list structure: entries are
// mutated in place through the returned pointers, never removed.
type CatalogStore interface {
	// Append adds a product at the tail of the list, preserving insertion
	// order for display.
	Append(p *model.Product)

	// FindExact returns the first case-insensitive exact name match, or nil.
	FindExact(name string) *model.Product

	// FindContains returns all case-insensitive substring matches in list
	// order. An empty substring matches every entry.
	FindContains(substring string) []*model.Product

	// All returns the full catalog in insertion order.
	All() []*model.Product

	// LowStock returns all products with quantity at or below threshold,
	// in catalog order.
	LowStock(threshold int) []*model.Product
}

// CartStore defines the interface for the in-progress transaction lines.
type CartStore interface {
	// Push inserts a new line at the head of the list.
	Push(line *model.CartLine)

	// Find returns the line for a product name (case-insensitive), or nil.
	Find(productName string) *model.CartLine

	// Items returns a snapshot of the current lines, head first.
	Items() []*model.CartLine

	// Total sums the cached subtotals of all lines.
	Total() decimal.Decimal

	// Len reports the number of lines.
	Len() int

	// Clear resets the cart to empty without touching the catalog.
	Clear()
}

// LedgerStore defines the interface for the append-only sales history.
type LedgerStore interface {
	// Prepend inserts a record at the head, keeping the ledger newest-first.
	Prepend(rec *model.SaleRecord)

	// All returns the full history, newest first.
	All() []*model.SaleRecord
}
