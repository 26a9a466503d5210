package service

import (
	"tillpoint/internal/model"

	"github.com/shopspring/decimal"
)

// CatalogService defines operations for product catalog management.
//
// All operations are synchronous and immediate: the catalog lives in memory
// and the till has a single operator, so nothing here blocks or suspends.
type CatalogService interface {
	// AddProduct appends a new product to the catalog. It fails with a
	// DuplicateNameError if a case-insensitive name match already exists.
	AddProduct(name string, price decimal.Decimal, quantity int) error

	// FindExact retrieves a product by case-insensitive exact name match.
	FindExact(name string) (*model.Product, error)

	// Search retrieves all products whose names contain the substring,
	// case-insensitively, in catalog order. An empty substring lists the
	// whole catalog.
	Search(substring string) []*model.Product

	// ListAll retrieves the full catalog in insertion order.
	ListAll() []*model.Product

	// Reprice changes a product's unit price in place and returns the old
	// price.
	Reprice(name string, newPrice decimal.Decimal) (decimal.Decimal, error)

	// Restock increases a product's on-hand quantity and returns the new
	// quantity. Only positive deltas are supported.
	Restock(name string, delta int) (int, error)

	// LowStock retrieves all products with on-hand quantity at or below
	// threshold, in catalog order.
	LowStock(threshold int) []*model.Product
}

// CartService defines operations for the transaction in progress.
type CartService interface {
	// AddItem adds a quantity of a catalog product to the cart, merging into
	// an existing line for the same product if one is present. It returns a
	// human-readable confirmation message.
	AddItem(productName string, quantity int) (string, error)

	// Items returns a snapshot of the current cart lines.
	Items() []*model.CartLine

	// Total returns the sum of all line subtotals.
	Total() decimal.Decimal

	// Clear empties the cart without touching the catalog.
	Clear()
}

// CheckoutService defines operations for finalizing sales.
type CheckoutService interface {
	// Checkout finalizes the current cart: decrements catalog stock, appends
	// a sale record to the ledger and empties the cart. It fails with
	// ErrEmptyCart when the cart has no lines.
	Checkout() (*model.SaleRecord, error)

	// History returns the full sales ledger, newest first.
	History() []*model.SaleRecord
}
