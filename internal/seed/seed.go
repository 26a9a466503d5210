// Package seed provides the initial catalog contents for a fresh till:
// a built-in sample set, a local JSON file loader and an S3 loader with
// local fallback.
package seed

import (
	"context"

	"tillpoint/internal/model"

	"github.com/shopspring/decimal"
)

// Loader loads catalog seed rows from a named source. For the file loader
// the source is a filesystem path; for the S3 loader it is an object key.
type Loader interface {
	Load(ctx context.Context, source string) ([]model.Product, error)
}

// Builtin returns the built-in sample catalog used when no seed source is
// configured.
func Builtin() []model.Product {
	return []model.Product{
		{Name: "Pancit Canton", Price: decimal.RequireFromString("25.50"), Quantity: 5},
		{Name: "Sardines", Price: decimal.RequireFromString("12.25"), Quantity: 150},
		{Name: "Softdrinks", Price: decimal.RequireFromString("65.99"), Quantity: 30},
		{Name: "C2", Price: decimal.RequireFromString("45.00"), Quantity: 3},
		{Name: "Eggs", Price: decimal.RequireFromString("220.00"), Quantity: 60},
		{Name: "Coffee", Price: decimal.RequireFromString("189.50"), Quantity: 25},
		{Name: "Sugar", Price: decimal.RequireFromString("55.75"), Quantity: 50},
		{Name: "Rice", Price: decimal.RequireFromString("62.50"), Quantity: 35},
	}
}
