package model

import "github.com/shopspring/decimal"

// Product represents a catalog item on the till.
//
// The catalog exclusively owns Product values: no other component creates or
// destroys them, and they are mutated in place by reprice, restock and
// checkout. Names are case-preserving but compared case-insensitively.
type Product struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// DisplayPrice renders the unit price with two-decimal fixed precision.
func (p *Product) DisplayPrice() string {
	return p.Price.StringFixed(2)
}
