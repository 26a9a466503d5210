package model

import "github.com/shopspring/decimal"

// CartLine is one product-quantity pairing in the current transaction.
//
// The line holds a non-owning pointer into the catalog: price and name are
// read through it, never copied, except into the cached Subtotal. The cart
// holds at most one line per distinct product name.
type CartLine struct {
	Product  *Product        `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// NewCartLine creates a line for a product at the product's current price.
func NewCartLine(p *Product, quantity int) *CartLine {
	return &CartLine{
		Product:  p,
		Quantity: quantity,
		Subtotal: p.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// Merge increases the line quantity and recomputes the subtotal from the
// product's current price, so a reprice between two adds is picked up.
func (l *CartLine) Merge(quantity int) {
	l.Quantity += quantity
	l.Subtotal = l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
