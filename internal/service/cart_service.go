package service

import (
	"fmt"

	"tillpoint/internal/model"
	"tillpoint/internal/store"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// cartService implements CartService.
type cartService struct {
	catalog store.CatalogStore
	cart    store.CartStore
	logger  zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(catalog store.CatalogStore, cart store.CartStore, logger zerolog.Logger) CartService {
	return &cartService{
		catalog: catalog,
		cart:    cart,
		logger:  logger.With().Str("service", "cart").Logger(),
	}
}

// AddItem adds a quantity of a catalog product to the cart.
//
// Each call validates only the additional quantity against the product's
// current on-hand stock, not the cumulative cart quantity. When a line for
// the product already exists its subtotal is recomputed from the current
// price, so a reprice between two adds is picked up.
func (s *cartService) AddItem(productName string, quantity int) (string, error) {
	if quantity <= 0 {
		return "", model.ErrInvalidQuantity
	}

	product := s.catalog.FindExact(productName)
	if product == nil {
		s.logger.Debug().Str("name", productName).Msg("product not found for cart add")
		return "", model.ErrProductNotFound
	}

	if quantity > product.Quantity {
		s.logger.Warn().
			Str("name", product.Name).
			Int("requested", quantity).
			Int("available", product.Quantity).
			Msg("insufficient stock for cart add")
		return "", &model.InsufficientStockError{
			Name:      product.Name,
			Available: product.Quantity,
		}
	}

	if line := s.cart.Find(product.Name); line != nil {
		line.Merge(quantity)
		s.logger.Info().
			Str("name", product.Name).
			Int("added", quantity).
			Int("quantity", line.Quantity).
			Msg("cart line merged")
		return fmt.Sprintf("Updated %s quantity to %d", product.Name, line.Quantity), nil
	}

	s.cart.Push(model.NewCartLine(product, quantity))

	s.logger.Info().
		Str("name", product.Name).
		Int("quantity", quantity).
		Msg("cart line added")

	return fmt.Sprintf("Added %d x %s to cart", quantity, product.Name), nil
}

// Items returns a snapshot of the current cart lines.
func (s *cartService) Items() []*model.CartLine {
	return s.cart.Items()
}

// Total returns the sum of all line subtotals.
func (s *cartService) Total() decimal.Decimal {
	return s.cart.Total()
}

// Clear empties the cart.
func (s *cartService) Clear() {
	s.cart.Clear()
	s.logger.Info().Msg("cart cleared")
}
