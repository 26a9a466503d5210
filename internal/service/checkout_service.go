package service

import (
	"fmt"
	"strings"
	"time"

	"tillpoint/internal/model"
	"tillpoint/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	cart    store.CartStore
	ledger  store.LedgerStore
	cashier string
	logger  zerolog.Logger
}

// NewCheckoutService creates a new checkout service. The cashier label is
// stamped onto every sale record.
func NewCheckoutService(cart store.CartStore, ledger store.LedgerStore, cashier string, logger zerolog.Logger) CheckoutService {
	return &checkoutService{
		cart:    cart,
		ledger:  ledger,
		cashier: cashier,
		logger:  logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout finalizes the current cart into a ledger entry.
//
// Stock is decremented unconditionally for every line; sufficiency was
// checked at add time and is not re-validated here, so a quantity can go
// negative if the same stock was consumed through another path in between.
// All decrements happen before the ledger is touched, so a caller never
// observes a partially applied sale.
func (s *checkoutService) Checkout() (*model.SaleRecord, error) {
	if s.cart.Len() == 0 {
		s.logger.Debug().Msg("checkout on empty cart")
		return nil, model.ErrEmptyCart
	}

	lines := s.cart.Items()
	total := s.cart.Total()

	summary := make([]string, 0, len(lines))
	for _, line := range lines {
		line.Product.Quantity -= line.Quantity
		summary = append(summary, fmt.Sprintf("%dx %s", line.Quantity, line.Product.Name))
	}

	record := &model.SaleRecord{
		ID:        uuid.New(),
		Cashier:   s.cashier,
		Items:     strings.Join(summary, ", "),
		Total:     total,
		CreatedAt: time.Now(),
	}

	s.ledger.Prepend(record)
	s.cart.Clear()

	s.logger.Info().
		Str("sale_id", record.ID.String()).
		Int("line_count", len(lines)).
		Str("total", total.StringFixed(2)).
		Msg("sale finalized")

	return record, nil
}

// History returns the full sales ledger, newest first.
func (s *checkoutService) History() []*model.SaleRecord {
	return s.ledger.All()
}
