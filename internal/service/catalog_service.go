package service

import (
	"strings"

	"tillpoint/internal/model"
	"tillpoint/internal/store"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// catalogService implements CatalogService.
type catalogService struct {
	catalog store.CatalogStore
	logger  zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog store.CatalogStore, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalog: catalog,
		logger:  logger.With().Str("service", "catalog").Logger(),
	}
}

// AddProduct appends a new product to the catalog.
func (s *catalogService) AddProduct(name string, price decimal.Decimal, quantity int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ErrInvalidName
	}
	if price.IsNegative() {
		return model.ErrInvalidPrice
	}
	if quantity < 0 {
		return model.ErrInvalidQuantity
	}

	if existing := s.catalog.FindExact(name); existing != nil {
		s.logger.Warn().
			Str("name", name).
			Str("existing_name", existing.Name).
			Msg("duplicate product name")
		return &model.DuplicateNameError{Name: name}
	}

	s.catalog.Append(&model.Product{
		Name:     name,
		Price:    price,
		Quantity: quantity,
	})

	s.logger.Info().
		Str("name", name).
		Str("price", price.StringFixed(2)).
		Int("quantity", quantity).
		Msg("product added to catalog")

	return nil
}

// FindExact retrieves a product by case-insensitive exact name match.
func (s *catalogService) FindExact(name string) (*model.Product, error) {
	product := s.catalog.FindExact(name)
	if product == nil {
		s.logger.Debug().Str("name", name).Msg("product not found")
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

// Search retrieves all products matching the substring in catalog order.
func (s *catalogService) Search(substring string) []*model.Product {
	results := s.catalog.FindContains(strings.TrimSpace(substring))

	s.logger.Debug().
		Str("substring", substring).
		Int("count", len(results)).
		Msg("catalog search")

	return results
}

// ListAll retrieves the full catalog in insertion order.
func (s *catalogService) ListAll() []*model.Product {
	return s.catalog.All()
}

// Reprice changes a product's unit price in place.
func (s *catalogService) Reprice(name string, newPrice decimal.Decimal) (decimal.Decimal, error) {
	if newPrice.IsNegative() {
		return decimal.Zero, model.ErrInvalidPrice
	}

	product := s.catalog.FindExact(name)
	if product == nil {
		s.logger.Debug().Str("name", name).Msg("product not found for reprice")
		return decimal.Zero, model.ErrProductNotFound
	}

	oldPrice := product.Price
	product.Price = newPrice

	s.logger.Info().
		Str("name", product.Name).
		Str("old_price", oldPrice.StringFixed(2)).
		Str("new_price", newPrice.StringFixed(2)).
		Msg("product repriced")

	return oldPrice, nil
}

// Restock increases a product's on-hand quantity. Negative and zero deltas
// are rejected; shrinking stock outside a sale is not supported.
func (s *catalogService) Restock(name string, delta int) (int, error) {
	if delta <= 0 {
		return 0, model.ErrInvalidRestock
	}

	product := s.catalog.FindExact(name)
	if product == nil {
		s.logger.Debug().Str("name", name).Msg("product not found for restock")
		return 0, model.ErrProductNotFound
	}

	product.Quantity += delta

	s.logger.Info().
		Str("name", product.Name).
		Int("delta", delta).
		Int("quantity", product.Quantity).
		Msg("product restocked")

	return product.Quantity, nil
}

// LowStock retrieves all products at or below the threshold quantity.
func (s *catalogService) LowStock(threshold int) []*model.Product {
	low := s.catalog.LowStock(threshold)

	s.logger.Debug().
		Int("threshold", threshold).
		Int("count", len(low)).
		Msg("low stock check")

	return low
}
