package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"tillpoint/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading JSON seed files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a JSON seed file and returns its product rows.
// The file is expected to contain a JSON array of products.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.Product, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	var products []model.Product
	if err := json.NewDecoder(file).Decode(&products); err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode seed file")
		return nil, fmt.Errorf("failed to decode seed file %s: %w", filePath, err)
	}

	if err := validateRows(products); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(products)).
		Msg("seed file loaded successfully")

	return products, nil
}

// validateRows rejects seed rows the catalog could never accept.
func validateRows(products []model.Product) error {
	for i, p := range products {
		if p.Name == "" {
			return fmt.Errorf("row %d: product name is empty", i)
		}
		if p.Price.IsNegative() {
			return fmt.Errorf("row %d (%s): negative price", i, p.Name)
		}
		if p.Quantity < 0 {
			return fmt.Errorf("row %d (%s): negative quantity", i, p.Name)
		}
	}
	return nil
}
