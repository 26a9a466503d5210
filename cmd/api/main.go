package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tillpoint/internal/config"
	"tillpoint/internal/handler"
	"tillpoint/internal/router"
	"tillpoint/internal/seed"
	"tillpoint/internal/service"
	"tillpoint/internal/store"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting tillpoint API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the three till stores
	catalogStore := store.NewCatalogStore()
	cartStore := store.NewCartStore()
	ledgerStore := store.NewLedgerStore()

	// Initialize services
	catalogService := service.NewCatalogService(catalogStore, logger)
	cartService := service.NewCartService(catalogStore, cartStore, logger)
	checkoutService := service.NewCheckoutService(cartStore, ledgerStore, cfg.Till.Cashier, logger)

	// Seed the catalog
	if err := seedCatalog(ctx, cfg, catalogService, logger); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	// Initialize HTTP handlers
	catalogHandler := handler.NewCatalogHandler(catalogService, cfg.Till.LowStockThreshold, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)

	// Initialize router
	mux := router.New(catalogHandler, cartHandler, checkoutHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// seedCatalog loads the initial product set. Precedence: S3 object, then
// local seed file, then built-in sample data; a failed S3 or file load falls
// back to the next source rather than aborting startup.
func seedCatalog(ctx context.Context, cfg *config.Config, catalog service.CatalogService, logger zerolog.Logger) error {
	var s3Loader seed.Loader
	if cfg.Seed.S3.Enabled {
		loader, err := seed.NewS3Loader(ctx, cfg.Seed.S3.Bucket, cfg.Seed.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 seed loader, falling back to local sources")
		} else {
			s3Loader = loader
		}
	}

	loader := seed.NewFallbackLoader(s3Loader, seed.NewFileLoader(logger), cfg.Seed.S3.Key, logger)
	rows, err := loader.Load(ctx, cfg.Seed.FilePath)
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}

	for _, p := range rows {
		if err := catalog.AddProduct(p.Name, p.Price, p.Quantity); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	logger.Info().Int("count", len(rows)).Msg("catalog seeded")
	return nil
}
