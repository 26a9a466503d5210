package router

import (
	"net/http"
	"strings"
	"sync"

	"tillpoint/internal/handler"
	"tillpoint/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Collection routes
		if path == "/api/products" || path == "/api/products/" {
			if r.Method == http.MethodPost {
				catalogHandler.Create(w, r)
				return
			}
			catalogHandler.List(w, r)
			return
		}

		// Named routes below the collection
		switch {
		case path == "/api/products/low-stock":
			catalogHandler.LowStock(w, r)
		case strings.HasSuffix(path, "/price"):
			catalogHandler.Reprice(w, r)
		case strings.HasSuffix(path, "/stock"):
			catalogHandler.Restock(w, r)
		default:
			catalogHandler.GetByName(w, r)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart handler function
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/cart/items" {
			cartHandler.AddItem(w, r)
			return
		}

		switch r.Method {
		case http.MethodGet:
			cartHandler.Get(w, r)
		case http.MethodDelete:
			cartHandler.Clear(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	mux.HandleFunc("/api/checkout", checkoutHandler.Checkout)
	mux.HandleFunc("/api/sales", checkoutHandler.History)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth -> Serialize
	var till sync.Mutex
	var h http.Handler = mux
	h = middleware.Serialize(&till)(h)
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
