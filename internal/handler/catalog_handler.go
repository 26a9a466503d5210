package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tillpoint/internal/model"
	"tillpoint/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CatalogHandler handles product catalog HTTP requests.
type CatalogHandler struct {
	service          service.CatalogService
	defaultThreshold int
	logger           zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler. The threshold is the
// default for low-stock queries that do not supply one.
func NewCatalogHandler(service service.CatalogService, defaultThreshold int, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:          service,
		defaultThreshold: defaultThreshold,
		logger:           logger.With().Str("handler", "catalog").Logger(),
	}
}

// productRequest is the JSON body for product creation.
type productRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// List handles GET /api/products requests. Without a q parameter it returns
// the full catalog in insertion order; with one it returns all products whose
// names contain the substring.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	query := r.URL.Query().Get("q")

	var products []*model.Product
	if query == "" {
		products = h.service.ListAll()
	} else {
		products = h.service.Search(query)
	}

	if products == nil {
		products = []*model.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /api/products requests.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	name := strings.TrimSpace(req.Name)
	if err := h.service.AddProduct(name, req.Price, req.Quantity); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	product, err := h.service.FindExact(name)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// GetByName handles GET /api/products/{name} requests.
func (h *CatalogHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	name, ok := productName(r.URL.Path, "")
	if !ok {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidInput, "product name is required", h.logger)
		return
	}

	product, err := h.service.FindExact(name)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// repriceRequest is the JSON body for a price change.
type repriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

// Reprice handles PUT /api/products/{name}/price requests.
func (h *CatalogHandler) Reprice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	name, ok := productName(r.URL.Path, "/price")
	if !ok {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidInput, "product name is required", h.logger)
		return
	}

	var req repriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	oldPrice, err := h.service.Reprice(name, req.Price)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"name":     name,
		"oldPrice": oldPrice.StringFixed(2),
		"newPrice": req.Price.StringFixed(2),
	})
}

// restockRequest is the JSON body for a stock increase.
type restockRequest struct {
	Delta int `json:"delta"`
}

// Restock handles PUT /api/products/{name}/stock requests.
func (h *CatalogHandler) Restock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	name, ok := productName(r.URL.Path, "/stock")
	if !ok {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidInput, "product name is required", h.logger)
		return
	}

	var req restockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	newQuantity, err := h.service.Restock(name, req.Delta)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":     name,
		"quantity": newQuantity,
	})
}

// LowStock handles GET /api/products/low-stock requests.
func (h *CatalogHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	threshold := h.defaultThreshold
	if thresholdStr := r.URL.Query().Get("threshold"); thresholdStr != "" {
		var err error
		threshold, err = strconv.Atoi(thresholdStr)
		if err != nil || threshold < 0 {
			writeError(w, http.StatusBadRequest, model.ErrCodeInvalidInput, "invalid threshold parameter", h.logger)
			return
		}
	}

	products := h.service.LowStock(threshold)
	if products == nil {
		products = []*model.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// productName extracts the product name segment from a path of the form
// /api/products/{name}[suffix]. Names arrive URL-escaped.
func productName(path, suffix string) (string, bool) {
	name := strings.TrimPrefix(path, "/api/products/")
	if suffix != "" {
		name = strings.TrimSuffix(name, suffix)
	}
	name = strings.Trim(name, "/")
	if name == "" {
		return "", false
	}
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return name, true
}
