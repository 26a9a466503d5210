package handler

import (
	"encoding/json"
	"net/http"

	"tillpoint/internal/model"
	"tillpoint/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartResponse is the JSON shape of the current transaction.
type cartResponse struct {
	Items []*model.CartLine `json:"items"`
	Total string            `json:"total"`
}

// addItemRequest is the JSON body for a cart add.
type addItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	items := h.service.Items()
	if items == nil {
		items = []*model.CartLine{}
	}

	writeJSON(w, http.StatusOK, cartResponse{
		Items: items,
		Total: h.service.Total().StringFixed(2),
	})
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidInput, "product name is required", h.logger)
		return
	}

	message, err := h.service.AddItem(req.Name, req.Quantity)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": message,
		"total":   h.service.Total().StringFixed(2),
	})
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidInput, "method not allowed", h.logger)
		return
	}

	h.service.Clear()
	w.WriteHeader(http.StatusNoContent)
}
