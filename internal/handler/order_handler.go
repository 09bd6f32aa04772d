package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"shopease/internal/model"
	"shopease/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.InsertOrder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order data", h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if isValidation(err) {
			writeError(w, http.StatusBadRequest, "Invalid order data", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetAll handles GET /api/orders requests.
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r.URL.Path)
	if err != nil {
		writeError(w, http.StatusNotFound, "Order not found", h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "Order not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// orderID extracts the integer id from a /api/orders/{id} path.
func orderID(path string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(path, "/api/orders/"))
}
