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

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r.URL.Path)
	if err != nil {
		// A non-numeric id can never resolve to a product.
		writeError(w, http.StatusNotFound, "Product not found", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.InsertProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product data", h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if isValidation(err) {
			writeError(w, http.StatusBadRequest, "Invalid product data", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create product", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r.URL.Path)
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found", h.logger)
		return
	}

	var req model.PartialProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product data", h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case isValidation(err):
			writeError(w, http.StatusBadRequest, "Invalid product data", h.logger)
		case errors.Is(err, model.ErrProductNotFound):
			writeError(w, http.StatusNotFound, "Product not found", h.logger)
		default:
			writeError(w, http.StatusInternalServerError, "Failed to update product", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r.URL.Path)
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete product", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// productID extracts the integer id from a /api/products/{id} path.
func productID(path string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(path, "/api/products/"))
}
