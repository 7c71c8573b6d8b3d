// ABOUTME: HTTP handlers for product CRUD
// ABOUTME: Maps catalog errors to 400/404 and invalidates cached stats on writes

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/server/middleware"
	"github.com/markalston/mocha-admin/internal/server/services"
)

// ListProducts returns every product.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.Products())
}

// GetProduct returns one product.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	p, err := h.catalog.Product(id)
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// CreateProduct adds a product.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var in models.ProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.catalog.CreateProduct(in)
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	h.invalidateStats()
	slog.Info("Product created", "id", p.ID, "wallet", middleware.Wallet(r))
	h.writeJSON(w, http.StatusCreated, p)
}

// UpdateProduct replaces a product's editable fields.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var in models.ProductInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.catalog.UpdateProduct(id, in)
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	slog.Info("Product updated", "id", id, "wallet", middleware.Wallet(r))
	h.writeJSON(w, http.StatusOK, p)
}

// DeleteProduct removes a product.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteProduct(id); err != nil {
		h.writeCatalogError(w, err)
		return
	}
	h.invalidateStats()
	slog.Info("Product deleted", "id", id, "wallet", middleware.Wallet(r))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := services.ParseProductID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeCatalogError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrProductNotFound) {
		h.writeError(w, "Product not found", http.StatusNotFound)
		return
	}
	h.writeError(w, err.Error(), http.StatusBadRequest)
}
