// ABOUTME: HTTP handlers for health and wallet login endpoints
// ABOUTME: Login validates the wallet address and issues a bearer token

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/server/services"
)

// Health returns API status, version and the server time.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Version:   Version,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// Login exchanges a wallet address for a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	wallet := strings.TrimSpace(req.Address)
	if err := services.ValidateWallet(wallet); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if h.cfg.IsBlocked(wallet) {
		slog.Info("Login rejected for blocked wallet", "wallet", wallet)
		h.writeError(w, "Unknown wallet", http.StatusUnauthorized)
		return
	}

	token, user := h.sessions.Create(wallet)
	slog.Info("Wallet logged in", "wallet", wallet, "eth_address", services.IsEthAddress(wallet))

	h.writeJSON(w, http.StatusOK, models.LoginResponse{Token: token, User: &user})
}
