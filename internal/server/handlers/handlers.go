// ABOUTME: HTTP handlers for the mock shop API
// ABOUTME: Holds the shared handler state and the JSON response helpers

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/server/cache"
	"github.com/markalston/mocha-admin/internal/server/config"
	"github.com/markalston/mocha-admin/internal/server/services"
)

// Version is reported by /health.
var Version = "dev"

// StatsTTL is how long computed stats stay cached.
const StatsTTL = 30 * time.Second

type Handler struct {
	cfg      *config.Config
	catalog  *services.Catalog
	sessions *services.SessionService
	signer   *services.Signer
	stats    *cache.Cache[any]
	now      func() time.Time
}

// NewHandler wires the handler's dependencies. A nil cfg uses defaults.
func NewHandler(cfg *config.Config, catalog *services.Catalog, sessions *services.SessionService, stats *cache.Cache[any]) *Handler {
	if cfg == nil {
		cfg = &config.Config{TokenTTL: 86400, RateLimitAuth: 10}
	}
	return &Handler{
		cfg:      cfg,
		catalog:  catalog,
		sessions: sessions,
		signer:   services.NewSigner(cfg.UploadAPISecret),
		stats:    stats,
		now:      time.Now,
	}
}

// ValidateToken resolves a bearer token for the auth middleware.
func (h *Handler) ValidateToken(token string) (string, bool) {
	session, err := h.sessions.Get(token)
	if err != nil {
		return "", false
	}
	return session.Wallet, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}
