// ABOUTME: HTTP handler for signing media upload parameters
// ABOUTME: Returns the signature the media host expects for a direct browser upload

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/server/services"
)

// SignUpload signs paramsToSign with the upload secret.
func (h *Handler) SignUpload(w http.ResponseWriter, r *http.Request) {
	var req models.SignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.ParamsToSign) == 0 {
		h.writeError(w, "paramsToSign is required", http.StatusBadRequest)
		return
	}

	signature, err := h.signer.Sign(req.ParamsToSign)
	if err != nil {
		if errors.Is(err, services.ErrNoUploadSecret) {
			h.writeError(w, "Upload signing is not configured", http.StatusServiceUnavailable)
			return
		}
		slog.Error("Failed to sign upload parameters", "error", err)
		h.writeError(w, "Failed to sign parameters", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, models.SignResponse{Signature: signature})
}
