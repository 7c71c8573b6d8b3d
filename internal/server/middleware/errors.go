// ABOUTME: JSON error bodies shared by middleware and the router fallbacks
// ABOUTME: Every backend error is a models.ErrorResponse, including rate limit rejections

package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/markalston/mocha-admin/internal/models"
)

// WriteError writes {"error": message, "code": code}. The router uses it for
// unknown routes and methods so clients decode one error shape everywhere.
func WriteError(w http.ResponseWriter, message string, code int) {
	writeErrorBody(w, models.ErrorResponse{Error: message, Code: code})
}

// writeRetryError rejects a request that may be retried after retrySeconds,
// in the Retry-After header and in the body.
func writeRetryError(w http.ResponseWriter, message string, code, retrySeconds int) {
	w.Header().Set("Retry-After", strconv.Itoa(retrySeconds))
	writeErrorBody(w, models.ErrorResponse{Error: message, Code: code, RetryAfter: retrySeconds})
}

func writeErrorBody(w http.ResponseWriter, body models.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Code)
	json.NewEncoder(w).Encode(body)
}
