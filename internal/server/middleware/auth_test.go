// ABOUTME: Tests for bearer token authentication middleware
// ABOUTME: Covers missing, malformed, unknown and valid tokens plus the wallet context value

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/markalston/mocha-admin/internal/models"
)

func staticValidator(tokens map[string]string) TokenValidator {
	return func(token string) (string, bool) {
		wallet, ok := tokens[token]
		return wallet, ok
	}
}

func TestAuth(t *testing.T) {
	validate := staticValidator(map[string]string{"tok_valid": "0xABC123"})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{"valid token", "Bearer tok_valid", http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, "Authentication required"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, "Invalid authorization format"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "Invalid authorization format"},
		{"unknown token", "Bearer tok_revoked", http.StatusUnauthorized, "Invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotWallet string
			handler := Auth(validate)(func(w http.ResponseWriter, r *http.Request) {
				gotWallet = Wallet(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/products", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("Status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if gotWallet != "0xABC123" {
					t.Errorf("Wallet = %q, want 0xABC123", gotWallet)
				}
				return
			}

			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			var body models.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != tt.wantError {
				t.Errorf("error = %q, want %q", body.Error, tt.wantError)
			}
			if body.Code != http.StatusUnauthorized {
				t.Errorf("code = %d, want 401", body.Code)
			}
		})
	}
}

func TestWallet_NoAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if got := Wallet(req); got != "" {
		t.Errorf("Wallet() = %q, want empty", got)
	}
}
