// ABOUTME: Bearer token authentication middleware for the shop API
// ABOUTME: Rejects missing or unknown tokens with 401 JSON and exposes the wallet to handlers

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// TokenValidator resolves a bearer token to the wallet it was issued for.
type TokenValidator func(token string) (wallet string, ok bool)

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const walletKey contextKey = "wallet"

// Auth returns middleware that requires a valid bearer token. Any failure is
// a 401 so clients can treat it as an expired session.
func Auth(validate TokenValidator) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				slog.Debug("Auth rejected: no token", "path", sanitizePath(r.URL.Path))
				WriteError(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				slog.Debug("Auth rejected: invalid format", "path", sanitizePath(r.URL.Path))
				WriteError(w, "Invalid authorization format", http.StatusUnauthorized)
				return
			}

			wallet, ok := validate(strings.TrimSpace(token))
			if !ok {
				slog.Debug("Auth rejected: unknown or expired token", "path", sanitizePath(r.URL.Path))
				WriteError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), walletKey, wallet)
			next(w, r.WithContext(ctx))
		}
	}
}

// Wallet returns the authenticated wallet for the request, or "".
func Wallet(r *http.Request) string {
	wallet, _ := r.Context().Value(walletKey).(string)
	return wallet
}
