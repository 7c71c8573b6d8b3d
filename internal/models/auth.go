// ABOUTME: Auth request/response models for wallet-address login
// ABOUTME: Defines the user record and the login API contract with boundary validation

package models

import (
	"errors"
	"strings"
	"time"
)

// ErrMalformedResponse marks a 2xx login response that lacks a usable token or user.
var ErrMalformedResponse = errors.New("malformed login response")

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Address string `json:"address"`
}

// User is the authenticated principal as returned by the backend
type User struct {
	WalletAddress string    `json:"wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
}

// Validate rejects user records missing either field.
func (u User) Validate() error {
	if strings.TrimSpace(u.WalletAddress) == "" {
		return errors.New("user: wallet_address is required")
	}
	if u.CreatedAt.IsZero() {
		return errors.New("user: created_at is required")
	}
	return nil
}

// LoginResponse is the success body of POST /auth/login
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Validate checks that both token and user are present and well-formed.
// It wraps ErrMalformedResponse so callers can match with errors.Is.
func (r *LoginResponse) Validate() error {
	if r == nil {
		return ErrMalformedResponse
	}
	if strings.TrimSpace(r.Token) == "" {
		return errors.Join(ErrMalformedResponse, errors.New("token is missing"))
	}
	if r.User == nil {
		return errors.Join(ErrMalformedResponse, errors.New("user is missing"))
	}
	if err := r.User.Validate(); err != nil {
		return errors.Join(ErrMalformedResponse, err)
	}
	return nil
}

// ErrorResponse is the JSON error body returned by the backend
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code,omitempty"`
	// RetryAfter is set on 429 responses, in seconds.
	RetryAfter int `json:"retry_after,omitempty"`
}

// HealthResponse is the /health body
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version,omitempty"`
	Timestamp string `json:"timestamp"`
}
