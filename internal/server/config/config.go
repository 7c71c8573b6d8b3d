// ABOUTME: Configuration loader for the mock shop backend
// ABOUTME: Loads settings from .env and environment variables with defaults

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port               string
	CORSAllowedOrigins []string // allowed CORS origins (empty = allow any origin)

	// Sessions
	TokenTTL       int      // seconds a bearer token stays valid (default: 86400)
	BlockedWallets []string // addresses rejected at login with "Unknown wallet"

	// Rate Limiting
	RateLimitAuth int // logins per minute per client IP (default: 10)

	// Simulation for the mint and analytics endpoints
	MockLatencyMS   int     // added delay in milliseconds (0 = off)
	MockFailureRate float64 // probability of a simulated 500, 0..1

	// Media uploads
	UploadAPISecret string

	// Logging
	LogLevel  string
	LogFormat string
}

// TokenLifetime returns TokenTTL as a duration.
func (c *Config) TokenLifetime() time.Duration {
	return time.Duration(c.TokenTTL) * time.Second
}

// MockLatency returns MockLatencyMS as a duration.
func (c *Config) MockLatency() time.Duration {
	return time.Duration(c.MockLatencyMS) * time.Millisecond
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded, using environment only", "error", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		TokenTTL:       getEnvInt("TOKEN_TTL", 86400),
		BlockedWallets: getEnvStringList("BLOCKED_WALLETS"),

		RateLimitAuth: getEnvInt("RATE_LIMIT_AUTH", 10),

		MockLatencyMS:   getEnvInt("MOCK_LATENCY_MS", 0),
		MockFailureRate: getEnvFloat("MOCK_FAILURE_RATE", 0),

		UploadAPISecret: os.Getenv("UPLOAD_API_SECRET"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be a number, got %q", cfg.Port)
	}
	if cfg.TokenTTL < 1 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %d", cfg.TokenTTL)
	}
	if cfg.RateLimitAuth < 1 || cfg.RateLimitAuth > 10000 {
		return nil, fmt.Errorf("RATE_LIMIT_AUTH must be between 1 and 10000, got %d", cfg.RateLimitAuth)
	}
	if cfg.MockLatencyMS < 0 {
		return nil, fmt.Errorf("MOCK_LATENCY_MS must not be negative, got %d", cfg.MockLatencyMS)
	}
	if cfg.MockFailureRate < 0 || cfg.MockFailureRate > 1 {
		return nil, fmt.Errorf("MOCK_FAILURE_RATE must be between 0 and 1, got %v", cfg.MockFailureRate)
	}

	return cfg, nil
}

// IsBlocked reports whether wallet is on the blocked list (case-insensitive).
func (c *Config) IsBlocked(wallet string) bool {
	for _, b := range c.BlockedWallets {
		if strings.EqualFold(b, wallet) {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
