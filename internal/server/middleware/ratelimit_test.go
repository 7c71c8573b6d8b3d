// ABOUTME: Unit tests for rate limiting middleware
// ABOUTME: Tests core limiter, key extraction, and middleware factory

package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests move the limiter's notion of now.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClockedLimiter(limit int, window time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(limit, window)
	rl.now = clock.Now
	return rl, clock
}

// --- RateLimiter core tests ---

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	rl, _ := newClockedLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("test-key")
		if !allowed {
			t.Fatalf("Request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	rl, _ := newClockedLimiter(2, time.Minute)

	rl.Allow("test-key")
	rl.Allow("test-key")

	allowed, retryAfter := rl.Allow("test-key")
	if allowed {
		t.Fatal("Third request should be rejected")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("Expected retryAfter between 0 and 60s, got %v", retryAfter)
	}
}

func TestRateLimiter_SeparateKeys(t *testing.T) {
	rl, _ := newClockedLimiter(1, time.Minute)

	if allowed, _ := rl.Allow("key-a"); !allowed {
		t.Fatal("First request for key-a should be allowed")
	}
	if allowed, _ := rl.Allow("key-b"); !allowed {
		t.Fatal("First request for key-b should be allowed (separate quota)")
	}
	if allowed, _ := rl.Allow("key-a"); allowed {
		t.Fatal("Second request for key-a should be rejected")
	}
}

func TestRateLimiter_Refill(t *testing.T) {
	rl, clock := newClockedLimiter(2, time.Minute)

	rl.Allow("test-key")
	rl.Allow("test-key")
	if allowed, _ := rl.Allow("test-key"); allowed {
		t.Fatal("Third request should be rejected")
	}

	// One token refills every window/limit.
	clock.Advance(31 * time.Second)

	if allowed, _ := rl.Allow("test-key"); !allowed {
		t.Fatal("Request after refill should be allowed")
	}
	if allowed, _ := rl.Allow("test-key"); allowed {
		t.Fatal("Only one token should have refilled")
	}
}

func TestRateLimiter_RejectionDoesNotConsumeTokens(t *testing.T) {
	rl, clock := newClockedLimiter(1, time.Minute)

	rl.Allow("test-key")
	for i := 0; i < 5; i++ {
		rl.Allow("test-key")
	}

	clock.Advance(61 * time.Second)
	if allowed, _ := rl.Allow("test-key"); !allowed {
		t.Fatal("Rejected requests must not push the next token further out")
	}
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	rl, _ := newClockedLimiter(100, time.Minute)

	var wg sync.WaitGroup
	allowed := make([]bool, 200)

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			allowed[idx], _ = rl.Allow("concurrent-key")
		}(i)
	}
	wg.Wait()

	allowedCount := 0
	for _, a := range allowed {
		if a {
			allowedCount++
		}
	}
	if allowedCount != 100 {
		t.Errorf("Expected exactly 100 allowed requests, got %d", allowedCount)
	}
}

func TestRateLimiter_SweepDropsIdleKeys(t *testing.T) {
	rl, clock := newClockedLimiter(1, time.Minute)

	for i := 0; i < 5; i++ {
		rl.Allow(fmt.Sprintf("key-%d", i))
	}

	clock.Advance(2 * time.Minute)
	rl.mu.Lock()
	rl.sweep(clock.Now())
	remaining := len(rl.limiters)
	rl.mu.Unlock()

	if remaining != 0 {
		t.Errorf("Expected idle keys to be swept, %d remain", remaining)
	}
}

func TestRateLimiter_SweepKeepsActiveKeys(t *testing.T) {
	rl, clock := newClockedLimiter(1, time.Minute)

	rl.Allow("idle")
	clock.Advance(50 * time.Second)
	rl.Allow("active")
	clock.Advance(20 * time.Second)

	rl.mu.Lock()
	rl.sweep(clock.Now())
	_, idle := rl.limiters["idle"]
	_, active := rl.limiters["active"]
	rl.mu.Unlock()

	if idle {
		t.Error("Expected idle key to be swept")
	}
	if !active {
		t.Error("Expected active key to survive")
	}
}

// --- Key extraction tests ---

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		remoteAddr string
		want       string
	}{
		{"remote addr with port", "", "192.168.1.1:12345", "ip:192.168.1.1"},
		{"single forwarded ip", "10.0.0.1", "192.168.1.1:12345", "ip:10.0.0.1"},
		{"leftmost forwarded ip", "10.0.0.1, 10.0.0.2", "192.168.1.1:12345", "ip:10.0.0.1"},
		{"garbage forwarded header", "not-an-ip", "192.168.1.1:12345", "ip:192.168.1.1"},
		{"ipv6 remote", "", "[::1]:8080", "ip:::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- Middleware tests ---

func TestRateLimit_Returns429WithRetryAfter(t *testing.T) {
	rl, _ := newClockedLimiter(1, time.Minute)
	handler := RateLimit(rl, ClientIP)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.1.1.1:5555"
		rec := httptest.NewRecorder()
		handler(rec, req)
		return rec
	}

	if rec := send(); rec.Code != http.StatusOK {
		t.Fatalf("First request: status = %d, want 200", rec.Code)
	}

	rec := send()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("Second request: status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}

	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == "" || body["error"] == nil {
		t.Error("Expected error message in body")
	}
	if body["retry_after"].(float64) < 1 {
		t.Errorf("Expected retry_after >= 1, got %v", body["retry_after"])
	}
}

func TestRateLimit_NilLimiterPassesThrough(t *testing.T) {
	called := 0
	handler := RateLimit(nil, ClientIP)(func(w http.ResponseWriter, r *http.Request) {
		called++
	})

	for i := 0; i < 5; i++ {
		handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	}
	if called != 5 {
		t.Errorf("Expected 5 calls, got %d", called)
	}
}

func TestRateLimit_EmptyKeyPassesThrough(t *testing.T) {
	rl, _ := newClockedLimiter(1, time.Minute)
	called := 0
	handler := RateLimit(rl, func(*http.Request) string { return "" })(func(w http.ResponseWriter, r *http.Request) {
		called++
	})

	for i := 0; i < 3; i++ {
		handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	}
	if called != 3 {
		t.Errorf("Expected 3 calls, got %d", called)
	}
}
