// ABOUTME: Tests for latency and failure injection
// ABOUTME: Uses a fixed random source so failures are deterministic

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/markalston/mocha-admin/internal/models"
)

func okHandler(called *bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}
}

func TestSimulation_DisabledPassesThrough(t *testing.T) {
	called := false
	handler := Simulation{}.Wrap("boom")(okHandler(&called))

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/mints/overview", nil))

	if !called || rec.Code != http.StatusOK {
		t.Errorf("Expected pass-through, called=%v status=%d", called, rec.Code)
	}
}

func TestSimulation_Failure(t *testing.T) {
	called := false
	sim := Simulation{FailureRate: 0.2, Rand: func() float64 { return 0.1 }}
	handler := sim.Wrap("Failed to load mint overview stats.")(okHandler(&called))

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/mints/overview", nil))

	if called {
		t.Error("Handler should not run when failure is injected")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Status = %d, want 500", rec.Code)
	}
	var body models.ErrorResponse
	json.NewDecoder(rec.Body).Decode(&body)
	if body.Error != "Failed to load mint overview stats." {
		t.Errorf("error = %q", body.Error)
	}
}

func TestSimulation_RollAboveRatePasses(t *testing.T) {
	called := false
	sim := Simulation{FailureRate: 0.2, Rand: func() float64 { return 0.5 }}
	handler := sim.Wrap("boom")(okHandler(&called))

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/mints/overview", nil))

	if !called {
		t.Error("Expected handler to run")
	}
}

func TestSimulation_Latency(t *testing.T) {
	called := false
	sim := Simulation{Latency: 40 * time.Millisecond}
	handler := sim.Wrap("boom")(okHandler(&called))

	start := time.Now()
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/analytics/traffic", nil))

	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("Expected at least 40ms delay, got %v", elapsed)
	}
	if !called {
		t.Error("Expected handler to run after the delay")
	}
}

func TestSimulation_CanceledRequestStopsEarly(t *testing.T) {
	called := false
	sim := Simulation{Latency: time.Minute}
	handler := sim.Wrap("boom")(okHandler(&called))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/analytics/traffic", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		handler(httptest.NewRecorder(), req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Handler did not return after cancellation")
	}
	if called {
		t.Error("Handler should not run for a canceled request")
	}
}
