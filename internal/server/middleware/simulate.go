// ABOUTME: Latency and failure injection for the mock mint and analytics endpoints
// ABOUTME: Lets clients exercise their loading and error states against the mock backend

package middleware

import (
	"math/rand/v2"
	"net/http"
	"time"
)

// Simulation configures injected latency and random failures.
type Simulation struct {
	Latency     time.Duration
	FailureRate float64 // 0..1

	// Rand returns a value in [0,1). Defaults to math/rand.
	Rand func() float64
}

// Enabled reports whether the simulation changes anything.
func (s Simulation) Enabled() bool {
	return s.Latency > 0 || s.FailureRate > 0
}

// Wrap returns middleware that delays each request by Latency and then fails
// it with a 500 carrying message at FailureRate. A client that goes away
// during the delay ends the request early.
func (s Simulation) Wrap(message string) Middleware {
	roll := s.Rand
	if roll == nil {
		roll = rand.Float64
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		if !s.Enabled() {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			if s.Latency > 0 {
				timer := time.NewTimer(s.Latency)
				select {
				case <-r.Context().Done():
					timer.Stop()
					return
				case <-timer.C:
				}
			}

			if s.FailureRate > 0 && roll() < s.FailureRate {
				WriteError(w, message, http.StatusInternalServerError)
				return
			}

			next(w, r)
		}
	}
}
