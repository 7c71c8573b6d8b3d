// ABOUTME: Tests for the bearer token service
// ABOUTME: Covers issuing, lookup, revocation, expiry and stable join dates

package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/markalston/mocha-admin/internal/server/cache"
)

func newTestSessionService(t *testing.T, ttl time.Duration) *SessionService {
	t.Helper()
	c := cache.New[*Session](time.Hour)
	t.Cleanup(c.Close)
	return NewSessionService(c, ttl)
}

func TestSessionService_CreateAndGet(t *testing.T) {
	s := newTestSessionService(t, time.Hour)

	token, user := s.Create("0xABC123")
	if _, err := uuid.Parse(token); err != nil {
		t.Errorf("Expected uuid token, got %q", token)
	}
	if user.WalletAddress != "0xABC123" {
		t.Errorf("Expected wallet 0xABC123, got %q", user.WalletAddress)
	}
	if err := user.Validate(); err != nil {
		t.Errorf("Expected valid user, got %v", err)
	}

	session, err := s.Get(token)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if session.Wallet != "0xABC123" {
		t.Errorf("Expected session wallet 0xABC123, got %q", session.Wallet)
	}
	if !session.ExpiresAt.After(session.IssuedAt) {
		t.Error("Expected expiry after issue time")
	}
}

func TestSessionService_TokensAreUnique(t *testing.T) {
	s := newTestSessionService(t, time.Hour)

	a, _ := s.Create("0xABC123")
	b, _ := s.Create("0xABC123")
	if a == b {
		t.Error("Expected a fresh token per login")
	}
}

func TestSessionService_MemberSinceIsStable(t *testing.T) {
	s := newTestSessionService(t, time.Hour)
	first := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return first }

	_, u1 := s.Create("0xABC123")

	s.now = func() time.Time { return first.Add(48 * time.Hour) }
	_, u2 := s.Create("0xabc123")

	if !u2.CreatedAt.Equal(u1.CreatedAt) {
		t.Errorf("Expected join date %v to persist, got %v", u1.CreatedAt, u2.CreatedAt)
	}
}

func TestSessionService_Delete(t *testing.T) {
	s := newTestSessionService(t, time.Hour)

	token, _ := s.Create("0xABC123")
	s.Delete(token)

	if _, err := s.Get(token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_Expiry(t *testing.T) {
	s := newTestSessionService(t, 50*time.Millisecond)

	token, _ := s.Create("0xABC123")
	time.Sleep(80 * time.Millisecond)

	if _, err := s.Get(token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected expired token to be rejected, got %v", err)
	}
}

func TestSessionService_GetBlankToken(t *testing.T) {
	s := newTestSessionService(t, time.Hour)

	if _, err := s.Get("  "); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}
