// ABOUTME: Bearer token service for wallet-address logins on the mock backend
// ABOUTME: Issues uuid tokens stored in the TTL cache and remembers member join dates

package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/server/cache"
)

// ErrSessionNotFound is returned for unknown, revoked or expired tokens.
var ErrSessionNotFound = errors.New("session not found")

// Session is a server-side record of an issued bearer token
type Session struct {
	Token     string
	Wallet    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// SessionService issues and validates bearer tokens
type SessionService struct {
	cache *cache.Cache[*Session]
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	members map[string]time.Time
}

// NewSessionService creates a session service whose tokens live for ttl
func NewSessionService(c *cache.Cache[*Session], ttl time.Duration) *SessionService {
	return &SessionService{
		cache:   c,
		ttl:     ttl,
		now:     time.Now,
		members: make(map[string]time.Time),
	}
}

// Create issues a new token for wallet. The returned user carries the date
// the wallet first logged in, which stays stable across logins.
func (s *SessionService) Create(wallet string) (string, models.User) {
	now := s.now()
	token := uuid.NewString()

	s.cache.SetWithTTL(sessionKey(token), &Session{
		Token:     token,
		Wallet:    wallet,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}, s.ttl)

	return token, models.User{WalletAddress: wallet, CreatedAt: s.memberSince(wallet, now)}
}

// Get retrieves the session for a token
func (s *SessionService) Get(token string) (*Session, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrSessionNotFound
	}
	session, ok := s.cache.Get(sessionKey(token))
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete revokes a token
func (s *SessionService) Delete(token string) {
	s.cache.Clear(sessionKey(token))
}

func (s *SessionService) memberSince(wallet string, now time.Time) time.Time {
	key := strings.ToLower(wallet)

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.members[key]; ok {
		return t
	}
	t := now.UTC().Truncate(time.Second)
	s.members[key] = t
	return t
}

// sessionKey returns the cache key for a token
func sessionKey(token string) string {
	return "session:" + token
}
