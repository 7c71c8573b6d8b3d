// ABOUTME: Auth session manager owning the in-memory session and its lifecycle.
// ABOUTME: Hydrates from the store once, performs wallet login/logout and publishes state.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/markalston/mocha-admin/internal/client"
	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/route"
)

// User-facing messages placed in State.Error.
const (
	MsgEmptyWallet     = "Please enter a wallet address."
	MsgLoginFailed     = "Login failed. Please try again."
	MsgInvalidResponse = "Invalid response from server."
	MsgUnexpected      = "An unexpected error occurred during login."
	MsgHydrationFailed = "Failed to load previous session."
)

var (
	// ErrEmptyWalletAddress is returned by Login for blank input. No request is made.
	ErrEmptyWalletAddress = errors.New(MsgEmptyWallet)
	// ErrInvalidResponse matches login responses lacking a usable token or user.
	ErrInvalidResponse = models.ErrMalformedResponse
)

// LoginError carries the message shown to the user alongside the cause.
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string { return e.Message }
func (e *LoginError) Unwrap() error { return e.Err }

// Authenticator exchanges a wallet address for a token and user record.
// *client.Client implements it.
type Authenticator interface {
	Login(ctx context.Context, walletAddress string) (*models.LoginResponse, error)
}

// Phase names the lifecycle position of the session.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseHydrating
	PhaseUnauthenticated
	PhaseLoggingIn
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseHydrating:
		return "hydrating"
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseLoggingIn:
		return "logging-in"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return "uninitialized"
	}
}

// State is a snapshot of the session. Values handed out are copies.
type State struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Error           string
	Initialized     bool
	Hydrating       bool
	// Persisted is false when the in-memory session could not be written to the store.
	Persisted bool
	// Revision increases with every published change.
	Revision uint64
}

// Phase derives the lifecycle phase from the flags.
func (s State) Phase() Phase {
	switch {
	case s.IsAuthenticated:
		return PhaseAuthenticated
	case s.IsLoading:
		return PhaseLoggingIn
	case s.Hydrating:
		return PhaseHydrating
	case s.Initialized:
		return PhaseUnauthenticated
	default:
		return PhaseUninitialized
	}
}

// WalletAddress returns the signed-in wallet or "".
func (s State) WalletAddress() string {
	if s.User == nil {
		return ""
	}
	return s.User.WalletAddress
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithNavigator sets where route changes are requested after login and logout.
func WithNavigator(n route.Navigator) Option {
	return func(m *Manager) { m.nav = n }
}

type subscriber struct {
	id uint64
	fn func(State)
}

// Manager is the single owner of authentication state.
type Manager struct {
	store  Store
	auth   Authenticator
	logger *slog.Logger

	initOnce sync.Once

	// commitMu pairs each store write with its state change so memory and
	// disk agree on the last committed session.
	commitMu sync.Mutex

	mu       sync.Mutex
	state    State
	inflight int
	nav      route.Navigator
	subs     []subscriber
	nextSub  uint64
}

// NewManager creates an uninitialized manager. Call Initialize before the first render.
func NewManager(store Store, auth Authenticator, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		auth:   auth,
		logger: slog.Default(),
		nav:    route.Discard,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetNavigator replaces the navigator. The TUI calls it once its program exists.
func (m *Manager) SetNavigator(n route.Navigator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n == nil {
		n = route.Discard
	}
	m.nav = n
}

// Initialize restores a persisted session. It runs once; later calls return
// immediately. Initialized is true afterwards whatever the outcome.
func (m *Manager) Initialize(ctx context.Context) {
	m.initOnce.Do(func() {
		m.update(func(s *State) { s.Hydrating = true })

		snap, ok, err := m.load(ctx)
		if err != nil {
			m.logger.Warn("failed to load persisted session", "error", err)
		}

		m.commitMu.Lock()
		defer m.commitMu.Unlock()
		m.update(func(s *State) {
			s.Hydrating = false
			s.Initialized = true
			if err != nil {
				s.Error = MsgHydrationFailed
				return
			}
			if ok && !s.IsAuthenticated {
				u := snap.User
				s.User = &u
				s.Token = snap.Token
				s.IsAuthenticated = true
				s.Persisted = true
			}
		})
		if ok && err == nil {
			m.logger.Info("restored session", "wallet", snap.User.WalletAddress)
		}
	})
}

func (m *Manager) load(ctx context.Context) (snap Snapshot, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			snap, ok, err = Snapshot{}, false, fmt.Errorf("session store panic: %v", r)
		}
	}()
	if err := ctx.Err(); err != nil {
		return Snapshot{}, false, err
	}
	return m.store.Load()
}

// Login authenticates walletAddress against the backend. On success the
// session is replaced, persisted and home navigation is requested. A failed
// attempt always ends signed out: a session held before the call is dropped
// from memory and from the store. Overlapping calls are not deduplicated;
// the last response to arrive wins.
func (m *Manager) Login(ctx context.Context, walletAddress string) error {
	address := strings.TrimSpace(walletAddress)
	if address == "" {
		m.update(func(s *State) { s.Error = MsgEmptyWallet })
		return ErrEmptyWalletAddress
	}

	m.update(func(s *State) {
		m.inflight++
		s.IsLoading = true
		s.Error = ""
	})

	resp, err := m.authenticate(ctx, address)
	if err == nil {
		err = resp.Validate()
	}
	if err != nil {
		msg := loginErrorMessage(err)
		var dropped bool
		m.commitMu.Lock()
		m.update(func(s *State) {
			m.finishLogin(s)
			dropped = s.IsAuthenticated
			s.User = nil
			s.Token = ""
			s.IsAuthenticated = false
			s.Persisted = false
			s.Error = msg
		})
		if dropped {
			m.clearStore()
		}
		m.commitMu.Unlock()
		m.logger.Warn("login failed", "wallet", address, "error", err, "dropped_session", dropped)
		return &LoginError{Message: msg, Err: err}
	}

	user := *resp.User
	m.commitMu.Lock()
	persisted := m.persist(resp.Token, user)
	m.update(func(s *State) {
		m.finishLogin(s)
		s.User = &user
		s.Token = resp.Token
		s.IsAuthenticated = true
		s.Error = ""
		s.Persisted = persisted
	})
	m.commitMu.Unlock()

	m.logger.Info("logged in", "wallet", user.WalletAddress, "persisted", persisted)
	m.navigator().Navigate(route.Home)
	return nil
}

// finishLogin must run inside update.
func (m *Manager) finishLogin(s *State) {
	m.inflight--
	s.IsLoading = m.inflight > 0
}

func (m *Manager) authenticate(ctx context.Context, address string) (resp *models.LoginResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("authenticator panic: %v", r)
		}
	}()
	return m.auth.Login(ctx, address)
}

func (m *Manager) persist(token string, user models.User) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Warn("session store panicked on save", "panic", r)
			ok = false
		}
	}()
	if err := m.store.Save(token, user); err != nil {
		m.logger.Warn("session not persisted; it will not survive a restart", "error", err)
		return false
	}
	return true
}

func loginErrorMessage(err error) string {
	if errors.Is(err, models.ErrMalformedResponse) {
		return MsgInvalidResponse
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return MsgLoginFailed
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgUnexpected
}

// Logout clears the session in memory and in the store, then requests the
// login route. Store failures are logged and never surfaced.
func (m *Manager) Logout() {
	m.commitMu.Lock()
	m.update(func(s *State) {
		s.User = nil
		s.Token = ""
		s.IsAuthenticated = false
		s.Persisted = false
		s.Error = ""
	})
	m.clearStore()
	m.commitMu.Unlock()

	m.logger.Info("logged out")
	m.navigator().Navigate(route.Login)
}

func (m *Manager) clearStore() {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Warn("session store panicked on clear", "panic", r)
		}
	}()
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("failed to clear persisted session", "error", err)
	}
}

// ClearError drops the current error message, if any.
func (m *Manager) ClearError() {
	m.mu.Lock()
	empty := m.state.Error == ""
	m.mu.Unlock()
	if empty {
		return
	}
	m.update(func(s *State) { s.Error = "" })
}

// State returns a copy of the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

// Token returns the bearer token, or "" when signed out.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Token
}

// AuthHeader returns the Authorization header value for downstream calls.
func (m *Manager) AuthHeader() string {
	if tok := m.Token(); tok != "" {
		return "Bearer " + tok
	}
	return ""
}

// Subscribe registers fn to receive every published state. Notifications may
// arrive from any goroutine; compare Revision to drop stale ones.
func (m *Manager) Subscribe(fn func(State)) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextSub++
	id := m.nextSub
	m.subs = append(m.subs, subscriber{id: id, fn: fn})
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

func (m *Manager) navigator() route.Navigator {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nav
}

// update applies fn under the lock and notifies subscribers outside it.
func (m *Manager) update(fn func(*State)) {
	m.mu.Lock()
	fn(&m.state)
	m.state.Revision++
	snap := m.state.clone()
	subs := make([]func(State), len(m.subs))
	for i, s := range m.subs {
		subs[i] = s.fn
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snap.clone())
	}
}
