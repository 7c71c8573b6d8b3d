// ABOUTME: Test helpers for screens: a JSON backend stub and command draining
// ABOUTME: Used only from _test.go files in the tui packages

package tuitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/markalston/mocha-admin/internal/client"
)

// Status makes a stub route answer with an error status and message.
type Status struct {
	Code    int
	Message string
}

// Backend is a stub REST backend keyed by "METHOD /path" or "/path".
type Backend struct {
	mu     sync.Mutex
	routes map[string]any
	calls  map[string]int
	server *httptest.Server
}

// NewBackend starts a stub backend; it is closed when the test ends.
func NewBackend(t *testing.T, routes map[string]any) *Backend {
	t.Helper()
	b := &Backend{routes: routes, calls: map[string]int{}}
	b.server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.server.Close)
	return b
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	key := r.Method + " " + r.URL.Path
	body, ok := b.routes[key]
	if !ok {
		body, ok = b.routes[r.URL.Path]
	}
	b.calls[key]++
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch v := body.(type) {
	case nil:
		if ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	case Status:
		w.WriteHeader(v.Code)
		json.NewEncoder(w).Encode(map[string]string{"error": v.Message})
	default:
		json.NewEncoder(w).Encode(v)
	}
}

// Set replaces the response for a route.
func (b *Backend) Set(key string, body any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[key] = body
}

// Calls returns how often "METHOD /path" was requested.
func (b *Backend) Calls(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[key]
}

// Client returns an authenticated client for the stub.
func (b *Backend) Client() *client.Client {
	return client.New(b.server.URL).WithToken("test-token")
}

// Drain runs cmd and returns the messages it yields, expanding batches.
// Commands produced by those messages are not run.
func Drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, Drain(c)...)
	}
	return out
}

// Feed drains cmd into m and returns the commands m produced in response.
func Feed(m tea.Model, cmd tea.Cmd) []tea.Cmd {
	var next []tea.Cmd
	for _, msg := range Drain(cmd) {
		var c tea.Cmd
		_, c = m.Update(msg)
		if c != nil {
			next = append(next, c)
		}
	}
	return next
}
