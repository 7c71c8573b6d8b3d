// ABOUTME: Tests for the customers screen
// ABOUTME: Validates rows, wallet shortening and the rating filter

package customers

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/tui/tuitest"
)

func TestCustomers(t *testing.T) {
	b := tuitest.NewBackend(t, map[string]any{
		"/customers": []models.Customer{
			{ID: 1, Name: "Alice Johnson", Email: "alice@example.com", Wallet: "0x1234567890abcdef", Orders: 12, TotalSpent: "$324.50", Rating: 5, Location: "Seattle"},
			{ID: 2, Name: "Bob Smith", Email: "bob@example.com", Wallet: "0xabc", Orders: 3, TotalSpent: "$45.00", Rating: 3, Location: "Austin"},
		},
	})
	l := New(b.Client(), 110, 30)
	tuitest.Feed(l, l.Init())

	view := l.View()
	for _, want := range []string{"Alice Johnson", "0x1234...cdef", "★★★★★", "15 orders placed"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view\n%s", want, view)
		}
	}

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	if got := l.Visible(); len(got) != 1 || got[0].Name != "Alice Johnson" {
		t.Errorf("expected only 5-star customers, got %+v", got)
	}
}

func TestStars(t *testing.T) {
	if got := stars(7); got != "★★★★★" {
		t.Errorf("expected rating clamped to 5, got %q", got)
	}
	if got := stars(2); got != "★★☆☆☆" {
		t.Errorf("unexpected stars %q", got)
	}
}
