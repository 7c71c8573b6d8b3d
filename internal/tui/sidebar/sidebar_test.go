// ABOUTME: Tests for the navigation sidebar
// ABOUTME: Validates entries, focus handling and emitted navigation messages

package sidebar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/markalston/mocha-admin/internal/route"
	"github.com/markalston/mocha-admin/internal/tui/nav"
)

func TestSidebarOptions(t *testing.T) {
	s := New(route.Home)

	if len(s.options) != 8 {
		t.Fatalf("expected 8 options, got %d", len(s.options))
	}
	if s.options[0].label != "Dashboard" {
		t.Errorf("expected first option 'Dashboard', got %s", s.options[0].label)
	}
	if s.options[len(s.options)-1].label != "Logout" {
		t.Error("expected logout to be the last option")
	}
}

func TestSetActive_SubRoutesHighlightParent(t *testing.T) {
	s := New(route.Home)
	s.SetActive(route.ProductEdit)

	if s.Active() != route.Products {
		t.Errorf("expected products active, got %s", s.Active())
	}
}

func TestUpdate_IgnoredWithoutFocus(t *testing.T) {
	s := New(route.Home)
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("unfocused sidebar should not emit commands")
	}
}

func TestUpdate_SelectEmitsNavigation(t *testing.T) {
	s := New(route.Home)
	s.Focus(true)

	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on enter")
	}
	msg, ok := cmd().(nav.GoMsg)
	if !ok {
		t.Fatalf("expected nav.GoMsg, got %T", cmd())
	}
	if msg.To != route.Mints {
		t.Errorf("expected %s, got %s", route.Mints, msg.To)
	}
}

func TestUpdate_LogoutEntry(t *testing.T) {
	s := New(route.Home)
	s.Focus(true)
	for range s.options {
		s.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on enter")
	}
	if _, ok := cmd().(nav.LogoutMsg); !ok {
		t.Errorf("expected nav.LogoutMsg, got %T", cmd())
	}
}

func TestForShortcut(t *testing.T) {
	tests := []struct {
		key  string
		want route.Route
		ok   bool
	}{
		{"1", route.Home, true},
		{"4", route.Products, true},
		{"7", route.Settings, true},
		{"9", "", false},
	}
	for _, tt := range tests {
		got, ok := ForShortcut(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ForShortcut(%q) = %s, %v; want %s, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestView_ListsEntries(t *testing.T) {
	out := New(route.Orders).View(20)
	for _, label := range []string{"Dashboard", "Orders", "Logout"} {
		if !strings.Contains(out, label) {
			t.Errorf("sidebar missing %q", label)
		}
	}
}
