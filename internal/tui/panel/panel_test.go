// ABOUTME: Tests for independently loaded sections
// ABOUTME: Covers loading, error and stale-data behaviour

package panel

import (
	"errors"
	"strings"
	"testing"

	"github.com/markalston/mocha-admin/internal/tui/icons"
)

func TestSection_States(t *testing.T) {
	s := New[[]string](icons.Orders, "Recent Orders")
	body := func(v []string) string { return strings.Join(v, ",") }

	if out := s.Render(60, body); !strings.Contains(out, "Loading...") {
		t.Errorf("expected loading text, got %q", out)
	}

	s.Set([]string{"ORD-001"}, nil)
	if !s.Ready() {
		t.Fatal("expected section to be ready")
	}
	if out := s.Render(60, body); !strings.Contains(out, "ORD-001") {
		t.Errorf("expected data, got %q", out)
	}

	s.Set(nil, errors.New("backend error: boom"))
	if s.Ready() {
		t.Error("failed section should not be ready")
	}
	if len(s.Data) != 1 {
		t.Error("failed refresh should keep previous data")
	}
	if out := s.Render(60, body); !strings.Contains(out, "boom") {
		t.Errorf("expected error text, got %q", out)
	}

	s.Reset()
	if s.Loaded || s.Err != nil {
		t.Error("Reset should return to loading")
	}
}
