// ABOUTME: Test to verify the dashboard screen renders with visible header/footer
// ABOUTME: Ensures loaded content sits between the frame lines next to the sidebar

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/tui/tuitest"
)

func TestDashboardRendersWithHeader(t *testing.T) {
	app, _, b := newTestApp(t, true)
	b.Set("/stats/overview", models.Overview{
		TotalRevenue: models.StatValue{Value: 45231, Change: 20.1},
		NFTsMinted:   models.StatValue{Value: 2350, Change: 180.1},
		ActiveUsers:  models.StatValue{Value: 12234, Change: 19},
		ProductsSold: models.StatValue{Value: 573, Change: 201},
	})
	b.Set("/stats/sales", []models.MonthlySales{{Month: "Jan", Sales: 4000}, {Month: "Feb", Sales: 3000}})
	b.Set("/stats/top-products", []models.TopProduct{{Name: "Ethiopian Yirgacheffe", Sales: 234, Revenue: "$4,680"}})
	b.Set("/stats/blockchain", models.BlockchainStats{Transactions: 15234, SmartContracts: 12})

	// Init restores the session and mounts the dashboard; feeding the
	// follow-up commands runs the dashboard fetches.
	for _, cmd := range tuitest.Feed(app, app.Init()) {
		tuitest.Feed(app, cmd)
	}
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	view := app.View()
	lines := strings.Split(view, "\n")

	if !strings.HasPrefix(lines[0], "╭") || !strings.Contains(lines[0], "Mocha Admin") {
		t.Errorf("expected header on first line, got %q", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "╰") {
		t.Errorf("expected footer on last line, got %q", lines[len(lines)-1])
	}
	for _, want := range []string{"Total Revenue", "$45,231", "Ethiopian Yirgacheffe", "Logout"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
