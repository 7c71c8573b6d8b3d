// ABOUTME: Tests for TUI widgets
// ABOUTME: Validates card layout, sparkline scaling, bar charts and badges

package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/tui/icons"
)

func TestStatCard_LinesShareWidth(t *testing.T) {
	cfg := DefaultStatCardConfig()
	cfg.Width = 28
	out := StatCard(icons.Revenue, "Total Revenue", "$45,231", "+20.1%", "from last month", cfg)

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for i, line := range lines[1:] {
		if w := lipgloss.Width(line); w != cfg.Width {
			t.Errorf("line %d width %d, want %d: %q", i+1, w, cfg.Width, line)
		}
	}
	for _, want := range []string{"Total Revenue", "$45,231", "+20.1%", "from last month"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in card", want)
		}
	}
}

func TestCountCard(t *testing.T) {
	out := CountCard(icons.Chain, "Transactions", 15234, "on-chain", DefaultStatCardConfig())
	if !strings.Contains(out, "15,234") {
		t.Errorf("expected formatted count, got %q", out)
	}
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		width  int
		want   string
	}{
		{"empty", nil, 5, ""},
		{"rising", []float64{0, 7}, 2, "▁█"},
		{"flat", []float64{3, 3, 3}, 3, "▅▅▅"},
		{"padded", []float64{1, 2}, 4, "▁▁▄█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sparkline(tt.values, tt.width, ""); got != tt.want {
				t.Errorf("Sparkline() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBarChart_ScalesToLargest(t *testing.T) {
	out := BarChart([]Bar{{"Jan", 4000}, {"Feb", 2000}}, 10, "")
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if strings.Count(lines[0], "█") != 10 || strings.Count(lines[1], "█") != 5 {
		t.Errorf("unexpected bar lengths:\n%s", out)
	}
	if !strings.Contains(lines[0], "4,000") {
		t.Errorf("expected value label, got %q", lines[0])
	}
}

func TestStockLevel(t *testing.T) {
	tests := map[string]StatusLevel{
		models.StatusInStock:    StatusOK,
		models.StatusLowStock:   StatusWarning,
		models.StatusOutOfStock: StatusCritical,
	}
	for status, want := range tests {
		if got := StockLevel(status); got != want {
			t.Errorf("StockLevel(%q) = %d, want %d", status, got, want)
		}
	}
}

func TestChangeBadge(t *testing.T) {
	if got := ChangeBadge("-4.5%"); !strings.Contains(got, icons.TrendDown.String()) {
		t.Errorf("expected down arrow for a loss, got %q", got)
	}
	if got := ChangeBadge("+20.1%"); !strings.Contains(got, icons.TrendUp.String()) {
		t.Errorf("expected up arrow for a gain, got %q", got)
	}
	if got := ChangeBadge("N/A"); !strings.Contains(got, "N/A") {
		t.Errorf("expected N/A passthrough, got %q", got)
	}
}

func TestMintProgress(t *testing.T) {
	out := MintProgress(750, 1000, 20)
	if !strings.Contains(out, "750/1000") {
		t.Errorf("expected counts, got %q", out)
	}
	if strings.Count(out, "█") != 15 {
		t.Errorf("expected 15 filled cells, got %q", out)
	}
	if got := MintProgress(0, 0, 10); !strings.Contains(got, "0/0") {
		t.Errorf("zero supply should render, got %q", got)
	}
}

func TestShareBar_Clamps(t *testing.T) {
	if got := ShareBar(150, 10, ""); !strings.Contains(got, "100.0%") {
		t.Errorf("expected clamped percentage, got %q", got)
	}
}
