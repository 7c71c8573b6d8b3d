// ABOUTME: Progress bar widgets for mint progress and percentage shares
// ABOUTME: Colors collection supply as it sells out

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBarConfig holds configuration for the progress bar
type ProgressBarConfig struct {
	Width         int
	WarnThreshold float64 // Percentage where the bar turns amber (default 75)
	CritThreshold float64 // Percentage where the bar turns red (default 95)
	OKColor       lipgloss.Color
	WarnColor     lipgloss.Color
	CritColor     lipgloss.Color
	EmptyColor    lipgloss.Color
}

// DefaultProgressBarConfig returns sensible defaults
func DefaultProgressBarConfig() ProgressBarConfig {
	return ProgressBarConfig{
		Width:         20,
		WarnThreshold: 75,
		CritThreshold: 95,
		OKColor:       lipgloss.Color("#10B981"), // Green
		WarnColor:     lipgloss.Color("#F59E0B"), // Amber
		CritColor:     lipgloss.Color("#EF4444"), // Red
		EmptyColor:    lipgloss.Color("#374151"), // Dark gray
	}
}

func clampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// ProgressBar renders a bar whose fill color reflects the threshold zone.
func ProgressBar(percent float64, config ProgressBarConfig) string {
	if config.Width <= 0 {
		config.Width = 20
	}
	percent = clampPercent(percent)

	color := config.OKColor
	switch {
	case percent >= config.CritThreshold:
		color = config.CritColor
	case percent >= config.WarnThreshold:
		color = config.WarnColor
	}

	filled := int(percent / 100.0 * float64(config.Width))
	return "[" +
		lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(config.EmptyColor).Render(strings.Repeat("░", config.Width-filled)) +
		"]"
}

// MintProgress renders "minted/total" with a bar of the given width.
func MintProgress(minted, total, width int) string {
	var percent float64
	if total > 0 {
		percent = float64(minted) / float64(total) * 100
	}
	config := DefaultProgressBarConfig()
	config.Width = width
	return fmt.Sprintf("%s %d/%d", ProgressBar(percent, config), minted, total)
}

// ShareBar renders a minimal bar for a percentage share in tight spaces
func ShareBar(percent float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = 10
	}
	percent = clampPercent(percent)

	filled := int(percent / 100.0 * float64(width))
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("▓", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %4.1f%%", percent)
}
