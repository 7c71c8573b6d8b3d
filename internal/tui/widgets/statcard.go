// ABOUTME: Compact stat card widget for dashboard displays
// ABOUTME: Combines icon, value, change and description in a bordered panel

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/tui/icons"
)

// StatCardConfig holds configuration for a stat card
type StatCardConfig struct {
	Width       int
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	ValueColor  lipgloss.Color
}

// DefaultStatCardConfig returns sensible defaults
func DefaultStatCardConfig() StatCardConfig {
	return StatCardConfig{
		Width:       24,
		BorderColor: lipgloss.Color("#6B7280"), // Muted gray
		TitleColor:  lipgloss.Color("#D97706"), // Amber
		ValueColor:  lipgloss.Color("#F9FAFB"), // Light
	}
}

// StatCard renders a value with its period-over-period change and a
// one-line description.
func StatCard(icon icons.Icon, title, value, change, description string, config StatCardConfig) string {
	if config.Width <= 0 {
		config.Width = 24
	}
	innerWidth := config.Width - 4

	lines := []string{
		topBorder(icon, title, innerWidth, config.TitleColor),
		boxLine(valueWithChange(value, change, config.ValueColor), innerWidth),
		boxLine(lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Render(truncate(description, innerWidth)), innerWidth),
		fmt.Sprintf("└%s┘", strings.Repeat("─", config.Width-2)),
	}
	return renderBox(lines, config.BorderColor)
}

// CountCard renders a simple count metric (like transactions or contracts)
func CountCard(icon icons.Icon, title string, count int64, label string, config StatCardConfig) string {
	return StatCard(icon, title, models.Thousands(count), "", label, config)
}

func valueWithChange(value, change string, color lipgloss.Color) string {
	v := lipgloss.NewStyle().Foreground(color).Bold(true).Render(value)
	if change == "" {
		return v
	}
	return v + " " + ChangeBadge(change)
}

func topBorder(icon icons.Icon, title string, innerWidth int, color lipgloss.Color) string {
	titleStr := truncate(fmt.Sprintf("%s %s", icon.String(), title), innerWidth)
	return fmt.Sprintf("┌─ %s %s┐",
		lipgloss.NewStyle().Foreground(color).Render(titleStr),
		strings.Repeat("─", max(0, innerWidth-lipgloss.Width(titleStr)-1)))
}

// boxLine pads styled content to the inner width using its display width.
func boxLine(content string, innerWidth int) string {
	pad := max(0, innerWidth-lipgloss.Width(content))
	return fmt.Sprintf("│  %s%s│", content, strings.Repeat(" ", pad))
}

func renderBox(lines []string, border lipgloss.Color) string {
	borderStyle := lipgloss.NewStyle().Foreground(border)
	for i := range lines {
		lines[i] = borderStyle.Render(lines[i])
	}
	return strings.Join(lines, "\n")
}

// truncate shortens a string to maxLen runes with ellipsis if needed
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:max(0, maxLen)])
	}
	return string(r[:maxLen-3]) + "..."
}
