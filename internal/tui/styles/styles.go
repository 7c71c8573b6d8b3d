// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Coffee-house palette plus status styles for stock, orders and rarity

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#D97706") // Amber
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Yellow
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light
	Info      = lipgloss.Color("#3B82F6") // Blue
	Accent    = lipgloss.Color("#8B5CF6") // Purple, used for NFT/chain data
	Roast     = lipgloss.Color("#92400E") // Dark brown

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// ForStockStatus returns the style for a product stock label.
func ForStockStatus(status string) lipgloss.Style {
	switch status {
	case "In Stock":
		return StatusOK
	case "Low Stock":
		return StatusWarning
	case "Out of Stock":
		return StatusCritical
	default:
		return lipgloss.NewStyle().Foreground(Muted)
	}
}

// ForOrderStatus returns the style for an order status.
func ForOrderStatus(status string) lipgloss.Style {
	switch status {
	case "Processing":
		return StatusWarning
	case "Shipped":
		return lipgloss.NewStyle().Foreground(Info).Bold(true)
	case "Delivered":
		return StatusOK
	case "Cancelled":
		return StatusCritical
	default:
		return lipgloss.NewStyle().Foreground(Muted)
	}
}

// ForRarity returns the style for an NFT collection rarity.
func ForRarity(rarity string) lipgloss.Style {
	switch rarity {
	case "Rare":
		return lipgloss.NewStyle().Foreground(Info).Bold(true)
	case "Epic":
		return lipgloss.NewStyle().Foreground(Accent).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Muted)
	}
}

// ForChange colors a signed change label: green for gains, red for losses.
func ForChange(label string) lipgloss.Style {
	if len(label) > 0 && label[0] == '-' {
		return lipgloss.NewStyle().Foreground(Danger)
	}
	return lipgloss.NewStyle().Foreground(Secondary)
}
