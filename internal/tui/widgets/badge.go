// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Badges for stock, order status, collection rarity, changes and ratings

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/tui/icons"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
)

func colors(level StatusLevel) (bg, fg lipgloss.Color) {
	switch level {
	case StatusOK:
		return BadgeOKBg, BadgeOKFg
	case StatusWarning:
		return BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		return BadgeCritBg, BadgeCritFg
	case StatusInfo:
		return BadgeInfoBg, BadgeInfoFg
	default:
		return BadgeNeutralBg, BadgeNeutralFg
	}
}

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	bg, fg := colors(level)
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true).
		Render(text)
}

// StockLevel maps a product stock label to a status level.
func StockLevel(status string) StatusLevel {
	switch status {
	case models.StatusInStock:
		return StatusOK
	case models.StatusLowStock:
		return StatusWarning
	case models.StatusOutOfStock:
		return StatusCritical
	default:
		return StatusInfo
	}
}

// StockBadge renders the stock label of a product.
func StockBadge(status string) string {
	return Badge(status, StockLevel(status))
}

// RarityBadge renders an NFT collection rarity.
func RarityBadge(rarity string) string {
	switch rarity {
	case "Epic":
		return lipgloss.NewStyle().
			Background(lipgloss.Color("#8B5CF6")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1).
			Bold(true).
			Render(rarity)
	case "Rare":
		return Badge(rarity, StatusInfo)
	default:
		return Badge(rarity, StatusNeutral)
	}
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	bg, _ := colors(level)
	var icon string
	switch level {
	case StatusOK:
		icon = icons.CheckOK.String()
	case StatusWarning:
		icon = icons.Warning.String()
	case StatusCritical:
		icon = icons.Critical.String()
	case StatusInfo:
		icon = icons.Clock.String()
	default:
		icon = "•"
	}
	return lipgloss.NewStyle().Foreground(bg).Render(icon)
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	bg, _ := colors(level)
	return fmt.Sprintf("%s %s", StatusIcon(level), lipgloss.NewStyle().Foreground(bg).Render(text))
}

// ChangeBadge renders a signed change label like "+20.1%" with a trend arrow.
func ChangeBadge(change string) string {
	switch {
	case change == "" || change == "N/A":
		return lipgloss.NewStyle().Foreground(BadgeNeutralBg).Render(change)
	case strings.HasPrefix(change, "-"):
		return lipgloss.NewStyle().Foreground(BadgeCritBg).Render(icons.TrendDown.String() + " " + change)
	default:
		return lipgloss.NewStyle().Foreground(BadgeOKBg).Render(icons.TrendUp.String() + " " + change)
	}
}
