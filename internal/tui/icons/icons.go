// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides consistent iconography across different terminal capabilities

package icons

import (
	"os"
	"strings"
	"sync"
)

var (
	mu           sync.Mutex
	useNerdFonts bool
	resolved     bool
	override     string
)

// SetPreference applies the nerd_fonts config value ("1", "true", "0",
// "false" or "" for auto-detect). It takes precedence over detection.
func SetPreference(value string) {
	mu.Lock()
	defer mu.Unlock()
	override = strings.ToLower(strings.TrimSpace(value))
	resolved = false
}

func parseFlag(v string) (on, set bool) {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true, true
	case "0", "false", "no":
		return false, true
	}
	return false, false
}

// detectNerdFonts checks if Nerd Fonts should be used
func detectNerdFonts(pref string) bool {
	if on, ok := parseFlag(pref); ok {
		return on
	}
	if on, ok := parseFlag(os.Getenv("MOCHA_NERD_FONTS")); ok {
		return on
	}

	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")
	for _, t := range []string{"iTerm.app", "alacritty", "WezTerm", "kitty", "ghostty"} {
		if strings.Contains(termProgram, t) || strings.Contains(term, strings.ToLower(t)) {
			return true
		}
	}
	return os.Getenv("NERD_FONTS") == "1"
}

// HasNerdFonts returns true if Nerd Fonts are available
func HasNerdFonts() bool {
	mu.Lock()
	defer mu.Unlock()
	if !resolved {
		useNerdFonts = detectNerdFonts(override)
		resolved = true
	}
	return useNerdFonts
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

var (
	// Application and navigation
	App       = Icon{"󰅶", "☕"} // nf-md-coffee
	Dashboard = Icon{"󰕮", "▦"} // nf-md-view_dashboard
	Analytics = Icon{"󰄪", "▤"} // nf-md-chart_bar
	Mint      = Icon{"󱐋", "⚡"} // nf-md-lightning_bolt
	Products  = Icon{"󰏗", "▣"} // nf-md-package_variant
	Orders    = Icon{"󰄐", "◫"} // nf-md-cart
	Customers = Icon{"󰡉", "☺"} // nf-md-account_group
	Settings  = Icon{"󰒓", "⚙"} // nf-md-cog
	Logout    = Icon{"󰍃", "⏏"} // nf-md-logout
	Wallet    = Icon{"󰖄", "◈"} // nf-md-wallet

	// Status indicators
	CheckOK  = Icon{"", "✓"}
	Warning  = Icon{"", "⚠"}
	Critical = Icon{"", "✗"}
	Clock    = Icon{"󰥔", "◷"}
	Truck    = Icon{"󰒋", "➜"}
	Star     = Icon{"󰓎", "★"}

	// Trends and charts
	TrendUp   = Icon{"󰔵", "↗"}
	TrendDown = Icon{"󰔳", "↘"}
	Chart     = Icon{"󰄭", "▁"}
	Chain     = Icon{"󰌷", "⛓"}
	Revenue   = Icon{"󰇁", "$"}
	Users     = Icon{"󰀎", "☻"}
	Globe     = Icon{"󰇧", "◍"}

	// Actions
	Refresh = Icon{"󰑓", "↻"}
	Add     = Icon{"󰐕", "+"}
	Edit    = Icon{"󰏫", "✎"}
	Delete  = Icon{"󰆴", "⌫"}
	Copy    = Icon{"󰆏", "⧉"}
	Back    = Icon{"󰁍", "←"}
	Quit    = Icon{"󰗼", "×"}
)

// ForPath returns the navigation icon for a route path.
func ForPath(path string) Icon {
	switch path {
	case "/":
		return Dashboard
	case "/analytics":
		return Analytics
	case "/mints":
		return Mint
	case "/products", "/products/add", "/products/edit":
		return Products
	case "/orders":
		return Orders
	case "/customers":
		return Customers
	case "/settings":
		return Settings
	default:
		return App
	}
}
