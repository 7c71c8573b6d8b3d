// ABOUTME: Navigation sidebar listing the dashboard sections and logout
// ABOUTME: Highlights the active route and emits navigation messages on select

package sidebar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/mocha-admin/internal/route"
	"github.com/markalston/mocha-admin/internal/tui/icons"
	"github.com/markalston/mocha-admin/internal/tui/nav"
	"github.com/markalston/mocha-admin/internal/tui/styles"
)

// Width is the rendered width of the sidebar including its border.
const Width = 24

type option struct {
	label    string
	shortcut string
	icon     icons.Icon
	route    route.Route // empty for logout
}

// Sidebar is the navigation menu
type Sidebar struct {
	options []option
	cursor  int
	active  route.Route
	focused bool
}

// New creates a sidebar with the active route selected
func New(active route.Route) *Sidebar {
	s := &Sidebar{}
	for _, item := range route.Sidebar() {
		s.options = append(s.options, option{
			label:    item.Label,
			shortcut: item.Shortcut,
			icon:     icons.ForPath(item.Route.String()),
			route:    item.Route,
		})
	}
	s.options = append(s.options, option{label: "Logout", shortcut: "L", icon: icons.Logout})
	s.SetActive(active)
	return s
}

// SetActive marks the route shown in the content pane. Sub-routes such as
// the product editor highlight their parent entry.
func (s *Sidebar) SetActive(r route.Route) {
	if r == route.ProductAdd || r == route.ProductEdit {
		r = route.Products
	}
	s.active = r
	for i, opt := range s.options {
		if opt.route == r {
			s.cursor = i
		}
	}
}

// Active returns the highlighted route
func (s *Sidebar) Active() route.Route {
	return s.active
}

// Focus toggles keyboard focus
func (s *Sidebar) Focus(on bool) {
	s.focused = on
}

// Focused reports whether the sidebar has keyboard focus
func (s *Sidebar) Focused() bool {
	return s.focused
}

// Update handles cursor movement and selection while focused
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return s, nil
	}

	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
	case "enter":
		opt := s.options[s.cursor]
		if opt.route == "" {
			return s, nav.Logout()
		}
		return s, nav.Go(opt.route)
	}
	return s, nil
}

// ForShortcut returns the route bound to a number key.
func ForShortcut(key string) (route.Route, bool) {
	for _, item := range route.Sidebar() {
		if item.Shortcut == key {
			return item.Route, true
		}
	}
	return "", false
}

// View renders the sidebar
func (s *Sidebar) View(height int) string {
	var sb strings.Builder
	for i, opt := range s.options {
		line := opt.shortcut + " " + opt.icon.String() + " " + opt.label
		switch {
		case i == s.cursor && s.focused:
			line = styles.Selected.Render("▸ " + line)
		case opt.route != "" && opt.route == s.active:
			line = styles.Selected.Render("  " + line)
		case opt.route == "":
			line = lipgloss.NewStyle().Foreground(styles.Danger).Render("  " + line)
		default:
			line = lipgloss.NewStyle().Foreground(styles.Text).Render("  " + line)
		}
		if opt.route == "" {
			sb.WriteString("\n")
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	panel := styles.Panel
	if s.focused {
		panel = styles.ActivePanel
	}
	panel = panel.Padding(1, 1).Width(Width - 2)
	if height > 2 {
		panel = panel.Height(height - 2)
	}
	return panel.Render(strings.TrimRight(sb.String(), "\n"))
}
