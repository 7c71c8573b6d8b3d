// ABOUTME: Messages shared between the root TUI model and its screens
// ABOUTME: Navigation requests, session updates and 401 handling

package nav

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/markalston/mocha-admin/internal/client"
	"github.com/markalston/mocha-admin/internal/route"
	"github.com/markalston/mocha-admin/internal/session"
)

// GoMsg asks the root model to show another route. ProductID is only
// meaningful for route.ProductEdit.
type GoMsg struct {
	To        route.Route
	ProductID int
}

// LogoutMsg asks the root model to end the session.
type LogoutMsg struct{}

// SessionMsg carries a published session state into the event loop.
type SessionMsg struct {
	State session.State
}

// ExpiredMsg reports that the backend rejected the bearer token.
type ExpiredMsg struct{}

// RefreshedMsg reports that a screen finished loading fresh data.
type RefreshedMsg struct {
	At time.Time
}

// Go returns a command that navigates to a route.
func Go(to route.Route) tea.Cmd {
	return func() tea.Msg { return GoMsg{To: to} }
}

// EditProduct returns a command that opens the product editor.
func EditProduct(id int) tea.Cmd {
	return func() tea.Msg { return GoMsg{To: route.ProductEdit, ProductID: id} }
}

// Logout returns a command that ends the session.
func Logout() tea.Cmd {
	return func() tea.Msg { return LogoutMsg{} }
}

// Refreshed returns a command stamping the current time.
func Refreshed() tea.Cmd {
	return func() tea.Msg { return RefreshedMsg{At: time.Now()} }
}

// CheckAuth returns a command emitting ExpiredMsg when err is a 401, nil otherwise.
func CheckAuth(err error) tea.Cmd {
	if !client.IsUnauthorized(err) {
		return nil
	}
	return func() tea.Msg { return ExpiredMsg{} }
}
