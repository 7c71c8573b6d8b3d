// ABOUTME: Route guard deciding whether the current route may render for a session.
// ABOUTME: Pure function of session state and route; the TUI re-evaluates it on every change.

package guard

import (
	"github.com/markalston/mocha-admin/internal/route"
	"github.com/markalston/mocha-admin/internal/session"
)

// Decision is the guard outcome for one evaluation.
type Decision struct {
	// Render is true when the current route's view may be shown.
	Render bool
	// Redirect is the route to navigate to, or "" for none.
	Redirect route.Route
}

// Pending reports whether the guard is waiting for hydration.
func (d Decision) Pending() bool {
	return !d.Render && d.Redirect == ""
}

// Evaluate applies the access rules:
//   - before the session is initialized nothing renders and nothing redirects
//   - an unauthenticated viewer of a protected route is sent to login
//   - an authenticated viewer of the login route is sent home
func Evaluate(s session.State, current route.Route) Decision {
	if !s.Initialized {
		return Decision{}
	}
	if current.Protected() && !s.IsAuthenticated {
		return Decision{Redirect: route.Login}
	}
	if current == route.Login && s.IsAuthenticated {
		return Decision{Redirect: route.Home}
	}
	return Decision{Render: true}
}
