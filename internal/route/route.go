// ABOUTME: Navigation surface of the dashboard: route paths and sidebar entries.
// ABOUTME: The login route is the only unprotected route.

package route

// Route is a navigation target identified by its path.
type Route string

const (
	Login       Route = "/auth"
	Home        Route = "/"
	Analytics   Route = "/analytics"
	Mints       Route = "/mints"
	Products    Route = "/products"
	ProductAdd  Route = "/products/add"
	ProductEdit Route = "/products/edit"
	Orders      Route = "/orders"
	Customers   Route = "/customers"
	Settings    Route = "/settings"
)

// Protected reports whether viewing r requires an authenticated session.
func (r Route) Protected() bool {
	return r != Login
}

func (r Route) String() string {
	return string(r)
}

// Title is the human-readable screen name.
func (r Route) Title() string {
	switch r {
	case Login:
		return "Sign In"
	case Home:
		return "Dashboard"
	case Analytics:
		return "Analytics"
	case Mints:
		return "NFT Mints"
	case Products:
		return "Products"
	case ProductAdd:
		return "Add Product"
	case ProductEdit:
		return "Edit Product"
	case Orders:
		return "Orders"
	case Customers:
		return "Customers"
	case Settings:
		return "Settings"
	default:
		return string(r)
	}
}

// Navigator requests a route change. The TUI implements it by sending a
// message into the program loop.
type Navigator interface {
	Navigate(to Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(to Route)

func (f NavigatorFunc) Navigate(to Route) { f(to) }

// Discard is a Navigator that ignores every request. The CLI commands use it.
var Discard Navigator = NavigatorFunc(func(Route) {})

// SidebarItem is one entry of the navigation sidebar.
type SidebarItem struct {
	Route    Route
	Label    string
	Shortcut string
}

// Sidebar lists the sidebar entries in display order. Logout is handled by
// the sidebar itself and has no route.
func Sidebar() []SidebarItem {
	return []SidebarItem{
		{Route: Home, Label: "Dashboard", Shortcut: "1"},
		{Route: Analytics, Label: "Analytics", Shortcut: "2"},
		{Route: Mints, Label: "NFT Mints", Shortcut: "3"},
		{Route: Products, Label: "Products", Shortcut: "4"},
		{Route: Orders, Label: "Orders", Shortcut: "5"},
		{Route: Customers, Label: "Customers", Shortcut: "6"},
		{Route: Settings, Label: "Settings", Shortcut: "7"},
	}
}
