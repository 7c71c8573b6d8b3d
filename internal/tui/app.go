// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Applies the route guard to session changes and routes input to the active screen

package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/mocha-admin/internal/client"
	"github.com/markalston/mocha-admin/internal/guard"
	"github.com/markalston/mocha-admin/internal/logger"
	"github.com/markalston/mocha-admin/internal/route"
	"github.com/markalston/mocha-admin/internal/session"
	"github.com/markalston/mocha-admin/internal/tui/analytics"
	"github.com/markalston/mocha-admin/internal/tui/customers"
	"github.com/markalston/mocha-admin/internal/tui/dashboard"
	"github.com/markalston/mocha-admin/internal/tui/icons"
	"github.com/markalston/mocha-admin/internal/tui/login"
	"github.com/markalston/mocha-admin/internal/tui/mints"
	"github.com/markalston/mocha-admin/internal/tui/nav"
	"github.com/markalston/mocha-admin/internal/tui/orders"
	"github.com/markalston/mocha-admin/internal/tui/productform"
	"github.com/markalston/mocha-admin/internal/tui/products"
	"github.com/markalston/mocha-admin/internal/tui/recentwallets"
	"github.com/markalston/mocha-admin/internal/tui/settings"
	"github.com/markalston/mocha-admin/internal/tui/sidebar"
	"github.com/markalston/mocha-admin/internal/tui/styles"
)

// Layout constants
const (
	minTerminalWidth = 80 // Frame never renders narrower than this
	frameHeight      = 2  // Header and footer lines
	maxRedirects     = 4
)

// screen is a content pane mounted for a protected route
type screen interface {
	tea.Model
	SetSize(width, height int)
}

// capturer is implemented by screens that temporarily own every key (dialogs).
type capturer interface {
	Capturing() bool
}

// App is the root model for the TUI
type App struct {
	manager *session.Manager
	api     *client.Client
	recent  *recentwallets.RecentWallets
	logger  *slog.Logger

	state  session.State
	route  route.Route
	editID int
	width  int
	height int

	// mounted identifies what content currently shows, so session updates
	// that keep the route do not reload the screen.
	mounted      route.Route
	mountedID    int
	mountedToken string

	content    screen
	login      *login.Model
	sidebar    *sidebar.Sidebar
	lastUpdate time.Time
}

// New creates the root model. The first route is the dashboard; the guard
// sends unauthenticated users to login once the session is restored.
func New(manager *session.Manager, api *client.Client, recent *recentwallets.RecentWallets, l *slog.Logger) *App {
	if l == nil {
		l = logger.Discard()
	}
	return &App{
		manager: manager,
		api:     api,
		recent:  recent,
		logger:  l,
		state:   manager.State(),
		route:   route.Home,
		sidebar: sidebar.New(route.Home),
	}
}

// Route returns the route currently selected
func (a *App) Route() route.Route {
	return a.route
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.state.Initialized {
		return a.navigate(a.route, 0, true)
	}
	m := a.manager
	return func() tea.Msg {
		m.Initialize(context.Background())
		return nav.SessionMsg{State: m.State()}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)

	// Screens call the manager directly (login); pick up whatever it published
	// even if the subscription message is still in flight.
	if s := a.manager.State(); s.Revision > a.state.Revision {
		cmd = tea.Batch(cmd, a.setState(s))
	}
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return nil

	case nav.SessionMsg:
		if msg.State.Revision <= a.state.Revision {
			return nil
		}
		return a.setState(msg.State)

	case nav.GoMsg:
		return a.navigate(msg.To, msg.ProductID, true)

	case nav.LogoutMsg:
		a.manager.Logout()
		return nil

	case nav.ExpiredMsg:
		a.logger.Warn("backend rejected the session token; signing out", "route", a.route)
		a.manager.Logout()
		return nil

	case nav.RefreshedMsg:
		a.lastUpdate = msg.At
		return nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.forward(msg)
}

// setState applies a session snapshot and re-evaluates the guard.
func (a *App) setState(s session.State) tea.Cmd {
	a.state = s
	var cmds []tea.Cmd
	if a.login != nil {
		_, cmd := a.login.Update(nav.SessionMsg{State: s})
		cmds = append(cmds, cmd)
	}
	if st, ok := a.content.(*settings.Settings); ok {
		st.SetState(s)
	}
	cmds = append(cmds, a.navigate(a.route, a.editID, false))
	return tea.Batch(cmds...)
}

// navigate selects a route, following guard redirects. force remounts the
// screen even when the route is unchanged.
func (a *App) navigate(to route.Route, productID int, force bool) tea.Cmd {
	d := guard.Evaluate(a.state, to)
	for i := 0; d.Redirect != "" && i < maxRedirects; i++ {
		a.logger.Debug("route guard redirect", "from", to, "to", d.Redirect)
		to, productID = d.Redirect, 0
		d = guard.Evaluate(a.state, to)
	}

	a.route = to
	a.editID = productID
	if !d.Render {
		return nil
	}

	same := a.mounted == to && a.mountedID == productID && a.mountedToken == a.state.Token
	if same && !force {
		return nil
	}
	return a.mount()
}

// mount builds the screen for the current route.
func (a *App) mount() tea.Cmd {
	a.mounted, a.mountedID, a.mountedToken = a.route, a.editID, a.state.Token
	a.sidebar.SetActive(a.route)
	a.sidebar.Focus(false)

	if a.route == route.Login {
		a.content = nil
		a.login = login.New(a.manager, a.recent, a.logger)
		a.login.SetSize(a.width, a.height)
		return a.login.Init()
	}
	a.login = nil

	w, h := a.contentWidth(), a.contentHeight()
	api := a.api.WithToken(a.state.Token)

	switch a.route {
	case route.Analytics:
		a.content = analytics.New(api, w, h)
	case route.Mints:
		a.content = mints.New(api, w, h)
	case route.Products:
		a.content = products.New(api, w, h)
	case route.ProductAdd:
		a.content = productform.New(api)
	case route.ProductEdit:
		a.content = productform.NewEdit(api, a.editID)
	case route.Orders:
		a.content = orders.New(api, w, h)
	case route.Customers:
		a.content = customers.New(api, w, h)
	case route.Settings:
		a.content = settings.New(a.state, api.BaseURL(), w, h)
	default:
		a.content = dashboard.New(api, w, h)
	}
	a.content.SetSize(w, h)
	return a.content.Init()
}

func (a *App) resize() {
	if a.login != nil {
		a.login.SetSize(a.width, a.height)
	}
	if a.content != nil {
		a.content.SetSize(a.contentWidth(), a.contentHeight())
	}
}

// ownsKeys reports whether the active screen takes every key except ctrl+c.
func (a *App) ownsKeys() bool {
	switch a.route {
	case route.Login, route.ProductAdd, route.ProductEdit:
		return true
	}
	if c, ok := a.content.(capturer); ok {
		return c.Capturing()
	}
	return false
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}
	if guard.Evaluate(a.state, a.route).Pending() {
		return nil
	}
	if a.ownsKeys() {
		return a.forward(msg)
	}

	switch key {
	case "q":
		return tea.Quit
	case "tab":
		a.sidebar.Focus(!a.sidebar.Focused())
		return nil
	case "L":
		return nav.Logout()
	}

	if a.sidebar.Focused() {
		if key == "esc" {
			a.sidebar.Focus(false)
			return nil
		}
		_, cmd := a.sidebar.Update(msg)
		return cmd
	}

	if r, ok := sidebar.ForShortcut(key); ok {
		return a.navigate(r, 0, r != a.route)
	}
	return a.forward(msg)
}

// forward hands a message to the active screen.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	if a.login != nil {
		_, cmd := a.login.Update(msg)
		return cmd
	}
	if a.content != nil {
		_, cmd := a.content.Update(msg)
		return cmd
	}
	return nil
}

// View implements tea.Model
func (a *App) View() string {
	d := guard.Evaluate(a.state, a.route)

	var content string
	switch {
	case !d.Render:
		content = a.placeCenter(styles.Subtitle.Render(icons.Clock.String() + " Restoring session..."))
	case a.route == route.Login && a.login != nil:
		content = a.placeCenter(a.login.View())
	case a.content != nil:
		side := a.sidebar.View(a.contentHeight())
		content = lipgloss.JoinHorizontal(lipgloss.Top, side, " ", a.content.View())
	}
	return a.wrapWithFrame(content)
}

func (a *App) placeCenter(s string) string {
	return lipgloss.Place(a.frameWidth(), a.contentHeight(), lipgloss.Center, lipgloss.Center, s)
}

// frameWidth is one column short of the terminal to avoid wrapping, clamped to the minimum.
func (a *App) frameWidth() int {
	return max(a.width-1, minTerminalWidth)
}

// contentWidth is the width left for a screen next to the sidebar
func (a *App) contentWidth() int {
	return max(a.frameWidth()-sidebar.Width-1, 40)
}

// contentHeight is the height between header and footer
func (a *App) contentHeight() int {
	return max(a.height-frameHeight, 10)
}

// shortWallet abbreviates long addresses for the header
func shortWallet(w string) string {
	if len(w) <= 14 {
		return w
	}
	return w[:6] + "..." + w[len(w)-4:]
}

// renderHeader creates the header bar with app branding and the signed-in wallet
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)
	warnStyle := lipgloss.NewStyle().Foreground(styles.Warning)

	leftText := fmt.Sprintf(" %s %s ", icons.App.String(), titleStyle.Render("Mocha Admin"))
	if a.route != route.Login {
		leftText += lipgloss.NewStyle().Foreground(styles.Muted).Render("· "+a.route.Title()) + " "
	}

	rightText := ""
	if a.state.IsAuthenticated {
		rightText = " " + contextStyle.Render(icons.Wallet.String()+" "+shortWallet(a.state.WalletAddress()))
		if !a.state.Persisted {
			rightText += warnStyle.Render(" (not saved)")
		}
		rightText += " "
	}

	// -4 for ╭─ and ─╮
	fillWidth := max(0, width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText))
	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"
	return borderStyle.Render(header)
}

// shortcuts returns the footer key hints for the current route
func (a *App) shortcuts() []string {
	switch a.route {
	case route.Login:
		return []string{"Enter Sign-in", "Tab Recent", "ctrl+c Quit"}
	case route.ProductAdd, route.ProductEdit:
		return []string{"Enter Next", "Esc Cancel"}
	case route.Products:
		return []string{"a Add", "e Edit", "d Delete", "c Category", "s Status", "q Quit"}
	case route.Orders:
		return []string{"s Status", "r Refresh", "Tab Menu", "L Logout", "q Quit"}
	case route.Customers:
		return []string{"v Rating", "r Refresh", "Tab Menu", "L Logout", "q Quit"}
	case route.Settings:
		return []string{"c Copy-wallet", "t Copy-token", "l Logout", "q Quit"}
	default:
		return []string{"1-7 Navigate", "r Refresh", "Tab Menu", "L Logout", "q Quit"}
	}
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	shortcuts := a.shortcuts()
	if guard.Evaluate(a.state, a.route).Pending() {
		shortcuts = []string{"ctrl+c Quit"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	rightText := ""
	rightPlainText := ""
	if !a.lastUpdate.IsZero() && a.route != route.Login && a.route != route.ProductAdd && a.route != route.ProductEdit {
		elapsed := a.formatTimeSince(a.lastUpdate)
		rightText = statusStyle.Render("Updated "+elapsed) + " "
		rightPlainText = "Updated " + elapsed + " "
	}

	// -4 for ╰─ and ─╯
	fillWidth := max(0, width-4-lipgloss.Width(leftPlainText)-lipgloss.Width(rightPlainText))
	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"
	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func (a *App) formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := int(d.Hours())
	if hours == 1 {
		return "1h ago"
	}
	return fmt.Sprintf("%dh ago", hours)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI. Session changes and navigation requests from the
// manager are delivered into the program loop; both are sent from their own
// goroutine because the manager may publish while Update is running.
func Run(ctx context.Context, manager *session.Manager, api *client.Client, recent *recentwallets.RecentWallets, l *slog.Logger) error {
	app := New(manager, api, recent, l)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	unsubscribe := manager.Subscribe(func(s session.State) {
		go p.Send(nav.SessionMsg{State: s})
	})
	defer unsubscribe()

	manager.SetNavigator(route.NavigatorFunc(func(to route.Route) {
		go p.Send(nav.GoMsg{To: to})
	}))
	defer manager.SetNavigator(nil)

	_, err := p.Run()
	return err
}
