// ABOUTME: Settings screen showing the signed-in wallet and session details
// ABOUTME: Copies the wallet or token to the clipboard and offers logout

package settings

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/markalston/mocha-admin/internal/session"
	"github.com/markalston/mocha-admin/internal/tui/icons"
	"github.com/markalston/mocha-admin/internal/tui/nav"
	"github.com/markalston/mocha-admin/internal/tui/styles"
	"github.com/markalston/mocha-admin/internal/tui/widgets"
)

// Settings is the account screen
type Settings struct {
	state  session.State
	apiURL string
	width  int
	height int

	copyFn func(string) error
	notice string
	failed bool
}

// New creates the settings screen for the given session
func New(state session.State, apiURL string, width, height int) *Settings {
	return &Settings{
		state:  state,
		apiURL: apiURL,
		width:  width,
		height: height,
		copyFn: clipboard.WriteAll,
	}
}

// SetSize updates the screen dimensions
func (s *Settings) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetState replaces the displayed session
func (s *Settings) SetState(state session.State) {
	s.state = state
}

// Init implements tea.Model
func (s *Settings) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *Settings) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case nav.SessionMsg:
		s.state = msg.State
	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			s.copy("Wallet address", s.state.WalletAddress())
		case "t":
			s.copy("Token", s.state.Token)
		case "l":
			return s, nav.Logout()
		}
	}
	return s, nil
}

func (s *Settings) copy(what, value string) {
	if value == "" {
		s.notice = what + " is empty"
		s.failed = true
		return
	}
	if err := s.copyFn(value); err != nil {
		s.notice = fmt.Sprintf("Copy failed: %v", err)
		s.failed = true
		return
	}
	s.notice = what + " copied to clipboard"
	s.failed = false
}

// tokenPreview shows the first and last four characters of a token.
func tokenPreview(token string) string {
	if len(token) <= 12 {
		return strings.Repeat("•", len(token))
	}
	return token[:4] + strings.Repeat("•", 8) + token[len(token)-4:]
}

func row(label, value string) string {
	return fmt.Sprintf("%-16s %s", styles.Subtitle.UnsetMarginBottom().Render(label), value)
}

// View renders the screen
func (s *Settings) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(icons.Settings.String() + " Settings"))
	sb.WriteString("\n")

	var body strings.Builder
	body.WriteString(styles.ValueStyle.Render(icons.Wallet.String()+" Account") + "\n\n")
	body.WriteString(row("Wallet", s.state.WalletAddress()) + "\n")
	if s.state.User != nil && !s.state.User.CreatedAt.IsZero() {
		body.WriteString(row("Member since", s.state.User.CreatedAt.Format("Jan 2, 2006")) + "\n")
	}
	body.WriteString(row("Token", tokenPreview(s.state.Token)) + "\n")
	body.WriteString(row("Backend", s.apiURL) + "\n")

	if s.state.Persisted {
		body.WriteString(row("Session", widgets.StatusText("saved on this device", widgets.StatusOK)))
	} else {
		body.WriteString(row("Session", widgets.StatusText("memory only; sign in again after restart", widgets.StatusWarning)))
	}

	width := max(s.width-2, 40)
	sb.WriteString(styles.Panel.Width(width).Render(body.String()))

	if s.notice != "" {
		sb.WriteString("\n")
		if s.failed {
			sb.WriteString(styles.StatusCritical.Render(s.notice))
		} else {
			sb.WriteString(styles.StatusOK.Render(icons.Copy.String() + " " + s.notice))
		}
	}
	return sb.String()
}
