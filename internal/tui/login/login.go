// ABOUTME: Wallet login screen with a single address input
// ABOUTME: Validates input locally, shows a spinner while signing in and surfaces errors

package login

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/mocha-admin/internal/logger"
	"github.com/markalston/mocha-admin/internal/session"
	"github.com/markalston/mocha-admin/internal/tui/icons"
	"github.com/markalston/mocha-admin/internal/tui/nav"
	"github.com/markalston/mocha-admin/internal/tui/recentwallets"
	"github.com/markalston/mocha-admin/internal/tui/styles"
)

// Service is the part of the session manager the login screen needs.
type Service interface {
	Login(ctx context.Context, walletAddress string) error
	ClearError()
	State() session.State
}

// doneMsg is sent when a login call returns
type doneMsg struct {
	wallet string
	err    error
}

// Model is the login screen
type Model struct {
	svc     Service
	recent  *recentwallets.RecentWallets
	logger  *slog.Logger
	input   textinput.Model
	spinner spinner.Model
	width   int

	state      session.State
	submitting bool
	recentIdx  int

	// seq orders error events so the most recent one is shown.
	seq      uint64
	localErr string
	localSeq uint64
	mgrSeq   uint64
}

// New creates the login screen. recent may be nil.
func New(svc Service, recent *recentwallets.RecentWallets, l *slog.Logger) *Model {
	if l == nil {
		l = logger.Discard()
	}
	if recent == nil {
		recent = recentwallets.New("")
	}

	ti := textinput.New()
	ti.Placeholder = "0x..."
	ti.Prompt = icons.Wallet.String() + " "
	ti.CharLimit = 128
	ti.Width = 48
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	m := &Model{
		svc:       svc,
		recent:    recent,
		logger:    l,
		input:     ti,
		spinner:   sp,
		recentIdx: -1,
	}
	m.applyState(svc.State())
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the screen width
func (m *Model) SetSize(width, _ int) {
	m.width = width
}

// Value returns the current input text
func (m *Model) Value() string {
	return m.input.Value()
}

// Loading reports whether a login call is outstanding. Submit is disabled
// while true.
func (m *Model) Loading() bool {
	return m.submitting || m.state.IsLoading
}

// ErrorText returns the most recent of the local validation error and the
// session error.
func (m *Model) ErrorText() string {
	if m.localErr != "" && (m.state.Error == "" || m.localSeq > m.mgrSeq) {
		return m.localErr
	}
	return m.state.Error
}

func (m *Model) applyState(s session.State) {
	if s.Error != "" && s.Error != m.state.Error {
		m.seq++
		m.mgrSeq = m.seq
	}
	m.state = s
}

func (m *Model) clearErrors() {
	m.localErr = ""
	if m.state.Error != "" {
		m.state.Error = ""
		m.svc.ClearError()
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case nav.SessionMsg:
		m.applyState(msg.State)
		return m, nil

	case doneMsg:
		m.submitting = false
		m.applyState(m.svc.State())
		if msg.err == nil {
			m.input.Reset()
			m.recentIdx = -1
		}
		return m, nil

	case spinner.TickMsg:
		if !m.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.submit()
		case "tab":
			return m, m.cycleRecent()
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.clearErrors()
	}
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	if m.Loading() {
		return nil
	}

	wallet := strings.TrimSpace(m.input.Value())
	if wallet == "" {
		m.seq++
		m.localErr = session.MsgEmptyWallet
		m.localSeq = m.seq
		return nil
	}

	m.localErr = ""
	m.submitting = true
	svc, recent, l := m.svc, m.recent, m.logger
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		err := svc.Login(context.Background(), wallet)
		// Recorded here rather than on doneMsg: a successful login can
		// unmount this screen before doneMsg is delivered.
		if err == nil {
			if rerr := recent.Add(wallet); rerr != nil {
				l.Warn("could not save recent wallet", "error", rerr)
			}
		}
		return doneMsg{wallet: wallet, err: err}
	})
}

func (m *Model) cycleRecent() tea.Cmd {
	wallets := m.recent.List()
	if len(wallets) == 0 || m.Loading() {
		return nil
	}
	m.recentIdx = (m.recentIdx + 1) % len(wallets)
	m.input.SetValue(wallets[m.recentIdx])
	m.input.CursorEnd()
	m.clearErrors()
	return nil
}

// View implements tea.Model
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.App.String() + " Mocha Admin"))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render("Sign in with your wallet address"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	if m.Loading() {
		sb.WriteString(m.spinner.View() + " " + styles.Subtitle.Render("Signing in..."))
	} else {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(styles.Roast).
			Padding(0, 2).
			Render("Sign in"))
	}

	if e := m.ErrorText(); e != "" {
		sb.WriteString("\n\n")
		sb.WriteString(styles.StatusCritical.Render(icons.Critical.String() + " " + e))
	}

	if n := len(m.recent.List()); n > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("tab: cycle recent wallets"))
	}

	card := styles.ActivePanel.Width(60).Render(sb.String())
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, card)
	}
	return card
}
