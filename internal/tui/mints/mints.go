// ABOUTME: NFT mints screen with mint stats, collection progress and recent mints
// ABOUTME: Panels load independently; r reloads everything

package mints

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/mocha-admin/internal/client"
	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/tui/icons"
	"github.com/markalston/mocha-admin/internal/tui/nav"
	"github.com/markalston/mocha-admin/internal/tui/panel"
	"github.com/markalston/mocha-admin/internal/tui/styles"
	"github.com/markalston/mocha-admin/internal/tui/widgets"
)

type overviewMsg struct {
	data []models.HighlightStat
	err  error
}

type collectionsMsg struct {
	data []models.Collection
	err  error
}

type recentMsg struct {
	data []models.RecentMint
	err  error
}

// Mints displays NFT minting activity
type Mints struct {
	api    *client.Client
	width  int
	height int

	overview    panel.Section[[]models.HighlightStat]
	collections panel.Section[[]models.Collection]
	recent      panel.Section[[]models.RecentMint]
}

// New creates the mints screen
func New(api *client.Client, width, height int) *Mints {
	return &Mints{
		api:         api,
		width:       width,
		height:      height,
		overview:    panel.New[[]models.HighlightStat](icons.Mint, "Mint Overview"),
		collections: panel.New[[]models.Collection](icons.Star, "Collections"),
		recent:      panel.New[[]models.RecentMint](icons.Clock, "Recent Mints"),
	}
}

// SetSize updates the screen dimensions
func (m *Mints) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements tea.Model
func (m *Mints) Init() tea.Cmd {
	return m.load()
}

func (m *Mints) load() tea.Cmd {
	api := m.api
	return tea.Batch(
		func() tea.Msg {
			v, err := api.MintOverview(context.Background())
			return overviewMsg{v, err}
		},
		func() tea.Msg {
			v, err := api.Collections(context.Background())
			return collectionsMsg{v, err}
		},
		func() tea.Msg {
			v, err := api.RecentMints(context.Background())
			return recentMsg{v, err}
		},
	)
}

func loaded(err error) tea.Cmd {
	if err != nil {
		return nav.CheckAuth(err)
	}
	return nav.Refreshed()
}

// Update implements tea.Model
func (m *Mints) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewMsg:
		m.overview.Set(msg.data, msg.err)
		return m, loaded(msg.err)
	case collectionsMsg:
		m.collections.Set(msg.data, msg.err)
		return m, loaded(msg.err)
	case recentMsg:
		m.recent.Set(msg.data, msg.err)
		return m, loaded(msg.err)
	case tea.KeyMsg:
		if msg.String() == "r" {
			m.overview.Reset()
			m.collections.Reset()
			m.recent.Reset()
			return m, m.load()
		}
	}
	return m, nil
}

// View renders the mints screen
func (m *Mints) View() string {
	width := max(m.width, 60)

	var sb strings.Builder
	sb.WriteString(m.overview.Render(width, renderOverview))
	sb.WriteString("\n")
	if width < 100 {
		sb.WriteString(m.collections.Render(width, renderCollections))
		sb.WriteString("\n")
		sb.WriteString(m.recent.Render(width, renderRecent))
	} else {
		half := width / 2
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.collections.Render(half, renderCollections),
			m.recent.Render(width-half, renderRecent)))
	}
	return sb.String()
}

func renderOverview(stats []models.HighlightStat) string {
	var parts []string
	for _, s := range stats {
		line := styles.KeyStyle.Render(s.Title) + " " + styles.ValueStyle.Render(s.Value)
		if s.Change != "" {
			line += " " + widgets.ChangeBadge(s.Change)
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, "    ")
}

func renderCollections(cols []models.Collection) string {
	if len(cols) == 0 {
		return styles.Subtitle.Render("No collections yet")
	}
	var sb strings.Builder
	for _, c := range cols {
		sb.WriteString(fmt.Sprintf("%s %s  %s\n", styles.ValueStyle.Render(c.Name), widgets.RarityBadge(c.Rarity), c.Price))
		sb.WriteString(widgets.MintProgress(c.Minted, c.TotalSupply, 20))
		sb.WriteString("\n\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderRecent(mints []models.RecentMint) string {
	if len(mints) == 0 {
		return styles.Subtitle.Render("No mints yet")
	}
	var sb strings.Builder
	for _, mt := range mints {
		sb.WriteString(fmt.Sprintf("%s  %s\n", styles.ValueStyle.Render(mt.ID), mt.Collection))
		sb.WriteString(fmt.Sprintf("  %s  %s  %s\n", shortWallet(mt.Buyer), mt.Price,
			styles.Subtitle.UnsetMarginBottom().Render(mt.Time)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// shortWallet abbreviates 0x1234567890abcdef to 0x1234...cdef.
func shortWallet(w string) string {
	if len(w) <= 12 {
		return w
	}
	return w[:6] + "..." + w[len(w)-4:]
}
