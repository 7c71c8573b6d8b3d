// ABOUTME: Analytics screen with key metrics, traffic sources, demographics and performance
// ABOUTME: Panels load independently; r reloads everything

package analytics

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

type metricsMsg struct {
	data []models.HighlightStat
	err  error
}

type trafficMsg struct {
	data []models.TrafficSource
	err  error
}

type demographicsMsg struct {
	data *models.Demographics
	err  error
}

type performanceMsg struct {
	data []models.PerformanceMetric
	err  error
}

// Analytics displays traffic and audience data
type Analytics struct {
	api    *client.Client
	width  int
	height int

	metrics      panel.Section[[]models.HighlightStat]
	traffic      panel.Section[[]models.TrafficSource]
	demographics panel.Section[*models.Demographics]
	performance  panel.Section[[]models.PerformanceMetric]
}

// New creates the analytics screen
func New(api *client.Client, width, height int) *Analytics {
	return &Analytics{
		api:          api,
		width:        width,
		height:       height,
		metrics:      panel.New[[]models.HighlightStat](icons.Analytics, "Key Metrics"),
		traffic:      panel.New[[]models.TrafficSource](icons.Globe, "Traffic Sources"),
		demographics: panel.New[*models.Demographics](icons.Users, "Demographics"),
		performance:  panel.New[[]models.PerformanceMetric](icons.Chart, "Performance"),
	}
}

// SetSize updates the screen dimensions
func (a *Analytics) SetSize(width, height int) {
	a.width = width
	a.height = height
}

// Init implements tea.Model
func (a *Analytics) Init() tea.Cmd {
	return a.load()
}

func (a *Analytics) load() tea.Cmd {
	api := a.api
	return tea.Batch(
		func() tea.Msg {
			v, err := api.KeyMetrics(context.Background())
			return metricsMsg{v, err}
		},
		func() tea.Msg {
			v, err := api.TrafficSources(context.Background())
			return trafficMsg{v, err}
		},
		func() tea.Msg {
			v, err := api.Demographics(context.Background())
			return demographicsMsg{v, err}
		},
		func() tea.Msg {
			v, err := api.Performance(context.Background())
			return performanceMsg{v, err}
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
func (a *Analytics) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case metricsMsg:
		a.metrics.Set(msg.data, msg.err)
		return a, loaded(msg.err)
	case trafficMsg:
		a.traffic.Set(msg.data, msg.err)
		return a, loaded(msg.err)
	case demographicsMsg:
		a.demographics.Set(msg.data, msg.err)
		return a, loaded(msg.err)
	case performanceMsg:
		a.performance.Set(msg.data, msg.err)
		return a, loaded(msg.err)
	case tea.KeyMsg:
		if msg.String() == "r" {
			a.metrics.Reset()
			a.traffic.Reset()
			a.demographics.Reset()
			a.performance.Reset()
			return a, a.load()
		}
	}
	return a, nil
}

// View renders the analytics screen
func (a *Analytics) View() string {
	width := max(a.width, 60)

	var sb strings.Builder
	sb.WriteString(a.metrics.Render(width, a.renderMetrics))
	sb.WriteString("\n")

	if width < 100 {
		sb.WriteString(a.traffic.Render(width, a.renderTraffic))
		sb.WriteString("\n")
		sb.WriteString(a.demographics.Render(width, a.renderDemographics))
	} else {
		half := width / 2
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			a.traffic.Render(half, a.renderTraffic),
			a.demographics.Render(width-half, a.renderDemographics)))
	}
	sb.WriteString("\n")
	sb.WriteString(a.performance.Render(width, a.renderPerformance))
	return sb.String()
}

func (a *Analytics) renderMetrics(stats []models.HighlightStat) string {
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

func (a *Analytics) renderTraffic(sources []models.TrafficSource) string {
	var sb strings.Builder
	for _, s := range sources {
		sb.WriteString(fmt.Sprintf("%-16s %s %8s visits\n",
			s.Source, widgets.ShareBar(s.Percentage, 12, styles.Info), models.Thousands(int64(s.Visits))))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderShares(title string, shares []models.Share, color lipgloss.Color) string {
	var sb strings.Builder
	sb.WriteString(styles.KeyStyle.Render(title))
	sb.WriteString("\n")
	for _, s := range shares {
		sb.WriteString(fmt.Sprintf("%-10s %s\n", s.Label, widgets.ShareBar(s.Percentage, 16, color)))
	}
	return sb.String()
}

func (a *Analytics) renderDemographics(d *models.Demographics) string {
	if d == nil {
		return ""
	}
	return strings.TrimRight(
		renderShares("Age groups", d.AgeGroups, styles.Accent)+"\n"+
			renderShares("Devices", d.DeviceTypes, styles.Secondary), "\n")
}

func (a *Analytics) renderPerformance(metrics []models.PerformanceMetric) string {
	var parts []string
	for _, m := range metrics {
		parts = append(parts, fmt.Sprintf("%s %s", styles.Subtitle.UnsetMarginBottom().Render(m.Label), styles.ValueStyle.Render(m.Value)))
	}
	return strings.Join(parts, "    ")
}
