// ABOUTME: Dashboard screen showing sales KPIs, monthly sales and top products
// ABOUTME: Each panel loads independently and can be refreshed with r

package dashboard

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
	data *models.Overview
	err  error
}

type salesMsg struct {
	data []models.MonthlySales
	err  error
}

type topProductsMsg struct {
	data []models.TopProduct
	err  error
}

type blockchainMsg struct {
	data *models.BlockchainStats
	err  error
}

// Dashboard displays the store overview
type Dashboard struct {
	api    *client.Client
	width  int
	height int

	overview panel.Section[*models.Overview]
	sales    panel.Section[[]models.MonthlySales]
	top      panel.Section[[]models.TopProduct]
	chain    panel.Section[*models.BlockchainStats]
}

// New creates a dashboard that loads from api
func New(api *client.Client, width, height int) *Dashboard {
	return &Dashboard{
		api:      api,
		width:    width,
		height:   height,
		overview: panel.New[*models.Overview](icons.Revenue, "Overview"),
		sales:    panel.New[[]models.MonthlySales](icons.Chart, "Monthly Sales"),
		top:      panel.New[[]models.TopProduct](icons.Products, "Top Products"),
		chain:    panel.New[*models.BlockchainStats](icons.Chain, "Blockchain"),
	}
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Init implements tea.Model
func (d *Dashboard) Init() tea.Cmd {
	return d.load()
}

func (d *Dashboard) load() tea.Cmd {
	api := d.api
	return tea.Batch(
		func() tea.Msg {
			v, err := api.Overview(context.Background())
			return overviewMsg{v, err}
		},
		func() tea.Msg {
			v, err := api.MonthlySales(context.Background())
			return salesMsg{v, err}
		},
		func() tea.Msg {
			v, err := api.TopProducts(context.Background())
			return topProductsMsg{v, err}
		},
		func() tea.Msg {
			v, err := api.Blockchain(context.Background())
			return blockchainMsg{v, err}
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
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewMsg:
		d.overview.Set(msg.data, msg.err)
		return d, loaded(msg.err)
	case salesMsg:
		d.sales.Set(msg.data, msg.err)
		return d, loaded(msg.err)
	case topProductsMsg:
		d.top.Set(msg.data, msg.err)
		return d, loaded(msg.err)
	case blockchainMsg:
		d.chain.Set(msg.data, msg.err)
		return d, loaded(msg.err)
	case tea.KeyMsg:
		if msg.String() == "r" {
			d.overview.Reset()
			d.sales.Reset()
			d.top.Reset()
			d.chain.Reset()
			return d, d.load()
		}
	}
	return d, nil
}

// View renders the dashboard
func (d *Dashboard) View() string {
	width := max(d.width, 60)

	var sb strings.Builder
	sb.WriteString(d.renderCards(width))
	sb.WriteString("\n")

	half := width / 2
	if width < 100 {
		sb.WriteString(d.sales.Render(width, d.renderSales))
		sb.WriteString("\n")
		sb.WriteString(d.top.Render(width, d.renderTop))
	} else {
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			d.sales.Render(half, d.renderSales),
			d.top.Render(width-half, d.renderTop)))
	}
	sb.WriteString("\n")
	sb.WriteString(d.chain.Render(width, d.renderChain))
	return sb.String()
}

func (d *Dashboard) renderCards(width int) string {
	if !d.overview.Ready() {
		return d.overview.Render(width, func(*models.Overview) string { return "" })
	}
	o := d.overview.Data

	cfg := widgets.DefaultStatCardConfig()
	perRow := 4
	if width < 100 {
		perRow = 2
	}
	cfg.Width = max(22, width/perRow-1)

	cards := []string{
		widgets.StatCard(icons.Revenue, "Total Revenue", "$"+models.Thousands(int64(o.TotalRevenue.Value)), o.TotalRevenue.ChangeLabel(), "from last month", cfg),
		widgets.StatCard(icons.Mint, "NFTs Minted", models.Thousands(int64(o.NFTsMinted.Value)), o.NFTsMinted.ChangeLabel(), "from last month", cfg),
		widgets.StatCard(icons.Users, "Active Users", models.Thousands(int64(o.ActiveUsers.Value)), o.ActiveUsers.ChangeLabel(), "from last month", cfg),
		widgets.StatCard(icons.Products, "Products Sold", models.Thousands(int64(o.ProductsSold.Value)), o.ProductsSold.ChangeLabel(), "from last month", cfg),
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:min(i+perRow, len(cards))]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (d *Dashboard) renderSales(series []models.MonthlySales) string {
	if len(series) == 0 {
		return styles.Subtitle.Render("No sales recorded yet")
	}
	values := make([]float64, len(series))
	bars := make([]widgets.Bar, len(series))
	for i, s := range series {
		values[i] = s.Sales
		bars[i] = widgets.Bar{Label: s.Month, Value: s.Sales}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Growth %s  %s\n\n",
		widgets.ChangeBadge(models.SalesGrowth(series)),
		widgets.Sparkline(values, min(len(values)*2, 24), styles.Primary)))
	sb.WriteString(widgets.BarChart(bars, 20, styles.Primary))
	return sb.String()
}

func (d *Dashboard) renderTop(products []models.TopProduct) string {
	if len(products) == 0 {
		return styles.Subtitle.Render("No products sold yet")
	}
	var sb strings.Builder
	for i, p := range products {
		sb.WriteString(fmt.Sprintf("%d. %-24s %s  %s\n",
			i+1, p.Name,
			styles.Subtitle.UnsetMarginBottom().Render(fmt.Sprintf("%d sold", p.Sales)),
			styles.ValueStyle.Render(p.Revenue)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (d *Dashboard) renderChain(s *models.BlockchainStats) string {
	if s == nil {
		return ""
	}
	cfg := widgets.DefaultStatCardConfig()
	cfg.Width = 30
	return lipgloss.JoinHorizontal(lipgloss.Top,
		widgets.CountCard(icons.Chain, "Transactions", int64(s.Transactions), "on-chain purchases", cfg),
		" ",
		widgets.CountCard(icons.Mint, "Smart Contracts", int64(s.SmartContracts), "deployed", cfg))
}
