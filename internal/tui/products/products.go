// ABOUTME: Products screen listing the catalog with category and stock filters
// ABOUTME: Opens the product form for add/edit and confirms deletes with a huh dialog

package products

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/markalston/mocha-admin/internal/client"
	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/route"
	"github.com/markalston/mocha-admin/internal/tui/icons"
	"github.com/markalston/mocha-admin/internal/tui/listview"
	"github.com/markalston/mocha-admin/internal/tui/nav"
	"github.com/markalston/mocha-admin/internal/tui/styles"
)

type deletedMsg struct {
	name string
	err  error
}

// Products is the catalog screen
type Products struct {
	api  *client.Client
	list *listview.List[models.Product]

	confirm   *huh.Form
	confirmed bool
	pending   models.Product

	notice string
	failed bool
}

func categories() []string {
	out := make([]string, len(models.ProductTypes))
	for i, t := range models.ProductTypes {
		out[i] = models.Category(t)
	}
	return out
}

// New creates the products screen
func New(api *client.Client, width, height int) *Products {
	cfg := listview.Config[models.Product]{
		Title: "Products",
		Icon:  icons.Products,
		Columns: []table.Column{
			{Title: "ID", Width: 4},
			{Title: "Name", Width: 28},
			{Title: "Category", Width: 12},
			{Title: "Price", Width: 9},
			{Title: "Stock", Width: 6},
			{Title: "Status", Width: 12},
		},
		Fetch: func(ctx context.Context) ([]models.Product, error) {
			return api.Products(ctx)
		},
		Row: func(p models.Product) table.Row {
			r := p.Row()
			return table.Row{strconv.Itoa(r.ID), r.Name, r.Category, r.Price, strconv.Itoa(r.Stock), r.Status}
		},
		Filters: []listview.Filter[models.Product]{
			{
				Key:    "c",
				Name:   "Category",
				Values: categories(),
				Match: func(p models.Product, v string) bool {
					return models.Category(p.Type) == v
				},
			},
			{
				Key:    "s",
				Name:   "Status",
				Values: []string{models.StatusInStock, models.StatusLowStock, models.StatusOutOfStock},
				Match: func(p models.Product, v string) bool {
					return models.StockStatus(p.Stock) == v
				},
			},
		},
		Summary: func(all, visible []models.Product) string {
			low := 0
			for _, p := range all {
				if models.StockStatus(p.Stock) != models.StatusInStock {
					low++
				}
			}
			return fmt.Sprintf("%d of %d products shown, %d need restocking", len(visible), len(all), low)
		},
	}
	return &Products{api: api, list: listview.New(cfg, width, height)}
}

// SetSize updates the screen dimensions
func (p *Products) SetSize(width, height int) {
	p.list.SetSize(width, height-2)
}

// Capturing reports whether the screen owns all key input (delete dialog open).
func (p *Products) Capturing() bool {
	return p.confirm != nil
}

// Init implements tea.Model
func (p *Products) Init() tea.Cmd {
	return p.list.Init()
}

// Update implements tea.Model
func (p *Products) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.confirm != nil {
		return p.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case deletedMsg:
		if msg.err != nil {
			p.notice = "Failed to delete product: " + msg.err.Error()
			p.failed = true
			return p, nav.CheckAuth(msg.err)
		}
		p.notice = fmt.Sprintf("Deleted %s", msg.name)
		p.failed = false
		return p, p.list.Reload()

	case tea.KeyMsg:
		switch msg.String() {
		case "a":
			return p, nav.Go(route.ProductAdd)
		case "e", "enter":
			if sel, ok := p.list.Selected(); ok {
				return p, nav.EditProduct(sel.ID)
			}
			return p, nil
		case "d":
			if sel, ok := p.list.Selected(); ok {
				return p, p.askDelete(sel)
			}
			return p, nil
		}
	}

	_, cmd := p.list.Update(msg)
	return p, cmd
}

func (p *Products) askDelete(sel models.Product) tea.Cmd {
	p.pending = sel
	p.confirmed = false
	p.confirm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %s?", sel.Name)).
				Description("This cannot be undone.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&p.confirmed),
		),
	).WithTheme(styles.FormTheme()).WithShowHelp(false)
	return p.confirm.Init()
}

func (p *Products) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "n", "N":
			p.confirm = nil
			return p, nil
		case "y", "Y":
			p.confirm = nil
			p.confirmed = true
			return p, p.deleteProduct(p.pending)
		}
	}

	form, cmd := p.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.confirm = f
	}

	switch p.confirm.State {
	case huh.StateCompleted:
		p.confirm = nil
		if !p.confirmed {
			return p, nil
		}
		return p, p.deleteProduct(p.pending)
	case huh.StateAborted:
		p.confirm = nil
		return p, nil
	}
	return p, cmd
}

func (p *Products) deleteProduct(sel models.Product) tea.Cmd {
	api := p.api
	return func() tea.Msg {
		return deletedMsg{name: sel.Name, err: api.DeleteProduct(context.Background(), sel.ID)}
	}
}

// View renders the screen
func (p *Products) View() string {
	var sb strings.Builder
	sb.WriteString(p.list.View())

	if p.notice != "" {
		sb.WriteString("\n")
		if p.failed {
			sb.WriteString(styles.StatusCritical.Render(p.notice))
		} else {
			sb.WriteString(styles.StatusOK.Render(icons.CheckOK.String() + " " + p.notice))
		}
	}

	if p.confirm != nil {
		sb.WriteString("\n\n")
		sb.WriteString(styles.ActivePanel.Render(p.confirm.View()))
	}
	return sb.String()
}
