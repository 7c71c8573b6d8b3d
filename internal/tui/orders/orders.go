// ABOUTME: Orders screen listing customer orders with a status filter
// ABOUTME: Thin configuration over the generic list view

package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/markalston/mocha-admin/internal/client"
	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/tui/icons"
	"github.com/markalston/mocha-admin/internal/tui/listview"
)

// Statuses lists the order statuses in display order.
var Statuses = []string{models.OrderProcessing, models.OrderShipped, models.OrderDelivered, models.OrderCancelled}

// New creates the orders screen
func New(api *client.Client, width, height int) *listview.List[models.Order] {
	return listview.New(listview.Config[models.Order]{
		Title: "Orders",
		Icon:  icons.Orders,
		Columns: []table.Column{
			{Title: "Order", Width: 9},
			{Title: "Customer", Width: 18},
			{Title: "Items", Width: 26},
			{Title: "Total", Width: 9},
			{Title: "Status", Width: 11},
			{Title: "Date", Width: 10},
		},
		Fetch: func(ctx context.Context) ([]models.Order, error) {
			return api.Orders(ctx)
		},
		Row: func(o models.Order) table.Row {
			return table.Row{o.ID, o.Customer, strings.Join(o.Products, ", "), o.Total, o.Status, o.Date}
		},
		Filters: []listview.Filter[models.Order]{{
			Key:    "s",
			Name:   "Status",
			Values: Statuses,
			Match:  func(o models.Order, v string) bool { return o.Status == v },
		}},
		Summary: func(all, visible []models.Order) string {
			pending := 0
			for _, o := range all {
				if o.Status == models.OrderProcessing {
					pending++
				}
			}
			return fmt.Sprintf("%d of %d orders shown, %d processing", len(visible), len(all), pending)
		},
	}, width, height)
}
