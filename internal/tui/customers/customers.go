// ABOUTME: Customers screen listing buyers with spend, rating and wallet
// ABOUTME: Thin configuration over the generic list view

package customers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/markalston/mocha-admin/internal/client"
	"github.com/markalston/mocha-admin/internal/models"
	"github.com/markalston/mocha-admin/internal/tui/icons"
	"github.com/markalston/mocha-admin/internal/tui/listview"
)

func shortWallet(w string) string {
	if len(w) <= 12 {
		return w
	}
	return w[:6] + "..." + w[len(w)-4:]
}

func stars(rating int) string {
	rating = max(0, min(5, rating))
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// New creates the customers screen
func New(api *client.Client, width, height int) *listview.List[models.Customer] {
	return listview.New(listview.Config[models.Customer]{
		Title: "Customers",
		Icon:  icons.Customers,
		Columns: []table.Column{
			{Title: "Name", Width: 18},
			{Title: "Email", Width: 24},
			{Title: "Wallet", Width: 13},
			{Title: "Orders", Width: 6},
			{Title: "Spent", Width: 9},
			{Title: "Rating", Width: 6},
			{Title: "Location", Width: 14},
		},
		Fetch: func(ctx context.Context) ([]models.Customer, error) {
			return api.Customers(ctx)
		},
		Row: func(c models.Customer) table.Row {
			return table.Row{c.Name, c.Email, shortWallet(c.Wallet), strconv.Itoa(c.Orders), c.TotalSpent, stars(c.Rating), c.Location}
		},
		Filters: []listview.Filter[models.Customer]{{
			Key:    "v",
			Name:   "Rating",
			Values: []string{"5", "4", "3 or less"},
			Match: func(c models.Customer, v string) bool {
				if v == "3 or less" {
					return c.Rating <= 3
				}
				return strconv.Itoa(c.Rating) == v
			},
		}},
		Summary: func(all, visible []models.Customer) string {
			orders := 0
			for _, c := range all {
				orders += c.Orders
			}
			return fmt.Sprintf("%d of %d customers shown, %d orders placed", len(visible), len(all), orders)
		},
	}, width, height)
}
