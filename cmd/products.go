// ABOUTME: Products command for the mocha CLI
// ABOUTME: Lists the catalog with category, price and stock status

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/markalston/mocha-admin/internal/models"
	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products",
	Long:  `List every product with its category, price and stock status. Requires a signed-in session.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProducts(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
}

// runProducts fetches the catalog and returns exit code
func runProducts(ctx context.Context, w io.Writer) int {
	mgr, api, ok := restoreSession(ctx, w)
	if !ok {
		return exitAuth
	}

	products, err := api.Products(ctx)
	if err != nil {
		return backendFailure(w, mgr, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(products, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatProductsHuman(products))
	}
	return exitOK
}

// formatProductsHuman renders products as an aligned table
func formatProductsHuman(products []models.Product) string {
	if len(products) == 0 {
		return "No products."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-5s %-30s %-12s %9s %6s  %s\n", "ID", "NAME", "CATEGORY", "PRICE", "STOCK", "STATUS")
	low := 0
	for _, p := range products {
		r := p.Row()
		if r.Status != models.StatusInStock {
			low++
		}
		fmt.Fprintf(&sb, "%-5d %-30s %-12s %9s %6d  %s\n", r.ID, truncate(r.Name, 30), r.Category, r.Price, r.Stock, r.Status)
	}
	fmt.Fprintf(&sb, "\n%d products, %d need restocking", len(products), low)
	return sb.String()
}

// truncate shortens s to n runes with an ellipsis
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
