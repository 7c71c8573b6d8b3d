// ABOUTME: Stats command for the mocha CLI
// ABOUTME: Fetches the four dashboard sections concurrently and prints a summary

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

	"github.com/markalston/mocha-admin/internal/client"
	"github.com/markalston/mocha-admin/internal/models"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
	Long:  `Show revenue, mint, user and sales statistics plus top products and on-chain activity.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runStats(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// runStats fetches the dashboard and returns exit code
func runStats(ctx context.Context, w io.Writer) int {
	mgr, api, ok := restoreSession(ctx, w)
	if !ok {
		return exitAuth
	}

	data, err := api.Dashboard(ctx)
	if err != nil {
		return backendFailure(w, mgr, err)
	}

	if IsJSONOutput() {
		out, _ := json.MarshalIndent(data, "", "  ")
		fmt.Fprintln(w, string(out))
	} else {
		fmt.Fprintln(w, formatStatsHuman(data))
	}
	return exitOK
}

// formatStatsHuman formats the dashboard for human readability
func formatStatsHuman(d *client.DashboardData) string {
	var sb strings.Builder

	if o := d.Overview; o != nil {
		fmt.Fprintf(&sb, "Total Revenue:  $%-12s %s\n", models.Thousands(int64(o.TotalRevenue.Value)), o.TotalRevenue.ChangeLabel())
		fmt.Fprintf(&sb, "NFTs Minted:    %-13s %s\n", models.Thousands(int64(o.NFTsMinted.Value)), o.NFTsMinted.ChangeLabel())
		fmt.Fprintf(&sb, "Active Users:   %-13s %s\n", models.Thousands(int64(o.ActiveUsers.Value)), o.ActiveUsers.ChangeLabel())
		fmt.Fprintf(&sb, "Products Sold:  %-13s %s\n", models.Thousands(int64(o.ProductsSold.Value)), o.ProductsSold.ChangeLabel())
	}

	fmt.Fprintf(&sb, "\nSales growth:   %s", d.SalesGrowth)
	if n := len(d.Sales); n > 0 {
		fmt.Fprintf(&sb, " (%s: %s)", d.Sales[n-1].Month, models.Thousands(int64(d.Sales[n-1].Sales)))
	}
	sb.WriteString("\n")

	if len(d.TopProducts) > 0 {
		sb.WriteString("\nTop products:\n")
		for i, p := range d.TopProducts {
			fmt.Fprintf(&sb, "  %d. %-28s %5d sold  %s\n", i+1, truncate(p.Name, 28), p.Sales, p.Revenue)
		}
	}

	if b := d.Blockchain; b != nil {
		fmt.Fprintf(&sb, "\nOn-chain:       %s transactions, %d smart contracts",
			models.Thousands(int64(b.Transactions)), b.SmartContracts)
	}
	return strings.TrimRight(sb.String(), "\n")
}
