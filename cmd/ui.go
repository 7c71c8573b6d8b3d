// ABOUTME: UI command launching the terminal dashboard
// ABOUTME: Restores the session before the first frame and logs to debug.log

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/markalston/mocha-admin/internal/logger"
	"github.com/markalston/mocha-admin/internal/tui"
	"github.com/markalston/mocha-admin/internal/tui/debuglog"
	"github.com/markalston/mocha-admin/internal/tui/recentwallets"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the terminal dashboard",
	Long:  `Open the interactive dashboard. This is the default when mocha runs without a subcommand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

// runUI wires the session manager into the TUI and blocks until it exits
func runUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	cfg := currentConfig()
	dir := GetConfigDir()
	if noPersist {
		dir = ""
	}

	// The TUI owns the terminal, so logs go to a file.
	l, err := debuglog.Init(dir, logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
	}
	defer debuglog.Close()

	api := newClient()
	mgr := newManager(api, l)
	mgr.Initialize(ctx)

	return tui.Run(ctx, mgr, api, recentwallets.New(dir), l)
}
