// ABOUTME: Serve command that runs the mock shop backend
// ABOUTME: Loads .env and environment settings and serves until interrupted

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/markalston/mocha-admin/internal/logger"
	"github.com/markalston/mocha-admin/internal/server"
	"github.com/markalston/mocha-admin/internal/server/config"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the mock shop backend",
	Long: `Run the mock shop backend the admin console talks to.

Settings come from a .env file in the working directory and the environment:
  PORT                    Listen port (default: 8080)
  CORS_ALLOWED_ORIGINS    Comma-separated browser origins (default: any)
  TOKEN_TTL               Session lifetime in seconds (default: 86400)
  BLOCKED_WALLETS         Comma-separated wallets refused at login
  RATE_LIMIT_AUTH         Login attempts per minute per client (default: 10)
  MOCK_LATENCY_MS         Delay added to mint and analytics requests
  MOCK_FAILURE_RATE       Share of mint and analytics requests that fail (0-1)
  UPLOAD_API_SECRET       Secret for signing media uploads
  LOG_LEVEL, LOG_FORMAT   Backend logging`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		return runServe(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

// runServe loads backend settings and blocks until ctx is done
func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid backend configuration: %w", err)
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	l := logger.Init(os.Stdout, logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return server.New(cfg, l).Run(ctx)
}
