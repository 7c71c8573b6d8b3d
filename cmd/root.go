// ABOUTME: Root command for the mocha CLI
// ABOUTME: Handles global flags, configuration and the shared session wiring

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/markalston/mocha-admin/internal/client"
	"github.com/markalston/mocha-admin/internal/config"
	"github.com/markalston/mocha-admin/internal/logger"
	"github.com/markalston/mocha-admin/internal/session"
	"github.com/markalston/mocha-admin/internal/tui/icons"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
	configDir  string
	noPersist  bool

	loadedConfig *config.Config
)

// rootCmd is the base command; without a subcommand it launches the TUI
var rootCmd = &cobra.Command{
	Use:   "mocha",
	Short: "Admin console for the Mocha coffee shop",
	Long: `mocha is the admin console for the Mocha Web3 coffee shop.

Run without arguments to open the terminal dashboard. Sign in with a wallet
address; the session is kept in the config directory until you log out.

Environment Variables:
  MOCHA_API_URL          Backend API URL (default: http://localhost:8080)
  MOCHA_CONFIG_DIR       Config directory (default: ~/.config/mocha)
  MOCHA_LOG_LEVEL        debug, info, warn or error
  MOCHA_NERD_FONTS       1 to force Nerd Font icons, 0 to disable them`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := currentConfig()
		logger.Init(os.Stderr, logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
		icons.SetPreference(cfg.NerdFonts)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd.Context())
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides MOCHA_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory for config.yaml and the saved session (overrides MOCHA_CONFIG_DIR)")
	rootCmd.PersistentFlags().BoolVar(&noPersist, "no-persist", false, "Keep the session in memory only")
}

// GetConfigDir returns the config directory from flag, env, or default (in priority order)
func GetConfigDir() string {
	if configDir != "" {
		return configDir
	}
	if envDir := os.Getenv("MOCHA_CONFIG_DIR"); envDir != "" {
		return envDir
	}
	return config.DefaultDir()
}

// currentConfig loads config.yaml and MOCHA_* overrides once per process.
// A broken config file is reported and replaced by defaults.
func currentConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	cfg, err := config.Load(GetConfigDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
		cfg = &config.Config{APIURL: config.DefaultAPIURL}
	}
	loadedConfig = cfg
	return cfg
}

// GetAPIURL returns the API URL from flag, env/config, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return strings.TrimRight(apiURL, "/")
	}
	if cfg := currentConfig(); cfg.APIURL != "" {
		return cfg.APIURL
	}
	return config.DefaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newClient builds an unauthenticated client for the configured backend
func newClient() *client.Client {
	return client.NewWithTimeout(GetAPIURL(), currentConfig().Timeout())
}

// newStore returns where sessions are kept for this run
func newStore() session.Store {
	if noPersist {
		return session.NewMemoryStore()
	}
	return session.NewFileStore(GetConfigDir())
}

// newManager creates the session manager shared by every command
func newManager(api *client.Client, l *slog.Logger) *session.Manager {
	if l == nil {
		l = slog.Default()
	}
	return session.NewManager(newStore(), api, session.WithLogger(l))
}
