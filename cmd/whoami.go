// ABOUTME: Whoami command for the mocha CLI
// ABOUTME: Restores the saved session and shows who is signed in

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/markalston/mocha-admin/internal/session"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in wallet",
	Long:  `Restore the saved session without contacting the backend and print the signed-in wallet.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWhoami(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami restores the session and returns exit code
func runWhoami(ctx context.Context, w io.Writer) int {
	mgr := newManager(newClient(), nil)
	mgr.Initialize(ctx)
	state := mgr.State()

	if IsJSONOutput() {
		fmt.Fprintln(w, formatSessionJSON(state))
	} else {
		fmt.Fprintln(w, formatWhoamiHuman(state, GetAPIURL()))
	}
	if !state.IsAuthenticated {
		return exitAuth
	}
	return exitOK
}

// formatWhoamiHuman formats the session for human readability
func formatWhoamiHuman(state session.State, url string) string {
	if !state.IsAuthenticated {
		msg := "Not logged in.\n"
		if state.Error != "" {
			msg += state.Error + "\n"
		}
		msg += "Run 'mocha login <wallet-address>' to sign in."
		return msg
	}

	since := "unknown"
	if state.User != nil && !state.User.CreatedAt.IsZero() {
		since = state.User.CreatedAt.Format("Jan 2, 2006")
	}
	return fmt.Sprintf(`Wallet:       %s
Member since: %s
Backend:      %s
Session:      %s`,
		state.WalletAddress(),
		since,
		url,
		sessionStatus(state))
}

func sessionStatus(state session.State) string {
	if state.Persisted {
		return "saved"
	}
	return "memory only"
}
