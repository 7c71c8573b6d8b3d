// ABOUTME: Login and logout commands for the mocha CLI
// ABOUTME: Signs in with a wallet address without opening the dashboard

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markalston/mocha-admin/internal/session"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <wallet-address>",
	Short: "Sign in with a wallet address",
	Long:  `Exchange a wallet address for a session token and save it for later commands.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the saved session",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogout(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

// runLogin signs in and returns exit code
func runLogin(ctx context.Context, w io.Writer, wallet string) int {
	mgr := newManager(newClient(), nil)
	mgr.Initialize(ctx)

	if err := mgr.Login(ctx, wallet); err != nil {
		msg := err.Error()
		var loginErr *session.LoginError
		if errors.As(err, &loginErr) {
			msg = loginErr.Message
		}
		fmt.Fprintf(w, "Error: %s\n", msg)
		return loginExitCode(err)
	}

	state := mgr.State()
	if IsJSONOutput() {
		fmt.Fprintln(w, formatSessionJSON(state))
	} else {
		fmt.Fprintf(w, "Logged in as %s\n", state.WalletAddress())
		if !state.Persisted {
			fmt.Fprintln(w, "Warning: the session could not be saved; later commands will not see it.")
		}
	}
	return exitOK
}

// runLogout clears the saved session and returns exit code
func runLogout(ctx context.Context, w io.Writer) int {
	mgr := newManager(newClient(), nil)
	mgr.Initialize(ctx)

	wallet := mgr.State().WalletAddress()
	mgr.Logout()

	if wallet == "" {
		fmt.Fprintln(w, "Not logged in.")
	} else {
		fmt.Fprintf(w, "Logged out %s\n", wallet)
	}
	return exitOK
}

// formatSessionJSON formats the signed-in session without the token
func formatSessionJSON(state session.State) string {
	output := map[string]interface{}{
		"authenticated":  state.IsAuthenticated,
		"wallet_address": state.WalletAddress(),
		"persisted":      state.Persisted,
	}
	if state.User != nil {
		output["created_at"] = state.User.CreatedAt.Format(time.RFC3339)
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
