// ABOUTME: Helpers for commands that call protected endpoints
// ABOUTME: Restores the saved session and maps backend failures to exit codes

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/markalston/mocha-admin/internal/client"
	"github.com/markalston/mocha-admin/internal/session"
)

// Exit codes shared by all commands
const (
	exitOK      = 0
	exitAuth    = 1
	exitBackend = 2
)

// restoreSession hydrates the saved session. It prints a hint and returns
// ok=false when nobody is signed in.
func restoreSession(ctx context.Context, w io.Writer) (*session.Manager, *client.Client, bool) {
	api := newClient()
	mgr := newManager(api, nil)
	mgr.Initialize(ctx)

	state := mgr.State()
	if !state.IsAuthenticated {
		if state.Error != "" {
			fmt.Fprintf(w, "Warning: %s\n", state.Error)
		}
		fmt.Fprintln(w, "Not logged in. Run 'mocha login <wallet-address>' first.")
		return mgr, api, false
	}
	return mgr, api.WithToken(state.Token), true
}

// backendFailure reports err and returns the exit code. A rejected token
// ends the saved session so the next command asks for a fresh login.
func backendFailure(w io.Writer, mgr *session.Manager, err error) int {
	if client.IsUnauthorized(err) {
		mgr.Logout()
		fmt.Fprintln(w, "Session expired. Run 'mocha login <wallet-address>' again.")
		return exitAuth
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return exitBackend
}

// loginExitCode maps a login failure to an exit code: rejected input or
// wallet is the caller's problem, anything else is the backend's.
func loginExitCode(err error) int {
	if errors.Is(err, session.ErrEmptyWalletAddress) {
		return exitAuth
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= http.StatusBadRequest && apiErr.StatusCode < http.StatusInternalServerError {
		return exitAuth
	}
	return exitBackend
}
