// ABOUTME: Sign-upload command for the mocha CLI
// ABOUTME: Asks the backend to sign media upload parameters given as key=value pairs

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

	"github.com/spf13/cobra"
)

var signUploadCmd = &cobra.Command{
	Use:   "sign-upload key=value...",
	Short: "Sign media upload parameters",
	Long: `Sign media upload parameters for a product image, e.g.

  mocha sign-upload timestamp=1700000000 folder=products`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSignUpload(ctx, os.Stdout, args)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(signUploadCmd)
}

// parseParams turns key=value arguments into a map
func parseParams(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", arg)
		}
		params[strings.TrimSpace(k)] = v
	}
	return params, nil
}

// runSignUpload signs the parameters and returns exit code
func runSignUpload(ctx context.Context, w io.Writer, args []string) int {
	params, err := parseParams(args)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitAuth
	}

	mgr, api, ok := restoreSession(ctx, w)
	if !ok {
		return exitAuth
	}

	signature, err := api.SignUpload(ctx, params)
	if err != nil {
		return backendFailure(w, mgr, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]string{"signature": signature}, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, signature)
	}
	return exitOK
}
