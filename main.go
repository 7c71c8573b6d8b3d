// ABOUTME: Entry point for the mocha CLI
// ABOUTME: Admin console and mock backend for the Mocha coffee shop

package main

import (
	"fmt"
	"os"

	"github.com/markalston/mocha-admin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
