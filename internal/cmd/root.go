package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brewdash",
	Short: "Brewdash - coffee chain admin dashboard",
	Long: `Brewdash is the operator console for a multi-branch coffee chain.

It manages the product catalog (categories, subcategories, products),
orders, branches and the loyalty redemption program against the remote
admin API, and can serve a small local read-only dashboard.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
