package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "railroute",
	Short: "Score settlement rails by cost and settlement time",
	Long: "railroute is a demo payment-routing simulator. It quotes a fixed set of " +
		"settlement rails for a transfer amount and recommends the cheapest rail " +
		"that meets the urgency deadline. No real money moves.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(railsCmd)
}
