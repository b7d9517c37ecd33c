package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bank-demo",
	Short: "Accounts and transactions over PostgreSQL",
	Long: `bank-demo stores bank accounts and the deposits and withdrawals recorded
against them, and answers balance and transaction aggregates over HTTP.

Configuration is read from the environment (and a .env file when present).`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
