package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedMigrate bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the demo data set into an empty store and exit",
	Long: `Write the three demo accounts and their three transactions.

Nothing is written when the store already holds accounts or was seeded before,
so running the command twice, or alongside a starting server, is safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(seedMigrate)
		if err != nil {
			return err
		}
		defer a.close()

		seeded, err := a.service.Seed.SeedDemoData(cmd.Context())
		if err != nil {
			return err
		}
		if seeded {
			fmt.Fprintln(cmd.OutOrStdout(), "demo data written")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "store already populated, nothing written")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", false, "Apply pending migrations before seeding")
}
