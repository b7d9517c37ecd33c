package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carson-networks/bank-demo/api"
)

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API until SIGINT or SIGTERM.

When SEED_ON_START is true the demo data set is written into an empty store
before the listener opens.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "Apply pending migrations before serving")
}

func runServe(cmd *cobra.Command) error {
	a, err := newApp(serveMigrate)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.config.SeedOnStart {
		if _, err := a.service.Seed.SeedDemoData(ctx); err != nil {
			return err
		}
	}

	rest := api.Rest{
		Logger:  a.logger,
		Port:    a.config.HTTPPort,
		Service: a.service,
		DB:      a.storage.DB,
	}
	return rest.Serve(ctx)
}
