package main

import (
	"fmt"

	"mediahub/internal/config"
	"mediahub/internal/logging"
	"mediahub/pkg/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `Apply every embedded migration not yet recorded in schema_migrations.

Examples:
  mediahub migrate
  mediahub migrate --config config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger := logging.New(cfg.Log.Level, cfg.Log.Format)

		pool, err := database.NewPool(cmd.Context(), cfg.Database.URL, cfg.Database.MaxConns)
		if err != nil {
			return err
		}
		defer pool.Close()

		applied, err := database.Migrate(cmd.Context(), pool, logger)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s)\n", len(applied))
		return nil
	},
}
