package cli

import (
	"fmt"

	"dreamhouse/internal/config"
	"dreamhouse/internal/database"
	"dreamhouse/internal/logger"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long:  `Creates or upgrades the designs table for the configured DB_DRIVER.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "dreamhouse")
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync()

			return database.Migrate(cmd.Context(), &cfg.Database, log)
		},
	}
}
