package cmd

import (
	"github.com/spf13/cobra"

	"dataapi/internal/infrastructure/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := storage.Migrate(cfg.DB, log); err != nil {
			return err
		}
		log.Info("migrations applied", "driver", cfg.DB.Driver)
		return nil
	},
}
