package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dataapi/internal/app/server"
	"dataapi/internal/infrastructure/storage"
	"dataapi/internal/utils/logger"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Apply pending migrations, open the configured store and serve the API
until SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if addr != "" {
			cfg.Server.RunAddress = addr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		repo, err := storage.Open(ctx, cfg.DB, log)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				log.Error("close storage", logger.Err(err))
			}
		}()

		log.Info("starting dataapi", "env", cfg.Env, "driver", cfg.DB.Driver, "address", cfg.Server.RunAddress)
		return server.New(cfg.Server, repo, log).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address, overrides RUN_ADDRESS")
}
