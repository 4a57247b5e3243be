// cmd/server/cmd/root.go
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"dataapi/internal/config"
	"dataapi/internal/utils/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dataapi",
	Short: "dataapi - HTTP service for users and messages",
	Long: `dataapi stores users and messages in SQLite or PostgreSQL and serves
create, lookup and windowed listing endpoints over HTTP.

Configuration comes from the environment, an optional .env file and an
optional config file passed with --config.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config %s: %w", cfgFile, err)
			}
		}
	}

	var err error
	cfg, err = config.NewConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log = logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
