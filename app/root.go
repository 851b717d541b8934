// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/debcf/disposable-email-blocker/internal/config"
	"github.com/debcf/disposable-email-blocker/internal/logger"
)

var (
	configPath string // Path to the configuration directory holding main.toml

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "debcf",
		Short: "debcf blocks form submissions from disposable email domains",
		Long: `debcf is the disposable email blocker for Contact Form 7 style form systems.
It keeps a database copy of the bundled disposable domain list and answers
the host's email validation calls over HTTP.`,
		Args:              cobra.OnlyValidArgs,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "Directory of main.toml")
}

// loadConfig reads the configuration and initializes the logger for every command.
func loadConfig(_ *cobra.Command, _ []string) error {
	var err error

	if cfg, err = config.ReadConfig(configPath); err != nil {
		return err
	}

	return logger.Init(cfg.Log)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
