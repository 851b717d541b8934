package app

import (
	"github.com/spf13/cobra"

	"github.com/debcf/disposable-email-blocker/internal/daemon"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(uninstallCmd)
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Drop the domain table and forget the synced version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := daemon.New(&cfg)
		if err != nil {
			return err
		}
		defer d.Close()

		return d.Plugin().Uninstall(cmd.Context())
	},
}
