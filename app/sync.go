package app

import (
	"github.com/spf13/cobra"

	"github.com/debcf/disposable-email-blocker/internal/daemon"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy the bundled domain list into the database now",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := daemon.New(&cfg)
		if err != nil {
			return err
		}
		defer d.Close()

		return d.Plugin().SyncNow(cmd.Context())
	},
}
