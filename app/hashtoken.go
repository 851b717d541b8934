package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/debcf/disposable-email-blocker/internal/web/middleware/auth"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(hashTokenCmd)
}

var hashTokenCmd = &cobra.Command{
	Use:   "hash-token <token>",
	Short: "Print the argon2id hash of an editor token for Webserver.EditorTokenHash",
	Args:  cobra.ExactArgs(1),
	// no config needed
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashToken(args[0])
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)

		return err
	},
}
