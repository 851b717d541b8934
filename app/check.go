package app

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/debcf/disposable-email-blocker/internal/daemon"
)

func init() { //nolint: gochecknoinits
	checkCmd.Flags().StringVar(&checkField, "field", "your-email", "Name of the form field")
	checkCmd.Flags().BoolVar(&checkRequired, "required", false, "Treat the field as required")

	rootCmd.AddCommand(checkCmd)
}

var (
	checkField    string
	checkRequired bool

	checkCmd = &cobra.Command{
		Use:   "check <formID> <email>",
		Short: "Print the validation result of an email submitted to a form",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}
			defer d.Close()

			result, err := d.Plugin().Validate(cmd.Context(), args[0], checkField, args[1], checkRequired)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(result)
		},
	}
)
