package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dsatracker-go/pkg/tracker"
	"github.com/ukaji3/dsatracker-go/pkg/tracker/schema"
)

func newValidateCmd(o *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [data.json]",
		Short: "Check a generated document against the tracker schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer o.log.Sync()

			path := tracker.DefaultOutputPath
			if len(args) == 1 {
				path = args[0]
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := schema.Validate(data); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			o.log.Debug("document valid", "path", path, "bytes", len(data))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			return nil
		},
	}
}
