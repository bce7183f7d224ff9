package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dsatracker-go/pkg/tracker"
	"github.com/ukaji3/dsatracker-go/pkg/tracker/output"
)

func newInspectCmd(o *cliOptions) *cobra.Command {
	var includeCells bool

	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Show how the workbook sheets will be read",
		Long: `inspect prints a JSON report for each required sheet: header labels and
mismatches, the detected data range, and which rows are kept or skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer o.log.Sync()

			path := tracker.DefaultInputPath
			if len(args) == 1 {
				path = args[0]
			}

			opts := tracker.DefaultOptions()
			opts.IncludeCells = includeCells
			opts.Logger = o.log

			report, err := tracker.Inspect(path, opts)
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}

			jsonData, err := output.ReportToJSON(report, true)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeCells, "cells", false, "Include raw cell rows and hyperlinks")
	return cmd
}
