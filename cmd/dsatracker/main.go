// Package main provides the CLI entry point for dsatracker.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dsatracker-go/internal/logger"
	"github.com/ukaji3/dsatracker-go/pkg/tracker"
	"github.com/ukaji3/dsatracker-go/pkg/tracker/output"
)

// cliOptions holds flag values shared by all commands.
type cliOptions struct {
	inputPath     string
	outputPath    string
	strictHeaders bool
	verbose       bool
	logFormat     string

	// log is built from --log-format and --verbose unless already set.
	log *logger.Logger
}

func main() {
	if err := newRootCmd(&cliOptions{}).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI around o. Commands sync the logger themselves;
// cobra skips PersistentPostRun after a RunE error.
func newRootCmd(o *cliOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dsatracker",
		Short: "Convert the DSA problems workbook to tracker JSON",
		Long: `dsatracker reads the DSA practice workbook (problem list, study plan,
topic summary) and writes the denormalized JSON document used by the
tracker website.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.log != nil {
				return nil
			}
			l, err := logger.New(o.logFormat, o.verbose)
			if err != nil {
				return err
			}
			o.log = l
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, o)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Log skipped rows and other debug details")
	rootCmd.PersistentFlags().StringVar(&o.logFormat, "log-format", "console", "Log format: console or json")
	rootCmd.Flags().StringVarP(&o.inputPath, "input", "i", tracker.DefaultInputPath, "Input workbook path")
	rootCmd.Flags().StringVarP(&o.outputPath, "output", "o", tracker.DefaultOutputPath, "Output JSON path")
	rootCmd.Flags().BoolVar(&o.strictHeaders, "strict-headers", false, "Fail when header labels differ from the expected columns")

	rootCmd.AddCommand(newInspectCmd(o))
	rootCmd.AddCommand(newValidateCmd(o))

	return rootCmd
}

func runConvert(cmd *cobra.Command, o *cliOptions) error {
	defer o.log.Sync()

	opts := tracker.DefaultOptions()
	opts.StrictHeaders = o.strictHeaders
	opts.Logger = o.log

	doc, wbReport, err := tracker.Convert(o.inputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := output.WriteDocument(o.outputPath, doc); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	skipped := 0
	for _, s := range wbReport.Required {
		skipped += len(s.Skipped)
	}
	o.log.Debug("output written", "path", o.outputPath, "skipped_rows", skipped)

	return output.WriteSummary(cmd.OutOrStdout(), filepath.Base(o.outputPath), doc)
}
