package commands

import (
	"github.com/spf13/cobra"

	"github.com/bucketops/mpusweep/cmd/mpusweep/handlers"
)

// Check returns the read-only coverage report command.
//
// It performs the same sweep as apply without writing anything, and exits
// non-zero when uncovered buckets exist. Useful in CI or as a scheduled
// compliance check.
func Check() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report buckets missing the abort rule without changing them",
		Long: `Walk all S3 buckets and report which ones are missing a lifecycle rule
that aborts incomplete multipart uploads. Nothing is written.

The command exits non-zero when uncovered buckets exist, so it can gate a
pipeline or run as a scheduled compliance check.

Examples:
  # Human-readable coverage report
  mpusweep check

  # Machine-readable report for dashboards
  mpusweep check --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Check(cmd.Context(), configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: mpusweep.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")

	return cmd
}
