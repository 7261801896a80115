package commands

import (
	"github.com/spf13/cobra"

	"github.com/bucketops/mpusweep/cmd/mpusweep/handlers"
)

// Apply returns the command that sweeps the account and appends the abort
// rule to every bucket missing one.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect mpusweep.yaml)
//	--days, -d:   Override the configured DaysAfterInitiation
//	--dry-run:    Report what would change without writing
//	--json:       Emit the report as JSON
func Apply() *cobra.Command {
	var (
		configPath string
		days       int32
		dryRun     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Append the abort rule to every bucket missing one",
		Long: `Walk all S3 buckets in the account and append a lifecycle rule that
aborts incomplete multipart uploads after the configured number of days.

Buckets that already carry an abort-incomplete-multipart-upload rule are
skipped, so the command is safe to run repeatedly. Existing lifecycle rules
are always preserved.

If no config file is specified, mpusweep.yaml in the current directory is
used when present. Use 'mpusweep init' to create one.

Examples:
  # Sweep using the default 7-day rule
  mpusweep apply

  # Sweep with a 14-day rule
  mpusweep apply --days 14

  # See what would change first
  mpusweep apply --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), configPath, days, dryRun, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: mpusweep.yaml)")
	cmd.Flags().Int32VarP(&days, "days", "d", 0, "Days after initiation before an incomplete upload is aborted")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")

	return cmd
}
