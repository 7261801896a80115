package commands

import (
	"github.com/spf13/cobra"

	"github.com/bucketops/mpusweep/cmd/mpusweep/handlers"
)

// Init returns the command for interactively creating a configuration file.
//
// Flags:
//
//	--output, -o: Path to output file (default "mpusweep.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Long: `Interactively create a mpusweep configuration file.

The wizard asks for:

  - The number of days before incomplete multipart uploads are aborted
  - The default region of the account-wide S3 client
  - Bucket names to exclude from the sweep`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "mpusweep.yaml", "Output file path")

	return cmd
}
