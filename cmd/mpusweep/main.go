// Package main is the entry point for the mpusweep CLI.
//
// mpusweep walks the S3 buckets in an AWS account and ensures each one has
// a lifecycle rule that aborts incomplete multipart uploads after a
// configurable number of days. Buckets already covered are skipped; the run
// is safe to repeat.
//
// Commands: init, apply, check, version, completion.
//
// For detailed usage information, run:
//
//	mpusweep --help
package main

import (
	"fmt"
	"os"

	"github.com/bucketops/mpusweep/cmd/mpusweep/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
