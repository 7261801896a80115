// Package handlers implements the command execution logic behind the
// cobra definitions in the commands package.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/bucketops/mpusweep/internal/config"
	accountplatform "github.com/bucketops/mpusweep/internal/platform/account"
	s3platform "github.com/bucketops/mpusweep/internal/platform/s3"
	"github.com/bucketops/mpusweep/internal/sweep"
	"github.com/bucketops/mpusweep/internal/ui"
)

// sweepRunner matches sweep.Sweeper for testing.
type sweepRunner interface {
	Run(ctx context.Context, dryRun bool) (*sweep.Report, error)
}

// Factory function variables - can be replaced in tests.
var (
	// loadConfig resolves and loads the configuration.
	loadConfig = config.Load

	// newSweepRunner wires AWS clients into a Sweeper.
	newSweepRunner = defaultSweepRunner

	// isInteractiveTTY reports whether stdout is an interactive terminal.
	isInteractiveTTY = func() bool { return ui.IsInteractive(os.Stdout) }
)

// defaultSweepRunner builds the default-region S3 client, the Account API
// client, and the regional client factory for opt-in regions.
func defaultSweepRunner(ctx context.Context, cfg *config.Config) (sweepRunner, error) {
	store, err := s3platform.NewClient(ctx, s3platform.Options{
		Region:    cfg.Region,
		Endpoint:  cfg.Endpoint,
		PathStyle: cfg.PathStyle,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	// Custom endpoints serve every bucket themselves; the AWS Account API
	// and regional endpoints do not apply there.
	if cfg.Endpoint != "" {
		return sweep.New(store, noOptInRegions{}, nil, cfg), nil
	}

	accounts, err := accountplatform.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Account API client: %w", err)
	}

	factory := func(ctx context.Context, region string) (sweep.ObjectStore, error) {
		return s3platform.NewClient(ctx, s3platform.Options{
			Region:    region,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
		})
	}

	return sweep.New(store, accounts, factory, cfg), nil
}

// noOptInRegions treats every region as enabled by default.
type noOptInRegions struct{}

func (noOptInRegions) IsOptInRegion(context.Context, string) (bool, error) {
	return false, nil
}

// renderReport writes the report to stdout in the requested format.
func renderReport(report *sweep.Report, jsonOutput bool) error {
	if jsonOutput {
		return ui.RenderJSON(os.Stdout, report)
	}
	ui.Render(os.Stdout, report, isInteractiveTTY())
	return nil
}
