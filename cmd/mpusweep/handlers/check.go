package handlers

import (
	"context"
	"fmt"

	"github.com/bucketops/mpusweep/internal/sweep"
)

// Check handles the check command.
//
// It runs the sweep in dry-run mode and reports coverage. The returned
// error makes the process exit non-zero when uncovered buckets exist, so
// check can gate a pipeline.
func Check(ctx context.Context, configPath string, jsonOutput bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	runner, err := newSweepRunner(ctx, cfg)
	if err != nil {
		return err
	}

	report, err := runner.Run(ctx, true)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if err := renderReport(report, jsonOutput); err != nil {
		return err
	}

	if failed := report.Count(sweep.ActionFailed); failed > 0 {
		return fmt.Errorf("%d bucket(s) failed", failed)
	}
	if uncovered := report.Uncovered(); uncovered > 0 {
		return fmt.Errorf("%d bucket(s) missing an abort-incomplete-multipart-upload rule", uncovered)
	}

	if !jsonOutput {
		fmt.Println("All buckets covered.")
	}
	return nil
}
