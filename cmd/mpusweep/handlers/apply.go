package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/bucketops/mpusweep/internal/sweep"
)

// Apply handles the apply command.
//
// It sweeps every bucket in the account and appends the abort rule where it
// is missing. With dryRun set, nothing is written. A days override of zero
// keeps the configured value.
func Apply(ctx context.Context, configPath string, days int32, dryRun, jsonOutput bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if days > 0 {
		cfg.Days = days
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	runner, err := newSweepRunner(ctx, cfg)
	if err != nil {
		return err
	}

	log.Printf("Sweeping buckets for lifecycle rule %q", cfg.EffectiveRuleID())

	report, err := runner.Run(ctx, dryRun)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	if err := renderReport(report, jsonOutput); err != nil {
		return err
	}

	if failed := report.Count(sweep.ActionFailed); failed > 0 {
		return fmt.Errorf("%d bucket(s) failed", failed)
	}

	if !jsonOutput {
		fmt.Println("Sweep completed successfully.")
	}
	return nil
}
