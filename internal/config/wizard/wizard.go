// Package wizard implements the interactive configuration flow behind
// mpusweep init.
package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/bucketops/mpusweep/internal/config"
	"github.com/bucketops/mpusweep/internal/lifecycle"
)

// Result holds the answers from the interactive wizard.
type Result struct {
	Days           int32
	Region         string
	ExcludeBuckets []string
}

// Run runs the interactive configuration wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runRuleGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("rule: %w", err)
	}

	if err := runScopeGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("scope: %w", err)
	}

	return result, nil
}

// runRuleGroup prompts for the abort rule day count.
func runRuleGroup(ctx context.Context, result *Result) error {
	daysInput := strconv.Itoa(lifecycle.DefaultDays)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Days After Initiation").
				Description("Incomplete multipart uploads older than this many days are aborted").
				Placeholder("7").
				Value(&daysInput).
				Validate(validateDays),
		).Title("Lifecycle Rule"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	days, _ := strconv.Atoi(strings.TrimSpace(daysInput))
	result.Days = int32(days)
	return nil
}

// runScopeGroup prompts for the default region and bucket exclusions.
func runScopeGroup(ctx context.Context, result *Result) error {
	var excludeInput string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default Region").
				Description("Region of the account-wide S3 client").
				Placeholder(config.DefaultRegion).
				Value(&result.Region),
			huh.NewInput().
				Title("Excluded Buckets (Optional)").
				Description("Comma-separated bucket names to leave untouched").
				Placeholder("tf-state, cloudtrail-logs (or leave empty)").
				Value(&excludeInput),
		).Title("Scope"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.ExcludeBuckets = parseBucketList(excludeInput)
	return nil
}

// ToConfig converts the wizard answers into a Config.
func (r *Result) ToConfig() *config.Config {
	cfg := config.Default()
	cfg.Days = r.Days
	if region := strings.TrimSpace(r.Region); region != "" {
		cfg.Region = region
	}
	cfg.ExcludeBuckets = r.ExcludeBuckets
	return cfg
}

// validateDays checks the day count input: a whole number in 1..365.
func validateDays(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number of days")
	}
	if n < 1 || n > 365 {
		return fmt.Errorf("days must be between 1 and 365")
	}
	return nil
}

// parseBucketList splits a comma-separated bucket list, dropping empties.
func parseBucketList(s string) []string {
	var buckets []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			buckets = append(buckets, name)
		}
	}
	return buckets
}
