package handlers

import (
	"context"
	"fmt"

	"github.com/bucketops/mpusweep/internal/config"
	"github.com/bucketops/mpusweep/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = wizard.FileExists

	// runWizard runs the interactive wizard.
	runWizard = wizard.Run

	// writeConfig writes the config to a file.
	writeConfig = wizard.WriteConfig
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("mpusweep - expire incomplete multipart uploads")
	fmt.Println("==============================================")
	fmt.Println()
	fmt.Println("This wizard creates a configuration file with sensible defaults.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Sweep Summary")
	fmt.Println("-------------")
	fmt.Printf("  Rule ID:  %s\n", cfg.EffectiveRuleID())
	fmt.Printf("  Days:     %d\n", cfg.Days)
	fmt.Printf("  Region:   %s\n", cfg.Region)
	if len(cfg.ExcludeBuckets) > 0 {
		fmt.Printf("  Excluded: %d bucket(s)\n", len(cfg.ExcludeBuckets))
	}
	fmt.Println()

	fmt.Println("Next steps:")
	fmt.Printf("  mpusweep check -c %s\n", outputPath)
	fmt.Printf("  mpusweep apply -c %s\n", outputPath)
}
