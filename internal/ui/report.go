// Package ui renders sweep reports for the terminal.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/bucketops/mpusweep/internal/sweep"
)

// IsInteractive reports whether f is an interactive terminal.
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, report *sweep.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// Render writes a human-readable report. With styled set, outcome lines are
// colorized for interactive terminals.
func Render(w io.Writer, report *sweep.Report, styled bool) {
	header := fmt.Sprintf("Lifecycle rule %q (%d days after initiation)", report.RuleID, report.Days)
	if report.DryRun {
		header += " - dry run"
	}
	if styled {
		header = titleStyle.Render(header)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w)

	for _, outcome := range report.Buckets {
		fmt.Fprintln(w, renderOutcome(outcome, styled))
	}

	if len(report.Buckets) > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, renderSummary(report, styled))
}

func renderOutcome(outcome sweep.Outcome, styled bool) string {
	mark, style := actionMark(outcome.Action)

	location := outcome.Bucket
	if outcome.Region != "" {
		location = fmt.Sprintf("%s (%s)", outcome.Bucket, outcome.Region)
	}

	line := fmt.Sprintf("%s %s: %s", mark, location, outcome.Detail)
	if styled {
		return style.Render(line)
	}
	return line
}

func renderSummary(report *sweep.Report, styled bool) string {
	updated := report.Count(sweep.ActionUpdated)
	if report.DryRun {
		updated = report.Uncovered()
	}

	summary := fmt.Sprintf("%d updated, %d skipped, %d excluded, %d failed",
		updated,
		report.Count(sweep.ActionSkipped),
		report.Count(sweep.ActionExcluded),
		report.Count(sweep.ActionFailed),
	)
	if report.DryRun {
		summary = fmt.Sprintf("%d would be updated, %d skipped, %d excluded, %d failed",
			updated,
			report.Count(sweep.ActionSkipped),
			report.Count(sweep.ActionExcluded),
			report.Count(sweep.ActionFailed),
		)
	}

	if styled && report.Count(sweep.ActionFailed) > 0 {
		return failedStyle.Render(summary)
	}
	if styled {
		return dimStyle.Render(summary)
	}
	return summary
}
