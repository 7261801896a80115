package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bucketops/mpusweep/internal/sweep"
)

var (
	// Colors
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	updatedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	failedStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

const (
	checkMark = "[OK]"
	crossMark = "[!!]"
	warnMark  = "[??]"
	skipMark  = "[--]"
)

// actionMark maps an outcome action to its terminal mark and style.
func actionMark(action sweep.Action) (string, lipgloss.Style) {
	switch action {
	case sweep.ActionUpdated:
		return checkMark, updatedStyle
	case sweep.ActionWouldUpdate:
		return warnMark, warningStyle
	case sweep.ActionFailed:
		return crossMark, failedStyle
	default:
		return skipMark, dimStyle
	}
}
