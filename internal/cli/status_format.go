// Package cli provides status formatting helpers.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/themesync/themesync/internal/reconcile"
)

const (
	colorRed     = "1"
	colorGreen   = "2"
	colorYellow  = "3"
	colorMagenta = "5"
	colorCyan    = "6"
)

func colorEnabled() bool {
	if settings.GetBool("no-color") {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return !IsJSONOutput() && !IsJSONLOutput()
}

func colorize(text, color string) string {
	if !colorEnabled() {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}

// formatOutcome renders one apply outcome. Unmapped outcomes render as "".
func formatOutcome(outcome reconcile.Outcome) string {
	switch outcome.Status {
	case reconcile.StatusApplied:
		return fmt.Sprintf("%s Set %s theme to: %s", colorize("✓", colorGreen), outcome.App, outcome.Value)
	case reconcile.StatusFailed:
		return fmt.Sprintf("%s Failed to set %s theme: %s", colorize("✗", colorRed), outcome.App, outcome.Error)
	case reconcile.StatusSkipped:
		return fmt.Sprintf("%s %s not available", colorize("-", colorYellow), outcome.App)
	default:
		return ""
	}
}

func formatAvailability(available bool) string {
	if available {
		return colorize("Available", colorGreen)
	}
	return colorize("Not available", colorYellow)
}

func formatAppTheme(status reconcile.AppStatus) string {
	switch {
	case !status.Available:
		return colorize("Not available", colorYellow)
	case status.Error != "":
		return colorize("Error - "+status.Error, colorRed)
	default:
		return status.Theme
	}
}

func formatCurrentMarker(current bool) string {
	if current {
		return colorize("*", colorCyan)
	}
	return " "
}

func formatEventStatus(status string) string {
	switch reconcile.OutcomeStatus(status) {
	case reconcile.StatusApplied:
		return colorize(status, colorGreen)
	case reconcile.StatusFailed:
		return colorize(status, colorRed)
	case reconcile.StatusSkipped:
		return colorize(status, colorYellow)
	default:
		return colorize(status, colorMagenta)
	}
}
