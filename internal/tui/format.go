package tui

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/models"
)

// FormatStatus returns a human-readable countdown status.
func FormatStatus(state models.RunState, timeLeft int) string {
	switch state {
	case models.StateRunning:
		if timeLeft == 0 {
			return "Done"
		}
		return "Running"
	case models.StatePaused:
		return "Paused"
	default:
		if timeLeft > 0 {
			return "Ready"
		}
		return "Set a duration"
	}
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
