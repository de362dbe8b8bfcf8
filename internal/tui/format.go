package tui

import (
	"fmt"
	"time"
)

// FormatClock renders whole seconds as m:ss, the home screen countdown format.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatDuration formats a duration for display (e.g., "1h 5m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return fmt.Sprintf("%dm", int(d.Minutes()))
		}
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatPhaseCountdown is the seconds left in the current phase, rounded up.
func FormatPhaseCountdown(elapsed, duration time.Duration) string {
	left := duration - elapsed
	if left <= 0 {
		return ""
	}
	secs := int((left + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d", secs)
}
