package util

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const ellipsis = "…"

// FormatDistance renders meters for humans: "850 m" below one kilometre, "1.2 km" above.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}

	return fmt.Sprintf("%.1f km", meters/1000)
}

// TruncateRunes shortens s to at most maxBytes bytes without splitting a rune,
// appending an ellipsis when anything was cut.
func TruncateRunes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}

	limit := maxBytes - len(ellipsis)
	if limit <= 0 {
		return ""
	}

	cut := 0
	for idx, r := range s {
		size := utf8.RuneLen(r)
		if idx+size > limit {
			break
		}
		cut = idx + size
	}

	return s[:cut] + ellipsis
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	}

	return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
}
