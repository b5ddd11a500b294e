package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Money renders an amount with its currency label, no trailing zeros:
// "Rs 1500", "Rs 1500.5".
func Money(currency string, v float64) string {
	return currency + " " + strconv.FormatFloat(v, 'f', -1, 64)
}

// Stars renders a five-star rating bar with the numeric value appended:
// "★★★★★ 4.8". The star count rounds to the nearest whole star.
func Stars(rating float64) string {
	full := int(rating + 0.5)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full) + fmt.Sprintf(" %.1f", rating)
}

// FormatCountdown renders a remaining duration as days:hours:minutes:seconds
// ("02:11:05:09"). Expired or negative durations freeze at "00:00:00:00".
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds := int(d / time.Second)

	return fmt.Sprintf("%02d:%02d:%02d:%02d", days, hours, minutes, seconds)
}

// Truncate shortens s to at most max runes, ellipsized.
func Truncate(s string, max int) string {
	if max <= 3 {
		max = 3
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
