// Package duration provides parsing for human-readable duration strings.
package duration

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Parse parses human-readable durations like "30s", "5m", "2h", "1w", "6mo".
// Months are 30 days and years 365 days.
func Parse(s string) (time.Duration, error) {
	var n int
	var unit string

	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d%s", &n, &unit); err != nil {
		return 0, fmt.Errorf("invalid duration format: %s (use e.g., 30s, 5m, 2h, 1d)", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid duration: %s (must not be negative)", s)
	}

	var d time.Duration
	switch unit {
	case "s", "sec", "secs", "second", "seconds":
		d = time.Second
	case "m", "min", "mins", "minute", "minutes":
		d = time.Minute
	case "h", "hr", "hrs", "hour", "hours":
		d = time.Hour
	case "d", "day", "days":
		d = 24 * time.Hour
	case "w", "wk", "wks", "week", "weeks":
		d = 7 * 24 * time.Hour
	case "mo", "month", "months":
		d = 30 * 24 * time.Hour
	case "y", "yr", "yrs", "year", "years":
		d = 365 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("unknown duration unit: %s", unit)
	}

	if int64(n) > math.MaxInt64/int64(d) {
		return 0, fmt.Errorf("invalid duration: %s (too large)", s)
	}

	return time.Duration(n) * d, nil
}

// Before returns the instant d before now.
func Before(now time.Time, s string) (time.Time, error) {
	d, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(-d), nil
}
