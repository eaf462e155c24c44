// Package input decodes command-line timestamp arguments into values the
// dateformat package accepts.
package input

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind names how a raw argument is interpreted.
type Kind string

const (
	KindAuto    Kind = "auto"    // digits are nanoseconds, anything else RFC 3339
	KindNanos   Kind = "nanos"   // decimal nanoseconds since the epoch
	KindMillis  Kind = "millis"  // decimal milliseconds since the epoch
	KindRFC3339 Kind = "rfc3339" // RFC 3339 date-time, with or without fractional seconds
)

// Kinds lists every accepted kind in help-text order.
var Kinds = []Kind{KindAuto, KindNanos, KindMillis, KindRFC3339}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case KindAuto, KindNanos, KindMillis, KindRFC3339:
		return k, nil
	case "ns":
		return KindNanos, nil
	case "ms":
		return KindMillis, nil
	default:
		return "", fmt.Errorf("invalid input kind: %s (must be auto, nanos, millis, or rfc3339)", s)
	}
}

// Decode turns raw into a string of nanoseconds, int64 milliseconds or
// time.Time, and reports the kind it settled on. With KindAuto an optionally
// signed run of digits is nanoseconds, matching how string timestamps are
// read by dateformat; anything else must be RFC 3339.
func Decode(raw string, kind Kind) (any, Kind, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		// Absent: dateformat renders the empty nanosecond string as "".
		return "", KindNanos, nil
	}
	if kind == KindAuto {
		if isInteger(s) {
			kind = KindNanos
		} else {
			kind = KindRFC3339
		}
	}

	switch kind {
	case KindNanos:
		// dateformat validates and parses the nanosecond string itself.
		return s, kind, nil
	case KindMillis:
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, kind, fmt.Errorf("invalid millisecond timestamp %q: %w", raw, err)
		}
		return ms, kind, nil
	case KindRFC3339:
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, kind, fmt.Errorf("invalid RFC 3339 timestamp %q: %w", raw, err)
		}
		return t, kind, nil
	default:
		return nil, kind, fmt.Errorf("invalid input kind: %s", kind)
	}
}

func isInteger(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
