package dateformat

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"
)

// ErrInvalidTimestamp is returned for inputs that cannot be resolved to an instant.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// maxMillis bounds resolved instants to ±100,000,000 days around the epoch.
const maxMillis = 8.64e15

var nanosPerMilli = big.NewInt(int64(time.Millisecond))

// Normalize resolves ts to an absolute instant.
//
// Integers and floats are milliseconds since the epoch, strings and *big.Int
// are nanoseconds since the epoch. ok is false when ts is absent: nil, zero,
// the empty string or the zero time.Time.
func Normalize(ts any) (t time.Time, ok bool, err error) {
	switch v := ts.(type) {
	case nil:
		return time.Time{}, false, nil
	case time.Time:
		return v, !v.IsZero(), nil
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false, nil
		}
		return *v, true, nil
	case int:
		return fromMillis(int64(v))
	case int8:
		return fromMillis(int64(v))
	case int16:
		return fromMillis(int64(v))
	case int32:
		return fromMillis(int64(v))
	case int64:
		return fromMillis(v)
	case uint:
		return fromUnsigned(uint64(v))
	case uint8:
		return fromMillis(int64(v))
	case uint16:
		return fromMillis(int64(v))
	case uint32:
		return fromMillis(int64(v))
	case uint64:
		return fromUnsigned(v)
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case string:
		return fromNanoString(v)
	case *big.Int:
		if v == nil {
			return time.Time{}, false, nil
		}
		return fromNanos(v)
	default:
		return time.Time{}, false, fmt.Errorf("%w: unsupported type %T", ErrInvalidTimestamp, ts)
	}
}

func fromMillis(ms int64) (time.Time, bool, error) {
	if ms == 0 {
		return time.Time{}, false, nil
	}
	if ms > maxMillis || ms < -maxMillis {
		return time.Time{}, false, fmt.Errorf("%w: %d ms is out of range", ErrInvalidTimestamp, ms)
	}
	return time.UnixMilli(ms), true, nil
}

func fromUnsigned(ms uint64) (time.Time, bool, error) {
	if ms > maxMillis {
		return time.Time{}, false, fmt.Errorf("%w: %d ms is out of range", ErrInvalidTimestamp, ms)
	}
	return fromMillis(int64(ms))
}

func fromFloat(ms float64) (time.Time, bool, error) {
	if ms == 0 || math.IsNaN(ms) {
		return time.Time{}, false, nil
	}
	if math.IsInf(ms, 0) || math.Abs(ms) > maxMillis {
		return time.Time{}, false, fmt.Errorf("%w: %v ms is out of range", ErrInvalidTimestamp, ms)
	}
	return time.UnixMilli(int64(math.Trunc(ms))), true, nil
}

func fromNanoString(s string) (time.Time, bool, error) {
	if s == "" {
		return time.Time{}, false, nil
	}
	ns, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return time.Time{}, false, fmt.Errorf("%w: %q is not an integer nanosecond count", ErrInvalidTimestamp, s)
	}
	return fromNanos(ns)
}

// fromNanos truncates toward zero to whole milliseconds. A "0" string is the
// epoch, not an absent value.
func fromNanos(ns *big.Int) (time.Time, bool, error) {
	ms := new(big.Int).Quo(ns, nanosPerMilli)
	if !ms.IsInt64() || ms.Int64() > maxMillis || ms.Int64() < -maxMillis {
		return time.Time{}, false, fmt.Errorf("%w: %s ns is out of range", ErrInvalidTimestamp, ns)
	}
	return time.UnixMilli(ms.Int64()), true, nil
}
