package dateformat

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

var mockNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestFormatter(now time.Time, opts ...FormatterOption) *Formatter {
	base := []FormatterOption{
		WithClock(clockwork.NewFakeClockAt(now)),
		WithLocation(time.UTC),
		WithLocale(English),
	}
	return New(append(base, opts...)...)
}

func millis(t time.Time) int64 {
	return t.UnixMilli()
}

func TestFormatAbsent(t *testing.T) {
	f := newTestFormatter(mockNow)

	inputs := []any{nil, 0, int64(0), "", 0.0, time.Time{}, (*time.Time)(nil)}
	for _, in := range inputs {
		t.Run(fmt.Sprintf("%T", in), func(t *testing.T) {
			got, err := f.Format(in)
			if err != nil {
				t.Fatalf("Format(%#v) returned error: %v", in, err)
			}
			if got != "" {
				t.Errorf("Format(%#v) = %q, want empty string", in, got)
			}
		})
	}
}

func TestFormatRelative(t *testing.T) {
	f := newTestFormatter(mockNow)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"same instant", 0, "just now"},
		{"9 seconds", 9 * time.Second, "just now"},
		{"just under 10 seconds", 10*time.Second - time.Millisecond, "just now"},
		{"10 seconds", 10 * time.Second, "a moment ago"},
		{"30 seconds", 30 * time.Second, "a moment ago"},
		{"59 seconds", 59 * time.Second, "a moment ago"},
		{"60 seconds", time.Minute, "a minute ago"},
		{"119 seconds", 119 * time.Second, "a minute ago"},
		{"120 seconds", 2 * time.Minute, "2 minutes ago"},
		{"180 seconds", 3 * time.Minute, "3 minutes ago"},
		{"just under 5 minutes", 5*time.Minute - time.Second, "4 minutes ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.FormatMillis(millis(mockNow.Add(-tt.ago)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatMillis(now-%v) = %q, want %q", tt.ago, got, tt.want)
			}
		})
	}
}

func TestFormatDayBased(t *testing.T) {
	f := newTestFormatter(mockNow)

	tests := []struct {
		name    string
		ts      time.Time
		opts    []Option
		pattern string
		want    string
	}{
		{
			name:    "5 minutes ago shows time only",
			ts:      mockNow.Add(-5 * time.Minute),
			pattern: `^\d{2}:\d{2}$`,
			want:    "11:55",
		},
		{
			name:    "today prefix",
			ts:      mockNow.Add(-5 * time.Minute),
			opts:    []Option{WithToday(true)},
			pattern: `^Today at \d{2}:\d{2}$`,
			want:    "Today at 11:55",
		},
		{
			name:    "start of today",
			ts:      time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			pattern: `^\d{2}:\d{2}$`,
			want:    "00:00",
		},
		{
			name:    "yesterday",
			ts:      mockNow.AddDate(0, 0, -1),
			pattern: `^Yesterday at \d{2}:\d{2}$`,
			want:    "Yesterday at 12:00",
		},
		{
			name:    "yesterday ignores today option",
			ts:      mockNow.AddDate(0, 0, -1),
			opts:    []Option{WithToday(true)},
			pattern: `^Yesterday at \d{2}:\d{2}$`,
			want:    "Yesterday at 12:00",
		},
		{
			name:    "two days ago same year",
			ts:      time.Date(2024, time.March, 13, 10, 30, 0, 0, time.UTC),
			pattern: `^Mar 13, \d{2}:\d{2}$`,
			want:    "Mar 13, 10:30",
		},
		{
			name:    "different year",
			ts:      time.Date(2023, time.December, 25, 15, 45, 0, 0, time.UTC),
			pattern: `^2023 Dec 25, \d{2}:\d{2}$`,
			want:    "2023 Dec 25, 15:45",
		},
		{
			name:    "single digit day has no leading zero",
			ts:      time.Date(2024, time.January, 5, 8, 7, 0, 0, time.UTC),
			pattern: `^Jan 5, \d{2}:\d{2}$`,
			want:    "Jan 5, 08:07",
		},
		{
			name:    "full includes seconds",
			ts:      mockNow.Add(-30 * time.Second),
			opts:    []Option{WithFull(true)},
			pattern: `^Mar 15, \d{2}:\d{2}:\d{2}$`,
			want:    "Mar 15, 11:59:30",
		},
		{
			name:    "hour12",
			ts:      mockNow.Add(-300 * time.Second),
			opts:    []Option{WithHour12(true)},
			pattern: `(?i)^\d{1,2}:\d{2}\s?(AM|PM)$`,
			want:    "11:55 AM",
		},
		{
			name:    "hour12 afternoon with seconds",
			ts:      time.Date(2024, time.March, 1, 15, 4, 5, 0, time.UTC),
			opts:    []Option{WithHour12(true), WithFull(true)},
			pattern: `^Mar 1, \d{2}:\d{2}:\d{2} PM$`,
			want:    "Mar 1, 03:04:05 PM",
		},
		{
			name:    "hour12 midnight",
			ts:      time.Date(2024, time.March, 14, 0, 30, 0, 0, time.UTC),
			opts:    []Option{WithHour12(true)},
			pattern: `^Yesterday at 12:30 AM$`,
			want:    "Yesterday at 12:30 AM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.FormatTime(tt.ts, tt.opts...)
			if !regexp.MustCompile(tt.pattern).MatchString(got) {
				t.Errorf("FormatTime(%v) = %q, want match for %s", tt.ts, got, tt.pattern)
			}
			if got != tt.want {
				t.Errorf("FormatTime(%v) = %q, want %q", tt.ts, got, tt.want)
			}
		})
	}
}

func TestFormatFuture(t *testing.T) {
	f := newTestFormatter(mockNow, WithLocation(time.FixedZone("UTC+2", 2*60*60)))

	got, err := f.FormatMillis(millis(mockNow.Add(5 * time.Minute)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Mar 15, 14:05" {
		t.Errorf("FormatMillis(now+5m) = %q, want %q", got, "Mar 15, 14:05")
	}

	// One millisecond ahead is already the future.
	got = f.FormatTime(mockNow.Add(time.Millisecond))
	if got != "Mar 15, 14:00" {
		t.Errorf("FormatTime(now+1ms) = %q, want %q", got, "Mar 15, 14:00")
	}
}

func TestFormatMidnightEdge(t *testing.T) {
	f := newTestFormatter(time.Date(2024, time.March, 15, 0, 1, 0, 0, time.UTC))

	got := f.FormatTime(time.Date(2024, time.March, 14, 23, 31, 0, 0, time.UTC))
	if got != "Yesterday at 23:31" {
		t.Errorf("FormatTime = %q, want %q", got, "Yesterday at 23:31")
	}
}

func TestFormatUsesFormatterLocation(t *testing.T) {
	// 23:31 UTC is already the 15th in UTC+2, so it is the same day as now.
	loc := time.FixedZone("UTC+2", 2*60*60)
	f := newTestFormatter(time.Date(2024, time.March, 15, 0, 1, 0, 0, time.UTC), WithLocation(loc))

	got := f.FormatTime(time.Date(2024, time.March, 14, 23, 31, 0, 0, time.UTC))
	if got != "01:31" {
		t.Errorf("FormatTime = %q, want %q", got, "01:31")
	}
	if f.Location() != loc {
		t.Errorf("Location() = %v, want %v", f.Location(), loc)
	}
}

func TestFormatInputFormsAgree(t *testing.T) {
	f := newTestFormatter(mockNow)

	offsets := []time.Duration{
		-5 * time.Minute,
		30 * time.Second,
		3 * time.Minute,
		10 * time.Minute,
		26 * time.Hour,
		400 * 24 * time.Hour,
	}

	for _, off := range offsets {
		t.Run(off.String(), func(t *testing.T) {
			ts := mockNow.Add(-off)
			ms := millis(ts)
			ns := fmt.Sprintf("%d000000", ms)

			fromTime := f.FormatTime(ts)
			fromMillis, err := f.FormatMillis(ms)
			if err != nil {
				t.Fatalf("FormatMillis error: %v", err)
			}
			fromNanos, err := f.FormatNanos(ns)
			if err != nil {
				t.Fatalf("FormatNanos error: %v", err)
			}
			if fromTime != fromMillis || fromMillis != fromNanos {
				t.Errorf("input forms disagree: time=%q millis=%q nanos=%q", fromTime, fromMillis, fromNanos)
			}
		})
	}
}

func TestFormatNanos(t *testing.T) {
	f := newTestFormatter(mockNow)

	ns := fmt.Sprintf("%d", millis(mockNow.Add(-30*time.Second))*1_000_000)
	got, err := f.FormatNanos(ns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a moment ago" {
		t.Errorf("FormatNanos(%s) = %q, want %q", ns, got, "a moment ago")
	}

	ns = fmt.Sprintf("%d", millis(mockNow.AddDate(0, 0, -1))*1_000_000)
	got, err = f.FormatNanos(ns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`^Yesterday at \d{2}:\d{2}$`).MatchString(got) {
		t.Errorf("FormatNanos(%s) = %q, want Yesterday at hh:mm", ns, got)
	}
}

func TestFormatInvalid(t *testing.T) {
	f := newTestFormatter(mockNow)

	if _, err := f.Format("yesterday"); err == nil {
		t.Error("expected error for non-numeric string")
	}
	if _, err := f.Format(struct{}{}); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestFormatLocale(t *testing.T) {
	f := newTestFormatter(mockNow, WithLocale(German))

	got := f.FormatTime(time.Date(2023, time.March, 2, 9, 0, 0, 0, time.UTC))
	if got != "2023 März 2, 09:00" {
		t.Errorf("FormatTime = %q, want %q", got, "2023 März 2, 09:00")
	}

	f = newTestFormatter(mockNow, WithLocale(Spanish))
	got = f.FormatTime(time.Date(2024, time.March, 1, 15, 0, 0, 0, time.UTC), WithHour12(true))
	if got != "mar 1, 03:00 p. m." {
		t.Errorf("FormatTime = %q, want %q", got, "mar 1, 03:00 p. m.")
	}
}

func TestFormatReadsClockOncePerCall(t *testing.T) {
	clock := clockwork.NewFakeClockAt(mockNow)
	f := New(WithClock(clock), WithLocation(time.UTC), WithLocale(English))
	ts := mockNow.Add(-9 * time.Second)

	if got := f.FormatTime(ts); got != "just now" {
		t.Errorf("FormatTime = %q, want %q", got, "just now")
	}
	clock.Advance(time.Second)
	if got := f.FormatTime(ts); got != "a moment ago" {
		t.Errorf("FormatTime after 1s = %q, want %q", got, "a moment ago")
	}
}

func TestNewOptions(t *testing.T) {
	o := NewOptions(WithFull(true), WithToday(true))
	if !o.Full || !o.Today || o.Hour12 {
		t.Errorf("NewOptions = %+v, want Full and Today only", o)
	}

	o = NewOptions(WithOptions(Options{Hour12: true}), WithFull(true))
	if !o.Hour12 || !o.Full || o.Today {
		t.Errorf("NewOptions = %+v, want Hour12 and Full only", o)
	}
}
