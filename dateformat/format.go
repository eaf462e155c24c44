// Package dateformat renders timestamps as short, human-readable strings such
// as "just now", "2 minutes ago", "Yesterday at 14:05" or "2023 Dec 25, 15:45".
package dateformat

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Elapsed-time thresholds for the relative phrases.
const (
	justNowLimit    = 10 * time.Second
	momentAgoLimit  = time.Minute
	minutesAgoLimit = 5 // minutes
)

// Formatter renders timestamps relative to its clock. It is immutable after
// New and safe for concurrent use.
type Formatter struct {
	clock  clockwork.Clock
	loc    *time.Location
	locale Locale
}

// New creates a Formatter. By default it uses the system clock, time.Local
// and the locale detected from the environment.
func New(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		clock:  clockwork.NewRealClock(),
		loc:    time.Local,
		locale: DetectLocale(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFormatter = sync.OnceValue(func() *Formatter { return New() })

// Format renders ts with a default Formatter. See Formatter.Format.
func Format(ts any, opts ...Option) (string, error) {
	return defaultFormatter().Format(ts, opts...)
}

// Location returns the time zone the formatter renders in.
func (f *Formatter) Location() *time.Location {
	return f.loc
}

// Locale returns the formatter's locale.
func (f *Formatter) Locale() Locale {
	return f.locale
}

// Format renders ts, which may be a time.Time, integer milliseconds, or a
// string of nanoseconds since the epoch. Absent inputs render as "".
func (f *Formatter) Format(ts any, opts ...Option) (string, error) {
	t, ok, err := Normalize(ts)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return f.render(t, f.clock.Now(), NewOptions(opts...)), nil
}

// FormatTime renders t. The zero time renders as "".
func (f *Formatter) FormatTime(t time.Time, opts ...Option) string {
	if t.IsZero() {
		return ""
	}
	return f.render(t, f.clock.Now(), NewOptions(opts...))
}

// FormatMillis renders milliseconds since the epoch.
func (f *Formatter) FormatMillis(ms int64, opts ...Option) (string, error) {
	return f.Format(ms, opts...)
}

// FormatNanos renders a decimal string of nanoseconds since the epoch.
func (f *Formatter) FormatNanos(ns string, opts ...Option) (string, error) {
	return f.Format(ns, opts...)
}

func (f *Formatter) render(date, now time.Time, o Options) string {
	date = date.In(f.loc)
	now = now.In(f.loc)

	if o.Full || date.After(now) {
		return f.fullDate(date, now, o)
	}

	diff := now.Sub(date)
	diffMinutes := int(diff / time.Minute)
	switch {
	case diff < justNowLimit:
		return "just now"
	case diff < momentAgoLimit:
		return "a moment ago"
	case diffMinutes < minutesAgoLimit:
		if diffMinutes == 1 {
			return "a minute ago"
		}
		return fmt.Sprintf("%d minutes ago", diffMinutes)
	}

	switch {
	case sameDay(date, now):
		if o.Today {
			return "Today at " + f.timeOfDay(date, o)
		}
		return f.timeOfDay(date, o)
	case sameDay(date, now.AddDate(0, 0, -1)):
		return "Yesterday at " + f.timeOfDay(date, o)
	}
	return f.fullDate(date, now, o)
}

// fullDate renders "Mar 15, 14:05", prefixed with the year when it differs from now's.
func (f *Formatter) fullDate(date, now time.Time, o Options) string {
	month := f.locale.month(int(date.Month()) - 1)
	tod := f.timeOfDay(date, o)
	if date.Year() == now.Year() {
		return fmt.Sprintf("%s %d, %s", month, date.Day(), tod)
	}
	return fmt.Sprintf("%d %s %d, %s", date.Year(), month, date.Day(), tod)
}

func (f *Formatter) timeOfDay(date time.Time, o Options) string {
	layout := "15:04"
	if o.Hour12 {
		layout = "03:04"
	}
	if o.Full {
		layout += ":05"
	}
	s := date.Format(layout)
	if o.Hour12 {
		s += " " + f.locale.meridiem(date.Hour())
	}
	return s
}

// sameDay reports whether a and b fall on the same calendar day. Both must
// already be in the same location.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
