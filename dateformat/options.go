package dateformat

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Options holds the per-call formatting switches.
type Options struct {
	Full   bool `json:"full" yaml:"full"`     // Include seconds and always render the full date
	Hour12 bool `json:"hour12" yaml:"hour12"` // 12-hour clock with AM/PM
	Today  bool `json:"today" yaml:"today"`   // Prefix same-day times with "Today at "
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates Options with all switches off and applies any provided options.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFull renders seconds and forces the full-date form.
// It also covers the older single-boolean call style.
func WithFull(full bool) Option {
	return func(o *Options) {
		o.Full = full
	}
}

// WithHour12 renders the time of day on a 12-hour clock.
func WithHour12(hour12 bool) Option {
	return func(o *Options) {
		o.Hour12 = hour12
	}
}

// WithToday adds the "Today at " label to same-day results.
func WithToday(today bool) Option {
	return func(o *Options) {
		o.Today = today
	}
}

// WithOptions replaces all switches at once.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// FormatterOption is a functional option for configuring a Formatter.
type FormatterOption func(*Formatter)

// WithClock sets the clock "now" is read from.
func WithClock(c clockwork.Clock) FormatterOption {
	return func(f *Formatter) {
		if c != nil {
			f.clock = c
		}
	}
}

// WithLocation sets the time zone used for rendering and calendar-day comparisons.
func WithLocation(loc *time.Location) FormatterOption {
	return func(f *Formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// WithLocale sets the month names and meridiem markers.
func WithLocale(l Locale) FormatterOption {
	return func(f *Formatter) {
		f.locale = l
	}
}
