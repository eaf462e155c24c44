package cmd

// Options holds the command-line options shared by the formatting commands.
type Options struct {
	Full     bool
	Hour12   bool
	Today    bool
	Input    string
	Timezone string
	Locale   string
	Now      string // RFC 3339 reference instant; empty = system clock
	Output   string

	Interval  string // watch refresh interval
	Verbosity int
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options and applies any provided options.
// Defaults for string settings come from config, so they start empty here.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithNow freezes the reference instant (RFC 3339).
func WithNow(now string) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// WithTimezone sets the timezone ("Local", "UTC" or an IANA name).
func WithTimezone(tz string) Option {
	return func(o *Options) {
		o.Timezone = tz
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}
