package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arisyntek/odate/config"
	"github.com/arisyntek/odate/dateformat"
	"github.com/arisyntek/odate/internal/input"
	"github.com/arisyntek/odate/internal/log"
	"github.com/arisyntek/odate/internal/output"
)

// formatRuntime bundles everything resolved from flags and config for one run.
type formatRuntime struct {
	clock     clockwork.Clock
	formatter *dateformat.Formatter
	opts      dateformat.Options
	input     input.Kind
	output    output.Format
	interval  time.Duration
}

// addFormatFlags adds the flags shared by every formatting command.
func addFormatFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().BoolVar(&opts.Full, "full", opts.Full, "Always render the full date, with seconds")
	cmd.Flags().BoolVar(&opts.Hour12, "hour12", opts.Hour12, "Use a 12-hour clock with AM/PM")
	cmd.Flags().BoolVar(&opts.Today, "today", opts.Today, `Prefix same-day times with "Today at"`)
	cmd.Flags().StringVar(&opts.Timezone, "tz", opts.Timezone, "Timezone for rendering and day boundaries (Local, UTC, or IANA name)")
	cmd.Flags().StringVar(&opts.Locale, "locale", opts.Locale, "Locale for month names and AM/PM (default: from LC_ALL / LC_TIME / LANG)")
	cmd.Flags().StringVar(&opts.Now, "now", opts.Now, "Reference instant in RFC 3339 (default: the system clock)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
}

// addInputFlag adds the flag controlling how raw timestamps are decoded.
func addInputFlag(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Input, "input", "i", opts.Input, "How to read timestamps (auto, nanos, millis, rfc3339)")
}

// addOutputFlag adds the output format flag.
func addOutputFlag(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Output, "output", "o", opts.Output, "Output format (text, table, json)")
}

// setupRuntime loads config, applies flag overrides and builds the formatter.
func setupRuntime(cmd *cobra.Command, opts *Options) (*formatRuntime, error) {
	log.Initialize(opts.Verbosity, cmd.ErrOrStderr())

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg, opts)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	locale, err := cfg.GetLocale()
	if err != nil {
		return nil, err
	}
	inKind, err := cfg.GetInput()
	if err != nil {
		return nil, err
	}
	outFormat, err := cfg.GetOutput()
	if err != nil {
		return nil, err
	}
	interval, err := cfg.GetWatchInterval()
	if err != nil {
		return nil, err
	}

	clock, err := newClock(opts.Now)
	if err != nil {
		return nil, err
	}

	rt := &formatRuntime{
		clock: clock,
		formatter: dateformat.New(
			dateformat.WithClock(clock),
			dateformat.WithLocation(loc),
			dateformat.WithLocale(locale),
		),
		opts:     cfg.FormatOptions(),
		input:    inKind,
		output:   outFormat,
		interval: interval,
	}

	log.Info("resolved settings",
		"timezone", loc.String(),
		"locale", locale.String(),
		"input", string(inKind),
		"output", string(outFormat),
		"full", rt.opts.Full,
		"hour12", rt.opts.Hour12,
		"today", rt.opts.Today,
	)
	if opts.Now != "" {
		log.Info("using fixed reference instant", "now", clock.Now().Format(time.RFC3339Nano))
	}

	return rt, nil
}

// applyFlags overrides config with flags. Booleans only count when passed
// explicitly; non-empty strings always win.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *Options) {
	flags := cmd.Flags()
	if flags.Changed("full") {
		cfg.Full = &opts.Full
	}
	if flags.Changed("hour12") {
		cfg.Hour12 = &opts.Hour12
	}
	if flags.Changed("today") {
		cfg.Today = &opts.Today
	}
	if opts.Timezone != "" {
		cfg.Timezone = opts.Timezone
	}
	if opts.Locale != "" {
		cfg.Locale = opts.Locale
	}
	if opts.Input != "" {
		cfg.Input = opts.Input
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if opts.Interval != "" {
		cfg.WatchInterval = opts.Interval
	}
}

func newClock(now string) (clockwork.Clock, error) {
	if now == "" {
		return clockwork.NewRealClock(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, now)
	if err != nil {
		return nil, fmt.Errorf("invalid --now %q: %w", now, err)
	}
	return clockwork.NewFakeClockAt(t), nil
}

// readTimestamps returns args, or the non-blank lines of stdin when there are none.
func readTimestamps(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errors.New("no timestamps given: pass them as arguments or pipe them on stdin")
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	log.Debug("read timestamps from stdin", "count", len(lines))
	return lines, nil
}
