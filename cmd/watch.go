package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arisyntek/odate/dateformat"
	"github.com/arisyntek/odate/internal/input"
	"github.com/arisyntek/odate/internal/log"
	"github.com/arisyntek/odate/internal/tui"
)

// NewCmdWatch creates the watch command.
func NewCmdWatch(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <timestamp...>",
		Short: "Show timestamps that re-render as time passes",
		Long: `Opens a live view that re-renders each timestamp on an interval, so
"just now" turns into "a moment ago" and then "a minute ago".

Keys: f toggles --full, h toggles --hour12, t toggles --today, q quits.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, opts)
		},
	}

	addFormatFlags(cmd, opts)
	addInputFlag(cmd, opts)
	cmd.Flags().StringVar(&opts.Interval, "interval", opts.Interval, "Refresh interval (default: watch_interval from config, 1s)")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string, opts *Options) error {
	if !tui.IsTerminal() {
		return errors.New("watch needs an interactive terminal; use 'odate format' instead")
	}

	rt, err := setupRuntime(cmd, opts)
	if err != nil {
		return err
	}

	entries, err := rt.watchEntries(args)
	if err != nil {
		return err
	}

	render := func(t time.Time, o dateformat.Options) string {
		return rt.formatter.FormatTime(t, dateformat.WithOptions(o))
	}

	log.Debug("starting watch view", "entries", len(entries), "interval", rt.interval.String())
	_, err = tui.Run(tui.NewModel(entries, render, rt.opts, rt.interval))
	return err
}

// watchEntries resolves every argument up front so the view never shows a decoding error.
func (rt *formatRuntime) watchEntries(args []string) ([]tui.Entry, error) {
	entries := make([]tui.Entry, 0, len(args))
	for _, raw := range args {
		v, _, err := input.Decode(raw, rt.input)
		if err != nil {
			return nil, err
		}
		t, ok, err := dateformat.Normalize(v)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("timestamp %q is empty", raw)
		}
		entries = append(entries, tui.Entry{Label: raw, Time: t})
	}
	return entries, nil
}
