package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arisyntek/odate/dateformat"
	"github.com/arisyntek/odate/internal/duration"
	"github.com/arisyntek/odate/internal/output"
)

// NewCmdAgo creates the ago command.
func NewCmdAgo(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ago <duration>",
		Short: "Format the instant a duration before now",
		Long: `Formats the instant that lies the given duration before now.

Durations are a count and a unit: 30s, 5m, 2h, 1d, 1w, 1mo (30 days), 1y (365 days).`,
		Example: `  odate ago 90s
  odate ago 1d --hour12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAgo(cmd, args[0], opts)
		},
	}

	addFormatFlags(cmd, opts)
	addOutputFlag(cmd, opts)
	return cmd
}

func runAgo(cmd *cobra.Command, d string, opts *Options) error {
	rt, err := setupRuntime(cmd, opts)
	if err != nil {
		return err
	}

	r := output.Result{Input: d, Kind: "ago"}
	when, err := duration.Before(rt.clock.Now(), d)
	if err != nil {
		return err
	}
	r.Formatted = rt.formatter.FormatTime(when, dateformat.WithOptions(rt.opts))

	return rt.write(cmd, []output.Result{r})
}
