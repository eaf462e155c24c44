package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arisyntek/odate/dateformat"
	"github.com/arisyntek/odate/internal/input"
	"github.com/arisyntek/odate/internal/log"
	"github.com/arisyntek/odate/internal/output"
)

// NewCmdFormat creates the format command.
func NewCmdFormat(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [timestamp...]",
		Short: "Format timestamps (same as root odate)",
		Long: `Formats each timestamp argument, or each line of stdin when no
arguments are given.

Input kinds (--input):
  auto     digits are nanoseconds since the epoch, anything else RFC 3339
  nanos    decimal nanoseconds since the epoch
  millis   decimal milliseconds since the epoch
  rfc3339  RFC 3339 date-time, e.g. 2023-12-25T15:45:00Z`,
		Example: `  odate 1710504000000000000
  odate --input millis --hour12 1710504000000
  date -u +%Y-%m-%dT%H:%M:%SZ | odate --full`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, opts)
		},
	}

	addFormatFlags(cmd, opts)
	addInputFlag(cmd, opts)
	addOutputFlag(cmd, opts)
	return cmd
}

func runFormat(cmd *cobra.Command, args []string, opts *Options) error {
	rt, err := setupRuntime(cmd, opts)
	if err != nil {
		return err
	}

	raws, err := readTimestamps(cmd, args)
	if err != nil {
		return err
	}

	results := make([]output.Result, 0, len(raws))
	for _, raw := range raws {
		results = append(results, rt.formatOne(raw))
	}

	return rt.write(cmd, results)
}

// formatOne decodes and formats a single raw timestamp.
func (rt *formatRuntime) formatOne(raw string) output.Result {
	r := output.Result{Input: raw}

	v, kind, err := input.Decode(raw, rt.input)
	r.Kind = string(kind)
	if err == nil {
		log.Debug("decoded timestamp", "input", raw, "kind", r.Kind)
		r.Formatted, err = rt.formatter.Format(v, dateformat.WithOptions(rt.opts))
	}
	if err != nil {
		r.Err = err
		return r
	}

	log.Trace("formatted timestamp", "input", raw, "result", r.Formatted)
	return r
}

// write renders results and turns failures into a command error for text output.
func (rt *formatRuntime) write(cmd *cobra.Command, results []output.Result) error {
	if err := output.NewFormatter(rt.output).Format(results, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if rt.output != output.FormatText {
		return nil
	}

	var failed int
	for _, r := range results {
		if r.Failed() {
			failed++
			log.Warn("could not format timestamp", "input", r.Input, "error", r.Err)
		}
	}
	if failed == 0 {
		return nil
	}
	if failed == 1 && len(results) == 1 {
		return results[0].Err
	}
	return fmt.Errorf("%d of %d timestamps could not be formatted", failed, len(results))
}
