package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered. opts set
// flag defaults; explicit flags still override them.
func New(opts ...Option) *cobra.Command {
	rootOpts := NewOptions(opts...)

	rootCmd := &cobra.Command{
		Use:   "odate",
		Short: "Human-readable timestamps",
		Long: `Turns timestamps into short, human-readable strings such as
"just now", "2 minutes ago", "Yesterday at 14:05" or "2023 Dec 25, 15:45".

Timestamps are read from the arguments, or one per line from stdin.
Digits are nanoseconds since the epoch; anything else is parsed as RFC 3339.`,
		Args: timestampArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, rootOpts)
		},
		SilenceUsage:               true,
		SuggestionsMinimumDistance: 2,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Add format flags to root command so `odate` and `odate format` work identically
	addFormatFlags(rootCmd, rootOpts)
	addInputFlag(rootCmd, rootOpts)
	addOutputFlag(rootCmd, rootOpts)

	// Register subcommands
	rootCmd.AddCommand(NewCmdFormat(NewOptions(opts...)))
	rootCmd.AddCommand(NewCmdAgo(NewOptions(opts...)))
	rootCmd.AddCommand(NewCmdWatch(NewOptions(opts...)))
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}

// timestampArgs accepts any arguments except a first one that reads like a
// mistyped subcommand, which gets cobra's usual suggestion instead of a
// timestamp parse error.
func timestampArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return nil
	}
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		return fmt.Errorf("unknown command %q for %q\n\nDid you mean this?\n\t%s",
			args[0], cmd.CommandPath(), strings.Join(suggestions, "\n\t"))
	}
	return nil
}
