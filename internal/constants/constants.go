// Package constants provides a centralized location for the default values
// used throughout the odate CLI.
package constants

import "time"

// Watch view constants
const (
	// DefaultWatchInterval is how often the watch view re-renders its entries.
	DefaultWatchInterval = time.Second

	// MinWatchInterval keeps the watch view from spinning the terminal.
	MinWatchInterval = 100 * time.Millisecond
)

// Config file constants
const (
	// AppName names the config directory under the user config dir.
	AppName = "odate"

	// GlobalConfigFile is the config file name inside the config directory.
	GlobalConfigFile = "config.yaml"

	// LocalConfigFile is the per-directory config file name.
	LocalConfigFile = ".odate.yaml"
)

// CLI defaults
const (
	// DefaultOutput is the output format when neither flag nor config sets one.
	DefaultOutput = "text"

	// DefaultInput is the input decoding when neither flag nor config sets one.
	DefaultInput = "auto"

	// DefaultTimezone resolves to time.Local.
	DefaultTimezone = "Local"
)
