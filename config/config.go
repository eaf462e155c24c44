package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arisyntek/odate/dateformat"
	"github.com/arisyntek/odate/internal/constants"
	"github.com/arisyntek/odate/internal/input"
	"github.com/arisyntek/odate/internal/output"
)

// Config represents the application configuration. Unset fields fall back to
// the next layer: local over global over defaults.
type Config struct {
	Full          *bool  `yaml:"full,omitempty" json:"full,omitempty"`
	Hour12        *bool  `yaml:"hour12,omitempty" json:"hour12,omitempty"`
	Today         *bool  `yaml:"today,omitempty" json:"today,omitempty"`
	Timezone      string `yaml:"timezone,omitempty" json:"timezone,omitempty"`
	Locale        string `yaml:"locale,omitempty" json:"locale,omitempty"`
	Output        string `yaml:"output,omitempty" json:"output,omitempty"`
	Input         string `yaml:"input,omitempty" json:"input,omitempty"`
	WatchInterval string `yaml:"watch_interval,omitempty" json:"watch_interval,omitempty"`
}

// Keys lists the keys accepted by Set.
var Keys = []string{"full", "hour12", "today", "timezone", "locale", "output", "input", "watch_interval"}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "." + constants.AppName
	}
	return filepath.Join(configDir, constants.AppName)
}

// ConfigPath returns the path to the global config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), constants.GlobalConfigFile)
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return constants.LocalConfigFile
}

// Load loads the configuration from disk.
// It first loads the global config from the XDG config directory, then merges
// any local .odate.yaml config on top (local values take precedence).
func Load() (*Config, error) {
	return loadFrom(ConfigPath(), LocalConfigPath())
}

func loadFrom(globalPath, localPath string) (*Config, error) {
	global, err := readFile(globalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load global config file: %w", err)
	}

	local, err := readFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load local config file: %w", err)
	}

	return mergeConfig(global, local), nil
}

// LoadFile reads a single config file. A missing file yields an empty config.
func LoadFile(path string) (*Config, error) {
	return readFile(path)
}

func readFile(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	return &Config{
		Full:          mergeBool(global.Full, local.Full),
		Hour12:        mergeBool(global.Hour12, local.Hour12),
		Today:         mergeBool(global.Today, local.Today),
		Timezone:      mergeString(global.Timezone, local.Timezone),
		Locale:        mergeString(global.Locale, local.Locale),
		Output:        mergeString(global.Output, local.Output),
		Input:         mergeString(global.Input, local.Input),
		WatchInterval: mergeString(global.WatchInterval, local.WatchInterval),
	}
}

func mergeBool(global, local *bool) *bool {
	if local != nil {
		return local
	}
	return global
}

func mergeString(global, local string) string {
	if local != "" {
		return local
	}
	return global
}

// FormatOptions returns the configured formatting switches.
func (c *Config) FormatOptions() dateformat.Options {
	return dateformat.Options{
		Full:   deref(c.Full),
		Hour12: deref(c.Hour12),
		Today:  deref(c.Today),
	}
}

func deref(b *bool) bool {
	return b != nil && *b
}

// Location resolves the configured timezone. Empty and "Local" mean time.Local.
func (c *Config) Location() (*time.Location, error) {
	return ParseLocation(c.Timezone)
}

// ParseLocation resolves "Local", "UTC" or an IANA zone name.
func ParseLocation(name string) (*time.Location, error) {
	if name == "" || name == constants.DefaultTimezone {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// GetLocale resolves the configured locale, detecting it from the
// environment when unset.
func (c *Config) GetLocale() (dateformat.Locale, error) {
	if c.Locale == "" {
		return dateformat.DetectLocale(), nil
	}
	return dateformat.LookupLocale(c.Locale)
}

// GetOutput returns the configured output format, defaulting to text.
func (c *Config) GetOutput() (output.Format, error) {
	if c.Output == "" {
		return output.FormatText, nil
	}
	return output.ParseFormat(c.Output)
}

// GetInput returns the configured input decoding, defaulting to auto.
func (c *Config) GetInput() (input.Kind, error) {
	if c.Input == "" {
		return input.KindAuto, nil
	}
	return input.ParseKind(c.Input)
}

// GetWatchInterval returns the watch refresh interval.
func (c *Config) GetWatchInterval() (time.Duration, error) {
	if c.WatchInterval == "" {
		return constants.DefaultWatchInterval, nil
	}
	return ParseWatchInterval(c.WatchInterval)
}

// ParseWatchInterval parses a Go duration and enforces the minimum interval.
func ParseWatchInterval(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid watch interval %q: %w", s, err)
	}
	if d < constants.MinWatchInterval {
		return 0, fmt.Errorf("invalid watch interval %q: must be at least %s", s, constants.MinWatchInterval)
	}
	return d, nil
}

// Validate checks every set field.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.GetLocale(); err != nil {
		return err
	}
	if _, err := c.GetOutput(); err != nil {
		return err
	}
	if _, err := c.GetInput(); err != nil {
		return err
	}
	if _, err := c.GetWatchInterval(); err != nil {
		return err
	}
	return nil
}

// Set validates value and assigns it to key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "full", "hour12", "today":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %s (must be true or false)", key, value)
		}
		switch key {
		case "full":
			c.Full = &b
		case "hour12":
			c.Hour12 = &b
		default:
			c.Today = &b
		}
	case "timezone":
		if _, err := ParseLocation(value); err != nil {
			return err
		}
		c.Timezone = value
	case "locale":
		if _, err := dateformat.LookupLocale(value); err != nil {
			return err
		}
		c.Locale = value
	case "output":
		if _, err := output.ParseFormat(value); err != nil {
			return err
		}
		c.Output = value
	case "input":
		k, err := input.ParseKind(value)
		if err != nil {
			return err
		}
		c.Input = string(k)
	case "watch_interval":
		if _, err := ParseWatchInterval(value); err != nil {
			return err
		}
		c.WatchInterval = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Save saves the configuration to the global config file
func (c *Config) Save() error {
	return c.SaveFile(ConfigPath())
}

// SaveFile writes the configuration as YAML to path
func (c *Config) SaveFile(path string) error {
	yamlStr, err := c.ToYAML()
	if err != nil {
		return err
	}
	return SaveTo(path, yamlStr)
}

// DefaultConfig returns a fully populated config with all default values.
// This is useful for generating a complete config file template.
func DefaultConfig() *Config {
	off := false
	return &Config{
		Full:          &off,
		Hour12:        &off,
		Today:         &off,
		Timezone:      constants.DefaultTimezone,
		Output:        constants.DefaultOutput,
		Input:         constants.DefaultInput,
		WatchInterval: constants.DefaultWatchInterval.String(),
	}
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ConfigPathInfo contains information about config file paths
type ConfigPathInfo struct {
	GlobalPath   string
	GlobalExists bool
	LocalPath    string
	LocalExists  bool
}

// GetConfigPaths returns path info for both global and local configs
func GetConfigPaths() ConfigPathInfo {
	globalPath := ConfigPath()
	localPath := LocalConfigPath()

	// Get absolute path for local config
	absLocalPath, err := filepath.Abs(localPath)
	if err != nil {
		absLocalPath = localPath
	}

	_, globalErr := os.Stat(globalPath)
	_, localErr := os.Stat(localPath)

	return ConfigPathInfo{
		GlobalPath:   globalPath,
		GlobalExists: globalErr == nil,
		LocalPath:    absLocalPath,
		LocalExists:  localErr == nil,
	}
}

// MinimalConfig returns a minimal config template with comments
func MinimalConfig() string {
	return `# odate configuration file
# See: odate config defaults  (for all available options)

# Render times on a 12-hour clock
hour12: false

# Prefix same-day times with "Today at"
today: false

# Timezone for rendering and day boundaries: Local, UTC, or an IANA name
timezone: Local

# Month names and AM/PM markers (empty = from LC_ALL / LC_TIME / LANG)
# locale: de-DE
`
}

// SaveTo writes content to a specific path, creating directories as needed
func SaveTo(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
