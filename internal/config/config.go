// Package config loads the settings of the support CLI from defaults, a YAML
// config file, SUPPORT_* environment variables and command line flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-support/calendar"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "SUPPORT"

// Config holds all CLI settings.
type Config struct {
	Locale    string              `mapstructure:"locale"`
	Locales   []string            `mapstructure:"locales"`
	Fallbacks map[string][]string `mapstructure:"fallbacks"`
	RuleFiles []string            `mapstructure:"rule_files"`
	WeekStart time.Weekday        `mapstructure:"week_start"`
	Timezone  string              `mapstructure:"timezone"`
	// Now pins the current time, e.g. "2023-06-21 10:30:00 +0000".
	Now      string        `mapstructure:"now"`
	Template string        `mapstructure:"template"`
	Data     string        `mapstructure:"data"`
	Logging  LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Location resolves Timezone, defaulting to the local zone.
func (c *Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks the settings that Load cannot decode into an invalid
// state by construction.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Locale) == "" {
		problems = append(problems, "locale must not be empty")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q is not one of json, text", c.Logging.Format))
	}
	if _, err := c.Location(); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Now != "" {
		cal := calendar.MustNew(calendar.WithLocation(time.UTC))
		if _, err := cal.ParseTime(c.Now); err != nil {
			problems = append(problems, fmt.Sprintf("now %q is not a recognised time", c.Now))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("locale", "en")
	v.SetDefault("locales", []string{})
	v.SetDefault("fallbacks", map[string][]string{})
	v.SetDefault("rule_files", []string{})
	v.SetDefault("week_start", "monday")
	v.SetDefault("timezone", "")
	v.SetDefault("now", "")
	v.SetDefault("template", "")
	v.SetDefault("data", "")

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
}

// newFlagSet defines all command line flags using canonical snake_case keys.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.StringP("config", "c", "", "Path to a YAML config file")

	fs.StringP("locale", "l", "", "Locale used to render templates")
	fs.StringSlice("locales", nil, "Supported locales (comma-separated or repeated)")
	fs.StringSlice("rule_files", nil, "Inflection rule files in YAML or JSON (comma-separated or repeated)")
	fs.String("week_start", "", "First day of the week (e.g. monday, sunday)")
	fs.String("timezone", "", "IANA time zone for now, today and parsing")
	fs.String("now", "", "Pin the current time (e.g. 2023-06-21 10:30:00 +0000)")
	fs.StringP("template", "t", "", "Path to a template file rendered after the expressions")
	fs.StringP("data", "d", "", "Path to a YAML or JSON file exposed to templates as dot")

	fs.String("logging.level", "", "Log level (debug, info, warn, error)")
	fs.String("logging.format", "", "Log format (json, text)")

	return fs
}
