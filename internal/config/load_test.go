package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
locale: es
locales: [en, es]
fallbacks:
  ca: [es]
week_start: sunday
timezone: UTC
logging:
  level: debug
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "support.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, args, err := Load("support", []string{`{{ pluralize "person" }}`})
	require.NoError(t, err)

	assert.Equal(t, []string{`{{ pluralize "person" }}`}, args)
	assert.Equal(t, "en", cfg.Locale)
	assert.Empty(t, cfg.Locales)
	assert.Equal(t, time.Monday, cfg.WeekStart)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	cfg, _, err := Load("support", []string{"--config", path})
	require.NoError(t, err)

	assert.Equal(t, "es", cfg.Locale)
	assert.Equal(t, []string{"en", "es"}, cfg.Locales)
	assert.Equal(t, map[string][]string{"ca": {"es"}}, cfg.Fallbacks)
	assert.Equal(t, time.Sunday, cfg.WeekStart)
	assert.Equal(t, "debug", cfg.Logging.Level)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	t.Setenv("SUPPORT_LOCALE", "fr")
	t.Setenv("SUPPORT_LOGGING_FORMAT", "json")
	t.Setenv("SUPPORT_RULE_FILES", "a.yaml, b.json")

	cfg, _, err := Load("support", []string{"-c", path})
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Locale, "env overrides file")
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"a.yaml", "b.json"}, cfg.RuleFiles)

	cfg, args, err := Load("support", []string{
		"-c", path,
		"--locale", "de",
		"--week_start", "Fri",
		"--locales", "de,en",
		"expr",
	})
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Locale, "flags override env")
	assert.Equal(t, time.Friday, cfg.WeekStart)
	assert.Equal(t, []string{"de", "en"}, cfg.Locales)
	assert.Equal(t, []string{"expr"}, args)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		want    string
	}{
		{name: "missing file", args: []string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}, want: "failed to read config file"},
		{name: "unknown key", content: "colour: blue\n", want: "failed to unmarshal config"},
		{name: "bad weekday", content: "week_start: someday\n", want: "failed to unmarshal config"},
		{name: "bad level", content: "logging:\n  level: loud\n", want: "logging.level"},
		{name: "bad timezone", content: "timezone: Mars/Olympus\n", want: "invalid timezone"},
		{name: "bad now", content: "now: yesterday\n", want: "now \"yesterday\""},
		{name: "unknown flag", args: []string{"--colour", "blue"}, want: "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.content != "" {
				args = append([]string{"--config", writeConfig(t, tt.content)}, args...)
			}
			_, _, err := Load("support", args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadHelp(t *testing.T) {
	_, _, err := Load("support", []string{"--help"})
	assert.True(t, errors.Is(err, pflag.ErrHelp))
}
