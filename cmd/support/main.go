// Command support renders text/template expressions with the go-support
// helpers, e.g.
//
//	support --locale es '{{ number_to_currency 1234.5 }}'
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	support "github.com/goliatone/go-support"
	"github.com/goliatone/go-support/calendar"
	"github.com/goliatone/go-support/internal/config"
	"github.com/goliatone/go-support/internal/logging"
)

var (
	// Version is set at build time via -ldflags "-X main.Version=...".
	Version = "dev"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("support error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, exprs, err := config.Load("support", args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: stderr,
	})

	if len(exprs) == 0 && cfg.Template == "" {
		return fmt.Errorf("nothing to render: pass template expressions or --template (support %s)", Version)
	}

	tk, err := newToolkit(cfg, logger)
	if err != nil {
		return err
	}

	data, err := loadData(cfg.Data)
	if err != nil {
		return err
	}

	for _, expr := range exprs {
		out, err := tk.Render(cfg.Locale, expr, data)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)
	}

	if cfg.Template != "" {
		text, err := os.ReadFile(cfg.Template)
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}
		out, err := tk.RenderWith(cfg.Locale, string(text), data, support.HelperConfig{Name: cfg.Template})
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, out)
	}

	logger.Debug("rendered templates", "locale", cfg.Locale, "expressions", len(exprs), "template", cfg.Template)
	return nil
}

func newToolkit(cfg *config.Config, logger *slog.Logger) (*support.Toolkit, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	opts := []support.Option{
		support.WithDefaultLocale(cfg.Locale),
		support.WithLocales(cfg.Locales...),
		support.WithRuleFiles(cfg.RuleFiles...),
		support.WithWeekStart(cfg.WeekStart),
		support.WithLocation(loc),
		support.WithLogger(logger),
	}

	// config keys arrive case folded ("es-mx"); WithFallback restores the
	// canonical tag.
	for locale, fallbacks := range cfg.Fallbacks {
		opts = append(opts, support.WithFallback(locale, fallbacks...))
	}

	if cfg.Now != "" {
		now, err := calendar.MustNew(calendar.WithLocation(loc)).ParseTime(cfg.Now)
		if err != nil {
			return nil, err
		}
		opts = append(opts, support.WithClock(calendar.FixedClock{At: now}))
	}

	tk, err := support.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build toolkit: %w", err)
	}
	return tk, nil
}

// loadData reads a YAML or JSON document exposed to templates as dot.
func loadData(path string) (any, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse data file %q: %w", path, err)
	}
	return data, nil
}
