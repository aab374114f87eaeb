package support

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/goliatone/go-support/calendar"
	"github.com/goliatone/go-support/inflect"
	"github.com/goliatone/go-support/internal/localeutil"
	"github.com/goliatone/go-support/internal/logging"
)

// FallbackResolver resolves the fallback chain of a locale, closest first.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// Config captures toolkit setup
type Config struct {
	DefaultLocale string
	Locales       []string
	Resolver      FallbackResolver
	RuleSets      []inflect.RuleSet
	RuleFiles     []string
	WeekStart     time.Weekday
	Clock         calendar.Clock
	Location      *time.Location
	Logger        *slog.Logger

	helpers       map[string]any
	localeHelpers map[string]map[string]any
	providers     map[string]HelperProvider
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{WeekStart: time.Monday}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.DefaultLocale = localeutil.Normalize(cfg.DefaultLocale)
	if cfg.DefaultLocale == "" && len(cfg.Locales) > 0 {
		cfg.DefaultLocale = localeutil.Normalize(cfg.Locales[0])
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "en"
	}
	cfg.Locales = localeutil.NormalizeAll(append(cfg.Locales, cfg.DefaultLocale))

	if cfg.Resolver == nil {
		cfg.Resolver = localeutil.NewStaticResolver()
	}
	if cfg.Clock == nil {
		cfg.Clock = calendar.SystemClock
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	cfg.Logger = logging.OrDefault(cfg.Logger)

	return cfg, nil
}

// WithDefaultLocale sets the default locale in Config
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocales registers supported locales
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback sets an explicit fallback chain for locale. It is ignored
// when a custom resolver was configured.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*localeutil.StaticResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = localeutil.NewStaticResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithRuleSets registers inflection rule sets in addition to the built-in
// English table.
func WithRuleSets(sets ...inflect.RuleSet) Option {
	return func(c *Config) error {
		c.RuleSets = append(c.RuleSets, sets...)
		return nil
	}
}

// WithRuleFiles loads inflection rule sets from YAML or JSON files when the
// toolkit is built.
func WithRuleFiles(paths ...string) Option {
	return func(c *Config) error {
		c.RuleFiles = append(c.RuleFiles, paths...)
		return nil
	}
}

func WithWeekStart(day time.Weekday) Option {
	return func(c *Config) error {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("support: invalid week start %d", day)
		}
		c.WeekStart = day
		return nil
	}
}

func WithClock(clock calendar.Clock) Option {
	return func(c *Config) error {
		c.Clock = clock
		return nil
	}
}

func WithLocation(loc *time.Location) Option {
	return func(c *Config) error {
		c.Location = loc
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithHelper registers a template helper for every locale.
func WithHelper(name string, fn any) Option {
	return func(c *Config) error {
		if name == "" || fn == nil {
			return nil
		}
		if c.helpers == nil {
			c.helpers = make(map[string]any)
		}
		c.helpers[name] = fn
		return nil
	}
}

// WithLocaleHelper registers a template helper override for locale.
func WithLocaleHelper(locale, name string, fn any) Option {
	return func(c *Config) error {
		if locale == "" || name == "" || fn == nil {
			return nil
		}
		if c.localeHelpers == nil {
			c.localeHelpers = make(map[string]map[string]any)
		}
		if c.localeHelpers[locale] == nil {
			c.localeHelpers[locale] = make(map[string]any)
		}
		c.localeHelpers[locale][name] = fn
		return nil
	}
}

func WithHelperProvider(locale string, provider HelperProvider) Option {
	return func(c *Config) error {
		if locale == "" || provider == nil {
			return nil
		}
		if c.providers == nil {
			c.providers = make(map[string]HelperProvider)
		}
		c.providers[locale] = provider
		return nil
	}
}

// Build assembles a Toolkit: the inflection registry with every configured
// rule set, the calendar and the helper registry.
func (cfg *Config) Build() (*Toolkit, error) {
	if cfg == nil {
		return nil, fmt.Errorf("support: nil config")
	}

	inflections := inflect.NewRegistry(
		inflect.WithRegistryResolver(cfg.Resolver),
		inflect.WithRegistryLogger(cfg.Logger),
	)
	for _, set := range cfg.RuleSets {
		if err := inflections.Register(set); err != nil {
			return nil, fmt.Errorf("support: register rule set %q: %w", set.Locale, err)
		}
	}
	if len(cfg.RuleFiles) > 0 {
		if err := inflections.Load(cfg.RuleFiles...); err != nil {
			return nil, fmt.Errorf("support: load rule files: %w", err)
		}
	}

	cal, err := calendar.New(
		calendar.WithWeekStart(cfg.WeekStart),
		calendar.WithClock(cfg.Clock),
		calendar.WithLocation(cfg.Location),
	)
	if err != nil {
		return nil, fmt.Errorf("support: calendar: %w", err)
	}

	tk := &Toolkit{
		defaultLocale: cfg.DefaultLocale,
		locales:       append([]string(nil), cfg.Locales...),
		inflections:   inflections,
		calendar:      cal,
		logger:        cfg.Logger,
	}

	opts := []HelperRegistryOption{
		WithHelperRegistryResolver(cfg.Resolver),
		WithHelperRegistryLocales(cfg.Locales...),
		WithHelperRegistryDefaultLocale(cfg.DefaultLocale),
		WithHelperRegistryDefaults(tk.sharedHelpers()),
		WithHelperRegistryBase(tk.localeHelpers),
		WithHelperRegistryLogger(cfg.Logger),
	}
	for locale, provider := range cfg.providers {
		opts = append(opts, WithHelperRegistryProvider(locale, provider))
	}
	tk.helpers = NewHelperRegistry(opts...)

	for locale, helpers := range cfg.localeHelpers {
		for name, fn := range helpers {
			tk.helpers.RegisterLocale(locale, name, fn)
		}
	}
	for name, fn := range cfg.helpers {
		tk.helpers.Register(name, fn)
	}

	cfg.Logger.Debug("support toolkit built",
		"default_locale", cfg.DefaultLocale,
		"locales", cfg.Locales,
		"inflection_locales", inflections.Locales(),
	)

	return tk, nil
}
