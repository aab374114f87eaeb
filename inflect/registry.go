package inflect

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/goliatone/go-support/internal/localeutil"
	"github.com/goliatone/go-support/internal/logging"
	"github.com/goliatone/go-support/supporterrors"
)

// FallbackResolver resolves the fallback chain of a locale, closest first.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// Registry maps locales to inflectors. Lookups walk the locale's fallback
// chain and end at the default locale, which is seeded with the built-in
// English table.
type Registry struct {
	mu            sync.RWMutex
	sets          map[string]RuleSet
	compiled      map[string]*Inflector
	cache         map[string]*Inflector
	resolver      FallbackResolver
	defaultLocale string
	logger        *slog.Logger
}

type registryConfig struct {
	resolver      FallbackResolver
	defaultLocale string
	logger        *slog.Logger
}

type RegistryOption func(*registryConfig)

func WithRegistryResolver(resolver FallbackResolver) RegistryOption {
	return func(rc *registryConfig) {
		rc.resolver = resolver
	}
}

// WithRegistryDefaultLocale sets the locale used when no candidate of a
// lookup is registered. Defaults to "en".
func WithRegistryDefaultLocale(locale string) RegistryOption {
	return func(rc *registryConfig) {
		rc.defaultLocale = locale
	}
}

func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(rc *registryConfig) {
		rc.logger = logger
	}
}

// NewRegistry returns a registry holding the built-in English rule set.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := registryConfig{defaultLocale: defaultRuleSet.Locale}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	logger := logging.OrDefault(cfg.logger)

	defaultLocale := localeutil.Normalize(cfg.defaultLocale)
	if defaultLocale == "" {
		defaultLocale = defaultRuleSet.Locale
	}

	r := &Registry{
		sets:          map[string]RuleSet{defaultRuleSet.Locale: defaultRuleSet.Clone()},
		compiled:      map[string]*Inflector{defaultRuleSet.Locale: defaultInflector},
		cache:         make(map[string]*Inflector),
		resolver:      cfg.resolver,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
	return r
}

// Register compiles set and stores it under its locale, replacing any
// previous table. A set naming a parent in Extends is layered on top of the
// parent's registered table.
func (r *Registry) Register(set RuleSet) error {
	const op = "inflect.Registry.Register"

	locale := localeutil.Normalize(set.Locale)
	if locale == "" {
		return supporterrors.InvalidArgument(op, "locale", set.Locale, "must not be empty")
	}
	set.Locale = locale

	r.mu.Lock()
	defer r.mu.Unlock()

	effective := set
	if parent := localeutil.Normalize(set.Extends); parent != "" {
		base, ok := r.sets[parent]
		if !ok {
			return supporterrors.InvalidArgument(op, "extends", parent, "parent rule set is not registered")
		}
		effective = set.Extend(base)
	}

	in, err := New(effective)
	if err != nil {
		return fmt.Errorf("inflect: register %s: %w", locale, err)
	}

	_, replaced := r.sets[locale]
	r.sets[locale] = effective
	r.compiled[locale] = in
	r.cache = make(map[string]*Inflector)

	r.logger.Debug("inflection rules registered",
		"locale", locale,
		"extends", set.Extends,
		"replaced", replaced,
		"plurals", len(effective.Plurals),
		"singulars", len(effective.Singulars),
	)
	return nil
}

// Load reads rule files and registers each set in file order, so a file may
// extend a locale registered by an earlier one.
func (r *Registry) Load(paths ...string) error {
	sets, err := LoadRuleFiles(paths...)
	if err != nil {
		return err
	}
	for _, set := range sets {
		if err := r.Register(set); err != nil {
			return err
		}
	}
	return nil
}

// Inflector returns the inflector for locale, walking its fallback chain and
// ending at the default locale.
func (r *Registry) Inflector(locale string) *Inflector {
	key := localeutil.Normalize(locale)

	r.mu.RLock()
	if in, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return in
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if in, ok := r.cache[key]; ok {
		return in
	}

	var resolver localeutil.Resolver
	if r.resolver != nil {
		resolver = r.resolver
	}
	candidates := append(localeutil.Candidates(key, resolver), r.defaultLocale)

	in := defaultInflector
	for _, candidate := range candidates {
		if compiled, ok := r.compiled[candidate]; ok {
			in = compiled
			break
		}
	}
	if in.Locale() != key {
		r.logger.Debug("inflection locale fallback", "requested", key, "resolved", in.Locale())
	}
	r.cache[key] = in
	return in
}

// RuleSet returns a copy of the effective rule set registered for locale.
func (r *Registry) RuleSet(locale string) (RuleSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set, ok := r.sets[localeutil.Normalize(locale)]
	if !ok {
		return RuleSet{}, false
	}
	return set.Clone(), true
}

// Locales lists the registered locales in sorted order.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.sets))
	for locale := range r.sets {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}
