package support

import (
	"log/slog"
	"maps"
	"sync"

	"github.com/goliatone/go-support/internal/localeutil"
	"github.com/goliatone/go-support/internal/logging"
)

// HelperProvider returns the helpers a locale contributes to a FuncMap.
type HelperProvider func(locale string) map[string]any

// HelperRegistry manages template helpers and their locale specific
// overrides. FuncMaps are built once per locale and cached until the next
// registration.
type HelperRegistry struct {
	mu        sync.RWMutex
	defaults  map[string]any
	base      HelperProvider
	overrides map[string]map[string]any
	providers map[string]HelperProvider
	globals   map[string]any
	funcCache map[string]map[string]any
	resolver  FallbackResolver
	locales   []string
	fallback  string
	logger    *slog.Logger
}

type helperRegistryConfig struct {
	defaults      map[string]any
	base          HelperProvider
	resolver      FallbackResolver
	locales       []string
	defaultLocale string
	providers     map[string]HelperProvider
	logger        *slog.Logger
}

type HelperRegistryOption func(*helperRegistryConfig)

func WithHelperRegistryResolver(resolver FallbackResolver) HelperRegistryOption {
	return func(hrc *helperRegistryConfig) {
		hrc.resolver = resolver
	}
}

func WithHelperRegistryLocales(locales ...string) HelperRegistryOption {
	return func(hrc *helperRegistryConfig) {
		hrc.locales = append(hrc.locales, locales...)
	}
}

// WithHelperRegistryDefaultLocale sets the locale used when FuncMap is
// called with an empty locale. Defaults to the first known locale.
func WithHelperRegistryDefaultLocale(locale string) HelperRegistryOption {
	return func(hrc *helperRegistryConfig) {
		hrc.defaultLocale = locale
	}
}

// WithHelperRegistryDefaults seeds helpers shared by every locale.
func WithHelperRegistryDefaults(helpers map[string]any) HelperRegistryOption {
	return func(hrc *helperRegistryConfig) {
		if hrc.defaults == nil {
			hrc.defaults = make(map[string]any, len(helpers))
		}
		maps.Copy(hrc.defaults, helpers)
	}
}

// WithHelperRegistryBase sets the provider called with the requested locale
// before any locale specific provider.
func WithHelperRegistryBase(provider HelperProvider) HelperRegistryOption {
	return func(hrc *helperRegistryConfig) {
		hrc.base = provider
	}
}

func WithHelperRegistryProvider(locale string, provider HelperProvider) HelperRegistryOption {
	return func(hrc *helperRegistryConfig) {
		if locale == "" || provider == nil {
			return
		}
		if hrc.providers == nil {
			hrc.providers = make(map[string]HelperProvider)
		}
		hrc.providers[locale] = provider
	}
}

func WithHelperRegistryLogger(logger *slog.Logger) HelperRegistryOption {
	return func(hrc *helperRegistryConfig) {
		hrc.logger = logger
	}
}

// NewHelperRegistry builds a registry from the given defaults and providers.
func NewHelperRegistry(opts ...HelperRegistryOption) *HelperRegistry {
	cfg := helperRegistryConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	logger := logging.OrDefault(cfg.logger)

	registry := &HelperRegistry{
		defaults:  make(map[string]any, len(cfg.defaults)),
		base:      cfg.base,
		overrides: make(map[string]map[string]any),
		providers: make(map[string]HelperProvider),
		resolver:  cfg.resolver,
		locales:   localeutil.NormalizeAll(cfg.locales),
		fallback:  localeutil.Normalize(cfg.defaultLocale),
		logger:    logger,
	}
	maps.Copy(registry.defaults, cfg.defaults)

	for locale, provider := range cfg.providers {
		registry.RegisterProvider(locale, provider)
	}

	return registry
}

// Register sets or replaces the helper called name for every locale. It
// wins over locale overrides.
func (r *HelperRegistry) Register(name string, fn any) {
	if name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.globals == nil {
		r.globals = make(map[string]any)
	}
	r.globals[name] = fn
	r.invalidateFuncCacheLocked()
}

// RegisterLocale registers a locale specific override for the name helper.
// The override also applies to locales that fall back to locale.
func (r *HelperRegistry) RegisterLocale(locale, name string, fn any) {
	locale = localeutil.Normalize(locale)
	if locale == "" || name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	helpers := r.overrides[locale]
	if helpers == nil {
		helpers = make(map[string]any)
		r.overrides[locale] = helpers
	}
	helpers[name] = fn
	r.invalidateFuncCacheLocked()
}

func (r *HelperRegistry) RegisterProvider(locale string, provider HelperProvider) {
	locale = localeutil.Normalize(locale)
	if locale == "" || provider == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[locale] = provider
	r.invalidateFuncCacheLocked()
}

// Helper returns the helper called name for locale.
func (r *HelperRegistry) Helper(name, locale string) (any, bool) {
	if name == "" {
		return nil, false
	}
	fn, ok := r.funcMapForLocale(locale)[name]
	return fn, ok && fn != nil
}

// FuncMap returns every helper that applies to locale. The map is a copy and
// may be handed to template.Funcs.
func (r *HelperRegistry) FuncMap(locale string) map[string]any {
	return cloneFuncMap(r.funcMapForLocale(locale))
}

// Locales returns the locales the registry was configured with.
func (r *HelperRegistry) Locales() []string {
	return append([]string(nil), r.locales...)
}

func (r *HelperRegistry) funcMapForLocale(locale string) map[string]any {
	key := localeutil.Normalize(locale)

	r.mu.RLock()
	if r.funcCache != nil {
		if cached, ok := r.funcCache[key]; ok {
			r.mu.RUnlock()
			return cached
		}
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.funcCache == nil {
		r.funcCache = make(map[string]map[string]any)
	} else if cached, ok := r.funcCache[key]; ok {
		return cached
	}

	effective := key
	if effective == "" {
		effective = r.defaultLocale()
	}

	result := make(map[string]any, len(r.defaults))
	maps.Copy(result, r.defaults)

	if r.base != nil {
		maps.Copy(result, r.base(effective))
	}

	if effective != "" {
		candidates := r.candidateLocales(effective)

		// least specific first so the requested locale wins
		for i := len(candidates) - 1; i >= 0; i-- {
			candidate := candidates[i]

			if provider, ok := r.providers[candidate]; ok && provider != nil {
				if helpers := provider(candidate); helpers != nil {
					maps.Copy(result, helpers)
				}
			}
			if helpers, ok := r.overrides[candidate]; ok {
				maps.Copy(result, helpers)
			}
		}
	}

	maps.Copy(result, r.globals)

	r.logger.Debug("helper func map built", "locale", key, "effective", effective, "helpers", len(result))

	r.funcCache[key] = result
	return result
}

func (r *HelperRegistry) invalidateFuncCacheLocked() {
	r.funcCache = nil
}

func (r *HelperRegistry) candidateLocales(locale string) []string {
	return localeutil.Candidates(locale, r.resolver)
}

func (r *HelperRegistry) defaultLocale() string {
	if r.fallback != "" {
		return r.fallback
	}
	if len(r.locales) > 0 {
		return r.locales[0]
	}
	return ""
}

func cloneFuncMap(source map[string]any) map[string]any {
	target := make(map[string]any, len(source))
	maps.Copy(target, source)
	return target
}
