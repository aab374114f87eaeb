package support

import (
	"log/slog"

	"github.com/goliatone/go-support/calendar"
	"github.com/goliatone/go-support/inflect"
	"github.com/goliatone/go-support/numfmt"
)

// Toolkit bundles the locale aware inflection registry, a calendar and the
// template helper registry built from a Config. It is safe for concurrent
// use.
type Toolkit struct {
	defaultLocale string
	locales       []string
	inflections   *inflect.Registry
	calendar      *calendar.Calendar
	helpers       *HelperRegistry
	logger        *slog.Logger
}

// New builds a Toolkit from options.
func New(opts ...Option) (*Toolkit, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

func (t *Toolkit) DefaultLocale() string { return t.defaultLocale }

func (t *Toolkit) Locales() []string { return append([]string(nil), t.locales...) }

func (t *Toolkit) Inflections() *inflect.Registry { return t.inflections }

func (t *Toolkit) Calendar() *calendar.Calendar { return t.calendar }

func (t *Toolkit) Helpers() *HelperRegistry { return t.helpers }

// Inflector returns the inflector for locale; an empty locale selects the
// default locale.
func (t *Toolkit) Inflector(locale string) *inflect.Inflector {
	return t.inflections.Inflector(t.locale(locale))
}

// NumberSpec returns the Spec for mode using the conventions of locale.
func (t *Toolkit) NumberSpec(locale string, mode numfmt.Mode, opts ...numfmt.SpecOption) numfmt.Spec {
	return numfmt.LocaleSpec(t.locale(locale), mode, opts...)
}

// FormatNumber formats number in mode with the conventions of locale.
func (t *Toolkit) FormatNumber(locale string, number float64, mode numfmt.Mode, opts ...numfmt.SpecOption) (string, error) {
	return numfmt.Format(number, t.NumberSpec(locale, mode, opts...))
}

// FuncMap returns the template helpers for locale.
func (t *Toolkit) FuncMap(locale string) map[string]any {
	return t.helpers.FuncMap(t.locale(locale))
}

func (t *Toolkit) locale(locale string) string {
	if locale == "" {
		return t.defaultLocale
	}
	return locale
}
