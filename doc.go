// Package support bundles the go-support packages behind a single,
// locale aware entry point.
//
// A Toolkit is built from functional options:
//
//	tk, err := support.New(
//		support.WithLocales("en", "es"),
//		support.WithRuleFiles("rules/es.yaml"),
//		support.WithWeekStart(time.Sunday),
//	)
//
// It exposes the inflection registry, a calendar and number formatting
// presets per locale, and a HelperRegistry that turns every operation into
// a text/template FuncMap:
//
//	out, err := tk.Render("en", `{{ pluralize "person" }}`, nil) // "people"
//
// Locale lookups walk the configured fallback chain, so "es-MX" uses the
// helpers registered for "es" unless it overrides them.
package support
