// Package inflect reshapes words and identifiers: plural and singular forms,
// CamelCase and snake_case conversion, titles, URL slugs, table and type
// names, ordinals and text truncation.
//
// Inflection is table driven. A RuleSet lists plural, singular and human
// rules in priority order together with irregular and uncountable words.
// The built-in English table is embedded and compiled once; other locales
// are loaded from YAML or JSON files into a Registry that resolves a locale
// through its fallback chain:
//
//	registry := inflect.NewRegistry()
//	if err := registry.Load("rules/en-GB.yaml"); err != nil {
//		return err
//	}
//	registry.Inflector("en-GB").Pluralize("cactus")
//
// The package level functions use the English table.
package inflect
