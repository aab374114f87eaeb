// Package localeutil normalises locale identifiers and derives fallback
// chains for the locale aware registries.
package localeutil

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Resolver resolves the fallback chain of a locale, closest first.
type Resolver interface {
	Resolve(locale string) []string
}

// StaticResolver holds explicit fallback chains and derives parent chains
// for locales it has not been told about.
type StaticResolver struct {
	mu     sync.RWMutex
	chains map[string][]string
}

func NewStaticResolver() *StaticResolver {
	return &StaticResolver{chains: make(map[string][]string)}
}

// Set replaces the fallback chain for locale.
func (r *StaticResolver) Set(locale string, fallbacks ...string) {
	locale = Normalize(locale)
	if locale == "" {
		return
	}

	chain := make([]string, 0, len(fallbacks))
	for _, fb := range fallbacks {
		if fb = Normalize(fb); fb != "" && fb != locale {
			chain = append(chain, fb)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.chains[locale] = chain
}

func (r *StaticResolver) Resolve(locale string) []string {
	locale = Normalize(locale)
	if locale == "" {
		return nil
	}

	r.mu.RLock()
	chain, ok := r.chains[locale]
	r.mu.RUnlock()
	if ok {
		return append([]string(nil), chain...)
	}
	return ParentChain(locale)
}

// Normalize trims the locale, replaces underscores with hyphens and
// restores the canonical BCP 47 casing, e.g. "es_mx" becomes "es-MX".
// Identifiers that do not parse keep their case.
func Normalize(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return ""
	}
	if tag, err := language.Parse(locale); err == nil {
		return tag.String()
	}
	return locale
}

// NormalizeAll normalises, dedupes and sorts locales.
func NormalizeAll(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
		normalized := Normalize(locale)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	sort.Strings(result)
	return result
}

// ParentChain returns the parents of locale ordered from closest to root,
// e.g. "en-GB" -> ["en"]. Unparseable identifiers fall back to trimming
// hyphen separated segments.
func ParentChain(locale string) []string {
	locale = Normalize(locale)
	if locale == "" {
		return nil
	}

	var chain []string
	seen := map[string]struct{}{locale: {}}
	add := func(value string) bool {
		if value == "" || value == "und" {
			return false
		}
		if _, exists := seen[value]; exists {
			return false
		}
		seen[value] = struct{}{}
		chain = append(chain, value)
		return true
	}

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			if !add(parent.String()) {
				break
			}
		}
		if base, conf := tag.Base(); conf != language.No {
			add(base.String())
		}
	}

	for current := trimSegment(locale); current != ""; current = trimSegment(current) {
		add(current)
	}

	return chain
}

// Candidates returns locale followed by its resolved fallbacks, without
// duplicates.
func Candidates(locale string, resolver Resolver) []string {
	locale = Normalize(locale)
	if locale == "" {
		return nil
	}

	out := []string{locale}
	seen := map[string]struct{}{locale: {}}
	var fallbacks []string
	if resolver != nil {
		fallbacks = resolver.Resolve(locale)
	} else {
		fallbacks = ParentChain(locale)
	}
	for _, fb := range fallbacks {
		if _, ok := seen[fb]; ok || fb == "" {
			continue
		}
		seen[fb] = struct{}{}
		out = append(out, fb)
	}
	return out
}

func trimSegment(locale string) string {
	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}
	return ""
}
