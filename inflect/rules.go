package inflect

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules/en.yaml
var englishRulesYAML []byte

// Rule is a single pattern/replacement pair. Replacement uses regexp
// expansion syntax, e.g. "${1}ies".
type Rule struct {
	Pattern     string `yaml:"pattern" json:"pattern"`
	Replacement string `yaml:"replacement" json:"replacement"`
}

// Irregular pairs a singular with its plural form.
type Irregular struct {
	Singular string `yaml:"singular" json:"singular"`
	Plural   string `yaml:"plural" json:"plural"`
}

// RuleSet is the declarative inflection table for one locale. Rule lists
// are in priority order: the first matching rule wins.
type RuleSet struct {
	Locale              string      `yaml:"locale" json:"locale"`
	Extends             string      `yaml:"extends,omitempty" json:"extends,omitempty"`
	DefaultPluralSuffix string      `yaml:"default_plural_suffix,omitempty" json:"default_plural_suffix,omitempty"`
	OrdinalSuffix       string      `yaml:"ordinal_suffix,omitempty" json:"ordinal_suffix,omitempty"`
	Plurals             []Rule      `yaml:"plurals,omitempty" json:"plurals,omitempty"`
	Singulars           []Rule      `yaml:"singulars,omitempty" json:"singulars,omitempty"`
	Humans              []Rule      `yaml:"humans,omitempty" json:"humans,omitempty"`
	Irregulars          []Irregular `yaml:"irregulars,omitempty" json:"irregulars,omitempty"`
	Uncountables        []string    `yaml:"uncountables,omitempty" json:"uncountables,omitempty"`
	Acronyms            []string    `yaml:"acronyms,omitempty" json:"acronyms,omitempty"`
}

var defaultRuleSet = mustDecodeEmbedded()

func mustDecodeEmbedded() RuleSet {
	var set RuleSet
	if err := yaml.Unmarshal(englishRulesYAML, &set); err != nil {
		panic(fmt.Sprintf("inflect: decode embedded rules: %v", err))
	}
	return set
}

// DefaultRuleSet returns a copy of the built-in English table.
func DefaultRuleSet() RuleSet {
	return defaultRuleSet.Clone()
}

// Clone returns a deep copy of the rule set.
func (s RuleSet) Clone() RuleSet {
	out := s
	out.Plurals = append([]Rule(nil), s.Plurals...)
	out.Singulars = append([]Rule(nil), s.Singulars...)
	out.Humans = append([]Rule(nil), s.Humans...)
	out.Irregulars = append([]Irregular(nil), s.Irregulars...)
	out.Uncountables = append([]string(nil), s.Uncountables...)
	out.Acronyms = append([]string(nil), s.Acronyms...)
	return out
}

// Extend layers s on top of base. Rules and irregulars of s take priority,
// uncountables and acronyms are unioned, and scalar fields of s win when set.
func (s RuleSet) Extend(base RuleSet) RuleSet {
	out := RuleSet{
		Locale:              s.Locale,
		DefaultPluralSuffix: base.DefaultPluralSuffix,
		OrdinalSuffix:       base.OrdinalSuffix,
	}
	if s.DefaultPluralSuffix != "" {
		out.DefaultPluralSuffix = s.DefaultPluralSuffix
	}
	if s.OrdinalSuffix != "" {
		out.OrdinalSuffix = s.OrdinalSuffix
	}

	out.Plurals = append(append([]Rule(nil), s.Plurals...), base.Plurals...)
	out.Singulars = append(append([]Rule(nil), s.Singulars...), base.Singulars...)
	out.Humans = append(append([]Rule(nil), s.Humans...), base.Humans...)
	out.Irregulars = append(append([]Irregular(nil), s.Irregulars...), base.Irregulars...)
	out.Uncountables = unionWords(s.Uncountables, base.Uncountables)
	out.Acronyms = unionWords(s.Acronyms, base.Acronyms)
	return out
}

func unionWords(lists ...[]string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, word := range list {
			key := strings.ToLower(word)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, word)
		}
	}
	return out
}

type compiledRule struct {
	re          *regexp.Regexp
	replacement string
}

func compileRules(kind string, rules []Rule) ([]compiledRule, error) {
	out := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		if rule.Pattern == "" {
			return nil, fmt.Errorf("%s rule %d: empty pattern", kind, i)
		}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%s rule %d: %w", kind, i, err)
		}
		out = append(out, compiledRule{re: re, replacement: rule.Replacement})
	}
	return out, nil
}

// apply replaces the first match of the first matching rule.
func applyRules(rules []compiledRule, word string) (string, bool) {
	for _, rule := range rules {
		loc := rule.re.FindStringSubmatchIndex(word)
		if loc == nil {
			continue
		}
		expanded := rule.re.ExpandString(nil, rule.replacement, word, loc)
		return word[:loc[0]] + string(expanded) + word[loc[1]:], true
	}
	return word, false
}
