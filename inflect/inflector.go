package inflect

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-support/supporterrors"
)

// Inflector applies a compiled RuleSet. It is immutable and safe for
// concurrent use.
type Inflector struct {
	locale        string
	plurals       []compiledRule
	singulars     []compiledRule
	humans        []compiledRule
	irregulars    []Irregular
	uncountables  map[string]struct{}
	acronyms      map[string]string
	defaultSuffix string
	ordinalSuffix string
}

// New compiles set into an Inflector.
func New(set RuleSet) (*Inflector, error) {
	const op = "inflect.New"

	plurals, err := compileRules("plural", set.Plurals)
	if err != nil {
		return nil, supporterrors.InvalidArgument(op, "plurals", nil, "invalid rule").WithCause(err)
	}
	singulars, err := compileRules("singular", set.Singulars)
	if err != nil {
		return nil, supporterrors.InvalidArgument(op, "singulars", nil, "invalid rule").WithCause(err)
	}
	humans, err := compileRules("human", set.Humans)
	if err != nil {
		return nil, supporterrors.InvalidArgument(op, "humans", nil, "invalid rule").WithCause(err)
	}

	in := &Inflector{
		locale:        strings.TrimSpace(set.Locale),
		plurals:       plurals,
		singulars:     singulars,
		humans:        humans,
		uncountables:  make(map[string]struct{}, len(set.Uncountables)),
		acronyms:      make(map[string]string, len(set.Acronyms)),
		defaultSuffix: set.DefaultPluralSuffix,
		ordinalSuffix: set.OrdinalSuffix,
	}

	for i, irregular := range set.Irregulars {
		singular := strings.ToLower(strings.TrimSpace(irregular.Singular))
		plural := strings.ToLower(strings.TrimSpace(irregular.Plural))
		if singular == "" || plural == "" {
			return nil, supporterrors.InvalidArgument(op, "irregulars", i, "singular and plural are required")
		}
		in.irregulars = append(in.irregulars, Irregular{Singular: singular, Plural: plural})
	}
	for _, word := range set.Uncountables {
		if word = strings.ToLower(strings.TrimSpace(word)); word != "" {
			in.uncountables[word] = struct{}{}
		}
	}
	for _, acronym := range set.Acronyms {
		if acronym = strings.TrimSpace(acronym); acronym != "" {
			in.acronyms[strings.ToLower(acronym)] = acronym
		}
	}

	return in, nil
}

// MustNew is like New but panics on an invalid rule set.
func MustNew(set RuleSet) *Inflector {
	in, err := New(set)
	if err != nil {
		panic(fmt.Sprintf("inflect: %v", err))
	}
	return in
}

var defaultInflector = MustNew(defaultRuleSet)

// Default returns the built-in English inflector.
func Default() *Inflector {
	return defaultInflector
}

// Locale reports the locale of the rule set the inflector was built from.
func (in *Inflector) Locale() string {
	return in.locale
}

// Pluralize returns the plural form of word. Uncountable words are returned
// unchanged.
func (in *Inflector) Pluralize(word string) string {
	out, _ := in.pluralize(word)
	return out
}

// TryPluralize is the strict form of Pluralize: it fails with
// ErrUnsupportedInflection when no exception, rule or default suffix applies.
func (in *Inflector) TryPluralize(word string) (string, error) {
	out, ok := in.pluralize(word)
	if !ok {
		return word, &supporterrors.InflectionError{Op: "inflect.Pluralize", Word: word, Locale: in.locale}
	}
	return out, nil
}

// Singularize returns the singular form of word. Words no rule matches pass
// through unchanged.
func (in *Inflector) Singularize(word string) string {
	out, _ := in.singularize(word)
	return out
}

// TrySingularize is the strict form of Singularize.
func (in *Inflector) TrySingularize(word string) (string, error) {
	out, ok := in.singularize(word)
	if !ok {
		return word, &supporterrors.InflectionError{Op: "inflect.Singularize", Word: word, Locale: in.locale}
	}
	return out, nil
}

func (in *Inflector) pluralize(word string) (string, bool) {
	if strings.TrimSpace(word) == "" {
		return word, false
	}
	if in.isUncountable(word) {
		return word, true
	}
	for _, irregular := range in.irregulars {
		if _, ok := matchSegment(word, irregular.Plural); ok {
			return word, true
		}
		if out, ok := replaceSegment(word, irregular.Singular, irregular.Plural); ok {
			return out, true
		}
	}
	if out, ok := applyRules(in.plurals, word); ok {
		return out, true
	}
	if in.defaultSuffix != "" {
		return word + in.defaultSuffix, true
	}
	return word, false
}

func (in *Inflector) singularize(word string) (string, bool) {
	if strings.TrimSpace(word) == "" {
		return word, false
	}
	if in.isUncountable(word) {
		return word, true
	}
	for _, irregular := range in.irregulars {
		if out, ok := replaceSegment(word, irregular.Plural, irregular.Singular); ok {
			return out, true
		}
		if _, ok := matchSegment(word, irregular.Singular); ok {
			return word, true
		}
	}
	return applyRules(in.singulars, word)
}

func (in *Inflector) isUncountable(word string) bool {
	if len(in.uncountables) == 0 {
		return false
	}
	_, ok := in.uncountables[strings.ToLower(lastWord(word))]
	return ok
}

func lastWord(s string) string {
	i := len(s)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		i -= size
	}
	return s[i:]
}

// matchSegment reports whether word ends with form as a whole word or as
// the trailing segment of a compound (snake, kebab, spaced or CamelCase).
func matchSegment(word, form string) (int, bool) {
	if form == "" || len(word) < len(form) {
		return 0, false
	}
	start := len(word) - len(form)
	if !strings.EqualFold(word[start:], form) {
		return 0, false
	}
	if start == 0 {
		return 0, true
	}

	prev, _ := utf8.DecodeLastRuneInString(word[:start])
	first, _ := utf8.DecodeRuneInString(word[start:])
	switch {
	case prev == '_' || prev == '-' || prev == '/' || prev == ':' || unicode.IsSpace(prev):
		return start, true
	case unicode.IsUpper(first) && !unicode.IsUpper(prev):
		return start, true
	}
	return 0, false
}

func replaceSegment(word, from, to string) (string, bool) {
	start, ok := matchSegment(word, from)
	if !ok {
		return word, false
	}
	return word[:start] + matchCase(word[start:], to), true
}

// matchCase shapes replacement after segment: all caps stays all caps and a
// capitalised first letter is carried over.
func matchCase(segment, replacement string) string {
	if utf8.RuneCountInString(segment) > 1 && segment == strings.ToUpper(segment) && segment != strings.ToLower(segment) {
		return strings.ToUpper(replacement)
	}
	first, _ := utf8.DecodeRuneInString(segment)
	if unicode.IsUpper(first) {
		return upperFirst(replacement)
	}
	return replacement
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
