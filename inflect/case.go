package inflect

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var humanWordPattern = regexp.MustCompile(`(?i)[a-z\d]+`)

// Camelize converts an underscored, slash separated term to CamelCase.
// Slashes become "::" namespace separators. With upperFirst false the first
// letter (or leading acronym) is lower-cased.
func (in *Inflector) Camelize(term string, upperFirst bool) string {
	var b strings.Builder
	b.Grow(len(term))

	rest := term
	if upperFirst {
		n := 0
		for n < len(term) && (isASCIILower(term[n]) || isASCIIDigit(term[n])) {
			n++
		}
		b.WriteString(in.camelSegment(term[:n]))
		rest = term[n:]
	} else {
		head, n := in.lowerLeading(term)
		b.WriteString(head)
		rest = term[n:]
	}

	for i := 0; i < len(rest); {
		c := rest[i]
		if c != '_' && c != '/' {
			b.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		for j < len(rest) && isASCIIAlnum(rest[j]) {
			j++
		}
		if c == '/' {
			b.WriteString("::")
		}
		b.WriteString(in.camelSegment(rest[i+1 : j]))
		i = j
	}
	return b.String()
}

func (in *Inflector) camelSegment(segment string) string {
	if acronym, ok := in.acronyms[segment]; ok {
		return acronym
	}
	return capitalize(segment)
}

// lowerLeading lower-cases a leading acronym, or else the first rune.
func (in *Inflector) lowerLeading(term string) (string, int) {
	best := ""
	for _, acronym := range in.acronyms {
		if len(acronym) <= len(best) || !strings.HasPrefix(term, acronym) {
			continue
		}
		next, _ := utf8.DecodeRuneInString(term[len(acronym):])
		if len(term) == len(acronym) || next == '_' || unicode.IsUpper(next) || !isWordRune(next) {
			best = acronym
		}
	}
	if best != "" {
		return strings.ToLower(best), len(best)
	}

	r, size := utf8.DecodeRuneInString(term)
	if size == 0 || !isWordRune(r) {
		return "", 0
	}
	return string(unicode.ToLower(r)), size
}

// Underscore converts CamelCase to snake_case. "::" becomes "/" and dashes
// become underscores.
func (in *Inflector) Underscore(word string) string {
	if !strings.Contains(word, "-") && !strings.Contains(word, "::") && !strings.ContainsFunc(word, unicode.IsUpper) {
		return word
	}
	word = strings.ReplaceAll(word, "::", "/")

	runes := []rune(word)
	var b strings.Builder
	b.Grow(len(word) + 4)
	for i, r := range runes {
		if i > 0 && wordBoundary(runes, i) {
			b.WriteByte('_')
		}
		if r == '-' {
			r = '_'
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// wordBoundary reports a break before runes[i]: the end of an acronym
// ("HTMLParser") or a lower/digit to upper transition ("adminUser").
func wordBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	if !unicode.IsUpper(cur) {
		return false
	}
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// HumanizeOption tunes Humanize.
type HumanizeOption func(*humanizeOptions)

type humanizeOptions struct {
	capitalize   bool
	keepIDSuffix bool
}

// WithoutCapitalize keeps the first letter lower-case.
func WithoutCapitalize() HumanizeOption {
	return func(o *humanizeOptions) { o.capitalize = false }
}

// KeepIDSuffix keeps a trailing "_id" as " id".
func KeepIDSuffix() HumanizeOption {
	return func(o *humanizeOptions) { o.keepIDSuffix = true }
}

// Humanize turns an identifier into a readable phrase: human rules apply
// first, underscores become spaces, a trailing "_id" is dropped, words are
// lower-cased except known acronyms and the first letter is capitalised.
func (in *Inflector) Humanize(word string, opts ...HumanizeOption) string {
	o := humanizeOptions{capitalize: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	result, _ := applyRules(in.humans, word)
	result = strings.ReplaceAll(result, "_", " ")
	result = strings.TrimLeftFunc(result, unicode.IsSpace)
	if !o.keepIDSuffix && strings.HasSuffix(word, "_id") {
		result = strings.TrimSuffix(result, " id")
	}

	result = humanWordPattern.ReplaceAllStringFunc(result, func(match string) string {
		lower := strings.ToLower(match)
		if acronym, ok := in.acronyms[lower]; ok {
			return acronym
		}
		return lower
	})

	if o.capitalize {
		if r, _ := utf8.DecodeRuneInString(result); isWordRune(r) {
			result = upperFirst(result)
		}
	}
	return result
}

// Titleize humanizes phrase and capitalises every word.
func (in *Inflector) Titleize(phrase string) string {
	humanized := in.Humanize(in.Underscore(phrase))
	return cases.Title(language.English, cases.NoLower).String(humanized)
}

// Dasherize replaces underscores with dashes.
func (in *Inflector) Dasherize(word string) string {
	return strings.ReplaceAll(word, "_", "-")
}

// Tableize derives a table name from a type name: "RawScaledScorer" becomes
// "raw_scaled_scorers".
func (in *Inflector) Tableize(class string) string {
	return in.Pluralize(in.Underscore(class))
}

// Classify derives a type name from a table name, dropping any schema
// prefix: "schema.posts" becomes "Post".
func (in *Inflector) Classify(table string) string {
	if idx := strings.LastIndex(table, "."); idx >= 0 {
		table = table[idx+1:]
	}
	return in.Camelize(in.Singularize(table), true)
}

// ForeignKey derives a foreign key column from a type name. separate
// controls the underscore before "id".
func (in *Inflector) ForeignKey(class string, separate bool) string {
	key := in.Underscore(Demodulize(class))
	if separate {
		return key + "_id"
	}
	return key + "id"
}

// Demodulize drops the namespace of a "::" qualified name.
func Demodulize(path string) string {
	if idx := strings.LastIndex(path, "::"); idx >= 0 {
		return path[idx+2:]
	}
	return path
}

// Deconstantize drops the rightmost segment of a "::" qualified name.
func Deconstantize(path string) string {
	if idx := strings.LastIndex(path, "::"); idx >= 0 {
		return path[:idx]
	}
	return ""
}

// Parents lists the enclosing namespaces of a "::" qualified name, closest
// first: "A::B::C" yields ["A::B", "A"].
func Parents(path string) []string {
	var out []string
	for parent := Deconstantize(path); parent != ""; parent = Deconstantize(parent) {
		out = append(out, parent)
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isASCIILower(c byte) bool { return c >= 'a' && c <= 'z' }
func isASCIIDigit(c byte) bool { return c >= '0' && c <= '9' }
func isASCIIAlnum(c byte) bool {
	return isASCIILower(c) || isASCIIDigit(c) || (c >= 'A' && c <= 'Z')
}
