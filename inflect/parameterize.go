package inflect

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonParamChars = regexp.MustCompile(`[^a-zA-Z0-9\-_]+`)

// approximations covers Latin letters that do not decompose into an ASCII
// base plus combining marks.
var approximations = map[rune]string{
	'ß': "ss", 'æ': "ae", 'Æ': "AE", 'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O", 'đ': "d", 'Đ': "D", 'ł': "l", 'Ł': "L",
	'þ': "th", 'Þ': "Th", 'ð': "d", 'Ð': "D", 'ı': "i",
}

// ReplacementChar is written by Transliterate for runes without an ASCII
// approximation.
const ReplacementChar = "?"

// Transliterate replaces accented and other non-ASCII characters with an
// ASCII approximation: "Ærøskøbing" becomes "AEroskobing".
func Transliterate(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case approximations[r] != "":
			b.WriteString(approximations[r])
		default:
			b.WriteString(ReplacementChar)
		}
	}
	return b.String()
}

// ParameterizeOption tunes Parameterize.
type ParameterizeOption func(*parameterizeOptions)

type parameterizeOptions struct {
	separator    string
	preserveCase bool
}

// WithSeparator replaces the default "-" separator. An empty separator
// removes special characters entirely.
func WithSeparator(sep string) ParameterizeOption {
	return func(o *parameterizeOptions) { o.separator = sep }
}

// PreserveCase keeps the letter case of the input.
func PreserveCase() ParameterizeOption {
	return func(o *parameterizeOptions) { o.preserveCase = true }
}

// Parameterize makes phrase safe for URLs: "Donald E. Knuth" becomes
// "donald-e-knuth".
func (in *Inflector) Parameterize(phrase string, opts ...ParameterizeOption) string {
	o := parameterizeOptions{separator: "-"}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	out := nonParamChars.ReplaceAllLiteralString(Transliterate(phrase), o.separator)
	if sep := o.separator; sep != "" {
		double := sep + sep
		for strings.Contains(out, double) {
			out = strings.ReplaceAll(out, double, sep)
		}
		out = strings.TrimSuffix(strings.TrimPrefix(out, sep), sep)
	}
	if !o.preserveCase {
		out = strings.ToLower(out)
	}
	return out
}
