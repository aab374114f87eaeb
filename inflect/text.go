package inflect

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-support/supporterrors"
)

const (
	// DefaultOmission is appended by Truncate and TruncateWords.
	DefaultOmission = "..."
	// DefaultByteOmission is appended by TruncateBytes.
	DefaultByteOmission = "…"
)

// TruncateOption tunes the truncation functions.
type TruncateOption func(*truncateOptions)

type truncateOptions struct {
	omission    string
	hasOmission bool
	separator   string
}

// WithOmission replaces the default omission marker. An empty omission is
// allowed.
func WithOmission(omission string) TruncateOption {
	return func(o *truncateOptions) {
		o.omission = omission
		o.hasOmission = true
	}
}

// WithBreak makes Truncate cut at the last occurrence of sep that fits and
// TruncateWords split words on sep instead of whitespace.
func WithBreak(sep string) TruncateOption {
	return func(o *truncateOptions) { o.separator = sep }
}

func buildTruncateOptions(defaultOmission string, opts []TruncateOption) truncateOptions {
	o := truncateOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.hasOmission {
		o.omission = defaultOmission
	}
	return o
}

// Truncate shortens text to at most length characters, omission included.
// A length shorter than the omission yields the omission alone.
func Truncate(text string, length int, opts ...TruncateOption) (string, error) {
	if length < 0 {
		return "", supporterrors.InvalidArgument("inflect.Truncate", "length", length, "must not be negative")
	}

	chars := []rune(text)
	if len(chars) <= length {
		return text, nil
	}

	o := buildTruncateOptions(DefaultOmission, opts)
	room := length - utf8.RuneCountInString(o.omission)
	if room <= 0 {
		return o.omission, nil
	}

	stop := room
	if o.separator != "" {
		if idx := lastIndexRunes(chars, []rune(o.separator), room); idx >= 0 {
			stop = idx
		}
	}
	return string(chars[:stop]) + o.omission, nil
}

// lastIndexRunes finds the last occurrence of sep starting at or before
// limit.
func lastIndexRunes(chars, sep []rune, limit int) int {
	start := min(limit, len(chars)-len(sep))
	for i := start; i >= 0; i-- {
		match := true
		for j := range sep {
			if chars[i+j] != sep[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// TruncateBytes shortens text to at most size bytes, omission included,
// without splitting a multi-byte character.
func TruncateBytes(text string, size int, opts ...TruncateOption) (string, error) {
	if len(text) <= size {
		return text, nil
	}

	o := buildTruncateOptions(DefaultByteOmission, opts)
	switch {
	case len(o.omission) > size:
		return "", supporterrors.InvalidArgument("inflect.TruncateBytes", "size", size, "smaller than the omission")
	case len(o.omission) == size:
		return o.omission, nil
	}

	cutAt := size - len(o.omission)
	end := 0
	for end < len(text) {
		_, width := utf8.DecodeRuneInString(text[end:])
		if end+width > cutAt {
			break
		}
		end += width
	}
	return text[:end] + o.omission, nil
}

// TruncateWords keeps the first words words of text and appends the
// omission when more words follow. Words are split on whitespace unless
// WithBreak sets a separator.
func TruncateWords(text string, words int, opts ...TruncateOption) (string, error) {
	if words <= 0 {
		return "", supporterrors.InvalidArgument("inflect.TruncateWords", "words", words, "must be positive")
	}

	o := buildTruncateOptions(DefaultOmission, opts)
	var seps [][]int
	if o.separator == "" {
		seps = whitespaceRun.FindAllStringIndex(text, -1)
	} else {
		seps = regexp.MustCompile(regexp.QuoteMeta(o.separator)).FindAllStringIndex(text, -1)
	}

	var ends []int
	prev := 0
	for _, loc := range append(seps, []int{len(text), len(text)}) {
		if loc[0] > prev {
			ends = append(ends, loc[0])
		}
		prev = loc[1]
	}
	if len(ends) <= words {
		return text, nil
	}
	return text[:ends[words-1]] + o.omission, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Squish trims text and collapses internal whitespace runs to one space.
func Squish(text string) string {
	return strings.Join(strings.FieldsFunc(text, unicode.IsSpace), " ")
}

// Remove deletes every match of the given patterns.
func Remove(text string, patterns ...*regexp.Regexp) string {
	for _, pattern := range patterns {
		if pattern != nil {
			text = pattern.ReplaceAllLiteralString(text, "")
		}
	}
	return text
}

// RemoveString deletes every occurrence of the given substrings.
func RemoveString(text string, subs ...string) string {
	for _, sub := range subs {
		if sub != "" {
			text = strings.ReplaceAll(text, sub, "")
		}
	}
	return text
}

// At returns the character at pos. Negative positions count from the end.
func At(text string, pos int) string {
	chars := []rune(text)
	if pos < 0 {
		pos += len(chars)
	}
	if pos < 0 || pos >= len(chars) {
		return ""
	}
	return string(chars[pos])
}

// From returns the substring starting at pos.
func From(text string, pos int) string {
	chars := []rune(text)
	if pos < 0 {
		pos += len(chars)
	}
	if pos < 0 || pos > len(chars) {
		return ""
	}
	return string(chars[pos:])
}

// To returns the substring up to and including pos.
func To(text string, pos int) string {
	chars := []rune(text)
	if pos < 0 {
		pos += len(chars)
	}
	if pos < 0 {
		return ""
	}
	return string(chars[:min(pos+1, len(chars))])
}

// First returns the first n characters.
func First(text string, n int) string {
	if n <= 0 {
		return ""
	}
	chars := []rune(text)
	return string(chars[:min(n, len(chars))])
}

// Last returns the last n characters.
func Last(text string, n int) string {
	if n <= 0 {
		return ""
	}
	chars := []rune(text)
	return string(chars[len(chars)-min(n, len(chars)):])
}
