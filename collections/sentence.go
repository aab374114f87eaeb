package collections

import (
	"strings"

	"github.com/goliatone/go-support/internal/localeutil"
)

// Connectors join the items of a sentence.
type Connectors struct {
	Words    string
	TwoWords string
	LastWord string
}

// SentenceOption adjusts the connectors used by ToSentence.
type SentenceOption func(*Connectors)

var sentenceConnectors = map[string]Connectors{
	"en": {Words: ", ", TwoWords: " and ", LastWord: ", and "},
	"es": {Words: ", ", TwoWords: " y ", LastWord: " y "},
	"fr": {Words: ", ", TwoWords: " et ", LastWord: " et "},
	"de": {Words: ", ", TwoWords: " und ", LastWord: " und "},
}

// LocaleConnectors returns the connectors for locale or its parents,
// defaulting to English.
func LocaleConnectors(locale string) Connectors {
	for _, candidate := range localeutil.Candidates(strings.ToLower(locale), nil) {
		if c, ok := sentenceConnectors[candidate]; ok {
			return c
		}
	}
	return sentenceConnectors["en"]
}

func WithWordsConnector(s string) SentenceOption {
	return func(c *Connectors) { c.Words = s }
}

func WithTwoWordsConnector(s string) SentenceOption {
	return func(c *Connectors) { c.TwoWords = s }
}

func WithLastWordConnector(s string) SentenceOption {
	return func(c *Connectors) { c.LastWord = s }
}

// WithLocale switches to the connectors of locale. Options given after it
// still override individual connectors.
func WithLocale(locale string) SentenceOption {
	return func(c *Connectors) { *c = LocaleConnectors(locale) }
}

// ToSentence joins items into a readable list, e.g. "a, b, and c".
func ToSentence(items []string, opts ...SentenceOption) string {
	c := sentenceConnectors["en"]
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + c.TwoWords + items[1]
	default:
		last := len(items) - 1
		return strings.Join(items[:last], c.Words) + c.LastWord + items[last]
	}
}
