package numfmt

import "github.com/goliatone/go-support/internal/localeutil"

// Conventions are the number formatting conventions of a locale.
type Conventions struct {
	Locale         string
	Delimiter      string
	Separator      string
	CurrencyUnit   string
	CurrencyFormat string
	NegativeFormat string
	DialPlan       DialPlan
}

var localeConventions = map[string]Conventions{
	"en": {
		Locale:         "en",
		Delimiter:      ",",
		Separator:      ".",
		CurrencyUnit:   "$",
		CurrencyFormat: "%u%n",
		NegativeFormat: "-%u%n",
	},
	"es": {
		Locale:         "es",
		Delimiter:      ".",
		Separator:      ",",
		CurrencyUnit:   "€",
		CurrencyFormat: "%n %u",
		NegativeFormat: "-%n %u",
	},
	"de": {
		Locale:         "de",
		Delimiter:      ".",
		Separator:      ",",
		CurrencyUnit:   "€",
		CurrencyFormat: "%n %u",
		NegativeFormat: "-%n %u",
	},
	"fr": {
		Locale:         "fr",
		Delimiter:      " ",
		Separator:      ",",
		CurrencyUnit:   "€",
		CurrencyFormat: "%n %u",
		NegativeFormat: "-%n %u",
	},
	"en-GB": {
		Locale:         "en-GB",
		Delimiter:      ",",
		Separator:      ".",
		CurrencyUnit:   "£",
		CurrencyFormat: "%u%n",
		NegativeFormat: "-%u%n",
	},
}

// LocaleConventions returns the conventions for locale, trying its parent
// locales before falling back to English.
func LocaleConventions(locale string) Conventions {
	conv := localeConventions["en"]
	for _, candidate := range localeutil.Candidates(locale, nil) {
		if found, ok := localeConventions[candidate]; ok {
			conv = found
			break
		}
	}
	if plan, ok := DefaultDialPlan(locale); ok {
		conv.DialPlan = plan
	}
	return conv
}

// LocaleSpec returns the default Spec for mode using the separators of
// locale. Modes without digit grouping by default keep an empty delimiter.
func LocaleSpec(locale string, mode Mode, opts ...SpecOption) Spec {
	conv := LocaleConventions(locale)

	spec := NewSpec(mode)
	spec.Separator = conv.Separator
	switch mode {
	case Delimited:
		spec.Delimiter = conv.Delimiter
	case Currency:
		spec.Delimiter = conv.Delimiter
		spec.Unit = conv.CurrencyUnit
		spec.Format = conv.CurrencyFormat
		spec.NegativeFormat = conv.NegativeFormat
	case Phone:
		if conv.DialPlan.CountryCode != "" {
			spec.Phone = spec.Phone.withPlan(conv.DialPlan)
		}
		if region := RegionForLocale(locale); region != "" {
			spec.Phone.Region = region
		}
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&spec)
		}
	}
	return spec
}
