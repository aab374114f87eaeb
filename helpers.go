package support

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/goliatone/go-support/calendar"
	"github.com/goliatone/go-support/collections"
	"github.com/goliatone/go-support/inflect"
	"github.com/goliatone/go-support/numfmt"
	"github.com/goliatone/go-support/objects"
	"github.com/goliatone/go-support/supporterrors"
)

// sharedHelpers are the helpers that do not depend on a locale.
func (t *Toolkit) sharedHelpers() map[string]any {
	cal := t.calendar

	return map[string]any{
		// text
		"truncate": func(text string, length any, omission ...string) (string, error) {
			n, err := cast.ToIntE(length)
			if err != nil {
				return "", err
			}
			return inflect.Truncate(text, n, omissionOption(omission)...)
		},
		"truncate_words": func(text string, words any, omission ...string) (string, error) {
			n, err := cast.ToIntE(words)
			if err != nil {
				return "", err
			}
			return inflect.TruncateWords(text, n, omissionOption(omission)...)
		},
		"squish":        inflect.Squish,
		"remove":        inflect.RemoveString,
		"demodulize":    inflect.Demodulize,
		"deconstantize": inflect.Deconstantize,
		"first":         inflect.First,
		"last":          inflect.Last,

		// calendar
		"now":   cal.Now,
		"today": cal.Today,
		"parse_date": func(value any) (time.Time, error) {
			return cal.ParseDate(cast.ToString(value))
		},
		"parse_time": func(value any) (time.Time, error) {
			return cal.ParseTime(cast.ToString(value))
		},
		"beginning_of": func(unit string, at time.Time) (time.Time, error) {
			u, err := calendar.ParseUnit(unit)
			if err != nil {
				return time.Time{}, err
			}
			return cal.BeginningOf(at, u), nil
		},
		"end_of": func(unit string, at time.Time) (time.Time, error) {
			u, err := calendar.ParseUnit(unit)
			if err != nil {
				return time.Time{}, err
			}
			return cal.EndOf(at, u), nil
		},
		"advance": func(amount any, unit string, at time.Time) (time.Time, error) {
			offset, err := offsetOf(amount, unit)
			if err != nil {
				return time.Time{}, err
			}
			return cal.Advance(at, offset)
		},
		"ago": func(amount any, unit string) (time.Time, error) {
			offset, err := offsetOf(amount, unit)
			if err != nil {
				return time.Time{}, err
			}
			return cal.Ago(offset)
		},
		"from_now": func(amount any, unit string) (time.Time, error) {
			offset, err := offsetOf(amount, unit)
			if err != nil {
				return time.Time{}, err
			}
			return cal.FromNow(offset)
		},
		"next_occurrence": func(day string, at time.Time) (time.Time, error) {
			weekday, err := calendar.ParseWeekday(day)
			if err != nil {
				return time.Time{}, err
			}
			return cal.NextOccurrenceOf(at, weekday), nil
		},
		"prev_occurrence": func(day string, at time.Time) (time.Time, error) {
			weekday, err := calendar.ParseWeekday(day)
			if err != nil {
				return time.Time{}, err
			}
			return cal.PrevOccurrenceOf(at, weekday), nil
		},
		"format_time": func(layout string, at time.Time) string {
			return at.Format(layout)
		},

		// collections
		"wrap": collections.Wrap,
		"many": func(v any) bool {
			return collections.Many(collections.Wrap(v))
		},
		// short groups are padded with nil so every row has the same length
		"in_groups_of": func(size any, v any) ([][]any, error) {
			n, err := cast.ToIntE(size)
			if err != nil {
				return nil, err
			}
			return collections.InGroupsOf(collections.Wrap(v), n, collections.WithFill[any](nil))
		},
		"in_groups": func(count any, v any) ([][]any, error) {
			n, err := cast.ToIntE(count)
			if err != nil {
				return nil, err
			}
			return collections.InGroups(collections.Wrap(v), n, collections.WithFill[any](nil))
		},

		// objects
		"blank":    objects.Blank,
		"present":  objects.Present,
		"presence": presence,
		"to_param": objects.ToParam,
		"to_query": objects.ToQuery,

		// numbers
		"bytes": func(amount any, unit string) (int64, error) {
			n, err := cast.ToFloat64E(amount)
			if err != nil {
				return 0, err
			}
			return bytesOf(n, unit)
		},
	}
}

// localeHelpers are the helpers bound to locale.
func (t *Toolkit) localeHelpers(locale string) map[string]any {
	in := t.inflections.Inflector(locale)

	number := func(mode numfmt.Mode, opts ...numfmt.SpecOption) func(any) (string, error) {
		return func(v any) (string, error) {
			n, err := cast.ToFloat64E(v)
			if err != nil {
				return "", err
			}
			return numfmt.Format(n, numfmt.LocaleSpec(locale, mode, opts...))
		}
	}
	withPrecision := func(mode numfmt.Mode) func(any, any) (string, error) {
		return func(v, precision any) (string, error) {
			p, err := cast.ToIntE(precision)
			if err != nil {
				return "", err
			}
			return number(mode, numfmt.WithPrecision(p))(v)
		}
	}

	return map[string]any{
		"locale": func() string { return locale },

		// inflections
		"pluralize":   in.Pluralize,
		"singularize": in.Singularize,
		"pluralize_count": func(count any, word string) (string, error) {
			n, err := cast.ToIntE(count)
			if err != nil {
				return "", err
			}
			if n == 1 {
				return fmt.Sprintf("%d %s", n, in.Singularize(word)), nil
			}
			return fmt.Sprintf("%d %s", n, in.Pluralize(word)), nil
		},
		"camelize":       func(term string) string { return in.Camelize(term, true) },
		"camelize_lower": func(term string) string { return in.Camelize(term, false) },
		"underscore":     in.Underscore,
		"humanize":       func(word string) string { return in.Humanize(word) },
		"titleize":       in.Titleize,
		"dasherize":      in.Dasherize,
		"tableize":       in.Tableize,
		"classify":       in.Classify,
		"foreign_key":    func(class string) string { return in.ForeignKey(class, true) },
		"parameterize":   func(phrase string) string { return in.Parameterize(phrase) },
		"ordinal": func(n any) (string, error) {
			i, err := cast.ToIntE(n)
			if err != nil {
				return "", err
			}
			return in.Ordinal(i), nil
		},
		"ordinalize": func(n any) (string, error) {
			i, err := cast.ToIntE(n)
			if err != nil {
				return "", err
			}
			return in.Ordinalize(i), nil
		},

		// collections
		"to_sentence": func(v any) string {
			items := collections.Wrap(v)
			words := make([]string, len(items))
			for i, item := range items {
				words[i] = collections.KeyString(item)
			}
			return collections.ToSentence(words, collections.WithLocale(locale))
		},

		// numbers
		"number_with_delimiter":   number(numfmt.Delimited),
		"number_with_precision":   withPrecision(numfmt.Rounded),
		"number_to_percentage":    withPrecision(numfmt.Percentage),
		"number_to_currency":      number(numfmt.Currency),
		"number_to_human_size":    number(numfmt.HumanSize),
		"number_to_human":         number(numfmt.HumanCount),
		"number_to_currency_code": currencyCode(locale),
		"number_to_phone": func(v any) (string, error) {
			return numfmt.FormatPhone(collections.KeyString(v), numfmt.LocaleSpec(locale, numfmt.Phone).Phone)
		},
	}
}

func currencyCode(locale string) func(any, string) (string, error) {
	return func(v any, code string) (string, error) {
		n, err := cast.ToFloat64E(v)
		if err != nil {
			return "", err
		}
		return numfmt.Format(n, numfmt.LocaleSpec(locale, numfmt.Currency, numfmt.WithCurrencyCode(code)))
	}
}

func omissionOption(omission []string) []inflect.TruncateOption {
	if len(omission) == 0 {
		return nil
	}
	return []inflect.TruncateOption{inflect.WithOmission(omission[0])}
}

func presence(v any) any {
	if p, ok := objects.Presence(v); ok {
		return p
	}
	return nil
}

// offsetOf builds a calendar offset from an amount and a unit name such as
// "days" or "hour".
func offsetOf(amount any, unit string) (calendar.Offset, error) {
	const op = "support.offsetOf"

	key := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(unit)), "s")
	switch key {
	case "hour", "minute", "second":
		f, err := cast.ToFloat64E(amount)
		if err != nil {
			return calendar.Offset{}, supporterrors.InvalidArgument(op, "amount", amount, "not a number").WithCause(err)
		}
		switch key {
		case "hour":
			return calendar.Hours(f), nil
		case "minute":
			return calendar.Minutes(f), nil
		default:
			return calendar.Seconds(f), nil
		}
	case "year", "month", "week", "day":
		n, err := cast.ToIntE(amount)
		if err != nil {
			return calendar.Offset{}, supporterrors.InvalidArgument(op, "amount", amount, "not an integer").WithCause(err)
		}
		switch key {
		case "year":
			return calendar.Years(n), nil
		case "month":
			return calendar.Months(n), nil
		case "week":
			return calendar.Weeks(n), nil
		default:
			return calendar.Days(n), nil
		}
	}
	return calendar.Offset{}, supporterrors.InvalidArgument(op, "unit", unit, "unknown unit")
}

func bytesOf(n float64, unit string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "kb", "kilobyte", "kilobytes":
		return numfmt.Kilobytes(n)
	case "mb", "megabyte", "megabytes":
		return numfmt.Megabytes(n)
	case "gb", "gigabyte", "gigabytes":
		return numfmt.Gigabytes(n)
	case "tb", "terabyte", "terabytes":
		return numfmt.Terabytes(n)
	case "pb", "petabyte", "petabytes":
		return numfmt.Petabytes(n)
	case "eb", "exabyte", "exabytes":
		return numfmt.Exabytes(n)
	}
	return 0, supporterrors.InvalidArgument("support.bytes", "unit", unit, "unknown unit")
}
