package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-support/supporterrors"
)

// Format renders number according to spec.
func Format(number float64, spec Spec) (string, error) {
	const op = "numfmt.Format"

	if math.IsNaN(number) || math.IsInf(number, 0) {
		return "", supporterrors.InvalidArgument(op, "number", number, "must be finite")
	}
	if err := spec.validate(op); err != nil {
		return "", err
	}

	switch spec.Mode {
	case Delimited:
		return formatDelimited(number, spec), nil
	case Rounded:
		return formatRounded(number, spec), nil
	case Percentage:
		return formatPercentage(number, spec), nil
	case Currency:
		return formatCurrency(number, spec)
	case HumanSize:
		return formatHumanSize(number, spec), nil
	case HumanCount:
		return formatHumanCount(number, spec), nil
	case Phone:
		return formatPhoneNumber(number, spec)
	}
	return "", supporterrors.InvalidArgument(op, "mode", int(spec.Mode), "unknown mode")
}

// MustFormat is like Format but panics on error.
func MustFormat(number float64, spec Spec) string {
	out, err := Format(number, spec)
	if err != nil {
		panic(err)
	}
	return out
}

// Delimit groups the digits of an already rendered number such as
// "-1234567.89" by thousands.
func Delimit(number, delimiter, separator string) string {
	sign := ""
	if strings.HasPrefix(number, "-") {
		sign, number = "-", number[1:]
	}
	integer, fraction, hasFraction := strings.Cut(number, ".")
	out := sign + groupThousands(integer, delimiter)
	if hasFraction {
		out += separator + fraction
	}
	return out
}

func formatDelimited(number float64, spec Spec) string {
	return Delimit(strconv.FormatFloat(number, 'f', -1, 64), spec.Delimiter, spec.Separator)
}

func formatRounded(number float64, spec Spec) string {
	out := round(newDecimal(number), spec)
	if number < 0 && !isZeroString(out) {
		return "-" + out
	}
	return out
}

func formatPercentage(number float64, spec Spec) string {
	return applyFormat(spec.Format, formatRounded(number, spec), spec.Unit)
}

// round renders d per the precision, grouping and zero stripping of spec.
func round(d decimal, spec Spec) string {
	places := spec.Precision
	if spec.Significant {
		d = d.roundSignificant(spec.Precision)
		places = max(spec.Precision-d.exp, 0)
		if d.isZero() {
			places = spec.Precision - 1
		}
	} else {
		d = d.roundFraction(spec.Precision)
	}

	integer, fraction := d.parts(places)
	if spec.StripInsignificantZeros {
		fraction = strings.TrimRight(fraction, "0")
	}

	out := groupThousands(integer, spec.Delimiter)
	if fraction != "" {
		out += spec.Separator + fraction
	}
	return out
}

func groupThousands(integer, delimiter string) string {
	if delimiter == "" || len(integer) <= 3 {
		return integer
	}

	var b strings.Builder
	lead := len(integer) % 3
	if lead > 0 {
		b.WriteString(integer[:lead])
	}
	for i := lead; i < len(integer); i += 3 {
		if b.Len() > 0 {
			b.WriteString(delimiter)
		}
		b.WriteString(integer[i : i+3])
	}
	return b.String()
}

func applyFormat(format, number, unit string) string {
	if format == "" {
		format = "%n"
	}
	out := strings.ReplaceAll(format, "%n", number)
	out = strings.ReplaceAll(out, "%u", unit)
	return strings.TrimSpace(out)
}

func isZeroString(s string) bool {
	return !strings.ContainsFunc(s, func(r rune) bool { return r >= '1' && r <= '9' })
}
