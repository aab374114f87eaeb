package numfmt

import (
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/goliatone/go-support/supporterrors"
)

// CurrencySymbol returns the English symbol of an ISO 4217 code, e.g. "€"
// for "EUR". Codes without a symbol return the code itself.
func CurrencySymbol(code string) (string, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", supporterrors.InvalidArgument("numfmt.CurrencySymbol", "code", code, "not an ISO 4217 currency").WithCause(err)
	}

	printed := message.NewPrinter(language.English).Sprint(currency.Symbol(unit.Amount(0)))
	symbol := strings.TrimRightFunc(printed, func(r rune) bool {
		return unicode.IsDigit(r) || unicode.IsSpace(r) || r == '.' || r == ','
	})
	if symbol == "" {
		return unit.String(), nil
	}
	return symbol, nil
}

func formatCurrency(number float64, spec Spec) (string, error) {
	unit := spec.Unit
	if spec.CurrencyCode != "" {
		symbol, err := CurrencySymbol(spec.CurrencyCode)
		if err != nil {
			return "", err
		}
		unit = symbol
	}

	format := spec.Format
	amount := round(newDecimal(number), spec)
	if number < 0 && !isZeroString(amount) {
		format = spec.NegativeFormat
		if format == "" {
			format = "-" + spec.Format
		}
	}
	return applyFormat(format, amount, unit), nil
}
