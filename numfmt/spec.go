package numfmt

import (
	"strings"

	"github.com/goliatone/go-support/supporterrors"
)

// Mode selects how Format renders a number.
type Mode int

const (
	Delimited Mode = iota + 1
	Rounded
	Percentage
	Currency
	HumanSize
	HumanCount
	Phone
)

var modeNames = map[Mode]string{
	Delimited:  "delimited",
	Rounded:    "rounded",
	Percentage: "percentage",
	Currency:   "currency",
	HumanSize:  "human_size",
	HumanCount: "human",
	Phone:      "phone",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode accepts the mode names returned by Mode.String; "human_count"
// is accepted as an alias of "human".
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "human_count" {
		return HumanCount, nil
	}
	for mode, modeName := range modeNames {
		if modeName == key {
			return mode, nil
		}
	}
	return 0, supporterrors.InvalidArgument("numfmt.ParseMode", "name", name, "unknown mode")
}

// Spec configures a single Format call. Build one with NewSpec to start
// from the mode's defaults; Format uses the fields exactly as given.
//
// Format and NegativeFormat are templates where %n is the number and %u
// the unit.
type Spec struct {
	Mode                    Mode
	Precision               int
	Significant             bool
	StripInsignificantZeros bool
	Delimiter               string
	Separator               string
	Unit                    string
	CurrencyCode            string
	Format                  string
	NegativeFormat          string
	Units                   []string
	Phone                   PhoneSpec
}

// SpecOption adjusts a Spec built by NewSpec.
type SpecOption func(*Spec)

var (
	// StorageUnits are the HumanSize units, one per power of 1024.
	StorageUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB"}

	// CountUnits are the HumanCount units, one per power of 1000.
	CountUnits = []string{"", "Thousand", "Million", "Billion", "Trillion", "Quadrillion"}
)

// NewSpec returns the default Spec for mode with opts applied.
func NewSpec(mode Mode, opts ...SpecOption) Spec {
	spec := Spec{Mode: mode, Separator: ".", Precision: 3}

	switch mode {
	case Delimited:
		spec.Delimiter = ","
	case Percentage:
		spec.Format = "%n%"
	case Currency:
		spec.Precision = 2
		spec.Delimiter = ","
		spec.Unit = "$"
		spec.Format = "%u%n"
		spec.NegativeFormat = "-%u%n"
	case HumanSize:
		spec.Significant = true
		spec.StripInsignificantZeros = true
		spec.Format = "%n %u"
		spec.Units = StorageUnits
	case HumanCount:
		spec.Significant = true
		spec.StripInsignificantZeros = true
		spec.Format = "%n %u"
		spec.Units = CountUnits
	case Phone:
		spec.Phone = PhoneSpec{Delimiter: "-"}
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&spec)
		}
	}
	return spec
}

func WithPrecision(precision int) SpecOption {
	return func(s *Spec) { s.Precision = precision }
}

// WithSignificant counts precision in significant digits instead of
// fraction digits.
func WithSignificant(significant bool) SpecOption {
	return func(s *Spec) { s.Significant = significant }
}

func WithStripInsignificantZeros(strip bool) SpecOption {
	return func(s *Spec) { s.StripInsignificantZeros = strip }
}

func WithDelimiter(delimiter string) SpecOption {
	return func(s *Spec) {
		s.Delimiter = delimiter
		s.Phone.Delimiter = delimiter
	}
}

func WithSeparator(separator string) SpecOption {
	return func(s *Spec) { s.Separator = separator }
}

func WithUnit(unit string) SpecOption {
	return func(s *Spec) { s.Unit = unit }
}

// WithCurrencyCode resolves the unit from an ISO 4217 code when formatting.
func WithCurrencyCode(code string) SpecOption {
	return func(s *Spec) { s.CurrencyCode = strings.ToUpper(strings.TrimSpace(code)) }
}

// WithFormat sets the positive template and, when given, the negative one.
func WithFormat(format string, negative ...string) SpecOption {
	return func(s *Spec) {
		s.Format = format
		if len(negative) > 0 {
			s.NegativeFormat = negative[0]
		}
	}
}

func WithUnits(units ...string) SpecOption {
	return func(s *Spec) { s.Units = append([]string(nil), units...) }
}

func WithPhone(phone PhoneSpec) SpecOption {
	return func(s *Spec) { s.Phone = phone }
}

func WithCountryCode(code string) SpecOption {
	return func(s *Spec) { s.Phone.CountryCode = strings.TrimPrefix(strings.TrimSpace(code), "+") }
}

func WithAreaCode() SpecOption {
	return func(s *Spec) { s.Phone.AreaCode = true }
}

func WithExtension(extension string) SpecOption {
	return func(s *Spec) { s.Phone.Extension = strings.TrimSpace(extension) }
}

// WithDialPlan groups phone digits by plan and prefixes its country code.
func WithDialPlan(plan DialPlan) SpecOption {
	return func(s *Spec) { s.Phone = s.Phone.withPlan(plan) }
}

// WithRegion formats phone numbers through libphonenumber for an ISO
// 3166-1 region such as "US".
func WithRegion(region string) SpecOption {
	return func(s *Spec) { s.Phone.Region = strings.ToUpper(strings.TrimSpace(region)) }
}

func (s Spec) validate(op string) error {
	switch {
	case s.Mode.String() == "unknown":
		return supporterrors.InvalidArgument(op, "mode", int(s.Mode), "unknown mode")
	case s.Precision < 0:
		return supporterrors.InvalidArgument(op, "precision", s.Precision, "must not be negative")
	case s.Significant && s.Precision == 0:
		return supporterrors.InvalidArgument(op, "precision", s.Precision, "significant digits need a positive precision")
	}
	return nil
}
