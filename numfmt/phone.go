package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"

	"github.com/goliatone/go-support/internal/localeutil"
	"github.com/goliatone/go-support/supporterrors"
)

// DialPlan describes how national numbers are grouped for a country.
// CountryCode is digits without the leading plus sign and NationalPrefix is
// stripped when present.
type DialPlan struct {
	CountryCode    string
	NationalPrefix string
	Groups         []int
}

var defaultDialPlans = map[string]DialPlan{
	"en":    {CountryCode: "1", NationalPrefix: "1", Groups: []int{3, 3, 4}},
	"es":    {CountryCode: "34", Groups: []int{3, 3, 3}},
	"fr":    {CountryCode: "33", NationalPrefix: "0", Groups: []int{1, 2, 2, 2, 2}},
	"de":    {CountryCode: "49", NationalPrefix: "0", Groups: []int{3, 4, 4}},
	"hi":    {CountryCode: "91", NationalPrefix: "0", Groups: []int{5, 5}},
	"en-IN": {CountryCode: "91", NationalPrefix: "0", Groups: []int{5, 5}},
}

// DefaultDialPlan returns the built-in plan for locale or its nearest
// parent, e.g. "es-MX" uses the "es" plan.
func DefaultDialPlan(locale string) (DialPlan, bool) {
	for _, candidate := range localeutil.Candidates(locale, nil) {
		if plan, ok := defaultDialPlans[candidate]; ok {
			plan.Groups = append([]int(nil), plan.Groups...)
			return plan, true
		}
	}
	return DialPlan{}, false
}

// RegionForLocale returns the upper-case region subtag of locale, e.g.
// "US" for "en_US", or "" when the locale names no region.
func RegionForLocale(locale string) string {
	tag, err := language.Parse(localeutil.Normalize(locale))
	if err != nil {
		return ""
	}
	region, conf := tag.Region()
	if conf != language.Exact {
		return ""
	}
	return strings.ToUpper(region.String())
}

// PhoneSpec configures phone formatting. Without Groups the digits are
// grouped 3-3-4 from the right with any extra leading digits kept in the
// first group. Region switches to libphonenumber international formatting.
type PhoneSpec struct {
	Delimiter      string
	CountryCode    string
	NationalPrefix string
	AreaCode       bool
	Extension      string
	Groups         []int
	Region         string
}

var defaultPhoneGroups = []int{3, 3, 4}

func (p PhoneSpec) withPlan(plan DialPlan) PhoneSpec {
	p.CountryCode = strings.TrimSpace(plan.CountryCode)
	p.NationalPrefix = strings.TrimSpace(plan.NationalPrefix)
	p.Groups = normalizeGroups(plan.Groups)
	return p
}

// FormatPhone formats the digits found in raw. Blank input returns "".
func FormatPhone(raw string, spec PhoneSpec) (string, error) {
	const op = "numfmt.FormatPhone"

	value := strings.TrimSpace(raw)
	if value == "" {
		return "", nil
	}
	if spec.Region != "" {
		return formatWithRegion(op, value, spec)
	}

	digits := extractDigits(value)
	if digits == "" {
		return "", supporterrors.InvalidArgument(op, "raw", raw, "contains no digits")
	}

	groups := normalizeGroups(spec.Groups)
	if len(groups) == 0 {
		groups = defaultPhoneGroups
	}
	national := nationalNumber(digits, spec, sum(groups))
	parts := splitGroups(national, groups)

	var b strings.Builder
	if spec.CountryCode != "" {
		b.WriteString("+" + spec.CountryCode + spec.Delimiter)
	}
	if spec.AreaCode && len(parts) > 2 {
		b.WriteString("(" + parts[0] + ") ")
		parts = parts[1:]
	}
	b.WriteString(strings.Join(parts, spec.Delimiter))
	if spec.Extension != "" {
		b.WriteString(" x " + spec.Extension)
	}
	return b.String(), nil
}

func formatPhoneNumber(number float64, spec Spec) (string, error) {
	if number < 0 {
		return "", supporterrors.InvalidArgument("numfmt.Format", "number", number, "phone numbers cannot be negative")
	}
	return FormatPhone(strconv.FormatFloat(math.Trunc(number), 'f', 0, 64), spec.Phone)
}

func formatWithRegion(op, value string, spec PhoneSpec) (string, error) {
	number, err := phonenumbers.Parse(value, spec.Region)
	if err != nil {
		return "", supporterrors.InvalidArgument(op, "raw", value, "not a phone number for region "+spec.Region).WithCause(err)
	}
	if !phonenumbers.IsPossibleNumber(number) && !phonenumbers.IsValidNumber(number) {
		return "", supporterrors.InvalidArgument(op, "raw", value, "not a possible number for region "+spec.Region)
	}

	formatted := phonenumbers.Format(number, phonenumbers.INTERNATIONAL)
	if spec.Extension != "" && number.GetExtension() == "" {
		formatted += " x " + spec.Extension
	}
	return formatted, nil
}

// nationalNumber drops a leading country code and national prefix when the
// remaining digits still fill every group.
func nationalNumber(digits string, spec PhoneSpec, total int) string {
	if cc := spec.CountryCode; cc != "" && strings.HasPrefix(digits, cc) && len(digits) >= len(cc)+total {
		digits = digits[len(cc):]
	}
	if np := spec.NationalPrefix; np != "" && strings.HasPrefix(digits, np) && len(digits) > total {
		digits = digits[len(np):]
	}
	return digits
}

// splitGroups cuts digits from the right; the first group absorbs any
// surplus and missing leading groups are dropped.
func splitGroups(digits string, groups []int) []string {
	parts := make([]string, 0, len(groups))
	end := len(digits)
	for i := len(groups) - 1; i >= 0 && end > 0; i-- {
		start := max(end-groups[i], 0)
		if i == 0 {
			start = 0
		}
		parts = append(parts, digits[start:end])
		end = start
	}

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return parts
}

func normalizeGroups(groups []int) []int {
	if len(groups) == 0 {
		return nil
	}
	result := make([]int, 0, len(groups))
	for _, g := range groups {
		if g > 0 {
			result = append(result, g)
		}
	}
	return result
}

func extractDigits(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
