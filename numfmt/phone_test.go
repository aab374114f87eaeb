package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-support/supporterrors"
)

func TestFormatPhone(t *testing.T) {
	us, ok := DefaultDialPlan("en")
	require.True(t, ok)
	fr, ok := DefaultDialPlan("fr-FR")
	require.True(t, ok)

	tests := []struct {
		name string
		raw  string
		spec PhoneSpec
		want string
	}{
		{"punctuated", "(123) 555-1234", PhoneSpec{Delimiter: "-"}, "123-555-1234"},
		{"country code", "1235551234", PhoneSpec{Delimiter: "-", CountryCode: "91"}, "+91-123-555-1234"},
		{"country code already present", "91 123 555 1234", PhoneSpec{Delimiter: "-", CountryCode: "91"}, "+91-123-555-1234"},
		{"dial plan", "555 123 4567", PhoneSpec{Delimiter: " "}.withPlan(us), "+1 555 123 4567"},
		{"dial plan national prefix", "1-555-123-4567", PhoneSpec{Delimiter: " "}.withPlan(us), "+1 555 123 4567"},
		{"french plan", "06 12 34 56 78", PhoneSpec{Delimiter: " "}.withPlan(fr), "+33 6 12 34 56 78"},
		{"area code and extension", "1235551234", PhoneSpec{Delimiter: "-", AreaCode: true, Extension: "1343"}, "(123) 555-1234 x 1343"},
		{"no delimiter", "1235551234", PhoneSpec{}, "1235551234"},
		{"custom groups", "12345678", PhoneSpec{Delimiter: ".", Groups: []int{2, 2, 2, 2}}, "12.34.56.78"},
		{"ignores non positive groups", "12345678", PhoneSpec{Delimiter: ".", Groups: []int{0, 4, -1, 4}}, "1234.5678"},
		{"blank", "  ", PhoneSpec{Delimiter: "-"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatPhone(tt.raw, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FormatPhone("call me", PhoneSpec{})
	assert.ErrorIs(t, err, supporterrors.ErrInvalidArgument)
}

func TestFormatPhoneWithRegion(t *testing.T) {
	got, err := FormatPhone("6502530000", PhoneSpec{Region: "US"})
	require.NoError(t, err)
	assert.Equal(t, "+1 650-253-0000", got)

	got, err = Format(6502530000, NewSpec(Phone, WithRegion("us")))
	require.NoError(t, err)
	assert.Equal(t, "+1 650-253-0000", got)

	got, err = FormatPhone("+44 20 7031 3000", PhoneSpec{Region: "US"})
	require.NoError(t, err)
	assert.Equal(t, "+44 20 7031 3000", got)

	_, err = FormatPhone("not a number", PhoneSpec{Region: "US"})
	assert.ErrorIs(t, err, supporterrors.ErrInvalidArgument)
}

func TestDialPlans(t *testing.T) {
	plan, ok := DefaultDialPlan("es_MX")
	require.True(t, ok)
	assert.Equal(t, "34", plan.CountryCode)

	plan, ok = DefaultDialPlan("en-IN")
	require.True(t, ok)
	assert.Equal(t, "91", plan.CountryCode)

	plan.Groups[0] = 99
	again, _ := DefaultDialPlan("en-IN")
	assert.Equal(t, 5, again.Groups[0], "plans are returned as copies")

	_, ok = DefaultDialPlan("ja")
	assert.False(t, ok)

	assert.Equal(t, "US", RegionForLocale("en_US"))
	assert.Equal(t, "MX", RegionForLocale("es-mx"))
	assert.Equal(t, "", RegionForLocale("en"))
	assert.Equal(t, "", RegionForLocale("%%"))
}
