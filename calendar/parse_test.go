package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-support/supporterrors"
)

func TestParseDate(t *testing.T) {
	cal := newTestCalendar(t)
	want := at(2023, time.June, 21, 0, 0, 0)

	for _, input := range []string{
		"2023-06-21",
		" 2023/06/21 ",
		"21 Jun 2023",
		"Jun 21, 2023",
		"June 21, 2023",
		"2023-06-21T18:05:55+05:30",
		"2023-06-21 09:30",
	} {
		t.Run(input, func(t *testing.T) {
			got, err := cal.ParseDate(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := cal.ParseDate("next tuesday")
	assert.ErrorIs(t, err, supporterrors.ErrInvalidArgument)
	_, err = cal.ParseDate("2023-02-30")
	assert.ErrorIs(t, err, supporterrors.ErrInvalidArgument)
}

func TestParseTime(t *testing.T) {
	cal := newTestCalendar(t)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"2023-06-21T18:05:55Z", time.Date(2023, time.June, 21, 18, 5, 55, 0, time.UTC)},
		{"2023-06-21 18:05:55 +0700", time.Date(2023, time.June, 21, 18, 5, 55, 0, time.FixedZone("", 7*3600))},
		{"2023-06-21 18:05:55.25", time.Date(2023, time.June, 21, 18, 5, 55, 250000000, ist)},
		{"2023-06-21 18:05", at(2023, time.June, 21, 18, 5, 0)},
		{"2023-06-21", at(2023, time.June, 21, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := cal.ParseTime(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	zoneless, err := cal.ParseTime("2023-06-21 18:05")
	require.NoError(t, err)
	assert.Equal(t, ist, zoneless.Location())

	_, err = cal.ParseTime("")
	assert.ErrorIs(t, err, supporterrors.ErrInvalidArgument)
}
