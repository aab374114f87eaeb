package calendar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-support/supporterrors"
)

func TestAdvance(t *testing.T) {
	cal := newTestCalendar(t)

	tests := []struct {
		name   string
		from   time.Time
		offset Offset
		want   time.Time
	}{
		{"years weeks days", at(2023, time.June, 21, 0, 0, 0), Offset{Years: 2, Weeks: 4, Days: -2}, at(2025, time.July, 17, 0, 0, 0)},
		{"every unit", at(2023, time.June, 22, 10, 13, 26), Offset{Years: 1, Months: 1, Days: 1, Hours: 1, Minutes: 1, Seconds: 1}, at(2024, time.July, 23, 11, 14, 27)},
		{"clamped back", at(2010, time.March, 28, 0, 0, 0), Months(-1), at(2010, time.February, 28, 0, 0, 0)},
		{"clamped end of month", at(2010, time.March, 31, 0, 0, 0), Months(-1), at(2010, time.February, 28, 0, 0, 0)},
		{"leap february", at(2024, time.January, 31, 12, 0, 0), Months(1), at(2024, time.February, 29, 12, 0, 0)},
		{"leap year", at(2024, time.February, 29, 12, 0, 0), Years(1), at(2025, time.February, 28, 12, 0, 0)},
		{"years then months", at(2024, time.February, 29, 0, 0, 0), Offset{Years: 1, Months: 1}, at(2025, time.March, 28, 0, 0, 0)},
		{"seconds roll the minute", at(2010, time.March, 28, 1, 59, 59), Seconds(1), at(2010, time.March, 28, 2, 0, 0)},
		{"fractional hours", at(2010, time.March, 28, 1, 0, 0), Hours(1.5), at(2010, time.March, 28, 2, 30, 0)},
		{"days across year", at(2023, time.December, 30, 0, 0, 0), Days(3), at(2024, time.January, 2, 0, 0, 0)},
		{"zero", at(2023, time.June, 21, 8, 0, 0), Offset{}, at(2023, time.June, 21, 8, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.Advance(tt.from, tt.offset)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestRewind(t *testing.T) {
	cal := newTestCalendar(t)
	d := at(2023, time.June, 21, 0, 0, 0)

	cases := map[string]struct {
		got  func() (time.Time, error)
		want time.Time
	}{
		"years ago":    {func() (time.Time, error) { return cal.Rewind(d, Years(10)) }, at(2013, time.June, 21, 0, 0, 0)},
		"years since":  {func() (time.Time, error) { return cal.Advance(d, Years(10)) }, at(2033, time.June, 21, 0, 0, 0)},
		"months ago":   {func() (time.Time, error) { return cal.Rewind(d, Months(10)) }, at(2022, time.August, 21, 0, 0, 0)},
		"months since": {func() (time.Time, error) { return cal.Advance(d, Months(10)) }, at(2024, time.April, 21, 0, 0, 0)},
		"weeks ago":    {func() (time.Time, error) { return cal.Rewind(d, Weeks(2)) }, at(2023, time.June, 7, 0, 0, 0)},
		"weeks since":  {func() (time.Time, error) { return cal.Advance(d, Weeks(2)) }, at(2023, time.July, 5, 0, 0, 0)},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.got()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAdvanceMonthRoundTrip(t *testing.T) {
	cal := newTestCalendar(t)

	for p := at(2023, time.January, 1, 6, 30, 0); p.Year() == 2023; p = p.AddDate(0, 0, 1) {
		forward, err := cal.Advance(p, Months(1))
		require.NoError(t, err)
		back, err := cal.Advance(forward, Months(-1))
		require.NoError(t, err)

		if p.Day() <= 28 {
			assert.Equal(t, p, back, "round trip from %s", p)
		}
	}

	// Jan 31 clamps to Feb 28, so the trip back lands on Jan 28.
	jan31 := at(2023, time.January, 31, 0, 0, 0)
	forward, err := cal.Advance(jan31, Months(1))
	require.NoError(t, err)
	assert.Equal(t, at(2023, time.February, 28, 0, 0, 0), forward)
	back, err := cal.Advance(forward, Months(-1))
	require.NoError(t, err)
	assert.Equal(t, at(2023, time.January, 28, 0, 0, 0), back)
	assert.NotEqual(t, jan31, back)
}

func TestAdvanceErrors(t *testing.T) {
	cal := newTestCalendar(t)
	d := at(2023, time.June, 21, 0, 0, 0)

	tests := []struct {
		name   string
		from   time.Time
		offset Offset
	}{
		{"nan hours", d, Hours(math.NaN())},
		{"infinite seconds", d, Seconds(math.Inf(1))},
		{"negative infinite minutes", d, Minutes(math.Inf(-1))},
		{"duration overflow", d, Hours(1e12)},
		{"years out of range", d, Years(10000)},
		{"months out of range", d, Months(-200000)},
		{"days out of range", d, Days(math.MaxInt32)},
		{"past year 9999", time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC), Days(1)},
		{"before year 1", time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC), Days(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cal.Advance(tt.from, tt.offset)
			require.Error(t, err)
			assert.ErrorIs(t, err, supporterrors.ErrInvalidArgument)
		})
	}
}

func TestFromNowAndAgo(t *testing.T) {
	now := at(2023, time.June, 20, 18, 5, 55)
	cal := newTestCalendar(t, WithClock(FixedClock{At: now}))

	tests := []struct {
		name   string
		offset Offset
		want   time.Time
	}{
		{"one day", Days(1), at(2023, time.June, 21, 18, 5, 55)},
		{"two hours", Hours(2), at(2023, time.June, 20, 20, 5, 55)},
		{"ten minutes", Minutes(10), at(2023, time.June, 20, 18, 15, 55)},
		{"three weeks", Weeks(3), at(2023, time.July, 11, 18, 5, 55)},
		{"days plus weeks", Days(4).Plus(Weeks(5)), at(2023, time.July, 29, 18, 5, 55)},
		{"two months", Months(2), at(2023, time.August, 20, 18, 5, 55)},
		{"two years", Years(2), at(2025, time.June, 20, 18, 5, 55)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.FromNow(tt.offset)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	ago, err := cal.Ago(Days(1))
	require.NoError(t, err)
	assert.True(t, at(2023, time.June, 19, 18, 5, 55).Equal(ago))
}

func TestOffsetArithmetic(t *testing.T) {
	o := Years(1).Plus(Months(2)).Plus(Hours(1.5))
	assert.Equal(t, Offset{Years: 1, Months: 2, Hours: 1.5}, o)
	assert.Equal(t, Offset{Years: -1, Months: -2, Hours: -1.5}, o.Negate())
	assert.True(t, Offset{}.IsZero())
	assert.False(t, o.IsZero())
}

func TestChange(t *testing.T) {
	cal := newTestCalendar(t)
	now := time.Date(2023, time.June, 22, 10, 13, 26, 678, ist)

	got, err := cal.Change(now, ToYear(2025), ToOffset(7*3600))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-22 10:13:26 +0700", got.Format("2006-01-02 15:04:05 -0700"))

	got, err = cal.Change(now, ToHour(5))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.June, 22, 5, 0, 0, 0, ist), got)

	got, err = cal.Change(now, ToMinute(30))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.June, 22, 10, 30, 0, 0, ist), got)

	got, err = cal.Change(now, ToHour(5), ToSecond(9))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.June, 22, 5, 0, 9, 0, ist), got)

	got, err = cal.Change(now, ToMonth(time.February), ToDay(28), ToNanosecond(1))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.February, 28, 10, 13, 26, 1, ist), got)

	got, err = cal.Change(now, ToLocation(time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2023-06-22 10:13:26 UTC", got.Format("2006-01-02 15:04:05 MST"))

	invalid := map[string][]ChangeOption{
		"february 30": {ToMonth(time.February), ToDay(30)},
		"month 13":    {ToMonth(13)},
		"hour 24":     {ToHour(24)},
		"minute 60":   {ToMinute(60)},
		"second -1":   {ToSecond(-1)},
		"year 0":      {ToYear(0)},
		"nanosecond":  {ToNanosecond(1e9)},
		"offset":      {ToOffset(20 * 3600)},
	}
	for name, opts := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := cal.Change(now, opts...)
			assert.ErrorIs(t, err, supporterrors.ErrInvalidArgument)
		})
	}
}
