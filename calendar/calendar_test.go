package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-support/supporterrors"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func at(y int, m time.Month, d, h, mi, s int) time.Time {
	return time.Date(y, m, d, h, mi, s, 0, ist)
}

func endOf(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, 999999999, ist)
}

func newTestCalendar(t *testing.T, opts ...Option) *Calendar {
	t.Helper()
	cal, err := New(append([]Option{WithLocation(ist)}, opts...)...)
	require.NoError(t, err)
	return cal
}

func TestBeginningAndEndOf(t *testing.T) {
	cal := newTestCalendar(t)
	d := at(2023, time.June, 21, 14, 30, 0)

	tests := []struct {
		unit  Unit
		start time.Time
		end   time.Time
	}{
		{Day, at(2023, time.June, 21, 0, 0, 0), endOf(2023, time.June, 21)},
		{Week, at(2023, time.June, 19, 0, 0, 0), endOf(2023, time.June, 25)},
		{Month, at(2023, time.June, 1, 0, 0, 0), endOf(2023, time.June, 30)},
		{Quarter, at(2023, time.April, 1, 0, 0, 0), endOf(2023, time.June, 30)},
		{Year, at(2023, time.January, 1, 0, 0, 0), endOf(2023, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			assert.True(t, tt.start.Equal(cal.BeginningOf(d, tt.unit)), "beginning: %s", cal.BeginningOf(d, tt.unit))
			assert.True(t, tt.end.Equal(cal.EndOf(d, tt.unit)), "end: %s", cal.EndOf(d, tt.unit))
		})
	}
}

func TestBoundariesPanicOnUnknownUnit(t *testing.T) {
	cal := newTestCalendar(t)
	d := time.Date(2023, time.June, 21, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{name: "beginning", fn: func() { cal.BeginningOf(d, Unit(42)) }, want: "calendar.BeginningOf: invalid argument unit=42: unknown unit"},
		{name: "end", fn: func() { cal.EndOf(d, Unit(42)) }, want: "calendar.EndOf: invalid argument unit=42: unknown unit"},
		{name: "all", fn: func() { cal.AllOf(d, Unit(-1)) }, want: "calendar.BeginningOf: invalid argument unit=-1: unknown unit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithError(t, tt.want, tt.fn)
		})
	}
}

func TestAllOf(t *testing.T) {
	cal := newTestCalendar(t)
	sunday := at(2010, time.March, 28, 1, 59, 59)

	tests := []struct {
		name   string
		cal    *Calendar
		unit   Unit
		period Period
	}{
		{"day", cal, Day, Period{at(2010, time.March, 28, 0, 0, 0), endOf(2010, time.March, 28)}},
		{"week", cal, Week, Period{at(2010, time.March, 22, 0, 0, 0), endOf(2010, time.March, 28)}},
		{"week from wednesday", cal.StartingOn(time.Wednesday), Week, Period{at(2010, time.March, 24, 0, 0, 0), endOf(2010, time.March, 30)}},
		{"month", cal, Month, Period{at(2010, time.March, 1, 0, 0, 0), endOf(2010, time.March, 31)}},
		{"quarter", cal, Quarter, Period{at(2010, time.January, 1, 0, 0, 0), endOf(2010, time.March, 31)}},
		{"year", cal, Year, Period{at(2010, time.January, 1, 0, 0, 0), endOf(2010, time.December, 31)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cal.AllOf(sunday, tt.unit)
			assert.True(t, tt.period.Start.Equal(got.Start), "start: %s", got)
			assert.True(t, tt.period.End.Equal(got.End), "end: %s", got)
		})
	}

	assert.Equal(t, time.Monday, cal.WeekStart(), "StartingOn must not modify the receiver")
}

func TestMonthBoundsEnclosePoint(t *testing.T) {
	cal := newTestCalendar(t)
	for p := at(2024, time.January, 1, 13, 7, 0); p.Year() == 2024; p = p.AddDate(0, 0, 1) {
		begin, end := cal.BeginningOf(p, Month), cal.EndOf(p, Month)
		require.False(t, p.Before(begin), p)
		require.False(t, p.After(end), p)
		for _, unit := range []Unit{Day, Week, Quarter, Year} {
			require.True(t, cal.AllOf(p, unit).Includes(p), "%s %s", unit, p)
		}
	}
}

func TestOccurrences(t *testing.T) {
	cal := newTestCalendar(t)
	wednesday := at(2023, time.June, 21, 9, 15, 0)

	assert.Equal(t, at(2023, time.June, 28, 9, 15, 0), cal.NextOccurrenceOf(wednesday, time.Wednesday))
	assert.Equal(t, at(2023, time.June, 23, 9, 15, 0), cal.NextOccurrenceOf(wednesday, time.Friday))
	assert.Equal(t, at(2023, time.June, 19, 9, 15, 0), cal.PrevOccurrenceOf(wednesday, time.Monday))
	assert.Equal(t, at(2023, time.June, 14, 9, 15, 0), cal.PrevOccurrenceOf(wednesday, time.Wednesday))
}

func TestNavigation(t *testing.T) {
	cal := newTestCalendar(t)

	d := at(2023, time.June, 21, 0, 0, 0)
	assert.Equal(t, at(2023, time.June, 26, 0, 0, 0), cal.NextWeek(d))
	assert.Equal(t, at(2023, time.June, 28, 0, 0, 0), cal.NextWeekOn(d, time.Wednesday))
	assert.Equal(t, at(2023, time.June, 12, 0, 0, 0), cal.PrevWeek(d))
	assert.Equal(t, at(2023, time.June, 16, 0, 0, 0), cal.PrevWeekOn(d, time.Friday))

	tm := at(2010, time.March, 28, 1, 59, 59)
	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"prev day", cal.PrevDay(tm), at(2010, time.March, 27, 1, 59, 59)},
		{"prev month", cal.PrevMonth(tm), at(2010, time.February, 28, 1, 59, 59)},
		{"prev year", cal.PrevYear(tm), at(2009, time.March, 28, 1, 59, 59)},
		{"prev week", cal.PrevWeek(tm), at(2010, time.March, 15, 0, 0, 0)},
		{"prev quarter", cal.PrevQuarter(tm), at(2009, time.December, 28, 1, 59, 59)},
		{"next day", cal.NextDay(tm), at(2010, time.March, 29, 1, 59, 59)},
		{"next month", cal.NextMonth(tm), at(2010, time.April, 28, 1, 59, 59)},
		{"next year", cal.NextYear(tm), at(2011, time.March, 28, 1, 59, 59)},
		{"next week", cal.NextWeek(tm), at(2010, time.March, 29, 0, 0, 0)},
		{"next quarter", cal.NextQuarter(tm), at(2010, time.June, 28, 1, 59, 59)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	assert.Equal(t, at(2010, time.February, 28, 8, 0, 0), cal.PrevMonth(at(2010, time.March, 31, 8, 0, 0)))
	assert.Equal(t, at(2025, time.February, 28, 8, 0, 0), cal.NextYear(at(2024, time.February, 29, 8, 0, 0)))
}

func TestClockAndLocation(t *testing.T) {
	fixed := time.Date(2023, time.June, 20, 12, 35, 55, 0, time.UTC)
	cal := newTestCalendar(t, WithClock(FixedClock{At: fixed}))

	now := cal.Now()
	assert.True(t, fixed.Equal(now))
	assert.Equal(t, ist, now.Location())
	assert.Equal(t, at(2023, time.June, 20, 0, 0, 0), cal.Today())
	assert.Equal(t, ist, cal.Location())

	calls := 0
	counting := newTestCalendar(t, WithClock(ClockFunc(func() time.Time {
		calls++
		return fixed
	})))
	counting.Today()
	assert.Equal(t, 1, calls)
}

func TestOptions(t *testing.T) {
	cal, err := New()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, cal.WeekStart())
	assert.Equal(t, time.Local, cal.Location())

	sunday, err := New(WithWeekStart(time.Sunday))
	require.NoError(t, err)
	assert.Equal(t, at(2023, time.June, 18, 0, 0, 0), sunday.BeginningOf(at(2023, time.June, 21, 5, 0, 0), Week))

	_, err = New(WithWeekStart(time.Weekday(7)))
	assert.ErrorIs(t, err, supporterrors.ErrInvalidArgument)
	_, err = New(WithClock(nil))
	assert.ErrorIs(t, err, supporterrors.ErrInvalidArgument)
	_, err = New(WithLocation(nil))
	assert.ErrorIs(t, err, supporterrors.ErrInvalidArgument)

	assert.Panics(t, func() { MustNew(WithClock(nil)) })
	assert.Equal(t, time.Tuesday, MustNew().StartingOn(time.Weekday(9)).WeekStart())
}

func TestParseUnitAndWeekday(t *testing.T) {
	unit, err := ParseUnit(" Week ")
	require.NoError(t, err)
	assert.Equal(t, Week, unit)

	_, err = ParseUnit("fortnight")
	assert.ErrorIs(t, err, supporterrors.ErrInvalidArgument)
	assert.Equal(t, "unknown", Unit(42).String())

	day, err := ParseWeekday("wed")
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, day)

	day, err = ParseWeekday("Sunday")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, day)

	_, err = ParseWeekday("xyz")
	assert.ErrorIs(t, err, supporterrors.ErrInvalidArgument)
}
