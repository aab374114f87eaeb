package calendar

import (
	"time"

	"github.com/goliatone/go-support/supporterrors"
)

const lastNanosecond = 999999999

// Calendar computes period boundaries and calendar-aware offsets. Week
// boundaries depend on the configured week start. A Calendar is immutable
// and safe for concurrent use.
type Calendar struct {
	weekStart time.Weekday
	clock     Clock
	location  *time.Location
}

// Option configures a Calendar.
type Option func(*Calendar) error

// WithWeekStart sets the first day of the week. Defaults to Monday.
func WithWeekStart(day time.Weekday) Option {
	return func(c *Calendar) error {
		if !validWeekday(day) {
			return supporterrors.InvalidArgument("calendar.WithWeekStart", "day", int(day), "not a weekday")
		}
		c.weekStart = day
		return nil
	}
}

// WithClock sets the source of the current time. Defaults to SystemClock.
func WithClock(clock Clock) Option {
	return func(c *Calendar) error {
		if clock == nil {
			return supporterrors.InvalidArgument("calendar.WithClock", "clock", nil, "must not be nil")
		}
		c.clock = clock
		return nil
	}
}

// WithLocation sets the zone used for Now, Today and parsing. Defaults to
// time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *Calendar) error {
		if loc == nil {
			return supporterrors.InvalidArgument("calendar.WithLocation", "location", nil, "must not be nil")
		}
		c.location = loc
		return nil
	}
}

// New builds a Calendar.
func New(opts ...Option) (*Calendar, error) {
	c := &Calendar{
		weekStart: time.Monday,
		clock:     SystemClock,
		location:  time.Local,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is like New but panics on invalid options.
func MustNew(opts ...Option) *Calendar {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// WeekStart reports the first day of the week.
func (c *Calendar) WeekStart() time.Weekday { return c.weekStart }

// Location reports the calendar's zone.
func (c *Calendar) Location() *time.Location { return c.location }

// StartingOn returns a copy of c whose weeks start on day. Out of range
// days wrap around the week.
func (c *Calendar) StartingOn(day time.Weekday) *Calendar {
	cp := *c
	cp.weekStart = time.Weekday((int(day)%7 + 7) % 7)
	return &cp
}

// Now returns the clock's current instant in the calendar's location.
func (c *Calendar) Now() time.Time {
	return c.clock.Now().In(c.location)
}

// Today returns midnight of the current day.
func (c *Calendar) Today() time.Time {
	return c.BeginningOf(c.Now(), Day)
}

// BeginningOf returns the first instant of the unit containing t, in t's
// location. It panics on an unknown unit.
func (c *Calendar) BeginningOf(t time.Time, unit Unit) time.Time {
	mustBeValid("calendar.BeginningOf", unit)
	y, m, d := t.Date()
	loc := t.Location()

	switch unit {
	case Day:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case Week:
		return time.Date(y, m, d-c.daysIntoWeek(t), 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case Quarter:
		return time.Date(y, quarterStart(m), 1, 0, 0, 0, 0, loc)
	}
	return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
}

// EndOf returns the last nanosecond of the unit containing t, in t's
// location. It panics on an unknown unit.
func (c *Calendar) EndOf(t time.Time, unit Unit) time.Time {
	mustBeValid("calendar.EndOf", unit)
	y, m, d := t.Date()
	loc := t.Location()

	switch unit {
	case Day:
		return endOfDay(y, m, d, loc)
	case Week:
		return endOfDay(y, m, d-c.daysIntoWeek(t)+6, loc)
	case Month:
		return endOfDay(y, m, daysIn(y, m), loc)
	case Quarter:
		last := quarterStart(m) + 2
		return endOfDay(y, last, daysIn(y, last), loc)
	}
	return endOfDay(y, time.December, 31, loc)
}

// AllOf returns the period spanning the unit containing t.
func (c *Calendar) AllOf(t time.Time, unit Unit) Period {
	return Period{Start: c.BeginningOf(t, unit), End: c.EndOf(t, unit)}
}

// NextOccurrenceOf returns the next day strictly after t that falls on day,
// keeping the time of day.
func (c *Calendar) NextOccurrenceOf(t time.Time, day time.Weekday) time.Time {
	ahead := (int(day) - int(t.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return t.AddDate(0, 0, ahead)
}

// PrevOccurrenceOf returns the last day strictly before t that falls on
// day, keeping the time of day.
func (c *Calendar) PrevOccurrenceOf(t time.Time, day time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(day) + 7) % 7
	if back == 0 {
		back = 7
	}
	return t.AddDate(0, 0, -back)
}

func (c *Calendar) NextDay(t time.Time) time.Time { return t.AddDate(0, 0, 1) }
func (c *Calendar) PrevDay(t time.Time) time.Time { return t.AddDate(0, 0, -1) }

// NextWeek returns the start of the following week.
func (c *Calendar) NextWeek(t time.Time) time.Time {
	return c.NextWeekOn(t, c.weekStart)
}

// NextWeekOn returns midnight of day within the following week.
func (c *Calendar) NextWeekOn(t time.Time, day time.Weekday) time.Time {
	return c.weekDay(t.AddDate(0, 0, 7), day)
}

// PrevWeek returns the start of the preceding week.
func (c *Calendar) PrevWeek(t time.Time) time.Time {
	return c.PrevWeekOn(t, c.weekStart)
}

// PrevWeekOn returns midnight of day within the preceding week.
func (c *Calendar) PrevWeekOn(t time.Time, day time.Weekday) time.Time {
	return c.weekDay(t.AddDate(0, 0, -7), day)
}

func (c *Calendar) weekDay(t time.Time, day time.Weekday) time.Time {
	start := c.BeginningOf(t, Week)
	span := (int(day) - int(c.weekStart) + 7) % 7
	return start.AddDate(0, 0, span)
}

// Month, quarter and year navigation keep the time of day and clamp the
// day of month.

func (c *Calendar) NextMonth(t time.Time) time.Time { return shiftMonths(t, 1) }
func (c *Calendar) PrevMonth(t time.Time) time.Time { return shiftMonths(t, -1) }
func (c *Calendar) NextQuarter(t time.Time) time.Time { return shiftMonths(t, 3) }
func (c *Calendar) PrevQuarter(t time.Time) time.Time { return shiftMonths(t, -3) }
func (c *Calendar) NextYear(t time.Time) time.Time { return shiftMonths(t, 12) }
func (c *Calendar) PrevYear(t time.Time) time.Time { return shiftMonths(t, -12) }

func (c *Calendar) daysIntoWeek(t time.Time) int {
	return (int(t.Weekday()) - int(c.weekStart) + 7) % 7
}

func quarterStart(m time.Month) time.Month {
	return time.Month((int(m)-1)/3*3 + 1)
}

func endOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 23, 59, 59, lastNanosecond, loc)
}

// daysIn returns the number of days in month m of year y.
func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// addMonths moves a date by n months, clamping the day to the target
// month's length.
func addMonths(y int, m time.Month, d, n int) (int, time.Month, int) {
	total := y*12 + int(m) - 1 + n
	ny := total / 12
	nm := total % 12
	if nm < 0 {
		nm += 12
		ny--
	}
	month := time.Month(nm + 1)
	return ny, month, min(d, daysIn(ny, month))
}

func shiftMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	y, m, d = addMonths(y, m, d, n)
	return time.Date(y, m, d, h, mi, s, t.Nanosecond(), t.Location())
}
