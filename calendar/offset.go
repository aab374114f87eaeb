package calendar

import (
	"math"
	"time"

	"github.com/goliatone/go-support/supporterrors"
)

const (
	minYear = 1
	maxYear = 9999

	// bounds that keep the month and day arithmetic far from int overflow
	maxYearsOffset  = maxYear
	maxMonthsOffset = maxYear * 12
	maxDaysOffset   = maxYear * 366
)

// Offset is a calendar-aware amount of time. Years and months move the
// calendar date with day-of-month clamping, weeks and days move whole days,
// and the time-of-day fields are applied as an elapsed duration.
type Offset struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   float64
	Minutes float64
	Seconds float64
}

func Years(n int) Offset { return Offset{Years: n} }
func Months(n int) Offset { return Offset{Months: n} }
func Weeks(n int) Offset { return Offset{Weeks: n} }
func Days(n int) Offset { return Offset{Days: n} }
func Hours(h float64) Offset { return Offset{Hours: h} }
func Minutes(m float64) Offset { return Offset{Minutes: m} }
func Seconds(s float64) Offset { return Offset{Seconds: s} }

// Plus sums two offsets field by field.
func (o Offset) Plus(other Offset) Offset {
	return Offset{
		Years:   o.Years + other.Years,
		Months:  o.Months + other.Months,
		Weeks:   o.Weeks + other.Weeks,
		Days:    o.Days + other.Days,
		Hours:   o.Hours + other.Hours,
		Minutes: o.Minutes + other.Minutes,
		Seconds: o.Seconds + other.Seconds,
	}
}

// Negate flips the sign of every field.
func (o Offset) Negate() Offset {
	return Offset{
		Years:   -o.Years,
		Months:  -o.Months,
		Weeks:   -o.Weeks,
		Days:    -o.Days,
		Hours:   -o.Hours,
		Minutes: -o.Minutes,
		Seconds: -o.Seconds,
	}
}

func (o Offset) IsZero() bool {
	return o == Offset{}
}

// timeOfDay converts the time-of-day fields to a duration.
func (o Offset) timeOfDay(op string) (time.Duration, error) {
	for _, field := range []struct {
		name  string
		value float64
	}{{"hours", o.Hours}, {"minutes", o.Minutes}, {"seconds", o.Seconds}} {
		if math.IsNaN(field.value) || math.IsInf(field.value, 0) {
			return 0, supporterrors.InvalidArgument(op, field.name, field.value, "must be finite")
		}
	}

	nanos := (o.Hours*3600 + o.Minutes*60 + o.Seconds) * float64(time.Second)
	if math.IsInf(nanos, 0) || math.Abs(nanos) >= math.MaxInt64 {
		return 0, supporterrors.InvalidArgument(op, "offset", o, "time of day amount overflows")
	}
	return time.Duration(math.Round(nanos)), nil
}

func (o Offset) checkDateFields(op string) error {
	switch {
	case o.Years > maxYearsOffset || o.Years < -maxYearsOffset:
		return supporterrors.InvalidArgument(op, "years", o.Years, "out of range")
	case o.Months > maxMonthsOffset || o.Months < -maxMonthsOffset:
		return supporterrors.InvalidArgument(op, "months", o.Months, "out of range")
	case o.Weeks > maxDaysOffset/7 || o.Weeks < -maxDaysOffset/7:
		return supporterrors.InvalidArgument(op, "weeks", o.Weeks, "out of range")
	case o.Days > maxDaysOffset || o.Days < -maxDaysOffset:
		return supporterrors.InvalidArgument(op, "days", o.Days, "out of range")
	}
	return nil
}

// Advance moves t by o. Years are applied first, then months (each clamping
// the day of month, so Jan 31 + 1 month is the last day of February), then
// weeks and days on the calendar date, and finally the time-of-day amount as
// elapsed time. Results outside years 1..9999 are rejected.
func (c *Calendar) Advance(t time.Time, o Offset) (time.Time, error) {
	const op = "calendar.Advance"

	if err := o.checkDateFields(op); err != nil {
		return time.Time{}, err
	}
	elapsed, err := o.timeOfDay(op)
	if err != nil {
		return time.Time{}, err
	}

	y, m, d := t.Date()
	h, mi, s := t.Clock()
	if o.Years != 0 {
		y, m, d = addMonths(y, m, d, o.Years*12)
	}
	if o.Months != 0 {
		y, m, d = addMonths(y, m, d, o.Months)
	}
	d += o.Weeks*7 + o.Days

	out := time.Date(y, m, d, h, mi, s, t.Nanosecond(), t.Location())
	if elapsed != 0 {
		out = out.Add(elapsed)
	}

	if year := out.Year(); year < minYear || year > maxYear {
		return time.Time{}, supporterrors.InvalidArgument(op, "offset", o, "result is outside years 1..9999")
	}
	return out, nil
}

// Rewind moves t back by o.
func (c *Calendar) Rewind(t time.Time, o Offset) (time.Time, error) {
	return c.Advance(t, o.Negate())
}

// FromNow advances the current time by o.
func (c *Calendar) FromNow(o Offset) (time.Time, error) {
	return c.Advance(c.Now(), o)
}

// Ago moves the current time back by o.
func (c *Calendar) Ago(o Offset) (time.Time, error) {
	return c.Rewind(c.Now(), o)
}
