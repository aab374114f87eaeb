package calendar

import (
	"time"

	"github.com/goliatone/go-support/supporterrors"
)

const maxOffsetSeconds = 18 * 3600

// ChangeOption replaces one component of a calendar point.
type ChangeOption func(*change)

type change struct {
	year, day, hour, minute, second, nanosecond *int
	month                                        *time.Month
	offset                                       *int
	location                                     *time.Location
}

func ToYear(y int) ChangeOption { return func(c *change) { c.year = &y } }
func ToMonth(m time.Month) ChangeOption { return func(c *change) { c.month = &m } }
func ToDay(d int) ChangeOption { return func(c *change) { c.day = &d } }
func ToHour(h int) ChangeOption { return func(c *change) { c.hour = &h } }
func ToMinute(m int) ChangeOption { return func(c *change) { c.minute = &m } }
func ToSecond(s int) ChangeOption { return func(c *change) { c.second = &s } }
func ToNanosecond(n int) ChangeOption { return func(c *change) { c.nanosecond = &n } }

// ToOffset keeps the wall clock and pins it to a fixed UTC offset in
// seconds, e.g. 7*3600 for +07:00.
func ToOffset(seconds int) ChangeOption {
	return func(c *change) { c.offset = &seconds }
}

// ToLocation keeps the wall clock and reinterprets it in loc.
func ToLocation(loc *time.Location) ChangeOption {
	return func(c *change) { c.location = loc }
}

// Change returns t with the given components replaced. Setting the hour
// resets minutes, seconds and nanoseconds unless they are also given;
// setting the minute resets seconds and nanoseconds. Components that do not
// form a valid date or time are rejected rather than normalised.
func (c *Calendar) Change(t time.Time, opts ...ChangeOption) (time.Time, error) {
	const op = "calendar.Change"

	var ch change
	for _, opt := range opts {
		if opt != nil {
			opt(&ch)
		}
	}

	y, m, d := t.Date()
	h, mi, s := t.Clock()
	ns := t.Nanosecond()
	loc := t.Location()

	if ch.hour != nil || ch.minute != nil {
		s, ns = 0, 0
	}
	if ch.hour != nil {
		mi = 0
	}

	y = pick(ch.year, y)
	if ch.month != nil {
		m = *ch.month
	}
	d = pick(ch.day, d)
	h = pick(ch.hour, h)
	mi = pick(ch.minute, mi)
	s = pick(ch.second, s)
	ns = pick(ch.nanosecond, ns)

	switch {
	case y < minYear || y > maxYear:
		return time.Time{}, supporterrors.InvalidArgument(op, "year", y, "out of range")
	case m < time.January || m > time.December:
		return time.Time{}, supporterrors.InvalidArgument(op, "month", int(m), "out of range")
	case d < 1 || d > daysIn(y, m):
		return time.Time{}, supporterrors.InvalidArgument(op, "day", d, "not in "+m.String())
	case h < 0 || h > 23:
		return time.Time{}, supporterrors.InvalidArgument(op, "hour", h, "out of range")
	case mi < 0 || mi > 59:
		return time.Time{}, supporterrors.InvalidArgument(op, "minute", mi, "out of range")
	case s < 0 || s > 59:
		return time.Time{}, supporterrors.InvalidArgument(op, "second", s, "out of range")
	case ns < 0 || ns > lastNanosecond:
		return time.Time{}, supporterrors.InvalidArgument(op, "nanosecond", ns, "out of range")
	}

	if ch.offset != nil {
		if *ch.offset > maxOffsetSeconds || *ch.offset < -maxOffsetSeconds {
			return time.Time{}, supporterrors.InvalidArgument(op, "offset", *ch.offset, "must be within 18 hours")
		}
		loc = time.FixedZone("", *ch.offset)
	}
	if ch.location != nil {
		loc = ch.location
	}

	return time.Date(y, m, d, h, mi, s, ns, loc), nil
}

func pick(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}
