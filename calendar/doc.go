// Package calendar does calendar arithmetic on time.Time values: the
// beginning and end of days, weeks, months, quarters and years, offsets that
// clamp the day of month, weekday navigation and periods.
//
// Week boundaries follow the calendar's week start (Monday by default) and
// the current time comes from an injectable Clock:
//
//	cal, _ := calendar.New(calendar.WithClock(calendar.FixedClock{At: t}))
//	cal.BeginningOf(cal.Now(), calendar.Week)
//	cal.Advance(t, calendar.Months(1).Plus(calendar.Days(2)))
//
// Boundary and navigation operations keep the location of their input and
// work on wall-clock fields, so a day is always midnight to midnight even
// across DST transitions.
package calendar
