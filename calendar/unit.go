package calendar

import (
	"strings"
	"time"

	"github.com/goliatone/go-support/supporterrors"
)

// Unit is a calendar span used by the boundary operations.
type Unit int

const (
	Day Unit = iota
	Week
	Month
	Quarter
	Year
)

var unitNames = map[Unit]string{
	Day:     "day",
	Week:    "week",
	Month:   "month",
	Quarter: "quarter",
	Year:    "year",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "unknown"
}

func (u Unit) valid() bool {
	_, ok := unitNames[u]
	return ok
}

// mustBeValid panics for units outside Day..Year; they only come from
// programming errors since ParseUnit rejects unknown names.
func mustBeValid(op string, u Unit) {
	if !u.valid() {
		panic(supporterrors.InvalidArgument(op, "unit", int(u), "unknown unit"))
	}
}

// ParseUnit maps "day", "week", "month", "quarter" or "year" (any case) to a
// Unit.
func ParseUnit(name string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for unit, unitName := range unitNames {
		if unitName == key {
			return unit, nil
		}
	}
	return 0, supporterrors.InvalidArgument("calendar.ParseUnit", "unit", name, "unknown unit")
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps an English weekday name or its three letter
// abbreviation (any case) to a time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if day, ok := weekdays[key]; ok {
		return day, nil
	}
	if len(key) == 3 {
		for full, day := range weekdays {
			if strings.HasPrefix(full, key) {
				return day, nil
			}
		}
	}
	return 0, supporterrors.InvalidArgument("calendar.ParseWeekday", "weekday", name, "unknown weekday")
}

func validWeekday(day time.Weekday) bool {
	return day >= time.Sunday && day <= time.Saturday
}
