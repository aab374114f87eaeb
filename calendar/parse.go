package calendar

import (
	"strings"
	"time"

	"github.com/goliatone/go-support/supporterrors"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon, 02 Jan 2006",
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 -0700",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 MST",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseDate reads a calendar date and returns midnight of that day in the
// calendar's location. Timestamps are accepted and truncated to their date.
func (c *Calendar) ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, c.location); err == nil {
			return t, nil
		}
	}
	if t, err := c.parseTime(value); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, c.location), nil
	}
	return time.Time{}, supporterrors.InvalidArgument("calendar.ParseDate", "value", value, "not a recognised date")
}

// ParseTime reads a timestamp. Values without a zone are interpreted in the
// calendar's location; bare dates parse as midnight.
func (c *Calendar) ParseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := c.parseTime(value); err == nil {
		return t, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, c.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, supporterrors.InvalidArgument("calendar.ParseTime", "value", value, "not a recognised time")
}

func (c *Calendar) parseTime(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, value, c.location)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
