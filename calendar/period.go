package calendar

import (
	"time"

	"github.com/goliatone/go-support/supporterrors"
)

// Period is a closed interval whose End is its last instant, such as the
// period returned by AllOf. Membership and overlap treat it as the
// half-open interval [Start, End+1ns), so adjacent periods never overlap.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod validates that end is not before start.
func NewPeriod(start, end time.Time) (Period, error) {
	if end.Before(start) {
		return Period{}, supporterrors.InvalidArgument("calendar.NewPeriod", "end", end.Format(time.RFC3339Nano), "before start")
	}
	return Period{Start: start, End: end}, nil
}

func (p Period) limit() time.Time {
	return p.End.Add(time.Nanosecond)
}

// Includes reports whether t falls within the period.
func (p Period) Includes(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.limit())
}

// Contains reports whether other lies entirely within p.
func (p Period) Contains(other Period) bool {
	return !other.Start.Before(p.Start) && !other.limit().After(p.limit())
}

// Overlaps reports whether p and other share at least one instant.
func (p Period) Overlaps(other Period) bool {
	return p.Start.Before(other.limit()) && other.Start.Before(p.limit())
}

// Duration is the length of the half-open interval.
func (p Period) Duration() time.Duration {
	return p.limit().Sub(p.Start)
}

func (p Period) String() string {
	return p.Start.Format(time.RFC3339Nano) + ".." + p.End.Format(time.RFC3339Nano)
}
