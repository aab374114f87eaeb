package collections

import (
	"cmp"
	"fmt"
)

// Range is an interval of ordered values from Begin to End. End is part of
// the range unless Exclusive is set.
type Range[T cmp.Ordered] struct {
	Begin     T
	End       T
	Exclusive bool
}

// NewRange returns the inclusive range begin..end.
func NewRange[T cmp.Ordered](begin, end T) Range[T] {
	return Range[T]{Begin: begin, End: end}
}

// Empty reports whether the range holds no values.
func (r Range[T]) Empty() bool {
	if r.Exclusive {
		return r.End <= r.Begin
	}
	return r.End < r.Begin
}

// Contains reports whether v lies within the range.
func (r Range[T]) Contains(v T) bool {
	if v < r.Begin {
		return false
	}
	if r.Exclusive {
		return v < r.End
	}
	return v <= r.End
}

// Covers reports whether every value of other lies within r.
func (r Range[T]) Covers(other Range[T]) bool {
	if other.Empty() {
		return true
	}
	if other.Begin < r.Begin {
		return false
	}
	if r.Exclusive && !other.Exclusive {
		return other.End < r.End
	}
	return other.End <= r.End
}

// Overlaps reports whether r and other share at least one value.
func (r Range[T]) Overlaps(other Range[T]) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.startsBefore(other) && other.startsBefore(r)
}

// startsBefore reports whether other begins before r ends.
func (r Range[T]) startsBefore(other Range[T]) bool {
	if r.Exclusive {
		return other.Begin < r.End
	}
	return other.Begin <= r.End
}

func (r Range[T]) String() string {
	sep := ".."
	if r.Exclusive {
		sep = "..."
	}
	return fmt.Sprintf("%v%s%v", r.Begin, sep, r.End)
}
