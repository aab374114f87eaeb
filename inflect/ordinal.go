package inflect

import "strconv"

// Ordinal returns the suffix that turns n into an ordinal. Rule sets with an
// ordinal_suffix use it for every number.
func (in *Inflector) Ordinal(n int) string {
	if in.ordinalSuffix != "" {
		return in.ordinalSuffix
	}
	return englishOrdinal(n)
}

// Ordinalize returns n followed by its ordinal suffix: 1 becomes "1st".
func (in *Inflector) Ordinalize(n int) string {
	return strconv.Itoa(n) + in.Ordinal(n)
}

func englishOrdinal(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if mod100 := abs % 100; mod100 >= 11 && mod100 <= 13 {
		return "th"
	}
	switch abs % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
