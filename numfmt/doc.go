// Package numfmt renders numbers as delimited, rounded, percentage,
// currency, human readable size or count, and phone strings.
//
// A Spec selects the mode and carries every formatting choice, so Format
// never consults global locale state:
//
//	spec := numfmt.NewSpec(numfmt.Currency, numfmt.WithPrecision(3))
//	numfmt.Format(1234567890.501236, spec) // "$1,234,567,890.501"
//
// Rounding is half up and works on the shortest decimal representation of
// the float, so 0.125 rounds to 0.13 rather than to the nearest binary
// neighbour. LocaleSpec builds specs that follow a locale's separators.
package numfmt
