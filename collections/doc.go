// Package collections holds generic helpers for slices, maps and ranges:
// indexing, grouping, splitting, sentence joining, merging and deep key or
// value transforms over nested map[string]any documents.
//
// Helpers never modify their arguments; operations that "remove" elements
// return the kept and removed parts separately.
package collections
