// Package objects provides predicates and conversions that work on any Go
// value: blank and present checks, deep copies, nil-safe calls and URL
// parameter encoding.
package objects
