package objects

import (
	"reflect"
	"strings"
	"unicode"
)

// Blanker lets a type decide its own blankness.
type Blanker interface {
	IsBlank() bool
}

// Blank reports whether v is nil, false, a whitespace-only string, an
// empty collection or a nil pointer or interface. Numbers are never blank.
func Blank(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if k := rv.Kind(); (k == reflect.Pointer || k == reflect.Interface) && rv.IsNil() {
		return true
	}
	if b, ok := v.(Blanker); ok {
		return b.IsBlank()
	}

	switch t := v.(type) {
	case string:
		return strings.TrimFunc(t, unicode.IsSpace) == ""
	case bool:
		return !t
	}

	switch rv.Kind() {
	case reflect.String:
		return strings.TrimFunc(rv.String(), unicode.IsSpace) == ""
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Slice, reflect.Map:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Func:
		return rv.IsNil()
	}
	return false
}

// Present is the negation of Blank.
func Present(v any) bool {
	return !Blank(v)
}

// Presence returns v and true when v is present, or the zero value and
// false when it is blank.
func Presence[T any](v T) (T, bool) {
	if Blank(v) {
		var zero T
		return zero, false
	}
	return v, true
}
