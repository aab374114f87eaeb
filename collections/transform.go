package collections

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"
)

// KeyFunc maps a key; ValueFunc maps a leaf value.
type (
	KeyFunc   func(key string) string
	ValueFunc func(value any) any
)

// Transform walks value and returns a transformed copy. Keys of every
// nested map are passed through keyFn and every leaf (anything that is not
// a map or slice) through valueFn; either may be nil. Maps with non-string
// keys are converted to map[string]any. When keyFn maps two keys to the
// same result the last one in sorted key order wins.
func Transform(value any, keyFn KeyFunc, valueFn ValueFunc) any {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]any, len(v))
		for _, k := range keys {
			out[applyKey(keyFn, k)] = Transform(v[k], keyFn, valueFn)
		}
		return out
	case map[any]any:
		converted := make(map[string]any, len(v))
		for k, item := range v {
			converted[KeyString(k)] = item
		}
		return Transform(converted, keyFn, valueFn)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Transform(item, keyFn, valueFn)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Transform(item, keyFn, valueFn)
		}
		return out
	default:
		if valueFn == nil {
			return value
		}
		return valueFn(value)
	}
}

func applyKey(keyFn KeyFunc, key string) string {
	if keyFn == nil {
		return key
	}
	return keyFn(key)
}

// DeepTransformValues applies fn to every leaf value of m.
func DeepTransformValues(m map[string]any, fn ValueFunc) map[string]any {
	return Transform(m, nil, fn).(map[string]any)
}

// DeepTransformKeys applies fn to every key of m and its nested maps.
func DeepTransformKeys(m map[string]any, fn KeyFunc) map[string]any {
	return Transform(m, fn, nil).(map[string]any)
}

// StringifyKeys converts the top-level keys of m to strings. Nil keys
// become "".
func StringifyKeys[K comparable, V any](m map[K]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[KeyString(k)] = v
	}
	return out
}

// DeepStringifyKeys converts the keys of m and every nested map to strings.
func DeepStringifyKeys(m map[any]any) map[string]any {
	return Transform(m, nil, nil).(map[string]any)
}

// KeyString renders a map key as a string.
func KeyString(key any) string {
	if key == nil {
		return ""
	}
	if s, err := cast.ToStringE(key); err == nil {
		return s
	}
	return fmt.Sprint(key)
}
