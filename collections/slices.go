package collections

import (
	"reflect"
	"slices"
)

// Number is the constraint for Sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IndexBy maps each item by the key returned from keyFn. Later items win on
// key collisions.
func IndexBy[T any, K comparable](items []T, keyFn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[keyFn(item)] = item
	}
	return out
}

// Many reports whether items has more than one element.
func Many[T any](items []T) bool {
	return len(items) > 1
}

// ManyFunc reports whether more than one item satisfies pred.
func ManyFunc[T any](items []T, pred func(T) bool) bool {
	found := 0
	for _, item := range items {
		if pred(item) {
			found++
			if found > 1 {
				return true
			}
		}
	}
	return false
}

// Exclude reports whether v is absent from items.
func Exclude[T comparable](items []T, v T) bool {
	return !slices.Contains(items, v)
}

// Including returns a copy of items with extra appended.
func Including[T any](items []T, extra ...T) []T {
	out := make([]T, 0, len(items)+len(extra))
	out = append(out, items...)
	return append(out, extra...)
}

// Excluding returns a copy of items without any of the given values.
func Excluding[T comparable](items []T, values ...T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !slices.Contains(values, item) {
			out = append(out, item)
		}
	}
	return out
}

// Pluck collects key from each map, skipping maps that lack it.
func Pluck[M ~map[K]V, K comparable, V any](items []M, key K) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		if v, ok := item[key]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Pick returns key from the first map that has it.
func Pick[M ~map[K]V, K comparable, V any](items []M, key K) (V, bool) {
	for _, item := range items {
		if v, ok := item[key]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// To returns the items up to and including position. Negative positions
// count from the end.
func To[T any](items []T, position int) []T {
	if position < 0 {
		position += len(items)
	}
	if position < 0 {
		return []T{}
	}
	return slices.Clone(items[:min(position+1, len(items))])
}

// From returns the items from position on. Negative positions count from
// the end.
func From[T any](items []T, position int) []T {
	if position < 0 {
		position = max(position+len(items), 0)
	}
	if position >= len(items) {
		return []T{}
	}
	return slices.Clone(items[position:])
}

// Extract splits items into those failing pred and those satisfying it,
// preserving order.
func Extract[T any](items []T, pred func(T) bool) (kept, extracted []T) {
	kept = make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			extracted = append(extracted, item)
		} else {
			kept = append(kept, item)
		}
	}
	return kept, extracted
}

// Wrap returns v as a []any: nil becomes an empty slice, slices and arrays
// are copied element by element and any other value is wrapped.
func Wrap(v any) []any {
	if v == nil {
		return []any{}
	}
	if items, ok := v.([]any); ok {
		return slices.Clone(items)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return []any{}
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{v}
}

// Sum adds items to an optional initial value.
func Sum[T Number](items []T, initial ...T) T {
	var total T
	for _, v := range initial {
		total += v
	}
	for _, item := range items {
		total += item
	}
	return total
}

// SumBy adds the values returned by fn for each item.
func SumBy[T any, N Number](items []T, fn func(T) N) N {
	var total N
	for _, item := range items {
		total += fn(item)
	}
	return total
}
