package collections

import (
	"maps"
	"slices"
)

// Merge returns a new map with the entries of each map in order, later
// maps winning on conflicts.
func Merge[M ~map[K]V, K comparable, V any](base M, others ...M) M {
	out := make(M, len(base))
	maps.Copy(out, base)
	for _, other := range others {
		maps.Copy(out, other)
	}
	return out
}

// ReverseMerge is Merge with base winning: other supplies defaults.
func ReverseMerge[M ~map[K]V, K comparable, V any](base, defaults M) M {
	return Merge(defaults, base)
}

// DeepMerge merges other into a copy of base, recursing where both sides
// hold a map[string]any under the same key.
func DeepMerge(base, other map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	for key, value := range other {
		if existing, ok := out[key]; ok {
			left, leftIsMap := existing.(map[string]any)
			right, rightIsMap := value.(map[string]any)
			if leftIsMap && rightIsMap {
				out[key] = DeepMerge(left, right)
				continue
			}
		}
		out[key] = value
	}
	return out
}

// Except returns a copy of m without keys.
func Except[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	out := maps.Clone(m)
	if out == nil {
		out = M{}
	}
	for _, key := range keys {
		delete(out, key)
	}
	return out
}

// Slice returns a copy of m holding only keys.
func Slice[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	out := make(M, len(keys))
	for _, key := range keys {
		if v, ok := m[key]; ok {
			out[key] = v
		}
	}
	return out
}

// Partition splits m into the entries under keys and the rest.
func Partition[M ~map[K]V, K comparable, V any](m M, keys ...K) (selected, rest M) {
	selected, rest = make(M, len(keys)), make(M, len(m))
	for k, v := range m {
		if slices.Contains(keys, k) {
			selected[k] = v
		} else {
			rest[k] = v
		}
	}
	return selected, rest
}
