package collections

// Indifferent is a map whose keys may be given as any value that
// stringifies to the same key, so m.Get("a") and m.Get(Symbol("a")) agree.
type Indifferent map[string]any

// NewIndifferent copies m, stringifying its keys. Nested maps are
// converted too.
func NewIndifferent[K comparable](m map[K]any) Indifferent {
	out := make(Indifferent, len(m))
	for k, v := range m {
		out[KeyString(k)] = indifferentValue(v)
	}
	return out
}

func indifferentValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return NewIndifferent(t)
	case map[any]any:
		return NewIndifferent(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = indifferentValue(item)
		}
		return out
	}
	return v
}

func (m Indifferent) Get(key any) (any, bool) {
	v, ok := m[KeyString(key)]
	return v, ok
}

// Value returns the value under key or nil.
func (m Indifferent) Value(key any) any {
	return m[KeyString(key)]
}

func (m Indifferent) Set(key, value any) {
	m[KeyString(key)] = indifferentValue(value)
}

func (m Indifferent) Has(key any) bool {
	_, ok := m[KeyString(key)]
	return ok
}

func (m Indifferent) Delete(key any) {
	delete(m, KeyString(key))
}
