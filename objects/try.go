package objects

// Try calls fn with *v when v is not nil.
func Try[T, R any](v *T, fn func(T) R) (R, bool) {
	if v == nil || fn == nil {
		var zero R
		return zero, false
	}
	return fn(*v), true
}

// In reports whether v is one of candidates.
func In[T comparable](v T, candidates ...T) bool {
	for _, c := range candidates {
		if c == v {
			return true
		}
	}
	return false
}
