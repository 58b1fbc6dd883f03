package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceFn is Coalesce for values that still need parsing. parse only runs
// when ptr is set.
func CoalesceFn[S, T any](ptr *S, fallback T, parse func(S) (T, error)) (T, error) {
	if ptr == nil {
		return fallback, nil
	}
	return parse(*ptr)
}
