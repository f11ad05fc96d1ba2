package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Field applies a partial update: a nil ptr keeps current.
func Field[T any](current *T, ptr *T) {
	if ptr != nil {
		*current = *ptr
	}
}
