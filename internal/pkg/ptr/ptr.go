package ptr

func Of[T any](v T) *T {
	return &v
}

// Deref returns the value pointed to by p if it's not nil, otherwise returns fallback
func Deref[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
