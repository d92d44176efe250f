package transform

// Map applies fn to every element, preserving order.
func Map[T, V any](ts []T, fn func(T) V) []V {
	result := make([]V, len(ts))
	for i, t := range ts {
		result[i] = fn(t)
	}
	return result
}

// MapErr is Map for functions that can fail; it stops at the first error.
// fn receives the element index so errors can point at the record.
func MapErr[T, V any](ts []T, fn func(int, T) (V, error)) ([]V, error) {
	result := make([]V, len(ts))
	for i, t := range ts {
		v, err := fn(i, t)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

// Filter keeps the elements for which keep returns true. The result is never nil.
func Filter[T any](ts []T, keep func(T) bool) []T {
	result := make([]T, 0)
	for _, t := range ts {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}

// Reduce folds ts into a single value starting from initial.
func Reduce[T, V any](ts []T, initial V, reducer func(V, T) V) V {
	result := initial
	for _, t := range ts {
		result = reducer(result, t)
	}
	return result
}
