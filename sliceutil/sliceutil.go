package sliceutil

import "cmp"

// Last returns the final element of s. It panics if s is empty.
func Last[T any](s []T) T {
	return s[len(s)-1]
}

// LastOk returns the final element of s and whether there was one.
func LastOk[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

// IsOrdered reports whether a sorts before or equal to b.
func IsOrdered[T cmp.Ordered](a, b T) bool {
	return cmp.Compare(a, b) <= 0
}

// IsOrderedFunc is IsOrdered with a custom comparison.
func IsOrderedFunc[T any](compare func(a, b T) int, a, b T) bool {
	return compare(a, b) <= 0
}
