package seqs

import "iter"

func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat yields value count times. A negative count repeats forever.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; count < 0 || i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

// Iterate yields seed, next(seed), next(next(seed)), ... without end.
func Iterate[T any](seed T, next func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := seed; ; v = next(v) {
			if !yield(v) {
				return
			}
		}
	}
}
