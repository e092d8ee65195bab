package seqs

import "iter"

// Map applies transform to each element of seq.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Filter yields only the elements of seq that satisfy predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}

func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Concat chains seqs one after the other.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// AppendZero yields seq followed by a single zero value of T, the usual
// end marker for consumers that look for one.
func AppendZero[T any](seq iter.Seq[T]) iter.Seq[T] {
	var zero T
	return Concat(seq, Repeat(zero, 1))
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Pairs folds a two-value sequence into a sequence of Pair, which can then
// be collected with slices.Collect.
func Pairs[T1, T2 any](seq iter.Seq2[T1, T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		for v1, v2 := range seq {
			if !yield(Pair[T1, T2]{v1, v2}) {
				return
			}
		}
	}
}

// Zip pairs the i-th elements of seq1 and seq2 and stops as soon as either
// side runs out. Each side is advanced exactly once per pair; when seq2 is
// exhausted the element just taken from seq1 is dropped. An empty seq1
// never advances seq2, so zipping with an unbounded sequence is safe.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{v1, v2}) {
				return
			}
		}
	}
}

// Enumerate tags each element with its position, starting at 0.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return EnumerateFrom(seq, 0)
}

// EnumerateFrom tags each element with its position, starting at start.
func EnumerateFrom[T any](seq iter.Seq[T], start int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := start
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Finality tags each element with whether it is the last one of seq.
//
// One element is always held back: the n-th element is yielded only after
// the (n+1)-th has been read or seq has ended. An empty seq yields nothing.
// seq must be finite; over an unbounded seq no element is ever tagged true.
func Finality[T any](seq iter.Seq[T]) iter.Seq2[bool, T] {
	return func(yield func(bool, T) bool) {
		var (
			pending T
			held    bool
		)
		for v := range seq {
			if held && !yield(false, pending) {
				return
			}
			pending, held = v, true
		}
		if held {
			yield(true, pending)
		}
	}
}
