package seqs

import "iter"

// DrainQueue is the part of a FIFO container that Drain needs.
// queues.ArrayQueue satisfies it.
type DrainQueue[T any] interface {
	IsEmpty() bool
	Dequeue() (value T, ok bool)
}

// Drain removes and yields the front of q on every pull until q is empty.
//
// Emptiness is checked at each pull, not once up front, so anything pushed
// into q between pulls (or from inside the loop body) is drained too. The
// caller keeps ownership of q. There is no locking: one goroutine writes
// and reads q.
func Drain[T any](q DrainQueue[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for !q.IsEmpty() {
			v, ok := q.Dequeue()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Iterator is the classic two-step pull contract.
type Iterator[T any] interface {
	// HasNext reports whether Next has another element to return.
	HasNext() bool
	// Next returns the current element and advances.
	Next() T
}

// FromIterator adapts it to a range-over-func sequence. The sequence shares
// its cursor, so it can be ranged over only once.
func FromIterator[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// PullIterator exposes a sequence through the Iterator contract.
// HasNext reads at most one element ahead.
type PullIterator[T any] struct {
	next   func() (T, bool)
	stop   func()
	head   T
	peeked bool
	done   bool
}

var _ Iterator[int] = (*PullIterator[int])(nil)

// ToIterator starts pulling from seq. Call Stop if the iterator is abandoned
// before HasNext returns false.
func ToIterator[T any](seq iter.Seq[T]) *PullIterator[T] {
	next, stop := iter.Pull(seq)
	return &PullIterator[T]{next: next, stop: stop}
}

func (it *PullIterator[T]) HasNext() bool {
	if it.done {
		return false
	}
	if !it.peeked {
		v, ok := it.next()
		if !ok {
			it.Stop()
			return false
		}
		it.head, it.peeked = v, true
	}
	return true
}

// Next returns the next element, or the zero value once exhausted.
func (it *PullIterator[T]) Next() T {
	var zero T
	if !it.HasNext() {
		return zero
	}
	v := it.head
	it.head, it.peeked = zero, false
	return v
}

// Stop releases the underlying sequence. It is safe to call more than once.
func (it *PullIterator[T]) Stop() {
	if it.done {
		return
	}
	it.done = true
	it.stop()
}
