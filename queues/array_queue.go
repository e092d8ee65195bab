package queues

import (
	"iter"
	"math/bits"

	"commons/seqs"
)

// ArrayQueue is a FIFO queue backed by a growable ring buffer.
// Enqueue and Dequeue are amortized O(1). It is not safe for concurrent use.
type ArrayQueue[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements in the queue
	mask int // capacity - 1, idx & mask wraps an index
}

var _ Queue[int] = (*ArrayQueue[int])(nil)

// NewArrayQueue creates a queue with room for at least initialCapacity
// elements before it has to grow. Non-positive values default to 16.
func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := ceilPow2(initialCapacity)
	return &ArrayQueue[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// relocate moves the live elements to the start of a new buffer of the given
// capacity, unwrapping them on the way.
func (aq *ArrayQueue[T]) relocate(capacity int) {
	newBuf := make([]T, capacity)
	aq.copyOut(newBuf, aq.size)
	clear(aq.buf)
	aq.buf = newBuf
	aq.head = 0
	aq.mask = capacity - 1
}

// copyOut copies the first n elements, front first, into dst.
func (aq *ArrayQueue[T]) copyOut(dst []T, n int) {
	if aq.head+n <= len(aq.buf) {
		copy(dst, aq.buf[aq.head:aq.head+n])
		return
	}
	first := copy(dst, aq.buf[aq.head:])
	copy(dst[first:], aq.buf[:n-first])
}

// clearFront zeroes the first n slots so dequeued values can be collected.
func (aq *ArrayQueue[T]) clearFront(n int) {
	if aq.head+n <= len(aq.buf) {
		clear(aq.buf[aq.head : aq.head+n])
		return
	}
	clear(aq.buf[aq.head:])
	clear(aq.buf[:n-(len(aq.buf)-aq.head)])
}

func (aq *ArrayQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.relocate(ceilPow2(aq.size + 1))
	}
	aq.buf[(aq.head+aq.size)&aq.mask] = value
	aq.size++
}

func (aq *ArrayQueue[T]) EnqueueAll(values ...T) {
	n := len(values)
	if aq.size+n > len(aq.buf) {
		aq.relocate(ceilPow2(aq.size + n))
	}
	tail := (aq.head + aq.size) & aq.mask
	written := copy(aq.buf[tail:], values)
	copy(aq.buf, values[written:])
	aq.size += n
}

func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	var zero T
	aq.buf[aq.head] = zero
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

func (aq *ArrayQueue[T]) DequeueBatchInto(dst []T) int {
	n := min(len(dst), aq.size)
	if n == 0 {
		return 0
	}
	aq.copyOut(dst, n)
	aq.clearFront(n)
	aq.head = (aq.head + n) & aq.mask
	aq.size -= n
	return n
}

// DequeueBatch removes and returns up to maxElements from the front.
func (aq *ArrayQueue[T]) DequeueBatch(maxElements int) []T {
	if aq.size == 0 || maxElements <= 0 {
		return nil
	}
	values := make([]T, min(maxElements, aq.size))
	aq.DequeueBatchInto(values)
	return values
}

func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

func (aq *ArrayQueue[T]) Size() int {
	return aq.size
}

func (aq *ArrayQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}

// ResizeToFit shrinks the buffer to the smallest power of two holding the
// current elements.
func (aq *ArrayQueue[T]) ResizeToFit() {
	aq.relocate(ceilPow2(aq.size))
}

// Values yields the queued elements front to back without removing them.
// The queue must not be modified during the iteration.
func (aq *ArrayQueue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < aq.size; i++ {
			if !yield(aq.buf[(aq.head+i)&aq.mask]) {
				return
			}
		}
	}
}

// Drain removes and yields elements from the front until the queue is
// empty. Elements enqueued while draining are picked up as well.
func (aq *ArrayQueue[T]) Drain() iter.Seq[T] {
	return seqs.Drain[T](aq)
}
