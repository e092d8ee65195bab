package queues

import "iter"

// Queue is a single-goroutine FIFO container.
type Queue[T any] interface {
	// puts an element at the end of the queue
	Enqueue(value T)
	// puts multiple elements at the end of the queue, in order
	EnqueueAll(values ...T)
	// removes and returns the element at the front of the queue
	Dequeue() (value T, ok bool)
	// removes up to len(dst) elements from the front into dst, returns the count
	DequeueBatchInto(dst []T) int
	// returns the element at the front of the queue without removing it
	Peek() (value T, ok bool)
	// returns the number of elements in the queue
	Size() int
	// returns true if the queue is empty
	IsEmpty() bool
	// removes all elements from the queue
	Clear()
	// lazily removes and yields elements from the front until the queue is empty
	Drain() iter.Seq[T]
}
